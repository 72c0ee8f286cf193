package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/soedr/google-flights-api/pkg/qpx"
)

type searchFlags struct {
	origin, destination, date, maxPrice string

	adults, children, infantsInLap, infantsInSeat, seniors int
	solutions, maxStops, maxConnection                     int

	cabin, alliance, saleCountry, ticketingCountry string
	earliest, latest                               string
	carriers, prohibited                           []string
	refundable                                     bool
}

func newSearchCmd(opts *globalOptions) *cobra.Command {
	var f searchFlags

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Run a one-way search",
		Example: `  qpx search --origin LHR --destination JFK --date 2016-12-14 --max-price EUR800
  qpx search --origin SFO --destination NRT --date 1481673600000 --max-price USD1500 --adults 2 --cabin BUSINESS`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.newClient(cmd)
			if err != nil {
				return err
			}

			resp, err := client.Query(cmd.Context(), f.query(cmd))
			if err != nil {
				return err
			}

			return opts.printResponse(cmd.OutOrStdout(), resp)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.origin, "origin", "", "Origin airport IATA code")
	flags.StringVar(&f.destination, "destination", "", "Destination airport IATA code")
	flags.StringVar(&f.date, "date", "", "Departure date, YYYY-MM-DD, YYYYMMDD or Unix milliseconds")
	flags.StringVar(&f.maxPrice, "max-price", "", "Currency-prefixed price cap, e.g. EUR800")
	flags.IntVar(&f.adults, "adults", qpx.DefaultAdultCount, "Number of adults")
	flags.IntVar(&f.children, "children", 0, "Number of children")
	flags.IntVar(&f.infantsInLap, "infants-in-lap", 0, "Number of infants travelling on a lap")
	flags.IntVar(&f.infantsInSeat, "infants-in-seat", 0, "Number of infants with their own seat")
	flags.IntVar(&f.seniors, "seniors", 0, "Number of seniors")
	flags.IntVar(&f.solutions, "solutions", qpx.DefaultSolutions, "Maximum number of trip options")
	flags.IntVar(&f.maxStops, "max-stops", 0, "Maximum number of stops")
	flags.IntVar(&f.maxConnection, "max-connection", 0, "Longest connection in minutes")
	flags.StringVar(&f.cabin, "cabin", "", "Preferred cabin (COACH, PREMIUM_COACH, BUSINESS, FIRST)")
	flags.StringVar(&f.alliance, "alliance", "", "Airline alliance (ONEWORLD, SKYTEAM, STAR)")
	flags.StringVar(&f.saleCountry, "sale-country", "", "Country of sale, ISO 3166-1 alpha-2")
	flags.StringVar(&f.ticketingCountry, "ticketing-country", "", "Country of ticketing, ISO 3166-1 alpha-2")
	flags.StringVar(&f.earliest, "earliest", "", "Earliest departure time, HH:MM")
	flags.StringVar(&f.latest, "latest", "", "Latest departure time, HH:MM")
	flags.StringSliceVar(&f.carriers, "carrier", nil, "Permitted carriers, repeatable")
	flags.StringSliceVar(&f.prohibited, "prohibited-carrier", nil, "Prohibited carriers, repeatable")
	flags.BoolVar(&f.refundable, "refundable", false, "Only refundable fares")

	for _, name := range []string{"origin", "destination", "date", "max-price"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

// query builds a qpx.Query. Optional numbers are only sent when their flag was given.
func (f *searchFlags) query(cmd *cobra.Command) qpx.Query {
	changed := cmd.Flags().Changed
	intFlag := func(name string, v int) *int {
		if !changed(name) {
			return nil
		}
		return &v
	}

	q := qpx.Query{
		Origin:                f.origin,
		Destination:           f.destination,
		Date:                  parseDate(f.date),
		MaxPrice:              f.maxPrice,
		AdultCount:            intFlag("adults", f.adults),
		ChildCount:            intFlag("children", f.children),
		InfantInLapCount:      intFlag("infants-in-lap", f.infantsInLap),
		InfantInSeatCount:     intFlag("infants-in-seat", f.infantsInSeat),
		SeniorCount:           intFlag("seniors", f.seniors),
		Solutions:             intFlag("solutions", f.solutions),
		MaxStops:              intFlag("max-stops", f.maxStops),
		MaxConnectionDuration: intFlag("max-connection", f.maxConnection),
		PreferredCabin:        f.cabin,
		Alliance:              f.alliance,
		SaleCountry:           f.saleCountry,
		TicketingCountry:      f.ticketingCountry,
		EarliestTime:          f.earliest,
		LatestTime:            f.latest,
		PermittedCarrier:      f.carriers,
		ProhibitedCarrier:     f.prohibited,
	}
	if changed("refundable") {
		q.Refundable = &f.refundable
	}

	return q
}

// compactDateLen is the length of a YYYYMMDD date. Longer all-digit values are
// Unix milliseconds.
const compactDateLen = len("20060102")

// parseDate treats an all-digit value longer than YYYYMMDD as Unix milliseconds.
// Shorter values are calendar strings and fail normalisation if incomplete.
func parseDate(s string) qpx.Date {
	if len(s) > compactDateLen {
		if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
			return qpx.DateMillis(ms)
		}
	}
	return qpx.DateString(s)
}
