package qpx

import (
	"time"
)

const (
	// DefaultAdultCount applies when a query names no adult count.
	DefaultAdultCount = 1
	// DefaultSolutions caps the number of trip options returned.
	DefaultSolutions = 500
)

// Query is the simplified, single-slice search the client turns into a RequestBody.
type Query struct {
	Origin      string `json:"origin" validate:"required,iata"`
	Destination string `json:"destination" validate:"required,iata"`
	Date        Date   `json:"date" validate:"-"`
	// MaxPrice is a currency-prefixed amount such as "EUR200".
	MaxPrice string `json:"maxPrice" validate:"required,price"`

	AdultCount        *int `json:"adultCount,omitempty" validate:"omitempty,gte=0"`
	ChildCount        *int `json:"childCount,omitempty" validate:"omitempty,gte=0"`
	InfantInLapCount  *int `json:"infantInLapCount,omitempty" validate:"omitempty,gte=0"`
	InfantInSeatCount *int `json:"infantInSeatCount,omitempty" validate:"omitempty,gte=0"`
	SeniorCount       *int `json:"seniorCount,omitempty" validate:"omitempty,gte=0"`

	Solutions             *int `json:"solutions,omitempty" validate:"omitempty,gte=1"`
	MaxStops              *int `json:"maxStops,omitempty" validate:"omitempty,gte=0"`
	MaxConnectionDuration *int `json:"maxConnectionDuration,omitempty" validate:"omitempty,gte=0"`

	EarliestTime      string   `json:"earliestTime,omitempty" validate:"omitempty,hhmm"`
	LatestTime        string   `json:"latestTime,omitempty" validate:"omitempty,hhmm"`
	PreferredCabin    string   `json:"preferredCabin,omitempty" validate:"omitempty,oneof=COACH PREMIUM_COACH BUSINESS FIRST"`
	PermittedCarrier  []string `json:"permittedCarrier,omitempty" validate:"omitempty,dive,carrier"`
	ProhibitedCarrier []string `json:"prohibitedCarrier,omitempty" validate:"omitempty,dive,carrier"`
	Alliance          string   `json:"alliance,omitempty" validate:"omitempty,oneof=ONEWORLD SKYTEAM STAR,excluded_with=PermittedCarrier"`
	SaleCountry       string   `json:"saleCountry,omitempty" validate:"omitempty,country"`
	TicketingCountry  string   `json:"ticketingCountry,omitempty" validate:"omitempty,country"`
	Refundable        *bool    `json:"refundable,omitempty"`
}

// WithDefaults returns a copy of q with AdultCount and Solutions filled in
// when unset. Values already present are kept.
func WithDefaults(q Query) Query {
	if q.AdultCount == nil {
		q.AdultCount = intPtr(DefaultAdultCount)
	}
	if q.Solutions == nil {
		q.Solutions = intPtr(DefaultSolutions)
	}
	return q
}

// BuildRequestBody maps a query onto the wire format. It always produces
// exactly one slice and does not apply defaults.
func BuildRequestBody(q Query, loc *time.Location) (*RequestBody, error) {
	date, err := q.Date.Normalize(loc)
	if err != nil {
		return nil, err
	}

	return &RequestBody{
		Request: TripOptionsRequest{
			Passengers: PassengerCounts{
				Kind:              KindPassengerCounts,
				AdultCount:        q.AdultCount,
				ChildCount:        q.ChildCount,
				InfantInLapCount:  q.InfantInLapCount,
				InfantInSeatCount: q.InfantInSeatCount,
				SeniorCount:       q.SeniorCount,
			},
			Slice: []SliceInput{{
				Kind:                  KindSliceInput,
				Origin:                q.Origin,
				Destination:           q.Destination,
				Date:                  date,
				MaxStops:              q.MaxStops,
				MaxConnectionDuration: q.MaxConnectionDuration,
				PreferredCabin:        q.PreferredCabin,
				PermittedCarrier:      q.PermittedCarrier,
				ProhibitedCarrier:     q.ProhibitedCarrier,
				Alliance:              q.Alliance,
				PermittedDepartureTime: TimeOfDayRange{
					Kind:         KindTimeOfDayRange,
					EarliestTime: q.EarliestTime,
					LatestTime:   q.LatestTime,
				},
			}},
			MaxPrice:         q.MaxPrice,
			Solutions:        q.Solutions,
			SaleCountry:      q.SaleCountry,
			TicketingCountry: q.TicketingCountry,
			Refundable:       q.Refundable,
		},
	}, nil
}

func intPtr(v int) *int {
	return &v
}
