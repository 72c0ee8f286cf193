package qpx

// Kind tags required by the QPX Express wire format.
const (
	KindPassengerCounts = "qpxexpress#passengerCounts"
	KindSliceInput      = "qpxexpress#sliceInput"
	KindTimeOfDayRange  = "qpxexpress#timeOfDayRange"
)

// RequestBody is the JSON document POSTed to the trips/search endpoint.
type RequestBody struct {
	Request TripOptionsRequest `json:"request"`
}

// TripOptionsRequest holds the search criteria. Nil and empty optional values are omitted.
type TripOptionsRequest struct {
	Passengers       PassengerCounts `json:"passengers"`
	Slice            []SliceInput    `json:"slice"`
	MaxPrice         string          `json:"maxPrice,omitempty"`
	Solutions        *int            `json:"solutions,omitempty"`
	SaleCountry      string          `json:"saleCountry,omitempty"`
	TicketingCountry string          `json:"ticketingCountry,omitempty"`
	Refundable       *bool           `json:"refundable,omitempty"`
}

type PassengerCounts struct {
	Kind              string `json:"kind"`
	AdultCount        *int   `json:"adultCount,omitempty"`
	ChildCount        *int   `json:"childCount,omitempty"`
	InfantInLapCount  *int   `json:"infantInLapCount,omitempty"`
	InfantInSeatCount *int   `json:"infantInSeatCount,omitempty"`
	SeniorCount       *int   `json:"seniorCount,omitempty"`
}

// SliceInput describes one leg of the journey.
type SliceInput struct {
	Kind                   string         `json:"kind"`
	Origin                 string         `json:"origin"`
	Destination            string         `json:"destination"`
	Date                   string         `json:"date"`
	MaxStops               *int           `json:"maxStops,omitempty"`
	MaxConnectionDuration  *int           `json:"maxConnectionDuration,omitempty"`
	PreferredCabin         string         `json:"preferredCabin,omitempty"`
	PermittedCarrier       []string       `json:"permittedCarrier,omitempty"`
	ProhibitedCarrier      []string       `json:"prohibitedCarrier,omitempty"`
	Alliance               string         `json:"alliance,omitempty"`
	PermittedDepartureTime TimeOfDayRange `json:"permittedDepartureTime"`
}

type TimeOfDayRange struct {
	Kind         string `json:"kind"`
	EarliestTime string `json:"earliestTime,omitempty"`
	LatestTime   string `json:"latestTime,omitempty"`
}
