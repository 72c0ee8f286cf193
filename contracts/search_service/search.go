// Package search_service contains request and response contracts for the search service
package search_service

import (
	"encoding/json"

	"github.com/soedr/google-flights-api/pkg/qpx"
)

// SearchRequest represents the payload for a single-slice flight search
type SearchRequest struct {
	Origin      string   `json:"origin" validate:"required,iata"`
	Destination string   `json:"destination" validate:"required,iata"`
	Date        qpx.Date `json:"date" validate:"-"`
	MaxPrice    string   `json:"max_price" validate:"required,price"`

	AdultCount        *int `json:"adult_count,omitempty" validate:"omitempty,gte=0,lte=9"`
	ChildCount        *int `json:"child_count,omitempty" validate:"omitempty,gte=0,lte=9"`
	InfantInLapCount  *int `json:"infant_in_lap_count,omitempty" validate:"omitempty,gte=0,lte=9"`
	InfantInSeatCount *int `json:"infant_in_seat_count,omitempty" validate:"omitempty,gte=0,lte=9"`
	SeniorCount       *int `json:"senior_count,omitempty" validate:"omitempty,gte=0,lte=9"`

	Solutions             *int `json:"solutions,omitempty" validate:"omitempty,gte=1,lte=500"`
	MaxStops              *int `json:"max_stops,omitempty" validate:"omitempty,gte=0"`
	MaxConnectionDuration *int `json:"max_connection_duration,omitempty" validate:"omitempty,gte=0"`

	EarliestTime      string   `json:"earliest_time,omitempty" validate:"omitempty,hhmm"`
	LatestTime        string   `json:"latest_time,omitempty" validate:"omitempty,hhmm"`
	PreferredCabin    string   `json:"preferred_cabin,omitempty" validate:"omitempty,oneof=COACH PREMIUM_COACH BUSINESS FIRST"`
	PermittedCarrier  []string `json:"permitted_carrier,omitempty" validate:"omitempty,dive,carrier"`
	ProhibitedCarrier []string `json:"prohibited_carrier,omitempty" validate:"omitempty,dive,carrier"`
	Alliance          string   `json:"alliance,omitempty" validate:"omitempty,oneof=ONEWORLD SKYTEAM STAR,excluded_with=PermittedCarrier"`
	SaleCountry       string   `json:"sale_country,omitempty" validate:"omitempty,country"`
	TicketingCountry  string   `json:"ticketing_country,omitempty" validate:"omitempty,country"`
	Refundable        *bool    `json:"refundable,omitempty"`
}

// SearchResponse wraps the provider payload without reshaping it
type SearchResponse struct {
	Raw json.RawMessage `json:"raw"`
}

// SearchRequestToQuery converts a SearchRequest into a qpx.Query
func SearchRequestToQuery(req *SearchRequest) qpx.Query {
	return qpx.Query{
		Origin:                req.Origin,
		Destination:           req.Destination,
		Date:                  req.Date,
		MaxPrice:              req.MaxPrice,
		AdultCount:            req.AdultCount,
		ChildCount:            req.ChildCount,
		InfantInLapCount:      req.InfantInLapCount,
		InfantInSeatCount:     req.InfantInSeatCount,
		SeniorCount:           req.SeniorCount,
		Solutions:             req.Solutions,
		MaxStops:              req.MaxStops,
		MaxConnectionDuration: req.MaxConnectionDuration,
		EarliestTime:          req.EarliestTime,
		LatestTime:            req.LatestTime,
		PreferredCabin:        req.PreferredCabin,
		PermittedCarrier:      req.PermittedCarrier,
		ProhibitedCarrier:     req.ProhibitedCarrier,
		Alliance:              req.Alliance,
		SaleCountry:           req.SaleCountry,
		TicketingCountry:      req.TicketingCountry,
		Refundable:            req.Refundable,
	}
}
