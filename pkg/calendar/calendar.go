// Package calendar parses departure dates that must name a full calendar day.
package calendar

import (
	"time"

	"github.com/jinzhu/now"
)

// Formats lists the accepted layouts. Every layout carries a year, a month and
// a day so that no part of the date is filled in from the current clock.
var Formats = []string{
	"2006-1-2",
	"2006-1-2 15:4",
	"2006-1-2 15:4:5",
	"2006-1-2 15:4:5.999999999",
	"2006-01-02T15:04:05",
	time.RFC3339,
	time.RFC3339Nano,
	"2006/1/2",
	"2006/1/2 15:4:5",
	"1/2/2006",
	"1/2/2006 15:4:5",
	"20060102",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	time.RFC1123,
	time.RFC1123Z,
	time.ANSIC,
	time.UnixDate,
	time.RubyDate,
}

// Parse reads value in loc, or in time.Local when loc is nil.
func Parse(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	cfg := &now.Config{TimeLocation: loc, TimeFormats: Formats}
	return cfg.Parse(value)
}
