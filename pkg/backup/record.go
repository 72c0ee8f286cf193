// Package backup archives flight-search request/response pairs.
package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/soedr/google-flights-api/pkg/calendar"
)

// FileNameLayout formats the first slice departure as MM-DD-YYYY_h:mm:ssa.
const FileNameLayout = "01-02-2006_3:04:05pm"

// ErrMissingSliceDate is returned when a request body carries no request.slice[0].date.
var ErrMissingSliceDate = errors.New("request has no slice date to name the backup after")

// Record pairs the exact request sent with the exact response received.
type Record struct {
	Name     string
	Request  json.RawMessage
	Response json.RawMessage
}

type document struct {
	Request  json.RawMessage `json:"request"`
	Response json.RawMessage `json:"response"`
}

// sliceProbe picks the first slice date out of any request body.
type sliceProbe struct {
	Request struct {
		Slice []struct {
			Date string `json:"date"`
		} `json:"slice"`
	} `json:"request"`
}

// NewRecord builds a Record named after the first slice date of request.
func NewRecord(request, response json.RawMessage, loc *time.Location) (Record, error) {
	var probe sliceProbe
	if err := json.Unmarshal(request, &probe); err != nil {
		return Record{}, fmt.Errorf("failed to read request body: %w", err)
	}
	if len(probe.Request.Slice) == 0 || probe.Request.Slice[0].Date == "" {
		return Record{}, ErrMissingSliceDate
	}

	name, err := FileName(probe.Request.Slice[0].Date, loc)
	if err != nil {
		return Record{}, err
	}

	return Record{Name: name, Request: request, Response: response}, nil
}

// FileName returns the backup name for a slice date, e.g. "12-14-2016_12:00:00am.json".
func FileName(sliceDate string, loc *time.Location) (string, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := calendar.Parse(sliceDate, loc)
	if err != nil {
		return "", fmt.Errorf("invalid slice date %q: %w", sliceDate, err)
	}
	return t.In(loc).Format(FileNameLayout) + ".json", nil
}

// Payload renders the record as {"request": ..., "response": ...} with 2-space indentation.
func (r Record) Payload() ([]byte, error) {
	data, err := json.MarshalIndent(document{Request: r.Request, Response: r.Response}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode backup record: %w", err)
	}
	return data, nil
}
