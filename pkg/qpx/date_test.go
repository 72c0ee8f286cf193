package qpx

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_Normalize(t *testing.T) {
	est := time.FixedZone("EST", -5*3600)

	tests := []struct {
		name     string
		date     Date
		loc      *time.Location
		expected string
	}{
		{name: "calendar string", date: DateString("2016-12-14"), loc: time.UTC, expected: "2016-12-14"},
		{name: "unpadded string", date: DateString("2016-3-5"), loc: time.UTC, expected: "2016-03-05"},
		{name: "string with time", date: DateString("2016-12-14 18:30"), loc: time.UTC, expected: "2016-12-14"},
		{name: "compact string", date: DateString("20161214"), loc: time.UTC, expected: "2016-12-14"},
		{name: "millis in UTC", date: DateMillis(1481673600000), loc: time.UTC, expected: "2016-12-14"},
		{name: "millis west of UTC", date: DateMillis(1481673600000), loc: est, expected: "2016-12-13"},
		{name: "time value", date: DateTime(time.Date(2016, 12, 14, 9, 0, 0, 0, time.UTC)), loc: time.UTC, expected: "2016-12-14"},
		{name: "time converted to zone", date: DateTime(time.Date(2016, 12, 14, 2, 0, 0, 0, time.UTC)), loc: est, expected: "2016-12-13"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.date.Normalize(tt.loc)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, got)
		})
	}
}

func TestDate_Normalize_Invalid(t *testing.T) {
	tests := []struct {
		name string
		date Date
	}{
		{name: "garbage string", date: DateString("next tuesday")},
		{name: "time only", date: DateString("12:30")},
		{name: "hour only", date: DateString("14")},
		{name: "month and day only", date: DateString("1-2")},
		{name: "year only", date: DateString("2016")},
		{name: "empty string", date: DateString("")},
		{name: "zero time", date: DateTime(time.Time{})},
		{name: "no date", date: Date{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.date.Normalize(time.UTC)
			var formatErr *FormatError
			assert.True(t, errors.As(err, &formatErr), "Expected *FormatError, got %v", err)
		})
	}
}

func TestDate_NilLocationUsesLocal(t *testing.T) {
	got, err := DateString("2016-12-14").Normalize(nil)
	require.NoError(t, err)
	assert.Equal(t, "2016-12-14", got)
}

func TestDate_UnmarshalJSON(t *testing.T) {
	var payload struct {
		Date Date `json:"date"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"date":"2016-12-14"}`), &payload))
	assert.Equal(t, DateString("2016-12-14"), payload.Date)

	require.NoError(t, json.Unmarshal([]byte(`{"date":1481673600000}`), &payload))
	assert.Equal(t, DateMillis(1481673600000), payload.Date)

	require.NoError(t, json.Unmarshal([]byte(`{"date":null}`), &payload))
	assert.True(t, payload.Date.IsZero())

	err := json.Unmarshal([]byte(`{"date":14.5}`), &payload)
	assert.Error(t, err)
}

func TestDate_MarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		date     Date
		expected string
	}{
		{name: "string", date: DateString("2016-12-14"), expected: `"2016-12-14"`},
		{name: "millis", date: DateMillis(1481673600000), expected: `1481673600000`},
		{name: "time", date: DateTime(time.Date(2016, 12, 14, 0, 0, 0, 0, time.UTC)), expected: `"2016-12-14T00:00:00Z"`},
		{name: "zero", date: Date{}, expected: `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.date)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(data))
		})
	}
}
