package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected time.Time
	}{
		{name: "calendar date", value: "2016-12-14", expected: time.Date(2016, 12, 14, 0, 0, 0, 0, time.UTC)},
		{name: "unpadded", value: "2016-3-5", expected: time.Date(2016, 3, 5, 0, 0, 0, 0, time.UTC)},
		{name: "date and time", value: "2016-12-14 18:30", expected: time.Date(2016, 12, 14, 18, 30, 0, 0, time.UTC)},
		{name: "rfc3339", value: "2016-12-14T15:04:05Z", expected: time.Date(2016, 12, 14, 15, 4, 5, 0, time.UTC)},
		{name: "slashes", value: "2016/12/14", expected: time.Date(2016, 12, 14, 0, 0, 0, 0, time.UTC)},
		{name: "us order", value: "12/14/2016", expected: time.Date(2016, 12, 14, 0, 0, 0, 0, time.UTC)},
		{name: "compact", value: "20161214", expected: time.Date(2016, 12, 14, 0, 0, 0, 0, time.UTC)},
		{name: "month name", value: "Dec 14, 2016", expected: time.Date(2016, 12, 14, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.value, time.UTC)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "expected %s, got %s", tt.expected, got)
		})
	}
}

func TestParse_RejectsPartialDates(t *testing.T) {
	for _, value := range []string{"12:30", "14", "1-2", "2016", "2016-12", "12-14", "next tuesday", ""} {
		t.Run(value, func(t *testing.T) {
			_, err := Parse(value, time.UTC)
			assert.Error(t, err)
		})
	}
}

func TestParse_NilLocation(t *testing.T) {
	got, err := Parse("2016-12-14", nil)
	require.NoError(t, err)
	assert.Equal(t, "2016-12-14", got.Format("2006-01-02"))
}
