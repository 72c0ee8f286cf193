package qpx

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/soedr/google-flights-api/pkg/calendar"
)

// DateLayout is the calendar format the provider expects.
const DateLayout = "2006-01-02"

// Date is a departure date given as a calendar string, a Unix millisecond
// timestamp or a time.Time. The zero value is "no date".
type Date struct {
	value any
}

// DateString wraps a calendar string such as "2016-12-14".
func DateString(s string) Date {
	return Date{value: s}
}

// DateMillis wraps a Unix timestamp in milliseconds.
func DateMillis(ms int64) Date {
	return Date{value: ms}
}

// DateTime wraps a time.Time.
func DateTime(t time.Time) Date {
	return Date{value: t}
}

// IsZero reports whether no date was set
func (d Date) IsZero() bool {
	return d.value == nil
}

// Normalize renders the date as YYYY-MM-DD in loc. Strings are parsed in loc,
// instants are converted to loc before formatting.
func (d Date) Normalize(loc *time.Location) (string, error) {
	if loc == nil {
		loc = time.Local
	}

	switch v := d.value.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return "", &FormatError{Value: v, Err: errNoDate}
		}
		t, err := calendar.Parse(v, loc)
		if err != nil {
			return "", &FormatError{Value: v, Err: err}
		}
		return t.In(loc).Format(DateLayout), nil
	case int64:
		return time.UnixMilli(v).In(loc).Format(DateLayout), nil
	case time.Time:
		if v.IsZero() {
			return "", &FormatError{Value: v, Err: errZeroTime}
		}
		return v.In(loc).Format(DateLayout), nil
	default:
		return "", &FormatError{Value: d.value, Err: errNoDate}
	}
}

// String returns the date as supplied
func (d Date) String() string {
	switch v := d.value.(type) {
	case nil:
		return ""
	case string:
		return v
	case time.Time:
		return v.Format(time.RFC3339)
	default:
		return fmt.Sprint(v)
	}
}

// MarshalJSON writes strings as strings, timestamps as numbers and times as RFC 3339.
func (d Date) MarshalJSON() ([]byte, error) {
	switch v := d.value.(type) {
	case nil:
		return []byte("null"), nil
	case int64:
		return []byte(strconv.FormatInt(v, 10)), nil
	default:
		return json.Marshal(d.String())
	}
}

// UnmarshalJSON accepts a JSON string or an integer millisecond timestamp.
func (d *Date) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*d = Date{}
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*d = DateString(s)
		return nil
	}

	ms, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return &FormatError{Value: string(data), Err: err}
	}
	*d = DateMillis(ms)
	return nil
}
