package qpx

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrInvalidAPIKey is wrapped by the ValidationError NewClient returns for a blank key.
	ErrInvalidAPIKey = errors.New("invalid api key")

	errNoDate   = errors.New("no date given")
	errZeroTime = errors.New("zero time")
)

// ValidationError reports rejected input, keyed by field name.
type ValidationError struct {
	Fields map[string]string
	Err    error
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, e.Fields[k])
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// FormatError is returned when a date cannot be interpreted.
type FormatError struct {
	Value any
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid date %v: %v", e.Value, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
