package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soedr/google-flights-api/pkg/qpx"
)

type provider struct {
	server *httptest.Server
	key    string
	body   []byte
}

func newProvider(t *testing.T) *provider {
	t.Helper()
	p := &provider{}
	p.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p.key = r.URL.Query().Get("key")
		p.body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"kind":"qpxExpress#tripsSearch","trips":{}}`))
	}))
	t.Cleanup(p.server.Close)
	return p
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func TestSearchCommand(t *testing.T) {
	p := newProvider(t)

	out, err := run(t, "",
		"search",
		"--api-key", "flag-key",
		"--base-url", p.server.URL,
		"--location", "UTC",
		"--origin", "LHR",
		"--destination", "JFK",
		"--date", "1481673600000",
		"--max-price", "EUR800",
		"--children", "1",
		"--carrier", "BA,AA",
	)
	require.NoError(t, err)

	assert.Equal(t, "{\"kind\":\"qpxExpress#tripsSearch\",\"trips\":{}}\n", out)
	assert.Equal(t, "flag-key", p.key)

	var sent qpx.RequestBody
	require.NoError(t, json.Unmarshal(p.body, &sent))
	require.Len(t, sent.Request.Slice, 1)
	assert.Equal(t, "2016-12-14", sent.Request.Slice[0].Date)
	assert.Equal(t, []string{"BA", "AA"}, sent.Request.Slice[0].PermittedCarrier)
	assert.Equal(t, 1, *sent.Request.Passengers.AdultCount)
	assert.Equal(t, 1, *sent.Request.Passengers.ChildCount)
	assert.Nil(t, sent.Request.Passengers.SeniorCount)
	assert.Nil(t, sent.Request.Slice[0].MaxStops)
	assert.Nil(t, sent.Request.Refundable)
}

func TestSearchCommand_APIKeyFromEnv(t *testing.T) {
	p := newProvider(t)
	t.Setenv("QPX_API_KEY", "env-key")

	_, err := run(t, "",
		"search", "--base-url", p.server.URL,
		"--origin", "LHR", "--destination", "JFK", "--date", "2016-12-14", "--max-price", "EUR800",
	)
	require.NoError(t, err)
	assert.Equal(t, "env-key", p.key)
}

func TestSearchCommand_MissingAPIKey(t *testing.T) {
	t.Setenv("QPX_API_KEY", "")

	_, err := run(t, "",
		"search", "--origin", "LHR", "--destination", "JFK", "--date", "2016-12-14", "--max-price", "EUR800",
	)
	assert.ErrorIs(t, err, qpx.ErrInvalidAPIKey)
}

func TestSearchCommand_RequiredFlags(t *testing.T) {
	_, err := run(t, "", "search", "--api-key", "k")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}

func TestSearchCommand_WritesBackup(t *testing.T) {
	p := newProvider(t)
	dir := t.TempDir()

	_, err := run(t, "",
		"search", "--api-key", "k", "--base-url", p.server.URL, "--backup", dir, "--location", "UTC",
		"--origin", "LHR", "--destination", "JFK", "--date", "2016-12-14", "--max-price", "EUR800",
	)
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "12-14-2016_12:00:00am.json", entries[0].Name())
}

func TestRawCommand_File(t *testing.T) {
	p := newProvider(t)
	body := `{"request":{"slice":[{"origin":"SFO","destination":"NRT","date":"2017-01-02"}],"solutions":5}}`
	path := filepath.Join(t.TempDir(), "request.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	out, err := run(t, "", "raw", path, "--api-key", "k", "--base-url", p.server.URL, "--pretty")
	require.NoError(t, err)

	assert.JSONEq(t, body, string(p.body))
	assert.Contains(t, out, "\n  \"kind\": \"qpxExpress#tripsSearch\"")
}

func TestRawCommand_Stdin(t *testing.T) {
	p := newProvider(t)
	body := `{"request":{"slice":[{"date":"2017-01-02"}]}}`

	_, err := run(t, body, "raw", "-", "--api-key", "k", "--base-url", p.server.URL)
	require.NoError(t, err)
	assert.JSONEq(t, body, string(p.body))
}

func TestRawCommand_InvalidJSON(t *testing.T) {
	_, err := run(t, "{not json", "raw", "-", "--api-key", "k")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not contain valid JSON")
}

func TestParseDate(t *testing.T) {
	assert.Equal(t, qpx.DateMillis(1481673600000), parseDate("1481673600000"))
	assert.Equal(t, qpx.DateString("2016-12-14"), parseDate("2016-12-14"))
	assert.Equal(t, qpx.DateString("20161214"), parseDate("20161214"))
	assert.Equal(t, qpx.DateString("2016"), parseDate("2016"))
}

func TestParseDate_CompactDateNormalizes(t *testing.T) {
	got, err := parseDate("20161214").Normalize(time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "2016-12-14", got)

	_, err = parseDate("2016").Normalize(time.UTC)
	var formatErr *qpx.FormatError
	assert.ErrorAs(t, err, &formatErr)
}
