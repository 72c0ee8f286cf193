// Package qpx is a client for the QPX Express trips/search API.
package qpx

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/soedr/google-flights-api/pkg/backup"
	"github.com/soedr/google-flights-api/pkg/httpclient"
	"github.com/soedr/google-flights-api/pkg/logger"
	"github.com/soedr/google-flights-api/pkg/validator"
)

const (
	// DefaultBaseURL is the QPX Express v1 API root.
	DefaultBaseURL = "https://www.googleapis.com/qpxExpress/v1"

	searchPath = "/trips/search"
	userAgent  = "google-flights-api"
)

// Credentials hold the API key and the endpoint derived from it.
type Credentials struct {
	apiKey   string
	endpoint string
}

// APIKey returns the key the client authenticates with
func (c Credentials) APIKey() string {
	return c.apiKey
}

// Endpoint returns the full search URL, key included
func (c Credentials) Endpoint() string {
	return c.endpoint
}

// Client sends flight searches. It is safe for concurrent use as long as the
// configured sink is.
type Client struct {
	credentials Credentials
	path        string

	http      httpclient.HTTPClient
	sink      backup.Sink
	validator validator.Validator
	logger    logger.LoggerInterface
	location  *time.Location

	baseURL   string
	timeout   time.Duration
	backupDir string
	sinks     []backup.Sink
}

// NewClient creates a client for apiKey. An empty key yields a *ValidationError
// wrapping ErrInvalidAPIKey; any other key is accepted as given.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, &ValidationError{
			Fields: map[string]string{"apiKey": "API key must be a non-empty string"},
			Err:    ErrInvalidAPIKey,
		}
	}

	c := &Client{
		baseURL:  DefaultBaseURL,
		logger:   logger.NoOpLogger(),
		location: time.Local,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.http == nil {
		httpOpts := []httpclient.Option{
			httpclient.WithBaseURL(strings.TrimRight(c.baseURL, "/")),
			httpclient.WithLogger(c.logger),
			httpclient.WithUserAgent(userAgent),
		}
		if c.timeout > 0 {
			httpOpts = append(httpOpts, httpclient.WithTimeout(c.timeout))
		}
		c.http = httpclient.New(httpOpts...)
	}
	if c.validator == nil {
		c.validator = validator.NewValidator()
	}

	c.path = searchPath + "?key=" + url.QueryEscape(apiKey)
	c.credentials = Credentials{
		apiKey:   apiKey,
		endpoint: c.http.BaseURL() + c.path,
	}

	if c.backupDir != "" {
		c.sinks = append([]backup.Sink{backup.NewFileSink(c.backupDir, c.logger)}, c.sinks...)
	}
	switch len(c.sinks) {
	case 0:
	case 1:
		c.sink = c.sinks[0]
	default:
		c.sink = backup.MultiSink(c.sinks)
	}

	return c, nil
}

// Credentials returns the key and endpoint the client was built with
func (c *Client) Credentials() Credentials {
	return c.credentials
}

// BackupEnabled reports whether successful searches are archived
func (c *Client) BackupEnabled() bool {
	return c.sink != nil
}

// Query applies defaults, validates q, builds the request body and sends it.
// The response bytes are returned untouched.
func (c *Client) Query(ctx context.Context, q Query) (json.RawMessage, error) {
	q = WithDefaults(q)

	fields := c.validator.ValidateStruct(q)
	if q.Date.IsZero() {
		if fields == nil {
			fields = make(map[string]string)
		}
		fields["Date"] = "Date is required"
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	body, err := BuildRequestBody(q, c.location)
	if err != nil {
		return nil, err
	}

	c.logger.InfoContext(ctx, "Searching flights",
		"origin", q.Origin,
		"destination", q.Destination,
		"date", body.Request.Slice[0].Date,
		"maxPrice", q.MaxPrice,
	)

	return c.send(ctx, body)
}

// RawQuery sends body exactly as given, with no defaults or validation. body is
// encoded with encoding/json, so pass a json.RawMessage for pre-encoded input.
func (c *Client) RawQuery(ctx context.Context, body any) (json.RawMessage, error) {
	c.logger.InfoContext(ctx, "Sending raw flight search")

	return c.send(ctx, body)
}

func (c *Client) send(ctx context.Context, body any) (json.RawMessage, error) {
	var response json.RawMessage
	if err := c.http.PostJSON(ctx, c.path, body, &response, nil); err != nil {
		return nil, err
	}

	if c.sink != nil {
		if err := c.archive(ctx, body, response); err != nil {
			return nil, err
		}
	}

	c.logger.DebugContext(ctx, "Flight search completed", "bytes", len(response))
	return response, nil
}

func (c *Client) archive(ctx context.Context, body any, response json.RawMessage) error {
	request, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request for backup: %w", err)
	}

	rec, err := backup.NewRecord(request, response, c.location)
	if err != nil {
		return fmt.Errorf("failed to build backup record: %w", err)
	}

	if err := c.sink.Save(ctx, rec); err != nil {
		return err
	}

	c.logger.InfoContext(ctx, "Search backed up", "name", rec.Name)
	return nil
}
