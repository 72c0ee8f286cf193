package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/soedr/google-flights-api/pkg/logger"
)

// HTTPClient defines the interface for HTTP client operations
type HTTPClient interface {
	PostJSON(ctx context.Context, path string, data any, result any, headers map[string]string) error
	BaseURL() string
}

// StatusError is returned when the remote side answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	msg := http.StatusText(e.StatusCode)
	if len(e.Body) > 0 && len(e.Body) < 512 {
		msg = string(e.Body)
	}
	return fmt.Sprintf("request failed with status: %d, body: %s", e.StatusCode, msg)
}

// Client represents an HTTP client with configurable settings
type Client struct {
	client  *http.Client
	baseURL string
	headers map[string]string
	timeout time.Duration
	logger  logger.LoggerInterface
}

// New creates a new HTTP client with the provided options
func New(opts ...Option) HTTPClient {
	client := &Client{
		client:  &http.Client{},
		headers: make(map[string]string),
		timeout: 30 * time.Second,
		logger:  logger.NoOpLogger(),
	}

	for _, opt := range opts {
		opt(client)
	}

	client.client.Timeout = client.timeout

	return client
}

// post performs an HTTP POST request with JSON data
func (c *Client) post(ctx context.Context, path string, data any, headers map[string]string) (*http.Response, error) {
	body, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, bytes.NewReader(body), headers)
}

// PostJSON performs a POST request with JSON data and unmarshals the response into result.
// Passing a *json.RawMessage as result keeps the response body byte for byte.
func (c *Client) PostJSON(ctx context.Context, path string, data any, result any, headers map[string]string) error {
	resp, err := c.post(ctx, path, data, headers)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.ErrorContext(ctx, "Failed to read response body", "path", redact(path), "error", err)
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.ErrorContext(ctx, "HTTP request failed", "path", redact(path), "status", resp.StatusCode)
		return &StatusError{StatusCode: resp.StatusCode, Body: responseBody}
	}

	if result == nil {
		return nil
	}
	if err := json.Unmarshal(responseBody, result); err != nil {
		c.logger.ErrorContext(ctx, "Failed to unmarshal response", "path", redact(path), "error", err)
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, headers map[string]string) (*http.Response, error) {
	target := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	// headers are copied in WithHeaders and never written afterwards
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	c.logger.DebugContext(ctx, "HTTP request", "method", method, "path", redact(path))

	resp, err := c.client.Do(req)
	if err != nil {
		// *url.Error carries the full URL, key included
		logErr := err
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			logErr = urlErr.Err
		}
		c.logger.ErrorContext(ctx, "HTTP request error", "method", method, "path", redact(path), "error", logErr)
		return nil, err
	}

	c.logger.DebugContext(ctx, "HTTP response", "method", method, "path", redact(path), "statusCode", resp.StatusCode)

	return resp, nil
}

// redact drops the query string so API keys never reach the logs.
func redact(path string) string {
	before, _, _ := strings.Cut(path, "?")
	return before
}

// BaseURL returns the base URL of the client
func (c *Client) BaseURL() string {
	return c.baseURL
}
