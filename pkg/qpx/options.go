package qpx

import (
	"time"

	"github.com/soedr/google-flights-api/pkg/backup"
	"github.com/soedr/google-flights-api/pkg/httpclient"
	"github.com/soedr/google-flights-api/pkg/logger"
	"github.com/soedr/google-flights-api/pkg/validator"
)

// Option configures a Client
type Option func(*Client)

// WithBackup archives every successful search as a JSON file in dir.
// An empty dir leaves backups off.
func WithBackup(dir string) Option {
	return func(c *Client) {
		c.backupDir = dir
	}
}

// WithBackupSink adds a sink that receives every successful search
func WithBackupSink(sink backup.Sink) Option {
	return func(c *Client) {
		if sink != nil {
			c.sinks = append(c.sinks, sink)
		}
	}
}

// WithHTTPClient replaces the transport. Its base URL must point at the API root.
func WithHTTPClient(client httpclient.HTTPClient) Option {
	return func(c *Client) {
		if client != nil {
			c.http = client
		}
	}
}

// WithBaseURL overrides the API root
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout bounds each HTTP request
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithLogger sets the logger
func WithLogger(l logger.LoggerInterface) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithLocation sets the zone dates are normalised and backup names rendered in
func WithLocation(loc *time.Location) Option {
	return func(c *Client) {
		if loc != nil {
			c.location = loc
		}
	}
}

// WithValidator replaces the query validator
func WithValidator(v validator.Validator) Option {
	return func(c *Client) {
		if v != nil {
			c.validator = v
		}
	}
}
