package redis

import (
	"time"
)

// Option is a function that configures a Client
type Option func(*Client)

// WithAddrs sets the server addresses; more than one selects cluster mode
func WithAddrs(addrs []string) Option {
	return func(c *Client) {
		if len(addrs) > 0 {
			c.opts.Addrs = addrs
		}
	}
}

// WithCredentials sets the ACL username and password
func WithCredentials(username, password string) Option {
	return func(c *Client) {
		c.opts.Username = username
		c.opts.Password = password
	}
}

// WithDB selects the logical database
func WithDB(db int) Option {
	return func(c *Client) {
		c.opts.DB = db
	}
}

// WithClientName sets the name reported by CLIENT LIST
func WithClientName(name string) Option {
	return func(c *Client) {
		c.opts.ClientName = name
	}
}

// WithTimeouts sets dial, read and write timeouts. Zero values keep the current setting.
func WithTimeouts(dial, read, write time.Duration) Option {
	return func(c *Client) {
		if dial > 0 {
			c.opts.DialTimeout = dial
		}
		if read > 0 {
			c.opts.ReadTimeout = read
		}
		if write > 0 {
			c.opts.WriteTimeout = write
		}
	}
}

// WithPoolSize sets the connection pool size
func WithPoolSize(poolSize int) Option {
	return func(c *Client) {
		if poolSize > 0 {
			c.opts.PoolSize = poolSize
		}
	}
}
