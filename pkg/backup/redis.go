package backup

import (
	"context"
	"fmt"
	"time"

	"github.com/soedr/google-flights-api/pkg/logger"
	"github.com/soedr/google-flights-api/pkg/redis"
)

// DefaultRedisPrefix namespaces backup keys.
const DefaultRedisPrefix = "qpx:backup:"

// RedisSink stores each record's payload under <prefix><name>. A record with
// the same name replaces the earlier one, as with FileSink.
type RedisSink struct {
	client redis.RedisClient
	prefix string
	ttl    time.Duration
	logger logger.LoggerInterface
}

// NewRedisSink creates a sink. A zero ttl keeps keys forever.
func NewRedisSink(client redis.RedisClient, prefix string, ttl time.Duration, appLogger logger.LoggerInterface) *RedisSink {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	if appLogger == nil {
		appLogger = logger.NoOpLogger()
	}
	return &RedisSink{client: client, prefix: prefix, ttl: ttl, logger: appLogger}
}

// Key returns the redis key a record is stored under
func (s *RedisSink) Key(rec Record) string {
	return s.prefix + rec.Name
}

// Save implements Sink
func (s *RedisSink) Save(ctx context.Context, rec Record) error {
	payload, err := rec.Payload()
	if err != nil {
		return err
	}

	key := s.Key(rec)
	exists, err := s.client.Exists(ctx, key)
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to check backup key", "key", key, "error", err)
	} else if exists {
		s.logger.WarnContext(ctx, "Overwriting existing backup in redis", "key", key)
	}

	if err := s.client.Set(ctx, key, string(payload), s.ttl); err != nil {
		s.logger.ErrorContext(ctx, "Failed to store backup in redis", "key", key, "error", err)
		return fmt.Errorf("failed to store backup in redis: %w", err)
	}

	s.logger.DebugContext(ctx, "Backup stored in redis", "key", key)
	return nil
}
