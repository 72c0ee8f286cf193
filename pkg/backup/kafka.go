package backup

import (
	"context"
	"fmt"

	"github.com/soedr/google-flights-api/pkg/kafka"
	"github.com/soedr/google-flights-api/pkg/logger"
)

// DefaultKafkaTopic receives backup payloads when no topic is configured.
const DefaultKafkaTopic = "qpx.search.backups"

// KafkaSink publishes each record's payload keyed by its name.
type KafkaSink struct {
	client kafka.KafkaClient
	topic  string
	logger logger.LoggerInterface
}

// NewKafkaSink creates a sink producing to topic.
func NewKafkaSink(client kafka.KafkaClient, topic string, appLogger logger.LoggerInterface) *KafkaSink {
	if topic == "" {
		topic = DefaultKafkaTopic
	}
	if appLogger == nil {
		appLogger = logger.NoOpLogger()
	}
	return &KafkaSink{client: client, topic: topic, logger: appLogger}
}

// Save implements Sink
func (s *KafkaSink) Save(ctx context.Context, rec Record) error {
	payload, err := rec.Payload()
	if err != nil {
		return err
	}

	if err := s.client.Produce(ctx, s.topic, []byte(rec.Name), payload); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish backup", "topic", s.topic, "name", rec.Name, "error", err)
		return fmt.Errorf("failed to publish backup: %w", err)
	}

	s.logger.DebugContext(ctx, "Backup published", "topic", s.topic, "name", rec.Name)
	return nil
}
