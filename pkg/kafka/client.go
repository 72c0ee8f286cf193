package kafka

import (
	"context"

	"github.com/twmb/franz-go/pkg/kgo"
)

// KafkaClient defines the producer operations used to publish search results
type KafkaClient interface {
	Produce(ctx context.Context, topic string, key, value []byte) error
	Close() error
}

// Client represents a Kafka producer wrapper
type Client struct {
	client *kgo.Client
}

// New creates a new Kafka client with the provided options
func New(opts ...kgo.Opt) (KafkaClient, error) {
	kafkaClient, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, err
	}

	return &Client{client: kafkaClient}, nil
}

// Produce sends a keyed message to a Kafka topic and waits for the broker ack
func (k *Client) Produce(ctx context.Context, topic string, key, value []byte) error {
	record := &kgo.Record{
		Topic: topic,
		Key:   key,
		Value: value,
	}

	return k.client.ProduceSync(ctx, record).FirstErr()
}

// Close closes the Kafka client
func (k *Client) Close() error {
	if k.client != nil {
		k.client.Close()
	}
	return nil
}

