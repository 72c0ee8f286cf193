package kafka

import (
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/twmb/franz-go/pkg/sasl/plain"
)

// Config holds Kafka producer configuration
type Config struct {
	Brokers                []string      `mapstructure:"brokers"`
	ClientID               string        `mapstructure:"client_id"`
	AllowAutoTopicCreation bool          `mapstructure:"allow_auto_topic_creation"`
	RequestRetries         int           `mapstructure:"request_retries"`
	DialTimeout            time.Duration `mapstructure:"dial_timeout"`
	ProduceTimeout         time.Duration `mapstructure:"produce_timeout"`
	SASLUser               string        `mapstructure:"sasl_user"`
	SASLPassword           string        `mapstructure:"sasl_password"`
}

// Options converts the config into franz-go client options
func (c Config) Options() []kgo.Opt {
	opts := []kgo.Opt{
		WithBrokers(c.Brokers...),
	}

	if c.ClientID != "" {
		opts = append(opts, WithClientID(c.ClientID))
	}

	if c.AllowAutoTopicCreation {
		opts = append(opts, WithAllowAutoTopicCreation())
	}

	if c.RequestRetries > 0 {
		opts = append(opts, WithRequestRetries(c.RequestRetries))
	}

	if c.DialTimeout > 0 {
		opts = append(opts, WithDialTimeout(c.DialTimeout))
	}

	if c.ProduceTimeout > 0 {
		opts = append(opts, WithProduceTimeout(c.ProduceTimeout))
	}

	if c.SASLUser != "" {
		opts = append(opts, WithSASL(plain.Auth{User: c.SASLUser, Pass: c.SASLPassword}.AsMechanism()))
	}

	return opts
}

// NewWithConfig creates a new Kafka client from a config struct
func NewWithConfig(config Config) (KafkaClient, error) {
	return New(config.Options()...)
}
