package kafka

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"
)

func TestNewWithValidOptions(t *testing.T) {
	opts := []kgo.Opt{
		kgo.SeedBrokers("unreachable:9092"),
		kgo.ClientID("search-service"),
		kgo.WithLogger(kgo.BasicLogger(nil, kgo.LogLevelError, nil)),
	}

	client, err := New(opts...)
	require.NoError(t, err, "New() with valid options should succeed")
	require.NotNil(t, client, "Client should not be nil")
	assert.IsType(t, &Client{}, client)

	assert.NoError(t, client.Close())
}

func TestClient_CloseTwice(t *testing.T) {
	client, err := New(kgo.SeedBrokers("unreachable:9092"))
	require.NoError(t, err)

	assert.NoError(t, client.Close())
	assert.NotPanics(t, func() { _ = client.Close() })
}

func TestClient_Close_NilClient(t *testing.T) {
	client := &Client{}
	assert.NoError(t, client.Close())
}

func TestClient_Produce_CancelledContext(t *testing.T) {
	client, err := New(
		kgo.SeedBrokers("127.0.0.1:1"),
		WithProduceTimeout(500*time.Millisecond),
		kgo.WithLogger(kgo.BasicLogger(nil, kgo.LogLevelError, nil)),
	)
	require.NoError(t, err)
	defer client.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = client.Produce(ctx, "qpx.backups", []byte("key"), []byte(`{}`))
	assert.Error(t, err, "Produce() should fail with a cancelled context")
}

func TestConfig_Options(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		expected int
	}{
		{
			name:     "brokers only",
			config:   Config{Brokers: []string{"localhost:9092"}},
			expected: 1,
		},
		{
			name: "all fields",
			config: Config{
				Brokers:                []string{"localhost:9092"},
				ClientID:               "search-service",
				AllowAutoTopicCreation: true,
				RequestRetries:         3,
				DialTimeout:            5 * time.Second,
				ProduceTimeout:         10 * time.Second,
				SASLUser:               "user",
				SASLPassword:           "pass",
			},
			expected: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, tt.config.Options(), tt.expected)
		})
	}
}

func TestNewWithConfig(t *testing.T) {
	client, err := NewWithConfig(Config{
		Brokers:  []string{"unreachable:9092"},
		ClientID: "search-service",
	})
	require.NoError(t, err)
	require.NotNil(t, client)
	defer client.Close()

	impl, ok := client.(*Client)
	require.True(t, ok)
	assert.NotNil(t, impl.client)
}
