package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions(t *testing.T) {
	client := &Client{
		opts: &redis.UniversalOptions{},
	}

	for _, opt := range []Option{
		WithAddrs([]string{"cache-1:6379", "cache-2:6379"}),
		WithCredentials("search", "secret"),
		WithDB(3),
		WithClientName("search-service"),
		WithTimeouts(2*time.Second, time.Second, time.Second),
		WithPoolSize(20),
	} {
		opt(client)
	}

	assert.Equal(t, []string{"cache-1:6379", "cache-2:6379"}, client.opts.Addrs)
	assert.Equal(t, "search", client.opts.Username)
	assert.Equal(t, "secret", client.opts.Password)
	assert.Equal(t, 3, client.opts.DB)
	assert.Equal(t, 2*time.Second, client.opts.DialTimeout)
	assert.Equal(t, time.Second, client.opts.ReadTimeout)
	assert.Equal(t, time.Second, client.opts.WriteTimeout)
	assert.Equal(t, 20, client.opts.PoolSize)
	assert.Equal(t, "search-service", client.opts.ClientName)
}

func TestOptions_ZeroValuesKeepDefaults(t *testing.T) {
	client := &Client{
		opts: &redis.UniversalOptions{
			Addrs:       []string{"localhost:6379"},
			DialTimeout: 5 * time.Second,
			PoolSize:    10,
		},
	}

	for _, opt := range []Option{
		WithAddrs(nil),
		WithTimeouts(0, 0, 0),
		WithPoolSize(0),
	} {
		opt(client)
	}

	assert.Equal(t, []string{"localhost:6379"}, client.opts.Addrs)
	assert.Equal(t, 5*time.Second, client.opts.DialTimeout)
	assert.Equal(t, 10, client.opts.PoolSize)
}

func setupMockRedis() (RedisClient, redismock.ClientMock) {
	db, mock := redismock.NewClientMock()
	return NewFromClient(db), mock
}

func TestClient_Set(t *testing.T) {
	client, mock := setupMockRedis()
	ctx := context.Background()

	key := "qpx:backup:12-14-2016_12:00:00am.json"
	value := `{"request":{}}`

	mock.ExpectSet(key, value, time.Hour).SetVal("OK")

	require.NoError(t, client.Set(ctx, key, value, time.Hour), "Set() should not fail")

	require.NoError(t, mock.ExpectationsWereMet(), "Redis expectations should be met")
}

func TestClient_Set_Error(t *testing.T) {
	client, mock := setupMockRedis()

	mock.ExpectSet("key", "value", 0).SetErr(errors.New("connection refused"))

	err := client.Set(context.Background(), "key", "value", 0)
	assert.EqualError(t, err, "connection refused")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClient_Exists(t *testing.T) {
	client, mock := setupMockRedis()
	ctx := context.Background()

	mock.ExpectExists("key").SetVal(0)
	exists, err := client.Exists(ctx, "key")
	require.NoError(t, err, "Exists() should not fail")
	assert.False(t, exists, "Key should not exist initially")

	mock.ExpectExists("key").SetVal(1)
	exists, err = client.Exists(ctx, "key")
	require.NoError(t, err, "Exists() should not fail")
	assert.True(t, exists, "Key should exist")

	require.NoError(t, mock.ExpectationsWereMet(), "Redis expectations should be met")
}

func TestClient_Exists_Error(t *testing.T) {
	client, mock := setupMockRedis()

	mock.ExpectExists("key").SetErr(errors.New("connection refused"))

	exists, err := client.Exists(context.Background(), "key")
	assert.EqualError(t, err, "connection refused")
	assert.False(t, exists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClient_Ping(t *testing.T) {
	client, mock := setupMockRedis()

	mock.ExpectPing().SetVal("PONG")
	require.NoError(t, client.Ping(context.Background()))

	mock.ExpectPing().SetErr(errors.New("down"))
	assert.Error(t, client.Ping(context.Background()))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNewWithConfig_Unreachable(t *testing.T) {
	client, err := NewWithConfig(Config{
		Addrs:       []string{"127.0.0.1:1"},
		DialTimeout: 100 * time.Millisecond,
	})
	assert.Error(t, err, "NewWithConfig() should fail when the server is unreachable")
	assert.Nil(t, client)
}
