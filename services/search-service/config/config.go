// Package config handles search-service configuration loading
package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"

	"github.com/soedr/google-flights-api/pkg/kafka"
	"github.com/soedr/google-flights-api/pkg/postgres"
	"github.com/soedr/google-flights-api/pkg/redis"
)

// EnvPrefix prefixes every environment override, e.g. SEARCH_QPX_API_KEY.
const EnvPrefix = "SEARCH"

// Config holds the entire service configuration
type Config struct {
	Application ApplicationConfig `mapstructure:"application"`
	Server      ServerConfig      `mapstructure:"server"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	QPX         QPXConfig         `mapstructure:"qpx"`
	Backup      BackupConfig      `mapstructure:"backup"`
}

// ApplicationConfig holds the application identity
type ApplicationConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

// ServerConfig holds HTTP server settings, timeouts in seconds
type ServerConfig struct {
	Port            int `mapstructure:"port"`
	ReadTimeout     int `mapstructure:"read_timeout"`
	WriteTimeout    int `mapstructure:"write_timeout"`
	ShutdownTimeout int `mapstructure:"shutdown_timeout"`
	// MaxBodyBytes caps the size of search request bodies
	MaxBodyBytes int64 `mapstructure:"max_body_bytes"`
}

// LoggingConfig selects the log level and handler format
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// QPXConfig holds the flight search provider settings
type QPXConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	// Timeout bounds each provider call, in seconds
	Timeout int `mapstructure:"timeout"`
	// Location is the IANA zone dates are normalised in, empty means local time
	Location string `mapstructure:"location"`
}

// BackupConfig selects where successful searches are archived
type BackupConfig struct {
	// Dir enables file backups when set
	Dir      string               `mapstructure:"dir"`
	Redis    RedisBackupConfig    `mapstructure:"redis"`
	Kafka    KafkaBackupConfig    `mapstructure:"kafka"`
	Postgres PostgresBackupConfig `mapstructure:"postgres"`
}

// RedisBackupConfig stores backups as redis keys
type RedisBackupConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	Prefix       string `mapstructure:"prefix"`
	TTL          int    `mapstructure:"ttl"` // in hours, 0 keeps keys forever
	redis.Config `mapstructure:",squash"`
}

// KafkaBackupConfig publishes backups to a topic
type KafkaBackupConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	Topic        string `mapstructure:"topic"`
	kafka.Config `mapstructure:",squash"`
}

// PostgresBackupConfig inserts backups as rows
type PostgresBackupConfig struct {
	Enabled         bool `mapstructure:"enabled"`
	IsUseMigrate    bool `mapstructure:"is_use_migrate"`
	postgres.Config `mapstructure:",squash"`
}

// LoadConfig reads search-service.yaml from configPaths (or the default
// locations), then applies SEARCH_* environment overrides and defaults.
func LoadConfig(configPaths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("search-service")
	v.SetConfigType("yaml")
	if len(configPaths) == 0 {
		configPaths = []string{".", "configs", "../configs", "../../configs"}
	}
	for _, path := range configPaths {
		v.AddConfigPath(path)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// keys without defaults are only seen by Unmarshal once bound
	for _, key := range []string{
		"qpx.api_key",
		"backup.dir",
		"backup.redis.password",
		"backup.postgres.user",
		"backup.postgres.password",
		"backup.kafka.sasl_user",
		"backup.kafka.sasl_password",
	} {
		_ = v.BindEnv(key)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if strings.TrimSpace(config.QPX.APIKey) == "" {
		return nil, errors.New("qpx api key is required")
	}
	if config.Backup.Postgres.Enabled && config.Backup.Postgres.User == "" {
		return nil, errors.New("backup database user is required")
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("application.name", "search-service")
	v.SetDefault("application.version", "1.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 15)
	v.SetDefault("server.write_timeout", 60)
	v.SetDefault("server.shutdown_timeout", 30)
	v.SetDefault("server.max_body_bytes", 1<<20)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("qpx.base_url", "https://www.googleapis.com/qpxExpress/v1")
	v.SetDefault("qpx.timeout", 30)
	v.SetDefault("qpx.location", "")
	v.SetDefault("backup.redis.enabled", false)
	v.SetDefault("backup.redis.prefix", "qpx:backup:")
	v.SetDefault("backup.redis.ttl", 0)
	v.SetDefault("backup.redis.addrs", []string{"localhost:6379"})
	v.SetDefault("backup.redis.db", 0)
	v.SetDefault("backup.redis.pool_size", 10)
	v.SetDefault("backup.redis.client_name", "search-service")
	v.SetDefault("backup.kafka.enabled", false)
	v.SetDefault("backup.kafka.topic", "qpx.search.backups")
	v.SetDefault("backup.kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("backup.kafka.client_id", "search-service")
	v.SetDefault("backup.postgres.enabled", false)
	v.SetDefault("backup.postgres.is_use_migrate", true)
	v.SetDefault("backup.postgres.host", "localhost")
	v.SetDefault("backup.postgres.port", 5432)
	v.SetDefault("backup.postgres.dbname", "flights")
	v.SetDefault("backup.postgres.schema", "public")
	v.SetDefault("backup.postgres.sslmode", "disable")
	v.SetDefault("backup.postgres.max_idle_conns", 5)
	v.SetDefault("backup.postgres.max_open_conns", 20)
	v.SetDefault("backup.postgres.conn_max_idle_time", 5)
	v.SetDefault("backup.postgres.conn_max_lifetime", 60)
}
