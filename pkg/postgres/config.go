package postgres

import "fmt"

// Config holds the PostgreSQL connection settings
type Config struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	Schema   string `mapstructure:"schema"`
	SSLMode  string `mapstructure:"sslmode"`
	// MaxIdleConns and MaxOpenConns size the connection pool
	MaxIdleConns int `mapstructure:"max_idle_conns"`
	MaxOpenConns int `mapstructure:"max_open_conns"`
	// ConnMaxIdleTime and ConnMaxLifetime are in minutes
	ConnMaxIdleTime int  `mapstructure:"conn_max_idle_time"`
	ConnMaxLifetime int  `mapstructure:"conn_max_lifetime"`
	Debug           bool `mapstructure:"debug"`
	// ConnectTimeout is in seconds, 0 means no limit
	ConnectTimeout int `mapstructure:"connect_timeout"`
}

// DSN renders the config as a libpq key/value connection string
func (c Config) DSN() string {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s search_path=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.Schema, c.SSLMode)

	if c.ConnectTimeout > 0 {
		dsn += fmt.Sprintf(" connect_timeout=%d", c.ConnectTimeout)
	}

	return dsn
}
