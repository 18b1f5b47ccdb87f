package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type DatabaseDriver string

const (
	DatabaseDriverPostgres DatabaseDriver = "postgres" // Production store (default)
	DatabaseDriverSQLite   DatabaseDriver = "sqlite"   // Single-file store for local runs and tests
)

type (
	Config struct {
		HTTP
		Global
		Database
		Log
	}

	HTTP struct {
		Port int32
		Host string
	}

	Global struct {
		ShutdownTimeoutInSeconds int
	}

	Database struct {
		Driver DatabaseDriver
		URL    string // postgres connection string
		Path   string // sqlite file path

		MaxOpenConns    int
		MaxIdleConns    int
		ConnMaxLifetime time.Duration
		ConnMaxIdleTime time.Duration
		ConnectTimeout  time.Duration
	}

	Log struct {
		Level  string // zerolog level name: trace, debug, info, warn, error
		Format string // "console" or "json"
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 3000)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 5)

	v.SetDefault("database_driver", string(DatabaseDriverPostgres))
	v.SetDefault("database_url", DefaultDatabaseURL)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("database_max_open_conns", 30)
	v.SetDefault("database_max_idle_conns", 5)
	v.SetDefault("database_conn_max_lifetime", "1h")
	v.SetDefault("database_conn_max_idle_time", "5m")
	v.SetDefault("database_connect_timeout", "5s")

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Driver:          DatabaseDriver(v.GetString("DATABASE_DRIVER")),
			URL:             v.GetString("DATABASE_URL"),
			Path:            v.GetString("DATABASE_PATH"),
			MaxOpenConns:    v.GetInt("DATABASE_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DATABASE_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("DATABASE_CONN_MAX_LIFETIME"),
			ConnMaxIdleTime: v.GetDuration("DATABASE_CONN_MAX_IDLE_TIME"),
			ConnectTimeout:  v.GetDuration("DATABASE_CONNECT_TIMEOUT"),
		},
		Log: Log{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DatabaseDriverPostgres:
		if c.Database.URL == "" {
			return fmt.Errorf("DATABASE_URL is required for the %s driver", c.Database.Driver)
		}
	case DatabaseDriverSQLite:
		if c.Database.Path == "" {
			return fmt.Errorf("DATABASE_PATH is required for the %s driver", c.Database.Driver)
		}
	default:
		return fmt.Errorf("unknown DATABASE_DRIVER %q", c.Database.Driver)
	}
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.HTTP.Port)
	}
	if c.Database.MaxOpenConns < 1 {
		return fmt.Errorf("DATABASE_MAX_OPEN_CONNS must be positive, got %d", c.Database.MaxOpenConns)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.HTTP.Host, c.HTTP.Port)
}
