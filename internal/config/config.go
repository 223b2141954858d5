// Package config loads server settings from GEOQUEST_* environment variables
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/celala99/cela-geo-quest/internal/errors"
)

// Dex storage backends
const (
	DexBackendSQLite = "sqlite"
	DexBackendRedis  = "redis"
)

// Config holds the settings for the server and the CLI commands
type Config struct {
	// DatasetSource is a file path or an http(s) URL
	DatasetSource string `env:"GEOQUEST_DATASET" envDefault:"dataset.json"`

	GRPCPort int `env:"GEOQUEST_GRPC_PORT" envDefault:"50051"`

	DexBackend    string `env:"GEOQUEST_DEX_BACKEND" envDefault:"sqlite"`
	SQLitePath    string `env:"GEOQUEST_SQLITE_PATH" envDefault:"geoquest.db"`
	RedisAddr     string `env:"GEOQUEST_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"GEOQUEST_REDIS_PASSWORD"`
	RedisDB       int    `env:"GEOQUEST_REDIS_DB" envDefault:"0"`

	CounterDelay time.Duration `env:"GEOQUEST_COUNTER_DELAY" envDefault:"550ms"`
	FetchTimeout time.Duration `env:"GEOQUEST_FETCH_TIMEOUT" envDefault:"10s"`

	LogLevel string `env:"GEOQUEST_LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment into a Config. Callers apply flag overrides
// and then call Validate.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	return cfg, nil
}

// Validate checks the settings
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("DatasetSource", c.DatasetSource, vb)
	errors.ValidateRange("GRPCPort", c.GRPCPort, 1, 65535, vb)
	errors.ValidateEnum("DexBackend", c.DexBackend, []string{DexBackendSQLite, DexBackendRedis}, vb)
	errors.ValidateEnum("LogLevel", strings.ToLower(c.LogLevel), []string{"debug", "info", "warn", "error"}, vb)

	switch c.DexBackend {
	case DexBackendSQLite:
		errors.ValidateRequired("SQLitePath", c.SQLitePath, vb)
	case DexBackendRedis:
		errors.ValidateRequired("RedisAddr", c.RedisAddr, vb)
	}

	if c.CounterDelay < 0 {
		vb.Field("CounterDelay", "must not be negative")
	}
	if c.FetchTimeout <= 0 {
		vb.Field("FetchTimeout", "must be positive")
	}

	return vb.Build()
}

// SlogLevel converts LogLevel for slog handlers. Unknown values read as info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
