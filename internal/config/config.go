package config

import (
	"os"
	"strconv"

	"pulseboard/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Data   DataConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// DataConfig holds sample dataset settings
type DataConfig struct {
	// Rows is the size of the generated dataset, fixed for the process lifetime.
	Rows int
	// Seed drives the generator. Zero or negative means system entropy,
	// making runs non-reproducible between sessions.
	Seed int64
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: envOr("PULSEBOARD_PORT", "8080"),
		},
		Data: DataConfig{
			Rows: 300,
			Seed: 0,
		},
	}

	if v := os.Getenv("PULSEBOARD_ROWS"); v != "" {
		rows, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid PULSEBOARD_ROWS %q", v)
		}
		cfg.Data.Rows = rows
	}

	if v := os.Getenv("PULSEBOARD_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid PULSEBOARD_SEED %q", v)
		}
		cfg.Data.Seed = seed
	}

	if err := validate(cfg); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.ConfigInvalid("server port must not be empty")
	}
	if cfg.Data.Rows <= 0 {
		return errors.ConfigInvalid("dataset row count must be positive")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
