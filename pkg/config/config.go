// Package config loads runtime settings from DATAURI_* environment
// variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings consumed by the default collaborators and the
// CLI.
type Config struct {
	// HTTPTimeout bounds a single remote fetch end to end.
	HTTPTimeout time.Duration `env:"DATAURI_HTTP_TIMEOUT" envDefault:"30s"`
	// UserAgent is sent on every remote fetch.
	UserAgent string `env:"DATAURI_USER_AGENT" envDefault:"data-uri/1.0"`
	// Offline disables the HTTP transport entirely. URL builds then fail
	// with a transport-unavailable error.
	Offline bool `env:"DATAURI_OFFLINE" envDefault:"false"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"DATAURI_LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}

// Default returns the built-in settings, ignoring the environment.
func Default() *Config {
	return &Config{
		HTTPTimeout: 30 * time.Second,
		UserAgent:   "data-uri/1.0",
		LogLevel:    "info",
	}
}
