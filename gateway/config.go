package gateway

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the configuration for the payment sandbox application.
type Config struct {
	// HTTPAddr is the listen address for the HTTP API.
	HTTPAddr string `env:"HTTP_ADDR" envDefault:"localhost:8080"`
	// ExpiryTZ is an IANA timezone name for card expiry comparisons
	// (e.g., "Australia/Sydney"). Empty means UTC.
	ExpiryTZ string `env:"EXPIRY_TZ"`
}

func DefaultConfig() *Config {
	return &Config{
		HTTPAddr: "localhost:8080",
	}
}

// ConfigFromEnv builds a Config from environment variables.
func ConfigFromEnv() (*Config, error) {
	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	return config, nil
}
