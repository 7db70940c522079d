// Package config loads service configuration from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the server configuration.
type Config struct {
	Port           string   `env:"PORT" envDefault:"8080"`
	ReceiptSecret  string   `env:"RECEIPT_SECRET"`
	ProblemsPerDay int      `env:"PROBLEMS_PER_DAY" envDefault:"5"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
