// Package config loads service configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the server settings.
type Config struct {
	// Addr is the listen address for the HTTP API.
	Addr string `env:"SEABATTLE_ADDR" envDefault:"127.0.0.1:4239"`
	// DBPath is the SQLite database file. Empty selects the in-memory
	// store.
	DBPath string `env:"SEABATTLE_DB_PATH"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
