// Package config loads server configuration from environment variables.
//
// WHY A CONFIG PACKAGE?
// Every deployable setting lives in exactly one struct, loaded in exactly one
// place. Handlers and services never read os.Getenv themselves — they receive
// values through dependency injection, which keeps them testable.
//
// We use the env library (github.com/caarlos0/env) to map environment
// variables onto struct fields via tags, instead of hand-writing os.Getenv
// calls with ad-hoc parsing and defaulting.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds all server settings.
//
// The `env` tag names the environment variable; `envDefault` supplies the
// value when the variable is unset. JWTSecret has no default on purpose:
// the server refuses to start without one.
type Config struct {
	Port      int    `env:"PORT" envDefault:"8080"`
	DBPath    string `env:"DB_PATH" envDefault:"data/marketplace.db"`
	JWTSecret string `env:"JWT_SECRET"`
	Seed      bool   `env:"SEED" envDefault:"true"`
}

// Load reads configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET must be set (try: openssl rand -hex 32)")
	}
	return cfg, nil
}
