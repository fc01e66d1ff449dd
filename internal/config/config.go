// Package config loads process configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the full process configuration.
type Config struct {
	ListenAddr string `env:"MARS_LISTEN_ADDR" envDefault:":8080"`

	MongoURL         string `env:"MARS_MONGO_URL" envDefault:"mongodb://localhost:27017"`
	MongoMinPoolSize uint64 `env:"MARS_MONGO_MIN_POOL_SIZE" envDefault:"4"`
	MongoMaxPoolSize uint64 `env:"MARS_MONGO_MAX_POOL_SIZE" envDefault:"16"`

	RedisURL string `env:"MARS_REDIS_URL" envDefault:"redis://localhost:6379"`

	// UseExponentialXP selects the exponential leveling formula over the
	// linear one, network-wide.
	UseExponentialXP bool `env:"MARS_USE_EXPONENTIAL_XP" envDefault:"true"`

	// AltLookupConcurrency caps in-flight per-IP lookups during a single
	// alt-account resolution.
	AltLookupConcurrency int64 `env:"MARS_ALT_LOOKUP_CONCURRENCY" envDefault:"8"`
}

// Load parses configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
