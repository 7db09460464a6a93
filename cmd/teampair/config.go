package main

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// config holds the defaults read from TEAMPAIR_* environment variables.
// Command-line flags override every field.
type config struct {
	Seed        int64   `env:"SEED" envDefault:"0"`
	Rounds      int     `env:"ROUNDS" envDefault:"5"`
	Noise       float64 `env:"NOISE" envDefault:"0.1"`
	Stagnation  int     `env:"STAGNATION" envDefault:"10"`
	Parallelism int     `env:"PARALLELISM" envDefault:"1"`
	LogLevel    string  `env:"LOG_LEVEL" envDefault:"info"`
}

const envPrefix = "TEAMPAIR_"

// loadConfig parses environ, or the process environment when environ is nil.
func loadConfig(environ map[string]string) (config, error) {
	var cfg config
	err := env.ParseWithOptions(&cfg, env.Options{
		Prefix:      envPrefix,
		Environment: environ,
	})
	if err != nil {
		aggErr := env.AggregateError{}
		if errors.As(err, &aggErr) && len(aggErr.Errors) > 0 {
			return config{}, fmt.Errorf("environment: %w", aggErr.Errors[0])
		}
		return config{}, fmt.Errorf("environment: %w", err)
	}

	return cfg, nil
}
