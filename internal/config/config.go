package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"dd-backend/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// HTTP and Log read prefixed variables (HTTP_, LOG_); Mongo reads
// MONGO_HOST, MONGO_PORT and DB_NAME without a prefix. Use Load to
// construct a Config once at startup and pass it down explicitly.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev). Only logged.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP configs.HTTP `envPrefix:"HTTP_"`

	Log configs.Logger `envPrefix:"LOG_"`

	// Mongo carries the connection URL parts for the database client.
	Mongo configs.Mongo
}

// Load reads configuration from the process environment. Unset or empty
// variables take their defaults.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom reads configuration from environ instead of the process
// environment.
func LoadFrom(environ map[string]string) (Config, error) {
	if environ == nil {
		environ = map[string]string{}
	}
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
