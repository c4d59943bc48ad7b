package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"brand-lift/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library;
// nested structs are parsed with their envPrefix. Use Load to construct a
// Config.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev). It is attached
	// to every log record.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP     configs.HTTP     `envPrefix:"HTTP_"`
	Log      configs.Logger   `envPrefix:"LOG_"`
	Psql     configs.Postgres `envPrefix:"PSQL_"`
	Channels configs.Channels `envPrefix:"CHANNELS_"`
	Model    configs.Model    `envPrefix:"MODEL_"`
}

// Load reads configuration from environment variables into a Config and
// checks that the model section is usable.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if _, err := cfg.Model.LiftModel(); err != nil {
		return cfg, fmt.Errorf("model config: %w", err)
	}
	return cfg, nil
}
