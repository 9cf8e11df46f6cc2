package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,       default=8080"`
	Env      string `env:"ENV,        default=development"`
	LogLevel string `env:"LOG_LEVEL,  default=info"`

	// JWTSecret signs every session token. It has no default: the process
	// fails closed at startup rather than run with an empty key.
	JWTSecret string `env:"JWT_SECRET, required"`

	Postgres PostgresConfig
}

type PostgresConfig struct {
	URL string `env:"DATABASE_URL, default=postgres://localhost:5432/catering?sslmode=disable"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
