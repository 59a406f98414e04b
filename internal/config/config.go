package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultDBPath is used when GAMIFY_DB_PATH is not set.
const DefaultDBPath = "./database.sqlite"

// Config holds the runtime configuration for gamify.
type Config struct {
	DBPath    string `env:"GAMIFY_DB_PATH" envDefault:"./database.sqlite"`
	LogLevel  string `env:"GAMIFY_LOG_LEVEL" envDefault:"info"`  // debug, info, warn, error
	LogFormat string `env:"GAMIFY_LOG_FORMAT" envDefault:"text"` // text or json
}

// Load reads configuration from the environment.
// An optional .env file in dir is loaded first; variables already present in
// the process environment take precedence over the file.
func Load(dir string) (*Config, error) {
	if dir != "" {
		err := godotenv.Load(filepath.Join(dir, ".env"))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load .env: %w", err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values the environment parser cannot.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("GAMIFY_DB_PATH must not be empty")
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q (want text or json)", c.LogFormat)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}
