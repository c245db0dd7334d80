// Package config loads runtime settings from CAESAR_* environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"

	"caesar-encoder/internal/logger"
)

const envPrefix = "CAESAR_"

type Config struct {
	LogLevel     string  `env:"LOG_LEVEL" envDefault:"info"`
	JSONLogs     bool    `env:"JSON_LOGS" envDefault:"false"`
	DefaultShift int     `env:"DEFAULT_SHIFT" envDefault:"4"`
	WindowWidth  float32 `env:"WINDOW_WIDTH" envDefault:"640"`
	WindowHeight float32 `env:"WINDOW_HEIGHT" envDefault:"520"`
}

// Load parses the process environment.
func Load() (Config, error) {
	return parse(env.Options{Prefix: envPrefix})
}

// LoadFrom parses the given variables instead of the process environment.
func LoadFrom(vars map[string]string) (Config, error) {
	if vars == nil {
		vars = map[string]string{}
	}
	return parse(env.Options{Prefix: envPrefix, Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid %sLOG_LEVEL: %w", envPrefix, err)
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("invalid window size %.0fx%.0f", c.WindowWidth, c.WindowHeight)
	}
	return nil
}

// Level returns the parsed log level; Validate has already rejected bad values.
func (c Config) Level() zerolog.Level {
	level, _ := logger.ParseLevel(c.LogLevel)
	return level
}
