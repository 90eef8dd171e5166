// Package config reads registrar settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/lehigh-university-libraries/registrar/internal/selection"
)

var validate = validator.New()

// Config holds every setting that can come from the environment or a .env file.
type Config struct {
	MinCredits int    `env:"REGISTRAR_MIN_CREDITS" envDefault:"16" validate:"gte=0"`
	MaxCredits int    `env:"REGISTRAR_MAX_CREDITS" envDefault:"27" validate:"gtefield=MinCredits"`
	KeyPrefix  string `env:"REGISTRAR_KEY_PREFIX" envDefault:"course_reg_draft_v1" validate:"required"`

	// DataDir is where the BadgerDB store lives.
	DataDir string `env:"REGISTRAR_DATA_DIR" envDefault:".registrar" validate:"required"`

	// Catalog is an optional catalog file; empty means the built-in catalog.
	Catalog string `env:"REGISTRAR_CATALOG"`

	LogLevel string `env:"REGISTRAR_LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
}

// LoadDotEnv loads .env files if present. Missing files are ignored.
func LoadDotEnv(files ...string) {
	_ = godotenv.Load(files...)
}

// Load parses and validates the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Selection returns the engine settings.
func (c Config) Selection() selection.Config {
	return selection.Config{
		MinCredits: c.MinCredits,
		MaxCredits: c.MaxCredits,
		KeyPrefix:  c.KeyPrefix,
	}
}

// StorePath is the BadgerDB directory inside DataDir.
func (c Config) StorePath() string {
	return filepath.Join(c.DataDir, "store")
}

// Level maps LogLevel to a slog level.
func (c Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
