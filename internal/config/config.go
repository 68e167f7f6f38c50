// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Data      DataConfig
	Assistant AssistantConfig
	Logging   LoggingConfig
	App       AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
}

// DataConfig holds paths to the static datasets.
type DataConfig struct {
	// FlightsFile is the JSON catalog of flight records.
	FlightsFile string `env:"DATA_FLIGHTS_FILE" envDefault:"data/flights.json"`

	// PolicyFile is the knowledge-base document for policy answering.
	PolicyFile string `env:"DATA_POLICY_FILE" envDefault:"data/visa_rules.md"`
}

// AssistantConfig holds assistant behavior settings.
type AssistantConfig struct {
	// MaxResults bounds the number of flights shown per reply.
	MaxResults int `env:"ASSISTANT_MAX_RESULTS" envDefault:"5"`

	// MaxHistoryTurns bounds the dialogue history kept per session.
	MaxHistoryTurns int `env:"ASSISTANT_MAX_HISTORY_TURNS" envDefault:"20"`

	// PolicyTopK is the number of knowledge-base chunks retrieved per
	// policy question.
	PolicyTopK int `env:"ASSISTANT_POLICY_TOP_K" envDefault:"4"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}

	if cfg.Data.FlightsFile == "" {
		return fmt.Errorf("DATA_FLIGHTS_FILE must not be empty")
	}

	if cfg.Assistant.MaxResults < 1 {
		return fmt.Errorf("ASSISTANT_MAX_RESULTS must be at least 1, got %d", cfg.Assistant.MaxResults)
	}
	if cfg.Assistant.MaxHistoryTurns < 1 {
		return fmt.Errorf("ASSISTANT_MAX_HISTORY_TURNS must be at least 1, got %d", cfg.Assistant.MaxHistoryTurns)
	}
	if cfg.Assistant.PolicyTopK < 1 {
		return fmt.Errorf("ASSISTANT_POLICY_TOP_K must be at least 1, got %d", cfg.Assistant.PolicyTopK)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
