// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/sailing-search/sailing-listing-service/internal/domain"
	"github.com/sailing-search/sailing-listing-service/internal/infrastructure/logger"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Timeouts TimeoutConfig
	Sources  SourceConfig
	Listing  ListingConfig
	Logging  LoggingConfig
	App      AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
}

// TimeoutConfig holds timeout settings for listing operations.
type TimeoutConfig struct {
	// Fetch bounds how long one request waits for its sailing sources
	Fetch time.Duration `env:"TIMEOUT_FETCH" envDefault:"5s"`
}

// SourceConfig selects where sailings are loaded from.
// When APIURL is set the remote API is used; otherwise the bundled fixture.
type SourceConfig struct {
	APIURL      string `env:"SAILINGS_API_URL"`
	FixturePath string `env:"SAILINGS_FIXTURE_PATH" envDefault:"docs/response-mock/sailings.json"`
	UserAgent   string `env:"SAILINGS_USER_AGENT" envDefault:"sailing-listing/1.0"`
}

// ListingConfig holds listing presentation settings.
type ListingConfig struct {
	PageSize int `env:"LISTING_PAGE_SIZE" envDefault:"10"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
	Caller bool   `env:"LOG_CALLER" envDefault:"false"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env  string `env:"APP_ENV" envDefault:"development"`
	Name string `env:"SERVICE_NAME" envDefault:"sailing-listing"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("No .env file found, using environment variables")
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
	// Validate server port
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	// Validate timeouts are positive
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}
	if cfg.Timeouts.Fetch <= 0 {
		return fmt.Errorf("TIMEOUT_FETCH must be positive")
	}

	// The fetch budget must fit inside a single response write
	if cfg.Timeouts.Fetch >= cfg.Server.WriteTimeout {
		return fmt.Errorf("TIMEOUT_FETCH (%s) should be less than SERVER_WRITE_TIMEOUT (%s)",
			cfg.Timeouts.Fetch, cfg.Server.WriteTimeout)
	}

	if cfg.Sources.APIURL != "" {
		u, err := url.Parse(cfg.Sources.APIURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("SAILINGS_API_URL must be an absolute http(s) URL; got %q", cfg.Sources.APIURL)
		}
	} else if cfg.Sources.FixturePath == "" {
		return fmt.Errorf("one of SAILINGS_API_URL or SAILINGS_FIXTURE_PATH must be set")
	}

	if cfg.Listing.PageSize < 1 || cfg.Listing.PageSize > domain.MaxPageSize {
		return fmt.Errorf("LISTING_PAGE_SIZE must be between 1 and %d, got %d", domain.MaxPageSize, cfg.Listing.PageSize)
	}

	// Validate log level
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	// Validate log format
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	// Validate app environment
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

// UsesAPI returns true if sailings are loaded from the remote API.
func (c *Config) UsesAPI() bool {
	return c.Sources.APIURL != ""
}

// LoggerConfig converts the logging settings to a logger.Config.
func (c *Config) LoggerConfig() logger.Config {
	return logger.Config{
		Level:        c.Logging.Level,
		Format:       c.Logging.Format,
		EnableCaller: c.Logging.Caller,
		ServiceName:  c.App.Name,
	}
}
