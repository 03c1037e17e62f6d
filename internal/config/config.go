// Package config handles loading and validating configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the sweepwatch dashboard.
type Config struct {
	// Data source
	SourceURL   string
	HTTPTimeout time.Duration

	// Polling
	PollInterval time.Duration

	// Views
	PageSize    int
	WhaleMinUSD float64
	WhaleWindow time.Duration

	// Optional live sweep stream
	StreamWSURL string

	// UI
	EnableTUI bool

	// Logging
	LogLevel string
	LogFile  string
}

// Load reads configuration from environment variables with fallback to .env file.
// Priority order: Environment variables > .env file > hardcoded defaults
func Load() (*Config, error) {
	// Attempt to load .env file (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		SourceURL:   getEnv("SOURCE_URL", "http://localhost:8000/api/polymarket"),
		HTTPTimeout: time.Duration(getEnvInt("HTTP_TIMEOUT_SECONDS", 10)) * time.Second,

		PollInterval: time.Duration(getEnvInt("POLL_INTERVAL_SECONDS", 5)) * time.Second,

		PageSize:    getEnvInt("PAGE_SIZE", 15),
		WhaleMinUSD: getEnvFloat("WHALE_MIN_USD", 5000),
		WhaleWindow: time.Duration(getEnvInt("WHALE_WINDOW_HOURS", 4)) * time.Hour,

		StreamWSURL: getEnv("SWEEP_STREAM_WS_URL", ""),

		EnableTUI: getEnvBool("ENABLE_TUI", true),

		LogLevel: getEnv("LOG_LEVEL", "INFO"),
		LogFile:  getEnv("LOG_FILE", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration values are set and valid.
func (c *Config) Validate() error {
	if c.SourceURL == "" {
		return fmt.Errorf("SOURCE_URL is required")
	}

	if c.PollInterval < time.Second {
		return fmt.Errorf("POLL_INTERVAL_SECONDS must be at least 1")
	}

	if c.PageSize < 1 {
		return fmt.Errorf("PAGE_SIZE must be at least 1")
	}

	if c.WhaleMinUSD <= 0 {
		return fmt.Errorf("WHALE_MIN_USD must be positive")
	}

	if c.WhaleWindow < time.Hour {
		return fmt.Errorf("WHALE_WINDOW_HOURS must be at least 1")
	}

	return nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an environment variable as an integer or returns a default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvFloat retrieves an environment variable as a float64 or returns a default.
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

// getEnvBool retrieves an environment variable as a boolean or returns a default.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
