package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds the application configuration
type Config struct {
	Port          string        // Service port
	DatabaseURL   string        // PostgreSQL connection string
	TokenSecret   string        // Secret for signing access tokens
	TokenTTL      time.Duration // Access token TTL
	AlbumsBaseURL string        // Base URL of the albums service
	LogLevel      string        // Minimum log level (debug, info, warn, error)
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	config := &Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		TokenSecret:   getEnv("TOKEN_SECRET", ""),
		TokenTTL:      time.Hour, // Default 1 hour
		AlbumsBaseURL: getEnv("ALBUMS_BASE_URL", ""),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}

	// Parse TOKEN_TTL if provided
	if ttlStr := os.Getenv("TOKEN_TTL"); ttlStr != "" {
		duration, err := time.ParseDuration(ttlStr)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_TTL format: %w", err)
		}
		config.TokenTTL = duration
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}

	if c.TokenSecret == "" {
		return fmt.Errorf("TOKEN_SECRET cannot be empty")
	}

	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive")
	}

	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL cannot be empty")
	}

	return nil
}

// getEnv retrieves an environment variable or returns a fallback value
func getEnv(key, fallback string) string {
	// Check for _FILE suffix
	if fileValue := os.Getenv(key + "_FILE"); fileValue != "" {
		content, err := os.ReadFile(fileValue)
		if err == nil {
			return strings.TrimSpace(string(content))
		}
	}

	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
