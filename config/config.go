package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration (mock backend)
	ServerHost string `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	ServerPort string `envconfig:"SERVER_PORT" default:"3000"`

	// Database configuration. Driver is "sqlite" or "postgres".
	DBDriver   string `envconfig:"DB_DRIVER" default:"sqlite"`
	DBPath     string `envconfig:"DB_PATH" default:"recipevault.db"`
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD" default:""`
	DBName     string `envconfig:"DB_NAME" default:"recipevault"`
	DBSSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`

	// Redis configuration. Optional: the recipe list cache is skipped
	// entirely when RedisHost and RedisURL are both empty.
	RedisHost     string `envconfig:"REDIS_HOST" default:""`
	RedisPort     string `envconfig:"REDIS_PORT" default:"6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`
	RedisURL      string `envconfig:"REDIS_URL" default:""`

	// Base URL the resource client talks to. The original frontend
	// hard-coded this; it is externalized here on purpose.
	APIBaseURL string `envconfig:"API_BASE_URL" default:"http://localhost:3000"`

	// Logging
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"console"`
}

// LoadConfig creates a new Config instance with values from environment
// variables, falling back to a .env file in development.
func LoadConfig() (*Config, error) {
	if IsDevelopment() {
		// Missing .env is fine; real env vars still apply.
		_ = godotenv.Load()
	}

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// ServerAddr returns the listen address of the mock backend.
func (c *Config) ServerAddr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// PostgresDSN builds the DSN used when DBDriver is "postgres".
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// RedisEnabled reports whether a Redis cache should be wired in.
func (c *Config) RedisEnabled() bool {
	return c.RedisHost != "" || c.RedisURL != ""
}
