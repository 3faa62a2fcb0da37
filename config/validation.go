package config

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the loaded configuration is usable.
func ValidateConfig(cfg *Config) error {
	var errors []string

	switch cfg.DBDriver {
	case "sqlite":
		if cfg.DBPath == "" {
			errors = append(errors, "DB_PATH is required when DB_DRIVER is sqlite")
		}
	case "postgres":
		if cfg.DBHost == "" {
			errors = append(errors, "DB_HOST is required when DB_DRIVER is postgres")
		}
		if cfg.DBName == "" {
			errors = append(errors, "DB_NAME is required when DB_DRIVER is postgres")
		}
		if IsProduction() && cfg.DBPassword == "" {
			errors = append(errors, "DB_PASSWORD is required in production")
		}
	default:
		errors = append(errors, fmt.Sprintf("unknown DB_DRIVER %q (expected sqlite or postgres)", cfg.DBDriver))
	}

	if cfg.ServerPort == "" {
		errors = append(errors, "SERVER_PORT must not be empty")
	}

	if u, err := url.Parse(cfg.APIBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errors = append(errors, fmt.Sprintf("API_BASE_URL %q is not a valid URL", cfg.APIBaseURL))
	}

	if cfg.RedisURL != "" {
		if _, err := url.Parse(cfg.RedisURL); err != nil {
			errors = append(errors, fmt.Sprintf("REDIS_URL %q is not a valid URL", cfg.RedisURL))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
