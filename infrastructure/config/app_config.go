package config

import (
	"os"
	"time"

	"jobdeck/logging"
)

// AppConfig holds application-wide system configuration.
// This is infrastructure configuration, not user view preferences.
type AppConfig struct {
	HTTPAddr    string
	HTTPLogPath string
	Backend     *BackendConfig
	Logging     *logging.Config
}

// BackendConfig holds connection settings for the job sync backend.
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

// LoadAppConfigFromEnv loads complete application configuration from environment variables.
func LoadAppConfigFromEnv() *AppConfig {
	return &AppConfig{
		HTTPAddr:    getEnvWithDefault("HTTP_ADDR", ":8080"),
		HTTPLogPath: getEnvWithDefault("HTTP_LOG_PATH", ""),
		Backend:     LoadBackendConfigFromEnv(),
		Logging:     LoadLoggingConfigFromEnv(),
	}
}

// LoadBackendConfigFromEnv loads backend connection configuration from environment variables.
func LoadBackendConfigFromEnv() *BackendConfig {
	return &BackendConfig{
		BaseURL: getEnvWithDefault("BACKEND_BASE_URL", "http://localhost:8000"),
		Timeout: getEnvDurationWithDefault("BACKEND_TIMEOUT", 30*time.Second),
	}
}

// LoadLoggingConfigFromEnv loads logging configuration from environment variables.
func LoadLoggingConfigFromEnv() *logging.Config {
	return &logging.Config{
		Level:  getEnvWithDefault("LOG_LEVEL", "info"),
		Format: getEnvWithDefault("LOG_FORMAT", "json"),
		Output: getEnvWithDefault("LOG_OUTPUT", "stdout"),
	}
}

// Helper functions for environment variable parsing.
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
