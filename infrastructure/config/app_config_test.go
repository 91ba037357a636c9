package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadAppConfigFromEnv_Defaults(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("BACKEND_BASE_URL", "")
	t.Setenv("BACKEND_TIMEOUT", "")

	cfg := LoadAppConfigFromEnv()

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "http://localhost:8000", cfg.Backend.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadAppConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("BACKEND_BASE_URL", "http://backend.internal:8000")
	t.Setenv("BACKEND_TIMEOUT", "5s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := LoadAppConfigFromEnv()

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "http://backend.internal:8000", cfg.Backend.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestBackendTimeout_InvalidFallsBackToDefault(t *testing.T) {
	t.Setenv("BACKEND_TIMEOUT", "soon")

	cfg := LoadBackendConfigFromEnv()

	assert.Equal(t, 30*time.Second, cfg.Timeout)
}
