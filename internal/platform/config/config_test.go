package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg := FromEnv()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "http://localhost:3000", cfg.AllowedOrigin)
	assert.False(t, cfg.RateLimitDisabled)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PRAMAAN_ADDR", ":9999")
	t.Setenv("PRAMAAN_ALLOWED_ORIGIN", "https://forms.example.gov.in")
	t.Setenv("PRAMAAN_RATE_LIMIT_DISABLED", "true")
	t.Setenv("PRAMAAN_LOG_LEVEL", "debug")

	cfg := FromEnv()

	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "https://forms.example.gov.in", cfg.AllowedOrigin)
	assert.True(t, cfg.RateLimitDisabled)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warn"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
	assert.Equal(t, slog.LevelInfo, parseLevel("nonsense"))
}
