// Package config builds runtime configuration from the environment so main
// stays lean. A .env file is honored when present for local development.
package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr              string
	AllowedOrigin     string
	RateLimitDisabled bool
	LogLevel          slog.Level
}

// FromEnv reads configuration from the environment, loading .env first when
// one exists. Missing keys fall back to local-development defaults; the
// allowed origin default matches the dev address of the browser form.
func FromEnv() Server {
	// Ignore a missing .env; real deployments set the environment directly.
	_ = godotenv.Load()

	addr := os.Getenv("PRAMAAN_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	origin := os.Getenv("PRAMAAN_ALLOWED_ORIGIN")
	if origin == "" {
		origin = "http://localhost:3000"
	}

	return Server{
		Addr:              addr,
		AllowedOrigin:     origin,
		RateLimitDisabled: os.Getenv("PRAMAAN_RATE_LIMIT_DISABLED") == "true",
		LogLevel:          parseLevel(os.Getenv("PRAMAAN_LOG_LEVEL")),
	}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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
