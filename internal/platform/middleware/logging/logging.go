// Package logging provides the access-log middleware.
package logging

import (
	"log/slog"
	"net/http"
	"time"

	"pramaan/internal/platform/middleware/metadata"
	"pramaan/internal/platform/middleware/requestid"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// AccessLog logs one line per request. Request bodies are never logged; they
// carry identity numbers.
func AccessLog(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration_ms", time.Since(start).Milliseconds(),
				"ip", metadata.GetClientIP(r.Context()),
				"request_id", requestid.FromContext(r.Context()),
			)
		})
	}
}
