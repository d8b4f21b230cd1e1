// Package httpapi wires the public router: middleware chain, validation
// endpoints, health and metrics.
package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pramaan/internal/platform/middleware/cors"
	"pramaan/internal/platform/middleware/logging"
	"pramaan/internal/platform/middleware/metadata"
	"pramaan/internal/platform/middleware/requestid"
	ratelimitmw "pramaan/internal/ratelimit/middleware"
	"pramaan/internal/validation/handler"
)

// Deps carries everything the router needs; main assembles it.
type Deps struct {
	Logger        *slog.Logger
	Validation    *handler.Handler
	RateLimit     *ratelimitmw.Middleware
	AllowedOrigin string
	Registry      *prometheus.Registry
}

// NewRouter builds the full middleware chain and mounts all endpoints.
// The rate limiter covers only the public /api routes; health and metrics
// stay unthrottled for probes and scrapers.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(requestid.Middleware)
	r.Use(metadata.ClientMetadata)
	r.Use(logging.AccessLog(deps.Logger))
	r.Use(cors.AllowOrigin(deps.AllowedOrigin))

	r.Group(func(r chi.Router) {
		r.Use(deps.RateLimit.RateLimit)
		deps.Validation.Register(r)
	})

	r.Get("/healthz", handleHealth)
	r.Method(http.MethodGet, "/metrics",
		promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
