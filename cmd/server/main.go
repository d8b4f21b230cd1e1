package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	httpapi "pramaan/internal/http"
	"pramaan/internal/platform/config"
	"pramaan/internal/platform/httpserver"
	"pramaan/internal/platform/logger"
	ratelimitmw "pramaan/internal/ratelimit/middleware"
	ratelimitsvc "pramaan/internal/ratelimit/service"
	"pramaan/internal/ratelimit/store/bucket"
	"pramaan/internal/validation/handler"
	"pramaan/internal/validation/metrics"
	validationsvc "pramaan/internal/validation/service"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	validationMetrics := metrics.New(registry)
	validation, err := validationsvc.New(validationMetrics, validationsvc.WithLogger(log))
	if err != nil {
		log.Error("building validation service", "error", err)
		os.Exit(1)
	}

	limiter, err := ratelimitsvc.New(bucket.NewInMemoryStore(), ratelimitsvc.WithLogger(log))
	if err != nil {
		log.Error("building rate limiter", "error", err)
		os.Exit(1)
	}

	router := httpapi.NewRouter(httpapi.Deps{
		Logger:        log,
		Validation:    handler.New(validation, log),
		RateLimit:     ratelimitmw.New(limiter, log, ratelimitmw.WithDisabled(cfg.RateLimitDisabled)),
		AllowedOrigin: cfg.AllowedOrigin,
		Registry:      registry,
	})

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting pramaan", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
