// Package service enforces the per-client request budget for the public
// validation API.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pramaan/internal/ratelimit/models"
)

// Defaults sized for an interactive form: far above human typing speed,
// low enough to blunt brute-force enumeration of valid numbers.
const (
	DefaultLimit  = 60
	DefaultWindow = time.Minute
)

// BucketStore is the counter backend. Only the in-memory implementation
// exists; the interface keeps the service testable.
type BucketStore interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (*models.Result, error)
	Reset(ctx context.Context, key string) error
}

type Service struct {
	store  BucketStore
	limit  int
	window time.Duration
	logger *slog.Logger
}

type Option func(*Service)

func WithLimit(limit int, window time.Duration) Option {
	return func(s *Service) {
		s.limit = limit
		s.window = window
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func New(store BucketStore, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("bucket store is required")
	}
	svc := &Service{
		store:  store,
		limit:  DefaultLimit,
		window: DefaultWindow,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.limit <= 0 {
		return nil, fmt.Errorf("limit must be positive, got %d", svc.limit)
	}
	return svc, nil
}

// CheckIP applies the request budget for a client IP. A store failure allows
// the request: availability of the validation API wins over strict limiting.
func (s *Service) CheckIP(ctx context.Context, ip string) (*models.Result, error) {
	result, err := s.store.Allow(ctx, "ip:"+ip, s.limit, s.window)
	if err != nil {
		s.logger.ErrorContext(ctx, "rate limit check failed, allowing request", "error", err)
		return &models.Result{Allowed: true, Limit: s.limit}, nil
	}
	if !result.Allowed {
		s.logger.InfoContext(ctx, "rate limit exceeded", "ip", ip, "retry_after", result.RetryAfter)
	}
	return result, nil
}
