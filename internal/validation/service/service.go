// Package service holds the validation business logic between the HTTP
// handlers and the pure checksum engine.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"pramaan/internal/validation/metrics"
	"pramaan/internal/validation/models"
	"pramaan/pkg/apperrors"
	"pramaan/pkg/verhoeff"
)

// Verdict messages mirror what the form UI displays.
const (
	msgValid   = "Aadhaar number is mathematically valid."
	msgInvalid = "Aadhaar number failed the Verhoeff checksum check."
)

type Service struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func New(m *metrics.Metrics, opts ...Option) (*Service, error) {
	if m == nil {
		return nil, fmt.Errorf("metrics are required")
	}
	svc := &Service{
		logger:  slog.Default(),
		metrics: m,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// Validate runs the checksum over the submitted number. Malformed numbers are
// invalid, never an error; callers always get a definitive verdict.
func (s *Service) Validate(ctx context.Context, raw string) *models.ValidateResponse {
	valid := verhoeff.Validate(raw)
	s.metrics.ObserveValidation(valid)

	// Never log the number itself; it is PII.
	s.logger.DebugContext(ctx, "aadhaar validation", "valid", valid)

	msg := msgInvalid
	if valid {
		msg = msgValid
	}
	return &models.ValidateResponse{Valid: valid, Message: msg}
}

// Generate computes the check digit for an 11-digit prefix and returns the
// completed number. Malformed prefixes fail with CodeInvalidFormat.
func (s *Service) Generate(ctx context.Context, rawPrefix string) (*models.GenerateResponse, error) {
	full, err := verhoeff.Complete(rawPrefix)
	if err != nil {
		s.metrics.IncrementGenerateFailures()
		if errors.Is(err, verhoeff.ErrInvalidFormat) {
			return nil, apperrors.Wrap(apperrors.CodeInvalidFormat, err.Error(), err)
		}
		return nil, err
	}

	check := int(full[len(full)-1] - '0')
	s.metrics.IncrementGenerated()
	s.logger.DebugContext(ctx, "check digit generated")

	return &models.GenerateResponse{CheckDigit: check, AadhaarNumber: full}, nil
}
