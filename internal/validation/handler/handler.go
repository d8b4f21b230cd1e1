// Package handler is the thin HTTP layer for the validation API. It parses
// requests, delegates to the service, and maps errors to JSON envelopes;
// checksum logic never lives here.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pramaan/internal/validation/models"
	"pramaan/pkg/apperrors"
)

type ValidationService interface {
	Validate(ctx context.Context, raw string) *models.ValidateResponse
	Generate(ctx context.Context, rawPrefix string) (*models.GenerateResponse, error)
}

type Handler struct {
	svc    ValidationService
	logger *slog.Logger
}

func New(svc ValidationService, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// Register wires the public validation endpoints.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/validate", h.handleValidate)
	r.Post("/api/generate", h.handleGenerate)
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req models.ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, apperrors.New(apperrors.CodeBadRequest, "invalid request body"))
		return
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, h.svc.Validate(r.Context(), req.AadhaarNumber))
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, apperrors.New(apperrors.CodeBadRequest, "invalid request body"))
		return
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		h.writeError(w, err)
		return
	}

	res, err := h.svc.Generate(r.Context(), req.Prefix)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("encoding response", "error", err)
	}
}

// writeError centralizes error translation so every endpoint returns the
// same {error, message} envelope.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	code := apperrors.CodeOf(err)
	status := apperrors.ToHTTPStatus(code)

	message := err.Error()
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", "error", err)
		message = "internal error"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":   string(code),
		"message": message,
	})
}
