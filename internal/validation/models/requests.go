package models

import (
	"strings"

	"pramaan/pkg/apperrors"
)

// maxInputLength bounds raw input before any digit parsing so oversized
// bodies are rejected cheaply. Generous enough for grouped formats like
// "1234 5678 9012".
const maxInputLength = 64

// ValidateRequest is the body of POST /api/validate.
type ValidateRequest struct {
	AadhaarNumber string `json:"aadhaar_number"`
}

func (r *ValidateRequest) Normalize() {
	if r == nil {
		return
	}
	r.AadhaarNumber = strings.TrimSpace(r.AadhaarNumber)
}

// Follows validation order: Size -> Required. Digit syntax is the engine's
// concern; a syntactically bad number is a valid request with a false result.
func (r *ValidateRequest) Validate() error {
	if r == nil {
		return apperrors.New(apperrors.CodeBadRequest, "request is required")
	}
	if len(r.AadhaarNumber) > maxInputLength {
		return apperrors.New(apperrors.CodeBadRequest, "aadhaar_number must be 64 characters or less")
	}
	if r.AadhaarNumber == "" {
		return apperrors.New(apperrors.CodeBadRequest, "aadhaar_number is required")
	}
	return nil
}

// GenerateRequest is the body of POST /api/generate.
type GenerateRequest struct {
	Prefix string `json:"prefix"`
}

func (r *GenerateRequest) Normalize() {
	if r == nil {
		return
	}
	r.Prefix = strings.TrimSpace(r.Prefix)
}

func (r *GenerateRequest) Validate() error {
	if r == nil {
		return apperrors.New(apperrors.CodeBadRequest, "request is required")
	}
	if len(r.Prefix) > maxInputLength {
		return apperrors.New(apperrors.CodeBadRequest, "prefix must be 64 characters or less")
	}
	if r.Prefix == "" {
		return apperrors.New(apperrors.CodeBadRequest, "prefix is required")
	}
	return nil
}
