// Package apperrors defines the typed error codes the HTTP layer translates
// into status codes and JSON envelopes. Services return these; transport
// never inspects error strings.
package apperrors

import (
	"errors"
	"net/http"
)

// Code identifies an error category for clients.
type Code string

const (
	CodeBadRequest    Code = "bad_request"
	CodeInvalidFormat Code = "invalid_format"
	CodeRateLimited   Code = "rate_limited"
	CodeInternal      Code = "internal"
)

// Error carries a code for transport mapping and a human-readable message
// safe to return to clients.
type Error struct {
	Code    Code
	Message string
	err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.err
}

// New builds an Error with the given code and client-facing message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches an underlying cause so errors.Is still sees sentinels.
func Wrap(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, err: err}
}

// CodeOf extracts the code from err, defaulting to CodeInternal.
func CodeOf(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}

// ToHTTPStatus maps an error code to its HTTP status.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeBadRequest, CodeInvalidFormat:
		return http.StatusBadRequest
	case CodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
