package apperror

import (
	"fmt"
	"net/http"
	"strings"
)

// AppError is a custom error type that includes an HTTP status code and an optional underlying error.
type AppError struct {
	Code    int    // HTTP Status Code (e.g., 400, 404)
	Message string // User-facing error message
	Err     error  // The underlying error, if any (not exposed to user)
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with a status code and message.
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new AppError wrapping an existing error.
func Wrap(err error, code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// FieldViolation describes a single field-level validation failure.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is an AppError carrying the full list of field violations,
// so a single round trip reports everything wrong with a request.
type ValidationError struct {
	AppError
	Violations []FieldViolation
}

// Unwrap exposes the embedded AppError so errors.As resolves the status
// code and message of a ValidationError like any other AppError.
func (e *ValidationError) Unwrap() error {
	return &e.AppError
}

// NewValidation creates a 400 error from one or more field violations.
// The message joins every violation, not only the first.
func NewValidation(violations []FieldViolation) *ValidationError {
	msgs := make([]string, len(violations))
	for i, v := range violations {
		msgs[i] = fmt.Sprintf("%s: %s", v.Field, v.Message)
	}
	return &ValidationError{
		AppError: AppError{
			Code:    http.StatusBadRequest,
			Message: strings.Join(msgs, "; "),
		},
		Violations: violations,
	}
}

// NotFound creates a 404 error for a missing resource.
func NotFound(resource string) *AppError {
	return New(http.StatusNotFound, resource+" not found")
}

// Unauthorized creates a 401 error.
func Unauthorized(message string) *AppError {
	if message == "" {
		message = "authentication required"
	}
	return New(http.StatusUnauthorized, message)
}

// Forbidden creates a 403 error.
func Forbidden(message string) *AppError {
	if message == "" {
		message = "insufficient permissions"
	}
	return New(http.StatusForbidden, message)
}

// Conflict creates a 409 error, typically for unique constraint violations.
func Conflict(message string) *AppError {
	return New(http.StatusConflict, message)
}

// Internal wraps an unexpected error as a 500. The wrapped detail is logged
// server-side only and never reaches the client.
func Internal(err error) *AppError {
	return Wrap(err, http.StatusInternalServerError, "internal server error")
}
