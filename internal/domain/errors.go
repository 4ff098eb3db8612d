// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when a customer ID is malformed.
	ErrInvalidID = errors.New("invalid ID")
)

// ValidationError carries the offending field alongside a user-facing
// message. It wraps ErrValidation (or a more specific sentinel) so callers
// can classify it with errors.Is while the message stays presentable.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface for ValidationError.
// The message is intentionally client-safe; it is surfaced as-is by the
// transport layer.
func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap returns the wrapped sentinel to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrValidation
}

// NewValidationError creates a ValidationError for the given field.
// The sentinel defaults to ErrValidation when err is nil.
func NewValidationError(field, message string, err error) *ValidationError {
	if err == nil {
		err = ErrValidation
	}
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// IsValidationError checks whether err is any kind of validation failure,
// including malformed identifiers.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation) || errors.Is(err, ErrInvalidID)
}
