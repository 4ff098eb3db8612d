// Package service provides application-level services enforcing the
// business rules around customers.
package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// These errors represent conditions that callers may want to check for with
// errors.Is().
//
// Error handling principles:
// 1. Service methods return sentinel errors for expected error conditions
// 2. Unexpected errors are wrapped in service-specific error types
// 3. Callers use errors.Is/errors.As to check for specific error conditions
// 4. The API layer maps service errors to appropriate HTTP status codes
var (
	// ErrUpdateFailed indicates the store reported no row updated even
	// though the record existed moments earlier (e.g. a concurrent
	// delete between the load and the update).
	// API layer should map this to HTTP 500 Internal Server Error.
	ErrUpdateFailed = errors.New("failed to update customer")

	// ErrDeleteFailed indicates the store reported zero rows removed
	// despite a prior existence check, for the same race-window reason.
	// API layer should map this to HTTP 500 Internal Server Error.
	ErrDeleteFailed = errors.New("failed to delete customer")
)
