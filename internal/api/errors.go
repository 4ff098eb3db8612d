package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/customer-api/internal/domain"
	"github.com/phrazzld/customer-api/internal/service"
	"github.com/phrazzld/customer-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error kind. This keeps the kind -> status table in
// one place and prevents leaking internal error types to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Invalid argument errors (malformed IDs, out-of-range pagination,
	// malformed names/phones)
	case domain.IsValidationError(err):
		return http.StatusBadRequest

	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Conflict errors (email collisions)
	case store.IsDuplicateError(err):
		return http.StatusConflict

	// Default: internal server error (includes the zero-rows-affected
	// race reported by the service)
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal
// details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "Internal server error"
	}

	// Validation errors carry their own client-safe message.
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}

	switch {
	case errors.Is(err, store.ErrCustomerNotFound):
		return "Customer not found"

	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"

	case errors.Is(err, service.ErrUpdateFailed):
		return "Failed to update customer"

	case errors.Is(err, service.ErrDeleteFailed):
		return "Failed to delete customer"

	default:
		return "Internal server error"
	}
}
