package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. Entity-specific variants wrap it so callers can check either.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a customer with the same email).
	ErrDuplicate = errors.New("entity already exists")

	// ErrCustomerNotFound indicates that the requested customer does not
	// exist in the store.
	ErrCustomerNotFound = fmt.Errorf("%w: customer", ErrNotFound)

	// ErrEmailExists indicates that a customer with the given email already
	// exists. The unique index on the email column is the source of truth;
	// this error is how a violation of it surfaces to callers.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
