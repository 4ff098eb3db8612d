package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/phrazzld/customer-api/internal/domain"
)

// CustomerStore defines the interface for customer data persistence.
// Implementations own the physical schema; callers never construct
// storage-specific queries themselves.
type CustomerStore interface {
	// Create inserts a new customer. The store generates the customer ID
	// and creation timestamp server-side and returns the full persisted
	// record. Returns ErrEmailExists if the email collides with an
	// existing row.
	Create(ctx context.Context, input domain.CreateCustomerInput) (*domain.Customer, error)

	// GetByID retrieves a customer by primary key.
	// Returns ErrCustomerNotFound if no row matches.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error)

	// GetByEmail retrieves a customer via the unique email index.
	// Returns ErrCustomerNotFound if no row matches.
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)

	// List returns up to limit customers ordered by creation time
	// descending, skipping offset rows. An empty result is an empty
	// slice, never an error.
	List(ctx context.Context, limit, offset int) ([]*domain.Customer, error)

	// Update applies a partial update: only the fields present in input
	// are touched. With zero present fields it behaves like GetByID.
	// Returns ErrCustomerNotFound if no row matches the ID, and
	// ErrEmailExists if a present email collides with another row.
	Update(ctx context.Context, id uuid.UUID, input domain.UpdateCustomerInput) (*domain.Customer, error)

	// Delete removes the customer if present and reports whether a row
	// was actually removed. Deleting a missing ID is not an error.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
