// Package mocks provides mock implementations of the store interfaces
// for testing.
package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/customer-api/internal/domain"
	"github.com/phrazzld/customer-api/internal/store"
)

// MockCustomerStore implements store.CustomerStore for testing.
// Each method first consults its function field, allowing tests to inject
// behavior; otherwise a map-backed default implementation is used.
type MockCustomerStore struct {
	CreateFn     func(ctx context.Context, input domain.CreateCustomerInput) (*domain.Customer, error)
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	GetByEmailFn func(ctx context.Context, email string) (*domain.Customer, error)
	ListFn       func(ctx context.Context, limit, offset int) ([]*domain.Customer, error)
	UpdateFn     func(ctx context.Context, id uuid.UUID, input domain.UpdateCustomerInput) (*domain.Customer, error)
	DeleteFn     func(ctx context.Context, id uuid.UUID) (bool, error)

	mu        sync.Mutex
	Customers map[uuid.UUID]*domain.Customer

	// CreateCalls counts how many times Create reached the default
	// implementation; used to assert that failed pre-checks do not
	// insert rows.
	CreateCalls int
}

// NewMockCustomerStore creates a new mock store with initialized defaults.
func NewMockCustomerStore() *MockCustomerStore {
	return &MockCustomerStore{
		Customers: make(map[uuid.UUID]*domain.Customer),
	}
}

// Ensure MockCustomerStore implements store.CustomerStore interface
var _ store.CustomerStore = (*MockCustomerStore)(nil)

// Seed inserts a customer directly into the backing map, bypassing the
// Create bookkeeping.
func (m *MockCustomerStore) Seed(customer *domain.Customer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Customers[customer.ID] = customer
}

// Create implements the CustomerStore interface.
func (m *MockCustomerStore) Create(
	ctx context.Context,
	input domain.CreateCustomerInput,
) (*domain.Customer, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, input)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateCalls++

	for _, existing := range m.Customers {
		if existing.Email == input.Email {
			return nil, store.ErrEmailExists
		}
	}

	customer := &domain.Customer{
		ID:          uuid.New(),
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		Address:     input.Address,
		City:        input.City,
		State:       input.State,
		Country:     input.Country,
		DateCreated: time.Now().UTC(),
	}
	m.Customers[customer.ID] = customer
	return customer, nil
}

// GetByID implements the CustomerStore interface.
func (m *MockCustomerStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	customer, ok := m.Customers[id]
	if !ok {
		return nil, store.ErrCustomerNotFound
	}
	return customer, nil
}

// GetByEmail implements the CustomerStore interface.
func (m *MockCustomerStore) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, customer := range m.Customers {
		if customer.Email == email {
			return customer, nil
		}
	}
	return nil, store.ErrCustomerNotFound
}

// List implements the CustomerStore interface.
// The default implementation orders newest-first like the real store.
func (m *MockCustomerStore) List(ctx context.Context, limit, offset int) ([]*domain.Customer, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, limit, offset)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	all := make([]*domain.Customer, 0, len(m.Customers))
	for _, customer := range m.Customers {
		all = append(all, customer)
	}
	for i := 0; i < len(all); i++ {
		for j := i + 1; j < len(all); j++ {
			if all[j].DateCreated.After(all[i].DateCreated) {
				all[i], all[j] = all[j], all[i]
			}
		}
	}

	if offset >= len(all) {
		return []*domain.Customer{}, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

// Update implements the CustomerStore interface.
func (m *MockCustomerStore) Update(
	ctx context.Context,
	id uuid.UUID,
	input domain.UpdateCustomerInput,
) (*domain.Customer, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, input)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	customer, ok := m.Customers[id]
	if !ok {
		return nil, store.ErrCustomerNotFound
	}

	if input.Email != nil {
		for otherID, other := range m.Customers {
			if otherID != id && other.Email == *input.Email {
				return nil, store.ErrEmailExists
			}
		}
		customer.Email = *input.Email
	}
	if input.FirstName != nil {
		customer.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		customer.LastName = *input.LastName
	}
	if input.PhoneNumber != nil {
		customer.PhoneNumber = input.PhoneNumber
	}
	if input.Address != nil {
		customer.Address = input.Address
	}
	if input.City != nil {
		customer.City = input.City
	}
	if input.State != nil {
		customer.State = input.State
	}
	if input.Country != nil {
		customer.Country = input.Country
	}

	return customer, nil
}

// Delete implements the CustomerStore interface.
func (m *MockCustomerStore) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.Customers[id]; !ok {
		return false, nil
	}
	delete(m.Customers, id)
	return true, nil
}
