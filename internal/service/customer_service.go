package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/customer-api/internal/domain"
	"github.com/phrazzld/customer-api/internal/platform/logger"
	"github.com/phrazzld/customer-api/internal/store"
)

// CustomerServiceError is a custom error type for customer service errors.
type CustomerServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for CustomerServiceError.
func (e *CustomerServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("customer service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("customer service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *CustomerServiceError) Unwrap() error {
	return e.Err
}

// NewCustomerServiceError creates a new CustomerServiceError.
func NewCustomerServiceError(operation, message string, err error) *CustomerServiceError {
	return &CustomerServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// CustomerService is the single source of business-rule enforcement for
// customers. It is the only component allowed to reject requests for
// domain reasons; malformed-shape rejection belongs to the transport
// validator.
type CustomerService interface {
	// CreateCustomer validates the input, enforces email uniqueness and
	// persists a new customer. Returns store.ErrEmailExists when the
	// email is taken, either by the advisory pre-check or by the store's
	// unique constraint.
	CreateCustomer(ctx context.Context, input domain.CreateCustomerInput) (*domain.Customer, error)

	// GetCustomerByID validates the identifier format before querying.
	// Returns domain.ErrInvalidID for malformed identifiers and
	// store.ErrCustomerNotFound when the record is absent.
	GetCustomerByID(ctx context.Context, id string) (*domain.Customer, error)

	// GetAllCustomers returns up to limit customers, newest first,
	// skipping offset rows. limit must be in [1,100] and offset >= 0.
	GetAllCustomers(ctx context.Context, limit, offset int) ([]*domain.Customer, error)

	// UpdateCustomer applies a partial update to an existing customer.
	// Present fields are validated with the same rules as create; a
	// changed email re-runs the uniqueness check. An update with zero
	// present fields returns the current record unchanged.
	UpdateCustomer(ctx context.Context, id string, input domain.UpdateCustomerInput) (*domain.Customer, error)

	// DeleteCustomer removes an existing customer permanently.
	// Returns store.ErrCustomerNotFound when the record is absent.
	DeleteCustomer(ctx context.Context, id string) error
}

// customerServiceImpl implements the CustomerService interface.
type customerServiceImpl struct {
	customers store.CustomerStore
	logger    *slog.Logger
}

// NewCustomerService creates a new CustomerService.
// It returns an error if the store dependency is nil.
func NewCustomerService(customers store.CustomerStore, logger *slog.Logger) (CustomerService, error) {
	if customers == nil {
		return nil, domain.NewValidationError("customers", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &customerServiceImpl{
		customers: customers,
		logger:    logger.With(slog.String("component", "customer_service")),
	}, nil
}

// validateCreateInput applies the business rules shared by create and
// update: name length/charset and the phone digit minimum.
func validateCreateInput(input domain.CreateCustomerInput) error {
	if err := domain.ValidateName(input.FirstName, "First name"); err != nil {
		return err
	}
	if err := domain.ValidateName(input.LastName, "Last name"); err != nil {
		return err
	}
	if input.PhoneNumber != nil && *input.PhoneNumber != "" {
		if err := domain.ValidatePhoneNumber(*input.PhoneNumber); err != nil {
			return err
		}
	}
	return nil
}

// CreateCustomer implements CustomerService.CreateCustomer
func (s *customerServiceImpl) CreateCustomer(
	ctx context.Context,
	input domain.CreateCustomerInput,
) (*domain.Customer, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// Advisory uniqueness pre-check for a friendly error message. The
	// store's unique constraint remains the enforcement backstop.
	_, err := s.customers.GetByEmail(ctx, input.Email)
	if err == nil {
		log.Debug("email already exists", slog.String("email", input.Email))
		return nil, store.ErrEmailExists
	}
	if !store.IsNotFoundError(err) {
		return nil, NewCustomerServiceError("create", "email lookup failed", err)
	}

	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	customer, err := s.customers.Create(ctx, input)
	if err != nil {
		// A concurrent insert can slip between the pre-check and the
		// insert; the constraint violation is reported as the same
		// conflict the pre-check would have produced.
		if store.IsDuplicateError(err) {
			log.Debug("lost uniqueness race on create",
				slog.String("email", input.Email))
			return nil, store.ErrEmailExists
		}
		return nil, err
	}

	log.Info("customer created",
		slog.String("customer_id", customer.ID.String()))
	return customer, nil
}

// GetCustomerByID implements CustomerService.GetCustomerByID
func (s *customerServiceImpl) GetCustomerByID(
	ctx context.Context,
	id string,
) (*domain.Customer, error) {
	customerID, err := domain.ParseCustomerID(id)
	if err != nil {
		return nil, err
	}

	return s.customers.GetByID(ctx, customerID)
}

// GetAllCustomers implements CustomerService.GetAllCustomers
func (s *customerServiceImpl) GetAllCustomers(
	ctx context.Context,
	limit, offset int,
) ([]*domain.Customer, error) {
	if limit < 1 || limit > 100 {
		return nil, domain.NewValidationError("limit",
			"Limit must be between 1 and 100", nil)
	}

	if offset < 0 {
		return nil, domain.NewValidationError("offset",
			"Offset must be non-negative", nil)
	}

	return s.customers.List(ctx, limit, offset)
}

// UpdateCustomer implements CustomerService.UpdateCustomer
func (s *customerServiceImpl) UpdateCustomer(
	ctx context.Context,
	id string,
	input domain.UpdateCustomerInput,
) (*domain.Customer, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	customerID, err := domain.ParseCustomerID(id)
	if err != nil {
		return nil, err
	}

	existing, err := s.customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	// Re-run the uniqueness check only when the email actually changes;
	// setting the same value again must not conflict with the record
	// itself. The comparison is case-sensitive against the stored value.
	if input.Email != nil && *input.Email != existing.Email {
		_, err := s.customers.GetByEmail(ctx, *input.Email)
		if err == nil {
			log.Debug("email already exists",
				slog.String("customer_id", customerID.String()))
			return nil, store.ErrEmailExists
		}
		if !store.IsNotFoundError(err) {
			return nil, NewCustomerServiceError("update", "email lookup failed", err)
		}
	}

	if input.FirstName != nil {
		if err := domain.ValidateName(*input.FirstName, "First name"); err != nil {
			return nil, err
		}
	}
	if input.LastName != nil {
		if err := domain.ValidateName(*input.LastName, "Last name"); err != nil {
			return nil, err
		}
	}
	if input.PhoneNumber != nil && *input.PhoneNumber != "" {
		if err := domain.ValidatePhoneNumber(*input.PhoneNumber); err != nil {
			return nil, err
		}
	}

	customer, err := s.customers.Update(ctx, customerID, input)
	if err != nil {
		if store.IsNotFoundError(err) {
			// The record existed at the load above, so the row vanished
			// between the two statements. Reported as a server fault for
			// parity with the prior behavior.
			// TODO: reconsider classifying this race as NotFound instead.
			log.Error("customer disappeared between load and update",
				slog.String("customer_id", customerID.String()))
			return nil, ErrUpdateFailed
		}
		if store.IsDuplicateError(err) {
			return nil, store.ErrEmailExists
		}
		return nil, err
	}

	log.Info("customer updated",
		slog.String("customer_id", customerID.String()))
	return customer, nil
}

// DeleteCustomer implements CustomerService.DeleteCustomer
func (s *customerServiceImpl) DeleteCustomer(ctx context.Context, id string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	customerID, err := domain.ParseCustomerID(id)
	if err != nil {
		return err
	}

	if _, err := s.customers.GetByID(ctx, customerID); err != nil {
		return err
	}

	deleted, err := s.customers.Delete(ctx, customerID)
	if err != nil {
		return err
	}
	if !deleted {
		log.Error("customer disappeared between load and delete",
			slog.String("customer_id", customerID.String()))
		return ErrDeleteFailed
	}

	log.Info("customer deleted",
		slog.String("customer_id", customerID.String()))
	return nil
}
