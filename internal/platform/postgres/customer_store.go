package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/phrazzld/customer-api/internal/domain"
	"github.com/phrazzld/customer-api/internal/platform/logger"
	"github.com/phrazzld/customer-api/internal/store"
)

// customerColumns is the canonical column list shared by every query that
// returns a full customer row.
const customerColumns = `customer_id, first_name, last_name, email, phone_number,
		address, city, state, country, date_created`

// PostgresCustomerStore implements the store.CustomerStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCustomerStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCustomerStore creates a new PostgreSQL implementation of the
// CustomerStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresCustomerStore(db store.DBTX, logger *slog.Logger) *PostgresCustomerStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCustomerStore{
		db:     db,
		logger: logger.With(slog.String("component", "customer_store")),
	}
}

// Ensure PostgresCustomerStore implements store.CustomerStore interface
var _ store.CustomerStore = (*PostgresCustomerStore)(nil)

// scanCustomer reads one customer row from a row scanner.
func scanCustomer(row interface{ Scan(dest ...any) error }) (*domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(
		&c.ID,
		&c.FirstName,
		&c.LastName,
		&c.Email,
		&c.PhoneNumber,
		&c.Address,
		&c.City,
		&c.State,
		&c.Country,
		&c.DateCreated,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create implements store.CustomerStore.Create
// The customer_id and date_created columns are generated by the database;
// the full persisted row is returned.
// Returns store.ErrEmailExists if the unique email index is violated.
func (s *PostgresCustomerStore) Create(
	ctx context.Context,
	input domain.CreateCustomerInput,
) (*domain.Customer, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO customers (first_name, last_name, email, phone_number,
			address, city, state, country)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + customerColumns

	customer, err := scanCustomer(s.db.QueryRowContext(
		ctx,
		query,
		input.FirstName,
		input.LastName,
		input.Email,
		input.PhoneNumber,
		input.Address,
		input.City,
		input.State,
		input.Country,
	))
	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate email during customer creation",
				slog.String("email", input.Email))
			return nil, fmt.Errorf("%w: %v", store.ErrEmailExists, err)
		}

		log.Error("failed to create customer",
			slog.String("error", err.Error()),
			slog.String("email", input.Email))
		return nil, err
	}

	log.Info("customer created",
		slog.String("customer_id", customer.ID.String()))
	return customer, nil
}

// GetByID implements store.CustomerStore.GetByID
// Returns store.ErrCustomerNotFound if the customer does not exist.
func (s *PostgresCustomerStore) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*domain.Customer, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE customer_id = $1
	`

	customer, err := scanCustomer(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("customer not found", slog.String("customer_id", id.String()))
			return nil, store.ErrCustomerNotFound
		}
		log.Error("failed to get customer by ID",
			slog.String("error", err.Error()),
			slog.String("customer_id", id.String()))
		return nil, err
	}

	return customer, nil
}

// GetByEmail implements store.CustomerStore.GetByEmail
// Returns store.ErrCustomerNotFound if the customer does not exist.
func (s *PostgresCustomerStore) GetByEmail(
	ctx context.Context,
	email string,
) (*domain.Customer, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE email = $1
	`

	customer, err := scanCustomer(s.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("customer not found by email")
			return nil, store.ErrCustomerNotFound
		}
		log.Error("failed to get customer by email",
			slog.String("error", err.Error()))
		return nil, err
	}

	return customer, nil
}

// List implements store.CustomerStore.List
// Rows are ordered newest-first on date_created. An empty result is an
// empty slice, never nil.
func (s *PostgresCustomerStore) List(
	ctx context.Context,
	limit, offset int,
) ([]*domain.Customer, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + customerColumns + `
		FROM customers
		ORDER BY date_created DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := s.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		log.Error("failed to list customers",
			slog.String("error", err.Error()),
			slog.Int("limit", limit),
			slog.Int("offset", offset))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	customers := []*domain.Customer{}
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			log.Error("failed to scan customer row",
				slog.String("error", err.Error()))
			return nil, err
		}
		customers = append(customers, customer)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("listed customers",
		slog.Int("count", len(customers)),
		slog.Int("limit", limit),
		slog.Int("offset", offset))
	return customers, nil
}

// buildUpdateClauses translates the field-presence map of an update input
// into SET clauses and their ordered arguments. Only present fields are
// emitted; values are always passed as query parameters.
func buildUpdateClauses(input domain.UpdateCustomerInput) ([]string, []any) {
	var clauses []string
	var args []any

	add := func(column string, value *string) {
		if value == nil {
			return
		}
		args = append(args, *value)
		clauses = append(clauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	add("first_name", input.FirstName)
	add("last_name", input.LastName)
	add("email", input.Email)
	add("phone_number", input.PhoneNumber)
	add("address", input.Address)
	add("city", input.City)
	add("state", input.State)
	add("country", input.Country)

	return clauses, args
}

// Update implements store.CustomerStore.Update
// Only fields present in input are written; customer_id and date_created
// are never touched. An input with zero present fields degrades to
// GetByID. Returns store.ErrCustomerNotFound if no row matches and
// store.ErrEmailExists if a present email collides with another customer.
func (s *PostgresCustomerStore) Update(
	ctx context.Context,
	id uuid.UUID,
	input domain.UpdateCustomerInput,
) (*domain.Customer, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	clauses, args := buildUpdateClauses(input)
	if len(clauses) == 0 {
		return s.GetByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE customers
		SET %s
		WHERE customer_id = $%d
		RETURNING `+customerColumns,
		strings.Join(clauses, ", "),
		len(args),
	)

	customer, err := scanCustomer(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("customer not found for update",
				slog.String("customer_id", id.String()))
			return nil, store.ErrCustomerNotFound
		}
		if IsUniqueViolation(err) {
			log.Warn("duplicate email during customer update",
				slog.String("customer_id", id.String()))
			return nil, fmt.Errorf("%w: %v", store.ErrEmailExists, err)
		}
		log.Error("failed to update customer",
			slog.String("error", err.Error()),
			slog.String("customer_id", id.String()))
		return nil, err
	}

	log.Info("customer updated",
		slog.String("customer_id", id.String()),
		slog.Int("fields", len(clauses)))
	return customer, nil
}

// Delete implements store.CustomerStore.Delete
// Reports whether a row was actually removed; deleting a missing ID is
// not an error.
func (s *PostgresCustomerStore) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM customers WHERE customer_id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete customer",
			slog.String("error", err.Error()),
			slog.String("customer_id", id.String()))
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("customer_id", id.String()))
		return false, err
	}

	if rowsAffected == 0 {
		log.Debug("no customer row to delete",
			slog.String("customer_id", id.String()))
		return false, nil
	}

	log.Info("customer deleted", slog.String("customer_id", id.String()))
	return true, nil
}
