package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Customer represents a single customer record.
// The ID and DateCreated fields are generated by the store on creation and
// are never mutated afterwards.
type Customer struct {
	ID          uuid.UUID `json:"customerId"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	PhoneNumber *string   `json:"phoneNumber,omitempty"`
	Address     *string   `json:"address,omitempty"`
	City        *string   `json:"city,omitempty"`
	State       *string   `json:"state,omitempty"`
	Country     *string   `json:"country,omitempty"`
	DateCreated time.Time `json:"dateCreated"`
}

// CreateCustomerInput holds the fields a caller supplies when creating a
// customer. ID and DateCreated are deliberately absent: the store owns them.
type CreateCustomerInput struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber *string
	Address     *string
	City        *string
	State       *string
	Country     *string
}

// UpdateCustomerInput describes a partial update. A nil field means "leave
// unchanged"; a non-nil field means "replace with this value". The store
// must only touch the present fields.
type UpdateCustomerInput struct {
	FirstName   *string
	LastName    *string
	Email       *string
	PhoneNumber *string
	Address     *string
	City        *string
	State       *string
	Country     *string
}

// HasChanges reports whether any field is present in the update.
// An update with no present fields is a no-op that still returns the
// current record.
func (in *UpdateCustomerInput) HasChanges() bool {
	return in.FirstName != nil ||
		in.LastName != nil ||
		in.Email != nil ||
		in.PhoneNumber != nil ||
		in.Address != nil ||
		in.City != nil ||
		in.State != nil ||
		in.Country != nil
}

var (
	// nameRegex allows letters, whitespace, apostrophes and hyphens.
	nameRegex = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)

	// phoneRegex allows digits, whitespace and common punctuation.
	phoneRegex = regexp.MustCompile(`^[\d\s\-+()]+$`)

	// customerIDRegex matches the canonical 8-4-4-4-12 UUID text form,
	// case-insensitive. uuid.Parse alone is too permissive here: it also
	// accepts braced, URN and 32-hex forms that the API must reject.
	customerIDRegex = regexp.MustCompile(
		`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`,
	)
)

// ValidateName checks a display name against the business rules:
// trimmed length between 2 and 50 characters, and only letters,
// whitespace, apostrophes and hyphens. fieldName is used in the error
// message (e.g. "First name").
func ValidateName(name, fieldName string) error {
	trimmed := strings.TrimSpace(name)

	if len(trimmed) < 2 {
		return NewValidationError(fieldName,
			fmt.Sprintf("%s must be at least 2 characters long", fieldName), nil)
	}

	if len(trimmed) > 50 {
		return NewValidationError(fieldName,
			fmt.Sprintf("%s must not exceed 50 characters", fieldName), nil)
	}

	if !nameRegex.MatchString(name) {
		return NewValidationError(fieldName,
			fmt.Sprintf("%s contains invalid characters", fieldName), nil)
	}

	return nil
}

// ValidatePhoneNumber checks a phone number: only digits, whitespace and
// the punctuation set [+-()], and at least 10 digits once everything else
// is stripped.
func ValidatePhoneNumber(phoneNumber string) error {
	if !phoneRegex.MatchString(phoneNumber) {
		return NewValidationError("phoneNumber", "Invalid phone number format", nil)
	}

	digits := 0
	for _, r := range phoneNumber {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if digits < 10 {
		return NewValidationError("phoneNumber",
			"Phone number must contain at least 10 digits", nil)
	}

	return nil
}

// ParseCustomerID validates and parses a customer identifier.
// Only the canonical hyphenated UUID form is accepted.
func ParseCustomerID(id string) (uuid.UUID, error) {
	if !customerIDRegex.MatchString(id) {
		return uuid.Nil, NewValidationError("customerId",
			"Invalid customer ID format", ErrInvalidID)
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, NewValidationError("customerId",
			"Invalid customer ID format", ErrInvalidID)
	}

	return parsed, nil
}
