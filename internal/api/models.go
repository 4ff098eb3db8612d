package api

import (
	"strings"

	"github.com/phrazzld/customer-api/internal/domain"
)

// CreateCustomerRequest is the payload for creating a customer.
// Structural constraints (presence, lengths, email shape) live here as
// validator tags; business rules (name charset, phone digit minimum,
// uniqueness) belong to the service layer.
type CreateCustomerRequest struct {
	FirstName   string  `json:"firstName" validate:"required,max=50"`
	LastName    string  `json:"lastName" validate:"required,max=50"`
	Email       string  `json:"email" validate:"required,email,max=100"`
	PhoneNumber *string `json:"phoneNumber" validate:"omitempty,max=20"`
	Address     *string `json:"address" validate:"omitempty,max=200"`
	City        *string `json:"city" validate:"omitempty,max=50"`
	State       *string `json:"state" validate:"omitempty,max=50"`
	Country     *string `json:"country" validate:"omitempty,max=50"`
}

// ToInput converts the request into a domain input, normalizing the email
// to lowercase and trimming surrounding whitespace from text fields.
func (req *CreateCustomerRequest) ToInput() domain.CreateCustomerInput {
	return domain.CreateCustomerInput{
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		PhoneNumber: trimPtr(req.PhoneNumber),
		Address:     trimPtr(req.Address),
		City:        trimPtr(req.City),
		State:       trimPtr(req.State),
		Country:     trimPtr(req.Country),
	}
}

// UpdateCustomerRequest is the payload for partially updating a customer.
// Absent fields stay untouched; present fields replace the stored value.
type UpdateCustomerRequest struct {
	FirstName   *string `json:"firstName" validate:"omitempty,max=50"`
	LastName    *string `json:"lastName" validate:"omitempty,max=50"`
	Email       *string `json:"email" validate:"omitempty,email,max=100"`
	PhoneNumber *string `json:"phoneNumber" validate:"omitempty,max=20"`
	Address     *string `json:"address" validate:"omitempty,max=200"`
	City        *string `json:"city" validate:"omitempty,max=50"`
	State       *string `json:"state" validate:"omitempty,max=50"`
	Country     *string `json:"country" validate:"omitempty,max=50"`
}

// ToInput converts the request into a domain update input with the same
// normalization as create.
func (req *UpdateCustomerRequest) ToInput() domain.UpdateCustomerInput {
	return domain.UpdateCustomerInput{
		FirstName:   trimPtr(req.FirstName),
		LastName:    trimPtr(req.LastName),
		Email:       lowerTrimPtr(req.Email),
		PhoneNumber: trimPtr(req.PhoneNumber),
		Address:     trimPtr(req.Address),
		City:        trimPtr(req.City),
		State:       trimPtr(req.State),
		Country:     trimPtr(req.Country),
	}
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}

func lowerTrimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	normalized := strings.ToLower(strings.TrimSpace(*s))
	return &normalized
}
