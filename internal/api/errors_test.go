package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/customer-api/internal/domain"
	"github.com/phrazzld/customer-api/internal/service"
	"github.com/phrazzld/customer-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "validation error maps to 400",
			err:  domain.NewValidationError("limit", "Limit must be between 1 and 100", nil),
			want: http.StatusBadRequest,
		},
		{
			name: "invalid id maps to 400",
			err:  domain.NewValidationError("customerId", "Invalid customer ID format", domain.ErrInvalidID),
			want: http.StatusBadRequest,
		},
		{
			name: "not found maps to 404",
			err:  store.ErrCustomerNotFound,
			want: http.StatusNotFound,
		},
		{
			name: "duplicate maps to 409",
			err:  store.ErrEmailExists,
			want: http.StatusConflict,
		},
		{
			name: "update race maps to 500",
			err:  service.ErrUpdateFailed,
			want: http.StatusInternalServerError,
		},
		{
			name: "unknown error maps to 500",
			err:  errors.New("boom"),
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "validation error carries its own message",
			err:  domain.NewValidationError("phoneNumber", "Invalid phone number format", nil),
			want: "Invalid phone number format",
		},
		{
			name: "wrapped not found",
			err:  store.ErrCustomerNotFound,
			want: "Customer not found",
		},
		{
			name: "wrapped duplicate",
			err:  store.ErrEmailExists,
			want: "Email already exists",
		},
		{
			name: "update race",
			err:  service.ErrUpdateFailed,
			want: "Failed to update customer",
		},
		{
			name: "delete race",
			err:  service.ErrDeleteFailed,
			want: "Failed to delete customer",
		},
		{
			name: "driver error is never echoed",
			err:  errors.New("pq: password authentication failed for user \"app\""),
			want: "Internal server error",
		},
		{
			name: "nil error",
			err:  nil,
			want: "Internal server error",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, GetSafeErrorMessage(tt.err))
		})
	}
}
