package domain_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/customer-api/internal/domain"
)

func TestValidateName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		fieldName string
		wantErr   bool
		wantMsg   string
	}{
		{
			name:      "valid simple name",
			input:     "John",
			fieldName: "First name",
			wantErr:   false,
		},
		{
			name:      "valid name with apostrophe",
			input:     "O'Brien",
			fieldName: "Last name",
			wantErr:   false,
		},
		{
			name:      "valid hyphenated name",
			input:     "Mary-Jane",
			fieldName: "First name",
			wantErr:   false,
		},
		{
			name:      "valid name with spaces",
			input:     "Van Der Berg",
			fieldName: "Last name",
			wantErr:   false,
		},
		{
			name:      "too short",
			input:     "J",
			fieldName: "First name",
			wantErr:   true,
			wantMsg:   "First name must be at least 2 characters long",
		},
		{
			name:      "whitespace only trims to empty",
			input:     "   ",
			fieldName: "First name",
			wantErr:   true,
			wantMsg:   "First name must be at least 2 characters long",
		},
		{
			name:      "too long",
			input:     strings.Repeat("a", 51),
			fieldName: "Last name",
			wantErr:   true,
			wantMsg:   "Last name must not exceed 50 characters",
		},
		{
			name:      "exactly 50 characters is allowed",
			input:     strings.Repeat("a", 50),
			fieldName: "Last name",
			wantErr:   false,
		},
		{
			name:      "digits rejected",
			input:     "John3",
			fieldName: "First name",
			wantErr:   true,
			wantMsg:   "First name contains invalid characters",
		},
		{
			name:      "punctuation rejected",
			input:     "John.Doe",
			fieldName: "First name",
			wantErr:   true,
			wantMsg:   "First name contains invalid characters",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := domain.ValidateName(tc.input, tc.fieldName)
			if !tc.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrValidation),
				"name errors should wrap ErrValidation")
			assert.Equal(t, tc.wantMsg, err.Error())

			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.fieldName, verr.Field)
		})
	}
}

func TestValidatePhoneNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
		wantMsg string
	}{
		{
			name:    "valid international format",
			input:   "+1 (555) 123-4567",
			wantErr: false,
		},
		{
			name:    "valid bare digits",
			input:   "5551234567",
			wantErr: false,
		},
		{
			name:    "letters rejected",
			input:   "555-CALL-NOW",
			wantErr: true,
			wantMsg: "Invalid phone number format",
		},
		{
			name:    "too few digits",
			input:   "555-1234",
			wantErr: true,
			wantMsg: "Phone number must contain at least 10 digits",
		},
		{
			name:    "punctuation does not count toward digit minimum",
			input:   "(---) --- ++++",
			wantErr: true,
			wantMsg: "Phone number must contain at least 10 digits",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := domain.ValidatePhoneNumber(tc.input)
			if !tc.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrValidation))
			assert.Equal(t, tc.wantMsg, err.Error())
		})
	}
}

func TestParseCustomerID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "valid lowercase",
			input:   "123e4567-e89b-12d3-a456-426614174000",
			wantErr: false,
		},
		{
			name:    "valid uppercase",
			input:   "123E4567-E89B-12D3-A456-426614174000",
			wantErr: false,
		},
		{
			name:    "not a uuid",
			input:   "not-a-uuid",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "braced form rejected",
			input:   "{123e4567-e89b-12d3-a456-426614174000}",
			wantErr: true,
		},
		{
			name:    "hyphenless form rejected",
			input:   "123e4567e89b12d3a456426614174000",
			wantErr: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			id, err := domain.ParseCustomerID(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrInvalidID))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, strings.ToLower(tc.input), id.String())
		})
	}
}

func TestUpdateCustomerInputHasChanges(t *testing.T) {
	t.Parallel()

	empty := domain.UpdateCustomerInput{}
	assert.False(t, empty.HasChanges())

	name := "Jane"
	withName := domain.UpdateCustomerInput{FirstName: &name}
	assert.True(t, withName.HasChanges())

	country := "Kenya"
	withCountry := domain.UpdateCustomerInput{Country: &country}
	assert.True(t, withCountry.HasChanges())
}
