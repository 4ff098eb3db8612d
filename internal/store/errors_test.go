package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntityErrorsWrapTheirKind(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, ErrCustomerNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrEmailExists, ErrDuplicate)
}

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNotFoundError(ErrNotFound))
	assert.True(t, IsNotFoundError(ErrCustomerNotFound))
	assert.True(t, IsNotFoundError(fmt.Errorf("loading customer: %w", ErrCustomerNotFound)))

	assert.False(t, IsNotFoundError(nil))
	assert.False(t, IsNotFoundError(ErrEmailExists))
	assert.False(t, IsNotFoundError(errors.New("not found"))) // string match is not enough
}

func TestIsDuplicateError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsDuplicateError(ErrDuplicate))
	assert.True(t, IsDuplicateError(ErrEmailExists))
	assert.True(t, IsDuplicateError(fmt.Errorf("creating customer: %w", ErrEmailExists)))

	assert.False(t, IsDuplicateError(nil))
	assert.False(t, IsDuplicateError(ErrCustomerNotFound))
}
