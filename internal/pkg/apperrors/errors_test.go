package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomError_Unwrap(t *testing.T) {
	err := NewResourceNotFoundError("route /nope not found")

	assert.True(t, errors.Is(err, ErrResourceNotFound))
	assert.False(t, errors.Is(err, ErrBadRequest))
	assert.Equal(t, "route /nope not found", err.Error())
}

func TestCustomError_FallbackMessage(t *testing.T) {
	assert.Equal(t, "bad request", (&CustomError{Err: ErrBadRequest}).Error())
	assert.Equal(t, "unknown error", (&CustomError{}).Error())
}

func TestCustomError_WithDetails(t *testing.T) {
	err := (&CustomError{Err: ErrValidationFailed}).WithDetails(map[string]interface{}{"field": "port"})

	assert.Equal(t, "port", err.Details["field"])
	assert.ErrorIs(t, fmt.Errorf("loading config: %w", err), ErrValidationFailed)
}
