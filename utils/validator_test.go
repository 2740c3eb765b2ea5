package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voguevault/voguevault-backend-go/apperr"
)

type sampleRequest struct {
	Email    string `validate:"required,email"`
	Quantity *int   `validate:"required,min=0"`
}

func TestRequestValidatorAcceptsValidStruct(t *testing.T) {
	qty := 0
	v := NewRequestValidator()
	assert.NoError(t, v.Validate(&sampleRequest{Email: "a@example.com", Quantity: &qty}))
}

func TestRequestValidatorRejectsMissingFields(t *testing.T) {
	v := NewRequestValidator()
	err := v.Validate(&sampleRequest{})

	var appErr *apperr.Error
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.Validation, appErr.Kind)
}

func TestRequestValidatorZeroThroughPointerIsPresent(t *testing.T) {
	// Quantity 0 must be distinguishable from an absent quantity; the
	// pointer satisfies required while carrying the zero.
	qty := 0
	v := NewRequestValidator()
	assert.NoError(t, v.Validate(&sampleRequest{Email: "a@example.com", Quantity: &qty}))

	err := v.Validate(&sampleRequest{Email: "a@example.com"})
	assert.Error(t, err)
}
