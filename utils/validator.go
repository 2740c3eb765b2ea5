package utils

import (
	"github.com/go-playground/validator/v10"

	"github.com/voguevault/voguevault-backend-go/apperr"
)

// RequestValidator plugs go-playground/validator into echo so every request
// struct is checked against its tags before reaching a handler.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

func (v *RequestValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return apperr.NewValidation("Missing required fields")
	}
	return nil
}
