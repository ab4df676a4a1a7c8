package http

import (
	"github.com/go-playground/validator/v10"
)

// RequestValidator adapts go-playground/validator to echo's Validator
// interface so DTO field constraints are enforced at bind time.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates the validator used for request bodies.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *RequestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}
