// Package validator adapts go-playground/validator to echo's Validator
// interface so request DTOs are checked right after binding.
package validator

import (
	domainerrors "github.com/riaj03/savyo/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// RequestValidator wraps a shared validator instance.
type RequestValidator struct {
	validate *playground.Validate
}

// New creates the validator used by the echo server.
func New() *RequestValidator {
	return &RequestValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Tag failures surface as the
// validation error kind so the error funnel renders a 400.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return nil
}
