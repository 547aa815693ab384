// Package validator adapts go-playground/validator to echo's Validator
// interface so request structs are checked at the boundary, before any
// payload reaches the use cases.
package validator

import (
	"github.com/go-playground/validator/v10"

	domainerrors "enroll/internal/domain/errors"
)

// CustomValidator wraps a validator.Validate instance for echo.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the request validator used by the HTTP server.
func New() *CustomValidator {
	return &CustomValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Failures surface as the domain's
// validation error so the error middleware maps them to a 400 response.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
