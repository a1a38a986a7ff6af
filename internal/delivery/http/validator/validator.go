// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	validatorLib "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	domainerrors "ledger/internal/domain/errors"
)

type requestValidator struct {
	validate *validatorLib.Validate
}

// New builds the validator installed on the echo server.
func New() echo.Validator {
	return &requestValidator{validate: validatorLib.New()}
}

// Validate checks struct tags and maps failures onto the domain's
// validation error so the HTTP error handler renders a 400.
func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return nil
}
