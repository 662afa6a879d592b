// Package validator adapts go-playground/validator to Echo's Validator
// interface so handlers can call c.Validate on bound request structs.
package validator

import (
	domainerrors "quill/internal/domain/errors"
	"quill/internal/errors"

	"github.com/go-playground/validator/v10"
)

// RequestValidator wraps a validator instance for Echo.
type RequestValidator struct {
	validate *validator.Validate
}

// New creates the request validator used by the HTTP server.
func New() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate checks struct tags and maps any violation to the shared
// validation error. The first failing field short-circuits the check.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		var fieldErrs validator.ValidationErrors
		if ok := errors.As(err, &fieldErrs); ok && len(fieldErrs) > 0 {
			first := fieldErrs[0]

			return domainerrors.ErrValidationFailed.WithDetails(
				"field '" + first.Field() + "' failed on the '" + first.Tag() + "' rule",
			)
		}

		return domainerrors.ErrValidationFailed
	}

	return nil
}
