package middleware

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// BindingErrorMessage converts a gin binding failure into a user-facing
// message, naming the first offending field.
func BindingErrorMessage(err error, fallback string) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fallback
	}
	e := fieldErrs[0]
	switch e.Tag() {
	case "required":
		return e.Field() + " is required."
	case "min":
		return e.Field() + " must be at least " + e.Param() + "."
	case "max":
		return e.Field() + " must be at most " + e.Param() + "."
	case "email":
		return e.Field() + " must be a valid email address."
	default:
		return fallback
	}
}
