package validator

import "errors"

// Failure classes reported by the rules in this package.
var (
	// ErrValidationFailed matches any ValidationErrors value.
	ErrValidationFailed = errors.New("validation failed")

	// ErrMissingValue is returned when the value to check is absent (nil pointer).
	ErrMissingValue = errors.New("value is missing")

	// ErrBlankName is returned when the argument name is empty or whitespace.
	ErrBlankName = errors.New("name is blank")

	// ErrInvalidValue is returned when a value does not satisfy the requested sign condition.
	ErrInvalidValue = errors.New("invalid value")
)
