package check

import (
	"github.com/dmitrymomot/constrain/pkg/validator"
)

// run applies the name rule and then either the presence rule or the sign
// rule. It returns value unchanged on success and the zero value otherwise.
func run[T any](value T, name string, present bool, sign func(field string, value T) validator.Rule) (T, error) {
	rules := []validator.Rule{validator.NotBlank(name)}
	if present {
		rules = append(rules, sign(name, value))
	} else {
		rules = append(rules, validator.Present(name, false))
	}

	if err := validator.Apply(rules...); err != nil {
		var zero T
		return zero, err
	}
	return value, nil
}

// Positive returns value if it is greater than zero.
func Positive[T validator.Numeric](value T, name string) (T, error) {
	return run(value, name, true, validator.Positive[T])
}

// ZeroOrPositive returns value if it is zero or greater.
func ZeroOrPositive[T validator.Numeric](value T, name string) (T, error) {
	return run(value, name, true, validator.ZeroOrPositive[T])
}

// Zero returns value if it equals zero.
func Zero[T validator.Numeric](value T, name string) (T, error) {
	return run(value, name, true, validator.Zero[T])
}

// ZeroOrNegative returns value if it is zero or less.
func ZeroOrNegative[T validator.Numeric](value T, name string) (T, error) {
	return run(value, name, true, validator.ZeroOrNegative[T])
}

// Negative returns value if it is less than zero.
func Negative[T validator.Numeric](value T, name string) (T, error) {
	return run(value, name, true, validator.Negative[T])
}
