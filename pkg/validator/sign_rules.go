package validator

import "strings"

// condition is a named predicate over the sign of a value (-1, 0 or +1).
type condition struct {
	key     string
	message string
	accepts func(sign int) bool
}

var (
	condPositive       = condition{"positive", "must be positive", func(s int) bool { return s > 0 }}
	condZeroOrPositive = condition{"zero_or_positive", "must be zero or positive", func(s int) bool { return s >= 0 }}
	condZero           = condition{"zero", "must be zero", func(s int) bool { return s == 0 }}
	condZeroOrNegative = condition{"zero_or_negative", "must be zero or negative", func(s int) bool { return s <= 0 }}
	condNegative       = condition{"negative", "must be negative", func(s int) bool { return s < 0 }}
)

// signRule builds a rule from a lazily computed sign. signOf reports false
// when the value has no sign at all (NaN) and then every condition fails.
func signRule(field string, value any, signOf func() (int, bool), c condition) Rule {
	return Rule{
		Check: func() bool {
			sign, ok := signOf()
			return ok && c.accepts(sign)
		},
		Error: ValidationError{
			Field:          field,
			Message:        c.message,
			TranslationKey: "validation." + c.key,
			TranslationValues: map[string]any{
				"field": field,
				"value": value,
			},
			Err: ErrInvalidValue,
		},
	}
}

// numericSign uses the natural ordering of T. NaN is unordered and reports false.
func numericSign[T Numeric](value T) func() (int, bool) {
	return func() (int, bool) {
		switch {
		case value > 0:
			return 1, true
		case value < 0:
			return -1, true
		case value == 0:
			return 0, true
		default:
			return 0, false
		}
	}
}

// Positive validates that value is strictly greater than zero.
func Positive[T Numeric](field string, value T) Rule {
	return signRule(field, value, numericSign(value), condPositive)
}

// ZeroOrPositive validates that value is greater than or equal to zero.
func ZeroOrPositive[T Numeric](field string, value T) Rule {
	return signRule(field, value, numericSign(value), condZeroOrPositive)
}

// Zero validates that value equals zero. Negative zero is accepted.
func Zero[T Numeric](field string, value T) Rule {
	return signRule(field, value, numericSign(value), condZero)
}

// ZeroOrNegative validates that value is less than or equal to zero.
func ZeroOrNegative[T Numeric](field string, value T) Rule {
	return signRule(field, value, numericSign(value), condZeroOrNegative)
}

// Negative validates that value is strictly less than zero.
func Negative[T Numeric](field string, value T) Rule {
	return signRule(field, value, numericSign(value), condNegative)
}

// NotBlank validates the name an argument is reported under.
func NotBlank(name string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(name) != ""
		},
		Error: ValidationError{
			Field:          "name",
			Message:        "must not be blank",
			TranslationKey: "validation.name_blank",
			TranslationValues: map[string]any{
				"field": "name",
			},
			Err: ErrBlankName,
		},
	}
}

// Present validates that a value was supplied. Callers pass the result of
// their own nil check since absence is representation specific.
func Present(field string, present bool) Rule {
	return Rule{
		Check: func() bool {
			return present
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must not be nil",
			TranslationKey: "validation.value_missing",
			TranslationValues: map[string]any{
				"field": field,
			},
			Err: ErrMissingValue,
		},
	}
}
