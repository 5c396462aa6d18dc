// Package check holds the requirement predicates used by package constrain.
//
// Every function takes a value and the name it should be reported under and
// returns the value unchanged when it satisfies the sign condition named by
// the function. On failure it returns the zero value of the representation and
// a validator.ValidationErrors describing every problem found:
//
//   - a blank name always fails with validator.ErrBlankName
//   - a nil pointer fails with validator.ErrMissingValue
//   - a value outside the condition fails with validator.ErrInvalidValue
//
// The name is checked even when the value is valid, so
//
//	_, err := check.Negative(-3, "")
//	errors.Is(err, validator.ErrBlankName) // true
//
// Built-in integer and float kinds use the generic functions; *big.Int,
// *apd.Decimal and *uint256.Int have named variants.
package check
