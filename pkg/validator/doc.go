// Package validator provides the rule layer behind sign constraints: small
// Rule values that pair a boolean Check with translation-friendly error
// metadata, and the Apply helper that aggregates failures.
//
// # Architecture
//
// Rules are grouped by representation. `sign_rules.go` covers every built-in
// integer and float kind through the generic Numeric constraint;
// `big_rules.go` covers *big.Int, *apd.Decimal and *uint256.Int through their
// sign. All rules share the same five conditions:
//
//   - Positive        – sign > 0
//   - ZeroOrPositive  – sign >= 0
//   - Zero            – sign == 0
//   - ZeroOrNegative  – sign <= 0
//   - Negative        – sign < 0
//
// NaN (float or decimal) has no sign and fails all five. Negative zero is zero.
//
// NotBlank and Present check the argument name and the presence of the value.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.NotBlank("amount"),
//	    validator.Positive("amount", amount),
//	)
//	if err != nil {
//	    if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	        // inspect verrs.Get("amount")
//	    }
//	}
//
// # Error Handling
//
// ValidationErrors matches ErrValidationFailed and unwraps to its entries, and
// every ValidationError unwraps to one of ErrMissingValue, ErrBlankName or
// ErrInvalidValue, so
//
//	errors.Is(err, validator.ErrBlankName)
//
// works on the aggregate returned by Apply. ValidationError implements
// slog.LogValuer.
//
// The package holds no state and is safe for concurrent use.
package validator
