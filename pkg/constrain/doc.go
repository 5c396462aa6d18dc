// Package constrain turns numeric values into typed wrappers that carry a sign
// guarantee: Positive, ZeroOrPositive, Zero, ZeroOrNegative or Negative.
//
// A wrapper can only be obtained from a Facade, which checks the value (and
// the name it is reported under) through package check and then tags it. Once
// built, a wrapper is immutable, so a function that accepts
// constrain.Positive[int64] never has to check its argument again.
//
// # Façades
//
// There is one façade per representation:
//
//	Int8 Int16 Int32 Int64 Int
//	Uint8 Uint16 Uint32 Uint64 Uint
//	Float32 Float64
//	BigInt (*big.Int)  Decimal (*apd.Decimal)  Uint256 (*uint256.Int)
//
// Ordered builds a façade for named numeric types:
//
//	type Cents int64
//	var cents = constrain.Ordered[Cents]()
//
// Each façade offers the same five methods:
//
//	amount, err := constrain.Int64.Positive(v, "amount")
//	if err != nil {
//	    return err // validation failed: amount: must be positive
//	}
//	transfer(amount) // func transfer(amount constrain.Positive[int64])
//
// # Categories
//
// Zero satisfies ZeroOrPositive and ZeroOrNegative. Wrappers expose that
// overlap as widening methods that don't re-check: Positive.ZeroOrPositive,
// Negative.ZeroOrNegative, Zero.ZeroOrPositive and Zero.ZeroOrNegative.
// The Category type names the five guarantees for code that picks one at
// runtime (Facade.Constrain).
//
// # Floats and decimals
//
// NaN has no sign and is rejected by every method. Negative zero is zero.
// Infinities are accepted by the categories matching their sign.
//
// # Pointer representations
//
// *big.Int, *apd.Decimal and *uint256.Int are copied when wrapped and again
// when read back through Value, so mutating either the original or the
// returned pointer never breaks the guarantee.
//
// # Errors
//
// Failures are validator.ValidationErrors. Use errors.Is with
// validator.ErrBlankName, validator.ErrMissingValue or
// validator.ErrInvalidValue to tell them apart.
//
// The zero value of a wrapper reports Valid() == false. The zero Facade
// panics when used.
package constrain
