package validator

import (
	"math/big"

	"github.com/cockroachdb/apd/v3"
	"github.com/holiman/uint256"
)

// Arbitrary-precision values are checked through their Sign method. A nil
// pointer never satisfies a sign condition; use Present to report it as
// missing rather than invalid.

func bigIntSign(value *big.Int) func() (int, bool) {
	return func() (int, bool) {
		if value == nil {
			return 0, false
		}
		return value.Sign(), true
	}
}

// decimalSign treats infinities as signed and NaN as unsigned.
func decimalSign(value *apd.Decimal) func() (int, bool) {
	return func() (int, bool) {
		if value == nil {
			return 0, false
		}
		switch value.Form {
		case apd.NaN, apd.NaNSignaling:
			return 0, false
		}
		return value.Sign(), true
	}
}

// uint256Sign reads the value as unsigned. (*uint256.Int).Sign uses two's
// complement and would report values with the top bit set as negative.
func uint256Sign(value *uint256.Int) func() (int, bool) {
	return func() (int, bool) {
		if value == nil {
			return 0, false
		}
		if value.IsZero() {
			return 0, true
		}
		return 1, true
	}
}

func bigIntText(value *big.Int) any {
	if value == nil {
		return nil
	}
	return value.String()
}

func decimalText(value *apd.Decimal) any {
	if value == nil {
		return nil
	}
	return value.String()
}

func uint256Text(value *uint256.Int) any {
	if value == nil {
		return nil
	}
	return value.ToBig().String()
}

func BigIntPositive(field string, value *big.Int) Rule {
	return signRule(field, bigIntText(value), bigIntSign(value), condPositive)
}

func BigIntZeroOrPositive(field string, value *big.Int) Rule {
	return signRule(field, bigIntText(value), bigIntSign(value), condZeroOrPositive)
}

func BigIntZero(field string, value *big.Int) Rule {
	return signRule(field, bigIntText(value), bigIntSign(value), condZero)
}

func BigIntZeroOrNegative(field string, value *big.Int) Rule {
	return signRule(field, bigIntText(value), bigIntSign(value), condZeroOrNegative)
}

func BigIntNegative(field string, value *big.Int) Rule {
	return signRule(field, bigIntText(value), bigIntSign(value), condNegative)
}

func DecimalPositive(field string, value *apd.Decimal) Rule {
	return signRule(field, decimalText(value), decimalSign(value), condPositive)
}

func DecimalZeroOrPositive(field string, value *apd.Decimal) Rule {
	return signRule(field, decimalText(value), decimalSign(value), condZeroOrPositive)
}

func DecimalZero(field string, value *apd.Decimal) Rule {
	return signRule(field, decimalText(value), decimalSign(value), condZero)
}

func DecimalZeroOrNegative(field string, value *apd.Decimal) Rule {
	return signRule(field, decimalText(value), decimalSign(value), condZeroOrNegative)
}

func DecimalNegative(field string, value *apd.Decimal) Rule {
	return signRule(field, decimalText(value), decimalSign(value), condNegative)
}

func Uint256Positive(field string, value *uint256.Int) Rule {
	return signRule(field, uint256Text(value), uint256Sign(value), condPositive)
}

func Uint256ZeroOrPositive(field string, value *uint256.Int) Rule {
	return signRule(field, uint256Text(value), uint256Sign(value), condZeroOrPositive)
}

func Uint256Zero(field string, value *uint256.Int) Rule {
	return signRule(field, uint256Text(value), uint256Sign(value), condZero)
}

func Uint256ZeroOrNegative(field string, value *uint256.Int) Rule {
	return signRule(field, uint256Text(value), uint256Sign(value), condZeroOrNegative)
}

// Uint256Negative never passes for a non-nil value; it exists so every
// representation offers the same five rules.
func Uint256Negative(field string, value *uint256.Int) Rule {
	return signRule(field, uint256Text(value), uint256Sign(value), condNegative)
}
