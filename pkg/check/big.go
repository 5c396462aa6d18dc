package check

import (
	"math/big"

	"github.com/cockroachdb/apd/v3"
	"github.com/holiman/uint256"

	"github.com/dmitrymomot/constrain/pkg/validator"
)

func BigIntPositive(value *big.Int, name string) (*big.Int, error) {
	return run(value, name, value != nil, validator.BigIntPositive)
}

func BigIntZeroOrPositive(value *big.Int, name string) (*big.Int, error) {
	return run(value, name, value != nil, validator.BigIntZeroOrPositive)
}

func BigIntZero(value *big.Int, name string) (*big.Int, error) {
	return run(value, name, value != nil, validator.BigIntZero)
}

func BigIntZeroOrNegative(value *big.Int, name string) (*big.Int, error) {
	return run(value, name, value != nil, validator.BigIntZeroOrNegative)
}

func BigIntNegative(value *big.Int, name string) (*big.Int, error) {
	return run(value, name, value != nil, validator.BigIntNegative)
}

func DecimalPositive(value *apd.Decimal, name string) (*apd.Decimal, error) {
	return run(value, name, value != nil, validator.DecimalPositive)
}

func DecimalZeroOrPositive(value *apd.Decimal, name string) (*apd.Decimal, error) {
	return run(value, name, value != nil, validator.DecimalZeroOrPositive)
}

func DecimalZero(value *apd.Decimal, name string) (*apd.Decimal, error) {
	return run(value, name, value != nil, validator.DecimalZero)
}

func DecimalZeroOrNegative(value *apd.Decimal, name string) (*apd.Decimal, error) {
	return run(value, name, value != nil, validator.DecimalZeroOrNegative)
}

func DecimalNegative(value *apd.Decimal, name string) (*apd.Decimal, error) {
	return run(value, name, value != nil, validator.DecimalNegative)
}

func Uint256Positive(value *uint256.Int, name string) (*uint256.Int, error) {
	return run(value, name, value != nil, validator.Uint256Positive)
}

func Uint256ZeroOrPositive(value *uint256.Int, name string) (*uint256.Int, error) {
	return run(value, name, value != nil, validator.Uint256ZeroOrPositive)
}

func Uint256Zero(value *uint256.Int, name string) (*uint256.Int, error) {
	return run(value, name, value != nil, validator.Uint256Zero)
}

func Uint256ZeroOrNegative(value *uint256.Int, name string) (*uint256.Int, error) {
	return run(value, name, value != nil, validator.Uint256ZeroOrNegative)
}

func Uint256Negative(value *uint256.Int, name string) (*uint256.Int, error) {
	return run(value, name, value != nil, validator.Uint256Negative)
}
