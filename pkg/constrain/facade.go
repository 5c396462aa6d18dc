package constrain

import (
	"fmt"
	"math/big"

	"github.com/cockroachdb/apd/v3"
	"github.com/holiman/uint256"

	"github.com/dmitrymomot/constrain/pkg/check"
	"github.com/dmitrymomot/constrain/pkg/validator"
)

// requirement validates value under name and returns it unchanged.
type requirement[T any] func(value T, name string) (T, error)

// requirements are the five sign predicates of one representation.
type requirements[T any] struct {
	positive       requirement[T]
	zeroOrPositive requirement[T]
	zero           requirement[T]
	zeroOrNegative requirement[T]
	negative       requirement[T]
}

// Facade constrains values of one numeric representation. The zero Facade is
// not usable; use the package-level façades or Ordered.
type Facade[T any] struct {
	req requirements[T]
	tag tagger[T]
}

func newFacade[T any](rep *representation[T], req requirements[T]) Facade[T] {
	return Facade[T]{req: req, tag: tagger[T]{rep: rep}}
}

// Name returns the representation name, e.g. "int64" or "*big.Int".
func (f Facade[T]) Name() string {
	if f.tag.rep == nil {
		return ""
	}
	return f.tag.rep.name
}

// Positive constrains value to be greater than zero.
func (f Facade[T]) Positive(value T, name string) (Positive[T], error) {
	v, err := f.req.positive(value, name)
	if err != nil {
		return Positive[T]{}, err
	}
	return f.tag.positive(v), nil
}

// ZeroOrPositive constrains value to be zero or greater.
func (f Facade[T]) ZeroOrPositive(value T, name string) (ZeroOrPositive[T], error) {
	v, err := f.req.zeroOrPositive(value, name)
	if err != nil {
		return ZeroOrPositive[T]{}, err
	}
	return f.tag.zeroOrPositive(v), nil
}

// Zero constrains value to be zero.
func (f Facade[T]) Zero(value T, name string) (Zero[T], error) {
	v, err := f.req.zero(value, name)
	if err != nil {
		return Zero[T]{}, err
	}
	return f.tag.zero(v), nil
}

// ZeroOrNegative constrains value to be zero or less.
func (f Facade[T]) ZeroOrNegative(value T, name string) (ZeroOrNegative[T], error) {
	v, err := f.req.zeroOrNegative(value, name)
	if err != nil {
		return ZeroOrNegative[T]{}, err
	}
	return f.tag.zeroOrNegative(v), nil
}

// Negative constrains value to be less than zero.
func (f Facade[T]) Negative(value T, name string) (Negative[T], error) {
	v, err := f.req.negative(value, name)
	if err != nil {
		return Negative[T]{}, err
	}
	return f.tag.negative(v), nil
}

// Constrain applies the check for category c and returns the matching
// wrapper, or nil on failure.
func (f Facade[T]) Constrain(c Category, value T, name string) (Constrained[T], error) {
	switch c {
	case CategoryPositive:
		return orNil[T](f.Positive(value, name))
	case CategoryZeroOrPositive:
		return orNil[T](f.ZeroOrPositive(value, name))
	case CategoryZero:
		return orNil[T](f.Zero(value, name))
	case CategoryZeroOrNegative:
		return orNil[T](f.ZeroOrNegative(value, name))
	case CategoryNegative:
		return orNil[T](f.Negative(value, name))
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCategory, c)
	}
}

func orNil[T any](c Constrained[T], err error) (Constrained[T], error) {
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Ordered returns a façade for any integer or float kind, including named
// types such as `type Cents int64`.
func Ordered[T validator.Numeric]() Facade[T] {
	var zero T
	return newFacade(&representation[T]{name: fmt.Sprintf("%T", zero)}, requirements[T]{
		positive:       check.Positive[T],
		zeroOrPositive: check.ZeroOrPositive[T],
		zero:           check.Zero[T],
		zeroOrNegative: check.ZeroOrNegative[T],
		negative:       check.Negative[T],
	})
}

// Façades for the built-in numeric kinds.
var (
	Int8  = Ordered[int8]()
	Int16 = Ordered[int16]()
	Int32 = Ordered[int32]()
	Int64 = Ordered[int64]()
	Int   = Ordered[int]()

	Uint8  = Ordered[uint8]()
	Uint16 = Ordered[uint16]()
	Uint32 = Ordered[uint32]()
	Uint64 = Ordered[uint64]()
	Uint   = Ordered[uint]()

	Float32 = Ordered[float32]()
	Float64 = Ordered[float64]()
)

// BigInt constrains *big.Int values. The wrapper keeps its own copy.
var BigInt = newFacade(
	&representation[*big.Int]{
		name:  "*big.Int",
		clone: func(v *big.Int) *big.Int { return new(big.Int).Set(v) },
		text:  func(v *big.Int) string { return v.String() },
	},
	requirements[*big.Int]{
		positive:       check.BigIntPositive,
		zeroOrPositive: check.BigIntZeroOrPositive,
		zero:           check.BigIntZero,
		zeroOrNegative: check.BigIntZeroOrNegative,
		negative:       check.BigIntNegative,
	},
)

// Decimal constrains *apd.Decimal values. NaN fails every category.
var Decimal = newFacade(
	&representation[*apd.Decimal]{
		name:  "*apd.Decimal",
		clone: func(v *apd.Decimal) *apd.Decimal { return new(apd.Decimal).Set(v) },
		text:  func(v *apd.Decimal) string { return v.String() },
	},
	requirements[*apd.Decimal]{
		positive:       check.DecimalPositive,
		zeroOrPositive: check.DecimalZeroOrPositive,
		zero:           check.DecimalZero,
		zeroOrNegative: check.DecimalZeroOrNegative,
		negative:       check.DecimalNegative,
	},
)

// Uint256 constrains *uint256.Int values, read as unsigned.
var Uint256 = newFacade(
	&representation[*uint256.Int]{
		name:  "*uint256.Int",
		clone: func(v *uint256.Int) *uint256.Int { return v.Clone() },
		text:  func(v *uint256.Int) string { return v.ToBig().String() },
	},
	requirements[*uint256.Int]{
		positive:       check.Uint256Positive,
		zeroOrPositive: check.Uint256ZeroOrPositive,
		zero:           check.Uint256Zero,
		zeroOrNegative: check.Uint256ZeroOrNegative,
		negative:       check.Uint256Negative,
	},
)
