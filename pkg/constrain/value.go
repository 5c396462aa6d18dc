package constrain

// Constrained is implemented by the five wrapper types.
type Constrained[T any] interface {
	// Value returns the wrapped value. Pointer representations return a copy.
	Value() T
	Category() Category
	// Valid is false for a wrapper that was declared rather than obtained
	// from a Facade.
	Valid() bool
	String() string
}

var (
	_ Constrained[int] = Positive[int]{}
	_ Constrained[int] = ZeroOrPositive[int]{}
	_ Constrained[int] = Zero[int]{}
	_ Constrained[int] = ZeroOrNegative[int]{}
	_ Constrained[int] = Negative[int]{}
)

// Positive holds a value greater than zero.
type Positive[T any] struct {
	value T
	rep   *representation[T]
}

func (p Positive[T]) Value() T           { return p.rep.copy(p.value) }
func (p Positive[T]) Category() Category { return CategoryPositive }
func (p Positive[T]) Valid() bool        { return p.rep != nil }
func (p Positive[T]) String() string     { return p.rep.format(p.value) }

// ZeroOrPositive widens the guarantee without checking again.
func (p Positive[T]) ZeroOrPositive() ZeroOrPositive[T] {
	return ZeroOrPositive[T](p)
}

// ZeroOrPositive holds a value greater than or equal to zero.
type ZeroOrPositive[T any] struct {
	value T
	rep   *representation[T]
}

func (p ZeroOrPositive[T]) Value() T           { return p.rep.copy(p.value) }
func (p ZeroOrPositive[T]) Category() Category { return CategoryZeroOrPositive }
func (p ZeroOrPositive[T]) Valid() bool        { return p.rep != nil }
func (p ZeroOrPositive[T]) String() string     { return p.rep.format(p.value) }

// Zero holds a value equal to zero.
type Zero[T any] struct {
	value T
	rep   *representation[T]
}

func (z Zero[T]) Value() T           { return z.rep.copy(z.value) }
func (z Zero[T]) Category() Category { return CategoryZero }
func (z Zero[T]) Valid() bool        { return z.rep != nil }
func (z Zero[T]) String() string     { return z.rep.format(z.value) }

func (z Zero[T]) ZeroOrPositive() ZeroOrPositive[T] {
	return ZeroOrPositive[T](z)
}

func (z Zero[T]) ZeroOrNegative() ZeroOrNegative[T] {
	return ZeroOrNegative[T](z)
}

// ZeroOrNegative holds a value less than or equal to zero.
type ZeroOrNegative[T any] struct {
	value T
	rep   *representation[T]
}

func (n ZeroOrNegative[T]) Value() T           { return n.rep.copy(n.value) }
func (n ZeroOrNegative[T]) Category() Category { return CategoryZeroOrNegative }
func (n ZeroOrNegative[T]) Valid() bool        { return n.rep != nil }
func (n ZeroOrNegative[T]) String() string     { return n.rep.format(n.value) }

// Negative holds a value less than zero.
type Negative[T any] struct {
	value T
	rep   *representation[T]
}

func (n Negative[T]) Value() T           { return n.rep.copy(n.value) }
func (n Negative[T]) Category() Category { return CategoryNegative }
func (n Negative[T]) Valid() bool        { return n.rep != nil }
func (n Negative[T]) String() string     { return n.rep.format(n.value) }

// ZeroOrNegative widens the guarantee without checking again.
func (n Negative[T]) ZeroOrNegative() ZeroOrNegative[T] {
	return ZeroOrNegative[T](n)
}
