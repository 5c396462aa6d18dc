package constrain

// Category is the sign guarantee carried by a constrained value. The set is
// closed: the five constants below are the only valid categories.
type Category uint8

const (
	CategoryPositive Category = iota + 1
	CategoryZeroOrPositive
	CategoryZero
	CategoryZeroOrNegative
	CategoryNegative
)

// Categories lists every category from most positive to most negative.
func Categories() []Category {
	return []Category{
		CategoryPositive,
		CategoryZeroOrPositive,
		CategoryZero,
		CategoryZeroOrNegative,
		CategoryNegative,
	}
}

func (c Category) String() string {
	switch c {
	case CategoryPositive:
		return "positive"
	case CategoryZeroOrPositive:
		return "zero or positive"
	case CategoryZero:
		return "zero"
	case CategoryZeroOrNegative:
		return "zero or negative"
	case CategoryNegative:
		return "negative"
	default:
		return "unknown"
	}
}

// Satisfies reports whether a value with the given sign (-1, 0 or +1)
// belongs to the category.
func (c Category) Satisfies(sign int) bool {
	switch c {
	case CategoryPositive:
		return sign > 0
	case CategoryZeroOrPositive:
		return sign >= 0
	case CategoryZero:
		return sign == 0
	case CategoryZeroOrNegative:
		return sign <= 0
	case CategoryNegative:
		return sign < 0
	default:
		return false
	}
}

// Implies reports whether every value of c also belongs to other.
func (c Category) Implies(other Category) bool {
	for _, sign := range []int{-1, 0, 1} {
		if c.Satisfies(sign) && !other.Satisfies(sign) {
			return false
		}
	}
	return c.Valid() && other.Valid()
}

// Valid reports whether c is one of the five defined categories.
func (c Category) Valid() bool {
	return c >= CategoryPositive && c <= CategoryNegative
}
