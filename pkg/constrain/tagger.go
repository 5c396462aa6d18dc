package constrain

import "fmt"

// representation describes how values of T are copied and printed. Value
// types leave clone nil.
type representation[T any] struct {
	name  string
	clone func(T) T
	text  func(T) string
}

func (r *representation[T]) copy(v T) T {
	if r == nil || r.clone == nil {
		return v
	}
	return r.clone(v)
}

func (r *representation[T]) format(v T) string {
	if r == nil {
		return "<unconstrained>"
	}
	if r.text != nil {
		return r.text(v)
	}
	return fmt.Sprint(v)
}

// tagger wraps values that have already passed the sign check. It never
// validates; the façade is the only caller.
type tagger[T any] struct {
	rep *representation[T]
}

func (t tagger[T]) positive(v T) Positive[T] {
	return Positive[T]{value: t.rep.copy(v), rep: t.rep}
}

func (t tagger[T]) zeroOrPositive(v T) ZeroOrPositive[T] {
	return ZeroOrPositive[T]{value: t.rep.copy(v), rep: t.rep}
}

func (t tagger[T]) zero(v T) Zero[T] {
	return Zero[T]{value: t.rep.copy(v), rep: t.rep}
}

func (t tagger[T]) zeroOrNegative(v T) ZeroOrNegative[T] {
	return ZeroOrNegative[T]{value: t.rep.copy(v), rep: t.rep}
}

func (t tagger[T]) negative(v T) Negative[T] {
	return Negative[T]{value: t.rep.copy(v), rep: t.rep}
}
