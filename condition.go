package compare

// PredicateFirst partitions by pred: a value satisfying it sorts before one
// that does not. When both satisfy it the pair is ordered by whenTrue, when
// neither by whenFalse; a nil branch comparator leaves the pair equivalent.
// Every other *First combinator is a specialization of this one.
func PredicateFirst[T any](pred func(T) bool, whenTrue, whenFalse Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		switch pa, pb := pred(a), pred(b); {
		case pa && pb:
			return whenTrue.eval(a, b)
		case pa:
			return -1
		case pb:
			return 1
		}
		return whenFalse.eval(a, b)
	}
}

// TypeFirst is PredicateFirst with narrowing: narrow reports whether a value
// belongs to the matched variant and extracts it, the same shape as a type
// assertion. Matched values sort first and are ordered by whenMatch over the
// narrowed type; the rest are ordered by whenOther. Nil branch comparators
// leave the pair equivalent.
func TypeFirst[T, U any](narrow func(T) (U, bool), whenMatch Comparator[U], whenOther Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		ua, oka := narrow(a)
		ub, okb := narrow(b)
		switch {
		case oka && okb:
			return whenMatch.eval(ua, ub)
		case oka:
			return -1
		case okb:
			return 1
		}
		return whenOther.eval(a, b)
	}
}

// ConstFirst sorts values equal to v before everything else. Matching values
// are mutually equivalent, as are the rest, so both partitions keep their
// input order.
func ConstFirst[T comparable](v T) Comparator[T] {
	return PredicateFirst(func(t T) bool { return t == v }, nil, nil)
}

// NullableFirst lifts a comparator to pointers: nil sorts before any present
// value and nils are mutually equivalent; present values are ordered by c on
// the pointed-to values.
func NullableFirst[T any](c Comparator[T]) Comparator[*T] {
	return PredicateFirst(isNil[T], nil, deref(c))
}

// NullableLast mirrors NullableFirst with nil sorting after every present
// value.
func NullableLast[T any](c Comparator[T]) Comparator[*T] {
	return PredicateFirst(isPresent[T], deref(c), nil)
}

func isNil[T any](p *T) bool     { return p == nil }
func isPresent[T any](p *T) bool { return p != nil }

func deref[T any](c Comparator[T]) Comparator[*T] {
	return func(a, b *T) int { return c.eval(*a, *b) }
}
