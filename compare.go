// Package compare provides composable three-way comparison functions for use
// with a stable sort. Small fixed comparators are combined through a set of
// combinators (Chain, MapBy, PredicateFirst, ...) into a single Comparator
// which is then handed to the caller's sort routine, typically
// slices.SortStableFunc. All stability guarantees assume a stable host sort.
package compare

// Comparator orders two values of the same type: the result is negative when
// a sorts before b, positive when b sorts before a and zero when the two are
// equivalent for ordering purposes (not necessarily equal). Comparators are
// plain values; combinators capture them by reference and never retain state
// between calls, so any comparator built here is safe for concurrent use
// unless its constructor documents otherwise.
type Comparator[T any] func(a, b T) int

// Equal treats every pair as equivalent. It is the identity for Chain: a
// stable sort driven by it never reorders anything.
func Equal[T any]() Comparator[T] {
	return func(a, b T) int { return 0 }
}

// Invert flips the sort direction.
func (c Comparator[T]) Invert() Comparator[T] {
	return func(a, b T) int { return c(b, a) }
}

// Then resolves ties in c with next.
func (c Comparator[T]) Then(next Comparator[T]) Comparator[T] {
	return Chain(c, next)
}

// Chain evaluates comparators left to right and returns the first result that
// is not zero. Earlier comparators take precedence; a pair equivalent under
// all of them stays in input order under a stable sort.
func Chain[T any](cs ...Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		for _, c := range cs {
			if r := c(a, b); r != 0 {
				return r
			}
		}
		return 0
	}
}

// eval treats a nil comparator as Equal. Combinators with optional branch
// comparators route through it.
func (c Comparator[T]) eval(a, b T) int {
	if c == nil {
		return 0
	}
	return c(a, b)
}
