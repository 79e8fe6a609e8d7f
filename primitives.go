package compare

import (
	"math"
	"time"

	"golang.org/x/exp/constraints"
)

// Ordered compares any type supporting < with -1, 0 or 1.
func Ordered[T constraints.Ordered]() Comparator[T] {
	return compareOrdered[T]
}

func compareOrdered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Finite orders two finite floats ascending and treats any pair involving a
// NaN or an infinity as equivalent, leaving those to be ordered by whatever
// it is chained with.
func Finite[T constraints.Float]() Comparator[T] {
	return func(a, b T) int {
		if !isFinite(a) || !isFinite(b) {
			return 0
		}
		return compareOrdered(a, b)
	}
}

// NaNFirst sorts NaN values before everything else; NaN values stay in input
// order among themselves.
func NaNFirst[T constraints.Float]() Comparator[T] {
	return PredicateFirst(isNaN[T], nil, nil)
}

// NegativeInfinityFirst sorts negative infinities before everything else.
func NegativeInfinityFirst[T constraints.Float]() Comparator[T] {
	return PredicateFirst(isInf[T](-1), nil, nil)
}

// PositiveInfinityFirst sorts positive infinities before everything else.
// Invert it to push them last.
func PositiveInfinityFirst[T constraints.Float]() Comparator[T] {
	return PredicateFirst(isInf[T](1), nil, nil)
}

// Number establishes a total order over the full float domain: NaN first,
// then negative infinity, then finite values ascending, then positive
// infinity. Values within each special class stay in input order.
func Number[T constraints.Float]() Comparator[T] {
	return Chain(
		NaNFirst[T](),
		NegativeInfinityFirst[T](),
		PositiveInfinityFirst[T]().Invert(),
		Finite[T](),
	)
}

// Bool sorts true before false.
func Bool() Comparator[bool] {
	return func(a, b bool) int {
		switch {
		case a == b:
			return 0
		case a:
			return -1
		}
		return 1
	}
}

// Time orders instants by their nanosecond timestamp.
func Time() Comparator[time.Time] {
	return MapBy(Ordered[int64](), time.Time.UnixNano)
}

func isFinite[T constraints.Float](v T) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func isNaN[T constraints.Float](v T) bool {
	return math.IsNaN(float64(v))
}

func isInf[T constraints.Float](sign int) func(T) bool {
	return func(v T) bool {
		return math.IsInf(float64(v), sign)
	}
}
