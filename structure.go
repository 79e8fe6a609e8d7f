package compare

// MapBy orders values by a derived key: key is applied to both operands and
// the keys are compared with c. key must be a pure function of its argument;
// any panic it raises propagates to the sort call.
func MapBy[T, K any](c Comparator[K], key func(T) K) Comparator[T] {
	return func(a, b T) int {
		return c(key(a), key(b))
	}
}

// ByOrdering orders values by their position in order. The lookup is built
// once up front; the first occurrence wins for duplicate entries. Values not
// listed rank after every listed one and are mutually equivalent, so they
// keep their input order under a stable sort.
func ByOrdering[T comparable](order ...T) Comparator[T] {
	index := make(map[T]int, len(order))
	for i, v := range order {
		if _, ok := index[v]; !ok {
			index[v] = i
		}
	}
	return MapBy(Ordered[int](), func(v T) int {
		if i, ok := index[v]; ok {
			return i
		}
		return len(order)
	})
}

// ByGroup classifies both operands with key. Differing keys are ordered by
// keyCmp applied to the keys; equal keys delegate to that group's entry in
// byKey. Every key the classifier can produce must have an entry: a missing
// one is a caller error and fails with a nil call panic at comparison time.
func ByGroup[T any, K comparable](byKey map[K]Comparator[T], key func(T) K, keyCmp Comparator[K]) Comparator[T] {
	return func(a, b T) int {
		ka, kb := key(a), key(b)
		if ka != kb {
			return keyCmp(ka, kb)
		}
		return byKey[ka](a, b)
	}
}

// BySequence compares slices element-wise with item, returning the first
// result that is not zero. When one slice is a prefix of the other the
// shorter sorts first; equal-length slices with equivalent elements are
// equivalent. Cost is linear in the shorter length.
func BySequence[T any](item Comparator[T]) Comparator[[]T] {
	return func(a, b []T) int {
		for i := range min(len(a), len(b)) {
			if r := item(a[i], b[i]); r != 0 {
				return r
			}
		}
		return compareOrdered(len(a), len(b))
	}
}
