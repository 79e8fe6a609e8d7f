package compare_test

import (
	"testing"

	"github.com/ddirect/compare"
	"github.com/stretchr/testify/assert"
)

func Test_PredicateFirst(t *testing.T) {
	even := func(v int) bool { return v%2 == 0 }

	// evens ascending first, odds keep input order
	c := compare.PredicateFirst(even, compare.Ordered[int](), nil)
	in := []int{5, 2, 7, 8, 1, 4}
	assert.Equal(t, []int{2, 4, 8, 5, 7, 1}, sorted(c, in))
}

func Test_TypeFirst(t *testing.T) {
	c := compare.TypeFirst(
		func(v any) (int, bool) { n, ok := v.(int); return n, ok },
		compare.Ordered[int](),
		compare.MapBy(compare.Ordered[string](), func(v any) string { return v.(string) }),
	)

	in := []any{"b", 2, "a", 1}
	assert.Equal(t, []any{1, 2, "a", "b"}, sorted(c, in))
}

func Test_ConstFirst(t *testing.T) {
	in := []string{"a", "z", "b", "z", "c"}
	out := sorted(compare.ConstFirst("z"), in)

	// matching values first, everything else in input order
	assert.Equal(t, []string{"z", "z", "a", "b", "c"}, out)
}

func ptr[T any](v T) *T {
	return &v
}

func Test_NullableFirst(t *testing.T) {
	in := []*int{ptr(2), nil, ptr(1), nil}
	out := sorted(compare.NullableFirst(compare.Ordered[int]()), in)

	assert.Nil(t, out[0])
	assert.Nil(t, out[1])
	assert.Equal(t, 1, *out[2])
	assert.Equal(t, 2, *out[3])
}

func Test_NullableLast(t *testing.T) {
	in := []*int{ptr(2), nil, ptr(1), nil}
	out := sorted(compare.NullableLast(compare.Ordered[int]()), in)

	assert.Equal(t, 1, *out[0])
	assert.Equal(t, 2, *out[1])
	assert.Nil(t, out[2])
	assert.Nil(t, out[3])
}
