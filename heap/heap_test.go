package heap_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/ddirect/compare"
	"github.com/ddirect/compare/heap"
	"github.com/stretchr/testify/assert"
)

func Test_Basic(t *testing.T) {
	const n = 1000

	h := heap.New(compare.Ordered[uint](), nil)

	var ref []uint
	for range n {
		v := rand.Uint()
		h.Push(v)
		ref = append(ref, v)
	}

	slices.Sort(ref)
	assert.Equal(t, ref[0], h.Min())
	assert.Equal(t, ref, slices.Collect(h.PopAll()))
	assert.Equal(t, 0, h.Len())
}

func Test_Composed(t *testing.T) {
	type task struct {
		pri  int
		name string
	}

	c := compare.Chain(
		compare.MapBy(compare.Ordered[int](), func(k task) int { return k.pri }),
		compare.MapBy(compare.Ordered[string](), func(k task) string { return k.name }),
	)

	h := heap.New(c, nil)
	in := []task{{2, "b"}, {1, "z"}, {2, "a"}, {1, "a"}}
	for _, k := range in {
		h.Push(k)
	}

	ref := slices.Clone(in)
	slices.SortStableFunc(ref, c)
	assert.Equal(t, ref, slices.Collect(h.PopAll()))
}

func Test_RemoveFix(t *testing.T) {
	const n = 200

	type node struct {
		val   uint
		index int
	}

	byVal := compare.MapBy(compare.Ordered[uint](), func(nd *node) uint { return nd.val })

	var nodes []*node
	h := heap.New(byVal, func(nd *node, i int) { nd.index = i })

	for range n {
		nd := &node{val: rand.Uint()}
		h.Push(nd)
		nodes = append(nodes, nd)
	}

	for range n / 4 {
		i := rand.IntN(len(nodes))
		nd := nodes[i]
		assert.Equal(t, nd, h.Remove(nd.index))
		nodes = slices.Delete(nodes, i, i+1)
	}

	for range n / 4 {
		nd := nodes[rand.IntN(len(nodes))]
		nd.val = rand.Uint()
		h.Fix(nd.index)
	}

	var want []uint
	for _, nd := range nodes {
		want = append(want, nd.val)
	}
	slices.Sort(want)

	var got []uint
	for nd := range h.PopAll() {
		got = append(got, nd.val)
	}

	assert.Equal(t, want, got)
	assert.Equal(t, 0, h.Len())
}
