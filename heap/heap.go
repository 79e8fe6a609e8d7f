// Package heap provides a min-heap driven by a compare.Comparator, so any
// comparator composed with the root package orders the heap directly.
package heap

import (
	"iter"

	"github.com/ddirect/compare"
)

type Heap[T any] struct {
	s        []T
	cmp      compare.Comparator[T]
	newIndex func(t T, i int)
}

// New creates a heap ordered by cmp. newIndex, which may be nil, is called
// whenever an item moves; tracking indexes this way is what makes Remove and
// Fix usable.
func New[T any](cmp compare.Comparator[T], newIndex func(t T, i int)) *Heap[T] {
	return &Heap[T]{
		cmp:      cmp,
		newIndex: newIndex,
	}
}

func (h *Heap[T]) Len() int {
	return len(h.s)
}

func (h *Heap[T]) Get(i int) T {
	return h.s[i]
}

// Min returns the smallest item without removing it.
func (h *Heap[T]) Min() T {
	return h.s[0]
}

func (h *Heap[T]) PopAll() iter.Seq[T] {
	return func(yield func(T) bool) {
		for h.Len() > 0 {
			if !yield(h.Pop()) {
				return
			}
		}
	}
}

func (h *Heap[T]) Push(x T) {
	h.s = append(h.s, x)
	n := h.Len() - 1
	if !h.up(n) && h.newIndex != nil {
		h.newIndex(x, n)
	}
}

func (h *Heap[T]) Pop() T {
	n := h.Len() - 1
	h.swap(0, n)
	h.down(0, n)
	return h.pop(n)
}

func (h *Heap[T]) Remove(i int) T {
	n := h.Len() - 1
	if n != i {
		h.swap(i, n)
		if !h.down(i, n) {
			h.up(i)
		}
	}
	return h.pop(n)
}

func (h *Heap[T]) Fix(i int) {
	if !h.down(i, h.Len()) {
		h.up(i)
	}
}

func (h *Heap[T]) up(j0 int) bool {
	j := j0
	for j > 0 {
		i := (j - 1) / 2 // parent
		if !h.less(j, i) {
			break
		}
		h.swap(i, j)
		j = i
	}
	return j < j0
}

func (h *Heap[T]) down(i0, n int) bool {
	i := i0
	for {
		c := 2*i + 1
		if c >= n || c < 0 { // c < 0 after int overflow
			break
		}
		if r := c + 1; r < n && h.less(r, c) {
			c = r
		}
		if !h.less(c, i) {
			break
		}
		h.swap(i, c)
		i = c
	}
	return i > i0
}

func (h *Heap[T]) swap(i, j int) {
	a, b := h.s[i], h.s[j]
	h.s[j], h.s[i] = a, b
	if h.newIndex != nil {
		h.newIndex(a, j)
		h.newIndex(b, i)
	}
}

func (h *Heap[T]) pop(n int) T {
	e := h.s[n]
	h.s = h.s[:n]
	return e
}

func (h *Heap[T]) less(i, j int) bool {
	return h.cmp(h.s[i], h.s[j]) < 0
}
