package divide

import (
	"iter"
	"slices"
)

// View is a read-only window over a contiguous range of a slice.
//
// The zero View is empty.
type View[E any] struct {
	s []E
}

// Len returns the number of elements in the view.
func (v View[E]) Len() int {
	return len(v.s)
}

// IsEmpty reports whether the view has no elements.
func (v View[E]) IsEmpty() bool {
	return len(v.s) == 0
}

// At returns the i-th element of the view.
// Panics if i is out of range.
func (v View[E]) At(i int) E {
	return v.s[i]
}

// All returns an iterator over indices and elements of the view.
func (v View[E]) All() iter.Seq2[int, E] {
	return slices.All(v.s)
}

// Values returns an iterator over elements of the view.
func (v View[E]) Values() iter.Seq[E] {
	return slices.Values(v.s)
}

// Clone returns a copy of the viewed elements.
func (v View[E]) Clone() []E {
	return v.AppendTo(make([]E, 0, len(v.s)))
}

// AppendTo appends the viewed elements to dst and returns the extended slice.
func (v View[E]) AppendTo(dst []E) []E {
	return append(dst, v.s...)
}
