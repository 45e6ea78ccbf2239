package divide

import (
	"fmt"
	"iter"

	"github.com/WinPooh32/divide/internal/xslices"
)

// PortionMut is an iterator over n mutable portions of a slice, starting at
// the beginning of the slice.
//
// Each portion is carved off the unconsumed tail of the slice, so index ranges
// of all returned portions are pairwise disjoint and every portion has its
// capacity clipped to its length. Portions may be written to concurrently from
// different goroutines.
//
// While returned portions are in use, the caller must not access the source
// slice other than through them.
//
// PortionMut is created by [DivideMut]. It is single-pass.
type PortionMut[S ~[]E, E any] struct {
	plan Plan
	rest S
	off  int
	idx  int
}

// DivideMut divides slice s into n non-overlapping mutable portions.
//
// Elements are distributed the same way as by [Divide].
//
// Returns an error wrapping [ErrInvalidPartitionCount] if n is negative, or
// if n is zero and s is not empty.
func DivideMut[S ~[]E, E any](s S, n int) (*PortionMut[S, E], error) {
	plan, err := NewPlan(len(s), n)
	if err != nil {
		return nil, fmt.Errorf("divide mut: %w", err)
	}

	return &PortionMut[S, E]{
		plan: plan,
		rest: s,
		off:  0,
		idx:  0,
	}, nil
}

// MustDivideMut is like [DivideMut] but panics on error.
func MustDivideMut[S ~[]E, E any](s S, n int) *PortionMut[S, E] {
	p, err := DivideMut(s, n)
	if err != nil {
		panic(err)
	}

	return p
}

// Next returns the next portion.
// The second result is false when all portions have been returned.
func (p *PortionMut[S, E]) Next() (S, bool) {
	if p.idx >= p.plan.Count() {
		var zero S
		return zero, false
	}

	start, end := p.plan.Bounds(p.idx)
	if start != p.off {
		// Unreachable: the cursor only ever advances by planned lengths.
		panic(fmt.Sprintf("portion %d starts at %d, cursor is at %d", p.idx, start, p.off))
	}

	head, tail := xslices.SplitAt(p.rest, end-start)

	p.rest = tail
	p.off = end
	p.idx++

	return head, true
}

// Offset returns the source index at which the next portion starts.
func (p *PortionMut[S, E]) Offset() int {
	return p.off
}

// Remaining returns the number of portions not yet returned.
func (p *PortionMut[S, E]) Remaining() int {
	return p.plan.Count() - p.idx
}

// Plan returns the plan the iterator follows.
func (p *PortionMut[S, E]) Plan() Plan {
	return p.plan
}

// All returns an iterator over the remaining portions.
// Ranging over it advances p.
func (p *PortionMut[S, E]) All() iter.Seq[S] {
	return func(yield func(S) bool) {
		for {
			s, ok := p.Next()
			if !ok || !yield(s) {
				return
			}
		}
	}
}
