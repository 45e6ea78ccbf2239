package divide

import (
	"fmt"
	"iter"

	"github.com/WinPooh32/divide/internal/xslices"
)

// Portion is an iterator over n read-only portions of a slice, starting at
// the beginning of the slice.
//
// Portion is created by [Divide]. It is single-pass: once exhausted it yields
// nothing, call [Divide] again to start over.
type Portion[E any] struct {
	plan Plan
	rest []E
	idx  int
}

// Divide divides slice s into n non-overlapping read-only portions.
//
// Elements are distributed as evenly as possible: if len(s) is not divisible
// by n, the first portions have one more element than the others. If len(s)
// is less than n, the last portions are empty.
//
// Returns an error wrapping [ErrInvalidPartitionCount] if n is negative, or
// if n is zero and s is not empty.
func Divide[S ~[]E, E any](s S, n int) (*Portion[E], error) {
	plan, err := NewPlan(len(s), n)
	if err != nil {
		return nil, fmt.Errorf("divide: %w", err)
	}

	return &Portion[E]{
		plan: plan,
		rest: s,
		idx:  0,
	}, nil
}

// MustDivide is like [Divide] but panics on error.
func MustDivide[S ~[]E, E any](s S, n int) *Portion[E] {
	p, err := Divide(s, n)
	if err != nil {
		panic(err)
	}

	return p
}

// Next returns the next portion.
// The second result is false when all portions have been returned.
func (p *Portion[E]) Next() (View[E], bool) {
	if p.idx >= p.plan.Count() {
		return View[E]{}, false
	}

	head, tail := xslices.SplitAt(p.rest, p.plan.Len(p.idx))

	p.rest = tail
	p.idx++

	return View[E]{s: head}, true
}

// Remaining returns the number of portions not yet returned.
func (p *Portion[E]) Remaining() int {
	return p.plan.Count() - p.idx
}

// Plan returns the plan the iterator follows.
func (p *Portion[E]) Plan() Plan {
	return p.plan
}

// All returns an iterator over the remaining portions.
// Ranging over it advances p.
func (p *Portion[E]) All() iter.Seq[View[E]] {
	return func(yield func(View[E]) bool) {
		for {
			v, ok := p.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
