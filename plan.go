package divide

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// Plan is the sequence of portion lengths for dividing length elements into
// count portions.
//
// The first length%count portions have length/count+1 elements, the rest have
// length/count elements. Lengths are computed on demand.
type Plan struct {
	length int
	count  int
	quo    int
	rem    int
}

// NewPlan returns a plan for dividing length elements into count portions.
//
// Zero count is valid only for zero length and gives an empty plan.
func NewPlan(length, count int) (Plan, error) {
	if length < 0 {
		return Plan{}, fmt.Errorf("length %d: %w", length, ErrInvalidLength)
	}

	if count < 0 || (count == 0 && length > 0) {
		return Plan{}, fmt.Errorf("divide %d elements into %d portions: %w", length, count, ErrInvalidPartitionCount)
	}

	if count == 0 {
		return Plan{}, nil
	}

	return Plan{
		length: length,
		count:  count,
		quo:    length / count,
		rem:    length % count,
	}, nil
}

// Count returns the number of portions.
func (p Plan) Count() int {
	return p.count
}

// Total returns the number of elements covered by all portions.
func (p Plan) Total() int {
	return p.length
}

// Len returns the length of the i-th portion.
func (p Plan) Len(i int) int {
	p.check(i)

	if i < p.rem {
		return p.quo + 1
	}

	return p.quo
}

// Bounds returns the half-open range [start, end) of the i-th portion.
func (p Plan) Bounds(i int) (start, end int) {
	p.check(i)

	start = i*p.quo + min(i, p.rem)

	return start, start + p.Len(i)
}

// Lengths returns lengths of all portions.
func (p Plan) Lengths() []int {
	lens := make([]int, 0, p.count)

	for _, n := range p.All() {
		lens = append(lens, n)
	}

	return lens
}

// All returns an iterator over portion indices and lengths.
func (p Plan) All() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for i := range p.count {
			if !yield(i, p.Len(i)) {
				return
			}
		}
	}
}

// String returns the plan in form "length/count [l0 l1 ...]".
func (p Plan) String() string {
	var b strings.Builder

	b.WriteString(strconv.Itoa(p.length))
	b.WriteByte('/')
	b.WriteString(strconv.Itoa(p.count))
	b.WriteString(" [")

	for i, n := range p.All() {
		if i > 0 {
			b.WriteByte(' ')
		}

		b.WriteString(strconv.Itoa(n))
	}

	b.WriteByte(']')

	return b.String()
}

func (p Plan) check(i int) {
	if i < 0 || i >= p.count {
		panic(fmt.Sprintf("portion index %d out of range [0, %d)", i, p.count))
	}
}
