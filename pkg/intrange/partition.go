package intrange

import (
	"fmt"
	"strings"
)

// Partition tracks what remains of a universe after sub-ranges are removed
// from it. The remaining values are held as disjoint canonical intervals in
// ascending order.
//
// A Partition is not safe for concurrent use.
type Partition[T Integer] struct {
	intervals []Interval[T]
}

// NewPartition returns a Partition whose universe is r.
func NewPartition[T Integer](r Range[T]) (*Partition[T], error) {
	s, ok := spanOf(r)
	if !ok {
		return nil, fmt.Errorf("cannot create partition from %s: %w", r, ErrEmptyRange)
	}
	return &Partition[T]{intervals: []Interval[T]{s.interval()}}, nil
}

// IsEmpty reports whether the whole universe has been removed.
func (p *Partition[T]) IsEmpty() bool {
	return len(p.intervals) == 0
}

func (p *Partition[T]) Len() int {
	return len(p.intervals)
}

// Intervals returns a copy of the remaining intervals in ascending order.
func (p *Partition[T]) Intervals() []Interval[T] {
	return append([]Interval[T]{}, p.intervals...)
}

// Covers reports whether v has not been removed yet.
func (p *Partition[T]) Covers(v T) bool {
	for _, i := range p.intervals {
		if i.Contains(v) {
			return true
		}
	}
	return false
}

// CoversRange reports whether a single remaining interval contains all of
// other, i.e. whether Subtract(other) would remove other as a whole.
func (p *Partition[T]) CoversRange(other Range[T]) bool {
	os, ok := spanOf(other)
	if !ok {
		return false
	}
	for _, i := range p.intervals {
		if i.span().covers(os) {
			return true
		}
	}
	return false
}

// Subtract removes other from every remaining interval that contains it.
// Intervals that do not contain other are kept as they are. ErrNoOverlap is
// returned, and the partition left untouched, when no interval contains
// other.
func (p *Partition[T]) Subtract(other Range[T]) error {
	os, ok := spanOf(other)
	if !ok {
		return fmt.Errorf("cannot subtract %s: %w", other, ErrNoOverlap)
	}

	overlapped := false
	// remainders are appended left then right, which keeps the sequence
	// ascending.
	out := make([]Interval[T], 0, len(p.intervals)+1)
	for _, i := range p.intervals {
		is := i.span()
		if !is.covers(os) {
			out = append(out, i)
			continue
		}
		overlapped = true
		left, right := is.remainders(os)
		if left != nil {
			out = append(out, *left)
		}
		if right != nil {
			out = append(out, *right)
		}
	}
	if !overlapped {
		return fmt.Errorf("cannot subtract %s from %s: %w", other, p, ErrNoOverlap)
	}
	p.intervals = out
	return nil
}

func (p *Partition[T]) String() string {
	ss := make([]string, 0, len(p.intervals))
	for _, i := range p.intervals {
		ss = append(ss, i.String())
	}
	return "[" + strings.Join(ss, " ") + "]"
}
