package intrange

import (
	"fmt"
	"strings"
)

// Range is a pair of bounds over the integer domain T. A Range is not
// required to be normalized or even non-empty; emptiness is derived.
type Range[T Integer] struct {
	Start Bound[T]
	End   Bound[T]
}

func NewRange[T Integer](start, end Bound[T]) Range[T] {
	return Range[T]{Start: start, End: end}
}

// Closed returns the range from..=to.
func Closed[T Integer](from, to T) Range[T] {
	return Range[T]{Start: Included(from), End: Included(to)}
}

// HalfOpen returns the range from..to.
func HalfOpen[T Integer](from, to T) Range[T] {
	return Range[T]{Start: Included(from), End: Excluded(to)}
}

// From returns the range from.. which extends to the domain maximum.
func From[T Integer](from T) Range[T] {
	return Range[T]{Start: Included(from), End: Unbounded[T]()}
}

// UpTo returns the range ..to.
func UpTo[T Integer](to T) Range[T] {
	return Range[T]{Start: Unbounded[T](), End: Excluded(to)}
}

// Through returns the range ..=to.
func Through[T Integer](to T) Range[T] {
	return Range[T]{Start: Unbounded[T](), End: Included(to)}
}

// Full returns the range covering the whole domain of T.
func Full[T Integer]() Range[T] {
	return Range[T]{Start: Unbounded[T](), End: Unbounded[T]()}
}

// Single returns the range holding only v.
func Single[T Integer](v T) Range[T] {
	return Closed(v, v)
}

func (r Range[T]) IsEmpty() bool { return IsEmpty(r) }

func (r Range[T]) Normalize() (Interval[T], error) { return Normalize(r) }

func (r Range[T]) ContainsSubrange(other Range[T]) (bool, error) {
	return ContainsSubrange(r, other)
}

func (r Range[T]) Equal(other Range[T]) bool { return Equal(r, other) }

func (r Range[T]) Subtract(other Range[T]) (*Interval[T], *Interval[T], error) {
	return Subtract(r, other)
}

func (r Range[T]) Intersects(other Range[T]) (bool, error) { return Intersects(r, other) }

// String renders r in interval notation, e.g. [3,5) or (-inf,10].
func (r Range[T]) String() string {
	var sb strings.Builder
	switch r.Start.Kind {
	case BoundIncluded:
		fmt.Fprintf(&sb, "[%d", r.Start.Value)
	case BoundExcluded:
		fmt.Fprintf(&sb, "(%d", r.Start.Value)
	default:
		sb.WriteString("(-inf")
	}
	sb.WriteByte(',')
	switch r.End.Kind {
	case BoundIncluded:
		fmt.Fprintf(&sb, "%d]", r.End.Value)
	case BoundExcluded:
		fmt.Fprintf(&sb, "%d)", r.End.Value)
	default:
		sb.WriteString("+inf)")
	}
	return sb.String()
}
