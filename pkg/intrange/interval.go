package intrange

import "fmt"

// Interval is the canonical inclusive form [Lo, Hi] of a non-empty Range.
// Lo <= Hi holds for every Interval produced by this package.
type Interval[T Integer] struct {
	Lo T
	Hi T
}

// Range returns the Range Lo..=Hi.
func (i Interval[T]) Range() Range[T] {
	return Closed(i.Lo, i.Hi)
}

func (i Interval[T]) Contains(v T) bool {
	return i.Lo <= v && v <= i.Hi
}

func (i Interval[T]) String() string {
	return fmt.Sprintf("%d-%d", i.Lo, i.Hi)
}

func (i Interval[T]) span() span[T] {
	return span[T]{lo: i.Lo, hi: i.Hi}
}
