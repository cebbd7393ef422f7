package intrange

import "fmt"

// IsEmpty reports whether r holds no value of T.
func IsEmpty[T Integer](r Range[T]) bool {
	return isEmpty(r.Start, r.End)
}

// Normalize converts r to its canonical inclusive Interval.
func Normalize[T Integer](r Range[T]) (Interval[T], error) {
	s, ok := spanOf(r)
	if !ok {
		return Interval[T]{}, fmt.Errorf("cannot normalize %s: %w", r, ErrEmptyRange)
	}
	return s.interval(), nil
}

func spansOf[T Integer](r, other Range[T]) (span[T], span[T], error) {
	rs, ok := spanOf(r)
	if !ok {
		return rs, rs, fmt.Errorf("%s: %w", r, ErrEmptyRange)
	}
	os, ok := spanOf(other)
	if !ok {
		return rs, os, fmt.Errorf("%s: %w", other, ErrEmptyRange)
	}
	return rs, os, nil
}

// ContainsSubrange reports whether every value of other is also in r.
// Both ranges must be non-empty.
func ContainsSubrange[T Integer](r, other Range[T]) (bool, error) {
	rs, os, err := spansOf(r, other)
	if err != nil {
		return false, err
	}
	return rs.covers(os), nil
}

// Equal reports whether r and other hold the same values. Empty ranges are
// never equal to anything.
func Equal[T Integer](r, other Range[T]) bool {
	a, err := ContainsSubrange(r, other)
	if err != nil || !a {
		return false
	}
	b, err := ContainsSubrange(other, r)
	return err == nil && b
}

// Subtract removes other from r and returns the canonical remainders below
// and above other. A nil remainder means nothing is left on that side.
// r must contain other.
func Subtract[T Integer](r, other Range[T]) (left, right *Interval[T], err error) {
	rs, os, err := spansOf(r, other)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrNotContained, err)
	}
	if !rs.covers(os) {
		return nil, nil, fmt.Errorf("%w: %s does not contain %s", ErrNotContained, r, other)
	}
	left, right = rs.remainders(os)
	return left, right, nil
}

// Intersects reports whether r and other share at least one value.
func Intersects[T Integer](r, other Range[T]) (bool, error) {
	rs, os, err := spansOf(r, other)
	if err != nil {
		return false, err
	}
	if rs.covers(os) || os.covers(rs) {
		return true, nil
	}
	//   -----
	//      -----
	return os.has(rs.lo) || os.has(rs.hi), nil
}
