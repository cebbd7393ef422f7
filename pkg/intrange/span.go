package intrange

// span is the resolved form of a non-empty Range. All relations between
// ranges are evaluated on spans so the start/end bound cases are only
// handled in one place.
type span[T Integer] struct {
	lo, hi T
}

// spanOf resolves r. ok is false when r is empty, in which case no +1/-1
// adjustment has been made.
func spanOf[T Integer](r Range[T]) (s span[T], ok bool) {
	if isEmpty(r.Start, r.End) {
		return s, false
	}
	// r is not empty, so an Excluded start has a successor and an
	// Excluded end has a predecessor.
	switch r.Start.Kind {
	case BoundIncluded:
		s.lo = r.Start.Value
	case BoundExcluded:
		s.lo = r.Start.Value + 1
	default:
		s.lo = Min[T]()
	}
	switch r.End.Kind {
	case BoundIncluded:
		s.hi = r.End.Value
	case BoundExcluded:
		s.hi = r.End.Value - 1
	default:
		s.hi = Max[T]()
	}
	return s, true
}

func isEmpty[T Integer](start, end Bound[T]) bool {
	switch start.Kind {
	case BoundIncluded:
		s := start.Value
		switch end.Kind {
		case BoundIncluded:
			return s > end.Value
		case BoundExcluded:
			return s >= end.Value
		default:
			return false
		}
	case BoundExcluded:
		s := start.Value
		switch end.Kind {
		case BoundIncluded:
			return s >= end.Value
		case BoundExcluded:
			// (s, e) needs a representable point strictly between s and e;
			// s+1 is only evaluated once s < e guarantees it exists.
			return !(s < end.Value && s+1 < end.Value)
		default:
			return s >= Max[T]()
		}
	default:
		switch end.Kind {
		case BoundIncluded:
			return Min[T]() > end.Value
		case BoundExcluded:
			return Min[T]() >= end.Value
		default:
			return false
		}
	}
}

func (s span[T]) interval() Interval[T] {
	return Interval[T]{Lo: s.lo, Hi: s.hi}
}

func (s span[T]) atMin() bool { return s.lo == Min[T]() }

func (s span[T]) atMax() bool { return s.hi == Max[T]() }

func (s span[T]) has(v T) bool { return s.lo <= v && v <= s.hi }

// covers returns whether o lies entirely within s.
func (s span[T]) covers(o span[T]) bool {
	return s.lo <= o.lo && o.hi <= s.hi
}

// remainders returns what is left of s once o is removed. o must be covered
// by s. The left part exists only when o starts after s, so o.lo-1 cannot
// underflow; likewise o.hi+1 is only taken when o ends before s.
func (s span[T]) remainders(o span[T]) (left, right *Interval[T]) {
	if !o.atMin() && s.lo < o.lo {
		left = &Interval[T]{Lo: s.lo, Hi: o.lo - 1}
	}
	if !o.atMax() && o.hi < s.hi {
		right = &Interval[T]{Lo: o.hi + 1, Hi: s.hi}
	}
	return left, right
}
