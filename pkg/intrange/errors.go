package intrange

import "errors"

var (
	// ErrEmptyRange is returned when an operation needs a non-empty range.
	ErrEmptyRange = errors.New("empty range")
	// ErrNotContained is returned by Subtract when the subtrahend is not a
	// subset of the minuend.
	ErrNotContained = errors.New("range does not contain the other range")
	// ErrNoOverlap is returned by Partition.Subtract when no tracked interval
	// contains the subtracted range.
	ErrNoOverlap = errors.New("range does not overlap the partition")
)
