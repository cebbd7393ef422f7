package intrange

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Integer is the set of fixed-width integer domains a range can be built over.
type Integer interface {
	constraints.Integer
}

func signed[T Integer]() bool {
	var zero T
	return ^zero < zero
}

func bitSize[T Integer]() uint {
	var zero T
	return uint(unsafe.Sizeof(zero)) * 8
}

// Max returns the largest value representable by T.
func Max[T Integer]() T {
	if signed[T]() {
		return T(^uint64(0) >> (65 - bitSize[T]()))
	}
	var zero T
	return ^zero
}

// Min returns the smallest value representable by T.
func Min[T Integer]() T {
	if signed[T]() {
		return ^Max[T]()
	}
	return 0
}
