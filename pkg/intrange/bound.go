package intrange

import "fmt"

// BoundKind indicates how an endpoint of a Range relates to the Range.
type BoundKind uint8

const (
	// BoundUnbounded means the range extends to the end of the domain on that side.
	BoundUnbounded BoundKind = iota
	// BoundIncluded means the endpoint value is part of the range.
	BoundIncluded
	// BoundExcluded means the endpoint value is not part of the range.
	BoundExcluded
)

func (k BoundKind) String() string {
	switch k {
	case BoundUnbounded:
		return "Unbounded"
	case BoundIncluded:
		return "Included"
	case BoundExcluded:
		return "Excluded"
	default:
		return fmt.Sprintf("BoundKind(%d)", uint8(k))
	}
}

// Bound is one side of a Range. Value is ignored when Kind is BoundUnbounded.
type Bound[T Integer] struct {
	Kind  BoundKind
	Value T
}

func Included[T Integer](v T) Bound[T] { return Bound[T]{Kind: BoundIncluded, Value: v} }

func Excluded[T Integer](v T) Bound[T] { return Bound[T]{Kind: BoundExcluded, Value: v} }

func Unbounded[T Integer]() Bound[T] { return Bound[T]{Kind: BoundUnbounded} }

func (b Bound[T]) IsUnbounded() bool { return b.Kind == BoundUnbounded }

func (b Bound[T]) String() string {
	if b.Kind == BoundUnbounded {
		return b.Kind.String()
	}
	return fmt.Sprintf("%s(%d)", b.Kind, b.Value)
}
