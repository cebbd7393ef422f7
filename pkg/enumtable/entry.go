package enumtable

import (
	"fmt"

	"github.com/henderiw/intrange/pkg/intrange"
	"k8s.io/apimachinery/pkg/labels"
)

// Entry is a declared variant. A unit variant owns a single discriminant, a
// payload variant owns every value of its interval.
type Entry[T intrange.Integer] interface {
	Name() string
	Interval() intrange.Interval[T]
	IsUnit() bool
	Labels() labels.Set
	String() string
}

func NewEntry[T intrange.Integer](name string, i intrange.Interval[T], unit bool, l labels.Set) Entry[T] {
	return &entry[T]{
		name:     name,
		interval: i,
		unit:     unit,
		labels:   l,
	}
}

type entry[T intrange.Integer] struct {
	name     string
	interval intrange.Interval[T]
	unit     bool
	labels   labels.Set
}

func (r *entry[T]) Name() string { return r.name }

func (r *entry[T]) Interval() intrange.Interval[T] { return r.interval }

func (r *entry[T]) IsUnit() bool { return r.unit }

func (r *entry[T]) Labels() labels.Set {
	l := labels.Set{}
	for k, v := range r.labels {
		l[k] = v
	}
	return l
}

func (r *entry[T]) String() string {
	if r.unit {
		return fmt.Sprintf("%s=%d labels: %v", r.name, r.interval.Lo, r.labels)
	}
	return fmt.Sprintf("%s(%s) labels: %v", r.name, r.interval, r.labels)
}
