package enumtable

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/henderiw/intrange/pkg/intrange"
	"k8s.io/apimachinery/pkg/labels"
)

var (
	ErrDuplicateName    = errors.New("variant already declared")
	ErrOverlap          = errors.New("range overlaps an already declared variant")
	ErrMultipleDefaults = errors.New("multiple default variants")
	ErrNotFound         = errors.New("variant not found")
	ErrNoVariant        = errors.New("no variant for value")
)

// Table maps the values of the integer domain T onto named variants, the way
// a tagged union with an integer representation does. Every declared
// variant owns a disjoint part of the domain.
type Table[T intrange.Integer] interface {
	DeclareValue(name string, v T, l labels.Set) error
	DeclareRange(name string, r intrange.Range[T], l labels.Set) error
	SetDefault(name string) error

	Get(name string) (Entry[T], error)
	Lookup(v T) (Entry[T], error)
	Value(name string, payload T) (T, error)
	IsValid(name string, v T) bool

	// IsExhaustive reports whether the declared variants cover the whole
	// domain, in which case Lookup never fails.
	IsExhaustive() bool
	Ranges() []intrange.Interval[T]
	Remaining() []intrange.Interval[T]

	Count() int
	GetAll() []Entry[T]
	GetByLabel(selector labels.Selector) []Entry[T]
}

func NewTable[T intrange.Integer](opts ...Option) Table[T] {
	// the full domain is never empty
	free, _ := intrange.NewPartition(intrange.Full[T]())
	o := newOptions(opts...)
	return &table[T]{
		m:       new(sync.RWMutex),
		free:    free,
		entries: []Entry[T]{},
		names:   map[string]int{},
		logger:  o.logger,
	}
}

type table[T intrange.Integer] struct {
	m       *sync.RWMutex
	free    *intrange.Partition[T]
	entries []Entry[T]
	names   map[string]int
	dflt    Entry[T]
	logger  *slog.Logger
}

func (r *table[T]) DeclareValue(name string, v T, l labels.Set) error {
	r.m.Lock()
	defer r.m.Unlock()

	return r.declare(name, intrange.Single(v), true, l)
}

func (r *table[T]) DeclareRange(name string, rng intrange.Range[T], l labels.Set) error {
	r.m.Lock()
	defer r.m.Unlock()

	return r.declare(name, rng, false, l)
}

func (r *table[T]) declare(name string, rng intrange.Range[T], unit bool, l labels.Set) error {
	if _, ok := r.names[name]; ok {
		return fmt.Errorf("variant %s: %w", name, ErrDuplicateName)
	}
	i, err := rng.Normalize()
	if err != nil {
		return fmt.Errorf("variant %s: %w", name, err)
	}
	// a declaration is only accepted when it fits in a single free
	// interval, a range straddling another variant is rejected as a whole
	if !r.free.CoversRange(rng) {
		return fmt.Errorf("variant %s range %s: %w: %w", name, rng, ErrOverlap, intrange.ErrNoOverlap)
	}
	if err := r.free.Subtract(rng); err != nil {
		return fmt.Errorf("variant %s range %s: %w: %w", name, rng, ErrOverlap, err)
	}
	r.names[name] = len(r.entries)
	r.entries = append(r.entries, NewEntry(name, i, unit, l))

	r.logger.Debug("declared variant", "name", name, "interval", i.String(), "remaining", r.free.String())
	return nil
}

func (r *table[T]) SetDefault(name string) error {
	r.m.Lock()
	defer r.m.Unlock()

	e, err := r.get(name)
	if err != nil {
		return err
	}
	if r.dflt != nil && r.dflt.Name() != name {
		return fmt.Errorf("default %s, already set to %s: %w", name, r.dflt.Name(), ErrMultipleDefaults)
	}
	r.dflt = e
	return nil
}

func (r *table[T]) Get(name string) (Entry[T], error) {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.get(name)
}

func (r *table[T]) get(name string) (Entry[T], error) {
	idx, ok := r.names[name]
	if !ok {
		return nil, fmt.Errorf("variant %s: %w", name, ErrNotFound)
	}
	return r.entries[idx], nil
}

// Lookup returns the variant owning v, the default variant when none does.
func (r *table[T]) Lookup(v T) (Entry[T], error) {
	r.m.RLock()
	defer r.m.RUnlock()

	for _, e := range r.entries {
		if e.Interval().Contains(v) {
			return e, nil
		}
	}
	if r.dflt != nil {
		return r.dflt, nil
	}
	return nil, fmt.Errorf("value %d: %w", v, ErrNoVariant)
}

// Value returns the integer representation of a variant. Unit variants
// ignore the payload.
func (r *table[T]) Value(name string, payload T) (T, error) {
	r.m.RLock()
	defer r.m.RUnlock()

	e, err := r.get(name)
	if err != nil {
		return 0, err
	}
	if e.IsUnit() {
		return e.Interval().Lo, nil
	}
	if !e.Interval().Contains(payload) {
		return 0, fmt.Errorf("payload %d out of range %s for variant %s", payload, e.Interval(), name)
	}
	return payload, nil
}

func (r *table[T]) IsValid(name string, v T) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	e, err := r.get(name)
	if err != nil {
		return false
	}
	return e.Interval().Contains(v)
}

func (r *table[T]) IsExhaustive() bool {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.free.IsEmpty()
}

func (r *table[T]) Ranges() []intrange.Interval[T] {
	r.m.RLock()
	defer r.m.RUnlock()

	ranges := make([]intrange.Interval[T], 0, len(r.entries))
	for _, e := range r.entries {
		ranges = append(ranges, e.Interval())
	}
	return ranges
}

func (r *table[T]) Remaining() []intrange.Interval[T] {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.free.Intervals()
}

func (r *table[T]) Count() int {
	r.m.RLock()
	defer r.m.RUnlock()

	return len(r.entries)
}

func (r *table[T]) GetAll() []Entry[T] {
	r.m.RLock()
	defer r.m.RUnlock()

	return append([]Entry[T]{}, r.entries...)
}

func (r *table[T]) GetByLabel(selector labels.Selector) []Entry[T] {
	r.m.RLock()
	defer r.m.RUnlock()

	entries := []Entry[T]{}
	for _, e := range r.entries {
		if selector.Matches(e.Labels()) {
			entries = append(entries, e)
		}
	}
	return entries
}
