package enumtable

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/henderiw/intrange/pkg/intrange"
	"github.com/tj/assert"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/apimachinery/pkg/selection"
)

type declaration struct {
	name   string
	value  *uint8
	rng    intrange.Range[uint8]
	labels labels.Set
}

func value(v uint8) *uint8 { return &v }

func declare(tbl Table[uint8], d declaration) error {
	if d.value != nil {
		return tbl.DeclareValue(d.name, *d.value, d.labels)
	}
	return tbl.DeclareRange(d.name, d.rng, d.labels)
}

func TestDeclare(t *testing.T) {
	cases := map[string]struct {
		success    []declaration
		failed     map[string]declaration
		exhaustive bool
		remaining  []intrange.Interval[uint8]
	}{
		"Normal": {
			success: []declaration{
				{name: "A", value: value(0)},
				{name: "B", rng: intrange.HalfOpen[uint8](10, 16)},
				{name: "C", value: value(2)},
			},
			remaining: []intrange.Interval[uint8]{{Lo: 1, Hi: 1}, {Lo: 3, Hi: 9}, {Lo: 16, Hi: 255}},
		},
		"Overlap": {
			success: []declaration{
				{name: "A", rng: intrange.Closed[uint8](1, 10)},
			},
			failed: map[string]declaration{
				"straddle": {name: "B", rng: intrange.Closed[uint8](5, 15)},
				"inside":   {name: "C", value: value(7)},
				"empty":    {name: "D", rng: intrange.HalfOpen[uint8](20, 20)},
				"name":     {name: "A", value: value(100)},
			},
			remaining: []intrange.Interval[uint8]{{Lo: 0, Hi: 0}, {Lo: 11, Hi: 255}},
		},
		"Exhaustive": {
			success: []declaration{
				{name: "Low", rng: intrange.Closed[uint8](1, 10)},
				{name: "Mid", rng: intrange.HalfOpen[uint8](20, 30)},
				{name: "Zero", value: value(0)},
				{name: "High", rng: intrange.From[uint8](30)},
				{name: "Gap", rng: intrange.HalfOpen[uint8](11, 20)},
			},
			exhaustive: true,
			remaining:  []intrange.Interval[uint8]{},
		},
		"MaxValue": {
			success: []declaration{
				{name: "Hello", value: value(255)},
			},
			remaining: []intrange.Interval[uint8]{{Lo: 0, Hi: 254}},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			tbl := NewTable[uint8]()
			for _, d := range tc.success {
				assert.NoError(t, declare(tbl, d))
			}
			for _, d := range tc.failed {
				assert.Error(t, declare(tbl, d))
			}
			assert.Equal(t, len(tc.success), tbl.Count())
			assert.Equal(t, tc.exhaustive, tbl.IsExhaustive())
			if diff := cmp.Diff(tc.remaining, tbl.Remaining()); diff != "" {
				t.Errorf("%s: remaining -want, +got:\n%s", name, diff)
			}
		})
	}
}

func TestDeclareErrors(t *testing.T) {
	tbl := NewTable[int16]()
	assert.NoError(t, tbl.DeclareRange("Neg", intrange.UpTo[int16](0), nil))

	err := tbl.DeclareValue("Zero", -1, nil)
	assert.True(t, errors.Is(err, ErrOverlap))
	assert.True(t, errors.Is(err, intrange.ErrNoOverlap))

	err = tbl.DeclareRange("Neg", intrange.From[int16](0), nil)
	assert.True(t, errors.Is(err, ErrDuplicateName))

	err = tbl.DeclareRange("Empty", intrange.NewRange(intrange.Excluded[int16](32767), intrange.Unbounded[int16]()), nil)
	assert.True(t, errors.Is(err, intrange.ErrEmptyRange))

	assert.Equal(t, []intrange.Interval[int16]{{Lo: 0, Hi: 32767}}, tbl.Remaining())
}

func TestLookup(t *testing.T) {
	tbl := NewTable[uint8]()
	assert.NoError(t, tbl.DeclareValue("A", 0, nil))
	assert.NoError(t, tbl.DeclareRange("B", intrange.HalfOpen[uint8](10, 16), nil))
	assert.NoError(t, tbl.DeclareValue("C", 2, nil))

	e, err := tbl.Lookup(0)
	assert.NoError(t, err)
	assert.Equal(t, "A", e.Name())
	assert.True(t, e.IsUnit())

	e, err = tbl.Lookup(15)
	assert.NoError(t, err)
	assert.Equal(t, "B", e.Name())
	assert.False(t, e.IsUnit())

	_, err = tbl.Lookup(16)
	assert.True(t, errors.Is(err, ErrNoVariant))

	assert.NoError(t, tbl.SetDefault("C"))
	e, err = tbl.Lookup(16)
	assert.NoError(t, err)
	assert.Equal(t, "C", e.Name())

	err = tbl.SetDefault("A")
	assert.True(t, errors.Is(err, ErrMultipleDefaults))
	assert.NoError(t, tbl.SetDefault("C"))

	err = tbl.SetDefault("X")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestValue(t *testing.T) {
	tbl := NewTable[uint8]()
	assert.NoError(t, tbl.DeclareValue("A", 0, nil))
	assert.NoError(t, tbl.DeclareRange("B", intrange.HalfOpen[uint8](10, 16), nil))

	v, err := tbl.Value("A", 42)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0), v)

	v, err = tbl.Value("B", 11)
	assert.NoError(t, err)
	assert.Equal(t, uint8(11), v)

	_, err = tbl.Value("B", 16)
	assert.Error(t, err)

	_, err = tbl.Value("Z", 1)
	assert.True(t, errors.Is(err, ErrNotFound))

	assert.True(t, tbl.IsValid("B", 10))
	assert.False(t, tbl.IsValid("B", 16))
	assert.True(t, tbl.IsValid("A", 0))
	assert.False(t, tbl.IsValid("Z", 0))

	assert.Equal(t, []intrange.Interval[uint8]{{Lo: 0, Hi: 0}, {Lo: 10, Hi: 15}}, tbl.Ranges())
}

func TestGetByLabel(t *testing.T) {
	tbl := NewTable[uint16]()
	assert.NoError(t, tbl.DeclareRange("Reserved", intrange.Closed[uint16](0, 1), labels.Set{"kind": "reserved"}))
	assert.NoError(t, tbl.DeclareRange("Vlan", intrange.Closed[uint16](2, 4094), labels.Set{"kind": "vlan", "tagged": "true"}))
	assert.NoError(t, tbl.DeclareRange("Max", intrange.From[uint16](4095), labels.Set{"kind": "reserved"}))

	req, err := labels.NewRequirement("kind", selection.Equals, []string{"reserved"})
	assert.NoError(t, err)
	entries := tbl.GetByLabel(labels.NewSelector().Add(*req))
	assert.Equal(t, 2, len(entries))
	assert.Equal(t, "Reserved", entries[0].Name())
	assert.Equal(t, "Max", entries[1].Name())

	entries = tbl.GetByLabel(labels.SelectorFromSet(labels.Set{"tagged": "true"}))
	assert.Equal(t, 1, len(entries))
	assert.Equal(t, "Vlan", entries[0].Name())
	assert.Equal(t, "Vlan(2-4094) labels: kind=vlan,tagged=true", entries[0].String())

	e, err := tbl.Get("Max")
	assert.NoError(t, err)
	assert.Equal(t, intrange.Interval[uint16]{Lo: 4095, Hi: 65535}, e.Interval())
	assert.Equal(t, 3, len(tbl.GetAll()))
}
