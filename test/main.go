package main

import (
	"fmt"
	"log/slog"
	"net/netip"
	"os"

	"github.com/henderiw/intrange/pkg/enumtable"
	"github.com/henderiw/intrange/pkg/intrange"
	"github.com/henderiw/intrange/pkg/ippool"
	"go4.org/netipx"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/apimachinery/pkg/selection"
)

var values = []struct {
	name   string
	rng    intrange.Range[uint16]
	labels map[string]string
}{
	{name: "Untagged", rng: intrange.Single[uint16](0), labels: map[string]string{"a": "b"}},
	{name: "Default", rng: intrange.Single[uint16](1), labels: map[string]string{"a": "b"}},
	{name: "Vlan", rng: intrange.HalfOpen[uint16](2, 4095)},
	{name: "Reserved", rng: intrange.Closed[uint16](4095, 4095)},
	{name: "Overlapping", rng: intrange.Closed[uint16](4000, 4100)},
	{name: "Beyond", rng: intrange.From[uint16](4096)},
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	p, err := intrange.NewPartition(intrange.HalfOpen[uint8](0, 100))
	if err != nil {
		panic(err)
	}
	for _, r := range []intrange.Range[uint8]{
		intrange.HalfOpen[uint8](3, 5),
		intrange.HalfOpen[uint8](10, 20),
		intrange.HalfOpen[uint8](0, 2),
		intrange.HalfOpen[uint8](15, 18),
	} {
		if err := p.Subtract(r); err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println("subtract", r, "remaining", p)
	}

	vt := enumtable.NewTable[uint16](enumtable.WithLogger(logger))
	for _, v := range values {
		if err := vt.DeclareRange(v.name, v.rng, v.labels); err != nil {
			fmt.Println(err)
		}
	}
	fmt.Println("exhaustive", vt.IsExhaustive(), "remaining", vt.Remaining())

	ls, err := GetLabelSelector(map[string]string{"a": "b"})
	if err != nil {
		panic(err)
	}
	for _, e := range vt.GetByLabel(ls) {
		fmt.Println("entries by label", e.String())
	}
	handleId(vt, 100)
	handleId(vt, 4095)

	pool, err := ippool.New(netipx.MustParseIPRange("10.0.0.0-10.0.0.255"), ippool.WithLogger(logger))
	if err != nil {
		panic(err)
	}
	if err := pool.Claim(netip.MustParsePrefix("10.0.0.64/26"), map[string]string{"a": "b"}); err != nil {
		panic(err)
	}
	fmt.Println("free", pool.Free())
}

func handleId(vt enumtable.Table[uint16], id uint16) {
	e, err := vt.Lookup(id)
	if err != nil {
		panic(err)
	}
	v, err := vt.Value(e.Name(), id)
	if err != nil {
		panic(err)
	}
	fmt.Println("lookup", id, "variant", e.Name(), "value", v)
}

func GetLabelSelector(l map[string]string) (labels.Selector, error) {
	fullselector := labels.NewSelector()
	for k, v := range l {
		req, err := labels.NewRequirement(k, selection.Equals, []string{v})
		if err != nil {
			return nil, err
		}
		fullselector = fullselector.Add(*req)
	}
	return fullselector, nil
}
