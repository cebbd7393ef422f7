package ippool

import (
	"fmt"
	"log/slog"
	"net/netip"
	"sync"

	"github.com/hansthienpondt/nipam/pkg/table"
	"github.com/henderiw/intrange/pkg/intrange"
	"go4.org/netipx"
	"k8s.io/apimachinery/pkg/labels"
)

// Pool tracks which addresses of an IPv4 range are still unclaimed.
// Claims are permanent; a pool only shrinks.
type Pool interface {
	Claim(prefix netip.Prefix, l map[string]string) error
	ClaimRange(r netipx.IPRange, l map[string]string) error

	IsFree(addr netip.Addr) bool
	IsExhausted() bool
	Free() []netipx.IPRange

	Count() int
	GetAll() table.Routes
	GetByLabel(selector labels.Selector) table.Routes
}

func New(r netipx.IPRange, opts ...Option) (Pool, error) {
	if !r.IsValid() || !r.From().Is4() {
		return nil, fmt.Errorf("invalid ipv4 range %s", r.String())
	}
	free, err := intrange.NewPartition(intrange.Closed(addrToUint32(r.From()), addrToUint32(r.To())))
	if err != nil {
		return nil, err
	}
	o := &options{logger: slog.Default()}
	for _, opt := range opts {
		opt(o)
	}
	return &pool{
		m:       new(sync.RWMutex),
		ipRange: r,
		free:    free,
		routes:  table.Routes{},
		logger:  o.logger,
	}, nil
}

type pool struct {
	m       *sync.RWMutex
	ipRange netipx.IPRange
	free    *intrange.Partition[uint32]
	routes  table.Routes
	logger  *slog.Logger
}

func (r *pool) Claim(prefix netip.Prefix, l map[string]string) error {
	if !prefix.IsValid() {
		return fmt.Errorf("prefix %s is invalid", prefix.String())
	}
	return r.ClaimRange(netipx.RangeOfPrefix(prefix.Masked()), l)
}

// ClaimRange claims all addresses of ipr. The claim fails as a whole when
// any address of ipr is outside the pool or already claimed.
func (r *pool) ClaimRange(ipr netipx.IPRange, l map[string]string) error {
	if err := r.validateRange(ipr); err != nil {
		return err
	}
	rng := intrange.Closed(addrToUint32(ipr.From()), addrToUint32(ipr.To()))

	r.m.Lock()
	defer r.m.Unlock()

	if !r.free.CoversRange(rng) {
		return fmt.Errorf("claim failed range %s already claimed", ipr.String())
	}
	if err := r.free.Subtract(rng); err != nil {
		return fmt.Errorf("claim failed range %s: %w", ipr.String(), err)
	}
	for _, p := range ipr.Prefixes() {
		r.routes = append(r.routes, table.NewRoute(p, l, nil))
	}
	r.logger.Debug("claimed range", "range", ipr.String(), "free", r.free.String())
	return nil
}

func (r *pool) IsFree(addr netip.Addr) bool {
	if !addr.Is4() || !r.ipRange.Contains(addr) {
		return false
	}
	r.m.RLock()
	defer r.m.RUnlock()

	return r.free.Covers(addrToUint32(addr))
}

func (r *pool) IsExhausted() bool {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.free.IsEmpty()
}

func (r *pool) Free() []netipx.IPRange {
	r.m.RLock()
	defer r.m.RUnlock()

	ranges := []netipx.IPRange{}
	for _, i := range r.free.Intervals() {
		ranges = append(ranges, netipx.IPRangeFrom(uint32ToAddr(i.Lo), uint32ToAddr(i.Hi)))
	}
	return ranges
}

func (r *pool) Count() int {
	r.m.RLock()
	defer r.m.RUnlock()

	return len(r.routes)
}

func (r *pool) GetAll() table.Routes {
	r.m.RLock()
	defer r.m.RUnlock()

	return append(table.Routes{}, r.routes...)
}

func (r *pool) GetByLabel(selector labels.Selector) table.Routes {
	r.m.RLock()
	defer r.m.RUnlock()

	routes := table.Routes{}
	for _, route := range r.routes {
		if selector.Matches(route.Labels()) {
			routes = append(routes, route)
		}
	}
	return routes
}

func (r *pool) validateRange(ipr netipx.IPRange) error {
	if !ipr.IsValid() || !ipr.From().Is4() {
		return fmt.Errorf("range %s is invalid", ipr.String())
	}
	if !r.ipRange.Contains(ipr.From()) || !r.ipRange.Contains(ipr.To()) {
		return fmt.Errorf("range %s, does not fit in the range from %s to %s", ipr.String(), r.ipRange.From().String(), r.ipRange.To().String())
	}
	return nil
}
