package dse

import (
	"fmt"
	"slices"
	"strings"
)

// Configuration is a device count per tier, in catalog order.
type Configuration []int

// Clone returns an independent copy.
func (c Configuration) Clone() Configuration {
	out := make(Configuration, len(c))
	copy(out, c)
	return out
}

// ActiveTiers returns the indices of tiers with at least one device, in
// catalog order.
func (c Configuration) ActiveTiers() []int {
	active := make([]int, 0, len(c))
	for t, n := range c {
		if n > 0 {
			active = append(active, t)
		}
	}
	return active
}

// Equal reports whether both configurations assign the same counts.
func (c Configuration) Equal(o Configuration) bool {
	return slices.Equal(c, o)
}

func (c Configuration) String() string {
	parts := make([]string, len(c))
	for i, n := range c {
		parts[i] = fmt.Sprint(n)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Enumerator walks the cross product of per-tier device counts like an
// odometer: the last tier changes fastest and tier 0 slowest. Each call to
// Next yields a fresh Configuration the caller may keep.
type Enumerator struct {
	lo, hi  []int // inclusive lower, exclusive upper bound per tier
	current Configuration
	done    bool
}

// NewEnumerator enumerates every configuration with 0 <= c[t] < limits[t].
func NewEnumerator(limits []int) *Enumerator {
	return newRangeEnumerator(make([]int, len(limits)), limits)
}

// newRangeEnumerator enumerates lo[t] <= c[t] < hi[t].
func newRangeEnumerator(lo, hi []int) *Enumerator {
	it := &Enumerator{lo: lo, hi: hi}
	if len(lo) == 0 {
		it.done = true
		return it
	}
	for t := range lo {
		if lo[t] >= hi[t] {
			it.done = true
			return it
		}
	}
	return it
}

// Next returns the next configuration, or false once the space is exhausted.
func (it *Enumerator) Next() (Configuration, bool) {
	if it.done {
		return nil, false
	}
	if it.current == nil {
		it.current = Configuration(append([]int(nil), it.lo...))
		return it.current.Clone(), true
	}
	for t := len(it.current) - 1; t >= 0; t-- {
		it.current[t]++
		if it.current[t] < it.hi[t] {
			return it.current.Clone(), true
		}
		it.current[t] = it.lo[t]
	}
	it.done = true
	return nil, false
}
