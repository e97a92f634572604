// Package catalog describes the storage tiers available to a design-space
// search. A Catalog is an ordered, immutable list of tier descriptors: index 0
// is the fastest, smallest and most expensive level, and each following index
// is slower, larger and cheaper.
//
// This package has no dependencies on dse/; it stores pure data types.
package catalog

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/storage-dse/tierdse/dse/units"
)

var (
	// ErrEmpty is returned when a catalog has no tiers.
	ErrEmpty = errors.New("catalog has no tiers")
	// ErrBadTier is returned when a tier descriptor has an out-of-range field.
	ErrBadTier = errors.New("invalid tier descriptor")
)

// TierDescriptor describes one level of the storage hierarchy.
type TierDescriptor struct {
	Name       string         `yaml:"name"`
	Capacity   units.ByteSize `yaml:"capacity"`    // bytes per device
	Cost       float64        `yaml:"cost"`        // currency units per device
	IOPS       float64        `yaml:"iops"`        // operations per second
	Latency    time.Duration  `yaml:"latency"`     // access latency
	MaxDevices int            `yaml:"max_devices"` // device counts range over [0, MaxDevices)
}

// Catalog is an ordered, read-only sequence of tiers. The zero value is an
// empty catalog; use New to build a validated one.
type Catalog struct {
	tiers []TierDescriptor
}

// New validates tiers and returns a Catalog holding a private copy of them.
func New(tiers ...TierDescriptor) (*Catalog, error) {
	if len(tiers) == 0 {
		return nil, ErrEmpty
	}
	seen := make(map[string]int, len(tiers))
	for i, t := range tiers {
		if err := validateTier(t, i); err != nil {
			return nil, err
		}
		if prev, dup := seen[t.Name]; dup {
			return nil, fmt.Errorf("tier[%d]: name %q already used by tier[%d]: %w", i, t.Name, prev, ErrBadTier)
		}
		seen[t.Name] = i
		if i > 0 && t.Capacity < tiers[i-1].Capacity {
			logrus.Warnf("tier %q is slower than %q but has a smaller per-device capacity (%v < %v)",
				t.Name, tiers[i-1].Name, t.Capacity, tiers[i-1].Capacity)
		}
	}
	cp := make([]TierDescriptor, len(tiers))
	copy(cp, tiers)
	return &Catalog{tiers: cp}, nil
}

// MustNew is New for static tables; it panics on an invalid catalog.
func MustNew(tiers ...TierDescriptor) *Catalog {
	c, err := New(tiers...)
	if err != nil {
		panic(err)
	}
	return c
}

func validateTier(t TierDescriptor, idx int) error {
	prefix := fmt.Sprintf("tier[%d]", idx)
	if t.Name == "" {
		return fmt.Errorf("%s: name must not be empty: %w", prefix, ErrBadTier)
	}
	prefix = fmt.Sprintf("%s %q", prefix, t.Name)
	if t.Capacity <= 0 {
		return fmt.Errorf("%s: capacity must be positive, got %d: %w", prefix, t.Capacity, ErrBadTier)
	}
	if math.IsNaN(t.Cost) || math.IsInf(t.Cost, 0) || t.Cost < 0 {
		return fmt.Errorf("%s: cost must be a finite non-negative number, got %f: %w", prefix, t.Cost, ErrBadTier)
	}
	if math.IsNaN(t.IOPS) || math.IsInf(t.IOPS, 0) || t.IOPS <= 0 {
		return fmt.Errorf("%s: iops must be a finite positive number, got %f: %w", prefix, t.IOPS, ErrBadTier)
	}
	if t.Latency <= 0 {
		return fmt.Errorf("%s: latency must be positive, got %v: %w", prefix, t.Latency, ErrBadTier)
	}
	if t.MaxDevices < 1 {
		return fmt.Errorf("%s: max_devices must be at least 1, got %d: %w", prefix, t.MaxDevices, ErrBadTier)
	}
	if n := int64(t.MaxDevices - 1); n > 0 && t.Capacity.Bytes() > math.MaxInt64/n {
		return fmt.Errorf("%s: %d devices of %v overflow the byte range: %w", prefix, n, t.Capacity, ErrBadTier)
	}
	return nil
}

// Len returns the number of tiers.
func (c *Catalog) Len() int { return len(c.tiers) }

// Tier returns a copy of the descriptor at index i.
func (c *Catalog) Tier(i int) TierDescriptor { return c.tiers[i] }

// Tiers returns a copy of all descriptors in hierarchy order.
func (c *Catalog) Tiers() []TierDescriptor {
	cp := make([]TierDescriptor, len(c.tiers))
	copy(cp, c.tiers)
	return cp
}

// Names returns the tier names in hierarchy order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.tiers))
	for i, t := range c.tiers {
		names[i] = t.Name
	}
	return names
}

// DeviceLimits returns the exclusive upper bound on device count per tier.
func (c *Catalog) DeviceLimits() []int {
	limits := make([]int, len(c.tiers))
	for i, t := range c.tiers {
		limits[i] = t.MaxDevices
	}
	return limits
}

// SearchSpace returns the number of configurations in the full cross product
// of device counts, saturating at math.MaxInt64.
func (c *Catalog) SearchSpace() int64 {
	var n int64 = 1
	for _, t := range c.tiers {
		m := int64(t.MaxDevices)
		if n > math.MaxInt64/m {
			return math.MaxInt64
		}
		n *= m
	}
	return n
}

// Reference returns the four-tier RAM/NVM/SSD/HDD catalog used as the
// default study.
func Reference() *Catalog {
	return MustNew(
		TierDescriptor{Name: "RAM", Capacity: 64 * units.GiB, Cost: 500, IOPS: 10e6, Latency: 100 * time.Nanosecond, MaxDevices: 16},
		TierDescriptor{Name: "NVM", Capacity: 256 * units.GiB, Cost: 500, IOPS: 5e6, Latency: 400 * time.Nanosecond, MaxDevices: 8},
		TierDescriptor{Name: "SSD", Capacity: 1 * units.TiB, Cost: 500, IOPS: 500e3, Latency: 100 * time.Microsecond, MaxDevices: 16},
		TierDescriptor{Name: "HDD", Capacity: 4 * units.TiB, Cost: 200, IOPS: 100, Latency: 10 * time.Millisecond, MaxDevices: 16},
	)
}
