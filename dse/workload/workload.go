// Package workload describes the access-size distribution of a target
// workload: an ordered list of access groups, each carrying a share of all
// accesses and the size of the data those accesses touch.
package workload

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/storage-dse/tierdse/dse/units"
)

// FractionTolerance is the allowed deviation of the fraction sum from 1.
const FractionTolerance = 1e-6

var (
	// ErrEmpty is returned for a workload with no access groups.
	ErrEmpty = errors.New("workload has no access groups")
	// ErrBadFraction is returned for a group fraction outside [0, 1] or not finite.
	ErrBadFraction = errors.New("access fraction out of range")
	// ErrBadSize is returned for a group size that is not positive.
	ErrBadSize = errors.New("access size must be positive")
	// ErrFractionSum is returned when the group fractions do not sum to 1.
	ErrFractionSum = errors.New("access fractions do not sum to 1")
)

// AccessGroup is a share of all accesses and the size of the data they touch.
type AccessGroup struct {
	Fraction float64        `yaml:"fraction"` // share of total accesses, 0..1
	Size     units.ByteSize `yaml:"size"`     // bytes
}

// Workload is an ordered sequence of access groups. Order matters: groups
// are placed into the hierarchy front to back, so hotter groups come first.
type Workload []AccessGroup

// TotalSize returns the sum of all group sizes.
func (w Workload) TotalSize() int64 {
	var total int64
	for _, g := range w {
		total += int64(g.Size)
	}
	return total
}

// Fractions returns the group fractions in order.
func (w Workload) Fractions() []float64 {
	fr := make([]float64, len(w))
	for i, g := range w {
		fr[i] = g.Fraction
	}
	return fr
}

// FractionSum returns the sum of all group fractions.
func (w Workload) FractionSum() float64 {
	return floats.Sum(w.Fractions())
}

// Validate checks that the workload is non-empty, that every group has a
// finite fraction in [0, 1] and a positive size, and that the fractions sum
// to 1 within FractionTolerance.
func (w Workload) Validate() error {
	if err := w.validateGroups(); err != nil {
		return err
	}
	if sum := w.FractionSum(); math.Abs(sum-1) > FractionTolerance {
		return fmt.Errorf("fractions sum to %g: %w", sum, ErrFractionSum)
	}
	return nil
}

func (w Workload) validateGroups() error {
	if len(w) == 0 {
		return ErrEmpty
	}
	var total int64
	for i, g := range w {
		if math.IsNaN(g.Fraction) || g.Fraction < 0 || g.Fraction > 1 {
			return fmt.Errorf("group[%d]: fraction %f: %w", i, g.Fraction, ErrBadFraction)
		}
		if g.Size <= 0 {
			return fmt.Errorf("group[%d]: size %d: %w", i, g.Size, ErrBadSize)
		}
		if int64(g.Size) > math.MaxInt64-total {
			return fmt.Errorf("group[%d]: total size overflows the byte range: %w", i, ErrBadSize)
		}
		total += int64(g.Size)
	}
	return nil
}

// Normalize returns a copy whose fractions are rescaled to sum to exactly 1.
// Groups must already be individually valid and the sum must be positive.
func (w Workload) Normalize() (Workload, error) {
	if err := w.validateGroups(); err != nil {
		return nil, err
	}
	sum := w.FractionSum()
	if sum <= 0 {
		return nil, fmt.Errorf("fractions sum to %g: %w", sum, ErrFractionSum)
	}
	out := make(Workload, len(w))
	for i, g := range w {
		out[i] = AccessGroup{Fraction: g.Fraction / sum, Size: g.Size}
	}
	return out, nil
}

// Clone returns an independent copy.
func (w Workload) Clone() Workload {
	out := make(Workload, len(w))
	copy(out, w)
	return out
}

// Reference returns the three-group workload of the default study: a hot
// 111 GiB set taking 80% of accesses, a warm 1 TiB set, and a 10 TiB cold
// set touched by one access in a thousand.
func Reference() Workload {
	return Workload{
		{Fraction: 0.8, Size: 111 * units.GiB},
		{Fraction: 0.2 - 0.001, Size: 1 * units.TiB},
		{Fraction: 0.001, Size: 10 * units.TiB},
	}
}
