package dse

import (
	"errors"
	"fmt"

	"github.com/storage-dse/tierdse/dse/workload"
)

var (
	// ErrConfigLength is returned when a configuration does not have one entry per tier.
	ErrConfigLength = errors.New("configuration length does not match catalog")
	// ErrTierOverflow is returned when an access group does not fit in the slowest tier.
	ErrTierOverflow = errors.New("access group spills past the last tier")
)

// AccessFractions routes each access group of w into the hierarchy c and
// returns the share of all accesses served by each tier.
//
// Tiers are filled front to back under an inclusive-cache model. A group
// larger than the free space of the current tier sends the proportional
// share (free/size) of its accesses there, then moves on to the next tier
// with the group size unchanged, because the whole object is also resident
// further down. Once a group fits, the rest of its accesses land on the
// current tier and its size is charged against that tier.
//
// Configurations accepted by IsValid never overflow; anything else may
// return ErrTierOverflow.
func (e *Explorer) AccessFractions(w workload.Workload, c Configuration) ([]float64, error) {
	if len(c) != len(e.capacity) {
		return nil, fmt.Errorf("got %d counts for %d tiers: %w", len(c), len(e.capacity), ErrConfigLength)
	}
	fractions := make([]float64, len(c))
	tier := 0
	free := e.tierCapacity(c, tier)
	for i, g := range w {
		remaining := g.Fraction
		size := g.Size.Bytes()
		for size > free {
			f := (float64(free) / float64(size)) * remaining
			fractions[tier] += f
			remaining -= f
			tier++
			if tier == len(c) {
				return nil, fmt.Errorf("group[%d] of %v under %v: %w", i, g.Size, c, ErrTierOverflow)
			}
			free = e.tierCapacity(c, tier)
		}
		fractions[tier] += remaining
		free -= size
	}
	return fractions, nil
}
