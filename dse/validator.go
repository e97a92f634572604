package dse

import "github.com/storage-dse/tierdse/dse/workload"

// IsValid reports whether c is a feasible hierarchy for w:
//   - tier 0 has at least one device;
//   - total capacity never shrinks from one active tier to the next slower
//     active tier, so every level can hold what the level above holds;
//   - the slowest active tier can hold the whole workload.
//
// A configuration of the wrong length or with a negative count is infeasible.
func (e *Explorer) IsValid(c Configuration, w workload.Workload) bool {
	if len(c) != len(e.capacity) {
		return false
	}
	for _, n := range c {
		if n < 0 {
			return false
		}
	}
	if c[0] == 0 {
		return false
	}
	active := c.ActiveTiers()
	for i := 1; i < len(active); i++ {
		if e.tierCapacity(c, active[i-1]) > e.tierCapacity(c, active[i]) {
			return false
		}
	}
	return e.tierCapacity(c, active[len(active)-1]) >= w.TotalSize()
}
