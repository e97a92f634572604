package dse

// Cost returns the total price of c: the sum over tiers of device count
// times per-device cost. c must have one entry per catalog tier.
func (e *Explorer) Cost(c Configuration) float64 {
	cost := 0.0
	for t, n := range c {
		cost += float64(n) * e.cost[t]
	}
	return cost
}
