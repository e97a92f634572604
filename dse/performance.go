package dse

import "gonum.org/v1/gonum/floats"

// TimePerAccess reduces a per-tier access-fraction vector to the average
// time per access in seconds. Under Throughput each tier costs 1/IOPS per
// access; under Latency it costs its access latency.
// It panics if obj is not valid or fractions does not have one entry per tier.
func (e *Explorer) TimePerAccess(fractions []float64, obj Objective) float64 {
	return floats.Dot(fractions, e.weights[obj])
}
