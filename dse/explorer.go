package dse

import (
	"github.com/storage-dse/tierdse/dse/catalog"
	"github.com/storage-dse/tierdse/dse/trace"
)

// Explorer scores and searches configurations against one tier catalog.
// All fields are read-only after construction, so an Explorer is safe for
// concurrent use.
type Explorer struct {
	catalog     *catalog.Catalog
	capacity    []int64   // bytes per device
	cost        []float64 // currency per device
	weights     map[Objective][]float64
	parallelism int
	traceConfig trace.TraceConfig
}

// Option configures an Explorer.
type Option func(*Explorer)

// WithParallelism sets how many search branches (and sweep budgets) run
// concurrently. Values below 1 mean sequential.
func WithParallelism(n int) Option {
	return func(e *Explorer) {
		if n < 1 {
			n = 1
		}
		e.parallelism = n
	}
}

// WithTrace enables per-candidate decision tracing.
func WithTrace(cfg trace.TraceConfig) Option {
	return func(e *Explorer) {
		e.traceConfig = cfg
	}
}

// NewExplorer builds an Explorer over cat.
func NewExplorer(cat *catalog.Catalog, opts ...Option) *Explorer {
	n := cat.Len()
	e := &Explorer{
		catalog:     cat,
		capacity:    make([]int64, n),
		cost:        make([]float64, n),
		parallelism: 1,
		weights: map[Objective][]float64{
			Throughput: make([]float64, n),
			Latency:    make([]float64, n),
		},
	}
	for i, t := range cat.Tiers() {
		e.capacity[i] = t.Capacity.Bytes()
		e.cost[i] = t.Cost
		e.weights[Throughput][i] = 1 / t.IOPS
		e.weights[Latency][i] = t.Latency.Seconds()
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Catalog returns the catalog the Explorer searches.
func (e *Explorer) Catalog() *catalog.Catalog { return e.catalog }

// tierCapacity returns the total bytes provided by tier t under c.
func (e *Explorer) tierCapacity(c Configuration, t int) int64 {
	return int64(c[t]) * e.capacity[t]
}
