package dse

import (
	"math"
	"time"

	"github.com/storage-dse/tierdse/dse/trace"
)

// ScoredResult is a configuration together with its cost and performance.
type ScoredResult struct {
	Config          Configuration `json:"config"`
	Cost            float64       `json:"cost"`
	AccessFractions []float64     `json:"access_fractions"`
	TimePerAccess   float64       `json:"time_per_access_s"`
}

// Better reports whether r should replace o as the best result: strictly
// faster, or equally fast and strictly cheaper.
func (r ScoredResult) Better(o ScoredResult) bool {
	return r.TimePerAccess < o.TimePerAccess ||
		(r.TimePerAccess == o.TimePerAccess && r.Cost < o.Cost)
}

// OpsPerSecond is the effective operation rate, 1/TimePerAccess.
func (r ScoredResult) OpsPerSecond() float64 {
	return 1 / r.TimePerAccess
}

// SearchStats counts what happened to the enumerated configurations.
type SearchStats struct {
	Enumerated int64         `json:"enumerated"`
	Invalid    int64         `json:"invalid"`
	OverBudget int64         `json:"over_budget"`
	Scored     int64         `json:"scored"`
	Elapsed    time.Duration `json:"elapsed_ns"`
}

func (s *SearchStats) add(o SearchStats) {
	s.Enumerated += o.Enumerated
	s.Invalid += o.Invalid
	s.OverBudget += o.OverBudget
	s.Scored += o.Scored
}

// Outcome is the result of one search. Feasible is false, and Best nil, when
// no configuration is both feasible and strictly under the cost limit.
type Outcome struct {
	Feasible  bool               `json:"feasible"`
	Best      *ScoredResult      `json:"best,omitempty"`
	CostLimit float64            `json:"cost_limit"`
	Objective Objective          `json:"objective"`
	Stats     SearchStats        `json:"stats"`
	Trace     *trace.SearchTrace `json:"-"` // nil unless tracing is enabled
	tiers     int
}

// Result returns Best, or for an infeasible outcome the legacy sentinel: an
// all-zero configuration with cost and time set to math.MaxFloat64.
func (o *Outcome) Result() ScoredResult {
	if o.Feasible {
		return *o.Best
	}
	return ScoredResult{
		Config:          make(Configuration, o.tiers),
		Cost:            math.MaxFloat64,
		AccessFractions: make([]float64, o.tiers),
		TimePerAccess:   math.MaxFloat64,
	}
}
