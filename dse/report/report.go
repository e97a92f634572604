// Package report renders search outcomes for people (text) and for tools (JSON).
// It carries no decision logic.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/storage-dse/tierdse/dse"
	"github.com/storage-dse/tierdse/dse/catalog"
	"github.com/storage-dse/tierdse/dse/trace"
	"github.com/storage-dse/tierdse/dse/units"
)

// TierView is the per-tier part of a rendered outcome.
type TierView struct {
	Name           string  `json:"name"`
	Devices        int     `json:"devices"`
	CapacityBytes  int64   `json:"capacity_bytes"`
	Capacity       string  `json:"capacity"`
	Cost           float64 `json:"cost"`
	AccessFraction float64 `json:"access_fraction"`
}

// OutcomeView is a self-describing rendering of one outcome.
type OutcomeView struct {
	Budget        float64         `json:"budget"`
	Objective     dse.Objective   `json:"objective"`
	Feasible      bool            `json:"feasible"`
	OpsPerSecond  float64         `json:"ops_per_second,omitempty"`
	TimePerAccess float64         `json:"time_per_access_s,omitempty"`
	TotalCost     float64         `json:"total_cost,omitempty"`
	Tiers         []TierView      `json:"tiers,omitempty"`
	Stats         dse.SearchStats `json:"stats"`
}

// NewOutcomeView joins an outcome with the catalog it was searched against.
func NewOutcomeView(cat *catalog.Catalog, out *dse.Outcome) OutcomeView {
	v := OutcomeView{
		Budget:    out.CostLimit,
		Objective: out.Objective,
		Feasible:  out.Feasible,
		Stats:     out.Stats,
	}
	if !out.Feasible {
		return v
	}
	best := out.Best
	v.OpsPerSecond = best.OpsPerSecond()
	v.TimePerAccess = best.TimePerAccess
	v.TotalCost = best.Cost
	v.Tiers = make([]TierView, cat.Len())
	for i, t := range cat.Tiers() {
		n := best.Config[i]
		capacity := units.ByteSize(int64(n) * t.Capacity.Bytes())
		v.Tiers[i] = TierView{
			Name:           t.Name,
			Devices:        n,
			CapacityBytes:  capacity.Bytes(),
			Capacity:       capacity.String(),
			Cost:           float64(n) * t.Cost,
			AccessFraction: best.AccessFractions[i],
		}
	}
	return v
}

// printer remembers the first write error so callers can format freely.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// WriteText prints one outcome:
//
//	---
//	cost budget $2000
//	ops/s: 4409.34 (throughput)
//	RAM 64 GiB ($500): 0.461261
//	...
//	totalCost: $1600
func WriteText(w io.Writer, cat *catalog.Catalog, out *dse.Outcome) error {
	p := &printer{w: w}
	v := NewOutcomeView(cat, out)
	p.printf("---\ncost budget $%g\n", v.Budget)
	if !v.Feasible {
		p.printf("no feasible configuration under budget $%g (%v)\n\n", v.Budget, v.Objective)
		return p.err
	}
	p.printf("ops/s: %.6g (%v)\n", v.OpsPerSecond, v.Objective)
	if v.Objective == dse.Latency {
		p.printf("avg latency: %.6g s\n", v.TimePerAccess)
	}
	for _, t := range v.Tiers {
		p.printf("%s %s ($%g): %.6g\n", t.Name, t.Capacity, t.Cost, t.AccessFraction)
	}
	p.printf("totalCost: $%g\n\n", v.TotalCost)
	return p.err
}

// WriteJSON prints the outcomes as an indented JSON array.
func WriteJSON(w io.Writer, cat *catalog.Catalog, outs []*dse.Outcome) error {
	views := make([]OutcomeView, len(outs))
	for i, out := range outs {
		views[i] = NewOutcomeView(cat, out)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(views); err != nil {
		return fmt.Errorf("encoding outcomes: %w", err)
	}
	return nil
}

// WriteTraceSummary prints the aggregate counts of a search trace.
func WriteTraceSummary(w io.Writer, s *trace.TraceSummary) error {
	p := &printer{w: w}
	p.printf("=== Trace Summary ===\n")
	p.printf("Candidates     : %d\n", s.TotalCandidates)
	p.printf("Invalid        : %d\n", s.InvalidCount)
	p.printf("Over budget    : %d\n", s.OverBudgetCount)
	p.printf("Scored         : %d\n", s.ScoredCount)
	p.printf("Improvements   : %d\n", s.Improvements)
	if s.ScoredCount > 0 {
		p.printf("Scored cost    : $%g - $%g\n", s.MinScoredCost, s.MaxScoredCost)
	}
	return p.err
}
