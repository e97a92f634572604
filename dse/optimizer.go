package dse

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/storage-dse/tierdse/dse/trace"
	"github.com/storage-dse/tierdse/dse/workload"
)

// ErrBadBudget is returned for a cost limit that is NaN or not positive.
var ErrBadBudget = errors.New("cost limit must be a positive number")

// cancelCheckInterval is how many candidates a branch evaluates between
// context checks.
const cancelCheckInterval = 4096

// Evaluate runs one configuration through the feasibility check, the cost
// limit and the scoring models. The result is only meaningful when the
// verdict is trace.VerdictScored; Cost is also set for VerdictOverBudget.
// w is assumed to be valid.
func (e *Explorer) Evaluate(w workload.Workload, c Configuration, costLimit float64, obj Objective) (ScoredResult, trace.Verdict, error) {
	if !obj.IsValid() {
		return ScoredResult{}, "", fmt.Errorf("%w %d", ErrUnknownObjective, int(obj))
	}
	if len(c) != len(e.capacity) {
		return ScoredResult{}, "", fmt.Errorf("got %d counts for %d tiers: %w", len(c), len(e.capacity), ErrConfigLength)
	}
	if !e.IsValid(c, w) {
		return ScoredResult{Config: c}, trace.VerdictInvalid, nil
	}
	cost := e.Cost(c)
	if cost >= costLimit {
		return ScoredResult{Config: c, Cost: cost}, trace.VerdictOverBudget, nil
	}
	fractions, err := e.AccessFractions(w, c)
	if err != nil {
		return ScoredResult{}, "", err
	}
	return ScoredResult{
		Config:          c,
		Cost:            cost,
		AccessFractions: fractions,
		TimePerAccess:   e.TimePerAccess(fractions, obj),
	}, trace.VerdictScored, nil
}

// FindBestConfig is FindBest with the objective chosen by a flag.
func (e *Explorer) FindBestConfig(ctx context.Context, w workload.Workload, costLimit float64, optimizeThroughput bool) (*Outcome, error) {
	obj := Latency
	if optimizeThroughput {
		obj = Throughput
	}
	return e.FindBest(ctx, w, costLimit, obj)
}

// FindBest exhaustively searches every configuration with tier t ranging
// over [0, MaxDevices) and returns the feasible one with cost strictly
// below costLimit and the lowest time per access. Ties go to the cheaper
// configuration, then to the one enumerated first.
//
// The search space is split on tier 0's device count. Branches run
// concurrently when the Explorer was built WithParallelism(n > 1); the
// partial bests are reduced in branch order, so the outcome does not depend
// on scheduling.
func (e *Explorer) FindBest(ctx context.Context, w workload.Workload, costLimit float64, obj Objective) (*Outcome, error) {
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("invalid workload: %w", err)
	}
	if math.IsNaN(costLimit) || costLimit <= 0 {
		return nil, fmt.Errorf("%w, got %f", ErrBadBudget, costLimit)
	}
	if !obj.IsValid() {
		return nil, fmt.Errorf("%w %d", ErrUnknownObjective, int(obj))
	}

	startTime := time.Now()
	logrus.Infof("Starting search: %d tiers, %d access groups, budget=$%g, objective=%v, space=%d configurations",
		e.catalog.Len(), len(w), costLimit, obj, e.catalog.SearchSpace())

	branches := e.catalog.Tier(0).MaxDevices
	partials := make([]branchResult, branches)
	if e.parallelism > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(e.parallelism)
		for b := 0; b < branches; b++ {
			b := b
			g.Go(func() error {
				r, err := e.searchBranch(gctx, w, costLimit, obj, b)
				partials[b] = r
				return err
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for b := 0; b < branches; b++ {
			r, err := e.searchBranch(ctx, w, costLimit, obj, b)
			if err != nil {
				return nil, err
			}
			partials[b] = r
		}
	}

	out := e.reduce(partials)
	out.CostLimit = costLimit
	out.Objective = obj
	out.Stats.Elapsed = time.Since(startTime)

	logrus.Infof("Search complete: enumerated=%d invalid=%d over-budget=%d scored=%d in %v",
		out.Stats.Enumerated, out.Stats.Invalid, out.Stats.OverBudget, out.Stats.Scored, out.Stats.Elapsed)
	if !out.Feasible {
		logrus.Warnf("No feasible configuration under budget $%g", costLimit)
	}
	return out, nil
}

// branchResult is the partial outcome of one tier-0 branch.
type branchResult struct {
	best  *ScoredResult
	stats SearchStats
	trace *trace.SearchTrace
}

// searchBranch enumerates every configuration whose tier-0 count is b.
func (e *Explorer) searchBranch(ctx context.Context, w workload.Workload, costLimit float64, obj Objective, b int) (branchResult, error) {
	var res branchResult
	if err := ctx.Err(); err != nil {
		return res, err
	}
	if e.traceConfig.Enabled() {
		res.trace = trace.NewSearchTrace(e.traceConfig)
	}

	lo := make([]int, e.catalog.Len())
	hi := e.catalog.DeviceLimits()
	lo[0], hi[0] = b, b+1

	it := newRangeEnumerator(lo, hi)
	for c, ok := it.Next(); ok; c, ok = it.Next() {
		res.stats.Enumerated++
		if res.stats.Enumerated%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}

		scored, verdict, err := e.Evaluate(w, c, costLimit, obj)
		if err != nil {
			return res, err
		}
		switch verdict {
		case trace.VerdictInvalid:
			res.stats.Invalid++
		case trace.VerdictOverBudget:
			res.stats.OverBudget++
		case trace.VerdictScored:
			res.stats.Scored++
			if res.best == nil || scored.Better(*res.best) {
				res.best = &scored
				logrus.Debugf("branch %d: new best %v cost=$%g time=%g", b, c, scored.Cost, scored.TimePerAccess)
			}
		}
		if res.trace != nil {
			res.trace.RecordCandidate(trace.CandidateRecord{
				Config:        c,
				Verdict:       verdict,
				Cost:          scored.Cost,
				TimePerAccess: scored.TimePerAccess,
			})
		}
	}
	return res, nil
}

// reduce folds branch results in branch order with the same strict
// comparison used inside a branch, and marks NewBest on the merged trace
// against the global running best.
func (e *Explorer) reduce(partials []branchResult) *Outcome {
	out := &Outcome{tiers: e.catalog.Len()}
	for _, p := range partials {
		out.Stats.add(p.stats)
		if p.best != nil && (out.Best == nil || p.best.Better(*out.Best)) {
			out.Best = p.best
		}
	}
	out.Feasible = out.Best != nil

	if !e.traceConfig.Enabled() {
		return out
	}
	out.Trace = trace.NewSearchTrace(e.traceConfig)
	for _, p := range partials {
		out.Trace.Append(p.trace)
	}
	var running *ScoredResult
	for i := range out.Trace.Candidates {
		rec := &out.Trace.Candidates[i]
		if rec.Verdict != trace.VerdictScored {
			continue
		}
		cand := ScoredResult{Cost: rec.Cost, TimePerAccess: rec.TimePerAccess}
		if running == nil || cand.Better(*running) {
			running = &cand
			rec.NewBest = true
		}
	}
	return out
}
