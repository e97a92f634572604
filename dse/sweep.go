package dse

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/storage-dse/tierdse/dse/workload"
)

// Sweep runs FindBest once per budget and returns the outcomes in the order
// of budgets. Budgets are searched concurrently, up to the Explorer's
// parallelism; every search sees the same immutable catalog.
func (e *Explorer) Sweep(ctx context.Context, w workload.Workload, budgets []float64, obj Objective) ([]*Outcome, error) {
	outcomes := make([]*Outcome, len(budgets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.parallelism)
	for i, budget := range budgets {
		i, budget := i, budget
		g.Go(func() error {
			out, err := e.FindBest(gctx, w, budget, obj)
			if err != nil {
				return fmt.Errorf("budget $%g: %w", budget, err)
			}
			outcomes[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}
