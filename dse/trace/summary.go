package trace

import "math"

// TraceSummary aggregates statistics from a SearchTrace.
type TraceSummary struct {
	TotalCandidates int
	InvalidCount    int
	OverBudgetCount int
	ScoredCount     int
	Improvements    int     // number of times the running best was replaced
	MinScoredCost   float64 // cheapest scored candidate; 0 if none scored
	MaxScoredCost   float64 // most expensive scored candidate; 0 if none scored
}

// Summarize computes aggregate statistics from a SearchTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SearchTrace) *TraceSummary {
	summary := &TraceSummary{}
	if st == nil {
		return summary
	}

	summary.TotalCandidates = len(st.Candidates)
	minCost := math.Inf(1)
	for _, c := range st.Candidates {
		switch c.Verdict {
		case VerdictInvalid:
			summary.InvalidCount++
		case VerdictOverBudget:
			summary.OverBudgetCount++
		case VerdictScored:
			summary.ScoredCount++
			minCost = math.Min(minCost, c.Cost)
			summary.MaxScoredCost = math.Max(summary.MaxScoredCost, c.Cost)
		}
		if c.NewBest {
			summary.Improvements++
		}
	}
	if summary.ScoredCount > 0 {
		summary.MinScoredCost = minCost
	}

	return summary
}
