// Package trace provides decision-trace recording for design-space searches.
// This package has no dependencies on dse/; it stores pure data types.
package trace

// Verdict is the outcome of evaluating one enumerated configuration.
type Verdict string

const (
	// VerdictInvalid means the configuration failed the feasibility check.
	VerdictInvalid Verdict = "invalid"
	// VerdictOverBudget means the configuration was feasible but cost at least the budget.
	VerdictOverBudget Verdict = "over-budget"
	// VerdictScored means the configuration was feasible, affordable and scored.
	VerdictScored Verdict = "scored"
)

// CandidateRecord captures the evaluation of a single configuration.
type CandidateRecord struct {
	Config        []int   // device count per tier
	Verdict       Verdict
	Cost          float64 // 0 when Verdict is invalid
	TimePerAccess float64 // seconds; 0 unless Verdict is scored
	NewBest       bool    // true if this candidate replaced the running best
}
