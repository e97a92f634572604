// Package dse provides the design-space exploration engine for multi-tier
// storage hierarchies.
//
// # Reading Guide
//
// Start with these files to understand the engine:
//   - configuration.go: Configuration (device count per tier) and the lazy
//     cross-product Enumerator that produces candidates
//   - validator.go, cost.go, access.go, performance.go: the four models that
//     decide feasibility and score a candidate
//   - optimizer.go: the exhaustive search, tie-breaking, and branch fan-out
//
// # Architecture
//
// An Explorer owns an immutable catalog.Catalog and precomputes per-tier
// vectors from it, so a single Explorer can serve any number of concurrent
// searches. Inputs come from sibling packages that hold pure data:
//   - dse/catalog/: tier descriptors and YAML loading
//   - dse/workload/: access groups, validation, YAML loading
//   - dse/trace/: per-candidate decision records
//   - dse/report/: text and JSON rendering of an Outcome
//
// A search never reports "no solution" through magic values: Outcome.Feasible
// is false and Outcome.Best is nil. Outcome.Result renders the legacy
// max-float sentinel for callers that still need it.
package dse
