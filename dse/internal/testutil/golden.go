// Package testutil provides shared test infrastructure for the tierdse engine.
// It consolidates golden dataset types and assertion helpers used across
// dse/ and dse/report/ test packages.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
// Every case searches the reference catalog with the reference workload.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase is the expected outcome of one (budget, objective) search.
type GoldenTestCase struct {
	Budget    float64 `json:"budget"`
	Objective string  `json:"objective"`
	Feasible  bool    `json:"feasible"`

	// Exact match counters
	Enumerated int64 `json:"enumerated"`
	Invalid    int64 `json:"invalid"`
	OverBudget int64 `json:"over_budget"`
	Scored     int64 `json:"scored"`

	// Best configuration; absent when infeasible
	Config          []int     `json:"config"`
	Cost            float64   `json:"cost"`
	TimePerAccess   float64   `json:"time_per_access_s"`
	AccessFractions []float64 `json:"access_fractions"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: dse/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from dse/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}

// AssertFloat64SliceEqual compares two slices element-wise with absolute tolerance.
func AssertFloat64SliceEqual(t *testing.T, name string, want, got []float64, absTol float64) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("%s: length %d, want %d", name, len(got), len(want))
	}
	for i := range want {
		if math.Abs(want[i]-got[i]) > absTol {
			t.Errorf("%s[%d]: got %v, want %v", name, i, got[i], want[i])
		}
	}
}
