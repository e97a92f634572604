package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/storage-dse/tierdse/dse"
	"github.com/storage-dse/tierdse/dse/catalog"
	"github.com/storage-dse/tierdse/dse/trace"
	"github.com/storage-dse/tierdse/dse/workload"
)

// validOutputFormats is the set of recognized --output values.
var validOutputFormats = map[string]bool{"text": true, "json": true}

// loadCatalog returns the catalog at path, or the reference catalog when path is empty.
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Reference(), nil
	}
	cat, err := catalog.Load(path)
	if err != nil {
		return nil, err
	}
	logrus.Infof("Loaded %d tiers from %s", cat.Len(), path)
	return cat, nil
}

// loadWorkload returns the workload at path (or the reference workload),
// validated or, when norm is set, normalized.
func loadWorkload(path string, norm bool) (workload.Workload, error) {
	w := workload.Reference()
	if path != "" {
		loaded, err := workload.Load(path)
		if err != nil {
			return nil, err
		}
		logrus.Infof("Loaded %d access groups from %s", len(loaded), path)
		w = loaded
	}
	if norm {
		if sum := w.FractionSum(); sum != 1 {
			logrus.Warnf("Normalizing workload fractions (sum was %g)", sum)
		}
		return w.Normalize()
	}
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("workload: %w", err)
	}
	return w, nil
}

// resolveObjectives maps "throughput", "latency" or "both" to objectives.
func resolveObjectives(name string) ([]dse.Objective, error) {
	if name == "both" {
		return []dse.Objective{dse.Throughput, dse.Latency}, nil
	}
	obj, err := dse.ParseObjective(name)
	if err != nil {
		return nil, fmt.Errorf("%w (or both)", err)
	}
	return []dse.Objective{obj}, nil
}

// newExplorer builds an Explorer from the shared flags.
func newExplorer(cat *catalog.Catalog, traceLevel string) (*dse.Explorer, error) {
	if !trace.IsValidTraceLevel(traceLevel) {
		return nil, fmt.Errorf("unknown trace level %q; valid: none, decisions", traceLevel)
	}
	if !validOutputFormats[outputFormat] {
		return nil, fmt.Errorf("unknown output format %q; valid: text, json", outputFormat)
	}
	return dse.NewExplorer(cat,
		dse.WithParallelism(parallelism),
		dse.WithTrace(trace.TraceConfig{Level: trace.TraceLevel(traceLevel)}),
	), nil
}
