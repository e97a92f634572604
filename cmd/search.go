package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/storage-dse/tierdse/dse"
	"github.com/storage-dse/tierdse/dse/catalog"
	"github.com/storage-dse/tierdse/dse/report"
	"github.com/storage-dse/tierdse/dse/trace"
)

var (
	budget         float64 // Exclusive cost limit
	objectiveName  string  // throughput, latency or both
	traceLevel     string  // Decision trace verbosity
	summarizeTrace bool    // Print trace summary after each search
)

// searchCmd finds the best configuration under a single budget
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Find the best configuration under one cost budget",
	Run: func(cmd *cobra.Command, args []string) {
		cat, err := loadCatalog(catalogPath)
		if err != nil {
			logrus.Fatalf("Failed to load catalog: %v", err)
		}
		w, err := loadWorkload(workloadPath, normalize)
		if err != nil {
			logrus.Fatalf("Failed to load workload: %v", err)
		}
		objectives, err := resolveObjectives(objectiveName)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		explorer, err := newExplorer(cat, traceLevel)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		var outcomes []*dse.Outcome
		for _, obj := range objectives {
			out, err := explorer.FindBest(cmd.Context(), w, budget, obj)
			if err != nil {
				logrus.Fatalf("Search failed: %v", err)
			}
			outcomes = append(outcomes, out)
		}
		writeOutcomes(cmd, cat, outcomes)
	},
}

// writeOutcomes renders outcomes in the selected format, followed by trace
// summaries when requested.
func writeOutcomes(cmd *cobra.Command, cat *catalog.Catalog, outcomes []*dse.Outcome) {
	stdout := cmd.OutOrStdout()
	if outputFormat == "json" {
		if err := report.WriteJSON(stdout, cat, outcomes); err != nil {
			logrus.Fatalf("Failed to write results: %v", err)
		}
	} else {
		for _, out := range outcomes {
			if err := report.WriteText(stdout, cat, out); err != nil {
				logrus.Fatalf("Failed to write results: %v", err)
			}
		}
	}
	if !summarizeTrace {
		return
	}
	for _, out := range outcomes {
		if out.Trace == nil {
			logrus.Warnf("--summarize-trace needs --trace-level decisions")
			return
		}
		if err := report.WriteTraceSummary(cmd.ErrOrStderr(), trace.Summarize(out.Trace)); err != nil {
			logrus.Fatalf("Failed to write trace summary: %v", err)
		}
	}
}

func init() {
	searchCmd.Flags().Float64Var(&budget, "budget", 2000, "Cost limit; configurations must cost strictly less")
	searchCmd.Flags().StringVar(&objectiveName, "objective", "throughput", "Objective: throughput, latency or both")
	searchCmd.Flags().StringVar(&traceLevel, "trace-level", "none", "Trace verbosity: none or decisions")
	searchCmd.Flags().BoolVar(&summarizeTrace, "summarize-trace", false, "Print trace summary to stderr (requires --trace-level decisions)")

	rootCmd.AddCommand(searchCmd)
}
