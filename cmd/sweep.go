package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/storage-dse/tierdse/dse"
)

// defaultBudgets are the cost limits of the reference study.
var defaultBudgets = []float64{2000, 4000, 6000, 8000, 10000, 15000, 100000}

var (
	budgets            []float64 // Cost limits to sweep
	sweepObjectiveName string    // throughput, latency or both
	sweepTraceLevel    string    // Decision trace verbosity
)

// sweepCmd searches a list of budgets
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Find the best configuration for each of several cost budgets",
	Run: func(cmd *cobra.Command, args []string) {
		if len(budgets) == 0 {
			logrus.Fatalf("at least one --budgets value is required")
		}
		cat, err := loadCatalog(catalogPath)
		if err != nil {
			logrus.Fatalf("Failed to load catalog: %v", err)
		}
		w, err := loadWorkload(workloadPath, normalize)
		if err != nil {
			logrus.Fatalf("Failed to load workload: %v", err)
		}
		objectives, err := resolveObjectives(sweepObjectiveName)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		explorer, err := newExplorer(cat, sweepTraceLevel)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		var outcomes []*dse.Outcome
		for _, obj := range objectives {
			outs, err := explorer.Sweep(cmd.Context(), w, budgets, obj)
			if err != nil {
				logrus.Fatalf("Sweep failed: %v", err)
			}
			outcomes = append(outcomes, outs...)
		}
		writeOutcomes(cmd, cat, outcomes)
	},
}

func init() {
	sweepCmd.Flags().Float64SliceVar(&budgets, "budgets", defaultBudgets, "Comma-separated cost limits")
	sweepCmd.Flags().StringVar(&sweepObjectiveName, "objective", "throughput", "Objective: throughput, latency or both")
	sweepCmd.Flags().StringVar(&sweepTraceLevel, "trace-level", "none", "Trace verbosity: none or decisions")
	sweepCmd.Flags().BoolVar(&summarizeTrace, "summarize-trace", false, "Print trace summaries to stderr (requires --trace-level decisions)")

	rootCmd.AddCommand(sweepCmd)
}
