package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Flags shared by every subcommand
	logLevel     string // Log verbosity level
	catalogPath  string // YAML tier catalog (empty = reference catalog)
	workloadPath string // YAML workload (empty = reference workload)
	normalize    bool   // Rescale workload fractions to sum to 1 instead of rejecting
	parallelism  int    // Concurrent search branches / budgets
	outputFormat string // "text" or "json"
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "tierdse",
	Short: "Design-space explorer for multi-tier storage hierarchies",
	Long: "Enumerates device counts per storage tier and reports the configuration with the best " +
		"throughput or latency under a cost budget. Defaults reproduce the RAM/NVM/SSD/HDD study.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// Execute runs the CLI root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// init sets up persistent CLI flags
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Path to tier catalog YAML (default: built-in RAM/NVM/SSD/HDD catalog)")
	rootCmd.PersistentFlags().StringVar(&workloadPath, "workload", "", "Path to workload YAML (default: built-in three-group workload)")
	rootCmd.PersistentFlags().BoolVar(&normalize, "normalize", false, "Rescale workload fractions to sum to 1 instead of rejecting the workload")
	rootCmd.PersistentFlags().IntVar(&parallelism, "parallel", 1, "Number of search branches or budgets evaluated concurrently")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "output", "text", "Output format: text or json")
}
