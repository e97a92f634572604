package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// catalogCmd prints the active catalog in the YAML form accepted by --catalog
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the tier catalog as YAML",
	Run: func(cmd *cobra.Command, args []string) {
		cat, err := loadCatalog(catalogPath)
		if err != nil {
			logrus.Fatalf("Failed to load catalog: %v", err)
		}
		if err := cat.WriteYAML(cmd.OutOrStdout()); err != nil {
			logrus.Fatalf("Failed to write catalog: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}
