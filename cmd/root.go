package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stay-sip",
	Short: "Browse Finger Lakes stays, wineries, attractions, and venues",
	Long: `stay-sip renders hand-curated travel listings stored as JSON files
into a filterable card UI with a map view.

Configuration comes from environment variables (DATA_DIR, CONFIG_PATH,
ADDR, LOG_LEVEL) and the YAML site file.`,
}

// Execute runs the root command; errors exit non-zero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
