package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"flx-labs/stay-sip/internal/catalog"
	"flx-labs/stay-sip/internal/config"
	"flx-labs/stay-sip/internal/logging"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check every data file against the listing schema",
	Long: `Loads all collections and reports record counts plus any elements
that would be skipped at serve time. Exits non-zero when a source file
is missing or malformed.`,
	Run: func(cmd *cobra.Command, args []string) {
		runValidate()
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate() {
	appCfg := config.FromEnv()
	logger := logging.New(logging.Options{Level: "error", Color: appCfg.LogColor})

	loader, err := catalog.NewLoader(appCfg.DataDir, logger)
	if err != nil {
		logger.Error("failed to build loader", "error", err)
		os.Exit(1)
	}

	failed := false
	for _, name := range catalog.Names {
		_, report, err := loader.Inspect(name)
		if err != nil {
			failed = true
			if errors.Is(err, catalog.ErrUnavailable) {
				fmt.Printf("✗ %s: unavailable (%v)\n", name, err)
			} else {
				fmt.Printf("✗ %s: %v\n", name, err)
			}
			continue
		}

		if len(report.Skipped) == 0 {
			fmt.Printf("✓ %s: %d records\n", name, report.Loaded)
			continue
		}

		fmt.Printf("! %s: %d of %d records loaded\n", name, report.Loaded, report.Total)
		for _, s := range report.Skipped {
			id := s.ID
			if id == "" {
				id = "?"
			}
			fmt.Printf("    [%d] id=%s: %s\n", s.Index, id, s.Reason)
		}
	}

	if failed {
		os.Exit(1)
	}
}
