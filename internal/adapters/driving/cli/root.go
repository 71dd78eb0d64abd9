// Package cli implements the docmatch command line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/archivist-labs/docmatch-cli/internal/adapters/driven/config/file"
	"github.com/archivist-labs/docmatch-cli/internal/core/ports/driven"
	"github.com/archivist-labs/docmatch-cli/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "0.2.0"

var (
	flagVerbose   bool
	flagConfigDir string
	flagDataDir   string

	// cfg is loaded once per invocation in the root pre-run.
	cfg driven.ConfigStore
)

var rootCmd = &cobra.Command{
	Use:   "docmatch",
	Short: "Reconcile structured records with the PDFs they came from",
	Long: `docmatch recovers, for every structured record file, the PDF that most
likely contains its text. PDFs are extracted once (and cached), every
record is scored against every PDF with fuzzy partial matching, and the
best candidate per record is exported to a tabular report together with
the snippet pairs that matched.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(flagVerbose)

		store, err := file.NewConfigStore(flagConfigDir)
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}
		cfg = store
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "config directory (default ~/.docmatch)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory for the extraction cache (default ~/.docmatch/data)")
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}
