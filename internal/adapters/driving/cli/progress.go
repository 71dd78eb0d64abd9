package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/archivist-labs/docmatch-cli/internal/core/domain"
	"github.com/archivist-labs/docmatch-cli/internal/core/ports/driving"
	"github.com/archivist-labs/docmatch-cli/internal/logger"
)

var (
	okMark   = color.New(color.FgGreen).Sprint("✓")
	failMark = color.New(color.FgYellow).Sprint("!")
)

// newProgressPrinter returns a ProgressFunc that prints one status line
// per processed item. Extraction successes only show up in verbose
// mode; failures and match outcomes always print.
func newProgressPrinter(cmd *cobra.Command) driving.ProgressFunc {
	return func(stage driving.Stage, item string, result *domain.MatchResult, err error) {
		switch {
		case err != nil:
			cmd.Printf("%s %s: %v\n", failMark, item, err)
		case stage == driving.StageExtract:
			logger.Debug("extracted %s", item)
		case result != nil && result.Matched():
			cmd.Printf("%s %s → %s (matches: %d)\n", okMark, item, result.BestPDF, result.MatchCount)
		default:
			cmd.Printf("%s %s: no good match found\n", failMark, item)
		}
	}
}
