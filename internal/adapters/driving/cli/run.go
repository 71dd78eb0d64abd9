package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/archivist-labs/docmatch-cli/internal/core/ports/driving"
	"github.com/archivist-labs/docmatch-cli/internal/core/services"
)

var (
	runPDFDir     string
	runRecordsDir string
	runReportPath string
	runFormat     string
	runThreshold  int
	runWorkers    int
	runForce      bool
	runWatch      bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Match records to PDFs and export the report",
	Long: `Runs the full pipeline: builds the PDF text table (from the extraction
cache when present, otherwise by extracting every PDF), fuzzy-matches
every record against it and writes the tabular report.

Per-item failures (unreadable PDFs, malformed record files) are logged
and skipped; they never abort the run.`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&runPDFDir, "pdf-dir", "", "directory containing the PDF files")
	runCmd.Flags().StringVar(&runRecordsDir, "records-dir", "", "directory containing the record JSON files")
	runCmd.Flags().StringVarP(&runReportPath, "report", "o", "", "report output path")
	runCmd.Flags().StringVar(&runFormat, "format", "", "report format: csv or xlsx (default csv)")
	runCmd.Flags().IntVar(&runThreshold, "threshold", 0, fmt.Sprintf("partial-similarity hit threshold, 0-100 (default %d)", services.DefaultThreshold))
	runCmd.Flags().IntVar(&runWorkers, "workers", 0, "worker pool size (default number of CPUs)")
	runCmd.Flags().BoolVar(&runForce, "force-extract", false, "re-extract PDFs even when a cache is present")
	runCmd.Flags().BoolVar(&runWatch, "watch", false, "re-run matching when the records directory changes")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, _ []string) error {
	pdfDir := resolveString(cfg, cmd, "pdf-dir", keyPDFDir, "")
	recordsDir := resolveString(cfg, cmd, "records-dir", keyRecordsDir, "")
	if pdfDir == "" || recordsDir == "" {
		return errors.New("both --pdf-dir and --records-dir are required (flags or config)")
	}

	format := resolveString(cfg, cmd, "format", keyReportFormat, "csv")
	writer, err := reportWriter(format)
	if err != nil {
		return err
	}
	reportPath := resolveString(cfg, cmd, "report", keyReportPath, defaultReportPath(format))
	threshold := resolveInt(cfg, cmd, "threshold", keyThreshold, services.DefaultThreshold)
	workers := resolveInt(cfg, cmd, "workers", keyWorkers, 0)

	store, err := openCacheStore()
	if err != nil {
		return err
	}
	defer store.Close()

	reconciler := newReconciler(cmd, store, writer, threshold, workers)
	opts := driving.RunOptions{
		PDFDir:       pdfDir,
		RecordsDir:   recordsDir,
		ReportPath:   reportPath,
		ForceExtract: runForce,
		Progress:     newProgressPrinter(cmd),
	}

	ctx := context.Background()
	summary, err := reconciler.Run(ctx, opts)
	if err != nil {
		return fmt.Errorf("run failed: %w", err)
	}
	cmd.Println(renderRunSummary(summary, reportPath))

	if runWatch {
		return watchAndRerun(ctx, cmd, reconciler, opts)
	}
	return nil
}
