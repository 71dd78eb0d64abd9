package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/archivist-labs/docmatch-cli/internal/core/ports/driving"
)

var (
	extractPDFDir  string
	extractForce   bool
	extractWorkers int
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Build or refresh the PDF extraction cache",
	Long: `Extracts text from every PDF in the directory and stores it in the
extraction cache, without matching. A present cache makes this a no-op
unless --force is given.`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVar(&extractPDFDir, "pdf-dir", "", "directory containing the PDF files")
	extractCmd.Flags().BoolVar(&extractForce, "force", false, "re-extract even when a cache is present")
	extractCmd.Flags().IntVar(&extractWorkers, "workers", 0, "worker pool size (default number of CPUs)")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, _ []string) error {
	pdfDir := resolveString(cfg, cmd, "pdf-dir", keyPDFDir, "")
	if pdfDir == "" {
		return errors.New("--pdf-dir is required (flag or config)")
	}
	workers := resolveInt(cfg, cmd, "workers", keyWorkers, 0)

	store, err := openCacheStore()
	if err != nil {
		return err
	}
	defer store.Close()

	reconciler := newReconciler(cmd, store, nil, 0, workers)
	summary, err := reconciler.Extract(context.Background(), driving.ExtractOptions{
		PDFDir:   pdfDir,
		Force:    extractForce,
		Progress: newProgressPrinter(cmd),
	})
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	if summary.Skipped {
		cmd.Println("Extraction cache already present, nothing to do (use --force to rebuild).")
		return nil
	}
	cmd.Println(renderExtractSummary(summary))
	return nil
}
