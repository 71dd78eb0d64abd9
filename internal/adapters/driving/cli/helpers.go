package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/archivist-labs/docmatch-cli/internal/adapters/driven/export/csvfile"
	"github.com/archivist-labs/docmatch-cli/internal/adapters/driven/export/xlsxfile"
	"github.com/archivist-labs/docmatch-cli/internal/adapters/driven/extract/pdftotext"
	"github.com/archivist-labs/docmatch-cli/internal/adapters/driven/records/jsonfile"
	"github.com/archivist-labs/docmatch-cli/internal/adapters/driven/storage/sqlite"
	"github.com/archivist-labs/docmatch-cli/internal/core/domain"
	"github.com/archivist-labs/docmatch-cli/internal/core/ports/driven"
	"github.com/archivist-labs/docmatch-cli/internal/core/services"
	"github.com/archivist-labs/docmatch-cli/internal/logger"
)

// Configuration keys. Flags override config values; config values
// override defaults.
const (
	keyPDFDir          = "pdf_dir"
	keyRecordsDir      = "records_dir"
	keyReportPath      = "report_path"
	keyReportFormat    = "report_format"
	keyThreshold       = "threshold"
	keyWorkers         = "workers"
	keyExcerptRadius   = "excerpt_radius"
	keyPdftotextBinary = "pdftotext_binary"
)

// knownKeys lists every key the config command accepts.
var knownKeys = []string{
	keyPDFDir,
	keyRecordsDir,
	keyReportPath,
	keyReportFormat,
	keyThreshold,
	keyWorkers,
	keyExcerptRadius,
	keyPdftotextBinary,
}

// resolveString resolves a string setting: changed flag, then config,
// then default.
func resolveString(store driven.ConfigStore, cmd *cobra.Command, flag, key, def string) string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	if v := store.GetString(key); v != "" {
		return v
	}
	return def
}

// resolveInt resolves an integer setting: changed flag, then config,
// then default.
func resolveInt(store driven.ConfigStore, cmd *cobra.Command, flag, key string, def int) int {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetInt(flag)
		return v
	}
	if v := store.GetInt(key); v != 0 {
		return v
	}
	return def
}

// reportWriter returns the writer for the requested format.
func reportWriter(format string) (driven.ReportWriter, error) {
	switch strings.ToLower(format) {
	case "", "csv":
		return csvfile.New(), nil
	case "xlsx":
		return xlsxfile.New(), nil
	default:
		return nil, fmt.Errorf("%w: %q (expected csv or xlsx)", domain.ErrUnsupportedFormat, format)
	}
}

// defaultReportPath is the report file written when no path is
// configured.
func defaultReportPath(format string) string {
	if strings.EqualFold(format, "xlsx") {
		return "matches.xlsx"
	}
	return "matches.csv"
}

// openCacheStore opens the SQLite extraction cache.
func openCacheStore() (*sqlite.Store, error) {
	store, err := sqlite.NewStore(flagDataDir)
	if err != nil {
		return nil, fmt.Errorf("opening extraction cache: %w", err)
	}
	return store, nil
}

// newExtractor builds the pdftotext extractor and warns when the
// binary is missing. A missing binary is not fatal here: a present
// cache can still serve a full run.
func newExtractor(cmd *cobra.Command) *pdftotext.Extractor {
	extractor := pdftotext.New(pdftotext.WithBinary(cfg.GetString(keyPdftotextBinary)))
	if !extractor.Available() {
		logger.Warn("pdftotext binary not found; extraction will fail unless a cache is present")
		cmd.PrintErrln(pdftotext.InstallInstructions())
	}
	return extractor
}

// newReconciler wires the reconciliation service.
func newReconciler(cmd *cobra.Command, cache driven.ExtractionCache, writer driven.ReportWriter, threshold, workers int) *services.Reconciler {
	matcher := services.NewMatcher(threshold, cfg.GetInt(keyExcerptRadius))
	return services.NewReconciler(newExtractor(cmd), cache, jsonfile.New(), writer, matcher, workers)
}
