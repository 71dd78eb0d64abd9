package driving

import (
	"context"
	"time"

	"github.com/archivist-labs/docmatch-cli/internal/core/domain"
)

// Stage identifies which phase of a run produced a progress event.
type Stage string

const (
	StageExtract Stage = "extract"
	StageMatch   Stage = "match"
)

// ProgressFunc receives one event per processed item. Err is nil for
// a successful item. Events arrive in completion order, which carries
// no semantic significance. For StageMatch events, result holds the
// item's match result.
type ProgressFunc func(stage Stage, item string, result *domain.MatchResult, err error)

// RunOptions configures one reconciliation run.
type RunOptions struct {
	// PDFDir is the directory holding candidate PDF files.
	PDFDir string

	// RecordsDir is the directory holding structured record files.
	RecordsDir string

	// ReportPath is where the tabular report is written.
	ReportPath string

	// ForceExtract re-runs extraction even when a cache is present.
	ForceExtract bool

	// Progress, when non-nil, is invoked per processed item.
	Progress ProgressFunc
}

// ExtractOptions configures a cache-building extraction pass.
type ExtractOptions struct {
	PDFDir   string
	Force    bool
	Progress ProgressFunc
}

// RunSummary reports the outcome of a run.
type RunSummary struct {
	// RunID uniquely identifies this run in logs and output.
	RunID string

	// PDFs is the number of PDF texts in the table (cached or freshly
	// extracted).
	PDFs int

	// ExtractionFailures counts PDFs that could not be extracted.
	ExtractionFailures int

	// CacheUsed reports whether the text table came from the cache.
	CacheUsed bool

	// Records is the number of record files processed.
	Records int

	// RecordFailures counts record files that could not be loaded.
	RecordFailures int

	// Matched and Unmatched partition the loaded records.
	Matched   int
	Unmatched int

	// Results holds one MatchResult per loaded record, in completion
	// order.
	Results []domain.MatchResult

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
}

// ExtractSummary reports the outcome of an extraction pass.
type ExtractSummary struct {
	RunID    string
	PDFs     int
	Failures int
	Skipped  bool // true when a present cache made the pass a no-op
	Elapsed  time.Duration
}

// Reconciler drives the full pipeline: build the PDF text table (from
// cache or by extraction), match every record against it and export
// the report.
type Reconciler interface {
	// Run executes the full pipeline. Per-item failures are contained
	// and reported through Progress; only environment failures (input
	// directories unreadable, report unwritable) return an error.
	Run(ctx context.Context, opts RunOptions) (*RunSummary, error)

	// Extract builds or refreshes the extraction cache without
	// matching.
	Extract(ctx context.Context, opts ExtractOptions) (*ExtractSummary, error)
}
