package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/archivist-labs/docmatch-cli/internal/core/domain"
	"github.com/archivist-labs/docmatch-cli/internal/core/ports/driven"
	"github.com/archivist-labs/docmatch-cli/internal/core/ports/driving"
	"github.com/archivist-labs/docmatch-cli/internal/logger"
)

// Ensure Reconciler implements the driving interface.
var _ driving.Reconciler = (*Reconciler)(nil)

// Reconciler orchestrates the pipeline: build the PDF text table from
// the cache or by fanning extraction over a bounded worker pool, match
// every record against the immutable table, export the report.
//
// Tasks are independent and side-effect free: each receives its own
// inputs and returns a self-contained outcome over a channel. Results
// are collected in completion order, which downstream consumers must
// not assign meaning to.
type Reconciler struct {
	extractor driven.TextExtractor
	cache     driven.ExtractionCache
	records   driven.RecordSource
	writer    driven.ReportWriter
	matcher   *Matcher
	workers   int
}

// NewReconciler wires a reconciler. A non-positive worker count
// defaults to the number of CPUs.
func NewReconciler(
	extractor driven.TextExtractor,
	cache driven.ExtractionCache,
	records driven.RecordSource,
	writer driven.ReportWriter,
	matcher *Matcher,
	workers int,
) *Reconciler {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if matcher == nil {
		matcher = NewMatcher(0, 0)
	}
	return &Reconciler{
		extractor: extractor,
		cache:     cache,
		records:   records,
		writer:    writer,
		matcher:   matcher,
		workers:   workers,
	}
}

// Run executes the full pipeline. Per-item failures are logged and
// reported through opts.Progress without aborting the run; only
// environment failures (unreadable input directories, unwritable
// report) return an error.
func (r *Reconciler) Run(ctx context.Context, opts driving.RunOptions) (*driving.RunSummary, error) {
	start := time.Now()
	summary := &driving.RunSummary{RunID: uuid.NewString()}
	logger.Info("run %s: reconciling %s against %s", summary.RunID, opts.RecordsDir, opts.PDFDir)

	table, extractFailures, cacheUsed, err := r.buildTextTable(ctx, opts.PDFDir, opts.ForceExtract, opts.Progress)
	if err != nil {
		return nil, err
	}
	summary.PDFs = len(table)
	summary.ExtractionFailures = extractFailures
	summary.CacheUsed = cacheUsed

	paths, err := r.records.List(ctx, opts.RecordsDir)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	summary.Records = len(paths)

	results, loadFailures := r.matchAll(ctx, paths, table, opts.Progress)
	summary.RecordFailures = loadFailures
	summary.Results = results
	for i := range results {
		if results[i].Matched() {
			summary.Matched++
		} else {
			summary.Unmatched++
		}
	}

	if opts.ReportPath != "" {
		if err := r.writer.Write(ctx, opts.ReportPath, results); err != nil {
			return nil, fmt.Errorf("writing report: %w", err)
		}
		logger.Info("run %s: report written to %s", summary.RunID, opts.ReportPath)
	}

	summary.Elapsed = time.Since(start)
	return summary, nil
}

// Extract builds or refreshes the extraction cache without matching.
func (r *Reconciler) Extract(ctx context.Context, opts driving.ExtractOptions) (*driving.ExtractSummary, error) {
	start := time.Now()
	summary := &driving.ExtractSummary{RunID: uuid.NewString()}

	table, failures, cacheUsed, err := r.buildTextTable(ctx, opts.PDFDir, opts.Force, opts.Progress)
	if err != nil {
		return nil, err
	}
	summary.PDFs = len(table)
	summary.Failures = failures
	summary.Skipped = cacheUsed
	summary.Elapsed = time.Since(start)
	return summary, nil
}

// extractOutcome is the self-contained result of one extraction task.
type extractOutcome struct {
	id   string
	text string
	err  error
}

// buildTextTable returns the PDF text table, the number of extraction
// failures and whether the table came from the cache. The cache is
// read once before any parallel work begins and written once after all
// extraction tasks complete; failed extractions are absent from the
// saved mapping, not retried.
func (r *Reconciler) buildTextTable(ctx context.Context, pdfDir string, force bool, progress driving.ProgressFunc) (domain.TextTable, int, bool, error) {
	if !force {
		table, err := r.cache.Load(ctx)
		switch {
		case err == nil:
			logger.Info("extraction cache present, skipping extraction (%d PDFs)", len(table))
			return table, 0, true, nil
		case errors.Is(err, domain.ErrNoCache):
			logger.Debug("no extraction cache, extracting")
		default:
			logger.Warn("extraction cache unreadable, falling back to extraction: %v", err)
		}
	}

	paths, err := listPDFs(pdfDir)
	if err != nil {
		return nil, 0, false, fmt.Errorf("listing PDFs: %w", err)
	}
	logger.Info("extracting text from %d PDFs with %d workers", len(paths), r.workers)

	out := make(chan extractOutcome, r.workers)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	go func() {
		for _, path := range paths {
			path := path
			g.Go(func() error {
				text, extractErr := r.extractor.Extract(gctx, path)
				out <- extractOutcome{id: filepath.Base(path), text: text, err: extractErr}
				return nil
			})
		}
		// Workers never return errors; failures travel inside outcomes.
		_ = g.Wait()
		close(out)
	}()

	table := make(domain.TextTable, len(paths))
	failures := 0
	for o := range out {
		if o.err != nil {
			failures++
			logger.Warn("failed to extract %s: %v", o.id, o.err)
			if progress != nil {
				progress(driving.StageExtract, o.id, nil, o.err)
			}
			continue
		}
		table[o.id] = o.text
		if progress != nil {
			progress(driving.StageExtract, o.id, nil, nil)
		}
	}

	if err := r.cache.Save(ctx, table); err != nil {
		// The cache is an optimisation, not a correctness requirement.
		logger.Warn("failed to write extraction cache: %v", err)
	}
	return table, failures, false, nil
}

// matchOutcome is the self-contained result of one matching task.
type matchOutcome struct {
	path   string
	result *domain.MatchResult
	err    error
}

// matchAll fans matching over the worker pool. Every task gets the
// record path and the read-only table; no task reads or writes another
// task's state. Returns results in completion order and the number of
// record files that failed to load.
func (r *Reconciler) matchAll(ctx context.Context, paths []string, table domain.TextTable, progress driving.ProgressFunc) ([]domain.MatchResult, int) {
	logger.Info("matching %d records with %d workers", len(paths), r.workers)

	out := make(chan matchOutcome, r.workers)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	go func() {
		for _, path := range paths {
			path := path
			g.Go(func() error {
				rec, loadErr := r.records.Load(gctx, path)
				if loadErr != nil {
					out <- matchOutcome{path: path, err: loadErr}
					return nil
				}
				result := r.matcher.Match(rec, table)
				out <- matchOutcome{path: path, result: &result}
				return nil
			})
		}
		_ = g.Wait()
		close(out)
	}()

	results := make([]domain.MatchResult, 0, len(paths))
	failures := 0
	for o := range out {
		if o.err != nil {
			failures++
			logger.Warn("failed to load record %s: %v", o.path, o.err)
			if progress != nil {
				progress(driving.StageMatch, o.path, nil, o.err)
			}
			continue
		}
		results = append(results, *o.result)
		if progress != nil {
			progress(driving.StageMatch, o.path, o.result, nil)
		}
	}
	return results, failures
}

// listPDFs enumerates the PDF files directly under dir, sorted by
// name. Submission order is deterministic even though completion order
// is not.
func listPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}
