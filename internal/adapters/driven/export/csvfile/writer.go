// Package csvfile writes the match report as CSV.
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/archivist-labs/docmatch-cli/internal/core/domain"
	"github.com/archivist-labs/docmatch-cli/internal/core/ports/driven"
	"github.com/archivist-labs/docmatch-cli/internal/adapters/driven/export"
)

// Ensure Writer implements the interface.
var _ driven.ReportWriter = (*Writer)(nil)

// Writer serialises match results to a CSV file: one row per evidence
// pair, or a single placeholder row for records with no qualifying
// evidence. Any previous report at the same path is overwritten.
type Writer struct{}

// New creates a CSV report writer.
func New() *Writer {
	return &Writer{}
}

// Write writes the report to path.
func (w *Writer) Write(_ context.Context, path string, results []domain.MatchResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(export.Header()); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i := range results {
		for _, row := range export.Rows(results[i]) {
			record := []string{row.RecordID, row.BestPDF, strconv.Itoa(row.MatchCount), row.Snippet, row.Excerpt}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("writing row: %w", err)
			}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing report: %w", err)
	}
	return f.Close()
}
