// Package xlsxfile writes the match report as an XLSX workbook.
package xlsxfile

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/archivist-labs/docmatch-cli/internal/adapters/driven/export"
	"github.com/archivist-labs/docmatch-cli/internal/core/domain"
	"github.com/archivist-labs/docmatch-cli/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.ReportWriter = (*Writer)(nil)

const sheet = "Matches"

// Writer serialises match results to an XLSX workbook with the same
// columns as the CSV report.
type Writer struct{}

// New creates an XLSX report writer.
func New() *Writer {
	return &Writer{}
}

// Write writes the report to path, overwriting any previous file.
func (w *Writer) Write(_ context.Context, path string, results []domain.MatchResult) error {
	f := excelize.NewFile()
	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("removing default sheet: %w", err)
	}

	set := func(col, row int, v any) error {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return err
		}
		return f.SetCellValue(sheet, cell, v)
	}

	for i, h := range export.Header() {
		if err := set(i+1, 1, h); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	rowNum := 2
	for i := range results {
		for _, row := range export.Rows(results[i]) {
			values := []any{row.RecordID, row.BestPDF, row.MatchCount, row.Snippet, row.Excerpt}
			for col, v := range values {
				if err := set(col+1, rowNum, v); err != nil {
					return fmt.Errorf("writing row %d: %w", rowNum, err)
				}
			}
			rowNum++
		}
	}

	// Widen the text-heavy columns
	_ = f.SetColWidth(sheet, "A", "B", 40)
	_ = f.SetColWidth(sheet, "C", "C", 12)
	_ = f.SetColWidth(sheet, "D", "E", 60)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}
	return nil
}
