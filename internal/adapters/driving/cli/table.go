package cli

import (
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/archivist-labs/docmatch-cli/internal/core/ports/driving"
)

// roundTo keeps elapsed times readable in summaries.
const roundTo = 10 * time.Millisecond

// renderSummaryTable renders a two-column key/value table with the
// values right-aligned.
func renderSummaryTable(rows [][2]string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	for _, row := range rows {
		tw.AppendRow(table.Row{row[0], row[1]})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignRight},
	})

	return tw.Render()
}

func renderRunSummary(s *driving.RunSummary, reportPath string) string {
	source := "extracted"
	if s.CacheUsed {
		source = "cache"
	}

	rows := [][2]string{
		{"Run", s.RunID},
		{"PDF texts (" + source + ")", strconv.Itoa(s.PDFs)},
		{"Extraction failures", strconv.Itoa(s.ExtractionFailures)},
		{"Records", strconv.Itoa(s.Records)},
		{"Record failures", strconv.Itoa(s.RecordFailures)},
		{"Matched", strconv.Itoa(s.Matched)},
		{"Unmatched", strconv.Itoa(s.Unmatched)},
		{"Report", reportPath},
		{"Elapsed", s.Elapsed.Round(roundTo).String()},
	}
	return renderSummaryTable(rows)
}

func renderExtractSummary(s *driving.ExtractSummary) string {
	rows := [][2]string{
		{"Run", s.RunID},
		{"PDFs extracted", strconv.Itoa(s.PDFs)},
		{"Failures", strconv.Itoa(s.Failures)},
		{"Elapsed", s.Elapsed.Round(roundTo).String()},
	}
	return renderSummaryTable(rows)
}
