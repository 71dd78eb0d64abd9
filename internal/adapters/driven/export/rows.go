// Package export defines the tabular layout of the match report
// shared by the concrete report writers.
package export

import (
	"strings"

	"github.com/archivist-labs/docmatch-cli/internal/core/domain"
)

// Row is one line of the tabular report.
type Row struct {
	RecordID   string
	BestPDF    string
	MatchCount int
	Snippet    string
	Excerpt    string
}

// Header returns the report column names, in order.
func Header() []string {
	return []string{
		"record_identifier",
		"matched_pdf_identifier",
		"match_count",
		"snippet_text",
		"excerpt_text",
	}
}

// Rows flattens one match result: one row per evidence pair, or
// exactly one placeholder row with empty text fields when the record
// has no qualifying evidence. Snippet newlines are flattened to
// spaces to keep rows single-line.
func Rows(res domain.MatchResult) []Row {
	if len(res.Evidence) == 0 {
		return []Row{{
			RecordID:   res.RecordID,
			BestPDF:    res.BestPDF,
			MatchCount: res.MatchCount,
		}}
	}
	rows := make([]Row, 0, len(res.Evidence))
	for _, ev := range res.Evidence {
		rows = append(rows, Row{
			RecordID:   res.RecordID,
			BestPDF:    res.BestPDF,
			MatchCount: res.MatchCount,
			Snippet:    flattenNewlines(ev.Snippet),
			Excerpt:    flattenNewlines(ev.Excerpt),
		})
	}
	return rows
}

var newlineFlattener = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

func flattenNewlines(s string) string {
	return newlineFlattener.Replace(s)
}
