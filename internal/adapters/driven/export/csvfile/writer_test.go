package csvfile

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archivist-labs/docmatch-cli/internal/core/domain"
	"github.com/archivist-labs/docmatch-cli/internal/core/ports/driven"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWrite_HeaderAndRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	results := []domain.MatchResult{
		{
			RecordID:   "r/budget.json",
			BestPDF:    "budget.pdf",
			MatchCount: 2,
			Evidence: []domain.Evidence{
				{Snippet: "snippet one", Excerpt: "excerpt one"},
				{Snippet: "snippet two", Excerpt: "excerpt two"},
			},
		},
		{RecordID: "r/orphan.json"},
	}

	require.NoError(t, New().Write(context.Background(), path, results))

	rows := readCSV(t, path)
	require.Len(t, rows, 4) // header + 2 evidence rows + 1 placeholder

	assert.Equal(t, []string{
		"record_identifier", "matched_pdf_identifier", "match_count", "snippet_text", "excerpt_text",
	}, rows[0])
	assert.Equal(t, []string{"r/budget.json", "budget.pdf", "2", "snippet one", "excerpt one"}, rows[1])
	assert.Equal(t, []string{"r/budget.json", "budget.pdf", "2", "snippet two", "excerpt two"}, rows[2])
	assert.Equal(t, []string{"r/orphan.json", "", "0", "", ""}, rows[3])
}

func TestWrite_OverwritesPreviousReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	ctx := context.Background()

	first := []domain.MatchResult{{RecordID: "r/a.json"}, {RecordID: "r/b.json"}}
	require.NoError(t, New().Write(ctx, path, first))

	second := []domain.MatchResult{{RecordID: "r/c.json"}}
	require.NoError(t, New().Write(ctx, path, second))

	rows := readCSV(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, "r/c.json", rows[1][0])
}

func TestWrite_EmptyResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")

	require.NoError(t, New().Write(context.Background(), path, nil))

	rows := readCSV(t, path)
	require.Len(t, rows, 1) // header only
}

func TestWrite_UnwritablePath(t *testing.T) {
	err := New().Write(context.Background(), filepath.Join(t.TempDir(), "missing", "report.csv"), nil)
	assert.Error(t, err)
}

func TestInterfaceCompliance(t *testing.T) {
	var _ driven.ReportWriter = (*Writer)(nil)
}
