package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"github.com/archivist-labs/docmatch-cli/internal/core/domain"
	"github.com/archivist-labs/docmatch-cli/internal/core/ports/driving"
)

func captureProgress(t *testing.T) (driving.ProgressFunc, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	return newProgressPrinter(cmd), &buf
}

func TestProgressPrinter_Matched(t *testing.T) {
	progress, buf := captureProgress(t)

	progress(driving.StageMatch, "records/a.json", &domain.MatchResult{
		RecordID:   "records/a.json",
		BestPDF:    "report.pdf",
		MatchCount: 3,
	}, nil)

	assert.Contains(t, buf.String(), "records/a.json → report.pdf (matches: 3)")
}

func TestProgressPrinter_Unmatched(t *testing.T) {
	progress, buf := captureProgress(t)

	progress(driving.StageMatch, "records/b.json", &domain.MatchResult{RecordID: "records/b.json"}, nil)

	assert.Contains(t, buf.String(), "records/b.json: no good match found")
}

func TestProgressPrinter_Failure(t *testing.T) {
	progress, buf := captureProgress(t)

	progress(driving.StageExtract, "broken.pdf", nil, errors.New("exit status 1"))

	assert.Contains(t, buf.String(), "broken.pdf: exit status 1")
}

func TestProgressPrinter_ExtractSuccessIsQuiet(t *testing.T) {
	progress, buf := captureProgress(t)

	progress(driving.StageExtract, "fine.pdf", nil, nil)

	assert.Empty(t, buf.String())
}
