package driven

import (
	"context"

	"github.com/archivist-labs/docmatch-cli/internal/core/domain"
)

// ReportWriter serialises match results into a tabular report.
// One row is written per evidence pair; a result with no evidence
// yields exactly one placeholder row. The report is written once per
// run, overwriting any previous report at the same path.
type ReportWriter interface {
	Write(ctx context.Context, path string, results []domain.MatchResult) error
}
