package driven

import (
	"context"

	"github.com/archivist-labs/docmatch-cli/internal/core/domain"
)

// RecordSource enumerates and loads structured record files.
type RecordSource interface {
	// List returns the paths of all record files under dir.
	// Failure to enumerate at all is fatal to the run.
	List(ctx context.Context, dir string) ([]string, error)

	// Load parses one record file and returns its record with empty
	// snippets dropped. A file that cannot be parsed returns an error
	// wrapping domain.ErrRecordLoad; the caller skips it.
	Load(ctx context.Context, path string) (*domain.Record, error)
}
