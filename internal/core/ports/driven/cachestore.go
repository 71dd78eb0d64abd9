package driven

import (
	"context"

	"github.com/archivist-labs/docmatch-cli/internal/core/domain"
)

// ExtractionCache is the durable PDF identifier to extracted text
// mapping shared between runs. Presence is binary: a cache either
// holds a complete extraction or does not exist at all — partial
// caching is not supported, and a present cache is authoritative for
// every identifier it contains.
type ExtractionCache interface {
	// Load returns the cached mapping, or domain.ErrNoCache when no
	// complete cache is present.
	Load(ctx context.Context) (domain.TextTable, error)

	// Save persists the mapping, replacing any previous contents.
	// Called exactly once, after all extraction tasks complete.
	Save(ctx context.Context, texts domain.TextTable) error

	// Clear removes the cache entirely.
	Clear(ctx context.Context) error
}
