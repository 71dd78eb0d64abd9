package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoCache indicates no extraction cache is present.
	// The caller falls back to full extraction.
	ErrNoCache = errors.New("extraction cache not present")

	// ErrExtraction indicates a PDF could not be opened or parsed.
	// Isolated to that file; it is absent from the text table.
	ErrExtraction = errors.New("extraction failed")

	// ErrRecordLoad indicates a record file could not be parsed as the
	// expected structured format. Isolated to that file; it is skipped
	// and excluded from the result set.
	ErrRecordLoad = errors.New("record load failed")

	// ErrUnsupportedFormat indicates an unknown report format.
	ErrUnsupportedFormat = errors.New("unsupported report format")
)
