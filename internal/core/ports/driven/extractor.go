package driven

import "context"

// TextExtractor produces the full text of a single PDF.
type TextExtractor interface {
	// Extract returns the extracted text for the PDF at path, pages
	// concatenated in document order and separated by newlines. Pages
	// with no extractable text contribute an empty segment.
	// A failure is isolated to that file and must not affect the
	// extraction of other PDFs.
	Extract(ctx context.Context, path string) (string, error)
}

// CommandRunner executes an external command and returns its stdout.
// Extractors shell out through this interface so tests can substitute
// a double.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}
