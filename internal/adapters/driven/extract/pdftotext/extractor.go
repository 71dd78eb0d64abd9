// Package pdftotext extracts full text from PDFs by shelling out to
// the poppler pdftotext binary.
package pdftotext

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/archivist-labs/docmatch-cli/internal/core/domain"
	"github.com/archivist-labs/docmatch-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.TextExtractor = (*Extractor)(nil)

// DefaultBinary is the pdftotext executable looked up on PATH.
const DefaultBinary = "pdftotext"

// Extractor shells out to pdftotext for each PDF. pdftotext separates
// pages with form feeds; the extractor normalises those to newlines so
// the text is a plain page-ordered concatenation. Pages with no
// extractable text contribute an empty segment rather than being
// skipped.
type Extractor struct {
	binary string
	runner driven.CommandRunner
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithBinary overrides the pdftotext binary name or path.
func WithBinary(binary string) Option {
	return func(e *Extractor) {
		if binary != "" {
			e.binary = binary
		}
	}
}

// WithRunner substitutes the command runner. Used by tests.
func WithRunner(runner driven.CommandRunner) Option {
	return func(e *Extractor) {
		if runner != nil {
			e.runner = runner
		}
	}
}

// New creates a pdftotext-backed extractor.
func New(opts ...Option) *Extractor {
	e := &Extractor{binary: DefaultBinary, runner: execRunner{}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract runs pdftotext over the PDF at path and returns its text.
// A failure is isolated to this file; callers continue with the rest.
func (e *Extractor) Extract(ctx context.Context, path string) (string, error) {
	// pdftotext -enc UTF-8 -eol unix <path> -
	out, err := e.runner.Run(ctx, e.binary, "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", domain.ErrExtraction, path, err)
	}
	// Form feeds are pdftotext's page separators.
	return strings.ReplaceAll(string(out), "\f", "\n"), nil
}

// Available reports whether the pdftotext binary can be found.
func (e *Extractor) Available() bool {
	_, err := exec.LookPath(e.binary)
	return err == nil
}

// InstallInstructions returns guidance for installing pdftotext.
func InstallInstructions() string {
	return "pdftotext is required for PDF extraction.\n" +
		"  macOS:  brew install poppler\n" +
		"  Debian: apt install poppler-utils\n" +
		"  Fedora: dnf install poppler-utils"
}
