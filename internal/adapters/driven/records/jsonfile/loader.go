// Package jsonfile loads structured record files: JSON arrays of
// entries, each optionally carrying an original_text field.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/archivist-labs/docmatch-cli/internal/core/domain"
	"github.com/archivist-labs/docmatch-cli/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.RecordSource = (*Source)(nil)

// recordSchema is the shape a record file must have before snippet
// extraction: an array of objects whose original_text, when present,
// is a string.
const recordSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"properties": {
			"original_text": {"type": "string"}
		}
	}
}`

// Source reads record files from the filesystem.
type Source struct {
	schema *jsonschema.Schema
}

// New creates a record source.
func New() *Source {
	// The schema literal is a compile-time constant; a failure here is
	// a programming error.
	schema := jsonschema.MustCompileString("records.schema.json", recordSchema)
	return &Source{schema: schema}
}

// List returns the paths of the .json files directly under dir,
// sorted by name.
func (s *Source) List(_ context.Context, dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".json") {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// Load parses one record file. Entries without an original_text field
// are ignored; empty or whitespace-only snippets are dropped. Parse
// and schema failures wrap domain.ErrRecordLoad so the caller can skip
// the file without aborting the run.
func (s *Source) Load(_ context.Context, path string) (*domain.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrRecordLoad, path, err)
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrRecordLoad, path, err)
	}
	if err := s.schema.Validate(raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrRecordLoad, path, err)
	}

	entries, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s: not an array", domain.ErrRecordLoad, path)
	}

	rec := &domain.Record{ID: path}
	for _, entry := range entries {
		obj, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		text, ok := obj["original_text"].(string)
		if !ok {
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		rec.Snippets = append(rec.Snippets, text)
	}
	return rec, nil
}
