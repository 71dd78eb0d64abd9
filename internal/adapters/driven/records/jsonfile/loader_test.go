package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archivist-labs/docmatch-cli/internal/core/domain"
	"github.com/archivist-labs/docmatch-cli/internal/core/ports/driven"
)

func writeRecordFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestList_FiltersToJSONFiles(t *testing.T) {
	dir := t.TempDir()
	writeRecordFile(t, dir, "b.json", "[]")
	writeRecordFile(t, dir, "a.JSON", "[]")
	writeRecordFile(t, dir, "notes.txt", "ignore me")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.json"), 0700))

	paths, err := New().List(context.Background(), dir)
	require.NoError(t, err)

	require.Len(t, paths, 2)
	assert.Equal(t, filepath.Join(dir, "a.JSON"), paths[0])
	assert.Equal(t, filepath.Join(dir, "b.json"), paths[1])
}

func TestList_MissingDirectory(t *testing.T) {
	_, err := New().List(context.Background(), filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}

func TestLoad_ExtractsSnippetsInOrder(t *testing.T) {
	dir := t.TempDir()
	path := writeRecordFile(t, dir, "sitting.json", `[
		{"original_text": "first snippet", "page": 1},
		{"subject": "no text field here"},
		{"original_text": "second snippet"}
	]`)

	rec, err := New().Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, path, rec.ID)
	assert.Equal(t, []string{"first snippet", "second snippet"}, rec.Snippets)
}

func TestLoad_DropsEmptySnippets(t *testing.T) {
	dir := t.TempDir()
	path := writeRecordFile(t, dir, "sitting.json", `[
		{"original_text": ""},
		{"original_text": "   "},
		{"original_text": "kept"}
	]`)

	rec, err := New().Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []string{"kept"}, rec.Snippets)
}

func TestLoad_OnlyEmptySnippetYieldsZeroSnippets(t *testing.T) {
	dir := t.TempDir()
	path := writeRecordFile(t, dir, "sitting.json", `[{"original_text": ""}]`)

	rec, err := New().Load(context.Background(), path)
	require.NoError(t, err)

	assert.Empty(t, rec.Snippets)
}

func TestLoad_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeRecordFile(t, dir, "broken.json", `{not json`)

	_, err := New().Load(context.Background(), path)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRecordLoad)
}

func TestLoad_SchemaViolation(t *testing.T) {
	dir := t.TempDir()
	// original_text must be a string when present.
	path := writeRecordFile(t, dir, "wrong.json", `[{"original_text": 42}]`)

	_, err := New().Load(context.Background(), path)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRecordLoad)
}

func TestLoad_TopLevelObjectRejected(t *testing.T) {
	dir := t.TempDir()
	path := writeRecordFile(t, dir, "object.json", `{"original_text": "x"}`)

	_, err := New().Load(context.Background(), path)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRecordLoad)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := New().Load(context.Background(), filepath.Join(t.TempDir(), "absent.json"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRecordLoad)
}

func TestInterfaceCompliance(t *testing.T) {
	var _ driven.RecordSource = (*Source)(nil)
}
