package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/archivist-labs/docmatch-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/archivist-labs/docmatch-cli/internal/core/domain"
	"github.com/archivist-labs/docmatch-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.ExtractionCache = (*Store)(nil)

// metaKeyComplete marks a cache that holds a complete extraction.
// Cache presence is binary: rows without this marker (an interrupted
// run) are not a cache.
const metaKeyComplete = "complete"

// Store is the SQLite-backed extraction cache. The schema is explicit
// and versioned through embedded migrations, so a cache written by an
// incompatible version fails loudly instead of misreading.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a SQLite cache store at the specified data
// directory. If dataDir is empty, defaults to ~/.docmatch/data.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".docmatch", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "cache.db")

	// WAL mode for better concurrency between CLI invocations
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, path: dbPath}
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Load returns the cached mapping, or domain.ErrNoCache when no
// complete cache has been saved.
func (s *Store) Load(ctx context.Context) (domain.TextTable, error) {
	var marker string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM cache_meta WHERE key = ?", metaKeyComplete,
	).Scan(&marker)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNoCache
	}
	if err != nil {
		return nil, fmt.Errorf("reading cache marker: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, "SELECT id, text FROM pdf_texts")
	if err != nil {
		return nil, fmt.Errorf("reading cached texts: %w", err)
	}
	defer rows.Close()

	table := make(domain.TextTable)
	for rows.Next() {
		var id, text string
		if err := rows.Scan(&id, &text); err != nil {
			return nil, fmt.Errorf("scanning cached text: %w", err)
		}
		table[id] = text
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cached texts: %w", err)
	}
	return table, nil
}

// Save persists the mapping in one transaction, replacing any previous
// contents and setting the completeness marker. An empty mapping saved
// by a complete run is still a valid cache.
func (s *Store) Save(ctx context.Context, texts domain.TextTable) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM pdf_texts"); err != nil {
		return fmt.Errorf("clearing cached texts: %w", err)
	}
	for id, text := range texts {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO pdf_texts (id, text) VALUES (?, ?)", id, text,
		); err != nil {
			return fmt.Errorf("inserting cached text %q: %w", id, err)
		}
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO cache_meta (key, value) VALUES (?, '1') ON CONFLICT(key) DO UPDATE SET value = '1'",
		metaKeyComplete,
	); err != nil {
		return fmt.Errorf("setting cache marker: %w", err)
	}
	return tx.Commit()
}

// Clear removes the cache contents and its completeness marker.
func (s *Store) Clear(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM pdf_texts"); err != nil {
		return fmt.Errorf("clearing cached texts: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM cache_meta WHERE key = ?", metaKeyComplete); err != nil {
		return fmt.Errorf("clearing cache marker: %w", err)
	}
	return tx.Commit()
}

// Status reports the number of cached entries and the schema version.
func (s *Store) Status(ctx context.Context) (entries, version int, err error) {
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM pdf_texts").Scan(&entries); err != nil {
		return 0, 0, fmt.Errorf("counting cached texts: %w", err)
	}
	if err := s.db.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&version); err != nil {
		return 0, 0, fmt.Errorf("reading schema version: %w", err)
	}
	return entries, version, nil
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_extraction_cache.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}
		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}
	return nil
}
