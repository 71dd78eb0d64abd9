// Package memory provides in-memory implementations of the storage
// ports for tests and ephemeral runs.
package memory

import (
	"context"
	"sync"

	"github.com/archivist-labs/docmatch-cli/internal/core/domain"
	"github.com/archivist-labs/docmatch-cli/internal/core/ports/driven"
)

// Ensure CacheStore implements the interface.
var _ driven.ExtractionCache = (*CacheStore)(nil)

// CacheStore is an in-memory implementation of driven.ExtractionCache.
// Nothing survives the process; a fresh store reports no cache.
type CacheStore struct {
	mu       sync.RWMutex
	table    domain.TextTable
	complete bool
}

// NewCacheStore creates a new in-memory cache store.
func NewCacheStore() *CacheStore {
	return &CacheStore{}
}

// Load returns the saved mapping, or domain.ErrNoCache when Save has
// not been called.
func (s *CacheStore) Load(_ context.Context) (domain.TextTable, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.complete {
		return nil, domain.ErrNoCache
	}
	table := make(domain.TextTable, len(s.table))
	for id, text := range s.table {
		table[id] = text
	}
	return table, nil
}

// Save stores a copy of the mapping, replacing any previous contents.
func (s *CacheStore) Save(_ context.Context, texts domain.TextTable) error {
	table := make(domain.TextTable, len(texts))
	for id, text := range texts {
		table[id] = text
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = table
	s.complete = true
	return nil
}

// Clear removes the cache.
func (s *CacheStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = nil
	s.complete = false
	return nil
}
