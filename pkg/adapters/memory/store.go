// Package memory provides an in-memory DocumentStore, suitable for tests
// and single-process hosts that do not need persistence.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/hyperdoc/pkg/domain"
	"github.com/aretw0/hyperdoc/pkg/ports"
)

// Store keeps documents in a map guarded by a mutex. Documents are immutable,
// so Save and Load share pointers without copying.
type Store struct {
	mu   sync.RWMutex
	docs map[string]*domain.Document
}

var _ ports.DocumentStore = (*Store)(nil)

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{docs: make(map[string]*domain.Document)}
}

// Save implements ports.DocumentStore.
func (s *Store) Save(_ context.Context, key string, doc *domain.Document) error {
	if doc == nil {
		return fmt.Errorf("memory store: cannot save nil document under %q", key)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[key] = doc
	return nil
}

// Load implements ports.DocumentStore.
func (s *Store) Load(_ context.Context, key string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrNotFound, key)
	}
	return doc, nil
}

// Delete implements ports.DocumentStore.
func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, key)
	return nil
}

// List implements ports.DocumentStore.
func (s *Store) List(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.docs))
	for key := range s.docs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}
