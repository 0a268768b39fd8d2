// Package file provides a filesystem DocumentStore. Each document is a Core
// JSON file in a flat directory, so a CLI can keep history and bookmarks
// between invocations without a server.
package file

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/hyperdoc/pkg/codecs/corejson"
	"github.com/aretw0/hyperdoc/pkg/domain"
	"github.com/aretw0/hyperdoc/pkg/ports"
)

const extension = ".corejson"

// Store implements ports.DocumentStore over a directory.
type Store struct {
	dir   string
	codec *corejson.Codec
}

var _ ports.DocumentStore = (*Store)(nil)

// NewStore creates a store rooted at dir, creating it if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("file store: %w", err)
	}
	return &Store{dir: dir, codec: corejson.New()}, nil
}

// Keys may contain path separators or other hostile characters, so they are
// hex-encoded into filenames.
func (s *Store) path(key string) string {
	return filepath.Join(s.dir, hex.EncodeToString([]byte(key))+extension)
}

// Save implements ports.DocumentStore.
func (s *Store) Save(_ context.Context, key string, doc *domain.Document) error {
	if doc == nil {
		return fmt.Errorf("file store: cannot save nil document under %q", key)
	}
	data, err := s.codec.Encode(doc)
	if err != nil {
		return fmt.Errorf("file store: encoding %q: %w", key, err)
	}
	if err := os.WriteFile(s.path(key), data, 0o644); err != nil {
		return fmt.Errorf("file store: %w", err)
	}
	return nil
}

// Load implements ports.DocumentStore.
func (s *Store) Load(_ context.Context, key string) (*domain.Document, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %q", domain.ErrNotFound, key)
		}
		return nil, fmt.Errorf("file store: %w", err)
	}
	decoded, err := s.codec.Decode(data, "")
	if err != nil {
		return nil, fmt.Errorf("file store: decoding %q: %w", key, err)
	}
	doc, ok := decoded.(*domain.Document)
	if !ok {
		return nil, fmt.Errorf("file store: stored value under %q is not a document", key)
	}
	return doc, nil
}

// Delete implements ports.DocumentStore.
func (s *Store) Delete(_ context.Context, key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("file store: %w", err)
	}
	return nil
}

// List implements ports.DocumentStore.
func (s *Store) List(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("file store: %w", err)
	}
	var keys []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, extension) {
			continue
		}
		decoded, err := hex.DecodeString(strings.TrimSuffix(name, extension))
		if err != nil {
			continue // not one of ours
		}
		keys = append(keys, string(decoded))
	}
	sort.Strings(keys)
	return keys, nil
}
