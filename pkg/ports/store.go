package ports

import (
	"context"

	"github.com/aretw0/hyperdoc/pkg/domain"
)

// DocumentStore persists fetched documents under caller-chosen keys. Hosts
// use it for history ("the last document I fetched") and named bookmarks.
// It is a collaborator of the CLI and other hosts, never of the core model.
type DocumentStore interface {
	// Save persists the document under the given key.
	Save(ctx context.Context, key string, doc *domain.Document) error

	// Load retrieves the document stored under the given key.
	// Returns domain.ErrNotFound when no document exists.
	Load(ctx context.Context, key string) (*domain.Document, error)

	// Delete removes the document stored under the given key.
	Delete(ctx context.Context, key string) error

	// List returns the keys of all stored documents.
	List(ctx context.Context) ([]string, error)
}
