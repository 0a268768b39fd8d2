package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/hyperdoc/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunDocumentStoreContract runs a suite of tests to verify that a
// DocumentStore implementation adheres to the defined interface contract.
func RunDocumentStoreContract(t *testing.T, store DocumentStore) {
	ctx := context.Background()
	key := "contract-test-" + time.Now().Format("20060102150405")

	newDoc := func(title string) *domain.Document {
		link, err := domain.NewAction("/notes/", "post", []any{"description"})
		require.NoError(t, err)
		doc, err := domain.NewDocument("http://example.org/", title, map[string]any{
			"count": 42,
			"tags":  []any{"a", "b"},
			"add":   link,
		})
		require.NoError(t, err)
		return doc
	}

	t.Run("Save and Load", func(t *testing.T) {
		doc := newDoc("Notes")

		err := store.Save(ctx, key, doc)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, key)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, doc.Origin(), loaded.Origin())
		assert.Equal(t, doc.Title(), loaded.Title())
		assert.True(t, doc.Equals(loaded), "loaded document must equal the saved one")
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+key)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, key, newDoc("First")))
		require.NoError(t, store.Save(ctx, key, newDoc("Second")))

		loaded, err := store.Load(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "Second", loaded.Title())
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, key, newDoc("Doomed")))

		err := store.Delete(ctx, key)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, key)
		assert.ErrorIs(t, err, domain.ErrNotFound, "Load after Delete should return ErrNotFound")
	})

	t.Run("List", func(t *testing.T) {
		key1 := key + "-1"
		key2 := key + "-2"
		require.NoError(t, store.Save(ctx, key1, newDoc("One")))
		require.NoError(t, store.Save(ctx, key2, newDoc("Two")))

		defer func() {
			_ = store.Delete(ctx, key1)
			_ = store.Delete(ctx, key2)
		}()

		keys, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, keys, key1)
		assert.Contains(t, keys, key2)
	})
}
