package middleware

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/hyperdoc/pkg/adapters/memory"
	"github.com/aretw0/hyperdoc/pkg/domain"
)

func TestPIIMasking(t *testing.T) {
	inner := memory.NewStore()
	store := Chain(inner, NewPIIMiddleware([]string{"(?i)email", "token"}))
	ctx := context.Background()

	doc, err := domain.NewDocument("http://example.org/", "Profile", map[string]any{
		"name":  "Ada",
		"Email": "ada@example.org",
		"settings": map[string]any{
			"api_token": "s3cr3t",
			"theme":     "dark",
		},
	})
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, "profile", doc))

	loaded, err := store.Load(ctx, "profile")
	require.NoError(t, err)

	email, err := loaded.Get("Email")
	require.NoError(t, err)
	assert.Equal(t, domain.String("***"), email)

	settings, err := loaded.Get("settings")
	require.NoError(t, err)
	obj := settings.(*domain.Object)
	token, err := obj.Get("api_token")
	require.NoError(t, err)
	assert.Equal(t, domain.String("***"), token)
	theme, err := obj.Get("theme")
	require.NoError(t, err)
	assert.Equal(t, domain.String("dark"), theme)

	// The caller's document is untouched.
	original, err := doc.Get("Email")
	require.NoError(t, err)
	assert.Equal(t, domain.String("ada@example.org"), original)
}

func TestPIIMaskingLeavesLinksAlone(t *testing.T) {
	inner := memory.NewStore()
	store := Chain(inner, NewPIIMiddleware([]string{"password"}))
	ctx := context.Background()

	login, err := domain.NewAction("http://example.org/login", "post", []any{"username", "password"})
	require.NoError(t, err)
	doc, err := domain.NewDocument("http://example.org/", "Home", map[string]any{
		"login": login,
	})
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, "home", doc))

	loaded, err := store.Load(ctx, "home")
	require.NoError(t, err)
	action, err := domain.LookupAction(loaded, "login")
	require.NoError(t, err)
	assert.Len(t, action.Fields(), 2)
}

func TestChainOrder(t *testing.T) {
	inner := memory.NewStore()
	store := Chain(inner,
		NewPIIMiddleware([]string{"secret"}),
		NewEncryptionMiddleware(EncryptionConfig{ActiveKey: testKey(3)}),
	)
	ctx := context.Background()

	doc, err := domain.NewDocument("http://example.org/", "Vault", map[string]any{
		"secret": "hunter2",
		"public": "hello",
	})
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, "vault", doc))

	loaded, err := store.Load(ctx, "vault")
	require.NoError(t, err)
	secret, err := loaded.Get("secret")
	require.NoError(t, err)
	assert.Equal(t, domain.String("***"), secret)

	// Inner store holds only the encrypted envelope.
	raw, err := inner.Load(ctx, "vault")
	require.NoError(t, err)
	assert.True(t, raw.Has("__encrypted__"))
}
