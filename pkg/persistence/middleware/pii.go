package middleware

import (
	"context"
	"regexp"

	"github.com/aretw0/hyperdoc/pkg/domain"
	"github.com/aretw0/hyperdoc/pkg/ports"
)

type piiMiddleware struct {
	next     ports.DocumentStore
	patterns []*regexp.Regexp
}

// NewPIIMiddleware creates a middleware that masks the values of keys
// matching the patterns before a document is persisted. Loading returns the
// masked form; masking is not reversible.
func NewPIIMiddleware(patternStrings []string) Middleware {
	patterns := make([]*regexp.Regexp, len(patternStrings))
	for i, p := range patternStrings {
		patterns[i] = regexp.MustCompile(p)
	}
	return func(next ports.DocumentStore) ports.DocumentStore {
		return &piiMiddleware{next: next, patterns: patterns}
	}
}

func (m *piiMiddleware) Save(ctx context.Context, key string, doc *domain.Document) error {
	// Documents are immutable, so masking builds a new one; the caller's
	// document is untouched.
	masked, err := domain.NewDocument(doc.Origin(), doc.Title(), m.maskContents(doc.Keys(), doc.Get))
	if err != nil {
		return err
	}
	return m.next.Save(ctx, key, masked)
}

func (m *piiMiddleware) Load(ctx context.Context, key string) (*domain.Document, error) {
	return m.next.Load(ctx, key)
}

func (m *piiMiddleware) Delete(ctx context.Context, key string) error {
	return m.next.Delete(ctx, key)
}

func (m *piiMiddleware) List(ctx context.Context) ([]string, error) {
	return m.next.List(ctx)
}

func (m *piiMiddleware) maskContents(keys []string, get func(string) (domain.Value, error)) map[string]any {
	out := make(map[string]any, len(keys))
	for _, key := range keys {
		value, err := get(key)
		if err != nil {
			continue
		}
		if m.matches(key) {
			out[key] = "***"
			continue
		}
		out[key] = m.maskValue(value)
	}
	return out
}

func (m *piiMiddleware) matches(key string) bool {
	for _, p := range m.patterns {
		if p.MatchString(key) {
			return true
		}
	}
	return false
}

func (m *piiMiddleware) maskValue(value domain.Value) domain.Value {
	switch v := value.(type) {
	case *domain.Document:
		masked, err := domain.NewDocument(v.Origin(), v.Title(), m.maskContents(v.Keys(), v.Get))
		if err != nil {
			return v
		}
		return masked
	case *domain.Object:
		masked, err := domain.NewObject(m.maskContents(v.Keys(), v.Get))
		if err != nil {
			return v
		}
		return masked
	case domain.Array:
		items := make([]any, 0, v.Len())
		for _, item := range v.Items() {
			items = append(items, m.maskValue(item))
		}
		masked, err := domain.NewArray(items...)
		if err != nil {
			return v
		}
		return masked
	}
	return value
}
