package codecs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/hyperdoc/pkg/codecs"
	"github.com/aretw0/hyperdoc/pkg/codecs/corejson"
	"github.com/aretw0/hyperdoc/pkg/domain"
)

func newRegistry() *codecs.Registry {
	return codecs.NewRegistry(corejson.New(), codecs.NewJSON())
}

func TestNegotiate(t *testing.T) {
	registry := newRegistry()

	tests := []struct {
		name        string
		contentType string
		wantCore    bool
	}{
		{"core json", "application/coreapi+json", true},
		{"vendored core json", "application/vnd.coreapi+json", true},
		{"with parameters", "application/coreapi+json; charset=utf-8", true},
		{"plain json", "application/json", false},
		{"empty falls back to preferred", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codec, err := registry.Negotiate(tt.contentType)
			require.NoError(t, err)
			_, isCore := codec.(*corejson.Codec)
			assert.Equal(t, tt.wantCore, isCore)
		})
	}
}

func TestNegotiateUnsupported(t *testing.T) {
	registry := newRegistry()

	_, err := registry.Negotiate("text/html")
	assert.ErrorIs(t, err, codecs.ErrUnsupportedContentType)
}

func TestAccept(t *testing.T) {
	registry := newRegistry()

	assert.Equal(t,
		"application/coreapi+json, application/vnd.coreapi+json, application/json",
		registry.Accept(),
	)
}

func TestJSONCodecDecodesPlainData(t *testing.T) {
	value, err := codecs.NewJSON().Decode([]byte(`{"items": [1, 2, 3], "total": 3}`), "")
	require.NoError(t, err)

	obj, ok := value.(*domain.Object)
	require.True(t, ok, "decoded value should be an object, got %T", value)
	assert.True(t, obj.Equals(map[string]any{"items": []any{1, 2, 3}, "total": 3}))
}

func TestJSONCodecRefusesActions(t *testing.T) {
	link, err := domain.NewAction("/", "", nil)
	require.NoError(t, err)
	doc, err := domain.NewDocument("", "", map[string]any{"self": link})
	require.NoError(t, err)

	_, err = codecs.NewJSON().Encode(doc)
	assert.Error(t, err)
}
