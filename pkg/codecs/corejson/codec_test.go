package corejson_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/hyperdoc/pkg/codecs/corejson"
	"github.com/aretw0/hyperdoc/pkg/domain"
)

func TestDecodeDocument(t *testing.T) {
	payload := []byte(`{
		"_type": "document",
		"_meta": {"url": "/notes/", "title": "Notes"},
		"count": 9007199254740991,
		"ratio": 0.5,
		"tags": ["a", "b"],
		"add_note": {
			"_type": "link",
			"url": "/notes/",
			"action": "post",
			"fields": [
				{"name": "description", "required": true, "location": "form", "schema": {"_type": "string", "description": "Note text"}}
			]
		}
	}`)

	codec := corejson.New()
	value, err := codec.Decode(payload, "http://example.org")
	require.NoError(t, err)

	doc, ok := value.(*domain.Document)
	require.True(t, ok, "decoded value should be a document, got %T", value)
	assert.Equal(t, "http://example.org/notes/", doc.Origin())
	assert.Equal(t, "Notes", doc.Title())

	count, err := doc.Get("count")
	require.NoError(t, err)
	assert.Equal(t, domain.Integer(9007199254740991), count, "large integers must not collapse to float64")

	ratio, err := doc.Get("ratio")
	require.NoError(t, err)
	assert.Equal(t, domain.Number(0.5), ratio)

	link, err := domain.LookupAction(doc, "add_note")
	require.NoError(t, err)
	assert.Equal(t, "http://example.org/notes/", link.Target(), "relative link targets resolve against the document URL")
	assert.Equal(t, "post", link.Method())

	fields := link.Fields()
	require.Len(t, fields, 1)
	assert.Equal(t, "description", fields[0].Name)
	assert.True(t, fields[0].Required)
	assert.Equal(t, "form", fields[0].Location)
	require.NotNil(t, fields[0].Schema)
}

func TestDecodeError(t *testing.T) {
	payload := []byte(`{
		"_type": "error",
		"_meta": {"title": "Rate limited"},
		"messages": ["Too many requests"]
	}`)

	value, err := corejson.New().Decode(payload, "http://example.org")
	require.NoError(t, err)

	errDoc, ok := value.(*domain.Error)
	require.True(t, ok, "decoded value should be an error, got %T", value)
	assert.Equal(t, "Rate limited", errDoc.Title())
}

func TestDecodePlainData(t *testing.T) {
	value, err := corejson.New().Decode([]byte(`{"a": 1, "b": [true, null]}`), "")
	require.NoError(t, err)

	obj, ok := value.(*domain.Object)
	require.True(t, ok, "plain mappings decode to objects, got %T", value)
	assert.True(t, obj.Equals(map[string]any{"a": 1, "b": []any{true, nil}}))
}

func TestDecodeRejectsMalformedPayload(t *testing.T) {
	_, err := corejson.New().Decode([]byte(`{not json`), "")
	assert.ErrorIs(t, err, corejson.ErrParse)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	link, err := domain.NewAction("http://example.org/notes/", "post",
		[]any{domain.Field{Name: "description", Required: true, Location: "form"}},
		domain.WithEncoding("application/json"),
		domain.WithDescription("Create a new note."),
	)
	require.NoError(t, err)

	doc, err := domain.NewDocument("http://example.org/notes/", "Notes", map[string]any{
		"count":    3,
		"labels":   []any{"home", "work"},
		"add_note": link,
		"_meta":    "collides with markup",
	})
	require.NoError(t, err)

	codec := corejson.New()
	data, err := codec.Encode(doc)
	require.NoError(t, err)

	decoded, err := codec.Decode(data, "")
	require.NoError(t, err)

	restored, ok := decoded.(*domain.Document)
	require.True(t, ok)
	assert.True(t, doc.Equals(restored), "Decode(Encode(doc)) must equal doc\nwant: %s\ngot:  %s", doc.Repr(), restored.Repr())

	restoredLink, err := domain.LookupAction(restored, "add_note")
	require.NoError(t, err)
	assert.Equal(t, "application/json", restoredLink.Encoding())
	assert.Equal(t, "Create a new note.", restoredLink.Description())
}

func TestEscapedKeysSurviveRoundTrip(t *testing.T) {
	doc, err := domain.NewDocument("", "", map[string]any{"_type": "shadowed", "__meta": "also"})
	require.NoError(t, err)

	codec := corejson.New()
	data, err := codec.Encode(doc)
	require.NoError(t, err)

	decoded, err := codec.Decode(data, "")
	require.NoError(t, err)
	restored, ok := decoded.(*domain.Document)
	require.True(t, ok)

	v, err := restored.Get("_type")
	require.NoError(t, err)
	assert.Equal(t, domain.String("shadowed"), v)

	v, err = restored.Get("__meta")
	require.NoError(t, err)
	assert.Equal(t, domain.String("also"), v)
}
