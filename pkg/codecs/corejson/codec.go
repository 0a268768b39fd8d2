// Package corejson implements the Core JSON document format: JSON with
// "_type"-tagged mappings for documents, links and errors, and a "_meta"
// block carrying identity. Relative link targets are resolved against the
// address the payload was retrieved from during decoding.
package corejson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"regexp"

	"github.com/mitchellh/mapstructure"

	"github.com/aretw0/hyperdoc/pkg/domain"
)

// MediaType is the canonical Core JSON media type.
const MediaType = "application/coreapi+json"

// ErrParse is returned when a payload is not well-formed Core JSON.
var ErrParse = errors.New("malformed core json")

// Codec translates between Core JSON payloads and the document model.
type Codec struct{}

// New returns the Core JSON codec.
func New() *Codec {
	return &Codec{}
}

// MediaTypes implements ports.Codec.
func (*Codec) MediaTypes() []string {
	return []string{MediaType, "application/vnd.coreapi+json"}
}

// Decode implements ports.Codec. Numbers decode through json.Number so
// large integers stay exact instead of collapsing to float64.
func (*Codec) Decode(data []byte, baseURL string) (domain.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	decoded, err := decodeValue(raw, baseURL)
	if err != nil {
		return nil, err
	}
	if v, ok := decoded.(domain.Value); ok {
		return v, nil
	}
	return domain.Coerce(decoded)
}

// Encode implements ports.Codec.
func (*Codec) Encode(v domain.Value) ([]byte, error) {
	raw, err := encodeValue(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(raw)
}

// linkSpec mirrors the wire shape of a "_type": "link" mapping.
type linkSpec struct {
	URL         string      `mapstructure:"url"`
	Action      string      `mapstructure:"action"`
	Encoding    string      `mapstructure:"encoding"`
	Transform   string      `mapstructure:"transform"`
	Description string      `mapstructure:"description"`
	Fields      []fieldSpec `mapstructure:"fields"`
}

type fieldSpec struct {
	Name     string         `mapstructure:"name"`
	Required bool           `mapstructure:"required"`
	Location string         `mapstructure:"location"`
	Schema   map[string]any `mapstructure:"schema"`
}

// decodeValue returns either a constructed domain value or raw data for the
// caller to coerce. base is the URL relative link targets resolve against;
// it shifts whenever a nested document carries its own address.
func decodeValue(raw any, base string) (any, error) {
	switch v := raw.(type) {
	case map[string]any:
		typeTag, _ := v["_type"].(string)
		switch typeTag {
		case "document":
			meta := metaMap(v)
			docURL := resolveURL(base, stringAt(meta, "url"))
			content, err := decodeContent(v, docURL)
			if err != nil {
				return nil, err
			}
			return domain.NewDocument(docURL, stringAt(meta, "title"), content)
		case "error":
			meta := metaMap(v)
			content, err := decodeContent(v, base)
			if err != nil {
				return nil, err
			}
			return domain.NewError(stringAt(meta, "title"), content)
		case "link":
			return decodeLink(v, base)
		default:
			return decodeContent(v, base)
		}
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			decoded, err := decodeValue(item, base)
			if err != nil {
				return nil, err
			}
			out[i] = decoded
		}
		return out, nil
	default:
		return raw, nil
	}
}

func decodeContent(v map[string]any, base string) (map[string]any, error) {
	content := make(map[string]any, len(v))
	for key, child := range v {
		if key == "_type" || key == "_meta" {
			continue
		}
		decoded, err := decodeValue(child, base)
		if err != nil {
			return nil, err
		}
		content[unescapeKey(key)] = decoded
	}
	return content, nil
}

func decodeLink(v map[string]any, base string) (*domain.Action, error) {
	var spec linkSpec
	if err := mapstructure.Decode(v, &spec); err != nil {
		return nil, fmt.Errorf("%w: link: %v", ErrParse, err)
	}

	fields := make([]any, 0, len(spec.Fields))
	for _, f := range spec.Fields {
		field := domain.Field{Name: f.Name, Required: f.Required, Location: f.Location}
		if f.Schema != nil {
			schema, err := decodeSchema(f.Schema)
			if err != nil {
				return nil, fmt.Errorf("%w: field %q: %v", ErrParse, f.Name, err)
			}
			field.Schema = schema
		}
		fields = append(fields, field)
	}

	var opts []domain.ActionOption
	if spec.Encoding != "" {
		opts = append(opts, domain.WithEncoding(spec.Encoding))
	}
	if spec.Transform != "" {
		opts = append(opts, domain.WithTransform(spec.Transform))
	}
	if spec.Description != "" {
		opts = append(opts, domain.WithDescription(spec.Description))
	}
	return domain.NewAction(resolveURL(base, spec.URL), spec.Action, fields, opts...)
}

func encodeValue(v domain.Value) (any, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case domain.String:
		return string(t), nil
	case domain.Integer:
		return int64(t), nil
	case domain.Number:
		return float64(t), nil
	case domain.Boolean:
		return bool(t), nil
	case domain.Array:
		out := make([]any, 0, t.Len())
		for _, item := range t.Items() {
			encoded, err := encodeValue(item)
			if err != nil {
				return nil, err
			}
			out = append(out, encoded)
		}
		return out, nil
	case *domain.Object:
		return encodeContents(nil, t.Keys(), t.Get)
	case *domain.Document:
		meta := map[string]any{}
		if t.Origin() != "" {
			meta["url"] = t.Origin()
		}
		if t.Title() != "" {
			meta["title"] = t.Title()
		}
		header := map[string]any{"_type": "document"}
		if len(meta) > 0 {
			header["_meta"] = meta
		}
		return encodeContents(header, t.Keys(), t.Get)
	case *domain.Error:
		header := map[string]any{"_type": "error"}
		if t.Title() != "" {
			header["_meta"] = map[string]any{"title": t.Title()}
		}
		return encodeContents(header, t.Keys(), t.Get)
	case *domain.Action:
		return encodeLink(t), nil
	default:
		return nil, fmt.Errorf("core json: cannot encode %T", v)
	}
}

func encodeContents(header map[string]any, keys []string, get func(string) (domain.Value, error)) (map[string]any, error) {
	out := header
	if out == nil {
		out = make(map[string]any, len(keys))
	}
	for _, key := range keys {
		value, err := get(key)
		if err != nil {
			return nil, err
		}
		encoded, err := encodeValue(value)
		if err != nil {
			return nil, err
		}
		out[escapeKey(key)] = encoded
	}
	return out, nil
}

func encodeLink(a *domain.Action) map[string]any {
	out := map[string]any{"_type": "link"}
	if a.Target() != "" {
		out["url"] = a.Target()
	}
	if a.Method() != domain.DefaultMethod {
		out["action"] = a.Method()
	}
	if a.Encoding() != "" {
		out["encoding"] = a.Encoding()
	}
	if a.Transform() != "" {
		out["transform"] = a.Transform()
	}
	if a.Description() != "" {
		out["description"] = a.Description()
	}
	fields := a.Fields()
	if len(fields) > 0 {
		encoded := make([]any, 0, len(fields))
		for _, f := range fields {
			fieldOut := map[string]any{"name": f.Name}
			if f.Required {
				fieldOut["required"] = true
			}
			if f.Location != "" {
				fieldOut["location"] = f.Location
			}
			if f.Schema != nil {
				fieldOut["schema"] = f.Schema
			}
			encoded = append(encoded, fieldOut)
		}
		out["fields"] = encoded
	}
	return out
}

func metaMap(v map[string]any) map[string]any {
	meta, _ := v["_meta"].(map[string]any)
	return meta
}

func stringAt(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func resolveURL(base, ref string) string {
	if ref == "" {
		return base
	}
	if base == "" {
		return ref
	}
	b, err := url.Parse(base)
	if err != nil {
		return ref
	}
	r, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return b.ResolveReference(r).String()
}

// Data keys that would collide with the "_type"/"_meta" markup gain one
// leading underscore on the wire and lose it again when decoding.
var (
	escapePattern   = regexp.MustCompile(`^_+(type|meta)$`)
	unescapePattern = regexp.MustCompile(`^__+(type|meta)$`)
)

func escapeKey(key string) string {
	if escapePattern.MatchString(key) {
		return "_" + key
	}
	return key
}

func unescapeKey(key string) string {
	if unescapePattern.MatchString(key) {
		return key[1:]
	}
	return key
}
