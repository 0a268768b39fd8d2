package codecs

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/aretw0/hyperdoc/pkg/domain"
)

// JSONCodec handles plain JSON data responses: payloads that carry data but
// no hypermedia markup. Decoded mappings become Objects and decoded
// sequences become Arrays; no Actions can appear.
type JSONCodec struct{}

// NewJSON returns the plain JSON data codec.
func NewJSON() *JSONCodec {
	return &JSONCodec{}
}

// MediaTypes implements ports.Codec.
func (*JSONCodec) MediaTypes() []string {
	return []string{"application/json"}
}

// Decode implements ports.Codec. baseURL is unused: plain data carries no
// link targets to resolve.
func (*JSONCodec) Decode(data []byte, _ string) (domain.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("json codec: %w", err)
	}
	return domain.Coerce(raw)
}

// Encode implements ports.Codec. Containers flatten to their plain content;
// Actions have no plain JSON form.
func (*JSONCodec) Encode(v domain.Value) ([]byte, error) {
	plain, err := plainValue(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(plain)
}

func plainValue(v domain.Value) (any, error) {
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
			plain, err := plainValue(item)
			if err != nil {
				return nil, err
			}
			out = append(out, plain)
		}
		return out, nil
	case *domain.Object:
		return plainContents(t.Keys(), t.Get)
	case *domain.Document:
		return plainContents(t.Keys(), t.Get)
	case *domain.Error:
		return plainContents(t.Keys(), t.Get)
	case *domain.Action:
		return nil, fmt.Errorf("json codec: cannot encode an action as plain data")
	default:
		return nil, fmt.Errorf("json codec: cannot encode %T", v)
	}
}

func plainContents(keys []string, get func(string) (domain.Value, error)) (map[string]any, error) {
	out := make(map[string]any, len(keys))
	for _, key := range keys {
		value, err := get(key)
		if err != nil {
			return nil, err
		}
		plain, err := plainValue(value)
		if err != nil {
			return nil, err
		}
		out[key] = plain
	}
	return out, nil
}
