package domain

import (
	"encoding/json"
	"fmt"
)

// Coerce converts raw nested input into the closed Value variant, exactly as
// the container constructors do for their content. Codecs use it to finish
// decoding payloads whose top level is not a container.
func Coerce(raw any) (Value, error) {
	return coerceValue(raw)
}

// coerceValue converts raw nested input into the closed Value variant.
// Mappings become Objects, sequences become Arrays, primitives pass through,
// and pre-built containers (already immutable) are shared as-is.
// Coercion is depth-first and total over finite input.
func coerceValue(raw any) (Value, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case String, Integer, Number, Boolean, Array:
		return v.(Value), nil
	case *Object, *Document, *Action, *Error:
		return v.(Value), nil
	case string:
		return String(v), nil
	case bool:
		return Boolean(v), nil
	case int:
		return Integer(v), nil
	case int8:
		return Integer(v), nil
	case int16:
		return Integer(v), nil
	case int32:
		return Integer(v), nil
	case int64:
		return Integer(v), nil
	case uint:
		return Integer(v), nil
	case uint8:
		return Integer(v), nil
	case uint16:
		return Integer(v), nil
	case uint32:
		return Integer(v), nil
	case float32:
		return Number(v), nil
	case float64:
		return Number(v), nil
	case json.Number:
		// Decoders hand over json.Number to keep large integers exact
		// instead of collapsing everything to float64.
		if n, err := v.Int64(); err == nil {
			return Integer(n), nil
		}
		f, err := v.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: malformed number %q", ErrTypeMismatch, string(v))
		}
		return Number(f), nil
	case map[string]any:
		return NewObject(v)
	case []any:
		return NewArray(v...)
	case []string:
		items := make([]any, len(v))
		for i, s := range v {
			items[i] = s
		}
		return NewArray(items...)
	case []Value:
		items := make([]any, len(v))
		for i, item := range v {
			items[i] = item
		}
		return NewArray(items...)
	default:
		return nil, fmt.Errorf("%w: unsupported value of type %T", ErrTypeMismatch, raw)
	}
}
