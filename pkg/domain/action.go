package domain

import (
	"fmt"
	"reflect"
)

// DefaultMethod is the verb an Action carries when none is supplied.
const DefaultMethod = "get"

// Field describes one parameter of an Action. The zero value of every
// attribute is its default; Location is a free-form hint such as "path",
// "query", "form" or "body", and Schema is an opaque descriptor attached by
// codecs (e.g. an openapi3.Schema).
type Field struct {
	Name     string
	Required bool
	Location string
	Schema   any
}

// Equals reports whether two fields carry the same attribute tuple.
func (f Field) Equals(other Field) bool {
	return f.Name == other.Name &&
		f.Required == other.Required &&
		f.Location == other.Location &&
		reflect.DeepEqual(f.Schema, other.Schema)
}

// isDefault reports whether only the name is set, which lets renderers use
// the bare-string shorthand.
func (f Field) isDefault() bool {
	return !f.Required && f.Location == "" && f.Schema == nil
}

// Action is an invokable leaf referencing a target URL and describing how to
// call it. Historically called a "link".
type Action struct {
	target      string
	method      string
	encoding    string
	transform   string
	description string
	fields      []Field
}

func (*Action) isValue() {}

// ActionOption configures the attributes that do not participate in equality.
type ActionOption func(*Action)

// WithEncoding sets the request encoding (e.g. "application/json").
func WithEncoding(encoding string) ActionOption {
	return func(a *Action) {
		a.encoding = encoding
	}
}

// WithTransform sets the in-place transform hint (e.g. "delete").
func WithTransform(transform string) ActionOption {
	return func(a *Action) {
		a.transform = transform
	}
}

// WithDescription sets the human-readable description.
func WithDescription(description string) ActionOption {
	return func(a *Action) {
		a.description = description
	}
}

// NewAction builds an Action. The method defaults to DefaultMethod when
// empty. Each element of fields must be either a string (shorthand for an
// optional Field of that name) or a Field; anything else is a type mismatch.
func NewAction(target, method string, fields []any, opts ...ActionOption) (*Action, error) {
	coerced := make([]Field, 0, len(fields))
	for i, raw := range fields {
		switch f := raw.(type) {
		case string:
			coerced = append(coerced, Field{Name: f})
		case Field:
			coerced = append(coerced, f)
		default:
			return nil, fmt.Errorf("action: field %d: %w: expected string or Field, got %T", i, ErrTypeMismatch, raw)
		}
	}
	if method == "" {
		method = DefaultMethod
	}
	a := &Action{target: target, method: method, fields: coerced}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Target returns the URL the action points at, possibly relative.
func (a *Action) Target() string { return a.target }

// Method returns the verb used to invoke the action.
func (a *Action) Method() string { return a.method }

// Encoding returns the request encoding, empty for the transport default.
func (a *Action) Encoding() string { return a.encoding }

// Transform returns the in-place transform hint.
func (a *Action) Transform() string { return a.transform }

// Description returns the human-readable description.
func (a *Action) Description() string { return a.description }

// Fields returns a copy of the parameter descriptors in declaration order.
func (a *Action) Fields() []Field {
	out := make([]Field, len(a.fields))
	copy(out, a.fields)
	return out
}

// RequiredFields returns the required parameters in declaration order.
func (a *Action) RequiredFields() []Field {
	var out []Field
	for _, f := range a.fields {
		if f.Required {
			out = append(out, f)
		}
	}
	return out
}

// OptionalFields returns the optional parameters in declaration order.
func (a *Action) OptionalFields() []Field {
	var out []Field
	for _, f := range a.fields {
		if !f.Required {
			out = append(out, f)
		}
	}
	return out
}

// FieldNamed returns the field with the given name.
func (a *Action) FieldNamed(name string) (Field, bool) {
	for _, f := range a.fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// WithTarget returns a copy of the action pointing at a different URL.
func (a *Action) WithTarget(target string) *Action {
	out := *a
	out.target = target
	out.fields = a.Fields()
	return &out
}

// WithMethod returns a copy of the action using a different verb.
func (a *Action) WithMethod(method string) *Action {
	out := *a
	if method == "" {
		method = DefaultMethod
	}
	out.method = method
	out.fields = a.Fields()
	return &out
}

// WithOptions returns a copy of the action with the given options applied.
func (a *Action) WithOptions(opts ...ActionOption) *Action {
	out := *a
	out.fields = a.Fields()
	for _, opt := range opts {
		opt(&out)
	}
	return &out
}
