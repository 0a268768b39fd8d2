package domain

import (
	"fmt"
	"sort"
)

// contents is the shared read surface of the mapping-like containers.
// Keys are held in sorted order; Go maps carry no insertion order, so the
// model normalizes to a deterministic ordering at construction.
type contents struct {
	keys   []string
	values map[string]Value
}

func newContents(content map[string]any) (contents, error) {
	keys := make([]string, 0, len(content))
	values := make(map[string]Value, len(content))
	for key, raw := range content {
		v, err := coerceValue(raw)
		if err != nil {
			return contents{}, fmt.Errorf("key %q: %w", key, err)
		}
		keys = append(keys, key)
		values[key] = v
	}
	sort.Strings(keys)
	return contents{keys: keys, values: values}, nil
}

// Get returns the value stored under key.
// It returns ErrKeyNotFound when the key is absent.
func (c *contents) Get(key string) (Value, error) {
	v, ok := c.values[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	return v, nil
}

// Has reports whether key is present.
func (c *contents) Has(key string) bool {
	_, ok := c.values[key]
	return ok
}

// Len returns the number of top-level keys.
func (c *contents) Len() int {
	return len(c.keys)
}

// Keys returns the keys in sorted order.
func (c *contents) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Data returns the partition of entries whose value is not an Action.
func (c *contents) Data() *Object {
	return c.partition(false)
}

// Links returns the partition of entries whose value is an Action.
func (c *contents) Links() *Object {
	return c.partition(true)
}

func (c *contents) partition(links bool) *Object {
	keys := make([]string, 0, len(c.keys))
	values := make(map[string]Value, len(c.keys))
	for _, key := range c.keys {
		v := c.values[key]
		if _, isAction := v.(*Action); isAction == links {
			keys = append(keys, key)
			values[key] = v
		}
	}
	return &Object{contents{keys: keys, values: values}}
}

// dataKeys and linkKeys drive the renderers; values are shared, which is safe
// because every Value is immutable.
func (c *contents) dataKeys() []string {
	out := make([]string, 0, len(c.keys))
	for _, key := range c.keys {
		if _, isAction := c.values[key].(*Action); !isAction {
			out = append(out, key)
		}
	}
	return out
}

func (c *contents) linkKeys() []string {
	out := make([]string, 0, len(c.keys))
	for _, key := range c.keys {
		if _, isAction := c.values[key].(*Action); isAction {
			out = append(out, key)
		}
	}
	return out
}

// Object is a nested container with no identity attributes.
type Object struct {
	contents
}

func (*Object) isValue() {}

// NewObject builds an Object, recursively coercing the given content.
func NewObject(content map[string]any) (*Object, error) {
	c, err := newContents(content)
	if err != nil {
		return nil, fmt.Errorf("object: %w", err)
	}
	return &Object{c}, nil
}

// Document is the root of a hypermedia response. It carries the address it
// was retrieved from and a human-readable title.
type Document struct {
	contents
	origin string
	title  string
}

func (*Document) isValue() {}

// NewDocument builds a Document, recursively coercing the given content.
// Origin and title default to the empty string.
func NewDocument(origin, title string, content map[string]any) (*Document, error) {
	c, err := newContents(content)
	if err != nil {
		return nil, fmt.Errorf("document: %w", err)
	}
	return &Document{contents: c, origin: origin, title: title}, nil
}

// Origin returns the address the document was retrieved from.
func (d *Document) Origin() string {
	return d.origin
}

// Title returns the document title.
func (d *Document) Title() string {
	return d.title
}

// Error is a failure reported by the service: a title plus a content mapping.
type Error struct {
	contents
	title string
}

func (*Error) isValue() {}

// NewError builds an Error, recursively coercing the given content.
func NewError(title string, content map[string]any) (*Error, error) {
	c, err := newContents(content)
	if err != nil {
		return nil, fmt.Errorf("error document: %w", err)
	}
	return &Error{contents: c, title: title}, nil
}

// Title returns the error title.
func (e *Error) Title() string {
	return e.title
}
