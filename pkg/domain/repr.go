package domain

import (
	"hash/fnv"
	"sort"
	"strconv"
	"strings"
)

// Repr renders the canonical representation of a value. The form is
// constructor-shaped (`Document(origin="...", content={...})`), omits
// arguments equal to their defaults, and sorts every mapping by key so the
// output is deterministic. Parse reverses it: Parse(Repr(v)) is equal to v.
//
// Opaque field schemas are excluded from the canonical form; they are
// attached by codecs and carried on the value, but are not reversible text.
func Repr(v Value) string {
	var b strings.Builder
	writeRepr(&b, v)
	return b.String()
}

// Repr renders the canonical representation of the document.
func (d *Document) Repr() string { return Repr(d) }

// Repr renders the canonical representation of the object.
func (o *Object) Repr() string { return Repr(o) }

// Repr renders the canonical representation of the action.
func (a *Action) Repr() string { return Repr(a) }

// Repr renders the canonical representation of the error.
func (e *Error) Repr() string { return Repr(e) }

// Hash returns a 64-bit digest of the canonical representation. Equal values
// of the same kind hash equally.
func Hash(v Value) uint64 {
	h := fnv.New64a()
	h.Write([]byte(Repr(v)))
	return h.Sum64()
}

func writeRepr(b *strings.Builder, v Value) {
	switch t := v.(type) {
	case nil:
		b.WriteString("null")
	case String:
		b.WriteString(strconv.Quote(string(t)))
	case Integer:
		b.WriteString(strconv.FormatInt(int64(t), 10))
	case Number:
		b.WriteString(strconv.FormatFloat(float64(t), 'g', -1, 64))
	case Boolean:
		b.WriteString(strconv.FormatBool(bool(t)))
	case Array:
		b.WriteByte('[')
		for i, item := range t.items {
			if i > 0 {
				b.WriteString(", ")
			}
			writeRepr(b, item)
		}
		b.WriteByte(']')
	case *Object:
		b.WriteString("Object(")
		if t.Len() > 0 {
			b.WriteString("content=")
			writeContentRepr(b, &t.contents)
		}
		b.WriteByte(')')
	case *Document:
		b.WriteString("Document(")
		var args reprArgs
		if t.origin != "" {
			args.add(b, "origin="+strconv.Quote(t.origin))
		}
		if t.title != "" {
			args.add(b, "title="+strconv.Quote(t.title))
		}
		if t.Len() > 0 {
			args.add(b, "content=")
			writeContentRepr(b, &t.contents)
		}
		b.WriteByte(')')
	case *Error:
		b.WriteString("Error(")
		var args reprArgs
		if t.title != "" {
			args.add(b, "title="+strconv.Quote(t.title))
		}
		if t.Len() > 0 {
			args.add(b, "content=")
			writeContentRepr(b, &t.contents)
		}
		b.WriteByte(')')
	case *Action:
		b.WriteString("Action(")
		var args reprArgs
		if t.target != "" {
			args.add(b, "target="+strconv.Quote(t.target))
		}
		if t.method != DefaultMethod {
			args.add(b, "method="+strconv.Quote(t.method))
		}
		if t.encoding != "" {
			args.add(b, "encoding="+strconv.Quote(t.encoding))
		}
		if t.transform != "" {
			args.add(b, "transform="+strconv.Quote(t.transform))
		}
		if t.description != "" {
			args.add(b, "description="+strconv.Quote(t.description))
		}
		if len(t.fields) > 0 {
			args.add(b, "fields=")
			writeFieldsRepr(b, t.fields)
		}
		b.WriteByte(')')
	}
}

// reprArgs joins constructor arguments with ", " without tracking position
// at every call site.
type reprArgs struct {
	n int
}

func (a *reprArgs) add(b *strings.Builder, s string) {
	if a.n > 0 {
		b.WriteString(", ")
	}
	a.n++
	b.WriteString(s)
}

func writeContentRepr(b *strings.Builder, c *contents) {
	keys := make([]string, len(c.keys))
	copy(keys, c.keys)
	sort.Strings(keys)

	b.WriteByte('{')
	for i, key := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Quote(key))
		b.WriteString(": ")
		value := c.values[key]
		// Nested plain objects render as bare mappings so the content
		// argument reads as one nested literal.
		if obj, ok := value.(*Object); ok {
			writeContentRepr(b, &obj.contents)
		} else {
			writeRepr(b, value)
		}
	}
	b.WriteByte('}')
}

// Fields render in declaration order. A field with only a name set uses the
// bare-string shorthand accepted by NewAction.
func writeFieldsRepr(b *strings.Builder, fields []Field) {
	b.WriteByte('[')
	for i, f := range fields {
		if i > 0 {
			b.WriteString(", ")
		}
		if f.isDefault() {
			b.WriteString(strconv.Quote(f.Name))
			continue
		}
		b.WriteString("Field(name=")
		b.WriteString(strconv.Quote(f.Name))
		if f.Required {
			b.WriteString(", required=true")
		}
		if f.Location != "" {
			b.WriteString(", location=")
			b.WriteString(strconv.Quote(f.Location))
		}
		b.WriteByte(')')
	}
	b.WriteByte(']')
}
