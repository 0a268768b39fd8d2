package domain

import (
	"errors"
	"sort"
	"testing"
)

func exampleDocument(t *testing.T) *Document {
	t.Helper()
	link, err := NewAction("/", "post", []any{
		Field{Name: "required", Required: true, Location: "path"},
		"optional",
	})
	if err != nil {
		t.Fatalf("NewAction() error = %v", err)
	}
	child, err := NewAction("/123", "", nil)
	if err != nil {
		t.Fatalf("NewAction() error = %v", err)
	}
	doc, err := NewDocument("http://example.org", "Example", map[string]any{
		"integer": 123,
		"dict":    map[string]any{"key": "value"},
		"link":    link,
		"nested":  map[string]any{"child": child},
	})
	if err != nil {
		t.Fatalf("NewDocument() error = %v", err)
	}
	return doc
}

func TestDictionariesCoercedToObjects(t *testing.T) {
	doc := exampleDocument(t)

	v, err := doc.Get("dict")
	if err != nil {
		t.Fatalf("Get(dict) error = %v", err)
	}
	if _, ok := v.(*Object); !ok {
		t.Errorf("Get(dict) = %T, want *Object", v)
	}
}

func TestCoercion(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string", "hello", "string"},
		{"bool", true, "boolean"},
		{"int", 42, "integer"},
		{"int64", int64(42), "integer"},
		{"float", 1.5, "number"},
		{"nil", nil, "null"},
		{"map", map[string]any{"a": 1}, "object"},
		{"slice", []any{1, "two"}, "array"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := coerceValue(tt.value)
			if err != nil {
				t.Fatalf("coerceValue(%v) error = %v", tt.value, err)
			}
			if got := kindName(v); got != tt.want {
				t.Errorf("coerceValue(%v) kind = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestCoercionRejectsUnsupportedTypes(t *testing.T) {
	tests := []struct {
		name    string
		content map[string]any
	}{
		{"channel value", map[string]any{"ch": make(chan int)}},
		{"struct value", map[string]any{"v": struct{ X int }{1}}},
		{"nested bad value", map[string]any{"outer": map[string]any{"inner": make(chan int)}}},
		{"bad sequence element", map[string]any{"seq": []any{1, make(chan int)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewObject(tt.content); !errors.Is(err, ErrTypeMismatch) {
				t.Errorf("NewObject() error = %v, want ErrTypeMismatch", err)
			}
			if _, err := NewDocument("", "", tt.content); !errors.Is(err, ErrTypeMismatch) {
				t.Errorf("NewDocument() error = %v, want ErrTypeMismatch", err)
			}
			if _, err := NewError("", tt.content); !errors.Is(err, ErrTypeMismatch) {
				t.Errorf("NewError() error = %v, want ErrTypeMismatch", err)
			}
		})
	}
}

func TestActionFieldCoercion(t *testing.T) {
	a, err := NewAction("/users/", "post", []any{"email", Field{Name: "role", Required: true}})
	if err != nil {
		t.Fatalf("NewAction() error = %v", err)
	}

	fields := a.Fields()
	if len(fields) != 2 {
		t.Fatalf("Fields() len = %d, want 2", len(fields))
	}
	if fields[0].Name != "email" || fields[0].Required {
		t.Errorf("Fields()[0] = %+v, want optional email", fields[0])
	}
	if fields[1].Name != "role" || !fields[1].Required {
		t.Errorf("Fields()[1] = %+v, want required role", fields[1])
	}
}

func TestActionFieldItemsMustBeValid(t *testing.T) {
	if _, err := NewAction("/", "", []any{123}); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("NewAction(fields=[123]) error = %v, want ErrTypeMismatch", err)
	}
}

func TestActionMethodDefaults(t *testing.T) {
	a, err := NewAction("/", "", nil)
	if err != nil {
		t.Fatalf("NewAction() error = %v", err)
	}
	if a.Method() != "get" {
		t.Errorf("Method() = %q, want %q", a.Method(), "get")
	}
}

func TestGetMissingKey(t *testing.T) {
	doc := exampleDocument(t)

	if _, err := doc.Get("missing"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrKeyNotFound", err)
	}
}

func TestLen(t *testing.T) {
	doc := exampleDocument(t)
	if doc.Len() != 4 {
		t.Errorf("Len() = %d, want 4", doc.Len())
	}

	obj, err := NewObject(map[string]any{"key": "value", "nested": map[string]any{"abc": 123}})
	if err != nil {
		t.Fatalf("NewObject() error = %v", err)
	}
	if obj.Len() != 2 {
		t.Errorf("Len() = %d, want 2", obj.Len())
	}
}

func TestDataAndLinksPartitions(t *testing.T) {
	mustAction := func() *Action {
		a, err := NewAction("", "", nil)
		if err != nil {
			t.Fatalf("NewAction() error = %v", err)
		}
		return a
	}

	doc, err := NewDocument("", "", map[string]any{
		"a": 1, "b": 2, "c": mustAction(), "d": mustAction(),
	})
	if err != nil {
		t.Fatalf("NewDocument() error = %v", err)
	}

	data := doc.Data().Keys()
	sort.Strings(data)
	if len(data) != 2 || data[0] != "a" || data[1] != "b" {
		t.Errorf("Data().Keys() = %v, want [a b]", data)
	}

	links := doc.Links().Keys()
	sort.Strings(links)
	if len(links) != 2 || links[0] != "c" || links[1] != "d" {
		t.Errorf("Links().Keys() = %v, want [c d]", links)
	}
}

func TestDocumentEquality(t *testing.T) {
	doc := exampleDocument(t)

	link, _ := NewAction("/", "post", []any{
		Field{Name: "required", Required: true, Location: "path"},
		"optional",
	})
	child, _ := NewAction("/123", "", nil)

	if !doc.Equals(map[string]any{
		"integer": 123,
		"dict":    map[string]any{"key": "value"},
		"link":    link,
		"nested":  map[string]any{"child": child},
	}) {
		t.Error("document should equal an equivalent raw mapping")
	}

	if doc.Equals(map[string]any{"integer": 123}) {
		t.Error("document should not equal a mapping with different content")
	}
}

func TestObjectEquality(t *testing.T) {
	obj, err := NewObject(map[string]any{"key": "value", "nested": map[string]any{"abc": 123}})
	if err != nil {
		t.Fatalf("NewObject() error = %v", err)
	}

	if !obj.Equals(map[string]any{"key": "value", "nested": map[string]any{"abc": 123}}) {
		t.Error("object should equal an equivalent raw mapping")
	}
	if obj.Equals(map[string]any{"key": "value"}) {
		t.Error("object should not equal a smaller mapping")
	}
}

func TestDocumentIdentityEquality(t *testing.T) {
	a, _ := NewDocument("http://example.org", "Example", map[string]any{"x": 1})
	b, _ := NewDocument("http://example.org", "Example", map[string]any{"x": 1})
	c, _ := NewDocument("http://example.org", "Other", map[string]any{"x": 1})

	if !a.Equals(b) {
		t.Error("documents with equal identity and content should be equal")
	}
	if a.Equals(c) {
		t.Error("documents with different titles should not be equal")
	}
}

func TestActionEquality(t *testing.T) {
	a, _ := NewAction("/", "post", []any{"email"})
	b, _ := NewAction("/", "post", []any{"email"}, WithDescription("create a thing"))
	c, _ := NewAction("/", "put", []any{"email"})

	if !a.Equals(b) {
		t.Error("description must not participate in action equality")
	}
	if a.Equals(c) {
		t.Error("method must participate in action equality")
	}
}

func TestEqualCrossKind(t *testing.T) {
	doc, _ := NewDocument("", "", map[string]any{"a": 1, "b": map[string]any{"c": 2}})

	if !Equal(doc, map[string]any{"a": 1, "b": map[string]any{"c": 2}}) {
		t.Error("Equal(document, raw) should hold for equivalent content")
	}
	if !Equal(map[string]any{"a": 1}, map[string]any{"a": 1}) {
		t.Error("Equal(raw, raw) should hold")
	}

	errDoc, _ := NewError("", map[string]any{"a": 1})
	if Equal(errDoc, map[string]any{"a": 1}) {
		t.Error("errors must not equal raw mappings")
	}
}
