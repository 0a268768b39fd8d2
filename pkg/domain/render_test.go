package domain

import (
	"strings"
	"testing"
)

// dedent strips the common leading indentation of a multiline literal so
// expected output can be written inline.
func dedent(s string) string {
	lines := strings.Split(s, "\n")
	if len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	if len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	prefix := lines[0][:len(lines[0])-len(strings.TrimLeft(lines[0], " \t"))]
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, prefix)
	}
	return strings.Join(lines, "\n")
}

func TestDocumentString(t *testing.T) {
	doc := exampleDocument(t)

	want := dedent(`
		<Example "http://example.org">
		    dict: {
		        key: "value"
		    }
		    integer: 123
		    nested: {
		        child()
		    }
		    link(required, [optional])
	`)
	if got := doc.String(); got != want {
		t.Errorf("String() =\n%s\nwant:\n%s", got, want)
	}
}

func TestNewlineString(t *testing.T) {
	doc, err := NewDocument("", "", map[string]any{"foo": "1\n2"})
	if err != nil {
		t.Fatalf("NewDocument() error = %v", err)
	}

	want := dedent(`
		<Document "">
		    foo: "1
		          2"
	`)
	if got := doc.String(); got != want {
		t.Errorf("String() =\n%s\nwant:\n%s", got, want)
	}
}

func TestObjectString(t *testing.T) {
	obj, err := NewObject(map[string]any{"key": "value", "nested": map[string]any{"abc": 123}})
	if err != nil {
		t.Fatalf("NewObject() error = %v", err)
	}

	want := dedent(`
		{
		    key: "value"
		    nested: {
		        abc: 123
		    }
		}
	`)
	if got := obj.String(); got != want {
		t.Errorf("String() =\n%s\nwant:\n%s", got, want)
	}
}

func TestActionString(t *testing.T) {
	link, err := NewAction("/", "post", []any{Field{Name: "required", Required: true}, "optional"})
	if err != nil {
		t.Fatalf("NewAction() error = %v", err)
	}
	if got := link.String(); got != "link(required, [optional])" {
		t.Errorf("String() = %q, want %q", got, "link(required, [optional])")
	}

	bare, err := NewAction("/123", "", nil)
	if err != nil {
		t.Fatalf("NewAction() error = %v", err)
	}
	if got := bare.String(); got != "link()" {
		t.Errorf("String() = %q, want %q", got, "link()")
	}
}

func TestErrorString(t *testing.T) {
	errDoc, err := NewError("", map[string]any{"messages": []any{"failed"}})
	if err != nil {
		t.Fatalf("NewError() error = %v", err)
	}

	want := dedent(`
		<Error>
		    messages: ["failed"]
	`)
	if got := errDoc.String(); got != want {
		t.Errorf("String() =\n%s\nwant:\n%s", got, want)
	}
}

func TestNestedDocumentsRenderHeadersInline(t *testing.T) {
	full, _ := NewDocument("http://example.com/123", "Full", nil)
	path, _ := NewDocument("http://example.org/123", "Path", nil)
	none, _ := NewDocument("http://example.org/", "None", nil)
	doc, err := NewDocument("http://example.org/", "Example", map[string]any{
		"a": full,
		"b": path,
		"c": none,
	})
	if err != nil {
		t.Fatalf("NewDocument() error = %v", err)
	}

	want := dedent(`
		<Example "http://example.org/">
		    a: <Full "http://example.com/123">
		    b: <Path "http://example.org/123">
		    c: <None "http://example.org/">
	`)
	if got := doc.String(); got != want {
		t.Errorf("String() =\n%s\nwant:\n%s", got, want)
	}
}

func TestNestedDocumentWithContentExpands(t *testing.T) {
	inner, _ := NewDocument("http://example.org/child", "Child", map[string]any{"count": 1})
	doc, err := NewDocument("http://example.org/", "Parent", map[string]any{"inner": inner})
	if err != nil {
		t.Fatalf("NewDocument() error = %v", err)
	}

	want := dedent(`
		<Parent "http://example.org/">
		    inner: <Child "http://example.org/child">
		        count: 1
	`)
	if got := doc.String(); got != want {
		t.Errorf("String() =\n%s\nwant:\n%s", got, want)
	}
}

func TestEmptyContainerStrings(t *testing.T) {
	doc, _ := NewDocument("", "", nil)
	if got := doc.String(); got != `<Document "">` {
		t.Errorf("String() = %q", got)
	}

	obj, _ := NewObject(nil)
	if got := obj.String(); got != "{}" {
		t.Errorf("String() = %q", got)
	}

	errDoc, _ := NewError("Gone Wrong", nil)
	if got := errDoc.String(); got != "<Gone Wrong>" {
		t.Errorf("String() = %q", got)
	}
}
