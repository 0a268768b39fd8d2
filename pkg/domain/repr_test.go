package domain

import (
	"testing"
)

func TestDocumentRepr(t *testing.T) {
	doc := exampleDocument(t)

	want := `Document(origin="http://example.org", title="Example", content={` +
		`"dict": {"key": "value"}, ` +
		`"integer": 123, ` +
		`"link": Action(target="/", method="post", fields=[Field(name="required", required=true, location="path"), "optional"]), ` +
		`"nested": {"child": Action(target="/123")}})`
	if got := doc.Repr(); got != want {
		t.Errorf("Repr() =\n%s\nwant:\n%s", got, want)
	}
}

func TestObjectRepr(t *testing.T) {
	obj, err := NewObject(map[string]any{"key": "value", "nested": map[string]any{"abc": 123}})
	if err != nil {
		t.Fatalf("NewObject() error = %v", err)
	}

	want := `Object(content={"key": "value", "nested": {"abc": 123}})`
	if got := obj.Repr(); got != want {
		t.Errorf("Repr() = %s, want %s", got, want)
	}
}

func TestActionRepr(t *testing.T) {
	link, err := NewAction("/", "post", []any{Field{Name: "required", Required: true}, "optional"})
	if err != nil {
		t.Fatalf("NewAction() error = %v", err)
	}

	want := `Action(target="/", method="post", fields=[Field(name="required", required=true), "optional"])`
	if got := link.Repr(); got != want {
		t.Errorf("Repr() = %s, want %s", got, want)
	}
}

func TestErrorRepr(t *testing.T) {
	errDoc, err := NewError("", map[string]any{"messages": []any{"failed"}})
	if err != nil {
		t.Fatalf("NewError() error = %v", err)
	}

	want := `Error(content={"messages": ["failed"]})`
	if got := errDoc.Repr(); got != want {
		t.Errorf("Repr() = %s, want %s", got, want)
	}
}

func TestReprRoundTrip(t *testing.T) {
	link, _ := NewAction("/", "post", []any{Field{Name: "required", Required: true}, "optional"})
	errDoc, _ := NewError("Overloaded", map[string]any{"messages": []any{"failed"}})
	obj, _ := NewObject(map[string]any{"key": "value", "nested": map[string]any{"abc": 123}})

	values := []Value{
		exampleDocument(t),
		obj,
		link,
		errDoc,
	}

	for _, v := range values {
		repr := Repr(v)
		parsed, err := Parse(repr)
		if err != nil {
			t.Fatalf("Parse(%s) error = %v", repr, err)
		}
		if !valueEqual(v, parsed) {
			t.Errorf("Parse(Repr(x)) != x for %s\nparsed: %s", repr, Repr(parsed))
		}
	}
}

func TestParsePrimitives(t *testing.T) {
	tests := []struct {
		input string
		want  Value
	}{
		{`"hello"`, String("hello")},
		{`123`, Integer(123)},
		{`-4`, Integer(-4)},
		{`1.25`, Number(1.25)},
		{`true`, Boolean(true)},
		{`false`, Boolean(false)},
		{`null`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%s) error = %v", tt.input, err)
			}
			if !valueEqual(got, tt.want) {
				t.Errorf("Parse(%s) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseRejectsMalformedInput(t *testing.T) {
	tests := []string{
		`Document(origin=`,
		`Document(origin=123)`,
		`Widget()`,
		`{"a" 1}`,
		`[1, 2`,
		`"unterminated`,
		`Field(name="x")`,
		`Document() trailing`,
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			if _, err := Parse(input); err == nil {
				t.Errorf("Parse(%s) succeeded, want error", input)
			}
		})
	}
}

func TestHash(t *testing.T) {
	a, _ := NewDocument("http://example.org", "Example", map[string]any{"x": 1})
	b, _ := NewDocument("http://example.org", "Example", map[string]any{"x": 1})
	c, _ := NewDocument("http://example.org", "Example", map[string]any{"x": 2})

	if Hash(a) != Hash(b) {
		t.Error("equal documents must hash equally")
	}
	if Hash(a) == Hash(c) {
		t.Error("documents with different content should hash differently")
	}
}
