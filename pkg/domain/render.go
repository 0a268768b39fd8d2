package domain

import (
	"strconv"
	"strings"
)

// The human-readable form indents four spaces per nesting level. Data keys
// render first in sorted order, then link keys in sorted order as call-style
// summaries. Objects wrap their body in braces; Documents and Errors use an
// angle-bracket header line instead and are never brace-wrapped.

const indentUnit = "    "

func (d *Document) String() string {
	header := angleHeader("Document", d.title, &d.origin)
	if d.Len() == 0 {
		return header
	}
	return header + "\n" + renderBody(&d.contents, 1)
}

func (o *Object) String() string {
	if o.Len() == 0 {
		return "{}"
	}
	return "{\n" + renderBody(&o.contents, 1) + "\n}"
}

func (e *Error) String() string {
	header := angleHeader("Error", e.title, nil)
	if e.Len() == 0 {
		return header
	}
	return header + "\n" + renderBody(&e.contents, 1)
}

// A bare Action rendered without a container context uses the literal name
// "link" in place of a key name.
func (a *Action) String() string {
	return actionSummary("link", a)
}

func (s String) String() string {
	return quoteString(string(s))
}

func (a Array) String() string {
	return renderValue(a, 0, 0)
}

func angleHeader(typeName, title string, origin *string) string {
	name := title
	if name == "" {
		name = typeName
	}
	if origin == nil {
		return "<" + name + ">"
	}
	return "<" + name + " " + quoteString(*origin) + ">"
}

func renderBody(c *contents, indent int) string {
	pad := strings.Repeat(indentUnit, indent)
	var lines []string
	for _, key := range c.dataKeys() {
		prefix := pad + key + ": "
		lines = append(lines, prefix+renderValue(c.values[key], indent, len(prefix)))
	}
	for _, key := range c.linkKeys() {
		lines = append(lines, pad+actionSummary(key, c.values[key].(*Action)))
	}
	return strings.Join(lines, "\n")
}

// renderValue renders v at the given indent level; col is the column the
// value starts at, used to align continuation lines of multiline strings
// under the first character after the opening quote.
func renderValue(v Value, indent, col int) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case String:
		return quoteStringAt(string(t), col)
	case Integer:
		return strconv.FormatInt(int64(t), 10)
	case Number:
		return strconv.FormatFloat(float64(t), 'g', -1, 64)
	case Boolean:
		return strconv.FormatBool(bool(t))
	case Array:
		items := make([]string, len(t.items))
		for i, item := range t.items {
			items[i] = renderValue(item, indent, col)
		}
		return "[" + strings.Join(items, ", ") + "]"
	case *Object:
		if t.Len() == 0 {
			return "{}"
		}
		return "{\n" + renderBody(&t.contents, indent+1) + "\n" + strings.Repeat(indentUnit, indent) + "}"
	case *Document:
		header := angleHeader("Document", t.title, &t.origin)
		if t.Len() == 0 {
			return header
		}
		return header + "\n" + renderBody(&t.contents, indent+1)
	case *Error:
		header := angleHeader("Error", t.title, nil)
		if t.Len() == 0 {
			return header
		}
		return header + "\n" + renderBody(&t.contents, indent+1)
	case *Action:
		return actionSummary("link", t)
	}
	return ""
}

func actionSummary(name string, a *Action) string {
	var segments []string
	var required, optional []string
	for _, f := range a.fields {
		if f.Required {
			required = append(required, f.Name)
		} else {
			optional = append(optional, f.Name)
		}
	}
	if len(required) > 0 {
		segments = append(segments, strings.Join(required, ", "))
	}
	if len(optional) > 0 {
		segments = append(segments, "["+strings.Join(optional, ", ")+"]")
	}
	return name + "(" + strings.Join(segments, ", ") + ")"
}

// quoteString renders s double-quoted with backslash and quote escaping.
// Newlines stay literal.
func quoteString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}

// quoteStringAt is quoteString with continuation lines re-indented so they
// align under the first character following the opening quote.
func quoteStringAt(s string, col int) string {
	quoted := quoteString(s)
	if !strings.Contains(quoted, "\n") {
		return quoted
	}
	return strings.ReplaceAll(quoted, "\n", "\n"+strings.Repeat(" ", col+1))
}
