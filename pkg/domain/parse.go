package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reconstructs a value from its canonical representation, routing
// every constructor-shaped term through the public constructors. It is the
// inverse of Repr.
func Parse(input string) (Value, error) {
	p := &reprParser{src: input}
	raw, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, fmt.Errorf("parse: trailing input at offset %d", p.pos)
	}
	if f, ok := raw.(Field); ok {
		return nil, fmt.Errorf("parse: field %q outside an action", f.Name)
	}
	return coerceValue(raw)
}

type reprParser struct {
	src string
	pos int
}

func (p *reprParser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t' || p.src[p.pos] == '\n') {
		p.pos++
	}
}

func (p *reprParser) peek() (byte, bool) {
	if p.pos >= len(p.src) {
		return 0, false
	}
	return p.src[p.pos], true
}

func (p *reprParser) expect(ch byte) error {
	p.skipSpace()
	if c, ok := p.peek(); !ok || c != ch {
		return fmt.Errorf("parse: expected %q at offset %d", string(ch), p.pos)
	}
	p.pos++
	return nil
}

// parseValue returns a raw value: a Go primitive, map, slice, a constructed
// container, or a Field (valid only inside an action's field list).
func (p *reprParser) parseValue() (any, error) {
	p.skipSpace()
	c, ok := p.peek()
	if !ok {
		return nil, fmt.Errorf("parse: unexpected end of input")
	}
	switch {
	case c == '"':
		return p.parseString()
	case c == '{':
		return p.parseMap()
	case c == '[':
		return p.parseList()
	case c == '-' || (c >= '0' && c <= '9'):
		return p.parseNumber()
	case isIdentStart(c):
		return p.parseIdent()
	default:
		return nil, fmt.Errorf("parse: unexpected %q at offset %d", string(c), p.pos)
	}
}

func (p *reprParser) parseString() (string, error) {
	start := p.pos
	p.pos++ // opening quote
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case '\\':
			p.pos += 2
		case '"':
			p.pos++
			return strconv.Unquote(p.src[start:p.pos])
		default:
			p.pos++
		}
	}
	return "", fmt.Errorf("parse: unterminated string at offset %d", start)
}

func (p *reprParser) parseNumber() (any, error) {
	start := p.pos
	for p.pos < len(p.src) && strings.ContainsRune("+-0123456789.eE", rune(p.src[p.pos])) {
		p.pos++
	}
	text := p.src[start:p.pos]
	if strings.ContainsAny(text, ".eE") {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("parse: malformed number %q", text)
		}
		return f, nil
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse: malformed number %q", text)
	}
	return n, nil
}

func (p *reprParser) parseMap() (map[string]any, error) {
	if err := p.expect('{'); err != nil {
		return nil, err
	}
	out := map[string]any{}
	p.skipSpace()
	if c, _ := p.peek(); c == '}' {
		p.pos++
		return out, nil
	}
	for {
		p.skipSpace()
		if c, ok := p.peek(); !ok || c != '"' {
			return nil, fmt.Errorf("parse: expected map key at offset %d", p.pos)
		}
		key, err := p.parseString()
		if err != nil {
			return nil, err
		}
		if err := p.expect(':'); err != nil {
			return nil, err
		}
		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		out[key] = value
		p.skipSpace()
		c, ok := p.peek()
		if !ok {
			return nil, fmt.Errorf("parse: unterminated map")
		}
		if c == ',' {
			p.pos++
			continue
		}
		if c == '}' {
			p.pos++
			return out, nil
		}
		return nil, fmt.Errorf("parse: unexpected %q in map at offset %d", string(c), p.pos)
	}
}

func (p *reprParser) parseList() ([]any, error) {
	if err := p.expect('['); err != nil {
		return nil, err
	}
	var out []any
	p.skipSpace()
	if c, _ := p.peek(); c == ']' {
		p.pos++
		return out, nil
	}
	for {
		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		out = append(out, value)
		p.skipSpace()
		c, ok := p.peek()
		if !ok {
			return nil, fmt.Errorf("parse: unterminated list")
		}
		if c == ',' {
			p.pos++
			continue
		}
		if c == ']' {
			p.pos++
			return out, nil
		}
		return nil, fmt.Errorf("parse: unexpected %q in list at offset %d", string(c), p.pos)
	}
}

func (p *reprParser) parseIdent() (any, error) {
	start := p.pos
	for p.pos < len(p.src) && isIdentPart(p.src[p.pos]) {
		p.pos++
	}
	name := p.src[start:p.pos]
	switch name {
	case "null":
		return nil, nil
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	args, err := p.parseArgs()
	if err != nil {
		return nil, err
	}
	return buildValue(name, args)
}

func (p *reprParser) parseArgs() (map[string]any, error) {
	if err := p.expect('('); err != nil {
		return nil, err
	}
	out := map[string]any{}
	p.skipSpace()
	if c, _ := p.peek(); c == ')' {
		p.pos++
		return out, nil
	}
	for {
		p.skipSpace()
		start := p.pos
		for p.pos < len(p.src) && isIdentPart(p.src[p.pos]) {
			p.pos++
		}
		if p.pos == start {
			return nil, fmt.Errorf("parse: expected argument name at offset %d", p.pos)
		}
		name := p.src[start:p.pos]
		if err := p.expect('='); err != nil {
			return nil, err
		}
		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		out[name] = value
		p.skipSpace()
		c, ok := p.peek()
		if !ok {
			return nil, fmt.Errorf("parse: unterminated arguments")
		}
		if c == ',' {
			p.pos++
			continue
		}
		if c == ')' {
			p.pos++
			return out, nil
		}
		return nil, fmt.Errorf("parse: unexpected %q in arguments at offset %d", string(c), p.pos)
	}
}

func buildValue(name string, args map[string]any) (any, error) {
	switch name {
	case "Document":
		content, err := argMap(args, "content")
		if err != nil {
			return nil, err
		}
		origin, err := argString(args, "origin")
		if err != nil {
			return nil, err
		}
		title, err := argString(args, "title")
		if err != nil {
			return nil, err
		}
		return NewDocument(origin, title, content)
	case "Object":
		content, err := argMap(args, "content")
		if err != nil {
			return nil, err
		}
		return NewObject(content)
	case "Error":
		content, err := argMap(args, "content")
		if err != nil {
			return nil, err
		}
		title, err := argString(args, "title")
		if err != nil {
			return nil, err
		}
		return NewError(title, content)
	case "Action":
		target, err := argString(args, "target")
		if err != nil {
			return nil, err
		}
		method, err := argString(args, "method")
		if err != nil {
			return nil, err
		}
		fields, _ := args["fields"].([]any)
		var opts []ActionOption
		if encoding, err := argString(args, "encoding"); err != nil {
			return nil, err
		} else if encoding != "" {
			opts = append(opts, WithEncoding(encoding))
		}
		if transform, err := argString(args, "transform"); err != nil {
			return nil, err
		} else if transform != "" {
			opts = append(opts, WithTransform(transform))
		}
		if description, err := argString(args, "description"); err != nil {
			return nil, err
		} else if description != "" {
			opts = append(opts, WithDescription(description))
		}
		return NewAction(target, method, fields, opts...)
	case "Field":
		fieldName, err := argString(args, "name")
		if err != nil {
			return nil, err
		}
		location, err := argString(args, "location")
		if err != nil {
			return nil, err
		}
		required, _ := args["required"].(bool)
		return Field{Name: fieldName, Required: required, Location: location}, nil
	default:
		return nil, fmt.Errorf("parse: unknown constructor %q", name)
	}
}

func argString(args map[string]any, name string) (string, error) {
	raw, ok := args[name]
	if !ok {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("parse: argument %q: %w: expected string, got %T", name, ErrTypeMismatch, raw)
	}
	return s, nil
}

func argMap(args map[string]any, name string) (map[string]any, error) {
	raw, ok := args[name]
	if !ok {
		return nil, nil
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("parse: argument %q: %w: expected mapping, got %T", name, ErrTypeMismatch, raw)
	}
	return m, nil
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
