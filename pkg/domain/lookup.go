package domain

import (
	"fmt"
	"strings"
)

// LookupAction walks root along the given key path and returns the Action it
// designates. Keys may be a single string or a sequence whose elements are
// strings (mapping lookups) and integers (sequence indexes).
//
// It returns ErrInvalidKeys when keys has the wrong shape, and ErrLinkLookup
// when the path misses, a step type-mismatches the node it is applied to, or
// the final node is not an Action.
func LookupAction(root Value, keys any) (*Action, error) {
	path, err := normalizeKeys(keys)
	if err != nil {
		return nil, err
	}

	node := root
	for i, key := range path {
		next, err := step(node, key)
		if err != nil {
			return nil, fmt.Errorf("%w: at %s: %v", ErrLinkLookup, pathString(path[:i+1]), err)
		}
		node = next
	}

	action, ok := node.(*Action)
	if !ok {
		return nil, fmt.Errorf("%w: %s does not resolve to an action", ErrLinkLookup, pathString(path))
	}
	return action, nil
}

func step(node Value, key any) (Value, error) {
	switch n := node.(type) {
	case *Document:
		return containerStep(&n.contents, key)
	case *Object:
		return containerStep(&n.contents, key)
	case Array:
		index, ok := key.(int)
		if !ok {
			return nil, fmt.Errorf("string key %q applied to a sequence", key)
		}
		v, ok := n.Index(index)
		if !ok {
			return nil, fmt.Errorf("index %d out of range", index)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("cannot descend into %s", kindName(node))
	}
}

func containerStep(c *contents, key any) (Value, error) {
	name, ok := key.(string)
	if !ok {
		return nil, fmt.Errorf("integer key %v applied to a mapping", key)
	}
	v, ok := c.values[name]
	if !ok {
		return nil, fmt.Errorf("key %q not found", name)
	}
	return v, nil
}

// normalizeKeys validates the keys argument and flattens it to a path of
// strings and ints.
func normalizeKeys(keys any) ([]any, error) {
	switch k := keys.(type) {
	case string:
		return []any{k}, nil
	case []string:
		path := make([]any, len(k))
		for i, s := range k {
			path[i] = s
		}
		return path, nil
	case []any:
		path := make([]any, len(k))
		for i, elem := range k {
			switch e := elem.(type) {
			case string:
				path[i] = e
			case int:
				path[i] = e
			case int64:
				path[i] = int(e)
			case Integer:
				path[i] = int(e)
			case String:
				path[i] = string(e)
			default:
				return nil, fmt.Errorf("%w: element %d must be a string or integer, got %T", ErrInvalidKeys, i, elem)
			}
		}
		return path, nil
	default:
		return nil, fmt.Errorf("%w: expected a string or a sequence of keys, got %T", ErrInvalidKeys, keys)
	}
}

func pathString(path []any) string {
	parts := make([]string, len(path))
	for i, key := range path {
		parts[i] = fmt.Sprint(key)
	}
	return strings.Join(parts, ".")
}

func kindName(v Value) string {
	switch v.(type) {
	case nil:
		return "null"
	case String:
		return "string"
	case Integer:
		return "integer"
	case Number:
		return "number"
	case Boolean:
		return "boolean"
	case Array:
		return "array"
	case *Object:
		return "object"
	case *Document:
		return "document"
	case *Action:
		return "action"
	case *Error:
		return "error"
	}
	return "unknown"
}
