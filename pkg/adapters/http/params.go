package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/yosida95/uritemplate/v3"

	"github.com/aretw0/hyperdoc/pkg/domain"
)

// placedParams holds caller parameters bucketed by where they travel in the
// request.
type placedParams struct {
	path  map[string]any
	query map[string]any
	form  map[string]any
	body  any
	// hasBody distinguishes an explicit nil body value from no body at all.
	hasBody bool
}

// placeParams validates params against the action's fields and buckets each
// one by its field location. Fields without a location default to the query
// string for GET and DELETE and to the form otherwise.
func placeParams(action *domain.Action, params map[string]any) (*placedParams, error) {
	placed := &placedParams{
		path:  map[string]any{},
		query: map[string]any{},
		form:  map[string]any{},
	}

	fields := action.Fields()
	byName := make(map[string]domain.Field, len(fields))
	for _, field := range fields {
		byName[field.Name] = field
	}

	var unknown []string
	for name := range params {
		if _, ok := byName[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("%w: unknown fields %s", ErrParameter, strings.Join(unknown, ", "))
	}

	var missing []string
	for _, field := range fields {
		if field.Required {
			if _, ok := params[field.Name]; !ok {
				missing = append(missing, field.Name)
			}
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing required fields %s", ErrParameter, strings.Join(missing, ", "))
	}

	queryDefault := isQueryMethod(action.Method())
	for name, value := range params {
		field := byName[name]
		location := field.Location
		if location == "" {
			if queryDefault {
				location = "query"
			} else {
				location = "form"
			}
		}
		switch location {
		case "path":
			placed.path[name] = value
		case "query":
			placed.query[name] = value
		case "form":
			placed.form[name] = value
		case "body":
			placed.body = value
			placed.hasBody = true
		default:
			return nil, fmt.Errorf("%w: field %q has unknown location %q", ErrParameter, name, location)
		}
	}
	return placed, nil
}

func isQueryMethod(method string) bool {
	switch strings.ToUpper(method) {
	case http.MethodGet, http.MethodDelete, "":
		return true
	}
	return false
}

// expandTarget substitutes path parameters into the action URL. Targets use
// URI template syntax ({name} placeholders).
func expandTarget(target string, pathParams map[string]any) (string, error) {
	if len(pathParams) == 0 && !strings.Contains(target, "{") {
		return target, nil
	}
	template, err := uritemplate.New(target)
	if err != nil {
		return "", fmt.Errorf("http transport: invalid URI template %q: %w", target, err)
	}
	values := uritemplate.Values{}
	for name, value := range pathParams {
		values[name] = uritemplate.String(fmt.Sprint(value))
	}
	expanded, err := template.Expand(values)
	if err != nil {
		return "", fmt.Errorf("http transport: expanding %q: %w", target, err)
	}
	return expanded, nil
}

// encodeBody renders form and body parameters into the request body for the
// action's encoding. It returns a nil body when there is nothing to send.
func encodeBody(encoding string, placed *placedParams) ([]byte, string, error) {
	if !placed.hasBody && len(placed.form) == 0 {
		return nil, "", nil
	}
	if encoding == "" {
		encoding = "application/json"
	}
	switch encoding {
	case "application/json":
		payload := any(placed.form)
		if placed.hasBody {
			payload = placed.body
		}
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %v", ErrParameter, err)
		}
		return data, "application/json", nil

	case "application/x-www-form-urlencoded":
		if placed.hasBody {
			return nil, "", fmt.Errorf("%w: %q does not support a body field", ErrUnsupportedEncoding, encoding)
		}
		values := url.Values{}
		for name, value := range placed.form {
			values.Set(name, fmt.Sprint(value))
		}
		return []byte(values.Encode()), "application/x-www-form-urlencoded", nil

	case "multipart/form-data":
		if placed.hasBody {
			return nil, "", fmt.Errorf("%w: %q does not support a body field", ErrUnsupportedEncoding, encoding)
		}
		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		names := make([]string, 0, len(placed.form))
		for name := range placed.form {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if err := writer.WriteField(name, fmt.Sprint(placed.form[name])); err != nil {
				return nil, "", fmt.Errorf("http transport: %w", err)
			}
		}
		if err := writer.Close(); err != nil {
			return nil, "", fmt.Errorf("http transport: %w", err)
		}
		return buf.Bytes(), writer.FormDataContentType(), nil
	}
	return nil, "", fmt.Errorf("%w: %q", ErrUnsupportedEncoding, encoding)
}
