package corejson

import (
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

// decodeSchema turns a field's wire schema into an openapi3.Schema. Two
// shapes occur in the wild: the legacy coreschema form tagged with "_type",
// and plain JSON Schema objects.
func decodeSchema(raw map[string]any) (*openapi3.Schema, error) {
	if typeTag, ok := raw["_type"].(string); ok {
		schema := schemaForType(typeTag)
		if title, ok := raw["title"].(string); ok {
			schema.Title = title
		}
		if description, ok := raw["description"].(string); ok {
			schema.Description = description
		}
		return schema, nil
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("schema: %w", err)
	}
	var schema openapi3.Schema
	if err := schema.UnmarshalJSON(data); err != nil {
		return nil, fmt.Errorf("schema: %w", err)
	}
	return &schema, nil
}

func schemaForType(typeTag string) *openapi3.Schema {
	switch typeTag {
	case "string":
		return openapi3.NewStringSchema()
	case "integer":
		return openapi3.NewIntegerSchema()
	case "number":
		return openapi3.NewFloat64Schema()
	case "boolean":
		return openapi3.NewBoolSchema()
	case "object":
		return openapi3.NewObjectSchema()
	case "array":
		return openapi3.NewArraySchema()
	default:
		return openapi3.NewSchema()
	}
}
