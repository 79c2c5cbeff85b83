package domain

import (
	"encoding/json"
	"fmt"
)

// PropertyType is the reduced type lattice accepted by the LLM function-declaration surface.
type PropertyType string

const (
	PropertyType_String PropertyType = "string"
	PropertyType_Number PropertyType = "number"
	PropertyType_Array  PropertyType = "array"
	// PropertyType_Nested marks a property described only by its nested properties.
	PropertyType_Nested PropertyType = ""
)

// SchemaProperty describes a single normalized parameter.
type SchemaProperty struct {
	Type        PropertyType              `json:"type,omitempty"`
	Description string                    `json:"description,omitempty"`
	Items       *SchemaProperty           `json:"items,omitempty"`
	Properties  map[string]SchemaProperty `json:"properties,omitempty"`
}

// NormalizedSchema is a tool parameter description without a top-level type tag.
type NormalizedSchema struct {
	Properties map[string]SchemaProperty `json:"properties"`
	Required   []string                  `json:"required"`
}

// IsRequired reports whether the named property is required.
func (s NormalizedSchema) IsRequired(name string) bool {
	for _, r := range s.Required {
		if r == name {
			return true
		}
	}
	return false
}

// NormalizeSchema converts an arbitrary JSON-Schema-like value into a NormalizedSchema.
// It never fails: nil, empty or malformed input yields an empty schema.
// NormalizeSchema(NormalizeSchema(s)) equals NormalizeSchema(s).
func NormalizeSchema(schema any) NormalizedSchema {
	out := NormalizedSchema{
		Properties: map[string]SchemaProperty{},
		Required:   []string{},
	}

	raw, ok := asObject(schema)
	if !ok {
		return out
	}

	if props, ok := raw["properties"].(map[string]any); ok {
		for name, prop := range props {
			out.Properties[name] = normalizeProperty(prop)
		}
	}

	var required []any
	switch r := raw["required"].(type) {
	case []any:
		required = r
	case []string:
		for _, name := range r {
			required = append(required, name)
		}
	}
	if len(required) > 0 {
		seen := make(map[string]struct{}, len(required))
		for _, r := range required {
			name, ok := r.(string)
			if !ok {
				continue
			}
			if _, declared := out.Properties[name]; !declared {
				continue
			}
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			out.Required = append(out.Required, name)
		}
	}

	return out
}

func normalizeProperty(prop any) SchemaProperty {
	raw, ok := asObject(prop)
	if !ok {
		return SchemaProperty{Type: PropertyType_String}
	}

	out := SchemaProperty{}
	if desc, ok := raw["description"]; ok && desc != nil {
		if s, ok := desc.(string); ok {
			out.Description = s
		} else {
			out.Description = fmt.Sprint(desc)
		}
	}

	nested, _ := raw["properties"].(map[string]any)
	hasNested := len(nested) > 0

	switch schemaType(raw["type"]) {
	case "string":
		out.Type = PropertyType_String
	case "integer", "number":
		out.Type = PropertyType_Number
	case "boolean":
		out.Type = PropertyType_String
	case "array":
		out.Type = PropertyType_Array
		if items, ok := raw["items"]; ok && items != nil {
			normalized := normalizeProperty(items)
			out.Items = &normalized
		}
	case "object":
		if !hasNested {
			out.Type = PropertyType_String
			break
		}
		out.Properties = normalizeNested(nested)
	case "":
		// An untyped property that carries properties is the normalized form of an object.
		if hasNested {
			out.Properties = normalizeNested(nested)
			break
		}
		out.Type = PropertyType_String
	default:
		out.Type = PropertyType_String
	}

	return out
}

func normalizeNested(nested map[string]any) map[string]SchemaProperty {
	props := make(map[string]SchemaProperty, len(nested))
	for name, p := range nested {
		props[name] = normalizeProperty(p)
	}
	return props
}

// schemaType extracts the declared type, picking the first non-null entry of a type list.
func schemaType(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []any:
		for _, e := range t {
			if s, ok := e.(string); ok && s != "null" {
				return s
			}
		}
	case []string:
		for _, s := range t {
			if s != "null" {
				return s
			}
		}
	}
	return ""
}

// asObject coerces the supported schema representations into a generic JSON object.
func asObject(v any) (map[string]any, bool) {
	switch s := v.(type) {
	case nil:
		return nil, false
	case map[string]any:
		return s, true
	case json.RawMessage:
		return decodeObject(s)
	case []byte:
		return decodeObject(s)
	case NormalizedSchema, *NormalizedSchema, SchemaProperty, *SchemaProperty:
		b, err := json.Marshal(s)
		if err != nil {
			return nil, false
		}
		return decodeObject(b)
	}
	return nil, false
}

func decodeObject(b []byte) (map[string]any, bool) {
	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil || out == nil {
		return nil, false
	}
	return out, true
}
