package gemini

import (
	"encoding/json"
	"fmt"
)

// Schema describes the shape of a structured model response, in the
// responseSchema format the generateContent API understands.
type Schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

const (
	TypeObject = "OBJECT"
	TypeArray  = "ARRAY"
	TypeString = "STRING"
)

// String returns a STRING schema with the given field description.
func String(desc string) *Schema {
	return &Schema{Type: TypeString, Description: desc}
}

// Object returns an OBJECT schema where every property is required.
func Object(props map[string]*Schema) *Schema {
	required := make([]string, 0, len(props))
	for name := range props {
		required = append(required, name)
	}
	return &Schema{Type: TypeObject, Properties: props, Required: required}
}

// Array returns an ARRAY schema with the given element schema.
func Array(items *Schema, desc string) *Schema {
	return &Schema{Type: TypeArray, Items: items, Description: desc}
}

// Validate checks a raw JSON payload against the schema.
func (s *Schema) Validate(raw json.RawMessage) error {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	return s.validate(v, "$")
}

func (s *Schema) validate(v any, path string) error {
	switch s.Type {
	case TypeObject:
		obj, ok := v.(map[string]any)
		if !ok {
			return fmt.Errorf("%s: expected object, got %T", path, v)
		}
		for _, name := range s.Required {
			if _, present := obj[name]; !present {
				return fmt.Errorf("%s: missing required field %q", path, name)
			}
		}
		for name, val := range obj {
			prop, known := s.Properties[name]
			if !known {
				// Extra fields from the model are tolerated.
				continue
			}
			if err := prop.validate(val, path+"."+name); err != nil {
				return err
			}
		}
		return nil
	case TypeArray:
		arr, ok := v.([]any)
		if !ok {
			return fmt.Errorf("%s: expected array, got %T", path, v)
		}
		if s.Items != nil {
			for i, item := range arr {
				if err := s.Items.validate(item, fmt.Sprintf("%s[%d]", path, i)); err != nil {
					return err
				}
			}
		}
		return nil
	case TypeString:
		if _, ok := v.(string); !ok {
			return fmt.Errorf("%s: expected string, got %T", path, v)
		}
		return nil
	default:
		return fmt.Errorf("%s: unsupported schema type %q", path, s.Type)
	}
}
