package gemini

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSchemaValidateObject(t *testing.T) {
	schema := Object(map[string]*Schema{
		"summary": String("the summary"),
	})

	if err := schema.Validate(json.RawMessage(`{"summary":"ok"}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSchemaValidateMissingRequiredField(t *testing.T) {
	schema := Object(map[string]*Schema{
		"summary": String("the summary"),
	})

	err := schema.Validate(json.RawMessage(`{}`))
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	if !strings.Contains(err.Error(), "summary") {
		t.Errorf("error should name the missing field, got %q", err.Error())
	}
}

func TestSchemaValidateToleratesExtraFields(t *testing.T) {
	schema := Object(map[string]*Schema{
		"answer": String("the answer"),
	})

	if err := schema.Validate(json.RawMessage(`{"answer":"yes","confidence":0.9}`)); err != nil {
		t.Fatalf("extra fields should be tolerated, got %v", err)
	}
}

func TestSchemaValidateWrongType(t *testing.T) {
	schema := Object(map[string]*Schema{
		"answer": String("the answer"),
	})

	if err := schema.Validate(json.RawMessage(`{"answer":42}`)); err == nil {
		t.Fatal("expected error for non-string value")
	}
}

func TestSchemaValidateArrayOfStrings(t *testing.T) {
	schema := Object(map[string]*Schema{
		"riskFactors": Array(String("one risk"), "the risks"),
	})

	if err := schema.Validate(json.RawMessage(`{"riskFactors":["a","b"]}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := schema.Validate(json.RawMessage(`{"riskFactors":["a",7]}`)); err == nil {
		t.Fatal("expected error for non-string array element")
	}
	if err := schema.Validate(json.RawMessage(`{"riskFactors":"not an array"}`)); err == nil {
		t.Fatal("expected error for non-array value")
	}
}

func TestSchemaValidateInvalidJSON(t *testing.T) {
	schema := Object(map[string]*Schema{
		"x": String(""),
	})
	if err := schema.Validate(json.RawMessage(`{not json`)); err == nil {
		t.Fatal("expected error for invalid json")
	}
}

func TestObjectRequiresAllProperties(t *testing.T) {
	schema := Object(map[string]*Schema{
		"a": String(""),
		"b": String(""),
	})
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
