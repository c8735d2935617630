package question

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "questions.schema.json"

const schemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$defs": {
    "question": {
      "type": "object",
      "required": ["id", "question", "options", "correctOption", "points"],
      "properties": {
        "id": { "type": ["string", "integer"] },
        "question": { "type": "string" },
        "options": {
          "type": "array",
          "minItems": 4,
          "maxItems": 4,
          "items": { "type": "string" }
        },
        "correctOption": { "type": "integer", "minimum": 0 },
        "points": { "type": "integer", "minimum": 1 }
      }
    },
    "questions": {
      "type": "array",
      "items": { "$ref": "#/$defs/question" }
    }
  },
  "oneOf": [
    { "$ref": "#/$defs/questions" },
    {
      "type": "object",
      "required": ["questions"],
      "properties": { "questions": { "$ref": "#/$defs/questions" } }
    }
  ]
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func questionSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaURL, strings.NewReader(schemaJSON)); err != nil {
			schemaErr = fmt.Errorf("load schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaURL)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("compile schema: %w", schemaErr)
		}
	})
	return compiledSchema, schemaErr
}

// validateSchema checks a JSON payload against the question schema.
func validateSchema(data []byte) error {
	schema, err := questionSchema()
	if err != nil {
		return err
	}
	var value any
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(&value); err != nil {
		return fmt.Errorf("parse json: %w", err)
	}
	if err := schema.Validate(value); err != nil {
		return fmt.Errorf("question schema validation failed: %w", err)
	}
	return nil
}
