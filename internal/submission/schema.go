package submission

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/atriumhq/atrium/internal/types"
)

// definitionSchema constrains definition documents accepted from upstream.
// Definitions failing validation never enter shared state.
const definitionSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["id", "name"],
  "properties": {
    "id": {"type": "string", "minLength": 1},
    "name": {"type": "string", "minLength": 1},
    "isDefault": {"type": "boolean"},
    "sections": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "sectionType"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "header": {"type": "string"},
          "sectionType": {"type": "string", "minLength": 1},
          "mandatory": {"type": "boolean"},
          "visibility": {
            "type": "object",
            "properties": {
              "main": {"type": "string"},
              "other": {"type": "string"}
            }
          }
        }
      }
    }
  }
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("definition.json", bytes.NewReader([]byte(definitionSchema))); err != nil {
			compileErr = fmt.Errorf("failed to load definition schema: %w", err)
			return
		}
		compiledSchema, compileErr = compiler.Compile("definition.json")
	})
	return compiledSchema, compileErr
}

// ValidateDefinition checks a definition document against the schema.
func ValidateDefinition(def types.SubmissionDefinition) error {
	s, err := schema()
	if err != nil {
		return err
	}

	raw, err := json.Marshal(def)
	if err != nil {
		return fmt.Errorf("failed to encode definition: %w", err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("failed to decode definition for validation: %w", err)
	}

	if err := s.Validate(doc); err != nil {
		return fmt.Errorf("definition %q does not match schema: %w", def.ID, err)
	}
	return nil
}
