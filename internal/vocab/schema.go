package vocab

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// unitSchemaURL is the resource name the unit schema is compiled under.
const unitSchemaURL = "schema://vocab-unit.json"

// UnitSchema is the JSON schema every unit file must satisfy.
var UnitSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"title":    map[string]any{"type": "string"},
		"language": map[string]any{"type": "string"},
		"words": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"term":    map[string]any{"type": "string"},
					"type":    map[string]any{"type": "string"},
					"meaning": map[string]any{"type": "string"},
					"example": map[string]any{"type": "string"},
				},
				"patternProperties": map[string]any{
					"^meaning_[a-z]{2,3}$": map[string]any{"type": "string"},
				},
				"required": []any{"term"},
			},
		},
	},
	"required": []any{"words"},
}

// SchemaError reports a unit file that does not match UnitSchema.
type SchemaError struct {
	Unit string
	Err  error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("vocab: unit %q: schema validation failed: %v", e.Unit, e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// unitSchema returns the compiled unit schema, compiling it on first use.
func unitSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a plain decoded JSON value, not Go map literals
		// with typed slices.
		b, err := json.Marshal(UnitSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal unit schema: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(b, &def); err != nil {
			compileErr = fmt.Errorf("parse unit schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(unitSchemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(unitSchemaURL)
	})
	if compiledSchema == nil && compileErr == nil {
		compileErr = errors.New("vocab: unit schema unavailable")
	}
	return compiledSchema, compileErr
}
