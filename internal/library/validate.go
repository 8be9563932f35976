package library

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// manifestSchema is the contract for manifest.json. Unknown document fields
// are rejected so typos surface at load time instead of as silent misses.
const manifestSchema = `{
	"type": "object",
	"required": ["documents"],
	"properties": {
		"documents": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["id", "title", "make", "doc_type", "path"],
				"additionalProperties": false,
				"properties": {
					"id":        {"type": "string", "minLength": 1},
					"title":     {"type": "string", "minLength": 1},
					"make":      {"type": "string", "minLength": 1},
					"model":     {"type": "string"},
					"year_from": {"type": "integer", "minimum": 1900},
					"year_to":   {"type": "integer", "minimum": 1900},
					"doc_type":  {"type": "string", "enum": ["programming", "wiring", "fcc", "manual", "bulletin"]},
					"fcc_id":    {"type": "string"},
					"key_type":  {"type": "string"},
					"path":      {"type": "string", "minLength": 1},
					"tags":      {"type": "array", "items": {"type": "string"}}
				}
			}
		}
	}
}`

var compiledManifestSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("manifest-schema.json", bytes.NewReader([]byte(manifestSchema))); err != nil {
		panic(err)
	}
	return compiler.MustCompile("manifest-schema.json")
}

// validateManifest validates raw manifest bytes against the schema.
func validateManifest(raw []byte) error {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := compiledManifestSchema.Validate(v); err != nil {
		return fmt.Errorf("manifest does not match schema: %w", err)
	}
	return nil
}
