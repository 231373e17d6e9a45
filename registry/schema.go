package registry

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// GenerateSchema generates the JSON Schema for hook registry documents.
// It reflects the Config struct from types.go; the inline Extensions field
// is excluded so the schema describes only the recognized keys.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		// Reject unknown fields: the generated schema is the strict-mode
		// surface, loose parsing tolerates extras via Extensions.
		AllowAdditionalProperties: false,
		// Expand struct references instead of using $ref for a cleaner schema.
		ExpandedStruct: true,
		// Use YAML field names for property names
		FieldNameTag: "yaml",
	}

	schema := r.Reflect(&Config{})
	schema.Title = "Hook Registry Configuration"
	schema.Description = "Schema for .pre-commit-config.yaml hook registry documents."
	schema.Version = "http://json-schema.org/draft-07/schema#"

	return json.MarshalIndent(schema, "", "  ")
}
