package schema

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/grovetools/hookcfg/errors"
)

//go:generate go run ../tools/schema-generator -out hookcfg.schema.json

//go:embed hookcfg.schema.json
var embeddedSchemaData []byte

// EmbeddedSchema returns the raw JSON Schema for hook registry documents.
func EmbeddedSchema() []byte {
	return embeddedSchemaData
}

// Validator validates hook registry documents against the embedded JSON Schema.
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator creates a new schema validator, loading the embedded schema.
func NewValidator() (*Validator, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("hookcfg.json", strings.NewReader(string(embeddedSchemaData))); err != nil {
		return nil, fmt.Errorf("failed to add embedded schema resource: %w", err)
	}

	schema, err := compiler.Compile("hookcfg.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile embedded schema: %w", err)
	}

	return &Validator{schema: schema}, nil
}

// Validate validates parsed configuration data against the schema.
// It expects configData to be any struct that can be marshaled to JSON.
func (v *Validator) Validate(configData interface{}) error {
	// Convert the Go struct to a generic map[string]interface{} for validation.
	// The schema expects plain JSON-like objects.
	jsonData, err := json.Marshal(configData)
	if err != nil {
		return fmt.Errorf("failed to marshal config to JSON for validation: %w", err)
	}

	var dataToValidate interface{}
	if err := json.Unmarshal(jsonData, &dataToValidate); err != nil {
		return fmt.Errorf("failed to unmarshal JSON for validation: %w", err)
	}

	return v.validate(dataToValidate)
}

// ValidateDocument validates a raw YAML document against the schema without
// going through the typed model. Unknown keys the loose parser would tolerate
// are rejected here; this is the strict-mode surface. Keys registered in
// ExtensionSchemaURLs are owned by external services and skipped.
func (v *Validator) ValidateDocument(data []byte) error {
	var dataToValidate interface{}
	if err := yaml.Unmarshal(data, &dataToValidate); err != nil {
		return errors.MalformedDocument(err)
	}

	if doc, ok := dataToValidate.(map[string]interface{}); ok {
		for key := range ExtensionSchemaURLs {
			delete(doc, key)
		}
	}

	return v.validate(dataToValidate)
}

func (v *Validator) validate(dataToValidate interface{}) error {
	if err := v.schema.Validate(dataToValidate); err != nil {
		// Format the validation error to be more user-friendly.
		if validationErr, ok := err.(*jsonschema.ValidationError); ok {
			var errorMessages []string
			collectErrors(validationErr, &errorMessages)
			return errors.Wrap(validationErr, errors.ErrCodeSchemaValidation,
				fmt.Sprintf("schema validation failed:\n%s", strings.Join(errorMessages, "\n")))
		}
		return errors.Wrap(err, errors.ErrCodeSchemaValidation, "schema validation failed")
	}

	return nil
}

// collectErrors recursively collects all validation errors into a slice
func collectErrors(err *jsonschema.ValidationError, messages *[]string) {
	if err.InstanceLocation != "" {
		*messages = append(*messages, fmt.Sprintf("- %s: %s", err.InstanceLocation, err.Message))
	}
	for _, cause := range err.Causes {
		collectErrors(cause, messages)
	}
}
