package registry

import (
	"encoding/json"
	"fmt"
	"io"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format selects an output encoding for EncodeTo.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// Marshal renders the configuration back to YAML. Parsing a document and
// marshaling it again yields a document that parses to an identical model.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// EncodeTo writes the configuration to w in the requested format. YAML is
// the native format; JSON and TOML are debugging renditions for tooling.
func (c *Config) EncodeTo(w io.Writer, format Format) error {
	switch format {
	case FormatYAML, "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(c)
	case FormatTOML:
		return toml.NewEncoder(w).Encode(c)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}
