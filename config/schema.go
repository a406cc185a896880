package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// SchemaID identifies the config schema.
const SchemaID = "https://github.com/randalmurphal/figkit/config.schema.json"

// Schema returns the JSON Schema for config files, indented.
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}
	s := r.Reflect(&Config{})
	s.ID = SchemaID
	s.Title = "figkit config"
	return json.MarshalIndent(s, "", "  ")
}
