package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// SchemaID identifies the configuration schema.
const SchemaID = "https://shape-generator.dev/schema/shapegen.json"

// Schema returns the JSON Schema of a shapegen.yaml document, usable by
// editors that validate YAML against JSON Schema.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		FieldNameTag:              "yaml",
		DoNotReference:            true,
		ExpandedStruct:            true,
		AllowAdditionalProperties: false,
	}

	s := r.Reflect(new(File))
	s.ID = SchemaID
	s.Title = "shapegen.yaml"

	return s
}

// SchemaJSON returns Schema as indented JSON.
func SchemaJSON() ([]byte, error) {
	return json.MarshalIndent(Schema(), "", "  ")
}
