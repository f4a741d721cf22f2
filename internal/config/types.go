package config

// CurrentVersion is the only file format version understood.
const CurrentVersion = "1"

// File is the root of a shapegen.yaml document.
type File struct {
	// Version of the file format.
	Version string `yaml:"version,omitempty" jsonschema:"enum=1"`
	// MaxArity caps the arity probe. Zero selects the tuple package maximum.
	MaxArity int `yaml:"max_arity,omitempty" jsonschema:"minimum=0,maximum=10"`
	// Output controls where generated code goes.
	Output Output `yaml:"output,omitempty"`
	// Methods names the generated accessors.
	Methods Methods `yaml:"methods,omitempty"`
	// Concepts adjusts the built-in concepts by name.
	Concepts map[string]ConceptConfig `yaml:"concepts,omitempty"`
	// Require lists types that must resolve to a shape, as import/path.Name.
	Require []string `yaml:"require,omitempty" jsonschema:"example=example.com/store.Order"`
	// Exclude lists types skipped entirely, as import/path.Name.
	Exclude []string `yaml:"exclude,omitempty"`
}

// Output configures generated files.
type Output struct {
	// Filename of the generated file in every package.
	Filename string `yaml:"filename,omitempty"`
}

// Methods names the generated accessors.
type Methods struct {
	Fields string `yaml:"fields,omitempty"` // mutable projection
	View   string `yaml:"view,omitempty"`   // read-only projection
	Tuple  string `yaml:"tuple,omitempty"`  // copy
}

// Names returns the method names in declaration order.
func (m Methods) Names() []string {
	return []string{m.Fields, m.View, m.Tuple}
}

// ConceptConfig overrides a built-in concept.
type ConceptConfig struct {
	// Priority replaces the default priority when set.
	Priority *int `yaml:"priority,omitempty"`
	// Disabled removes the concept.
	Disabled bool `yaml:"disabled,omitempty"`
}
