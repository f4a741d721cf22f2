package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joeshaw/envdecode"
	"gopkg.in/yaml.v3"

	"shape-generator/internal/common"
	"shape-generator/tuple"
)

// DefaultFilename is the configuration file looked up by the CLI.
const DefaultFilename = "shapegen.yaml"

const filePerm = 0o644

// Env holds the settings read from the environment. A value that does not
// parse is an error, never ignored.
type Env struct {
	MaxArity int    `env:"SHAPEGEN_MAX_ARITY,strict"`
	Output   string `env:"SHAPEGEN_OUTPUT,strict"`
	LogLevel string `env:"SHAPEGEN_LOG_LEVEL,strict"`
}

// Default returns the configuration used when no file exists.
func Default() *File {
	var f File
	applyDefaults(&f)

	return &f
}

// LoadFile loads and parses a YAML configuration file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// LoadOptional loads path, falling back to Default when it does not exist.
func LoadOptional(path string) (*File, error) {
	f, err := LoadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	return f, err
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	// An empty document decodes to io.EOF and means all defaults.
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = CurrentVersion
	}

	if f.MaxArity == 0 {
		f.MaxArity = tuple.MaxArity
	}

	if f.Output.Filename == "" {
		f.Output.Filename = common.DefaultGeneratedFile
	}

	if f.Methods.Fields == "" {
		f.Methods.Fields = "Fields"
	}

	if f.Methods.View == "" {
		f.Methods.View = "View"
	}

	if f.Methods.Tuple == "" {
		f.Methods.Tuple = "Tuple"
	}
}

// ReadEnv decodes the environment overrides. Unset variables leave the
// corresponding field zero.
func ReadEnv() (Env, error) {
	var env Env

	err := envdecode.Decode(&env)
	if err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Env{}, fmt.Errorf("failed to read environment: %w", err)
	}

	return env, nil
}

// ApplyEnv overrides file settings with the non-zero environment values.
func (f *File) ApplyEnv(env Env) {
	if env.MaxArity != 0 {
		f.MaxArity = env.MaxArity
	}

	if env.Output != "" {
		f.Output.Filename = env.Output
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}
