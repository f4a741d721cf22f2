package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shape-generator/internal/analyze"
	"shape-generator/internal/shapes"
	"shape-generator/tuple"
)

func TestParse_Defaults(t *testing.T) {
	f, err := Parse(nil)
	require.NoError(t, err)

	assert.Equal(t, CurrentVersion, f.Version)
	assert.Equal(t, tuple.MaxArity, f.MaxArity)
	assert.Equal(t, "shape_gen.go", f.Output.Filename)
	assert.Equal(t, []string{"Fields", "View", "Tuple"}, f.Methods.Names())
	require.NoError(t, f.Validate())
	assert.Equal(t, Default(), f)
}

func TestParse_Full(t *testing.T) {
	yamlData := `
version: "1"
max_arity: 6
output:
  filename: shapes_gen.go
methods:
  fields: Refs
  view: ReadOnly
  tuple: Copy
concepts:
  aggregate:
    priority: 10
  optional:
    disabled: true
require:
  - shape-generator/store.Order
exclude:
  - shape-generator/store.Ledger
`

	f, err := Parse([]byte(yamlData))
	require.NoError(t, err)
	require.NoError(t, f.Validate())

	assert.Equal(t, 6, f.MaxArity)
	assert.Equal(t, "shapes_gen.go", f.Output.Filename)
	assert.Equal(t, Methods{Fields: "Refs", View: "ReadOnly", Tuple: "Copy"}, f.Methods)

	overrides := f.Overrides()
	require.Contains(t, overrides, "aggregate")
	require.NotNil(t, overrides["aggregate"].Priority)
	assert.Equal(t, 10, *overrides["aggregate"].Priority)
	assert.True(t, overrides["optional"].Disabled)
	assert.Nil(t, overrides["optional"].Priority)

	assert.Equal(t, map[analyze.TypeID]bool{{PkgPath: "shape-generator/store", Name: "Order"}: true}, TypeSet(f.Require))
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := Parse([]byte("max_arty: 3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_arty")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*File)
		wantErr string
	}{
		{"version", func(f *File) { f.Version = "2" }, `unsupported version "2"`},
		{"arity too large", func(f *File) { f.MaxArity = tuple.MaxArity + 1 }, "max_arity 11 out of range"},
		{"negative arity", func(f *File) { f.MaxArity = -1 }, "max_arity -1 out of range"},
		{"filename", func(f *File) { f.Output.Filename = "gen/out.go" }, "output.filename"},
		{"not go", func(f *File) { f.Output.Filename = "out.txt" }, "output.filename"},
		{"method ident", func(f *File) { f.Methods.View = "view" }, `method name "view"`},
		{"method twice", func(f *File) { f.Methods.Tuple = "Fields" }, `"Fields" used twice`},
		{"unknown concept", func(f *File) { f.Concepts = map[string]ConceptConfig{"agregate": {}} }, `did you mean "aggregate"`},
		{"bad require", func(f *File) { f.Require = []string{"Order"} }, "require: invalid type reference"},
		{"bad exclude", func(f *File) { f.Exclude = []string{"store."} }, "exclude: invalid type reference"},
		{"both", func(f *File) {
			f.Require = []string{"a/b.C"}
			f.Exclude = []string{"a/b.C"}
		}, "a/b.C is both required and excluded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Default()
			tt.mutate(f)

			err := f.Validate()
			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_UnknownConceptWrapsCatalogError(t *testing.T) {
	f := Default()
	f.Concepts = map[string]ConceptConfig{"zzz": {}}

	err := f.Validate()
	require.ErrorIs(t, err, shapes.ErrUnknownConcept)
	assert.Contains(t, err.Error(), "known: ")
}

func TestApplyEnv(t *testing.T) {
	f := Default()
	f.ApplyEnv(Env{})
	assert.Equal(t, Default(), f)

	f.ApplyEnv(Env{MaxArity: 4, Output: "x_gen.go", LogLevel: "debug"})
	assert.Equal(t, 4, f.MaxArity)
	assert.Equal(t, "x_gen.go", f.Output.Filename)
}

func TestReadEnv(t *testing.T) {
	t.Setenv("SHAPEGEN_MAX_ARITY", "7")
	t.Setenv("SHAPEGEN_LOG_LEVEL", "warn")

	env, err := ReadEnv()
	require.NoError(t, err)
	assert.Equal(t, Env{MaxArity: 7, LogLevel: "warn"}, env)

	t.Setenv("SHAPEGEN_MAX_ARITY", "seven")

	_, err = ReadEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read environment")

	t.Setenv("SHAPEGEN_MAX_ARITY", "3.5")

	_, err = ReadEnv()
	require.Error(t, err)
}

func TestReadEnv_Unset(t *testing.T) {
	for _, key := range []string{"SHAPEGEN_MAX_ARITY", "SHAPEGEN_OUTPUT", "SHAPEGEN_LOG_LEVEL"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	env, err := ReadEnv()
	require.NoError(t, err)
	assert.Equal(t, Env{}, env)
}

func TestWriteAndLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFilename)

	prio := 7
	f := Default()
	f.Concepts = map[string]ConceptConfig{"range": {Priority: &prio}}
	f.Exclude = []string{"shape-generator/warehouse.Signal"}

	require.NoError(t, WriteFile(f, path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, f, loaded)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	fallback, err := LoadOptional(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), fallback)
}

func TestSchema(t *testing.T) {
	s := Schema()
	assert.Equal(t, SchemaID, string(s.ID))

	for _, key := range []string{"version", "max_arity", "output", "methods", "concepts", "require", "exclude"} {
		_, ok := s.Properties.Get(key)
		assert.True(t, ok, key)
	}

	maxArity, _ := s.Properties.Get("max_arity")
	require.NotNil(t, maxArity)
	assert.Equal(t, "integer", maxArity.Type)

	data, err := SchemaJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"additionalProperties": false`)
}
