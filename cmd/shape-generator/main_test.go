package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shape-generator/internal/plan"
)

const root = "../.."

// excludeFailing pins the fixtures to the types that resolve cleanly.
const excludeFailing = `version: "1"
exclude:
  - shape-generator/store.Ledger
  - shape-generator/warehouse.Stock
  - shape-generator/warehouse.Shipment
`

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "shapegen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestRun_Usage(t *testing.T) {
	t.Parallel()

	code, _, stderr := runCLI(t)
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "commands:")

	code, _, stderr = runCLI(t, "frobnicate")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, `unknown command "frobnicate"`)

	code, _, _ = runCLI(t, "tuples", "-h")
	assert.Equal(t, exitUsage, code)
}

func TestRun_Schema(t *testing.T) {
	t.Parallel()

	code, stdout, _ := runCLI(t, "schema")
	require.Equal(t, exitOK, code)

	var schema map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &schema))

	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok, "schema has properties")
	assert.Contains(t, props, "packages")
	assert.Contains(t, props, "diagnostics")
}

func TestRun_Tuples(t *testing.T) {
	t.Parallel()

	out := t.TempDir()

	code, stdout, stderr := runCLI(t, "tuples", "-out", out)
	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, stdout, "tuple_gen.go")

	got, err := os.ReadFile(filepath.Join(out, "tuple_gen.go"))
	require.NoError(t, err)

	want, err := os.ReadFile(filepath.Join(root, "tuple", "tuple_gen.go"))
	require.NoError(t, err)

	assert.Equal(t, string(want), string(got))

	code, stdout, _ = runCLI(t, "tuples", "-pkg", "small", "-max", "2")
	require.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "package small")
	assert.Contains(t, stdout, "type Of2[A, B any]")
	assert.NotContains(t, stdout, "Of3")

	code, _, stderr = runCLI(t, "tuples", "-max", "99")
	assert.Equal(t, exitFail, code)
	assert.Contains(t, stderr, "out of range")
}

func TestRun_AnalyzeJSON(t *testing.T) {
	t.Parallel()

	code, stdout, _ := runCLI(t, "-dir", root, "analyze", "-format", "json", "./store", "./warehouse")
	assert.Equal(t, exitFail, code, "the fixtures carry error diagnostics")

	var report plan.Report
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	require.Len(t, report.Packages, 2)

	byName := map[string]plan.TypeReport{}
	for _, pkg := range report.Packages {
		for _, tr := range pkg.Types {
			byName[tr.Name] = tr
		}
	}

	money := byName["Money"]
	require.NotNil(t, money.Arity)
	assert.Equal(t, 2, *money.Arity)
	assert.True(t, money.Generate)
	assert.Equal(t, []string{"int64", "int32"}, money.Fields)

	assert.Equal(t, "range", byName["Cart"].Serial)
	assert.Nil(t, byName["Order"].Arity)

	codes := map[string]string{}
	for _, d := range report.Diagnostics {
		if d.Severity == "error" {
			codes[d.Type] = d.Code
		}
	}

	assert.Equal(t, "ARITY_OVERFLOW", codes["shape-generator/store.Ledger"])
	assert.Equal(t, "UNION_AMBIGUITY", codes["shape-generator/warehouse.Stock"])
	assert.Equal(t, "METHOD_COLLISION", codes["shape-generator/warehouse.Shipment"])
}

func TestRun_AnalyzeText(t *testing.T) {
	t.Parallel()

	cfg := writeConfig(t, excludeFailing)

	code, stdout, stderr := runCLI(t, "-dir", root, "-config", cfg, "analyze", "./store")
	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, stdout, "shape-generator/store")
	assert.Contains(t, stdout, "generate")
	assert.NotContains(t, stdout, "\x1b[", "no colour when not writing to a terminal")

	code, _, _ = runCLI(t, "-dir", root, "analyze", "-format", "xml", "./store")
	assert.Equal(t, exitFail, code)
}

func TestRun_AnalyzeSuggest(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "suggested.yaml")

	code, _, _ := runCLI(t, "-dir", root, "analyze", "-suggest", out, "./store", "./warehouse")
	assert.Equal(t, exitFail, code)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "shape-generator/store.Money")
	assert.Contains(t, string(data), "shape-generator/store.Ledger")

	// The suggestion excludes what failed, so it resolves cleanly.
	code, _, stderr := runCLI(t, "-dir", root, "-config", out, "analyze", "./store", "./warehouse")
	assert.Equal(t, exitOK, code, stderr)
}

func TestRun_GenDryRunAndCheck(t *testing.T) {
	t.Parallel()

	cfg := writeConfig(t, excludeFailing)

	code, stdout, stderr := runCLI(t, "-dir", root, "-config", cfg, "gen", "-dry-run", "./store", "./warehouse")
	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, stdout, filepath.Join("store", "shape_gen.go"))
	assert.Contains(t, stdout, filepath.Join("warehouse", "shape_gen.go"))

	// Nothing was written, so the check sees both files as stale.
	code, stdout, _ = runCLI(t, "-dir", root, "-config", cfg, "check", "./store", "./warehouse")
	assert.Equal(t, exitFail, code)
	assert.Contains(t, stdout, "stale:")
}

func TestRun_GenRefusesErrors(t *testing.T) {
	t.Parallel()

	code, stdout, _ := runCLI(t, "-dir", root, "gen", "-dry-run", "./store")
	assert.Equal(t, exitFail, code)
	assert.Contains(t, stdout, "ARITY_OVERFLOW")
}

func TestRun_InvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := writeConfig(t, "version: \"2\"\n")

	code, _, stderr := runCLI(t, "-dir", root, "-config", cfg, "analyze", "./store")
	assert.Equal(t, exitFail, code)
	assert.Contains(t, stderr, cfg)

	cfg = writeConfig(t, "unknown_key: 1\n")

	code, _, _ = runCLI(t, "-dir", root, "-config", cfg, "analyze", "./store")
	assert.Equal(t, exitFail, code)
}

func TestRun_SchemaConfig(t *testing.T) {
	t.Parallel()

	code, stdout, _ := runCLI(t, "schema", "-config")
	require.Equal(t, exitOK, code)

	var schema map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &schema))
	assert.Equal(t, "shapegen.yaml", schema["title"])

	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "max_arity")
}

func TestRun_CheckUpToDate(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := runCLI(t, "-dir", root, "check", "./examples/geometry")
	assert.Equal(t, exitOK, code, stdout+stderr)
	assert.Empty(t, stdout)
}
