// Package testutil type-checks Go source fixtures for tests.
package testutil

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/require"
)

// Check parses and type-checks src as package path and returns the package.
// src must contain a package clause.
func Check(t testing.TB, path, src string) *types.Package {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path+".go", src, parser.SkipObjectResolution)
	require.NoError(t, err)

	conf := types.Config{Importer: importer.ForCompiler(fset, "source", nil)}
	pkg, err := conf.Check(path, fset, []*ast.File{file}, nil)
	require.NoError(t, err)

	return pkg
}

// Lookup returns the type declared as name in pkg.
func Lookup(t testing.TB, pkg *types.Package, name string) types.Type {
	t.Helper()

	obj, ok := pkg.Scope().Lookup(name).(*types.TypeName)
	require.True(t, ok, "%s is not a type in %s", name, pkg.Path())

	return obj.Type()
}

// Types returns the types declared as names in pkg, in order.
func Types(t testing.TB, pkg *types.Package, names ...string) []types.Type {
	t.Helper()

	out := make([]types.Type, 0, len(names))
	for _, name := range names {
		out = append(out, Lookup(t, pkg, name))
	}

	return out
}
