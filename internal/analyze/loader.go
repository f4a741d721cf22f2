package analyze

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"log/slog"
	"path/filepath"
	"slices"
	"sync"

	"golang.org/x/tools/go/packages"

	"shape-generator/internal/common"
)

// LoadMode specifies what information to load from packages.
//
// NeedDeps makes every package type-check from source through the ParseFile
// hook. Without it go/packages compiles the roots with go list -export,
// which reads a stale generated file as is and fails the load.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports |
	packages.NeedDeps |
	packages.NeedModule

// ErrNoPackages is returned when the patterns match nothing.
var ErrNoPackages = errors.New("no packages matched")

// Analyzer loads Go packages and builds a type graph.
type Analyzer struct {
	logger        *slog.Logger
	dir           string
	generatedFile string
	graph         *TypeGraph

	mu       sync.Mutex
	stripped map[string]bool // generated files loaded empty
}

// Option customizes an Analyzer.
type Option func(*Analyzer)

// WithLogger overrides the logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *Analyzer) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithDir sets the directory patterns are resolved from.
func WithDir(dir string) Option {
	return func(a *Analyzer) {
		a.dir = dir
	}
}

// WithGeneratedFile sets the name of the files written by the generator.
func WithGeneratedFile(name string) Option {
	return func(a *Analyzer) {
		if name != "" {
			a.generatedFile = name
		}
	}
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		logger:        slog.Default(),
		generatedFile: common.DefaultGeneratedFile,
		graph:         NewTypeGraph(),
		stripped:      make(map[string]bool),
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// LoadPackages loads the specified packages and builds the type graph.
// Patterns are standard Go package patterns (e.g., "./store", "shape-generator/warehouse").
//
// Listing and syntax errors fail the load. Type errors are tolerated and
// recorded on the package: code calling generated methods does not
// type-check while the generated file is loaded empty.
func (a *Analyzer) LoadPackages(ctx context.Context, patterns ...string) (*TypeGraph, error) {
	cfg := &packages.Config{
		Context:   ctx,
		Mode:      LoadMode,
		Dir:       a.dir,
		ParseFile: a.parseFile,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	if len(pkgs) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrNoPackages, patterns)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			if e.Kind != packages.TypeError {
				errs = append(errs, e)
			}
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	for _, pkg := range pkgs {
		if err := a.processPackage(pkg); err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}
	}

	return a.graph, nil
}

// Graph returns the current type graph.
func (a *Analyzer) Graph() *TypeGraph {
	return a.graph
}

// parseFile is the go/packages parser hook. Files written by the generator
// are reduced to their package clause.
func (a *Analyzer) parseFile(fset *token.FileSet, filename string, src []byte) (*ast.File, error) {
	mode := parser.AllErrors | parser.ParseComments

	if a.isGenerated(filename, src) {
		a.mu.Lock()
		a.stripped[filename] = true
		a.mu.Unlock()

		mode = parser.PackageClauseOnly
	}

	return parser.ParseFile(fset, filename, src, mode)
}

func (a *Analyzer) isGenerated(filename string, src []byte) bool {
	return filepath.Base(filename) == a.generatedFile &&
		bytes.HasPrefix(src, []byte(common.GeneratedHeader))
}

// processPackage extracts types from a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) error {
	if pkg.Types == nil {
		return errors.New("no type information")
	}

	pkgInfo := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
		Pkg:  pkg.Types,
	}

	if len(pkg.GoFiles) > 0 {
		pkgInfo.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	if pkg.Module != nil {
		pkgInfo.Module = pkg.Module.Path
		pkgInfo.GoVersion = pkg.Module.GoVersion
	}

	a.mu.Lock()
	for _, f := range pkg.GoFiles {
		if a.stripped[f] {
			pkgInfo.Generated = append(pkgInfo.Generated, f)
		}
	}
	a.mu.Unlock()

	for _, e := range pkg.Errors {
		pkgInfo.Problems = append(pkgInfo.Problems, e.Error())
	}

	if len(pkgInfo.Problems) > 0 {
		a.logger.Warn("package has type errors",
			slog.String("package", pkg.PkgPath),
			slog.Int("count", len(pkgInfo.Problems)),
			slog.String("first", pkgInfo.Problems[0]))
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		// Only exported type declarations; aliases name types declared
		// elsewhere.
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !typeName.Exported() || typeName.IsAlias() {
			continue
		}

		typeInfo := a.analyzeType(typeName)
		typeInfo.Pos = pkg.Fset.Position(typeName.Pos())

		a.graph.Types[typeInfo.ID] = typeInfo
		pkgInfo.Types = append(pkgInfo.Types, typeInfo.ID)
	}

	a.graph.Packages[pkg.PkgPath] = pkgInfo

	a.logger.Debug("package analyzed",
		slog.String("package", pkg.PkgPath),
		slog.Int("types", len(pkgInfo.Types)),
		slog.Int("generated_files", len(pkgInfo.Generated)))

	return nil
}

// analyzeType describes a declared named type.
func (a *Analyzer) analyzeType(obj *types.TypeName) *TypeInfo {
	t := obj.Type()

	info := &TypeInfo{
		ID: TypeID{
			PkgPath: obj.Pkg().Path(),
			Name:    obj.Name(),
		},
		Kind:   kindOf(t),
		GoType: t,
	}

	named, ok := t.(*types.Named)
	if !ok {
		return info
	}

	info.TypeParams = named.TypeParams().Len()

	for i := range named.NumMethods() {
		info.Methods = append(info.Methods, named.Method(i).Name())
	}

	slices.Sort(info.Methods)

	if st, ok := named.Underlying().(*types.Struct); ok {
		info.Fields = analyzeStructFields(st)
	}

	return info
}

// analyzeStructFields lists every field of a struct, exported or not.
func analyzeStructFields(st *types.Struct) []FieldInfo {
	fields := make([]FieldInfo, 0, st.NumFields())
	for i := range st.NumFields() {
		field := st.Field(i)

		fields = append(fields, FieldInfo{
			Name:     field.Name(),
			Exported: field.Exported(),
			Embedded: field.Embedded(),
			Index:    i,
			GoType:   field.Type(),
		})
	}

	return fields
}

// GetStruct returns the TypeInfo for a named struct.
func (a *Analyzer) GetStruct(pkgPath, typeName string) (*TypeInfo, error) {
	id := TypeID{PkgPath: pkgPath, Name: typeName}

	info := a.graph.GetType(id)
	if info == nil {
		return nil, fmt.Errorf("type %s not found", id)
	}

	if info.Kind != TypeKindStruct {
		return nil, fmt.Errorf("type %s is not a struct (kind: %s)", id, info.Kind)
	}

	return info, nil
}
