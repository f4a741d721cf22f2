package analyze

import (
	"go/types"
	"slices"
	"strconv"
	"strings"

	"shape-generator/internal/common"
)

// Import is one import of a generated file.
type Import struct {
	Alias string // empty when the package name is used as is
	Path  string
}

// TypeStringer spells types as seen from one package and collects the
// imports the spellings need.
type TypeStringer struct {
	pkgPath string
	imports map[string]Import // by path
	taken   map[string]string // local name -> path
}

// NewTypeStringer creates a TypeStringer for code placed in pkgPath.
func NewTypeStringer(pkgPath string) *TypeStringer {
	return &TypeStringer{
		pkgPath: pkgPath,
		imports: make(map[string]Import),
		taken:   make(map[string]string),
	}
}

// TypeString returns t as written inside the target package.
func (s *TypeStringer) TypeString(t types.Type) string {
	return types.TypeString(t, s.Qualifier())
}

// Qualifier returns a types.Qualifier that records every package it names.
func (s *TypeStringer) Qualifier() types.Qualifier {
	return func(pkg *types.Package) string {
		if pkg.Path() == s.pkgPath {
			return ""
		}

		return s.Use(pkg.Path(), pkg.Name())
	}
}

// Use imports path under its package name, or under a numbered alias when
// another import already took that name, and returns the local name.
func (s *TypeStringer) Use(pkgPath, name string) string {
	if imp, ok := s.imports[pkgPath]; ok {
		return imp.local()
	}

	local := name
	for i := 2; ; i++ {
		if other, ok := s.taken[local]; !ok || other == pkgPath {
			break
		}

		local = name + strconv.Itoa(i)
	}

	imp := Import{Path: pkgPath}
	if local != common.PkgAlias(pkgPath) {
		imp.Alias = local
	}

	s.imports[pkgPath] = imp
	s.taken[local] = pkgPath

	return local
}

func (imp Import) local() string {
	if imp.Alias != "" {
		return imp.Alias
	}

	return common.PkgAlias(imp.Path)
}

// Imports returns the collected imports sorted by path.
func (s *TypeStringer) Imports() []Import {
	out := make([]Import, 0, len(s.imports))
	for _, imp := range s.imports {
		out = append(out, imp)
	}

	slices.SortFunc(out, func(a, b Import) int { return strings.Compare(a.Path, b.Path) })

	return out
}
