package analyze

import (
	"fmt"
	"go/token"
	"go/types"
	"maps"
	"slices"
	"strings"

	"shape-generator/internal/common"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "shape-generator/store"
	Name    string // e.g., "Order"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// ParseTypeID parses "import/path.Name".
func ParseTypeID(s string) (TypeID, error) {
	i := strings.LastIndex(s, ".")
	if i <= 0 || i == len(s)-1 || strings.HasSuffix(s[:i], "/") {
		return TypeID{}, fmt.Errorf("invalid type reference %q: want import/path.Name", s)
	}

	if !token.IsIdentifier(s[i+1:]) {
		return TypeID{}, fmt.Errorf("invalid type reference %q: %q is not an identifier", s, s[i+1:])
	}

	return TypeID{PkgPath: s[:i], Name: s[i+1:]}, nil
}

// TypeKind represents the kind of a type's underlying type.
type TypeKind int

const (
	TypeKindUnknown   TypeKind = iota
	TypeKindBasic              // int, string, bool, etc.
	TypeKindStruct             // struct type
	TypeKindPointer            // pointer to another type
	TypeKindSlice              // slice of another type
	TypeKindArray              // array of another type
	TypeKindMap                // map type
	TypeKindChan               // channel type
	TypeKindFunc               // function type
	TypeKindInterface          // interface type
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindBasic:
		return "basic"
	case TypeKindStruct:
		return "struct"
	case TypeKindPointer:
		return "pointer"
	case TypeKindSlice:
		return "slice"
	case TypeKindArray:
		return "array"
	case TypeKindMap:
		return "map"
	case TypeKindChan:
		return "chan"
	case TypeKindFunc:
		return "func"
	case TypeKindInterface:
		return "interface"
	default:
		return common.UnknownStr
	}
}

// kindOf classifies the underlying type of t.
func kindOf(t types.Type) TypeKind {
	switch t.Underlying().(type) {
	case *types.Basic:
		return TypeKindBasic
	case *types.Struct:
		return TypeKindStruct
	case *types.Pointer:
		return TypeKindPointer
	case *types.Slice:
		return TypeKindSlice
	case *types.Array:
		return TypeKindArray
	case *types.Map:
		return TypeKindMap
	case *types.Chan:
		return TypeKindChan
	case *types.Signature:
		return TypeKindFunc
	case *types.Interface:
		return TypeKindInterface
	default:
		return TypeKindUnknown
	}
}

// TypeInfo describes a named type in the type graph.
type TypeInfo struct {
	ID         TypeID         // Unique identifier
	Kind       TypeKind       // Kind of the underlying type
	GoType     types.Type     // The go/types type
	Fields     []FieldInfo    // For structs, every field in declaration order
	Methods    []string       // Methods declared on T or *T, sorted
	TypeParams int            // Number of type parameters of a generic declaration
	Pos        token.Position // Where the type is declared
}

// IsGeneric reports whether the type declares type parameters.
func (t *TypeInfo) IsGeneric() bool {
	return t.TypeParams > 0
}

// HasMember reports whether the type declares a field or method called name.
func (t *TypeInfo) HasMember(name string) bool {
	if slices.Contains(t.Methods, name) {
		return true
	}

	return slices.ContainsFunc(t.Fields, func(f FieldInfo) bool { return f.Name == name })
}

// FieldInfo describes a struct field.
type FieldInfo struct {
	Name     string     // Go field name
	Exported bool       // Whether the field is exported
	Embedded bool       // Whether the field is embedded (anonymous)
	Index    int        // Field index in the struct
	GoType   types.Type // Field type
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all named types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// SortedPackages returns the package paths in lexical order.
func (g *TypeGraph) SortedPackages() []string {
	return slices.Sorted(maps.Keys(g.Packages))
}

// TypesOf returns the types of a package in declaration-name order.
func (g *TypeGraph) TypesOf(pkgPath string) []*TypeInfo {
	pkg := g.Packages[pkgPath]
	if pkg == nil {
		return nil
	}

	out := make([]*TypeInfo, 0, len(pkg.Types))
	for _, id := range pkg.Types {
		out = append(out, g.Types[id])
	}

	return out
}

// TypeIDs returns every type identifier as "import/path.Name", sorted.
func (g *TypeGraph) TypeIDs() []string {
	out := make([]string, 0, len(g.Types))
	for id := range g.Types {
		out = append(out, id.String())
	}

	slices.Sort(out)

	return out
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path      string         // Import path
	Name      string         // Package name
	Dir       string         // Directory holding the package sources
	Module    string         // Path of the enclosing module
	GoVersion string         // go directive of the enclosing module
	Types     []TypeID       // Named types defined in this package
	Generated []string       // Generated files that were loaded empty
	Problems  []string       // Type errors tolerated while loading
	Pkg       *types.Package // Type-checked package
}
