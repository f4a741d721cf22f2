// Package analyze provides package loading and type graph extraction.
//
// It uses golang.org/x/tools/go/packages to load packages with full type
// information and records, for every exported named type, what the shape
// resolver and the generator need: its go/types type, its fields, the
// methods its authors declared and where it is declared.
//
// Files previously written by the generator are loaded as empty files, so
// a stale generated file never breaks analysis and generated methods are
// never mistaken for user code.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: kind, fields, declared methods, type parameters
//   - TypeGraph: every analyzed type plus per-package metadata
package analyze
