// Package gen provides deterministic Go code generation for field
// projections.
//
// Generation approach uses text/template + go/format for readable Go code.
//
// For every aggregate of a package one file declares:
//   - XShape, an alias of the tuple.OfN type of the fields
//   - XArity, the number of fields
//   - (*X).Fields, references to every field (tuple.RefN)
//   - (*X).View, a read-only projection (tuple.ViewN)
//   - (X).Tuple, a copy of the fields (XShape)
//
// GenerateTuples emits the tuple package itself.
package gen
