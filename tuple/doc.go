// Package tuple holds the fixed-arity tuple types that generated field
// projections return.
//
// Go cannot destructure a struct generically, so one set of types exists
// per arity, from 0 up to MaxArity:
//
//   - OfN holds N values. It is what a value receiver moves out of a
//     struct (Tuple methods).
//   - RefN holds N pointers into a live value. It is the mutable
//     projection (Fields methods); nothing is copied.
//   - ViewN wraps a RefN and only exposes getters. It is the read-only
//     projection (View methods).
//
// A RefN or ViewN is valid for as long as the value it points into; it
// neither extends nor shortens that lifetime.
//
// The types are addressed positionally only: F0, P0, Get0 and so on.
package tuple

//go:generate go run shape-generator/cmd/shape-generator tuples -out .
