// Package meta provides pure algorithms over immutable ordered sequences.
//
// The sequences are used as type lists (Seq[types.Type]) by the arity and
// projection packages and as ordered concept lists by the concept registry,
// but nothing here is specific to types: every algorithm is generic over the
// element type.
//
// Key operations:
//   - Insert: stable insertion into an already sorted sequence
//   - Sort: insertion sort over a strict comparator, stable for ties
//   - Map: element-wise transform preserving length and order
//   - FindFirstOr: leftmost element satisfying a predicate, or a default
//
// No operation mutates its input; each returns a new sequence.
package meta
