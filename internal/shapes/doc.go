// Package shapes is the built-in catalogue of structural interpretations.
//
// Three concept lists are exposed:
//
//	Tuple:  static_visitable(4) static_array(3) tuple(2) aggregate(1)
//	Range:  iterable(5) array(3) range(2) optional(1)
//	Serial: forbidden(100) followed by the tuple and range concepts
//
// The Serial list decides how a value would be serialised. The forbidden
// concept claims types that have no meaningful wire form (unsafe pointers,
// functions, channels, empty structs) so that they are reported instead of
// being treated as an empty tuple or a range.
//
// Priorities can be overridden and concepts disabled per name; see
// Override.
package shapes
