// Package concept ranks structural interpretations of types and picks the
// best one that applies.
//
// A Concept names a shape (tuple-like, range-like, ...) and carries a probe
// expression over the placeholders T0.. and v0.. understood by the detect
// package. A List pairs concepts with integer priorities and is always
// sorted by descending priority. Among equal priorities Add puts the newest
// concept first, while FromEntries keeps the order it was given. Lists are
// values: Add returns a new list and never touches its receiver.
//
// Resolve walks a list and instantiates the first concept that accepts the
// candidate types. A concept accepts when its Marker says Implemented, or
// when the marker is absent or Undecided and its probe expression
// type-checks. A Rejected verdict vetoes the concept even if the probe
// would pass. When nothing accepts, Resolve returns a *NoMatchError listing
// every concept that was tried. HasMatch answers the same question without
// instantiating anything.
package concept
