// Package detect answers "does this expression type-check for these types".
//
// A probe expression is ordinary Go expression syntax written against
// placeholder identifiers:
//
//	T0, T1, ...   the candidate types
//	v0, v1, ...   variables of the candidate types
//	wildcard      a value assignable to any type (see below)
//
// Every check builds a fresh synthetic package, binds the placeholders in
// its scope and type-checks the expression with types.CheckExpr. A type
// error does not escape: it only turns the answer into false. Nothing is
// shared between checks, so a Prober is safe for concurrent use and the
// answer is a pure function of the expression and the candidate types.
//
// The wildcard is a variable of invalid type. go/types never reports
// follow-on errors for operands of invalid type, so the wildcard can
// initialise a field or argument of any type, references included.
//
// Free functions declared in the packages of the named candidate types are
// visible unqualified, so a probe can test either the method form v0.Len()
// or the free form Len(v0). Uniform and DetectedCall try both, member first,
// so callers do not need to know which form a type provides.
package detect
