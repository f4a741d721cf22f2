// Package arity discovers how many fields an aggregate has by probing
// positional composite literals.
//
// A type is an aggregate when its underlying type is a struct that can be
// built field by field from outside its package: T{a, b, c} type-checks for
// some number of wildcard values. The arity is the largest count in
// 0..max+1 for which the literal type-checks. Types that are not structs,
// structs with fields hidden from other packages, and generic types that
// have not been instantiated are not decomposable and report
// NotDecomposable.
//
// Two cases fail loudly instead of producing a guess:
//   - ErrArityOverflow: the struct has more fields than the ceiling allows.
//     The arity is never truncated.
//   - ErrUnionAmbiguity: a field (possibly nested) is typed by a type
//     parameter whose constraint is a union. The probe cannot tell which
//     term would be initialised, so it refuses.
//
// Results are memoised per Prober. Every answer is a pure function of the
// input type, so caching and concurrent use never change a result.
package arity
