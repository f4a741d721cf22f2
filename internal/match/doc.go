// Package match scores how close two identifiers are, for "did you mean"
// hints on misspelled concept and type names.
//
// Key functions:
//   - NormalizeIdent: folds case and separators so that StaticArray,
//     static_array and static-array compare equal
//   - Levenshtein: edit distance between strings
//   - Rank / Suggest: order known names by similarity to an unknown one
package match
