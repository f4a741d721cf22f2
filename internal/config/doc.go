// Package config loads the shapegen.yaml file that tunes code generation.
//
// Example:
//
//	version: "1"
//	max_arity: 8
//	output:
//	  filename: shape_gen.go
//	methods:
//	  fields: Fields
//	  view: View
//	  tuple: Tuple
//	concepts:
//	  aggregate:
//	    priority: 10
//	  optional:
//	    disabled: true
//	require:
//	  - example.com/store.Order
//	exclude:
//	  - example.com/store.Ledger
//
// Every key is optional. A handful of settings can also be overridden from
// the environment (see Env), which wins over the file.
package config
