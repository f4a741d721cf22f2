// Package project describes how a struct is seen as a fixed-arity tuple of
// its fields, in declaration order.
//
// A Projection is the generator-side view: it knows the field types, the
// selectors that reach them and the tuple type each access category maps
// to. Field names are used only to spell selectors in generated code;
// everything a consumer sees is positional.
package project
