package common

// UnknownStr is the String() fallback for out-of-range enum values.
const UnknownStr = "unknown"

// GeneratedHeader opens every file written by shape-generator.
const GeneratedHeader = "// Code generated by shape-generator. DO NOT EDIT."

// DefaultGeneratedFile is the per-package output file name.
const DefaultGeneratedFile = "shape_gen.go"
