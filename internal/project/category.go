package project

import "shape-generator/internal/common"

// Category is the access category a projection is taken in.
type Category int

const (
	// Mutable projects an addressable value: every element aliases the
	// corresponding field and writes go through.
	Mutable Category = iota
	// Const projects a read-only value: elements alias the fields but can
	// only be read.
	Const
	// Move projects a value that is consumed: elements are the field
	// values themselves.
	Move
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case Mutable:
		return "mutable"
	case Const:
		return "const"
	case Move:
		return "move"
	default:
		return common.UnknownStr
	}
}

// TuplePrefix returns the name of the tuple family the category maps to.
func (c Category) TuplePrefix() string {
	switch c {
	case Mutable:
		return "Ref"
	case Const:
		return "View"
	case Move:
		return "Of"
	default:
		return ""
	}
}
