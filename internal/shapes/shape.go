package shapes

import (
	"go/types"

	"shape-generator/internal/detect"
	"shape-generator/internal/project"
)

// Unbounded is the Arity of shapes whose element count is not fixed.
const Unbounded = -1

// Shape is the resolved interpretation of a type.
type Shape struct {
	Kind Kind
	// Arity is the number of elements of tuple-like shapes whose count is
	// known, Unbounded otherwise.
	Arity int
	// Elems are the element types: one per position for tuples and
	// aggregates, the yielded types for ranges, the repeated element for
	// arrays.
	Elems []types.Type
	// Projection is set for aggregates.
	Projection *project.Projection
	// Call is how StaticVisit is reached for static_visitable types.
	Call detect.CallForm
}
