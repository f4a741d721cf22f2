package plan

import (
	"go/types"

	"shape-generator/internal/analyze"
	"shape-generator/internal/arity"
	"shape-generator/internal/config"
	"shape-generator/internal/diagnostic"
	"shape-generator/internal/project"
	"shape-generator/internal/shapes"
)

// Plan is the final output of the resolution pipeline.
// It contains everything needed for code generation.
type Plan struct {
	// Packages in import path order.
	Packages []*PackagePlan
	// Methods names the generated accessors.
	Methods config.Methods
	// Filename of the generated file in each package.
	Filename string
	// Diagnostics contains all warnings and errors from resolution.
	Diagnostics diagnostic.Diagnostics
}

// PackagePlan holds the resolved types of one package.
type PackagePlan struct {
	Path string
	Name string
	Dir  string
	// Types in name order, excluded types omitted.
	Types []*TypePlan
}

// Generated returns the types that receive accessors.
func (p *PackagePlan) Generated() []*TypePlan {
	var out []*TypePlan
	for _, t := range p.Types {
		if t.Generate {
			out = append(out, t)
		}
	}

	return out
}

// TypePlan is the resolution of a single type.
type TypePlan struct {
	Info *analyze.TypeInfo
	// Arity is arity.NotDecomposable for types that cannot be destructured.
	Arity int
	// Projection is set for aggregates with at least one field.
	Projection *project.Projection
	// Serial is how values of the type are serialised.
	Serial Choice
	// Tuple and Range are the picks of the dedicated lists.
	Tuple Choice
	Range Choice
	// Generate is true when accessors are emitted for the type.
	Generate bool
}

// Name returns the declared type name.
func (t *TypePlan) Name() string {
	return t.Info.ID.Name
}

// Decomposable reports whether the type has an arity.
func (t *TypePlan) Decomposable() bool {
	return t.Arity != arity.NotDecomposable
}

// Choice is the concept picked from a list.
type Choice struct {
	// Concept is empty when no concept accepted the type.
	Concept  string
	Priority int
	// Shape is only populated for instantiated choices.
	Shape *shapes.Shape
}

// Resolved reports whether a concept accepted the type.
func (c Choice) Resolved() bool {
	return c.Concept != ""
}

// Elems returns the element types of an instantiated choice.
func (c Choice) Elems() []types.Type {
	if c.Shape == nil {
		return nil
	}

	return c.Shape.Elems
}
