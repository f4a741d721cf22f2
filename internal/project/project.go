package project

import (
	"errors"
	"fmt"
	"go/types"
	"strconv"
	"strings"

	"shape-generator/internal/arity"
	"shape-generator/internal/meta"
)

var (
	// ErrNotAggregate is returned when a type cannot be projected.
	ErrNotAggregate = errors.New("type is not an aggregate")
	// ErrArityMismatch is returned when a projection is destructured with
	// the wrong number of bindings.
	ErrArityMismatch = errors.New("arity mismatch")
)

// TuplePackage is the import path of the generated tuple runtime.
const TuplePackage = "shape-generator/tuple"

// Field is one positional element of a projection.
type Field struct {
	Index    int
	Name     string
	Type     types.Type
	Embedded bool
}

// Projection is the tuple view of an aggregate.
type Projection struct {
	Type   types.Type
	Arity  int
	Fields []Field
}

// Project computes the projection of t.
func Project(ap *arity.Prober, t types.Type) (*Projection, error) {
	n, err := ap.Of(t)
	if err != nil {
		return nil, err
	}

	if n == arity.NotDecomposable {
		return nil, fmt.Errorf("%s: %w", t, ErrNotAggregate)
	}

	st, ok := t.Underlying().(*types.Struct)
	if !ok || st.NumFields() != n {
		return nil, fmt.Errorf("%s: %w", t, ErrNotAggregate)
	}

	p := &Projection{
		Type:   t,
		Arity:  n,
		Fields: make([]Field, n),
	}
	for i := range n {
		f := st.Field(i)
		p.Fields[i] = Field{
			Index:    i,
			Name:     f.Name(),
			Type:     f.Type(),
			Embedded: f.Embedded(),
		}
	}

	return p, nil
}

// ProjectType returns the field types of t, in declaration order.
func ProjectType(ap *arity.Prober, t types.Type) (meta.Seq[types.Type], error) {
	p, err := Project(ap, t)
	if err != nil {
		return meta.Seq[types.Type]{}, err
	}

	return p.Types(), nil
}

// Types returns the element types.
func (p *Projection) Types() meta.Seq[types.Type] {
	return meta.Map(meta.Of(p.Fields...), func(f Field) types.Type { return f.Type })
}

// Expect checks that the projection has exactly n elements.
func (p *Projection) Expect(n int) error {
	if n != p.Arity {
		return fmt.Errorf("%s has %d fields, %d bindings given: %w", p.Type, p.Arity, n, ErrArityMismatch)
	}

	return nil
}

// TupleType spells the tuple type of the projection in category cat.
// The qualifier decides how package names are written, as in
// types.TypeString; the tuple package itself is written as "tuple".
func (p *Projection) TupleType(cat Category, qualifier types.Qualifier) string {
	var b strings.Builder

	b.WriteString("tuple.")
	b.WriteString(cat.TuplePrefix())
	b.WriteString(strconv.Itoa(p.Arity))

	if p.Arity == 0 {
		return b.String()
	}

	b.WriteByte('[')
	for i, f := range p.Fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(types.TypeString(f.Type, qualifier))
	}
	b.WriteByte(']')

	return b.String()
}

// Selectors returns the expressions reaching every field from recv.
func (p *Projection) Selectors(recv string) []string {
	out := make([]string, len(p.Fields))
	for i, f := range p.Fields {
		out[i] = recv + "." + f.Name
	}

	return out
}
