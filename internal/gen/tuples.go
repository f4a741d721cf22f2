package gen

import (
	"fmt"
	"strings"
	"text/template"

	"shape-generator/internal/common"
)

// TuplesFilename is the file GenerateTuples produces.
const TuplesFilename = "tuple_gen.go"

// tupleParams names the type parameters of the tuple types.
const tupleParams = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateTuples generates the tuple package with every arity up to max.
func (g *Generator) GenerateTuples(pkgName string, max int) (*GeneratedFile, error) {
	if max < 0 || max > len(tupleParams) {
		return nil, fmt.Errorf("tuple arity %d out of range 0..%d", max, len(tupleParams))
	}

	data := tuplesData{PackageName: pkgName, Max: max}
	for n := 1; n <= max; n++ {
		data.Arities = append(data.Arities, newTupleArity(n))
	}

	content, err := g.render(tuplesTemplate, data, "", TuplesFilename)
	if err != nil {
		return nil, err
	}

	return &GeneratedFile{Filename: TuplesFilename, Content: content}, nil
}

type tuplesData struct {
	PackageName string
	Max         int
	Arities     []tupleArity
}

type tupleArity struct {
	N      int
	Params string // "A, B, C"
	Elems  []tupleElem
}

type tupleElem struct {
	Index int
	Param string
	View  string // the ViewN instantiation owning the getter
}

func newTupleArity(n int) tupleArity {
	params := make([]string, n)
	for i := range params {
		params[i] = tupleParams[i : i+1]
	}

	a := tupleArity{N: n, Params: strings.Join(params, ", ")}
	for i, p := range params {
		a.Elems = append(a.Elems, tupleElem{
			Index: i,
			Param: p,
			View:  fmt.Sprintf("View%d[%s]", n, a.Params),
		})
	}

	return a
}

// seq formats pattern with every index below n and joins the results.
func seq(n int, pattern string) string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf(pattern, i)
	}

	return strings.Join(out, ", ")
}

// results spells a result list, parenthesised when there is more than one.
func results(elems []tupleElem, pattern string) string {
	out := make([]string, len(elems))
	for i, e := range elems {
		out[i] = fmt.Sprintf(pattern, e.Param)
	}

	if common.IsSingle(out) {
		return out[0]
	}

	return "(" + strings.Join(out, ", ") + ")"
}

var tuplesTemplate = template.Must(template.New("tuples").Funcs(template.FuncMap{
	"seq":     seq,
	"results": results,
}).Parse(`// Code generated by shape-generator tuples. DO NOT EDIT.

package {{.PackageName}}

// MaxArity is the largest arity generated in this package.
const MaxArity = {{.Max}}

// Of0 holds 0 values.
type Of0 struct{}

// Len returns 0.
func (Of0) Len() int { return 0 }

// Unpack returns the values in order.
func (Of0) Unpack() {}

// Ref0 references 0 values in place.
type Ref0 struct{}

// Len returns 0.
func (Ref0) Len() int { return 0 }

// Unpack returns the references in order.
func (Ref0) Unpack() {}

// Load copies the referenced values out.
func (Ref0) Load() Of0 { return Of0{} }

// Store assigns t to the referenced values.
func (Ref0) Store(Of0) {}

// View returns a read-only view of the same values.
func (r Ref0) View() View0 { return View0{ref: r} }

// View0 is a read-only view of 0 values held elsewhere.
type View0 struct {
	ref Ref0
}

// Len returns 0.
func (View0) Len() int { return 0 }

// Unpack returns copies of the values in order.
func (View0) Unpack() {}

// Load copies the viewed values out.
func (v View0) Load() Of0 { return v.ref.Load() }
{{range .Arities}}
// Of{{.N}} holds {{.N}} values.
type Of{{.N}}[{{.Params}} any] struct {
{{range .Elems}}	F{{.Index}} {{.Param}}
{{end}}}

// Len returns {{.N}}.
func (Of{{.N}}[{{.Params}}]) Len() int { return {{.N}} }

// Unpack returns the values in order.
func (t Of{{.N}}[{{.Params}}]) Unpack() {{results .Elems "%s"}} {
	return {{seq .N "t.F%d"}}
}

// Ref{{.N}} references {{.N}} values in place.
type Ref{{.N}}[{{.Params}} any] struct {
{{range .Elems}}	P{{.Index}} *{{.Param}}
{{end}}}

// Len returns {{.N}}.
func (Ref{{.N}}[{{.Params}}]) Len() int { return {{.N}} }

// Unpack returns the references in order.
func (r Ref{{.N}}[{{.Params}}]) Unpack() {{results .Elems "*%s"}} {
	return {{seq .N "r.P%d"}}
}

// Load copies the referenced values out.
func (r Ref{{.N}}[{{.Params}}]) Load() Of{{.N}}[{{.Params}}] {
	return Of{{.N}}[{{.Params}}]{ {{seq .N "F%[1]d: *r.P%[1]d"}} }
}

// Store assigns t to the referenced values.
func (r Ref{{.N}}[{{.Params}}]) Store(t Of{{.N}}[{{.Params}}]) {
{{range .Elems}}	*r.P{{.Index}} = t.F{{.Index}}
{{end}}}

// View returns a read-only view of the same values.
func (r Ref{{.N}}[{{.Params}}]) View() View{{.N}}[{{.Params}}] { return View{{.N}}[{{.Params}}]{ref: r} }

// View{{.N}} is a read-only view of {{.N}} values held elsewhere.
type View{{.N}}[{{.Params}} any] struct {
	ref Ref{{.N}}[{{.Params}}]
}

// Len returns {{.N}}.
func (View{{.N}}[{{.Params}}]) Len() int { return {{.N}} }
{{range .Elems}}
// Get{{.Index}} returns the value at position {{.Index}}.
func (v {{.View}}) Get{{.Index}}() {{.Param}} { return *v.ref.P{{.Index}} }
{{end}}
// Unpack returns copies of the values in order.
func (v View{{.N}}[{{.Params}}]) Unpack() {{results .Elems "%s"}} {
	return {{seq .N "*v.ref.P%d"}}
}

// Load copies the viewed values out.
func (v View{{.N}}[{{.Params}}]) Load() Of{{.N}}[{{.Params}}] { return v.ref.Load() }
{{end}}`))
