package shapes

import (
	"go/types"
	"strings"

	"shape-generator/internal/concept"
	"shape-generator/internal/detect"
	"shape-generator/internal/project"
)

// Probe expressions of the built-in concepts.
const (
	staticArrayExpr = "[len(v0)]struct{}{}"
	iterableExpr    = "func() { for range v0.All() {} }"
	rangeExpr       = "func() { for range v0 {} }"
	optionalExpr    = "func() bool { _, ok := v0.Get(); return ok }"

	// StaticVisitName is the operation a static_visitable type provides,
	// as a method or as a function of its package.
	StaticVisitName = "StaticVisit"
)

// single returns the only candidate type.
func single(ts []types.Type) (types.Type, bool) {
	if len(ts) != 1 || ts[0] == nil {
		return nil, false
	}

	return ts[0], true
}

func verdict(ok bool) concept.Verdict {
	if ok {
		return concept.Implemented
	}

	return concept.Rejected
}

func (c *Catalog) staticVisitable() concept.Func[Shape] {
	accepts := func(t types.Type) detect.CallForm {
		return c.probe.ResolveCall(StaticVisitName, []string{c.probe.Wildcard()}, t)
	}

	return concept.Func[Shape]{
		ConceptName: KindStaticVisitable.ConceptName(),
		Verdict: func(ts ...types.Type) concept.Verdict {
			t, ok := single(ts)
			return verdict(ok && accepts(t) != detect.CallNone)
		},
		Build: func(ts ...types.Type) (Shape, error) {
			return Shape{Kind: KindStaticVisitable, Arity: Unbounded, Call: accepts(ts[0])}, nil
		},
	}
}

func (c *Catalog) staticArray() concept.Func[Shape] {
	return concept.Func[Shape]{
		ConceptName: KindStaticArray.ConceptName(),
		Probe:       staticArrayExpr,
		Verdict:     notPointer,
		Build: func(ts ...types.Type) (Shape, error) {
			arr := ts[0].Underlying().(*types.Array)
			return Shape{Kind: KindStaticArray, Arity: int(arr.Len()), Elems: []types.Type{arr.Elem()}}, nil
		},
	}
}

func (c *Catalog) tuple() concept.Func[Shape] {
	return concept.Func[Shape]{
		ConceptName: KindTuple.ConceptName(),
		Verdict: func(ts ...types.Type) concept.Verdict {
			t, ok := single(ts)
			return verdict(ok && IsTuple(t))
		},
		Build: func(ts ...types.Type) (Shape, error) {
			args := types.Unalias(ts[0]).(*types.Named).TypeArgs()

			elems := make([]types.Type, args.Len())
			for i := range elems {
				elems[i] = args.At(i)
			}

			return Shape{Kind: KindTuple, Arity: len(elems), Elems: elems}, nil
		},
	}
}

func (c *Catalog) aggregate() concept.Func[Shape] {
	return concept.Func[Shape]{
		ConceptName: KindAggregate.ConceptName(),
		Verdict: func(ts ...types.Type) concept.Verdict {
			t, ok := single(ts)
			return verdict(ok && c.arity.IsAggregate(t))
		},
		Build: func(ts ...types.Type) (Shape, error) {
			p, err := project.Project(c.arity, ts[0])
			if err != nil {
				return Shape{}, err
			}

			return Shape{
				Kind:       KindAggregate,
				Arity:      p.Arity,
				Elems:      p.Types().Slice(),
				Projection: p,
			}, nil
		},
	}
}

func (c *Catalog) iterable() concept.Func[Shape] {
	return concept.Func[Shape]{
		ConceptName: KindIterable.ConceptName(),
		Probe:       iterableExpr,
		Verdict: func(ts ...types.Type) concept.Verdict {
			if !c.rangeOverFunc {
				return concept.Rejected
			}

			return concept.Undecided
		},
		Build: func(ts ...types.Type) (Shape, error) {
			var elems []types.Type

			obj, _, _ := types.LookupFieldOrMethod(ts[0], true, nil, "All")
			if fn, ok := obj.(*types.Func); ok {
				if res := fn.Signature().Results(); res.Len() == 1 {
					elems = rangeElems(res.At(0).Type())
				}
			}

			return Shape{Kind: KindIterable, Arity: Unbounded, Elems: elems}, nil
		},
	}
}

func (c *Catalog) array() concept.Func[Shape] {
	return concept.Func[Shape]{
		ConceptName: KindArray.ConceptName(),
		Probe:       staticArrayExpr,
		Verdict:     notPointer,
		Build: func(ts ...types.Type) (Shape, error) {
			arr := ts[0].Underlying().(*types.Array)
			return Shape{Kind: KindArray, Arity: Unbounded, Elems: []types.Type{arr.Elem()}}, nil
		},
	}
}

func (c *Catalog) rangeConcept() concept.Func[Shape] {
	return concept.Func[Shape]{
		ConceptName: KindRange.ConceptName(),
		Probe:       rangeExpr,
		Verdict: func(ts ...types.Type) concept.Verdict {
			t, ok := single(ts)
			if !ok {
				return concept.Rejected
			}

			// Ranging over a pointer only works for arrays and over an
			// integer yields indices; neither is a container.
			switch u := t.Underlying().(type) {
			case *types.Pointer:
				return concept.Rejected
			case *types.Basic:
				if u.Info()&types.IsInteger != 0 {
					return concept.Rejected
				}
			case *types.Signature:
				if !c.rangeOverFunc {
					return concept.Rejected
				}
			}

			return concept.Undecided
		},
		Build: func(ts ...types.Type) (Shape, error) {
			return Shape{Kind: KindRange, Arity: Unbounded, Elems: rangeElems(ts[0])}, nil
		},
	}
}

func (c *Catalog) optional() concept.Func[Shape] {
	return concept.Func[Shape]{
		ConceptName: KindOptional.ConceptName(),
		Probe:       optionalExpr,
		// A pointer reaches its target's Get, yet nil pointers are not
		// empty optionals.
		Verdict: notPointer,
		Build: func(ts ...types.Type) (Shape, error) {
			var elems []types.Type

			obj, _, _ := types.LookupFieldOrMethod(ts[0], true, nil, "Get")
			if fn, ok := obj.(*types.Func); ok && fn.Signature().Results().Len() == 2 {
				elems = []types.Type{fn.Signature().Results().At(0).Type()}
			}

			return Shape{Kind: KindOptional, Arity: Unbounded, Elems: elems}, nil
		},
	}
}

func (c *Catalog) forbidden() concept.Func[Shape] {
	return concept.Func[Shape]{
		ConceptName: KindForbidden.ConceptName(),
		Verdict: func(ts ...types.Type) concept.Verdict {
			t, ok := single(ts)
			return verdict(ok && IsForbidden(t))
		},
		Build: func(...types.Type) (Shape, error) {
			return Shape{Kind: KindForbidden, Arity: Unbounded}, nil
		},
	}
}

// IsTuple reports whether t is an instantiation of a tuple.OfN type.
func IsTuple(t types.Type) bool {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return false
	}

	obj := named.Obj()

	return obj.Pkg() != nil && obj.Pkg().Path() == project.TuplePackage &&
		strings.HasPrefix(obj.Name(), "Of") &&
		named.TypeArgs().Len() == named.Origin().TypeParams().Len()
}

// IsForbidden reports whether values of t have no serialisable content of
// their own: raw pointers, funcs, channels and empty structs.
func IsForbidden(t types.Type) bool {
	switch u := t.Underlying().(type) {
	case *types.Basic:
		return u.Kind() == types.UnsafePointer
	case *types.Pointer, *types.Signature, *types.Chan:
		return true
	case *types.Struct:
		return u.NumFields() == 0
	default:
		return false
	}
}

// notPointer vetoes pointers: len and range see through pointers to
// arrays, but a pointer is not a container.
func notPointer(ts ...types.Type) concept.Verdict {
	t, ok := single(ts)
	if !ok {
		return concept.Rejected
	}

	if _, isPtr := t.Underlying().(*types.Pointer); isPtr {
		return concept.Rejected
	}

	return concept.Undecided
}

// rangeElems returns the types a range statement over t yields.
func rangeElems(t types.Type) []types.Type {
	switch u := t.Underlying().(type) {
	case *types.Basic:
		if u.Info()&types.IsString != 0 {
			return []types.Type{types.Universe.Lookup("rune").Type()}
		}
	case *types.Array:
		return []types.Type{u.Elem()}
	case *types.Slice:
		return []types.Type{u.Elem()}
	case *types.Map:
		return []types.Type{u.Key(), u.Elem()}
	case *types.Chan:
		return []types.Type{u.Elem()}
	case *types.Signature:
		if u.Params().Len() != 1 {
			return nil
		}

		yield, ok := u.Params().At(0).Type().Underlying().(*types.Signature)
		if !ok {
			return nil
		}

		out := make([]types.Type, yield.Params().Len())
		for i := range out {
			out[i] = yield.Params().At(i).Type()
		}

		return out
	}

	return nil
}
