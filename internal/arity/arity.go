package arity

import (
	"errors"
	"fmt"
	"go/types"
	"strings"
	"sync"

	"shape-generator/internal/detect"
)

const (
	// NotDecomposable is the arity of types that cannot be destructured.
	NotDecomposable = -1
	// DefaultMaxArity matches the arities generated in the tuple package.
	DefaultMaxArity = 10
)

var (
	// ErrArityOverflow is returned when a struct has more fields than the
	// probe ceiling.
	ErrArityOverflow = errors.New("arity exceeds the supported maximum")
	// ErrUnionAmbiguity is returned when a struct contains a field typed by
	// a union-constrained type parameter.
	ErrUnionAmbiguity = errors.New("union-constrained field defeats the arity probe")
)

// Prober computes arities.
type Prober struct {
	probe *detect.Prober
	max   int

	mu    sync.Mutex
	cache map[types.Type]result
}

type result struct {
	arity int
	err   error
}

// Option customizes a Prober.
type Option func(*Prober)

// WithMaxArity sets the probe ceiling. Non-positive values are ignored.
func WithMaxArity(n int) Option {
	return func(p *Prober) {
		if n > 0 {
			p.max = n
		}
	}
}

// NewProber creates a Prober on top of a detection prober.
func NewProber(probe *detect.Prober, opts ...Option) *Prober {
	if probe == nil {
		probe = detect.NewProber()
	}

	p := &Prober{
		probe: probe,
		max:   DefaultMaxArity,
		cache: make(map[types.Type]result),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Max returns the probe ceiling.
func (p *Prober) Max() int {
	return p.max
}

// Detector returns the underlying detection prober.
func (p *Prober) Detector() *detect.Prober {
	return p.probe
}

// BraceConstructible reports whether T{wildcard x n} type-checks.
func (p *Prober) BraceConstructible(t types.Type, n int) bool {
	return p.probe.Detected(BraceExpr(p.probe.Wildcard(), n), t)
}

// BraceExpr returns the composite literal probe with n wildcard values.
func BraceExpr(wildcard string, n int) string {
	values := make([]string, n)
	for i := range values {
		values[i] = wildcard
	}

	return detect.TypeName(0) + "{" + strings.Join(values, ", ") + "}"
}

// Of returns the arity of t, or NotDecomposable.
func (p *Prober) Of(t types.Type) (int, error) {
	p.mu.Lock()
	if r, ok := p.cache[t]; ok {
		p.mu.Unlock()
		return r.arity, r.err
	}
	p.mu.Unlock()

	n, err := p.compute(t)

	p.mu.Lock()
	p.cache[t] = result{arity: n, err: err}
	p.mu.Unlock()

	return n, err
}

// IsAggregate reports whether t has a valid arity.
func (p *Prober) IsAggregate(t types.Type) bool {
	n, err := p.Of(t)
	return err == nil && n >= 0
}

func (p *Prober) compute(t types.Type) (int, error) {
	st, ok := t.Underlying().(*types.Struct)
	if !ok {
		return NotDecomposable, nil
	}

	if path, found := findUnion(st, nil); found {
		return NotDecomposable, fmt.Errorf("%s: field %s: %w", t, path, ErrUnionAmbiguity)
	}

	best := NotDecomposable
	for n := 0; n <= p.max+1; n++ {
		if p.BraceConstructible(t, n) {
			best = n
		}
	}

	switch {
	case best == NotDecomposable:
		return NotDecomposable, nil
	case best == 0 && hasHiddenField(st):
		// Only the empty literal type-checks: some fields are not reachable
		// from outside the declaring package, whatever the field count.
		return NotDecomposable, nil
	case best > p.max, best == 0 && st.NumFields() > p.max:
		return NotDecomposable, fmt.Errorf(
			"%s has %d fields, the maximum is %d: %w (raise max_arity and regenerate the tuple package, or split the type)",
			t, st.NumFields(), p.max, ErrArityOverflow)
	case best == 0 && st.NumFields() > 0:
		return NotDecomposable, nil
	}

	return best, nil
}

func hasHiddenField(st *types.Struct) bool {
	for i := range st.NumFields() {
		if !st.Field(i).Exported() {
			return true
		}
	}

	return false
}

// findUnion returns the path of the first field typed by a union-constrained
// type parameter.
func findUnion(t types.Type, seen map[types.Type]bool) (string, bool) {
	if seen == nil {
		seen = make(map[types.Type]bool)
	}

	if seen[t] {
		return "", false
	}
	seen[t] = true

	switch tt := types.Unalias(t).(type) {
	case *types.TypeParam:
		if iface, ok := tt.Constraint().Underlying().(*types.Interface); ok && hasUnion(iface, nil) {
			return "", true
		}
	case *types.Named:
		if st, ok := tt.Underlying().(*types.Struct); ok {
			return findUnion(st, seen)
		}
	case *types.Struct:
		for i := range tt.NumFields() {
			f := tt.Field(i)
			if path, found := findUnion(f.Type(), seen); found {
				if path == "" {
					return f.Name(), true
				}

				return f.Name() + "." + path, true
			}
		}
	case *types.Pointer:
		return findUnion(tt.Elem(), seen)
	case *types.Array:
		return findUnion(tt.Elem(), seen)
	case *types.Slice:
		return findUnion(tt.Elem(), seen)
	}

	return "", false
}

// hasUnion reports whether iface, or an interface it embeds, carries a
// union of two or more terms.
func hasUnion(iface *types.Interface, seen map[*types.Interface]bool) bool {
	if seen == nil {
		seen = make(map[*types.Interface]bool)
	}

	if seen[iface] {
		return false
	}
	seen[iface] = true

	for i := range iface.NumEmbeddeds() {
		switch e := types.Unalias(iface.EmbeddedType(i)).(type) {
		case *types.Union:
			if e.Len() > 1 {
				return true
			}
		default:
			if inner, ok := e.Underlying().(*types.Interface); ok && hasUnion(inner, seen) {
				return true
			}
		}
	}

	return false
}
