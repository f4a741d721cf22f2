package detect

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"log/slog"
	"strconv"
)

// Placeholder names bound in every probe scope.
const (
	TypePrefix    = "T"
	VarPrefix     = "v"
	WildcardName  = "wildcard"
	probePkgPath  = "shape-generator/probe"
	probePkgName  = "probe"
	probeFilename = "probe.expr"
)

// ErrMalformedProbe reports a probe expression that cannot even be parsed.
// Such an expression is ill-formed regardless of the candidate types, which
// is a bug in the caller rather than a negative answer.
var ErrMalformedProbe = errors.New("malformed probe expression")

// Prober type-checks probe expressions.
type Prober struct {
	logger   *slog.Logger
	wildcard string
}

// Option customizes a Prober.
type Option func(*Prober)

// WithLogger overrides the logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Prober) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithWildcardName renames the wildcard placeholder.
func WithWildcardName(name string) Option {
	return func(p *Prober) {
		if token.IsIdentifier(name) {
			p.wildcard = name
		}
	}
}

// NewProber creates a Prober.
func NewProber(opts ...Option) *Prober {
	p := &Prober{
		logger:   slog.Default(),
		wildcard: WildcardName,
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Wildcard returns the name of the wildcard placeholder.
func (p *Prober) Wildcard() string {
	return p.wildcard
}

// Detected reports whether expr type-checks with the placeholders bound to ts.
func (p *Prober) Detected(expr string, ts ...types.Type) bool {
	err := p.Check(expr, ts...)
	if errors.Is(err, ErrMalformedProbe) {
		p.logger.Warn("probe expression does not parse",
			slog.String("expr", expr),
			slog.String("err", err.Error()))
	}

	return err == nil
}

// Check type-checks expr with the placeholders bound to ts and returns the
// first type error, if any.
func (p *Prober) Check(expr string, ts ...types.Type) error {
	fset := token.NewFileSet()

	node, err := parser.ParseExprFrom(fset, probeFilename, expr, 0)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrMalformedProbe, expr, err)
	}

	return p.CheckNode(fset, node, ts...)
}

// CheckNode is Check for an already parsed expression.
func (p *Prober) CheckNode(fset *token.FileSet, expr ast.Expr, ts ...types.Type) error {
	for i, t := range ts {
		if t == nil {
			return fmt.Errorf("%w: candidate type %d is nil", ErrMalformedProbe, i)
		}
	}

	pkg := p.newScope(ts)

	return types.CheckExpr(fset, pkg, token.NoPos, expr, nil)
}

// newScope builds the synthetic package a single check runs in.
func (p *Prober) newScope(ts []types.Type) *types.Package {
	pkg := types.NewPackage(probePkgPath, probePkgName)
	scope := pkg.Scope()

	scope.Insert(types.NewVar(token.NoPos, pkg, p.wildcard, types.Typ[types.Invalid]))

	for i, t := range ts {
		scope.Insert(types.NewTypeName(token.NoPos, pkg, TypeName(i), t))
		scope.Insert(types.NewVar(token.NoPos, pkg, VarName(i), t))
	}

	// Free functions from the candidates' own packages. The first
	// declaration of a name wins; placeholders are never shadowed.
	seen := make(map[*types.Package]bool)
	for _, t := range ts {
		home := homePackage(t)
		if home == nil || seen[home] {
			continue
		}
		seen[home] = true

		for _, name := range home.Scope().Names() {
			if fn, ok := home.Scope().Lookup(name).(*types.Func); ok {
				scope.Insert(fn)
			}
		}
	}

	return pkg
}

// homePackage returns the package declaring t, looking through pointers.
func homePackage(t types.Type) *types.Package {
	for {
		switch tt := types.Unalias(t).(type) {
		case *types.Named:
			return tt.Obj().Pkg()
		case *types.Pointer:
			t = tt.Elem()
		default:
			return nil
		}
	}
}

// TypeName returns the placeholder naming the i-th candidate type.
func TypeName(i int) string {
	return TypePrefix + strconv.Itoa(i)
}

// VarName returns the placeholder naming a variable of the i-th candidate type.
func VarName(i int) string {
	return VarPrefix + strconv.Itoa(i)
}
