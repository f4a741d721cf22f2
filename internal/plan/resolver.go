package plan

import (
	"context"
	"errors"
	"fmt"
	"go/parser"
	"log/slog"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"shape-generator/internal/analyze"
	"shape-generator/internal/arity"
	"shape-generator/internal/common"
	"shape-generator/internal/concept"
	"shape-generator/internal/config"
	"shape-generator/internal/detect"
	"shape-generator/internal/diagnostic"
	"shape-generator/internal/match"
	"shape-generator/internal/project"
	"shape-generator/internal/shapes"
)

// ErrNilGraph is returned when resolving without a type graph.
var ErrNilGraph = errors.New("type graph is required")

// Resolver performs the resolution pipeline.
type Resolver struct {
	logger   *slog.Logger
	graph    *analyze.TypeGraph
	cfg      *config.File
	arity    *arity.Prober
	parallel int

	require map[analyze.TypeID]bool
	exclude map[analyze.TypeID]bool
	// catalogs by module go version
	catalogs map[string]*shapes.Catalog
}

// Option customizes a Resolver.
type Option func(*Resolver)

// WithLogger overrides the logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithParallelism bounds the number of packages resolved at once.
// Non-positive values select GOMAXPROCS.
func WithParallelism(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.parallel = n
		}
	}
}

// NewResolver creates a new Resolver. A nil config selects the defaults.
func NewResolver(graph *analyze.TypeGraph, cfg *config.File, opts ...Option) *Resolver {
	if cfg == nil {
		cfg = config.Default()
	}

	r := &Resolver{
		logger:   slog.Default(),
		graph:    graph,
		cfg:      cfg,
		parallel: runtime.GOMAXPROCS(0),
		require:  config.TypeSet(cfg.Require),
		exclude:  config.TypeSet(cfg.Exclude),
		catalogs: make(map[string]*shapes.Catalog),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.arity = arity.NewProber(detect.NewProber(detect.WithLogger(r.logger)), arity.WithMaxArity(cfg.MaxArity))

	return r
}

// Resolve runs the full resolution pipeline and returns a Plan.
// Problems with individual types are reported as diagnostics; the error
// is only set when resolution could not run.
func (r *Resolver) Resolve(ctx context.Context) (*Plan, error) {
	if r.graph == nil {
		return nil, ErrNilGraph
	}

	plan := &Plan{
		Methods:  r.cfg.Methods,
		Filename: r.cfg.Output.Filename,
	}

	paths := r.graph.SortedPackages()

	// Catalogs are built up front so that configuration errors surface
	// before any probing starts.
	for _, path := range paths {
		if _, err := r.catalog(r.graph.Packages[path].GoVersion); err != nil {
			return nil, err
		}
	}

	if first, ok := common.First(paths); ok {
		plan.Diagnostics.Merge(CheckProbes(r.catalogs[r.graph.Packages[first].GoVersion].Serial()))
	}

	r.checkReferences(&plan.Diagnostics)

	pkgs := make([]*PackagePlan, len(paths))
	diags := make([]diagnostic.Diagnostics, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallel)

	for i, path := range paths {
		g.Go(func() error {
			pkg := r.graph.Packages[path]

			pp, err := r.resolvePackage(gctx, r.catalogs[pkg.GoVersion], pkg, &diags[i])
			if err != nil {
				return fmt.Errorf("resolve %s: %w", path, err)
			}

			pkgs[i] = pp

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	plan.Packages = pkgs
	for _, d := range diags {
		plan.Diagnostics.Merge(d)
	}

	r.logger.Debug("resolution finished",
		slog.Int("packages", len(pkgs)),
		slog.Int("errors", len(plan.Diagnostics.Errors)),
		slog.Int("warnings", len(plan.Diagnostics.Warnings)))

	return plan, nil
}

// catalog returns the concept catalog for a module go version.
func (r *Resolver) catalog(goVersion string) (*shapes.Catalog, error) {
	if c, ok := r.catalogs[goVersion]; ok {
		return c, nil
	}

	c, err := shapes.New(r.arity,
		shapes.WithLogger(r.logger),
		shapes.WithOverrides(r.cfg.Overrides()),
		shapes.WithGoVersion(goVersion))
	if err != nil {
		return nil, err
	}

	r.catalogs[goVersion] = c

	return c, nil
}

// checkReferences reports require and exclude entries naming no loaded type.
func (r *Resolver) checkReferences(diags *diagnostic.Diagnostics) {
	known := r.graph.TypeIDs()

	report := func(id analyze.TypeID, severity diagnostic.DiagnosticSeverity, key string) {
		d := diagnostic.Diagnostic{
			Severity: severity,
			Code:     diagnostic.CodeUnknownType,
			Message:  fmt.Sprintf("%s names a type that was not loaded", key),
			Type:     id.String(),
		}
		if s := suggestType(id.String(), known); s != "" {
			d.Suggestions = []string{"did you mean " + s + "?"}
		}

		diags.Add(d)
	}

	for _, id := range sortedIDs(r.require) {
		if r.graph.GetType(id) == nil {
			report(id, diagnostic.DiagnosticError, "require")
		}
	}

	for _, id := range sortedIDs(r.exclude) {
		if r.graph.GetType(id) == nil {
			report(id, diagnostic.DiagnosticWarning, "exclude")
		}
	}
}

func suggestType(ref string, known []string) string {
	s, _ := match.Suggest(ref, known)
	return s
}

func sortedIDs(set map[analyze.TypeID]bool) []analyze.TypeID {
	out := make([]analyze.TypeID, 0, len(set))
	for id := range set {
		out = append(out, id)
	}

	slices.SortFunc(out, func(a, b analyze.TypeID) int {
		return strings.Compare(a.String(), b.String())
	})

	return out
}

// resolvePackage resolves every type of a package.
func (r *Resolver) resolvePackage(
	ctx context.Context,
	cat *shapes.Catalog,
	pkg *analyze.PackageInfo,
	diags *diagnostic.Diagnostics,
) (*PackagePlan, error) {
	pp := &PackagePlan{Path: pkg.Path, Name: pkg.Name, Dir: pkg.Dir}

	if len(pkg.Problems) > 0 {
		diags.AddWarning(diagnostic.CodeTypeErrors,
			fmt.Sprintf("package has %d type errors, first: %s", len(pkg.Problems), pkg.Problems[0]),
			pkg.Path, "")
	}

	lists := resolveLists{serial: cat.Serial(), tuple: cat.Tuple(), rng: cat.Range()}

	for _, info := range r.graph.TypesOf(pkg.Path) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if r.exclude[info.ID] {
			r.logger.Debug("type excluded", slog.String("type", info.ID.String()))
			continue
		}

		pp.Types = append(pp.Types, r.resolveType(cat, lists, pkg, info, diags))
	}

	return pp, nil
}

type resolveLists struct {
	serial, tuple, rng concept.List[shapes.Shape]
}

// resolveType resolves a single type.
func (r *Resolver) resolveType(
	cat *shapes.Catalog,
	lists resolveLists,
	pkg *analyze.PackageInfo,
	info *analyze.TypeInfo,
	diags *diagnostic.Diagnostics,
) *TypePlan {
	id := info.ID.String()
	tp := &TypePlan{Info: info, Arity: arity.NotDecomposable}
	failed := false

	n, err := r.arity.Of(info.GoType)

	switch {
	case errors.Is(err, arity.ErrArityOverflow):
		diags.Add(diagnostic.Diagnostic{
			Severity: diagnostic.DiagnosticError, Code: diagnostic.CodeArityOverflow,
			Message: err.Error(), Type: id, Err: err,
		})

		failed = true
	case errors.Is(err, arity.ErrUnionAmbiguity):
		diags.Add(diagnostic.Diagnostic{
			Severity: diagnostic.DiagnosticError, Code: diagnostic.CodeUnionAmbiguity,
			Message: err.Error(), Type: id, Err: err,
			Suggestions: []string{"use a single-term constraint or declare the field with a concrete type"},
		})

		failed = true
	case err != nil:
		diags.Add(diagnostic.Diagnostic{
			Severity: diagnostic.DiagnosticError, Code: diagnostic.CodeNotDecomposable,
			Message: err.Error(), Type: id, Err: err,
		})

		failed = true
	case n == arity.NotDecomposable && info.Kind == analyze.TypeKindStruct:
		diags.AddInfo(diagnostic.CodeNotDecomposable, notDecomposableReason(info), id, "")
	default:
		tp.Arity = n
	}

	// Generic declarations cannot be probed as candidates until they are
	// instantiated.
	if info.IsGeneric() {
		return tp
	}

	r.resolveSerial(cat, lists.serial, tp, diags)

	if e, ok := concept.Pick(cat.Detector(), lists.tuple, info.GoType); ok {
		tp.Tuple = Choice{Concept: e.Concept.Name(), Priority: e.Priority}
	}

	if e, ok := concept.Pick(cat.Detector(), lists.rng, info.GoType); ok {
		tp.Range = Choice{Concept: e.Concept.Name(), Priority: e.Priority}
	}

	if failed || tp.Arity <= 0 || tp.Serial.Concept == shapes.KindForbidden.ConceptName() || shapes.IsTuple(info.GoType) {
		return tp
	}

	if r.collides(pkg, info, diags) {
		return tp
	}

	proj, err := project.Project(r.arity, info.GoType)
	if err != nil {
		diags.Add(diagnostic.Diagnostic{
			Severity: diagnostic.DiagnosticError, Code: diagnostic.CodeNotDecomposable,
			Message: err.Error(), Type: id, Err: err,
		})

		return tp
	}

	tp.Projection = proj
	tp.Generate = true

	return tp
}

// resolveSerial resolves the serial list; required types must match.
func (r *Resolver) resolveSerial(
	cat *shapes.Catalog,
	serial concept.List[shapes.Shape],
	tp *TypePlan,
	diags *diagnostic.Diagnostics,
) {
	id := tp.Info.ID.String()
	required := r.require[tp.Info.ID]

	if !required && !concept.HasMatch(cat.Detector(), serial, tp.Info.GoType) {
		return
	}

	res, err := concept.Resolve(cat.Detector(), serial, tp.Info.GoType)

	var noMatch *concept.NoMatchError

	switch {
	case errors.As(err, &noMatch):
		diags.Add(diagnostic.Diagnostic{
			Severity: diagnostic.DiagnosticError, Code: diagnostic.CodeNoConceptMatch,
			Message:     "required type matches no concept",
			Type:        id,
			Suggestions: []string{"tried: " + strings.Join(noMatch.Candidates, ", ")},
			Err:         err,
		})

		return
	case err != nil:
		diags.Add(diagnostic.Diagnostic{
			Severity: diagnostic.DiagnosticError, Code: diagnostic.CodeNoConceptMatch,
			Message: err.Error(), Type: id, Err: err,
		})

		return
	}

	shape := res.Value
	tp.Serial = Choice{Concept: res.Entry.Concept.Name(), Priority: res.Entry.Priority, Shape: &shape}

	if shape.Kind == shapes.KindForbidden {
		diags.AddWarning(diagnostic.CodeForbiddenType,
			fmt.Sprintf("%s values cannot be serialised", tp.Info.Kind), id, "")
	}
}

// collides reports generated names already declared by the user.
func (r *Resolver) collides(pkg *analyze.PackageInfo, info *analyze.TypeInfo, diags *diagnostic.Diagnostics) bool {
	id := info.ID.String()
	found := false

	for _, name := range r.cfg.Methods.Names() {
		if info.HasMember(name) {
			diags.AddError(diagnostic.CodeMethodCollision,
				fmt.Sprintf("%s already declares %s; rename it or configure methods", info.ID.Name, name),
				id, name)

			found = true
		}
	}

	if pkg.Pkg == nil {
		return found
	}

	for _, name := range []string{ShapeName(info.ID.Name), ArityName(info.ID.Name)} {
		if pkg.Pkg.Scope().Lookup(name) != nil {
			diags.AddError(diagnostic.CodeMethodCollision,
				fmt.Sprintf("package %s already declares %s", pkg.Name, name),
				id, name)

			found = true
		}
	}

	return found
}

// ShapeName returns the name of the generated tuple alias of a type.
func ShapeName(typeName string) string {
	return typeName + "Shape"
}

// ArityName returns the name of the generated arity constant of a type.
func ArityName(typeName string) string {
	return typeName + "Arity"
}

func notDecomposableReason(info *analyze.TypeInfo) string {
	if info.IsGeneric() {
		return "generic types are decomposable only once instantiated"
	}

	for _, f := range info.Fields {
		if !f.Exported {
			return fmt.Sprintf("unexported field %s is not reachable from other packages", f.Name)
		}
	}

	return "the struct cannot be built positionally"
}

// CheckProbes reports concepts whose probe expression does not parse.
func CheckProbes[I any](l concept.List[I]) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	for _, e := range l.All() {
		expr := e.Concept.Expr()
		if expr == "" {
			continue
		}

		if _, err := parser.ParseExpr(expr); err != nil {
			diags.Add(diagnostic.Diagnostic{
				Severity: diagnostic.DiagnosticError,
				Code:     diagnostic.CodeMalformedProbe,
				Message:  fmt.Sprintf("concept %s: %v", e.Concept.Name(), err),
				Field:    e.Concept.Name(),
				Err:      fmt.Errorf("%w: %w", detect.ErrMalformedProbe, err),
			})
		}
	}

	return diags
}
