package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"log/slog"
	"strings"
	"text/template"
	"unicode"

	"shape-generator/internal/analyze"
	"shape-generator/internal/common"
	"shape-generator/internal/config"
	"shape-generator/internal/plan"
	"shape-generator/internal/project"
)

// ErrNothingToGenerate is returned when a package has no aggregate.
var ErrNothingToGenerate = errors.New("nothing to generate")

// Generator generates Go code from a resolved plan.
type Generator struct {
	logger *slog.Logger
	// debugDir receives unformatted sources when formatting fails.
	debugDir string
}

// Option customizes a Generator.
type Option func(*Generator)

// WithLogger overrides the logger.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithDebugDir writes unformatted code next to the intended output when
// go/format rejects it.
func WithDebugDir(dir string) Option {
	return func(g *Generator) {
		g.debugDir = dir
	}
}

// NewGenerator creates a new Generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{logger: slog.Default()}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the package directory the file belongs to.
	Dir string
	// Filename is the name of the file (e.g., "shape_gen.go").
	Filename string
	// Package is the import path of the package.
	Package string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate generates one file per package of the plan that has at least
// one type to generate. Plans with error diagnostics are refused.
func (g *Generator) Generate(p *plan.Plan) ([]GeneratedFile, error) {
	if err := p.Diagnostics.Error(); err != nil {
		return nil, fmt.Errorf("plan has errors: %w", err)
	}

	var files []GeneratedFile

	for _, pp := range p.Packages {
		file, err := g.GeneratePackage(p, pp)
		if errors.Is(err, ErrNothingToGenerate) {
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", pp.Path, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

// GeneratePackage generates the shape file of one package.
func (g *Generator) GeneratePackage(p *plan.Plan, pp *plan.PackagePlan) (*GeneratedFile, error) {
	types := pp.Generated()
	if common.IsEmpty(types) {
		return nil, ErrNothingToGenerate
	}

	s := analyze.NewTypeStringer(pp.Path)
	// Reserve the tuple name before any field type can claim it.
	tuplePkg := s.Use(project.TuplePackage, "tuple")

	data := &templateData{
		Header:      common.GeneratedHeader,
		PackageName: pp.Name,
		Methods:     p.Methods,
	}

	for _, tp := range types {
		data.Types = append(data.Types, buildTypeData(tp, s, tuplePkg))
	}

	data.Imports = s.Imports()

	content, err := g.render(shapeTemplate, data, pp.Dir, p.Filename)
	if err != nil {
		return nil, err
	}

	g.logger.Debug("package generated",
		slog.String("package", pp.Path),
		slog.Int("types", len(types)))

	return &GeneratedFile{Dir: pp.Dir, Filename: p.Filename, Package: pp.Path, Content: content}, nil
}

// render executes tmpl and formats the result.
func (g *Generator) render(tmpl *template.Template, data any, dir, filename string) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		debugDir := g.debugDir
		if debugDir == "" {
			debugDir = dir
		}

		// Best-effort: the sidecar only helps debugging.
		if werr := writeDebugUnformatted(debugDir, filename, buf.Bytes()); werr != nil {
			g.logger.Warn("writing unformatted source", slog.String("err", werr.Error()))
		}

		return nil, fmt.Errorf("formatting code: %w", err)
	}

	return formatted, nil
}

type templateData struct {
	Header      string
	PackageName string
	Imports     []analyze.Import
	Methods     config.Methods
	Types       []typeData
}

type typeData struct {
	Name      string
	ShapeName string
	ArityName string
	Arity     int
	Recv      string
	// Of, Ref and View spell the tuple types.
	Of, Ref, View string
	// Refs are "P0: &x.A" initialisers, Values "F0: x.A".
	Refs, Values []string
}

func buildTypeData(tp *plan.TypePlan, s *analyze.TypeStringer, tuplePkg string) typeData {
	name := tp.Name()
	recv := receiverName(name)
	q := s.Qualifier()

	spell := func(cat project.Category) string {
		return tuplePkg + strings.TrimPrefix(tp.Projection.TupleType(cat, q), "tuple")
	}

	td := typeData{
		Name:      name,
		ShapeName: plan.ShapeName(name),
		ArityName: plan.ArityName(name),
		Arity:     tp.Projection.Arity,
		Recv:      recv,
		Of:        spell(project.Move),
		Ref:       spell(project.Mutable),
		View:      spell(project.Const),
	}

	for i, sel := range tp.Projection.Selectors(recv) {
		td.Refs = append(td.Refs, fmt.Sprintf("P%d: &%s", i, sel))
		td.Values = append(td.Values, fmt.Sprintf("F%d: %s", i, sel))
	}

	return td
}

// receiverName returns the lower-cased first letter of a type name.
func receiverName(typeName string) string {
	for _, r := range typeName {
		if r == '_' {
			break
		}

		return string(unicode.ToLower(r))
	}

	return "x"
}

var shapeTemplate = template.Must(template.New("shape").Funcs(template.FuncMap{
	"join": func(items []string) string { return strings.Join(items, ", ") },
}).Parse(`{{.Header}}

package {{.PackageName}}

{{if .Imports}}
import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{end}}
{{$m := .Methods}}
{{range .Types}}
// {{.ShapeName}} is the tuple of the field types of {{.Name}}.
type {{.ShapeName}} = {{.Of}}

// {{.ArityName}} is the number of fields of {{.Name}}.
const {{.ArityName}} = {{.Arity}}

// {{$m.Fields}} returns references to the fields of {{.Recv}} in declaration order.
func ({{.Recv}} *{{.Name}}) {{$m.Fields}}() {{.Ref}} {
	return {{.Ref}}{ {{join .Refs}} }
}

// {{$m.View}} returns a read-only projection of the fields of {{.Recv}}.
func ({{.Recv}} *{{.Name}}) {{$m.View}}() {{.View}} {
	return {{.Recv}}.{{$m.Fields}}().View()
}

// {{$m.Tuple}} returns a copy of the fields of {{.Recv}}.
func ({{.Recv}} {{.Name}}) {{$m.Tuple}}() {{.ShapeName}} {
	return {{.ShapeName}}{ {{join .Values}} }
}
{{end}}
`))
