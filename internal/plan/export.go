package plan

import (
	"go/types"
	"slices"

	"gopkg.in/yaml.v3"

	"shape-generator/internal/config"
	"shape-generator/internal/diagnostic"
	"shape-generator/internal/shapes"
)

// Report is the serialisable view of a Plan.
type Report struct {
	Packages    []PackageReport    `json:"packages" jsonschema:"description=Analyzed packages in import path order"`
	Diagnostics []DiagnosticReport `json:"diagnostics" jsonschema:"description=Errors first then warnings then infos"`
}

// PackageReport describes one package.
type PackageReport struct {
	Path  string       `json:"path"`
	Name  string       `json:"name"`
	Types []TypeReport `json:"types"`
}

// TypeReport describes the resolution of one type.
type TypeReport struct {
	Name string `json:"name"`
	Kind string `json:"kind" jsonschema:"enum=basic,enum=struct,enum=pointer,enum=slice,enum=array,enum=map,enum=chan,enum=func,enum=interface,enum=unknown"`
	// Arity is omitted for types that are not decomposable.
	Arity    *int     `json:"arity,omitempty" jsonschema:"minimum=0"`
	Fields   []string `json:"fields,omitempty" jsonschema:"description=Projected element types in field order"`
	Serial   string   `json:"serial,omitempty" jsonschema:"description=Concept deciding serialisation"`
	Elems    []string `json:"elems,omitempty" jsonschema:"description=Element types of the serial shape"`
	Tuple    string   `json:"tuple,omitempty"`
	Range    string   `json:"range,omitempty"`
	Generate bool     `json:"generate"`
}

// DiagnosticReport is a serialisable diagnostic.
type DiagnosticReport struct {
	Severity    string   `json:"severity" jsonschema:"enum=error,enum=warning,enum=info"`
	Code        string   `json:"code"`
	Message     string   `json:"message"`
	Type        string   `json:"type,omitempty"`
	Field       string   `json:"field,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// Report builds the serialisable view of the plan. Types are written
// relative to their own package.
func (p *Plan) Report() Report {
	r := Report{
		Packages:    make([]PackageReport, 0, len(p.Packages)),
		Diagnostics: exportDiagnostics(&p.Diagnostics),
	}

	for _, pp := range p.Packages {
		pr := PackageReport{Path: pp.Path, Name: pp.Name, Types: make([]TypeReport, 0, len(pp.Types))}
		qualifier := relativeTo(pp.Path)

		for _, tp := range pp.Types {
			tr := TypeReport{
				Name:     tp.Name(),
				Kind:     tp.Info.Kind.String(),
				Serial:   tp.Serial.Concept,
				Elems:    typeStrings(tp.Serial.Elems(), qualifier),
				Tuple:    tp.Tuple.Concept,
				Range:    tp.Range.Concept,
				Generate: tp.Generate,
			}

			if tp.Decomposable() {
				n := tp.Arity
				tr.Arity = &n
			}

			if tp.Projection != nil {
				tr.Fields = typeStrings(tp.Projection.Types().Slice(), qualifier)
			}

			pr.Types = append(pr.Types, tr)
		}

		r.Packages = append(r.Packages, pr)
	}

	return r
}

func exportDiagnostics(d *diagnostic.Diagnostics) []DiagnosticReport {
	all := d.All()
	out := make([]DiagnosticReport, 0, len(all))

	for _, diag := range all {
		out = append(out, DiagnosticReport{
			Severity:    diag.Severity.String(),
			Code:        diag.Code,
			Message:     diag.Message,
			Type:        diag.Type,
			Field:       diag.Field,
			Suggestions: diag.Suggestions,
		})
	}

	return out
}

func relativeTo(pkgPath string) types.Qualifier {
	return func(p *types.Package) string {
		if p.Path() == pkgPath {
			return ""
		}

		return p.Name()
	}
}

func typeStrings(ts []types.Type, q types.Qualifier) []string {
	if len(ts) == 0 {
		return nil
	}

	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = types.TypeString(t, q)
	}

	return out
}

// ExportConfig suggests a configuration pinning the current outcome: types
// that resolved are required, types with errors are excluded.
func ExportConfig(p *Plan, base *config.File) *config.File {
	out := config.Default()
	if base != nil {
		clone := *base
		out = &clone
	}

	failed := make(map[string]bool)
	for _, d := range p.Diagnostics.Errors {
		if d.Type != "" {
			failed[d.Type] = true
		}
	}

	out.Require = nil
	out.Exclude = slices.Clone(out.Exclude)

	for _, pp := range p.Packages {
		for _, tp := range pp.Types {
			id := tp.Info.ID.String()

			switch {
			case failed[id]:
				out.Exclude = append(out.Exclude, id)
			case tp.Serial.Resolved() && tp.Serial.Concept != shapes.KindForbidden.ConceptName():
				out.Require = append(out.Require, id)
			}
		}
	}

	slices.Sort(out.Require)
	slices.Sort(out.Exclude)
	out.Exclude = slices.Compact(out.Exclude)

	return out
}

// ExportConfigYAML generates the suggested configuration as YAML.
func ExportConfigYAML(p *Plan, base *config.File) ([]byte, error) {
	return yaml.Marshal(ExportConfig(p, base))
}
