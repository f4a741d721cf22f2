package diagnostic

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"shape-generator/internal/common"
)

// Diagnostic codes.
const (
	// CodeNotDecomposable: the type has no arity (hidden fields, not a
	// struct, uninstantiated generic).
	CodeNotDecomposable = "NOT_DECOMPOSABLE"
	// CodeArityOverflow: the struct has more fields than max_arity.
	CodeArityOverflow = "ARITY_OVERFLOW"
	// CodeUnionAmbiguity: a field is typed by a union-constrained type
	// parameter.
	CodeUnionAmbiguity = "UNION_AMBIGUITY"
	// CodeNoConceptMatch: no concept accepts a type that must resolve.
	CodeNoConceptMatch = "NO_CONCEPT_MATCH"
	// CodeForbiddenType: the type resolves to the forbidden concept.
	CodeForbiddenType = "FORBIDDEN_TYPE"
	// CodeMethodCollision: the type already has a member named like a
	// generated method.
	CodeMethodCollision = "METHOD_COLLISION"
	// CodeMalformedProbe: a probe expression does not parse.
	CodeMalformedProbe = "MALFORMED_PROBE"
	// CodeUnknownType: the configuration names a type that was not loaded.
	CodeUnknownType = "UNKNOWN_TYPE"
	// CodeTypeErrors: a package loaded with type errors.
	CodeTypeErrors = "TYPE_ERRORS"
)

// Diagnostics holds all diagnostic information from resolution.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Type identifies the analyzed type this relates to (if any).
	Type string
	// Field identifies the field this relates to (if any).
	Field string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
	// Err is the underlying error, kept for errors.Is.
	Err error
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Add records a diagnostic in the bucket of its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case DiagnosticError:
		d.Errors = append(d.Errors, diag)
	case DiagnosticWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, typeID, field string) {
	d.Add(Diagnostic{Severity: DiagnosticError, Code: code, Message: message, Type: typeID, Field: field})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, typeID, field string) {
	d.Add(Diagnostic{Severity: DiagnosticWarning, Code: code, Message: message, Type: typeID, Field: field})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, typeID, field string) {
	d.Add(Diagnostic{Severity: DiagnosticInfo, Code: code, Message: message, Type: typeID, Field: field})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Len returns the number of diagnostics of every severity.
func (d *Diagnostics) Len() int {
	return len(d.Errors) + len(d.Warnings) + len(d.Infos)
}

// All returns every diagnostic, errors first, each bucket ordered by type
// and code.
func (d *Diagnostics) All() []Diagnostic {
	out := make([]Diagnostic, 0, d.Len())
	for _, bucket := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		sorted := slices.Clone(bucket)
		slices.SortStableFunc(sorted, compare)
		out = append(out, sorted...)
	}

	return out
}

// ByCode returns the diagnostics carrying code, in All order.
func (d *Diagnostics) ByCode(code string) []Diagnostic {
	var out []Diagnostic
	for _, diag := range d.All() {
		if diag.Code == code {
			out = append(out, diag)
		}
	}

	return out
}

func compare(a, b Diagnostic) int {
	if c := cmp.Compare(a.Type, b.Type); c != 0 {
		return c
	}

	if c := cmp.Compare(a.Code, b.Code); c != 0 {
		return c
	}

	return cmp.Compare(a.Field, b.Field)
}

// Error returns a combined error from all error diagnostics, or nil if valid.
// Underlying errors stay reachable through errors.Is and errors.As.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	errs := make([]error, 0, len(d.Errors))
	for _, e := range d.Errors {
		if e.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", e.String(), e.Err))
		} else {
			errs = append(errs, errors.New(e.String()))
		}
	}

	return errors.Join(errs...)
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Type != "" {
		prefix = append(prefix, "["+d.Type+"]")
	}

	if d.Field != "" {
		prefix = append(prefix, d.Field)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (" + strings.Join(d.Suggestions, "; ") + ")"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
