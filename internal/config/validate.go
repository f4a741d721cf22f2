package config

import (
	"errors"
	"fmt"
	"go/token"
	"maps"
	"slices"
	"strings"

	"shape-generator/internal/analyze"
	"shape-generator/internal/shapes"
	"shape-generator/tuple"
)

var (
	// ErrInvalidConfig is wrapped by every validation error.
	ErrInvalidConfig = errors.New("invalid config")
)

// Validate checks the file for problems that do not need loaded packages.
// All problems are reported together.
func (f *File) Validate() error {
	var errs []error

	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...)))
	}

	if f.Version != CurrentVersion {
		fail("unsupported version %q, want %q", f.Version, CurrentVersion)
	}

	if f.MaxArity < 0 || f.MaxArity > tuple.MaxArity {
		fail("max_arity %d out of range 0..%d", f.MaxArity, tuple.MaxArity)
	}

	if f.Output.Filename != "" && !validFilename(f.Output.Filename) {
		fail("output.filename %q must be a .go file name without directories", f.Output.Filename)
	}

	seen := make(map[string]bool)
	for _, name := range f.Methods.Names() {
		switch {
		case !token.IsIdentifier(name) || !token.IsExported(name):
			fail("method name %q is not an exported identifier", name)
		case seen[name]:
			fail("method name %q used twice", name)
		}

		seen[name] = true
	}

	for _, name := range slices.Sorted(maps.Keys(f.Concepts)) {
		if _, ok := shapes.KindOf(name); !ok {
			errs = append(errs, fmt.Errorf("%w: concepts: %w", ErrInvalidConfig, shapes.UnknownConceptError(name)))
		}
	}

	for _, list := range []struct {
		key  string
		refs []string
	}{{"require", f.Require}, {"exclude", f.Exclude}} {
		for _, ref := range list.refs {
			if _, err := analyze.ParseTypeID(ref); err != nil {
				fail("%s: %v", list.key, err)
			}
		}
	}

	for _, ref := range f.Require {
		if slices.Contains(f.Exclude, ref) {
			fail("%s is both required and excluded", ref)
		}
	}

	return errors.Join(errs...)
}

func validFilename(name string) bool {
	return len(name) > len(".go") && strings.HasSuffix(name, ".go") && !strings.ContainsAny(name, `/\`)
}

// Overrides converts the concepts section for the shape catalog.
func (f *File) Overrides() map[string]shapes.Override {
	out := make(map[string]shapes.Override, len(f.Concepts))
	for name, c := range f.Concepts {
		out[name] = shapes.Override{Priority: c.Priority, Disabled: c.Disabled}
	}

	return out
}

// TypeSet parses a list of type references. Invalid entries are skipped;
// Validate reports them.
func TypeSet(refs []string) map[analyze.TypeID]bool {
	out := make(map[analyze.TypeID]bool, len(refs))
	for _, ref := range refs {
		if id, err := analyze.ParseTypeID(ref); err == nil {
			out[id] = true
		}
	}

	return out
}
