package concept

import (
	"errors"
	"fmt"
	"go/types"
	"strings"

	"shape-generator/internal/meta"
)

// ErrNoConceptMatch is wrapped by every NoMatchError.
var ErrNoConceptMatch = errors.New("no concept accepts the candidate types")

// NoMatchError reports a failed resolution.
type NoMatchError struct {
	Types      []types.Type
	Candidates []string
}

func (e *NoMatchError) Error() string {
	names := make([]string, len(e.Types))
	for i, t := range e.Types {
		names[i] = t.String()
	}

	return fmt.Sprintf("%s for [%s] (tried: %s)",
		ErrNoConceptMatch, strings.Join(names, ", "), strings.Join(e.Candidates, ", "))
}

// Unwrap returns ErrNoConceptMatch.
func (e *NoMatchError) Unwrap() error {
	return ErrNoConceptMatch
}

// Resolved is the outcome of a successful resolution.
type Resolved[I any] struct {
	Entry Entry[I]
	Value I
}

// Pick returns the highest-priority entry accepting ts.
func Pick[I any](d Detector, l List[I], ts ...types.Type) (Entry[I], bool) {
	return meta.FindFirst(l.entries, func(e Entry[I]) bool {
		return Accepts(d, e.Concept, ts...)
	})
}

// HasMatch reports whether any entry accepts ts. Nothing is instantiated.
func HasMatch[I any](d Detector, l List[I], ts ...types.Type) bool {
	_, ok := Pick(d, l, ts...)
	return ok
}

// Resolve instantiates the highest-priority entry accepting ts.
func Resolve[I any](d Detector, l List[I], ts ...types.Type) (Resolved[I], error) {
	entry, ok := Pick(d, l, ts...)
	if !ok {
		return Resolved[I]{}, &NoMatchError{
			Types:      append([]types.Type(nil), ts...),
			Candidates: l.Names(),
		}
	}

	v, err := entry.Concept.Instantiate(ts...)
	if err != nil {
		return Resolved[I]{}, fmt.Errorf("instantiate concept %s: %w", entry.Concept.Name(), err)
	}

	return Resolved[I]{Entry: entry, Value: v}, nil
}
