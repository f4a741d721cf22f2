package concept

import (
	"go/types"

	"shape-generator/internal/common"
)

// Verdict is an explicit answer a concept can give about candidate types,
// independent of its probe expression.
type Verdict int

const (
	// Undecided defers to the probe expression.
	Undecided Verdict = iota
	// Implemented accepts the candidates without probing.
	Implemented
	// Rejected refuses the candidates without probing.
	Rejected
)

// String returns a human-readable verdict name.
func (v Verdict) String() string {
	switch v {
	case Undecided:
		return "undecided"
	case Implemented:
		return "implemented"
	case Rejected:
		return "rejected"
	default:
		return common.UnknownStr
	}
}

// Concept is a structural interpretation producing an I for the types it
// accepts.
type Concept[I any] interface {
	// Name identifies the concept in reports and configuration.
	Name() string
	// Expr is the probe expression. An empty expression never type-checks,
	// so such a concept is decided by its Marker alone.
	Expr() string
	// Instantiate builds the resolved value for accepted candidates.
	Instantiate(ts ...types.Type) (I, error)
}

// Marker is implemented by concepts that decide acceptance explicitly.
type Marker interface {
	IsImplemented(ts ...types.Type) Verdict
}

// Detector is the probe primitive concepts are checked with.
type Detector interface {
	Detected(expr string, ts ...types.Type) bool
}

// Func is a Concept assembled from values.
type Func[I any] struct {
	ConceptName string
	Probe       string
	Verdict     func(ts ...types.Type) Verdict
	Build       func(ts ...types.Type) (I, error)
}

var (
	_ Concept[int] = Func[int]{}
	_ Marker       = Func[int]{}
)

// Name implements Concept.
func (f Func[I]) Name() string { return f.ConceptName }

// Expr implements Concept.
func (f Func[I]) Expr() string { return f.Probe }

// Instantiate implements Concept. Without a Build function it returns the
// zero I.
func (f Func[I]) Instantiate(ts ...types.Type) (I, error) {
	if f.Build == nil {
		var zero I
		return zero, nil
	}

	return f.Build(ts...)
}

// IsImplemented implements Marker.
func (f Func[I]) IsImplemented(ts ...types.Type) Verdict {
	if f.Verdict == nil {
		return Undecided
	}

	return f.Verdict(ts...)
}

// Accepts reports whether c accepts ts.
func Accepts[I any](d Detector, c Concept[I], ts ...types.Type) bool {
	if m, ok := c.(Marker); ok {
		switch m.IsImplemented(ts...) {
		case Implemented:
			return true
		case Rejected:
			return false
		case Undecided:
		}
	}

	if c.Expr() == "" {
		return false
	}

	return d.Detected(c.Expr(), ts...)
}
