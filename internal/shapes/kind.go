package shapes

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind identifies a built-in concept.
type Kind int

const (
	_ Kind = iota // zero value is not a valid kind

	KindStaticVisitable
	KindStaticArray
	KindTuple
	KindAggregate
	KindIterable
	KindArray
	KindRange
	KindOptional
	KindForbidden

	// KindTotal is the number of kinds, counting the invalid zero value.
	KindTotal = int(iota)
)

var conceptNames = [...]string{
	KindStaticVisitable: "static_visitable",
	KindStaticArray:     "static_array",
	KindTuple:           "tuple",
	KindAggregate:       "aggregate",
	KindIterable:        "iterable",
	KindArray:           "array",
	KindRange:           "range",
	KindOptional:        "optional",
	KindForbidden:       "forbidden",
}

// ConceptName returns the configuration name of the concept.
func (k Kind) ConceptName() string {
	if k <= 0 || int(k) >= len(conceptNames) {
		return ""
	}

	return conceptNames[k]
}

// IsTupleLike reports whether values of the kind have a fixed number of
// elements.
func (k Kind) IsTupleLike() bool {
	switch k {
	default:
		return false
	case KindStaticVisitable, KindStaticArray, KindTuple, KindAggregate:
		return true
	}
}

// IsRangeLike reports whether values of the kind are iterated.
func (k Kind) IsRangeLike() bool {
	switch k {
	default:
		return false
	case KindIterable, KindArray, KindRange, KindOptional:
		return true
	}
}

// KindOf returns the kind whose concept is called name.
func KindOf(name string) (Kind, bool) {
	for k, n := range conceptNames {
		if n != "" && n == name {
			return Kind(k), true
		}
	}

	return 0, false
}

// Names returns every concept name, in kind order.
func Names() []string {
	out := make([]string, 0, len(conceptNames)-1)
	for _, n := range conceptNames[1:] {
		out = append(out, n)
	}

	return out
}
