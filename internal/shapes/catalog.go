package shapes

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"

	"shape-generator/internal/arity"
	"shape-generator/internal/concept"
	"shape-generator/internal/detect"
	"shape-generator/internal/match"
)

// Default priorities of the built-in concepts.
const (
	PriorityStaticVisitable = 4
	PriorityStaticArray     = 3
	PriorityTuple           = 2
	PriorityAggregate       = 1
	PriorityIterable        = 5
	PriorityArray           = 3
	PriorityRange           = 2
	PriorityOptional        = 1
	PriorityForbidden       = 100
)

// rangeOverFuncSince is the first Go release where range accepts
// iterator functions.
const rangeOverFuncSince = ">= 1.23"

var (
	// ErrUnknownConcept is returned for overrides naming no built-in concept.
	ErrUnknownConcept = errors.New("unknown concept")
	// ErrInvalidGoVersion is returned when the module go version does not parse.
	ErrInvalidGoVersion = errors.New("invalid go version")
)

// Override adjusts a built-in concept.
type Override struct {
	// Priority replaces the default priority when non-nil.
	Priority *int
	// Disabled removes the concept from every list.
	Disabled bool
}

// Catalog builds the concept lists.
type Catalog struct {
	logger    *slog.Logger
	probe     *detect.Prober
	arity     *arity.Prober
	overrides map[string]Override
	goVersion string

	rangeOverFunc bool
}

// Option customizes a Catalog.
type Option func(*Catalog)

// WithLogger overrides the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Catalog) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithOverrides applies per-concept overrides.
func WithOverrides(o map[string]Override) Option {
	return func(c *Catalog) {
		maps.Copy(c.overrides, o)
	}
}

// WithGoVersion sets the go version of the module being analyzed, as
// written in its go directive. Concepts that rely on newer language
// features are disabled for older modules.
func WithGoVersion(v string) Option {
	return func(c *Catalog) {
		c.goVersion = v
	}
}

// New creates a Catalog over an arity prober.
func New(ap *arity.Prober, opts ...Option) (*Catalog, error) {
	if ap == nil {
		ap = arity.NewProber(nil)
	}

	c := &Catalog{
		logger:        slog.Default(),
		probe:         ap.Detector(),
		arity:         ap,
		overrides:     make(map[string]Override),
		rangeOverFunc: true,
	}
	for _, opt := range opts {
		opt(c)
	}

	for _, name := range slices.Sorted(maps.Keys(c.overrides)) {
		if _, ok := KindOf(name); !ok {
			return nil, UnknownConceptError(name)
		}
	}

	if c.goVersion != "" {
		ok, err := supports(c.goVersion, rangeOverFuncSince)
		if err != nil {
			return nil, err
		}

		c.rangeOverFunc = ok
		if !ok {
			c.logger.Debug("range-over-func concepts disabled",
				slog.String("go_version", c.goVersion))
		}
	}

	return c, nil
}

// UnknownConceptError reports name as unknown, suggesting the closest
// built-in concept when there is one.
func UnknownConceptError(name string) error {
	if s, ok := match.Suggest(name, Names()); ok {
		return fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownConcept, name, s)
	}

	return fmt.Errorf("%w %q (known: %s)", ErrUnknownConcept, name, strings.Join(Names(), ", "))
}

// supports reports whether the go version satisfies constraint.
func supports(goVersion, constraint string) (bool, error) {
	v, err := semver.NewVersion(trimGoVersion(goVersion))
	if err != nil {
		return false, fmt.Errorf("%w %q: %w", ErrInvalidGoVersion, goVersion, err)
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, err
	}

	// Release candidates of a version already carry its language features.
	release, err := v.SetPrerelease("")
	if err != nil {
		return false, err
	}

	return c.Check(&release), nil
}

// trimGoVersion turns "go1.23rc1" into "1.23-rc1".
func trimGoVersion(v string) string {
	v = strings.TrimPrefix(v, "go")

	i := strings.IndexFunc(v, func(r rune) bool { return (r < '0' || r > '9') && r != '.' })
	if i <= 0 {
		return v
	}

	return v[:i] + "-" + v[i:]
}

// Detector returns the prober the concepts are checked with.
func (c *Catalog) Detector() *detect.Prober {
	return c.probe
}

// Arity returns the arity prober used by the aggregate concept.
func (c *Catalog) Arity() *arity.Prober {
	return c.arity
}

// RangeOverFunc reports whether iterator functions count as ranges.
func (c *Catalog) RangeOverFunc() bool {
	return c.rangeOverFunc
}

// Tuple returns the tuple-like concept list.
func (c *Catalog) Tuple() concept.List[Shape] {
	return c.build(c.tupleEntries())
}

// Range returns the range-like concept list.
func (c *Catalog) Range() concept.List[Shape] {
	return c.build(c.rangeEntries())
}

// Serial returns the list deciding how values are serialised.
func (c *Catalog) Serial() concept.List[Shape] {
	entries := []concept.Entry[Shape]{{Concept: c.forbidden(), Priority: PriorityForbidden}}
	entries = append(entries, c.tupleEntries()...)
	entries = append(entries, c.rangeEntries()...)

	return c.build(entries)
}

func (c *Catalog) tupleEntries() []concept.Entry[Shape] {
	return []concept.Entry[Shape]{
		{Concept: c.staticVisitable(), Priority: PriorityStaticVisitable},
		{Concept: c.staticArray(), Priority: PriorityStaticArray},
		{Concept: c.tuple(), Priority: PriorityTuple},
		{Concept: c.aggregate(), Priority: PriorityAggregate},
	}
}

func (c *Catalog) rangeEntries() []concept.Entry[Shape] {
	return []concept.Entry[Shape]{
		{Concept: c.iterable(), Priority: PriorityIterable},
		{Concept: c.array(), Priority: PriorityArray},
		{Concept: c.rangeConcept(), Priority: PriorityRange},
		{Concept: c.optional(), Priority: PriorityOptional},
	}
}

// build applies the overrides and sorts entries given in registration order.
// Ties keep that order: tuple concepts stay ahead of range concepts of the
// same priority in the serial list.
func (c *Catalog) build(entries []concept.Entry[Shape]) concept.List[Shape] {
	kept := make([]concept.Entry[Shape], 0, len(entries))

	for _, e := range entries {
		o := c.overrides[e.Concept.Name()]
		if o.Disabled {
			continue
		}

		if o.Priority != nil {
			e.Priority = *o.Priority
		}

		kept = append(kept, e)
	}

	return concept.FromEntries(kept...)
}
