package concept_test

import (
	"errors"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shape-generator/internal/concept"
	"shape-generator/internal/detect"
	"shape-generator/internal/testutil"
)

// Every fixture type carries its tag as array lengths: Pos for tags above
// zero, Neg for tags below.
const fixture = `package fixture

type Mini struct {
	Pos [0]struct{}
	Neg [2]struct{}
}

type Little struct {
	Pos [0]struct{}
	Neg [1]struct{}
}

type Medium struct {
	Pos [0]struct{}
	Neg [0]struct{}
}

type Huge struct {
	Pos [1]struct{}
	Neg [0]struct{}
}

type Maxi struct {
	Pos [2]struct{}
	Neg [0]struct{}
}
`

func fieldLen(t types.Type, name string) int {
	st := t.Underlying().(*types.Struct)
	for i := range st.NumFields() {
		if st.Field(i).Name() == name {
			return int(st.Field(i).Type().(*types.Array).Len())
		}
	}

	return 0
}

var (
	positive = concept.Func[int]{
		ConceptName: "positive",
		Probe:       "[len(v0.Pos) - 1]struct{}{}",
		Build: func(ts ...types.Type) (int, error) {
			return fieldLen(ts[0], "Pos"), nil
		},
	}
	negative = concept.Func[int]{
		ConceptName: "negative",
		Probe:       "[len(v0.Neg) - 1]struct{}{}",
		Build: func(ts ...types.Type) (int, error) {
			return -fieldLen(ts[0], "Neg"), nil
		},
	}
)

func TestResolve_PriorityScenario(t *testing.T) {
	t.Parallel()

	pkg := testutil.Check(t, "fixture", fixture)
	d := detect.NewProber()

	list := concept.Build[int](negative, 0).Add(positive, 10)
	assert.Equal(t, []string{"positive", "negative"}, list.Names())

	tests := []struct {
		name     string
		concept  string
		tag      int
		resolves bool
	}{
		{"Maxi", "positive", 2, true},
		{"Huge", "positive", 1, true},
		{"Little", "negative", -1, true},
		{"Mini", "negative", -2, true},
		{"Medium", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			typ := testutil.Lookup(t, pkg, tt.name)
			assert.Equal(t, tt.resolves, concept.HasMatch(d, list, typ))

			got, err := concept.Resolve(d, list, typ)
			if !tt.resolves {
				require.ErrorIs(t, err, concept.ErrNoConceptMatch)

				var nm *concept.NoMatchError
				require.ErrorAs(t, err, &nm)
				assert.Equal(t, []string{"positive", "negative"}, nm.Candidates)
				assert.Contains(t, err.Error(), "tried: positive, negative")
				assert.Contains(t, err.Error(), "fixture.Medium")

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.concept, got.Entry.Concept.Name())
			assert.Equal(t, tt.tag, got.Value)
		})
	}
}

func TestResolve_IsDeterministic(t *testing.T) {
	t.Parallel()

	pkg := testutil.Check(t, "fixture", fixture)
	d := detect.NewProber()
	list := concept.Build[int](negative, 0).Add(positive, 10)
	maxi := testutil.Lookup(t, pkg, "Maxi")

	first, err := concept.Resolve(d, list, maxi)
	require.NoError(t, err)

	for range 5 {
		again, err := concept.Resolve(d, list, maxi)
		require.NoError(t, err)
		assert.Equal(t, first.Entry.Concept.Name(), again.Entry.Concept.Name())
		assert.Equal(t, first.Value, again.Value)
	}
}

func TestList_TiesPreferLatestAdded(t *testing.T) {
	t.Parallel()

	pkg := testutil.Check(t, "fixture", fixture)
	d := detect.NewProber()
	maxi := testutil.Lookup(t, pkg, "Maxi")

	always := func(name string) concept.Func[string] {
		return concept.Func[string]{
			ConceptName: name,
			Verdict:     func(...types.Type) concept.Verdict { return concept.Implemented },
			Build:       func(...types.Type) (string, error) { return name, nil },
		}
	}

	list := concept.Build[string](always("first"), 5).
		Add(always("low"), 1).
		Add(always("second"), 5).
		Add(always("top"), 9).
		Add(always("third"), 5)

	assert.Equal(t, []string{"top", "third", "second", "first", "low"}, list.Names())

	got, err := concept.Resolve(d, list, maxi)
	require.NoError(t, err)
	assert.Equal(t, "top", got.Value)

	withoutTop := concept.FromEntries(list.Entries()[1:]...)
	got, err = concept.Resolve(d, withoutTop, maxi)
	require.NoError(t, err)
	assert.Equal(t, "third", got.Value)

	pair := concept.Build[string](always("a"), 0).Add(always("b"), 0)
	assert.Equal(t, []string{"b", "a"}, pair.Names())
}

func TestFromEntries_TiesKeepGivenOrder(t *testing.T) {
	t.Parallel()

	always := func(name string) concept.Func[string] {
		return concept.Func[string]{
			ConceptName: name,
			Verdict:     func(...types.Type) concept.Verdict { return concept.Implemented },
			Build:       func(...types.Type) (string, error) { return name, nil },
		}
	}

	list := concept.FromEntries(
		concept.Entry[string]{Concept: always("first"), Priority: 5},
		concept.Entry[string]{Concept: always("low"), Priority: 1},
		concept.Entry[string]{Concept: always("second"), Priority: 5},
		concept.Entry[string]{Concept: always("top"), Priority: 9},
	)

	assert.Equal(t, []string{"top", "first", "second", "low"}, list.Names())
}

func TestList_AddDoesNotMutate(t *testing.T) {
	t.Parallel()

	base := concept.Build[int](negative, 0)
	extended := base.Add(positive, 10)

	assert.Equal(t, 1, base.Len())
	assert.Equal(t, []string{"negative"}, base.Names())
	assert.Equal(t, 2, extended.Len())

	entries := extended.Entries()
	entries[0].Priority = -100
	assert.Equal(t, 10, extended.Entries()[0].Priority)

	var zero concept.List[int]
	assert.Equal(t, 0, zero.Len())
	assert.Empty(t, zero.Names())
}

func TestList_All(t *testing.T) {
	t.Parallel()

	list := concept.Build[int](negative, 0).Add(positive, 10)

	var priorities []int
	for i, e := range list.All() {
		assert.Equal(t, len(priorities), i)
		priorities = append(priorities, e.Priority)
	}

	assert.Equal(t, []int{10, 0}, priorities)
}

func TestAccepts_MarkerOverridesProbe(t *testing.T) {
	t.Parallel()

	pkg := testutil.Check(t, "fixture", fixture)
	d := detect.NewProber()
	maxi := testutil.Lookup(t, pkg, "Maxi")

	vetoed := positive
	vetoed.ConceptName = "vetoed"
	vetoed.Verdict = func(...types.Type) concept.Verdict { return concept.Rejected }

	forced := negative
	forced.ConceptName = "forced"
	forced.Verdict = func(...types.Type) concept.Verdict { return concept.Implemented }

	undecided := positive
	undecided.Verdict = func(...types.Type) concept.Verdict { return concept.Undecided }

	assert.True(t, concept.Accepts[int](d, positive, maxi))
	assert.False(t, concept.Accepts[int](d, vetoed, maxi))
	assert.False(t, concept.Accepts[int](d, negative, maxi))
	assert.True(t, concept.Accepts[int](d, forced, maxi))
	assert.True(t, concept.Accepts[int](d, undecided, maxi))

	list := concept.Build[int](vetoed, 10).Add(forced, 0)
	got, err := concept.Resolve(d, list, maxi)
	require.NoError(t, err)
	assert.Equal(t, "forced", got.Entry.Concept.Name())
}

func TestAccepts_EmptyProbeWithoutMarker(t *testing.T) {
	t.Parallel()

	pkg := testutil.Check(t, "fixture", fixture)

	empty := concept.Func[int]{ConceptName: "empty"}
	assert.False(t, concept.Accepts[int](detect.NewProber(), empty, testutil.Lookup(t, pkg, "Maxi")))
}

func TestResolve_EmptyList(t *testing.T) {
	t.Parallel()

	pkg := testutil.Check(t, "fixture", fixture)
	d := detect.NewProber()
	maxi := testutil.Lookup(t, pkg, "Maxi")

	var empty concept.List[int]

	assert.False(t, concept.HasMatch(d, empty, maxi))

	_, err := concept.Resolve(d, empty, maxi)

	var nm *concept.NoMatchError
	require.ErrorAs(t, err, &nm)
	assert.Empty(t, nm.Candidates)
}

func TestResolve_InstantiationError(t *testing.T) {
	t.Parallel()

	pkg := testutil.Check(t, "fixture", fixture)
	errBoom := errors.New("boom")

	broken := positive
	broken.Build = func(...types.Type) (int, error) { return 0, errBoom }

	_, err := concept.Resolve(detect.NewProber(), concept.Build[int](broken, 1), testutil.Lookup(t, pkg, "Maxi"))
	require.ErrorIs(t, err, errBoom)
	assert.NotErrorIs(t, err, concept.ErrNoConceptMatch)
	assert.Contains(t, err.Error(), "instantiate concept positive")
}

// countingDetector records probes so tests can see that HasMatch stops at
// the first accepted concept.
type countingDetector struct {
	inner *detect.Prober
	exprs []string
}

func (c *countingDetector) Detected(expr string, ts ...types.Type) bool {
	c.exprs = append(c.exprs, expr)
	return c.inner.Detected(expr, ts...)
}

func TestHasMatch_StopsAtFirstAccepted(t *testing.T) {
	t.Parallel()

	pkg := testutil.Check(t, "fixture", fixture)
	d := &countingDetector{inner: detect.NewProber()}

	instantiated := false
	tracked := positive
	tracked.Build = func(...types.Type) (int, error) {
		instantiated = true
		return 0, nil
	}

	list := concept.Build[int](tracked, 10).Add(negative, 0)

	assert.True(t, concept.HasMatch[int](d, list, testutil.Lookup(t, pkg, "Huge")))
	assert.Equal(t, []string{positive.Probe}, d.exprs)
	assert.False(t, instantiated)
}

func TestVerdict_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "undecided", concept.Undecided.String())
	assert.Equal(t, "implemented", concept.Implemented.String())
	assert.Equal(t, "rejected", concept.Rejected.String())
	assert.Equal(t, "unknown", concept.Verdict(7).String())
}
