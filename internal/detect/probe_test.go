package detect_test

import (
	"go/types"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shape-generator/internal/detect"
	"shape-generator/internal/testutil"
)

const fixture = `package fixture

type Point struct {
	X, Y int
	Label *string
}

type Stack struct{ items []int }

func (s Stack) Len() int { return len(s.items) }

type Set map[string]struct{}

func Len(s Set) int { return len(s) }

type Opaque struct{ n int }

type List []string
`

func TestProber_Detected(t *testing.T) {
	t.Parallel()

	pkg := testutil.Check(t, "fixture", fixture)
	p := detect.NewProber()

	point := testutil.Lookup(t, pkg, "Point")
	list := testutil.Lookup(t, pkg, "List")
	intType := types.Typ[types.Int]
	stringType := types.Typ[types.String]

	tests := []struct {
		name string
		expr string
		ts   []types.Type
		want bool
	}{
		{"len of slice", "len(v0)", []types.Type{list}, true},
		{"len of struct", "len(v0)", []types.Type{point}, false},
		{"field selection", "v0.X + v0.Y", []types.Type{point}, true},
		{"missing field", "v0.Z", []types.Type{point}, false},
		{"same types compare", "v0 == v1", []types.Type{intType, intType}, true},
		{"mixed types compare", "v0 == v1", []types.Type{intType, stringType}, false},
		{"range statement", "func() { for range v0 {} }", []types.Type{list}, true},
		{"range over struct", "func() { for range v0 {} }", []types.Type{point}, false},
		{"conversion", "T0(v1)", []types.Type{stringType, list}, false},
		{"no candidates", "1 + 1", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, p.Detected(tt.expr, tt.ts...))
		})
	}
}

func TestProber_Wildcard(t *testing.T) {
	t.Parallel()

	pkg := testutil.Check(t, "fixture", fixture)
	p := detect.NewProber()
	point := testutil.Lookup(t, pkg, "Point")

	assert.True(t, p.Detected("T0{}", point))
	assert.False(t, p.Detected("T0{wildcard}", point))
	assert.False(t, p.Detected("T0{wildcard, wildcard}", point))
	assert.True(t, p.Detected("T0{wildcard, wildcard, wildcard}", point), "wildcard initialises pointer fields too")
	assert.False(t, p.Detected("T0{wildcard, wildcard, wildcard, wildcard}", point))

	renamed := detect.NewProber(detect.WithWildcardName("any0"))
	assert.Equal(t, "any0", renamed.Wildcard())
	assert.True(t, renamed.Detected("T0{any0, any0, any0}", point))
}

func TestProber_UnexportedFieldsAreNotReachable(t *testing.T) {
	t.Parallel()

	pkg := testutil.Check(t, "fixture", fixture)
	p := detect.NewProber()
	opaque := testutil.Lookup(t, pkg, "Opaque")

	assert.True(t, p.Detected("T0{}", opaque))
	assert.False(t, p.Detected("T0{wildcard}", opaque))
}

func TestProber_Malformed(t *testing.T) {
	t.Parallel()

	p := detect.NewProber()

	err := p.Check("v0.(", types.Typ[types.Int])
	require.ErrorIs(t, err, detect.ErrMalformedProbe)
	assert.False(t, p.Detected("v0.(", types.Typ[types.Int]))

	err = p.Check("v0", nil)
	require.ErrorIs(t, err, detect.ErrMalformedProbe)
}

func TestProber_TypeErrorIsReturned(t *testing.T) {
	t.Parallel()

	p := detect.NewProber()

	err := p.Check("v0.Missing()", types.Typ[types.Int])
	require.Error(t, err)
	assert.NotErrorIs(t, err, detect.ErrMalformedProbe)
}

func TestProber_UniformCall(t *testing.T) {
	t.Parallel()

	pkg := testutil.Check(t, "fixture", fixture)
	p := detect.NewProber()

	stack := testutil.Lookup(t, pkg, "Stack")
	set := testutil.Lookup(t, pkg, "Set")
	point := testutil.Lookup(t, pkg, "Point")

	assert.Equal(t, detect.CallMember, p.ResolveCall("Len", nil, stack))
	assert.Equal(t, detect.CallFree, p.ResolveCall("Len", nil, set))
	assert.Equal(t, detect.CallNone, p.ResolveCall("Len", nil, point))

	assert.True(t, p.DetectedCall("Len", stack))
	assert.True(t, p.DetectedCall("Len", set))
	assert.False(t, p.DetectedCall("Len", point))

	assert.Equal(t, "v0.Len()", p.Uniform("Len", nil, stack))
	assert.Equal(t, "Len(v0)", p.Uniform("Len", nil, set))
	assert.Empty(t, p.Uniform("Len", nil, point))

	assert.False(t, p.DetectedCall("Len", types.NewPointer(set)), "free Len takes a Set, not *Set")
}

func TestProber_ConcurrentChecksAreIndependent(t *testing.T) {
	t.Parallel()

	pkg := testutil.Check(t, "fixture", fixture)
	p := detect.NewProber()
	list := testutil.Lookup(t, pkg, "List")
	point := testutil.Lookup(t, pkg, "Point")

	var wg sync.WaitGroup
	results := make([]bool, 32)

	for i := range results {
		wg.Add(1)

		go func() {
			defer wg.Done()

			if i%2 == 0 {
				results[i] = p.Detected("len(v0)", list)
			} else {
				results[i] = p.Detected("len(v0)", point)
			}
		}()
	}

	wg.Wait()

	for i, got := range results {
		assert.Equal(t, i%2 == 0, got)
	}
}

func TestCallForm_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "member", detect.CallMember.String())
	assert.Equal(t, "free", detect.CallFree.String())
	assert.Equal(t, "none", detect.CallNone.String())
	assert.Equal(t, "unknown", detect.CallForm(42).String())
	assert.Equal(t, "v0.Get(1)", detect.Member("Get", "1"))
	assert.Equal(t, "Get(v0, 1)", detect.Free("Get", "1"))
}
