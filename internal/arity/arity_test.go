package arity_test

import (
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shape-generator/internal/arity"
	"shape-generator/internal/detect"
	"shape-generator/internal/testutil"
)

const fixture = `package fixture

type Empty struct{}

type One struct{ A int }

type Point3 struct{ X, Y, Z int }

type Refs struct {
	P *int
	S []string
	M map[string]int
	F func()
	I interface{}
}

type WithEmbedded struct {
	Point3
	Extra string
}

type Hidden struct {
	a int
	B int
}

type Ten struct {
	A0, A1, A2, A3, A4, A5, A6, A7, A8, A9 int
}

type Eleven struct {
	A0, A1, A2, A3, A4, A5, A6, A7, A8, A9, A10 int
}

type Twelve struct {
	A0, A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11 int
}

type BigHidden struct {
	a0, a1, a2, a3, a4, a5, a6, a7, a8, a9, a10, a11 int
}

type BigMixed struct {
	A0, A1, A2, A3, A4, A5, A6, A7, A8, A9, A10 int
	hidden                                      bool
}

type Number interface{ int | float64 }

type Num[T Number] struct{ V T }

type Holder[T int | string] struct {
	Box struct{ Item *T }
}

type Generic[T any] struct{ V T }

type Alias = Point3

type Named int

type List []int

type Grid [3]int
`

func newProber(opts ...arity.Option) *arity.Prober {
	return arity.NewProber(detect.NewProber(), opts...)
}

func TestProber_Of(t *testing.T) {
	t.Parallel()

	pkg := testutil.Check(t, "fixture", fixture)
	p := newProber()

	tests := []struct {
		name string
		want int
	}{
		{"Empty", 0},
		{"One", 1},
		{"Point3", 3},
		{"Refs", 5},
		{"WithEmbedded", 2},
		{"Ten", 10},
		{"Alias", 3},
		{"Hidden", arity.NotDecomposable},
		{"BigHidden", arity.NotDecomposable},
		{"BigMixed", arity.NotDecomposable},
		{"Generic", arity.NotDecomposable},
		{"Named", arity.NotDecomposable},
		{"List", arity.NotDecomposable},
		{"Grid", arity.NotDecomposable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			typ := testutil.Lookup(t, pkg, tt.name)

			got, err := p.Of(typ)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want >= 0, p.IsAggregate(typ))
		})
	}
}

func TestProber_Overflow(t *testing.T) {
	t.Parallel()

	pkg := testutil.Check(t, "fixture", fixture)
	p := newProber()

	for _, name := range []string{"Eleven", "Twelve"} {
		got, err := p.Of(testutil.Lookup(t, pkg, name))
		require.ErrorIs(t, err, arity.ErrArityOverflow, name)
		assert.Equal(t, arity.NotDecomposable, got)
		assert.Contains(t, err.Error(), "raise max_arity")
		assert.False(t, p.IsAggregate(testutil.Lookup(t, pkg, name)))
	}
}

func TestProber_WithMaxArity(t *testing.T) {
	t.Parallel()

	pkg := testutil.Check(t, "fixture", fixture)

	small := newProber(arity.WithMaxArity(2))
	assert.Equal(t, 2, small.Max())

	_, err := small.Of(testutil.Lookup(t, pkg, "Point3"))
	require.ErrorIs(t, err, arity.ErrArityOverflow)

	n, err := small.Of(testutil.Lookup(t, pkg, "One"))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	assert.Equal(t, arity.DefaultMaxArity, newProber(arity.WithMaxArity(0)).Max())
}

func TestProber_UnionAmbiguity(t *testing.T) {
	t.Parallel()

	pkg := testutil.Check(t, "fixture", fixture)
	p := newProber()

	_, err := p.Of(testutil.Lookup(t, pkg, "Num"))
	require.ErrorIs(t, err, arity.ErrUnionAmbiguity)
	assert.Contains(t, err.Error(), "field V")

	_, err = p.Of(testutil.Lookup(t, pkg, "Holder"))
	require.ErrorIs(t, err, arity.ErrUnionAmbiguity)
	assert.Contains(t, err.Error(), "field Box.Item")
}

func TestProber_InstantiatedGeneric(t *testing.T) {
	t.Parallel()

	pkg := testutil.Check(t, "fixture", fixture)
	p := newProber()

	for _, name := range []string{"Num", "Generic"} {
		inst, err := types.Instantiate(nil, testutil.Lookup(t, pkg, name), []types.Type{types.Typ[types.Int]}, true)
		require.NoError(t, err)

		n, err := p.Of(inst)
		require.NoError(t, err, name)
		assert.Equal(t, 1, n, name)
	}
}

func TestProber_BraceConstructible(t *testing.T) {
	t.Parallel()

	pkg := testutil.Check(t, "fixture", fixture)
	p := newProber()
	point := testutil.Lookup(t, pkg, "Point3")

	assert.True(t, p.BraceConstructible(point, 0))
	assert.False(t, p.BraceConstructible(point, 2))
	assert.True(t, p.BraceConstructible(point, 3))
	assert.False(t, p.BraceConstructible(point, 4))

	assert.Equal(t, "T0{}", arity.BraceExpr("w", 0))
	assert.Equal(t, "T0{w, w}", arity.BraceExpr("w", 2))
}

func TestProber_MemoisedAnswersAreStable(t *testing.T) {
	t.Parallel()

	pkg := testutil.Check(t, "fixture", fixture)
	p := newProber()
	point := testutil.Lookup(t, pkg, "Point3")

	first, err := p.Of(point)
	require.NoError(t, err)

	for range 3 {
		again, err := p.Of(point)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
