package meta_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shape-generator/internal/meta"
)

type tagged struct {
	Name string
	Tag  int
}

var (
	mini   = tagged{"Mini", -2}
	little = tagged{"Little", -1}
	medium = tagged{"Medium", 0}
	huge   = tagged{"Huge", 1}
	maxi   = tagged{"Maxi", 2}
)

func byTag(a, b tagged) bool { return a.Tag < b.Tag }

func isMedium(t tagged) bool { return t.Tag == medium.Tag }

func toTag(t tagged) int { return t.Tag }

func names(s meta.Seq[tagged]) []string {
	return meta.Map(s, func(t tagged) string { return t.Name }).Slice()
}

func TestListManipulation(t *testing.T) {
	t.Parallel()

	none := tagged{"None", 99}

	tests := []struct {
		name       string
		list       meta.Seq[tagged]
		wantFind   tagged
		wantMap    []int
		wantSorted []string
	}{
		{
			name:       "empty",
			list:       meta.Of[tagged](),
			wantFind:   none,
			wantMap:    nil,
			wantSorted: nil,
		},
		{
			name:       "no medium",
			list:       meta.Of(huge, maxi, little),
			wantFind:   none,
			wantMap:    []int{1, 2, -1},
			wantSorted: []string{"Little", "Huge", "Maxi"},
		},
		{
			name:       "all tags",
			list:       meta.Of(medium, little, maxi, mini, huge),
			wantFind:   medium,
			wantMap:    []int{0, -1, 2, -2, 1},
			wantSorted: []string{"Mini", "Little", "Medium", "Huge", "Maxi"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.wantFind, meta.FindFirstOr(tt.list, isMedium, none))
			assert.Equal(t, tt.wantMap, meta.Map(tt.list, toTag).Slice())

			sorted := meta.Sort(tt.list, byTag)
			if tt.wantSorted == nil {
				assert.True(t, sorted.IsEmpty())
			} else {
				assert.Equal(t, tt.wantSorted, names(sorted))
			}
		})
	}
}

func TestSort_Stable(t *testing.T) {
	t.Parallel()

	a := tagged{"A", 5}
	b := tagged{"B", 5}
	c := tagged{"C", 7}

	greater := func(x, y tagged) bool { return x.Tag > y.Tag }

	assert.Equal(t, []string{"C", "A", "B"}, names(meta.Sort(meta.Of(a, b, c), greater)))
	assert.Equal(t, []string{"C", "B", "A"}, names(meta.Sort(meta.Of(b, a, c), greater)))
}

func TestSort_Idempotent(t *testing.T) {
	t.Parallel()

	list := meta.Of(medium, little, maxi, mini, huge, tagged{"Huge2", 1})

	once := meta.Sort(list, byTag)
	twice := meta.Sort(once, byTag)

	assert.True(t, meta.Equal(once, twice, func(x, y tagged) bool { return x == y }))
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	list := meta.Of(maxi, mini)
	_ = meta.Sort(list, byTag)

	assert.Equal(t, []string{"Maxi", "Mini"}, names(list))
}

func TestInsert(t *testing.T) {
	t.Parallel()

	sorted := meta.Of(mini, medium, maxi)

	t.Run("middle", func(t *testing.T) {
		t.Parallel()

		got := meta.Insert(sorted, little, byTag)
		assert.Equal(t, []string{"Mini", "Little", "Medium", "Maxi"}, names(got))
	})

	t.Run("end", func(t *testing.T) {
		t.Parallel()

		got := meta.Insert(sorted, tagged{"Giant", 9}, byTag)
		assert.Equal(t, []string{"Mini", "Medium", "Maxi", "Giant"}, names(got))
	})

	t.Run("after equal", func(t *testing.T) {
		t.Parallel()

		got := meta.Insert(sorted, tagged{"Medium2", 0}, byTag)
		assert.Equal(t, []string{"Mini", "Medium", "Medium2", "Maxi"}, names(got))
	})

	t.Run("into empty", func(t *testing.T) {
		t.Parallel()

		got := meta.Insert(meta.Seq[tagged]{}, huge, byTag)
		require.Equal(t, 1, got.Len())
		assert.Equal(t, huge, got.At(0))
	})

	assert.Equal(t, 3, sorted.Len(), "input must not change")
}

func TestMap_PreservesLengthAndOrder(t *testing.T) {
	t.Parallel()

	list := meta.Of(maxi, mini, medium)
	mapped := meta.Map(list, toTag)

	require.Equal(t, list.Len(), mapped.Len())
	for i, e := range list.All() {
		assert.Equal(t, toTag(e), mapped.At(i))
	}
}

func TestFindFirst_Leftmost(t *testing.T) {
	t.Parallel()

	list := meta.Of(little, huge, maxi)
	positive := func(t tagged) bool { return t.Tag > 0 }

	got, ok := meta.FindFirst(list, positive)
	require.True(t, ok)
	assert.Equal(t, huge, got)

	_, ok = meta.FindFirst(meta.Of(mini, little), positive)
	assert.False(t, ok)
}

func TestAppendAndConcat(t *testing.T) {
	t.Parallel()

	base := meta.Of(mini)
	appended := meta.Append(base, maxi)
	joined := meta.Concat(base, appended)

	assert.Equal(t, []string{"Mini"}, names(base))
	assert.Equal(t, []string{"Mini", "Maxi"}, names(appended))
	assert.Equal(t, []string{"Mini", "Mini", "Maxi"}, names(joined))
}
