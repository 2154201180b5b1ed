package sorted

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/ghost/named"
	"github.com/roach88/ghost/proof"
)

type intOrder struct{}

func backwards(a, b int) int { return cmp.Compare(b, a) }

func TestSortAndMerge(t *testing.T) {
	got := named.WithName[intOrder](Comparator[int](cmp.Compare[int]), func(c named.Named[intOrder, Comparator[int]]) []int {
		xs, err := SortBy([]int{1, 5, 3}, c)
		require.NoError(t, err)
		ys, err := SortBy([]int{6, 2, 4}, c)
		require.NoError(t, err)

		zs, err := MergeBy(xs, ys, c)
		require.NoError(t, err)
		assert.Equal(t, 6, zs.Len())
		assert.Equal(t, c.ID(), zs.Comparator())
		return zs.Values()
	})

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, got)
}

func TestSortBy_DoesNotModifyInput(t *testing.T) {
	in := []int{3, 1, 2}
	named.WithName[intOrder](Comparator[int](cmp.Compare[int]), func(c named.Named[intOrder, Comparator[int]]) struct{} {
		s, err := SortBy(in, c)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, s.Values())
		return struct{}{}
	})
	assert.Equal(t, []int{3, 1, 2}, in)
}

func TestMergeBy_IsStable(t *testing.T) {
	type pair struct {
		key int
		src string
	}
	byKey := Comparator[pair](func(a, b pair) int { return cmp.Compare(a.key, b.key) })

	named.WithName[intOrder](byKey, func(c named.Named[intOrder, Comparator[pair]]) struct{} {
		xs, err := SortBy([]pair{{1, "x"}, {2, "x"}}, c)
		require.NoError(t, err)
		ys, err := SortBy([]pair{{1, "y"}, {2, "y"}}, c)
		require.NoError(t, err)

		zs, err := MergeBy(xs, ys, c)
		require.NoError(t, err)
		assert.Equal(t, []pair{{1, "x"}, {1, "y"}, {2, "x"}, {2, "y"}}, zs.Values())
		return struct{}{}
	})
}

func TestMergeBy_RejectsOtherComparator(t *testing.T) {
	// Both comparators share the brand type, so only the runtime brand
	// tells them apart.
	named.WithName[intOrder](Comparator[int](cmp.Compare[int]), func(ascending named.Named[intOrder, Comparator[int]]) struct{} {
		named.WithName[intOrder](Comparator[int](backwards), func(descending named.Named[intOrder, Comparator[int]]) struct{} {
			xs, err := SortBy([]int{1, 3, 5}, ascending)
			require.NoError(t, err)
			ys, err := SortBy([]int{2, 3, 4}, descending)
			require.NoError(t, err)
			assert.Equal(t, []int{4, 3, 2}, ys.Values())

			_, err = MergeBy(xs, ys, descending)
			require.Error(t, err)
			assert.True(t, proof.IsFault(err, proof.FaultMismatch))
			return struct{}{}
		})
		return struct{}{}
	})
}

func TestSortBy_ClosedComparator(t *testing.T) {
	var escaped named.Named[intOrder, Comparator[int]]
	named.WithName[intOrder](Comparator[int](cmp.Compare[int]), func(c named.Named[intOrder, Comparator[int]]) struct{} {
		escaped = c
		return struct{}{}
	})

	_, err := SortBy([]int{2, 1}, escaped)
	assert.True(t, proof.IsFault(err, proof.FaultClosed))

	var zero named.Named[intOrder, Comparator[int]]
	_, err = SortBy([]int{2, 1}, zero)
	assert.True(t, proof.IsFault(err, proof.FaultUnbound))
}

func TestSearch(t *testing.T) {
	named.WithBrand([]int{1, 3, 5, 7}, func(n named.Named[named.Anon, []int]) struct{} {
		p, err := CertifyAscending(n)
		require.NoError(t, err)
		assert.Equal(t, "ascending", p.Property())

		i, found, err := Search(n, p, 5)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, 2, i)

		i, found, err = Search(n, p, 4)
		require.NoError(t, err)
		assert.False(t, found)
		assert.Equal(t, 2, i)
		return struct{}{}
	})
}

func TestSearch_RequiresMatchingEvidence(t *testing.T) {
	named.WithBrand([]int{1, 2, 3}, func(sortedInput named.Named[named.Anon, []int]) struct{} {
		p, err := CertifyAscending(sortedInput)
		require.NoError(t, err)

		named.WithBrand([]int{3, 1, 2}, func(other named.Named[named.Anon, []int]) struct{} {
			_, err := CertifyAscending(other)
			assert.True(t, proof.IsValidationError(err))

			_, _, err = Search(other, p, 1)
			assert.True(t, proof.IsFault(err, proof.FaultMismatch))
			return struct{}{}
		})
		return struct{}{}
	})
}
