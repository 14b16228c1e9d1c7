// internal/multiset/multiset_test.go
package multiset

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sorted(list []int) []int {
	out := append([]int(nil), list...)
	sort.Ints(out)
	return out
}

func TestDiffBasic(t *testing.T) {
	a := []int{1, 1, 2, 3}
	b := []int{1, 2, 2, 4}

	aOnly, bOnly := Diff(a, b)
	assert.ElementsMatch(t, []Entry[int]{{Value: 1, Count: 1}, {Value: 3, Count: 1}}, aOnly)
	assert.ElementsMatch(t, []Entry[int]{{Value: 2, Count: 1}, {Value: 4, Count: 1}}, bOnly)
}

func TestDiffSelfIsEmpty(t *testing.T) {
	a := []int{5, 5, 7, 9, 9, 9}
	aOnly, bOnly := Diff(a, a)
	assert.Empty(t, aOnly)
	assert.Empty(t, bOnly)
}

func TestDiffEqualMultiplicityContributesNothing(t *testing.T) {
	a := []int{1, 1, 2}
	b := []int{2, 1, 1}
	aOnly, bOnly := Diff(a, b)
	assert.Empty(t, aOnly)
	assert.Empty(t, bOnly)
}

// diff(A,B) + diff(B,A) + 2*intersection must reconstruct A ∪ B with
// multiplicities intact.
func TestPartitionProperty(t *testing.T) {
	a := []int{1, 1, 1, 2, 3, 3, 8}
	b := []int{1, 2, 2, 3, 3, 3, 9}

	aOnly, bOnly := Diff(a, b)
	common := Intersect(a, b)

	var rebuilt []int
	rebuilt = append(rebuilt, Expand(aOnly)...)
	rebuilt = append(rebuilt, Expand(bOnly)...)
	rebuilt = append(rebuilt, Expand(common)...)
	rebuilt = append(rebuilt, Expand(common)...)

	union := append(append([]int(nil), a...), b...)
	require.Equal(t, sorted(union), sorted(rebuilt))
}

func TestExpandRepeatsByCount(t *testing.T) {
	got := Expand([]Entry[string]{{Value: "x", Count: 3}, {Value: "y", Count: 1}})
	assert.Equal(t, []string{"x", "x", "x", "y"}, got)
}

func TestUnique(t *testing.T) {
	got := Unique([]int{3, 1, 3, 2, 1})
	assert.Equal(t, []int{3, 1, 2}, got)
	assert.Empty(t, Unique([]int(nil)))
}
