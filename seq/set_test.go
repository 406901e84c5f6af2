package seq

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/riffle/eq"
)

func TestContainsUnderDefaultPolicy(t *testing.T) {
	p := eq.Deep[int]()
	assert.True(t, Contains(p, []int{1, 2, 3}, 2))
	assert.False(t, Contains(p, []int{1, 2, 3}, 4))
	assert.False(t, Contains(p, nil, 1))
}

func TestContainsUnderCustomPolicy(t *testing.T) {
	assert.True(t, Contains(eq.Fold(), []string{"Alpha", "Beta"}, "BETA"))
	assert.False(t, Contains(eq.Same[string](), []string{"Alpha", "Beta"}, "BETA"))
}

func TestDistinctKeepsFirstOccurrence(t *testing.T) {
	got := Distinct(eq.Deep[int](), []int{3, 1, 3, 2, 1, 3})
	assert.Equal(t, []int{3, 1, 2}, got)
}

func TestDistinctIsIdempotent(t *testing.T) {
	p := eq.Deep[int]()
	once := Distinct(p, []int{5, 5, 2, 5, 2})
	assert.Equal(t, once, Distinct(p, once))
	assert.LessOrEqual(t, len(once), 5)
}

func TestDistinctUnderFoldPolicy(t *testing.T) {
	got := Distinct(eq.Fold(), []string{"Go", "go", "GO", "rust"})
	assert.Equal(t, []string{"Go", "rust"}, got)
}

func TestDistinctKeyMatchesDistinct(t *testing.T) {
	in := []int{4, 4, 1, 2, 1}
	assert.Equal(t, Distinct(eq.Same[int](), in), DistinctKey(ident[int], in))
}

func TestUnionKeepsAllOfAIncludingDuplicates(t *testing.T) {
	got := Union(eq.Deep[int](), []int{1, 2, 2, 3}, []int{2, 4, 4, 5})
	assert.Equal(t, []int{1, 2, 2, 3, 4, 5}, got)
}

func TestUnionEmptySides(t *testing.T) {
	p := eq.Deep[int]()
	assert.Equal(t, []int{1, 2}, Union(p, []int{1, 2}, nil))
	assert.Equal(t, []int{1, 2}, Union(p, nil, []int{1, 2, 1}))
}

func TestIntersectionPreservesAOrderAndDuplicates(t *testing.T) {
	got := Intersection(eq.Deep[int](), []int{1, 2, 1, 3, 4}, []int{1, 4})
	assert.Equal(t, []int{1, 1, 4}, got)
}

func TestDifferenceDropsMatchedElements(t *testing.T) {
	got := Difference(eq.Deep[int](), []int{1, 2, 3, 2}, []int{2})
	assert.Equal(t, []int{1, 3}, got)
}

func TestIntersectionAndDifferencePartitionA(t *testing.T) {
	p := eq.Deep[int]()
	a := []int{1, 2, 3, 2, 5}
	b := []int{2, 5, 7}
	inter := Intersection(p, a, b)
	diff := Difference(p, a, b)
	assert.Equal(t, len(a), len(inter)+len(diff))
	for _, v := range inter {
		assert.True(t, Contains(p, b, v))
	}
	for _, v := range diff {
		assert.False(t, Contains(p, b, v))
	}
}

func TestSetAlgebraUnderNFCPolicy(t *testing.T) {
	// Precomposed vs decomposed spellings of "é" are one equal-class.
	composed := "caf\u00e9"
	decomposed := "cafe\u0301"
	got := Distinct(eq.NFC(), []string{composed, decomposed, "cafe"})
	assert.Equal(t, []string{composed, "cafe"}, got)
}

func TestUnionDoesNotMutateInputs(t *testing.T) {
	a := []int{1, 2}
	b := []int{3}
	Union(eq.Deep[int](), a, b)
	assert.Equal(t, []int{1, 2}, a)
	assert.Equal(t, []int{3}, b)
}
