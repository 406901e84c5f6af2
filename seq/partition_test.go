package seq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/riffle/eq"
)

func ident[T any](v T) T { return v }

func TestWindowOverlapping(t *testing.T) {
	got, err := Window(3, 2, []int{1, 2, 3, 4, 5, 6, 7})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2, 3}, {3, 4, 5}, {5, 6, 7}, {7}}, got)
}

func TestWindowNonOverlapping(t *testing.T) {
	got, err := Window(2, 2, []int{1, 2, 3, 4, 5})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, got)
}

func TestWindowStepLargerThanSizeSkipsElements(t *testing.T) {
	got, err := Window(1, 3, []int{1, 2, 3, 4, 5, 6, 7})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1}, {4}, {7}}, got)
}

func TestWindowEmptyInput(t *testing.T) {
	got, err := Window(3, 1, []int(nil))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestWindowRejectsNonPositiveStep(t *testing.T) {
	_, err := Window(3, 0, []int{1, 2, 3})
	require.Error(t, err)
	assert.True(t, IsInvalidArgument(err))

	_, err = Window(3, -1, []int{1, 2, 3})
	assert.True(t, IsInvalidArgument(err))
}

func TestWindowRejectsNonPositiveSize(t *testing.T) {
	_, err := Window(0, 1, []int{1, 2, 3})
	require.Error(t, err)
	assert.True(t, IsInvalidArgument(err))
}

func TestWindowDoesNotAliasInput(t *testing.T) {
	in := []int{1, 2, 3, 4}
	got, err := Window(2, 2, in)
	require.NoError(t, err)
	got[0][0] = 99
	assert.Equal(t, 1, in[0], "windows must be fresh slices")
}

func TestWindowExactDropsShortTail(t *testing.T) {
	got, err := WindowExact(3, 2, []int{1, 2, 3, 4, 5, 6, 7})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2, 3}, {3, 4, 5}, {5, 6, 7}}, got)
}

func TestWindowExactKeepsFullWindowsOnly(t *testing.T) {
	got, err := WindowExact(2, 2, []int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2}}, got)
}

func TestWindowExactRejectsNonPositiveStep(t *testing.T) {
	_, err := WindowExact(2, 0, []int{1, 2})
	require.Error(t, err)
	assert.True(t, IsInvalidArgument(err))
}

func TestChunkByBreaksOnKeyChange(t *testing.T) {
	got := ChunkBy(eq.Deep[int](), ident[int], []int{1, 1, 2, 2, 2, 1, 1})
	assert.Equal(t, [][]int{{1, 1}, {2, 2, 2}, {1, 1}}, got)
}

func TestChunkByDerivedKey(t *testing.T) {
	// Parity as the derived key: runs break where parity flips.
	parity := func(v int) int { return v % 2 }
	got := ChunkBy(eq.Deep[int](), parity, []int{1, 3, 2, 4, 6, 5})
	assert.Equal(t, [][]int{{1, 3}, {2, 4, 6}, {5}}, got)
}

func TestChunkByEmptyInput(t *testing.T) {
	assert.Nil(t, ChunkBy(eq.Deep[int](), ident[int], nil))
}

func TestChunkBySingleElement(t *testing.T) {
	got := ChunkBy(eq.Deep[int](), ident[int], []int{9})
	assert.Equal(t, [][]int{{9}}, got)
}

func TestChunkByCustomPolicy(t *testing.T) {
	got := ChunkBy(eq.Fold(), ident[string], []string{"a", "A", "b", "B", "a"})
	assert.Equal(t, [][]string{{"a", "A"}, {"b", "B"}, {"a"}}, got)
}

func TestChunkByHeaderSplitsOnHeaderReturn(t *testing.T) {
	got := ChunkByHeader(eq.Deep[int](), ident[int], []int{1, 2, 3, 1, 4, 5, 1})
	assert.Equal(t, [][]int{{1, 2, 3}, {1, 4, 5}, {1}}, got)
}

func TestChunkByHeaderConsecutiveHeadersStayTogether(t *testing.T) {
	// No departure between the leading 1s, so they share a chunk.
	got := ChunkByHeader(eq.Deep[int](), ident[int], []int{1, 1, 2, 1, 1, 3})
	assert.Equal(t, [][]int{{1, 1, 2}, {1, 1, 3}}, got)
}

func TestChunkByHeaderNoReturn(t *testing.T) {
	got := ChunkByHeader(eq.Deep[int](), ident[int], []int{1, 2, 3})
	assert.Equal(t, [][]int{{1, 2, 3}}, got)
}

func TestChunkByHeaderEmptyInput(t *testing.T) {
	assert.Nil(t, ChunkByHeader(eq.Deep[int](), ident[int], nil))
}
