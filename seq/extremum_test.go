package seq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/riffle/order"
)

func TestMaxByFindsMaximum(t *testing.T) {
	got, err := MaxBy(order.Natural[int](), []int{3, 9, 1, 7})
	require.NoError(t, err)
	assert.Equal(t, 9, got)
}

func TestMinByFindsMinimum(t *testing.T) {
	got, err := MinBy(order.Natural[int](), []int{3, 9, 1, 7})
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestMaxByEarliestWinsTies(t *testing.T) {
	got, err := MaxBy(byRank(), []card{{2, "first"}, {2, "second"}, {1, "low"}})
	require.NoError(t, err)
	assert.Equal(t, card{2, "first"}, got)
}

func TestMinByEarliestWinsTies(t *testing.T) {
	got, err := MinBy(byRank(), []card{{5, "x"}, {1, "first"}, {1, "second"}})
	require.NoError(t, err)
	assert.Equal(t, card{1, "first"}, got)
}

func TestMaxByEmptyFails(t *testing.T) {
	_, err := MaxBy(order.Natural[int](), nil)
	require.Error(t, err)
	assert.True(t, IsEmptyInput(err))
}

func TestMinByEmptyFails(t *testing.T) {
	_, err := MinBy(order.Natural[int](), nil)
	require.Error(t, err)
	assert.True(t, IsEmptyInput(err))
}

func TestMaxBySingleElement(t *testing.T) {
	got, err := MaxBy(order.Natural[int](), []int{42})
	require.NoError(t, err)
	assert.Equal(t, 42, got)
}
