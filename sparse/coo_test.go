// SPDX-License-Identifier: MIT

package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmat/sparse"
)

func TestCOO_PushBounds(t *testing.T) {
	t.Parallel()

	c, err := sparse.NewCOO(2, 2)
	require.NoError(t, err)

	require.NoError(t, c.Push(0, 0, 1))
	require.ErrorIs(t, c.Push(2, 0, 1), sparse.ErrIndexOutOfRange)
	require.ErrorIs(t, c.Push(0, -1, 1), sparse.ErrIndexOutOfRange)
	require.Equal(t, 1, c.NNZ())

	_, err = sparse.NewCOO(0, 2)
	require.ErrorIs(t, err, sparse.ErrBadShape)
}

func TestCOO_ToCSR_UnorderedInput(t *testing.T) {
	t.Parallel()

	c, err := sparse.NewCOO(2, 3)
	require.NoError(t, err)
	// Deliberately out of order.
	require.NoError(t, c.Push(1, 2, 3))
	require.NoError(t, c.Push(0, 2, 2))
	require.NoError(t, c.Push(0, 0, 1))

	m := c.ToCSR()
	require.Equal(t, 3, m.NNZ())

	cols, vals := m.Row(0)
	require.Equal(t, []int{0, 2}, cols)
	require.Equal(t, []float64{1, 2}, vals)

	cols, vals = m.Row(1)
	require.Equal(t, []int{2}, cols)
	require.Equal(t, []float64{3}, vals)
}

func TestCOO_ToCSR_SumsDuplicates(t *testing.T) {
	t.Parallel()

	c, err := sparse.NewCOO(1, 2)
	require.NoError(t, err)
	require.NoError(t, c.Push(0, 1, 1.5))
	require.NoError(t, c.Push(0, 0, 4))
	require.NoError(t, c.Push(0, 1, 2.5))

	m := c.ToCSR()
	require.Equal(t, 2, m.NNZ(), "duplicates must collapse")
	v, ok := m.Entry(0, 1)
	require.True(t, ok)
	require.Equal(t, 4.0, v)
}

func TestCOO_ToCSR_EmptyBuilder(t *testing.T) {
	t.Parallel()

	c, err := sparse.NewCOO(3, 3)
	require.NoError(t, err)

	m := c.ToCSR()
	require.Equal(t, 0, m.NNZ())
	require.Equal(t, 3, m.Rows())
	for i := 0; i < 3; i++ {
		cols, _ := m.Row(i)
		require.Empty(t, cols)
	}
}
