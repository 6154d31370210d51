// SPDX-License-Identifier: MIT

package dense_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlmat/dense"
)

func TestGonumRoundTrip(t *testing.T) {
	t.Parallel()

	src := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	m, err := dense.FromGonum(src)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	back := m.ToGonum()
	require.True(t, mat.Equal(src, back))

	// The bridge copies: mutating one side must not affect the other.
	back.Set(0, 0, 42)
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

func TestFromGonum_TransposedView(t *testing.T) {
	t.Parallel()

	src := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	m, err := dense.FromGonum(src.T())
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 2, m.Cols())
	v, err := m.At(2, 1)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)
}
