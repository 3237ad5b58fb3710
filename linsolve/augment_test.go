// SPDX-License-Identifier: MIT

package linsolve_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/numkit/linsys/linsolve"
	"github.com/numkit/linsys/matrix"
)

func TestAugment_AppendsRHS(t *testing.T) {
	t.Parallel()

	a := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	aug, err := linsolve.Augment(a, []float64{5, 6})
	require.NoError(t, err)

	require.Equal(t, 2, aug.Rows())
	require.Equal(t, 3, aug.Cols(), "augmented matrix gains exactly one column")
	requireMatrixApprox(t, mustFromRows(t, [][]float64{{1, 2, 5}, {3, 4, 6}}), aug)
}

func TestAugment_DoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	a := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := []float64{5, 6}

	aug, err := linsolve.Augment(a, b)
	require.NoError(t, err)

	// Writing into the result must not leak back into A or b.
	require.NoError(t, aug.Set(0, 0, 99))
	require.NoError(t, aug.Set(0, 2, 99))
	v, err := a.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
	require.Equal(t, []float64{5, 6}, b)
}

func TestAugment_RowCountMismatch(t *testing.T) {
	t.Parallel()

	a := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	_, err := linsolve.Augment(a, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestAugment_NilInputs(t *testing.T) {
	t.Parallel()

	_, err := linsolve.Augment(nil, []float64{1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	a := mustFromRows(t, [][]float64{{1}})
	_, err = linsolve.Augment(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestAugment_InterfaceFallback(t *testing.T) {
	t.Parallel()

	a := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	aug, err := linsolve.Augment(hide{a}, []float64{5, 6})
	require.NoError(t, err)
	requireMatrixApprox(t, mustFromRows(t, [][]float64{{1, 2, 5}, {3, 4, 6}}), aug)
}
