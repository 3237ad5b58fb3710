// SPDX-License-Identifier: MIT
// Package decompose_test: Gram–Schmidt QR and independence tests.

package decompose_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/numkit/linsys/decompose"
	"github.com/numkit/linsys/matrix"
)

func TestQR_Reconstructs(t *testing.T) {
	t.Parallel()

	a := mustFromRows(t, [][]float64{
		{1, 1},
		{1, 0},
		{0, 1},
	})
	q, r, err := decompose.QR(a)
	require.NoError(t, err)

	requireReconstructs(t, a, q, r)
	requireUpperTriangular(t, r)

	// QᵀQ ≈ I: orthonormal columns.
	qt, err := matrix.Transpose(q)
	require.NoError(t, err)
	gram, err := matrix.Mul(qt, q)
	require.NoError(t, err)
	eye, err := matrix.NewIdentity(a.Cols())
	require.NoError(t, err)
	requireMatrixApprox(t, eye, gram)
}

func TestQR_SquareFullRank(t *testing.T) {
	t.Parallel()

	a := mustFromRows(t, [][]float64{
		{2, 0, 1},
		{0, 1, 1},
		{1, 1, 0},
	})
	q, r, err := decompose.QR(a)
	require.NoError(t, err)
	requireReconstructs(t, a, q, r)
	requireUpperTriangular(t, r)

	// Positive diagonal of R: Gram–Schmidt norms are positive by construction.
	for i := 0; i < r.Rows(); i++ {
		v, err := r.At(i, i)
		require.NoError(t, err)
		require.Positive(t, v, "R[%d][%d]", i, i)
	}
}

func TestQR_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	a := mustFromRows(t, [][]float64{{1, 1}, {1, 0}, {0, 1}})
	_, _, err := decompose.QR(a)
	require.NoError(t, err)
	requireMatrixApprox(t, mustFromRows(t, [][]float64{{1, 1}, {1, 0}, {0, 1}}), a)
}

func TestQR_DependentColumns(t *testing.T) {
	t.Parallel()

	// Second column is 2× the first.
	a := mustFromRows(t, [][]float64{
		{1, 2},
		{2, 4},
	})
	_, _, err := decompose.QR(a)
	require.ErrorIs(t, err, decompose.ErrDependentColumns)
}

func TestQR_ShapeErrors(t *testing.T) {
	t.Parallel()

	_, _, err := decompose.QR(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	// More columns than rows: orthonormal columns cannot exist.
	wide := mustFromRows(t, [][]float64{{1, 0, 1}})
	_, _, err = decompose.QR(wide)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestLinearlyIndependent(t *testing.T) {
	t.Parallel()

	indep := mustFromRows(t, [][]float64{{1, 0}, {0, 1}, {1, 1}})
	ok, err := decompose.LinearlyIndependent(indep)
	require.NoError(t, err)
	require.True(t, ok)

	dep := mustFromRows(t, [][]float64{{1, 2}, {2, 4}})
	ok, err = decompose.LinearlyIndependent(dep)
	require.NoError(t, err)
	require.False(t, ok, "dependence is an answer, not an error")
}

func TestLinearlyIndependent_WideIsDependent(t *testing.T) {
	t.Parallel()

	// cols > rows: dependent by pigeonhole, no arithmetic needed.
	wide := mustFromRows(t, [][]float64{{1, 0, 1}, {0, 1, 1}})
	ok, err := decompose.LinearlyIndependent(wide)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestQR_InterfaceFallback(t *testing.T) {
	t.Parallel()

	a := mustFromRows(t, [][]float64{{1, 1}, {1, 0}, {0, 1}})
	qd, rd, err := decompose.QR(a)
	require.NoError(t, err)
	qi, ri, err := decompose.QR(hide{a})
	require.NoError(t, err)
	requireMatrixApprox(t, qd, qi)
	requireMatrixApprox(t, rd, ri)
}
