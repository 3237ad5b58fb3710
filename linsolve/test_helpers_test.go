// SPDX-License-Identifier: MIT
// Package linsolve_test: shared fixtures and numeric assertions.

package linsolve_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/numkit/linsys/matrix"
)

// tol is the floating tolerance for residual checks (A·p ≈ b, A·n ≈ 0).
const tol = 1e-9

// mustFromRows builds a *Dense fixture or fails the test.
func mustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		t.Fatalf("NewFromRows: %v", err)
	}

	return m
}

// hide masks the concrete *Dense type to force interface fallback paths.
type hide struct{ matrix.Matrix }

// requireMatVecApprox asserts A·x ≈ want within tol, element-wise.
func requireMatVecApprox(t *testing.T, a matrix.Matrix, x, want []float64) {
	t.Helper()
	got, err := matrix.MatVec(a, x)
	require.NoError(t, err)
	require.Len(t, got, len(want))
	for i := range want {
		require.InDelta(t, want[i], got[i], tol, "component %d", i)
	}
}

// requireMatrixApprox asserts two matrices agree element-wise within tol.
func requireMatrixApprox(t *testing.T, want, got matrix.Matrix) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows())
	require.Equal(t, want.Cols(), got.Cols())
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			w, err := want.At(i, j)
			require.NoError(t, err)
			g, err := got.At(i, j)
			require.NoError(t, err)
			require.InDelta(t, w, g, tol, "at [%d,%d]", i, j)
		}
	}
}
