// SPDX-License-Identifier: MIT
// Package decompose_test: shared fixtures and numeric assertions.

package decompose_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/numkit/linsys/matrix"
)

// tol is the floating tolerance for reconstruction checks (L·Lᵀ ≈ A etc.).
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

// requireReconstructs asserts l·r ≈ a.
func requireReconstructs(t *testing.T, a, l, r matrix.Matrix) {
	t.Helper()
	prod, err := matrix.Mul(l, r)
	require.NoError(t, err)
	requireMatrixApprox(t, a, prod)
}

// requireLowerTriangular asserts m[i][j] == 0 for all j > i.
func requireLowerTriangular(t *testing.T, m matrix.Matrix) {
	t.Helper()
	for i := 0; i < m.Rows(); i++ {
		for j := i + 1; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.Zero(t, v, "above diagonal at [%d,%d]", i, j)
		}
	}
}

// requireUpperTriangular asserts m[i][j] == 0 for all i > j.
func requireUpperTriangular(t *testing.T, m matrix.Matrix) {
	t.Helper()
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < i && j < m.Cols(); j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.Zero(t, v, "below diagonal at [%d,%d]", i, j)
		}
	}
}
