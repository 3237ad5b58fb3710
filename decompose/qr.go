// SPDX-License-Identifier: MIT
// Package decompose: QR factorization via classical Gram–Schmidt
// orthogonalization, plus the derived linear-independence test.

package decompose

import (
	"math"

	"github.com/numkit/linsys/matrix"
)

const (
	opQR          = "QR"
	opIndependent = "LinearlyIndependent"
)

// gramSchmidt runs classical Gram–Schmidt over the columns of a (r×c),
// filling q (r×c, orthonormal columns) and rOut (c×c, upper triangular).
// It reports the index of the first dependent column (residual norm ≤
// DependenceTol), or -1 when all columns are independent. Shared core of
// QR and LinearlyIndependent.
//
// Determinism: fixed column order j, projections in fixed i<j order.
// Complexity: Time O(r·c²), Space O(r·c).
func gramSchmidt(a [][]float64, q, rOut [][]float64) int {
	rows, cols := len(a), len(a[0])
	var (
		i, j, k int
		dot     float64 // projection coefficient qᵢ·aⱼ
		norm    float64 // residual norm ‖v‖
		v       = make([]float64, rows)
	)
	for j = 0; j < cols; j++ {
		// Start from column j of A.
		for k = 0; k < rows; k++ {
			v[k] = a[k][j]
		}
		// Subtract the projections onto all previously built q-columns.
		for i = 0; i < j; i++ {
			dot = 0
			for k = 0; k < rows; k++ {
				dot += q[k][i] * a[k][j]
			}
			rOut[i][j] = dot
			for k = 0; k < rows; k++ {
				v[k] -= dot * q[k][i]
			}
		}
		// The residual norm becomes the diagonal of R.
		norm = 0
		for k = 0; k < rows; k++ {
			norm += v[k] * v[k]
		}
		norm = math.Sqrt(norm)
		if norm <= DependenceTol {
			return j // column j lies in the span of its predecessors
		}
		rOut[j][j] = norm
		// Normalize the residual into column j of Q.
		for k = 0; k < rows; k++ {
			q[k][j] = v[k] / norm
		}
	}

	return -1
}

// QR factors A = Q·R by classical Gram–Schmidt: Q (r×c) has orthonormal
// columns and R (c×c) is upper triangular. The input is never mutated.
//
// Implementation:
//   - Stage 1: validate A non-nil with r ≥ c (fewer rows than columns
//     makes orthonormal columns impossible); copy A out of the interface.
//   - Stage 2: orthogonalize column by column; R[i][j] records the
//     projection coefficients, diag(R) the residual norms.
//
// Errors:
//   - matrix.ErrNilMatrix         (nil input).
//   - matrix.ErrDimensionMismatch (r < c).
//   - ErrDependentColumns         (a residual norm ≤ DependenceTol).
//
// Complexity: Time O(r·c²), Space O(r·c).
func QR(m matrix.Matrix) (q, r *matrix.Dense, err error) {
	if err = matrix.ValidateNotNil(m); err != nil {
		return nil, nil, decomposeErrorf(opQR, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if rows < cols {
		return nil, nil, decomposeErrorf(opQR, matrix.ErrDimensionMismatch)
	}

	a, err := toRows(m, opQR)
	if err != nil {
		return nil, nil, err
	}
	qd := zeroRows(rows, cols)
	rd := zeroRows(cols, cols)
	if dep := gramSchmidt(a, qd, rd); dep >= 0 {
		return nil, nil, decomposeErrorf(opQR, ErrDependentColumns)
	}

	if q, err = matrix.NewFromRows(qd); err != nil {
		return nil, nil, decomposeErrorf(opQR, err)
	}
	if r, err = matrix.NewFromRows(rd); err != nil {
		return nil, nil, decomposeErrorf(opQR, err)
	}

	return q, r, nil
}

// LinearlyIndependent reports whether the columns of m are linearly
// independent, by running Gram–Schmidt and checking for a vanishing
// residual. Unlike QR, dependence is an answer here, not an error.
// A matrix with more columns than rows is dependent without computation.
//
// Errors: matrix.ErrNilMatrix (nil input).
// Complexity: Time O(r·c²), Space O(r·c).
func LinearlyIndependent(m matrix.Matrix) (bool, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return false, decomposeErrorf(opIndependent, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if cols > rows {
		return false, nil // pigeonhole: rank ≤ rows < cols
	}

	a, err := toRows(m, opIndependent)
	if err != nil {
		return false, err
	}

	return gramSchmidt(a, zeroRows(rows, cols), zeroRows(cols, cols)) < 0, nil
}

// zeroRows allocates an r×c zero [][]float64 workspace.
func zeroRows(r, c int) [][]float64 {
	out := make([][]float64, r)
	for i := range out {
		out[i] = make([]float64, c)
	}

	return out
}
