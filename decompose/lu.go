// SPDX-License-Identifier: MIT

package decompose

import (
	"fmt"

	"github.com/numkit/linsys/matrix"
)

const opLU = "LU"

// LU computes the Doolittle factorization A = L·U — unit diagonal on L,
// upper-triangular U — for a symmetric positive-definite matrix. The
// SPD precondition guarantees that every pivot U[i][i] is strictly
// positive, so the non-pivoting scheme never divides by zero. The input
// is never mutated.
//
// Implementation:
//   - Stage 1: validate non-nil, square, symmetric within SymmetryTol;
//     allocate L, U and set diag(L) = 1.
//   - Stage 2: for i = 0..n-1, build row i of U then column i of L in
//     fixed order:
//     U[i][j] = A[i][j] − Σₖ L[i][k]·U[k][j]   (j ≥ i),
//     L[j][i] = (A[j][i] − Σₖ L[j][k]·U[k][i]) / U[i][i]  (j > i).
//
// Errors:
//   - matrix.ErrNilMatrix / matrix.ErrNonSquare (shape issues).
//   - ErrNotSymmetric        (asymmetry beyond SymmetryTol).
//   - ErrNotPositiveDefinite (pivot U[i][i] ≤ 0 — impossible for a true
//     SPD input, so it doubles as the SPD certificate).
//
// Determinism: fixed i→{j≥i} for U, then {j>i}→i for L; no pivoting.
// Complexity: Time O(n³), Space O(n²).
func LU(m matrix.Matrix) (l, u *matrix.Dense, err error) {
	if err = requireSymmetric(m, opLU); err != nil {
		return nil, nil, err
	}

	a, err := toRows(m, opLU)
	if err != nil {
		return nil, nil, err
	}
	n := len(a)
	ld := zeroRows(n, n)
	ud := zeroRows(n, n)

	// Unit lower-triangular diagonal.
	var i, j, k int
	for i = 0; i < n; i++ {
		ld[i][i] = 1
	}

	var sum float64
	for i = 0; i < n; i++ {
		// Row i of U for columns j ≥ i.
		for j = i; j < n; j++ {
			sum = 0
			for k = 0; k < i; k++ {
				sum += ld[i][k] * ud[k][j]
			}
			ud[i][j] = a[i][j] - sum
		}

		// Pivot sign check: SPD inputs produce strictly positive pivots.
		if ud[i][i] <= 0 {
			return nil, nil, decomposeErrorf(opLU, fmt.Errorf("pivot %d: %w", i, ErrNotPositiveDefinite))
		}

		// Column i of L for rows j > i.
		for j = i + 1; j < n; j++ {
			sum = 0
			for k = 0; k < i; k++ {
				sum += ld[j][k] * ud[k][i]
			}
			ld[j][i] = (a[j][i] - sum) / ud[i][i]
		}
	}

	if l, err = matrix.NewFromRows(ld); err != nil {
		return nil, nil, decomposeErrorf(opLU, err)
	}
	if u, err = matrix.NewFromRows(ud); err != nil {
		return nil, nil, decomposeErrorf(opLU, err)
	}

	return l, u, nil
}
