// SPDX-License-Identifier: MIT

package decompose

import (
	"fmt"
	"math"

	"github.com/numkit/linsys/matrix"
)

const opCholesky = "Cholesky"

// Cholesky factors a symmetric positive-definite matrix as A = L·Lᵀ and
// returns the lower-triangular L. The input is never mutated.
//
// Implementation:
//   - Stage 1: validate non-nil, square, symmetric within SymmetryTol.
//   - Stage 2: column-by-column Cholesky–Banachiewicz:
//     L[j][j] = √(A[j][j] − Σₖ L[j][k]²),
//     L[i][j] = (A[i][j] − Σₖ L[i][k]·L[j][k]) / L[j][j]  for i > j.
//     A non-positive value under the square root disproves positive
//     definiteness and aborts.
//
// Errors:
//   - matrix.ErrNilMatrix / matrix.ErrNonSquare (shape issues).
//   - ErrNotSymmetric        (asymmetry beyond SymmetryTol).
//   - ErrNotPositiveDefinite (non-positive diagonal term), wrapped with
//     the offending column index.
//
// Determinism: fixed j→i→k loop order; no pivoting.
// Complexity: Time O(n³), Space O(n²).
func Cholesky(m matrix.Matrix) (*matrix.Dense, error) {
	if err := requireSymmetric(m, opCholesky); err != nil {
		return nil, err
	}

	a, err := toRows(m, opCholesky)
	if err != nil {
		return nil, err
	}
	n := len(a)
	l := zeroRows(n, n)

	var (
		i, j, k int
		sum     float64
	)
	for j = 0; j < n; j++ {
		// Diagonal entry: subtract the squares of row j built so far.
		sum = a[j][j]
		for k = 0; k < j; k++ {
			sum -= l[j][k] * l[j][k]
		}
		if sum <= 0 {
			return nil, decomposeErrorf(opCholesky, fmt.Errorf("column %d: %w", j, ErrNotPositiveDefinite))
		}
		l[j][j] = math.Sqrt(sum)

		// Entries below the diagonal in column j.
		for i = j + 1; i < n; i++ {
			sum = a[i][j]
			for k = 0; k < j; k++ {
				sum -= l[i][k] * l[j][k]
			}
			l[i][j] = sum / l[j][j]
		}
	}

	out, err := matrix.NewFromRows(l)
	if err != nil {
		return nil, decomposeErrorf(opCholesky, err)
	}

	return out, nil
}
