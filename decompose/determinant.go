// SPDX-License-Identifier: MIT

package decompose

import "github.com/numkit/linsys/matrix"

const opDeterminant = "Determinant"

// Determinant computes det(A) by cofactor (Laplace) expansion along the
// first row. The input must be square and is never mutated.
//
// This is the textbook recursive definition, kept for its didactic
// structure: det(A) = Σⱼ (−1)ʲ·A[0][j]·det(minor(0, j)). Zero entries in
// the expansion row are skipped, which prunes entire recursion subtrees.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare.
// Complexity: Time O(n!), Space O(n²) across the recursion — use only
// for small n.
func Determinant(m matrix.Matrix) (float64, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return 0, decomposeErrorf(opDeterminant, err)
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return 0, decomposeErrorf(opDeterminant, err)
	}

	a, err := toRows(m, opDeterminant)
	if err != nil {
		return 0, err
	}

	return cofactorDet(a), nil
}

// cofactorDet is the recursive core over a plain [][]float64.
func cofactorDet(a [][]float64) float64 {
	n := len(a)
	// Base cases close the recursion cheaply.
	if n == 1 {
		return a[0][0]
	}
	if n == 2 {
		return a[0][0]*a[1][1] - a[0][1]*a[1][0]
	}

	var (
		det  float64
		sign = 1.0
		j    int
	)
	for j = 0; j < n; j++ {
		if a[0][j] != 0 { // skip zero cofactors entirely
			det += sign * a[0][j] * cofactorDet(minor(a, j))
		}
		sign = -sign
	}

	return det
}

// minor returns a copy of a with row 0 and column col removed.
// Complexity: O(n²).
func minor(a [][]float64, col int) [][]float64 {
	n := len(a)
	out := make([][]float64, 0, n-1)
	var i, j int
	var row []float64
	for i = 1; i < n; i++ {
		row = make([]float64, 0, n-1)
		for j = 0; j < n; j++ {
			if j == col {
				continue
			}
			row = append(row, a[i][j])
		}
		out = append(out, row)
	}

	return out
}
