// SPDX-License-Identifier: MIT
// Package decompose: private helpers shared by the factorization kernels.

package decompose

import (
	"fmt"
	"math"

	"github.com/numkit/linsys/matrix"
)

// toRows copies m into a fresh [][]float64 so kernels can index freely
// without going through the interface in their inner loops.
// Complexity: O(r*c).
func toRows(m matrix.Matrix, opTag string) ([][]float64, error) {
	rows, cols := m.Rows(), m.Cols()
	out := make([][]float64, rows)
	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		out[i] = make([]float64, cols)
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, decomposeErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			out[i][j] = v
		}
	}

	return out, nil
}

// requireSymmetric validates that m is non-nil, square and symmetric
// within SymmetryTol. The upper triangle is scanned once in fixed i→j
// order.
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, ErrNotSymmetric.
// Complexity: O(n²).
func requireSymmetric(m matrix.Matrix, opTag string) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return decomposeErrorf(opTag, err)
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return decomposeErrorf(opTag, err)
	}
	n := m.Rows()
	var i, j int
	var aij, aji float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			aij, _ = m.At(i, j) // bounds are loop-guaranteed after ValidateSquare
			aji, _ = m.At(j, i)
			if math.Abs(aij-aji) > SymmetryTol {
				return decomposeErrorf(opTag, fmt.Errorf("entries (%d,%d)/(%d,%d): %w", i, j, j, i, ErrNotSymmetric))
			}
		}
	}

	return nil
}
