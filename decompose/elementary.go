// SPDX-License-Identifier: MIT
// Package decompose: elementary row-operation matrix builders.
//
// Left-multiplying a matrix by one of these reproduces the corresponding
// in-place row operation: E·A scales, combines or swaps A's rows. They
// exist for illustration and testing of the elimination steps — the
// solver itself mutates rows directly for efficiency.

package decompose

import (
	"fmt"

	"github.com/numkit/linsys/matrix"
)

const (
	opScaleRowMatrix    = "ScaleRowMatrix"
	opAddMultipleMatrix = "AddMultipleMatrix"
	opSwapRowsMatrix    = "SwapRowsMatrix"
)

// checkRowIndex validates 0 ≤ i < n for a builder of size n.
func checkRowIndex(opTag string, i, n int) error {
	if i < 0 || i >= n {
		return decomposeErrorf(opTag, fmt.Errorf("row %d of %d: %w", i, n, matrix.ErrOutOfRange))
	}

	return nil
}

// ScaleRowMatrix returns the n×n elementary matrix E such that E·A
// multiplies row i of A by alpha: identity with E[i][i] = alpha.
//
// Errors: matrix.ErrInvalidDimensions (n ≤ 0), matrix.ErrOutOfRange.
// Complexity: O(n²).
func ScaleRowMatrix(n, i int, alpha float64) (*matrix.Dense, error) {
	e, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, decomposeErrorf(opScaleRowMatrix, err)
	}
	if err = checkRowIndex(opScaleRowMatrix, i, n); err != nil {
		return nil, err
	}
	// Overwrite the single diagonal cell; Set is bounds-safe after the check.
	_ = e.Set(i, i, alpha)

	return e, nil
}

// AddMultipleMatrix returns the n×n elementary matrix E such that E·A
// adds alpha times row src to row dst: identity with E[dst][src] = alpha.
// dst and src must differ (dst == src would silently fold into a scale).
//
// Errors: matrix.ErrInvalidDimensions (n ≤ 0), matrix.ErrOutOfRange,
// matrix.ErrDimensionMismatch (dst == src).
// Complexity: O(n²).
func AddMultipleMatrix(n, dst, src int, alpha float64) (*matrix.Dense, error) {
	e, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, decomposeErrorf(opAddMultipleMatrix, err)
	}
	if err = checkRowIndex(opAddMultipleMatrix, dst, n); err != nil {
		return nil, err
	}
	if err = checkRowIndex(opAddMultipleMatrix, src, n); err != nil {
		return nil, err
	}
	if dst == src {
		return nil, decomposeErrorf(opAddMultipleMatrix, matrix.ErrDimensionMismatch)
	}
	_ = e.Set(dst, src, alpha)

	return e, nil
}

// SwapRowsMatrix returns the n×n elementary (permutation) matrix E such
// that E·A exchanges rows i and j of A.
//
// Errors: matrix.ErrInvalidDimensions (n ≤ 0), matrix.ErrOutOfRange.
// Complexity: O(n²).
func SwapRowsMatrix(n, i, j int) (*matrix.Dense, error) {
	e, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, decomposeErrorf(opSwapRowsMatrix, err)
	}
	if err = checkRowIndex(opSwapRowsMatrix, i, n); err != nil {
		return nil, err
	}
	if err = checkRowIndex(opSwapRowsMatrix, j, n); err != nil {
		return nil, err
	}
	// Identity already handles i == j; otherwise move the two ones.
	if i != j {
		_ = e.Set(i, i, 0)
		_ = e.Set(j, j, 0)
		_ = e.Set(i, j, 1)
		_ = e.Set(j, i, 1)
	}

	return e, nil
}
