// SPDX-License-Identifier: MIT
// Package linsolve: forward (REF) and backward (RREF) elimination passes.
//
// Both passes share the same pivot rule: the pivot of a row is its FIRST
// nonzero entry scanning left to right. No magnitude-based pivoting and no
// row reordering — an all-zero row (a dependent equation) is skipped and
// stays in place. This fixes the produced null-space basis and keeps the
// transform reproducible; it is not a numerical-stability scheme.

package linsolve

import (
	"fmt"

	"github.com/numkit/linsys/matrix"
)

const (
	opRowEchelon        = "ToRowEchelon"
	opReducedRowEchelon = "ToReducedRowEchelon"
)

// noPivot marks a row without any nonzero entry.
const noPivot = -1

// workingCopy clones m into a concrete *Dense so elimination can mutate
// it freely without observing or affecting the caller's matrix.
// Fast path: *Dense clones its flat slice; any other Matrix is copied
// element-wise through the interface.
// Complexity: O(r*c).
func workingCopy(m matrix.Matrix, opTag string) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, linsolveErrorf(opTag, err)
	}
	// Fast path: Dense → Dense deep copy.
	if d, ok := m.(*matrix.Dense); ok {
		return d.CloneDense(), nil
	}

	// Fallback: copy through the interface in fixed i→j order.
	rows, cols := m.Rows(), m.Cols()
	work, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, linsolveErrorf(opTag, err)
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, linsolveErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = work.Set(i, j, v); err != nil {
				return nil, linsolveErrorf(opTag, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return work, nil
}

// pivotColumn returns the column index of the first nonzero entry in the
// given row of work, or noPivot when the row is entirely zero.
// The comparison is exact (!= 0): elimination produces exact zeros below
// and above pivots by construction, so no epsilon is involved.
// Complexity: O(c).
func pivotColumn(work *matrix.Dense, row int) int {
	cols := work.Cols()
	for j := 0; j < cols; j++ {
		v, _ := work.At(row, j) // bounds are loop-guaranteed
		if v != 0 {
			return j
		}
	}

	return noPivot
}

// ToRowEchelon reduces m to row-echelon form by forward elimination and
// returns the transformed matrix as a fresh Dense; m itself is untouched.
//
// Algorithm, row by row from the top (i = 0..rows-1):
//  1. Pivot selection: first nonzero entry of row i (left→right). If the
//     row is entirely zero it is skipped in place — dependent equation.
//  2. Normalize: divide row i by the pivot value, making the pivot
//     exactly 1 (entry-wise division keeps pivot/pivot exact).
//  3. Eliminate below: for every row j > i subtract
//     m[j][pivotCol] × row i from row j.
//
// Result guarantee: every nonzero row leads with an exact 1, and all
// entries directly below each pivot are exactly 0. Row order is preserved.
//
// Errors:
//   - matrix.ErrNilMatrix (nil input).
//   - ErrSingularPivot    (division by an exact zero pivot; guards the
//     division itself, not a phantom sentinel).
//
// Complexity: Time O(rows²·cols), Space O(rows·cols) for the copy.
func ToRowEchelon(m matrix.Matrix) (*matrix.Dense, error) {
	work, err := workingCopy(m, opRowEchelon)
	if err != nil {
		return nil, err
	}

	rows := work.Rows()
	var (
		i, j, col int     // row cursor, elimination row, pivot column
		pivot     float64 // pivot value before normalization
		factor    float64 // entry to cancel in a lower row
	)
	for i = 0; i < rows; i++ {
		// Step 1: locate the pivot; a fully zero row stays as-is.
		col = pivotColumn(work, i)
		if col == noPivot {
			continue
		}
		pivot, _ = work.At(i, col)
		// Both reads address the same private snapshot, so a zero here is
		// impossible unless work is mutated mid-pass. The guard keeps the
		// division unconditionally safe.
		if pivot == 0 {
			return nil, linsolveErrorf(opRowEchelon, fmt.Errorf("row %d, col %d: %w", i, col, ErrSingularPivot))
		}

		// Step 2: normalize the pivot row (pivot becomes exactly 1).
		if err = work.DivRow(i, pivot); err != nil {
			return nil, linsolveErrorf(opRowEchelon, err)
		}

		// Step 3: cancel the pivot column in every row below.
		for j = i + 1; j < rows; j++ {
			factor, _ = work.At(j, col)
			if factor == 0 {
				continue // already eliminated
			}
			if err = work.AddScaledRow(j, i, -factor); err != nil {
				return nil, linsolveErrorf(opRowEchelon, err)
			}
			// Force the canceled entry to an exact zero; the subtraction
			// above can leave it at ±1e-17 otherwise, which would derail
			// the exact first-nonzero pivot scan later.
			if err = work.Set(j, col, 0); err != nil {
				return nil, linsolveErrorf(opRowEchelon, err)
			}
		}
	}

	return work, nil
}

// ToReducedRowEchelon reduces a matrix already in row-echelon form to
// reduced row-echelon form by backward elimination, returning a fresh
// Dense; the input is untouched.
//
// Contract: the input must already be in REF (pivots normalized to 1 by
// ToRowEchelon). REF-ness is a caller obligation and is not re-validated.
//
// Algorithm, row by row from the bottom (i = rows-1..0):
//  1. Find the row's pivot column (first nonzero entry); skip zero rows.
//  2. Eliminate above: for every row j < i subtract
//     m[j][pivotCol] × row i from row j.
//
// Result guarantee: each pivot column holds a 1 in its own row and 0 in
// every other row.
//
// Errors: matrix.ErrNilMatrix (nil input).
// Complexity: Time O(rows²·cols), Space O(rows·cols) for the copy.
func ToReducedRowEchelon(m matrix.Matrix) (*matrix.Dense, error) {
	work, err := workingCopy(m, opReducedRowEchelon)
	if err != nil {
		return nil, err
	}

	rows := work.Rows()
	var (
		i, j, col int
		factor    float64
	)
	for i = rows - 1; i >= 0; i-- {
		// Step 1: locate the pivot; zero rows contribute nothing.
		col = pivotColumn(work, i)
		if col == noPivot {
			continue
		}

		// Step 2: cancel the pivot column in every row above.
		for j = i - 1; j >= 0; j-- {
			factor, _ = work.At(j, col)
			if factor == 0 {
				continue
			}
			if err = work.AddScaledRow(j, i, -factor); err != nil {
				return nil, linsolveErrorf(opReducedRowEchelon, err)
			}
			// Same exact-zero stamp as the forward pass.
			if err = work.Set(j, col, 0); err != nil {
				return nil, linsolveErrorf(opReducedRowEchelon, err)
			}
		}
	}

	return work, nil
}
