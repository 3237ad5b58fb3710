// SPDX-License-Identifier: MIT
// Package linsolve: structural analysis of an RREF augmented matrix —
// pivot/free column classification and the consistency check.

package linsolve

import (
	"fmt"

	"github.com/numkit/linsys/matrix"
)

const (
	opClassifyColumns = "ClassifyColumns"
	opCheckConsistent = "CheckConsistent"
)

// ColumnClassification partitions the coefficient columns of an RREF
// augmented matrix into pivot (basic) and free columns.
//
// Invariants:
//   - PivotColumns, PivotRows have equal length == Rank() ≤ matrix rows.
//   - PivotColumns and FreeColumns are disjoint and their union is
//     exactly {0, …, Cols-1}.
//   - FreeColumns is ascending; PivotColumns follows the row order in
//     which pivots appear (PivotRows[k] is the row owning PivotColumns[k]).
type ColumnClassification struct {
	// PivotColumns lists the pivot column of each nonzero row, in row order.
	PivotColumns []int
	// PivotRows lists, in the same order, the row owning each pivot.
	// All-zero rows own no pivot and appear in neither slice.
	PivotRows []int
	// FreeColumns lists the non-pivot (free) coefficient columns, ascending.
	FreeColumns []int
	// Cols is the number of coefficient columns (augmented columns - 1).
	Cols int
}

// Rank returns the matrix rank — the number of pivot columns.
// Complexity: O(1).
func (c ColumnClassification) Rank() int { return len(c.PivotColumns) }

// ClassifyColumns inspects an RREF augmented matrix and records, for each
// row, the column of its first nonzero coefficient entry as a pivot
// column; every remaining coefficient column is free. The augmented
// (right-hand-side) column is excluded from the scan.
//
// All-zero coefficient rows contribute nothing — including the
// inconsistent 0 = c form, which this analyzer deliberately does NOT
// flag; use CheckConsistent (or Solve, which calls it) for that.
//
// Errors:
//   - matrix.ErrNilMatrix         (nil input).
//   - matrix.ErrDimensionMismatch (fewer than 2 columns — an augmented
//     matrix needs at least one coefficient column plus the RHS).
//
// Complexity: Time O(rows·cols), Space O(cols).
func ClassifyColumns(rref matrix.Matrix) (ColumnClassification, error) {
	if err := matrix.ValidateNotNil(rref); err != nil {
		return ColumnClassification{}, linsolveErrorf(opClassifyColumns, err)
	}
	// An augmented matrix has coefficient columns + 1; anything narrower
	// cannot be classified.
	if rref.Cols() < 2 {
		return ColumnClassification{}, linsolveErrorf(opClassifyColumns, matrix.ErrDimensionMismatch)
	}

	rows := rref.Rows()
	coefCols := rref.Cols() - 1 // exclude the augmented RHS column

	cls := ColumnClassification{Cols: coefCols}
	// isPivot marks coefficient columns already claimed by a row.
	isPivot := make([]bool, coefCols)

	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		// First nonzero coefficient entry of row i, left→right.
		for j = 0; j < coefCols; j++ {
			v, err = rref.At(i, j)
			if err != nil {
				return ColumnClassification{}, linsolveErrorf(opClassifyColumns, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if v != 0 {
				cls.PivotColumns = append(cls.PivotColumns, j)
				cls.PivotRows = append(cls.PivotRows, i)
				isPivot[j] = true
				break
			}
		}
		// No nonzero coefficient: the row owns no pivot (dependent or
		// inconsistent equation) and is simply passed over.
	}

	// Free columns: the ascending complement of the pivot set.
	for j = 0; j < coefCols; j++ {
		if !isPivot[j] {
			cls.FreeColumns = append(cls.FreeColumns, j)
		}
	}

	return cls, nil
}

// CheckConsistent reports whether the RREF augmented matrix encodes a
// solvable system. A row whose coefficient entries are all zero but whose
// augmented entry is nonzero reads "0 = c" — no assignment of variables
// can satisfy it.
//
// Errors:
//   - matrix.ErrNilMatrix / matrix.ErrDimensionMismatch (shape issues).
//   - ErrInconsistentSystem, wrapped with the offending row index.
//
// Complexity: Time O(rows·cols), Space O(1).
func CheckConsistent(rref matrix.Matrix) error {
	if err := matrix.ValidateNotNil(rref); err != nil {
		return linsolveErrorf(opCheckConsistent, err)
	}
	if rref.Cols() < 2 {
		return linsolveErrorf(opCheckConsistent, matrix.ErrDimensionMismatch)
	}

	rows := rref.Rows()
	coefCols := rref.Cols() - 1
	var i, j int
	var v float64
	var err error
	var zeroCoefs bool
	for i = 0; i < rows; i++ {
		zeroCoefs = true
		for j = 0; j < coefCols; j++ {
			v, err = rref.At(i, j)
			if err != nil {
				return linsolveErrorf(opCheckConsistent, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if v != 0 {
				zeroCoefs = false
				break
			}
		}
		if !zeroCoefs {
			continue
		}
		// Coefficients vanished; a nonzero RHS makes the row unsatisfiable.
		v, err = rref.At(i, coefCols)
		if err != nil {
			return linsolveErrorf(opCheckConsistent, fmt.Errorf("At(%d,%d): %w", i, coefCols, err))
		}
		if v != 0 {
			return linsolveErrorf(opCheckConsistent, fmt.Errorf("row %d: %w", i, ErrInconsistentSystem))
		}
	}

	return nil
}
