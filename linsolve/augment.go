// SPDX-License-Identifier: MIT

package linsolve

import (
	"fmt"

	"github.com/numkit/linsys/matrix"
)

const opAugment = "Augment"

// Augment builds the augmented matrix [A | b]: row i of the result is
// A's row i followed by b[i]. Neither input is mutated; the result is a
// freshly allocated Dense with Cols() == A.Cols()+1.
//
// Implementation:
//   - Stage 1: validate A non-nil and len(b) == A.Rows() before any arithmetic.
//   - Stage 2: allocate Dense(rows, cols+1) and copy row by row in fixed
//     i→j order, writing b[i] into the last column.
//
// Errors:
//   - matrix.ErrNilMatrix         (nil A or nil b).
//   - matrix.ErrDimensionMismatch (row count of A differs from len(b)).
//
// Complexity: Time O(r*c), Space O(r*(c+1)).
func Augment(a matrix.Matrix, b []float64) (*matrix.Dense, error) {
	// Validate A first so shape reads below are safe.
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, linsolveErrorf(opAugment, err)
	}
	// Row counts must match exactly; checked before any allocation.
	if err := matrix.ValidateVecLen(b, a.Rows()); err != nil {
		return nil, linsolveErrorf(opAugment, err)
	}

	rows, cols := a.Rows(), a.Cols()
	aug, err := matrix.NewDense(rows, cols+1)
	if err != nil {
		return nil, linsolveErrorf(opAugment, err)
	}

	// Copy coefficients and append the right-hand side per row.
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = a.At(i, j)
			if err != nil {
				return nil, linsolveErrorf(opAugment, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = aug.Set(i, j, v); err != nil {
				return nil, linsolveErrorf(opAugment, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
		// Last column carries b[i].
		if err = aug.Set(i, cols, b[i]); err != nil {
			return nil, linsolveErrorf(opAugment, fmt.Errorf("Set(%d,%d): %w", i, cols, err))
		}
	}

	return aug, nil
}
