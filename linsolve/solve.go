// SPDX-License-Identifier: MIT

package linsolve

import "github.com/numkit/linsys/matrix"

const opSolve = "Solve"

// Solve runs the full pipeline on A and b:
//
//	Augment → ToRowEchelon → ToReducedRowEchelon → CheckConsistent →
//	ClassifyColumns → Assemble
//
// and returns the complete solution set of Ax = b. Neither A nor b is
// mutated — Augment materializes a fresh augmented matrix and both
// elimination passes work on clones — so concurrent Solve calls over the
// same inputs are safe and idempotent.
//
// Errors (all terminal; no partial result is ever returned):
//   - matrix.ErrNilMatrix / matrix.ErrDimensionMismatch — malformed inputs,
//     detected before any arithmetic.
//   - ErrSingularPivot      — elimination met an exact zero pivot.
//   - ErrInconsistentSystem — an RREF row reads 0 = c with c ≠ 0; reported
//     instead of a numerically meaningless "particular solution".
//
// Complexity: Time O(rows²·cols), Space O(rows·cols).
func Solve(a matrix.Matrix, b []float64) (*SolutionSet, error) {
	// Build [A | b]; validates shapes before any arithmetic.
	aug, err := Augment(a, b)
	if err != nil {
		return nil, linsolveErrorf(opSolve, err)
	}

	// Forward elimination to REF.
	ref, err := ToRowEchelon(aug)
	if err != nil {
		return nil, linsolveErrorf(opSolve, err)
	}

	// Backward elimination to RREF.
	rref, err := ToReducedRowEchelon(ref)
	if err != nil {
		return nil, linsolveErrorf(opSolve, err)
	}

	// Refuse to assemble a "solution" for an unsolvable system.
	if err = CheckConsistent(rref); err != nil {
		return nil, linsolveErrorf(opSolve, err)
	}

	// Pivot/free partition, then the affine solution description.
	cls, err := ClassifyColumns(rref)
	if err != nil {
		return nil, linsolveErrorf(opSolve, err)
	}
	sol, err := Assemble(rref, cls)
	if err != nil {
		return nil, linsolveErrorf(opSolve, err)
	}

	return sol, nil
}
