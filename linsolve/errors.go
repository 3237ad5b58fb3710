// SPDX-License-Identifier: MIT
// Package linsolve: sentinel error set.
// All pipeline stages return these sentinels (or matrix.* sentinels from
// shape validation) and tests check them via errors.Is. Every error is
// terminal for the Solve call that produced it — no partial results.

package linsolve

import (
	"errors"
	"fmt"
)

var (
	// ErrSingularPivot is returned when elimination would divide by an exact
	// zero pivot. The pivot scan only selects nonzero entries, so this guards
	// the division itself rather than re-checking a sentinel that can never
	// match — the "no pivot found" path (a dependent row) is handled by
	// skipping the row, not by this error.
	ErrSingularPivot = errors.New("linsolve: singular pivot")

	// ErrInconsistentSystem is returned when an RREF row has all-zero
	// coefficients but a nonzero augmented entry (0 = c with c ≠ 0),
	// i.e. the system has no solution.
	ErrInconsistentSystem = errors.New("linsolve: inconsistent system")
)

// Dimension and nil-argument violations are reported with the matrix
// package sentinels (matrix.ErrDimensionMismatch, matrix.ErrNilMatrix),
// wrapped with the operation tag below; errors.Is still matches them.

// linsolveErrorf wraps err with an operation tag, preserving the original
// error via %w. Use only when err != nil.
func linsolveErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
