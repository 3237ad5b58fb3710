// SPDX-License-Identifier: MIT
// Package decompose: sentinel error set. Shape/nil violations are reported
// with the matrix package sentinels; the errors below are the kernels'
// own mathematical preconditions.

package decompose

import (
	"errors"
	"fmt"
)

var (
	// ErrNotSymmetric signals that a kernel requiring A == Aᵀ (within
	// SymmetryTol) observed an asymmetric input.
	ErrNotSymmetric = errors.New("decompose: matrix is not symmetric")

	// ErrNotPositiveDefinite signals that a Cholesky/LU precondition
	// failed: a (would-be) pivot was zero or negative, so the matrix is
	// not positive-definite.
	ErrNotPositiveDefinite = errors.New("decompose: matrix is not positive-definite")

	// ErrDependentColumns signals that Gram–Schmidt met a column lying
	// (within DependenceTol) in the span of its predecessors, so no QR
	// with orthonormal columns exists.
	ErrDependentColumns = errors.New("decompose: linearly dependent columns")
)

// SymmetryTol bounds |A[i,j]-A[j,i]| for inputs accepted as symmetric.
const SymmetryTol = 1e-9

// DependenceTol is the residual-norm threshold below which a Gram–Schmidt
// column is considered linearly dependent on its predecessors.
const DependenceTol = 1e-12

// decomposeErrorf wraps err with an operation tag, preserving the original
// error via %w. Use only when err != nil.
func decomposeErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
