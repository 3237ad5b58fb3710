// SPDX-License-Identifier: MIT
// Package linsolve: solution assembly — turning RREF + column
// classification into a particular solution and a null-space basis.

package linsolve

import (
	"fmt"
	"strings"

	"github.com/numkit/linsys/matrix"
)

const opAssemble = "Assemble"

// SolutionSet is the complete affine description of the solutions of
// Ax = b:
//
//	x = Particular + Σₖ tₖ·Basis[k],  tₖ ∈ ℝ
//
// Particular has the free variables set to zero; Basis holds one
// null-space vector per free column, in the free columns' ascending
// order. An empty Basis means the solution is unique.
//
// Invariants (for the RREF the set was assembled from): A·Particular ≈ b
// when the system is consistent, and A·Basis[k] ≈ 0 for every k.
type SolutionSet struct {
	// Particular is a single solution of Ax = b, length == Classification.Cols.
	Particular []float64
	// Basis spans the null space of A; Basis[k] corresponds to free
	// column Classification.FreeColumns[k]. Each vector has the same
	// length as Particular.
	Basis [][]float64
	// Classification records the pivot/free partition the set was built
	// from, so renderings and diagnostics need no other input.
	Classification ColumnClassification
}

// Unique reports whether the system has exactly one solution
// (no free variables, hence an empty null-space basis).
// Complexity: O(1).
func (s *SolutionSet) Unique() bool { return len(s.Basis) == 0 }

// Assemble combines an RREF augmented matrix with its column
// classification into a SolutionSet.
//
// Implementation:
//   - Stage 1: validate shapes (cls must describe exactly rref's
//     coefficient columns).
//   - Stage 2: particular solution — zero vector with
//     particular[PivotColumns[k]] = rref[PivotRows[k]][rhs]; free entries
//     stay 0 (the "free variables at zero" convention).
//   - Stage 3: null-space basis — for free column f: vector with 1 at f
//     and -rref[PivotRows[k]][f] at each PivotColumns[k]. This is the
//     standard RREF read-off: pivot variable = -(coefficient on the free
//     variable) once the free variable is set to 1.
//
// Errors:
//   - matrix.ErrNilMatrix         (nil rref).
//   - matrix.ErrDimensionMismatch (classification does not match rref's
//     shape, or pivot bookkeeping is inconsistent).
//
// Complexity: Time O(rank·(1+free)), Space O(cols·(1+free)).
func Assemble(rref matrix.Matrix, cls ColumnClassification) (*SolutionSet, error) {
	if err := matrix.ValidateNotNil(rref); err != nil {
		return nil, linsolveErrorf(opAssemble, err)
	}
	// The classification must have been produced for this matrix shape.
	if cls.Cols != rref.Cols()-1 || len(cls.PivotColumns) != len(cls.PivotRows) {
		return nil, linsolveErrorf(opAssemble, matrix.ErrDimensionMismatch)
	}
	if len(cls.PivotColumns) > rref.Rows() {
		return nil, linsolveErrorf(opAssemble, matrix.ErrDimensionMismatch)
	}
	// Every recorded column index must address a coefficient column; the
	// vectors below are indexed by them, so out-of-range bookkeeping is a
	// validation error, not a panic.
	for _, c := range cls.PivotColumns {
		if c < 0 || c >= cls.Cols {
			return nil, linsolveErrorf(opAssemble, fmt.Errorf("pivot column %d of %d: %w", c, cls.Cols, matrix.ErrDimensionMismatch))
		}
	}
	for _, c := range cls.FreeColumns {
		if c < 0 || c >= cls.Cols {
			return nil, linsolveErrorf(opAssemble, fmt.Errorf("free column %d of %d: %w", c, cls.Cols, matrix.ErrDimensionMismatch))
		}
	}

	rhs := cls.Cols // index of the augmented column
	var (
		k, row, col int
		v           float64
		err         error
	)

	// Stage 2: particular solution, free variables pinned to zero.
	particular := make([]float64, cls.Cols)
	for k = 0; k < len(cls.PivotColumns); k++ {
		row, col = cls.PivotRows[k], cls.PivotColumns[k]
		v, err = rref.At(row, rhs)
		if err != nil {
			return nil, linsolveErrorf(opAssemble, fmt.Errorf("At(%d,%d): %w", row, rhs, err))
		}
		particular[col] = v
	}

	// Stage 3: one basis vector per free column, ascending free order.
	basis := make([][]float64, 0, len(cls.FreeColumns))
	var free int
	var vec []float64
	for _, free = range cls.FreeColumns {
		vec = make([]float64, cls.Cols)
		vec[free] = 1 // the free variable itself is active
		for k = 0; k < len(cls.PivotColumns); k++ {
			row, col = cls.PivotRows[k], cls.PivotColumns[k]
			v, err = rref.At(row, free)
			if err != nil {
				return nil, linsolveErrorf(opAssemble, fmt.Errorf("At(%d,%d): %w", row, free, err))
			}
			if v != 0 { // keep +0 instead of IEEE -0 for untouched entries
				vec[col] = -v
			}
		}
		basis = append(basis, vec)
	}

	return &SolutionSet{Particular: particular, Basis: basis, Classification: cls}, nil
}

// Describe renders the solution set as a parametric expression, e.g.
//
//	x = [1, 2, 0] + t1·[0, -1, 1]
//
// with one parameter tₖ per free variable in ascending free-column
// order. The rendering is derived from the structured fields only, so
// callers can produce their own formats from the same data.
// Complexity: O(cols·(1+free)).
func (s *SolutionSet) Describe() string {
	var sb strings.Builder
	sb.WriteString("x = ")
	writeVec(&sb, s.Particular)
	for k, vec := range s.Basis {
		fmt.Fprintf(&sb, " + t%d·", k+1)
		writeVec(&sb, vec)
	}

	return sb.String()
}

// writeVec appends "[v0, v1, …]" to sb using %g formatting.
func writeVec(sb *strings.Builder, v []float64) {
	sb.WriteByte('[')
	for i, x := range v {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(sb, "%g", x)
	}
	sb.WriteByte(']')
}
