// SPDX-License-Identifier: MIT
// Package linsolve_test: solution assembly and rendering tests.

package linsolve_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/numkit/linsys/linsolve"
	"github.com/numkit/linsys/matrix"
)

func TestAssemble_ParticularAndBasis(t *testing.T) {
	t.Parallel()

	// RREF of A=[[1,1,1],[2,1,1]], b=[3,4]: pivot cols {0,1}, free {2}.
	rref := mustFromRows(t, [][]float64{
		{1, 0, 0, 1},
		{0, 1, 1, 2},
	})
	cls, err := linsolve.ClassifyColumns(rref)
	require.NoError(t, err)

	sol, err := linsolve.Assemble(rref, cls)
	require.NoError(t, err)

	require.Equal(t, []float64{1, 2, 0}, sol.Particular)
	require.Len(t, sol.Basis, 1)
	require.Equal(t, []float64{0, -1, 1}, sol.Basis[0])
	require.False(t, sol.Unique())
	require.Equal(t, cls, sol.Classification)
}

func TestAssemble_UniqueSolution(t *testing.T) {
	t.Parallel()

	rref := mustFromRows(t, [][]float64{
		{1, 0, 0.8},
		{0, 1, 1.4},
	})
	cls, err := linsolve.ClassifyColumns(rref)
	require.NoError(t, err)

	sol, err := linsolve.Assemble(rref, cls)
	require.NoError(t, err)

	require.True(t, sol.Unique())
	require.Empty(t, sol.Basis)
	require.InDelta(t, 0.8, sol.Particular[0], tol)
	require.InDelta(t, 1.4, sol.Particular[1], tol)
}

func TestAssemble_FreeVariablesPinnedToZero(t *testing.T) {
	t.Parallel()

	// Two free columns; the particular solution keeps both at zero.
	rref := mustFromRows(t, [][]float64{
		{1, 2, 0, 3, 5},
		{0, 0, 1, 4, 6},
	})
	cls, err := linsolve.ClassifyColumns(rref)
	require.NoError(t, err)
	require.Equal(t, []int{1, 3}, cls.FreeColumns)

	sol, err := linsolve.Assemble(rref, cls)
	require.NoError(t, err)

	require.Equal(t, []float64{5, 0, 6, 0}, sol.Particular)
	require.Len(t, sol.Basis, 2)
	require.Equal(t, []float64{-2, 1, 0, 0}, sol.Basis[0])
	require.Equal(t, []float64{-3, 0, -4, 1}, sol.Basis[1])
}

func TestAssemble_ZeroRowsInterleaved(t *testing.T) {
	t.Parallel()

	// The pivot of column 0 lives in row 1; row 0 is all-zero. Assembly
	// must read the RHS from the owning row, not the pivot ordinal.
	rref := mustFromRows(t, [][]float64{
		{0, 0, 0},
		{1, 2, 3},
	})
	cls, err := linsolve.ClassifyColumns(rref)
	require.NoError(t, err)

	sol, err := linsolve.Assemble(rref, cls)
	require.NoError(t, err)

	require.Equal(t, []float64{3, 0}, sol.Particular)
	require.Len(t, sol.Basis, 1)
	require.Equal(t, []float64{-2, 1}, sol.Basis[0])
}

func TestAssemble_NoNegativeZeroInBasis(t *testing.T) {
	t.Parallel()

	// Pivot rows carry an explicit +0 coefficient on the free column:
	// negating it naively would print "-0" in renderings.
	rref := mustFromRows(t, [][]float64{
		{1, 0, 0, 1},
		{0, 1, 1, 2},
	})
	cls, err := linsolve.ClassifyColumns(rref)
	require.NoError(t, err)
	sol, err := linsolve.Assemble(rref, cls)
	require.NoError(t, err)

	for k, vec := range sol.Basis {
		for i, v := range vec {
			if v == 0 {
				require.False(t, math.Signbit(v), "basis[%d][%d] is -0", k, i)
			}
		}
	}
}

func TestAssemble_ShapeErrors(t *testing.T) {
	t.Parallel()

	rref := mustFromRows(t, [][]float64{{1, 0, 1}, {0, 1, 2}})
	good, err := linsolve.ClassifyColumns(rref)
	require.NoError(t, err)

	_, err = linsolve.Assemble(nil, good)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	// Classification built for a different width.
	bad := good
	bad.Cols = 5
	_, err = linsolve.Assemble(rref, bad)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	// Pivot bookkeeping out of sync.
	bad = good
	bad.PivotRows = bad.PivotRows[:1]
	_, err = linsolve.Assemble(rref, bad)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestAssemble_ColumnIndexOutOfRange(t *testing.T) {
	t.Parallel()

	// Hand-built classifications with indices past (or before) the
	// coefficient range must be rejected, not written through.
	rref := mustFromRows(t, [][]float64{{1, 0, 1}, {0, 1, 2}})

	_, err := linsolve.Assemble(rref, linsolve.ColumnClassification{
		PivotColumns: []int{5},
		PivotRows:    []int{0},
		FreeColumns:  []int{1},
		Cols:         2,
	})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = linsolve.Assemble(rref, linsolve.ColumnClassification{
		PivotColumns: []int{0},
		PivotRows:    []int{0},
		FreeColumns:  []int{-1},
		Cols:         2,
	})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestSolutionSet_Describe(t *testing.T) {
	t.Parallel()

	rref := mustFromRows(t, [][]float64{
		{1, 0, 0, 1},
		{0, 1, 1, 2},
	})
	cls, err := linsolve.ClassifyColumns(rref)
	require.NoError(t, err)
	sol, err := linsolve.Assemble(rref, cls)
	require.NoError(t, err)

	require.Equal(t, "x = [1, 2, 0] + t1·[0, -1, 1]", sol.Describe())
}

func TestSolutionSet_DescribeUnique(t *testing.T) {
	t.Parallel()

	sol := &linsolve.SolutionSet{Particular: []float64{0.8, 1.4}}
	require.Equal(t, "x = [0.8, 1.4]", sol.Describe())
}
