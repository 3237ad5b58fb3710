// SPDX-License-Identifier: MIT

package linsolve_test

import (
	"fmt"

	"github.com/numkit/linsys/linsolve"
	"github.com/numkit/linsys/matrix"
)

// ExampleSolve solves an underdetermined system with one free variable
// and prints its full parametric solution set.
func ExampleSolve() {
	a, err := matrix.NewFromRows([][]float64{
		{1, 1, 1},
		{2, 1, 1},
	})
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	sol, err := linsolve.Solve(a, []float64{3, 4})
	if err != nil {
		fmt.Println("solve:", err)
		return
	}

	fmt.Println(sol.Describe())
	fmt.Println("unique:", sol.Unique())
	fmt.Println("rank:", sol.Classification.Rank())
	// Output:
	// x = [1, 2, 0] + t1·[0, -1, 1]
	// unique: false
	// rank: 2
}

// ExampleSolve_unique shows the degenerate (and most common) case: a
// full-rank square system with an empty null-space basis.
func ExampleSolve_unique() {
	a, err := matrix.NewFromRows([][]float64{
		{2, 1},
		{1, 3},
	})
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	sol, err := linsolve.Solve(a, []float64{3, 5})
	if err != nil {
		fmt.Println("solve:", err)
		return
	}

	fmt.Println(sol.Describe())
	// Output:
	// x = [0.8, 1.4]
}
