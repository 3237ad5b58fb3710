// Package linsolve reduces augmented matrices [A | b] to reduced
// row-echelon form and assembles the complete solution set of Ax = b.
//
// 🚀 What does linsolve compute?
//
//	For any consistent system it returns the full affine description
//
//	    x = p + t₁·n₁ + t₂·n₂ + … ,  tₖ ∈ ℝ
//
//	where p is a particular solution (free variables set to zero) and
//	the nₖ form a basis of the null space, one vector per free variable.
//
// ✨ Pipeline (each stage independently callable):
//
//   - Augment            — build [A | b] from A and b
//   - ToRowEchelon       — forward elimination to REF
//   - ToReducedRowEchelon — backward elimination to RREF
//   - ClassifyColumns    — pivot vs. free column partition (rank)
//   - CheckConsistent    — detect 0 = c rows (no solution)
//   - Assemble           — particular solution + null-space basis
//   - Solve              — the composed pipeline
//
// ⚙️ Usage:
//
//	A, _ := matrix.NewFromRows([][]float64{{1, 1, 1}, {2, 1, 1}})
//	sol, err := linsolve.Solve(A, []float64{3, 4})
//	if err != nil { ... }
//	fmt.Println(sol.Describe()) // x = p + t1·n1
//
// Pivoting policy: the eliminator picks the FIRST nonzero entry of each
// row, never the largest-magnitude entry. This is a structural contract —
// it fixes which null-space basis is produced — and is NOT numerically
// stable on ill-conditioned matrices. Rows are never reordered; all-zero
// rows (dependent equations) stay where they are.
//
// Every stage is a pure function: inputs are cloned before elimination,
// so concurrent Solve calls over the same matrices never interfere.
//
// Performance:
//
//   - Time:   O(rows²·cols) per elimination pass
//   - Memory: O(rows·cols) for the working copy
package linsolve
