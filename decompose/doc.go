// Package decompose provides the classic matrix factorizations that
// accompany the linsolve pipeline, sharing its dense data model and
// pure-function contracts.
//
// ✨ Kernels:
//
//   - QR                  — Gram–Schmidt orthogonalization: A = Q·R with
//     orthonormal columns in Q and upper-triangular R
//   - LinearlyIndependent — column independence test derived from the
//     Gram–Schmidt residual norms
//   - Cholesky            — A = L·Lᵀ for symmetric positive-definite A
//   - LU                  — A = L·U (unit lower / upper triangular) for
//     symmetric positive-definite A
//   - Determinant         — cofactor (Laplace) expansion along the first row
//   - ScaleRowMatrix, AddMultipleMatrix, SwapRowsMatrix — elementary
//     row-operation matrices: left-multiplying by them performs the
//     corresponding row operation (illustration helpers, not used by the
//     solver itself)
//
// All kernels are deterministic (fixed loop orders, no pivoting), never
// mutate their inputs, and report failures through sentinel errors
// matched with errors.Is.
//
// ⚠️ Determinant is exponential (O(n!)); it exists for its didactic
// cofactor structure, not for large inputs — use an LU-based product of
// pivots when n grows.
package decompose
