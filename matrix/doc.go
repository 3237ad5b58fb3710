// Package matrix provides the dense linear-algebra foundation for linsys.
//
// The matrix package provides:
//
//   - A minimal Matrix interface (Rows/Cols/At/Set/Clone) so kernels can
//     accept any implementation while fast-pathing the built-in Dense.
//   - Dense, a row-major float64 matrix backed by a single flat slice,
//     with bounds-checked accessors that return errors instead of panicking.
//   - Constructors for common shapes (NewDense, NewFromRows, NewZeros,
//     NewIdentity) and universal kernels (Add, Sub, Scale, Transpose,
//     Mul, MatVec).
//
// Dense storage is best for small or dense problems where O(r·c) memory
// is acceptable — which is exactly the regime of direct elimination.
//
// See linsolve for the Gauss–Jordan pipeline and decompose for the
// factorization kernels built on top of this package.
package matrix
