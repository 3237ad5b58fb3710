// Package linsys solves systems of linear equations Ax = b over dense
// real-valued matrices and ships the classic companion factorizations.
//
// 🚀 What is linsys?
//
//	A small, deterministic, zero-dependency library that brings together:
//		• Dense primitives: row-major float64 matrices behind a minimal interface
//		• Gauss–Jordan pipeline: [A|b] → REF → RREF → column classification
//		• Full solution sets: particular solution + null-space basis (x = p + Σ tₖ·nₖ)
//		• Decomposition peers: Gram–Schmidt QR, Cholesky, LU, cofactor determinant
//		• Elementary row-operation matrix builders for teaching and inspection
//
// ✨ Why choose linsys?
//
//   - Predictable – first-nonzero pivoting, fixed loop orders, reproducible output
//   - Rock-solid contracts – sentinel errors, fail-fast validation, no panics
//   - Pure Go – no cgo, no hidden deps
//   - Inspectable – every pipeline stage is independently callable
//
// Under the hood, everything is organized under three subpackages:
//
//	matrix/    — Matrix interface, Dense storage, validators & universal kernels
//	linsolve/  — augment, forward/backward elimination, classification, assembly
//	decompose/ — QR (Gram–Schmidt), Cholesky, LU, determinant, row-op builders
//
// Quick sketch of the solver pipeline:
//
//	[A | b] ──REF──▶ ──RREF──▶ pivot/free columns ──▶ x = p + t₁·n₁ + t₂·n₂ + …
//
// Note on numerics: the eliminator deliberately picks the FIRST nonzero
// entry of each row as the pivot, not the largest. That keeps the produced
// null-space basis canonical and reproducible, at the cost of numerical
// stability on ill-conditioned inputs. linsys is a structural solver, not
// a stability-hardened one.
//
//	go get github.com/numkit/linsys/linsolve
package linsys
