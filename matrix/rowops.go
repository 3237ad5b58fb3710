// SPDX-License-Identifier: MIT
// Package matrix: in-place elementary row operations on Dense.
//
// These are the three classic operations of Gaussian elimination. They are
// methods on *Dense (not kernels over the Matrix interface) because they
// mutate the receiver in place — pipelines that need purity clone first
// and operate on the working copy, which keeps the flat-slice hot loops.

package matrix

// SwapRows exchanges rows i and j in place.
// Determinism: single pass over 2·c elements.
// Errors: ErrOutOfRange when either index is invalid.
// Complexity: O(c).
func (m *Dense) SwapRows(i, j int) error {
	// Validate both row indices against the row range.
	if i < 0 || i >= m.r {
		return denseErrorf("SwapRows", i, 0, ErrOutOfRange)
	}
	if j < 0 || j >= m.r {
		return denseErrorf("SwapRows", j, 0, ErrOutOfRange)
	}
	if i == j {
		return nil // nothing to do
	}
	// Swap element-wise inside the flat backing slice.
	baseI, baseJ := i*m.c, j*m.c
	for k := 0; k < m.c; k++ {
		m.data[baseI+k], m.data[baseJ+k] = m.data[baseJ+k], m.data[baseI+k]
	}

	return nil
}

// ScaleRow multiplies every entry of row i by alpha, in place.
// Errors: ErrOutOfRange when the index is invalid.
// Complexity: O(c).
func (m *Dense) ScaleRow(i int, alpha float64) error {
	if i < 0 || i >= m.r {
		return denseErrorf("ScaleRow", i, 0, ErrOutOfRange)
	}
	base := i * m.c
	for k := 0; k < m.c; k++ {
		m.data[base+k] *= alpha
	}

	return nil
}

// DivRow divides every entry of row i by divisor, in place.
//
// This is NOT redundant with ScaleRow(i, 1/divisor): dividing each entry
// keeps pivot/pivot == 1 exact in floating point, which elimination relies
// on for its "pivot becomes exactly 1" guarantee.
//
// Contract: divisor != 0 (callers check before dividing; a zero divisor is
// a programmer error upstream, so no dedicated sentinel exists here).
// Errors: ErrOutOfRange when the index is invalid.
// Complexity: O(c).
func (m *Dense) DivRow(i int, divisor float64) error {
	if i < 0 || i >= m.r {
		return denseErrorf("DivRow", i, 0, ErrOutOfRange)
	}
	base := i * m.c
	for k := 0; k < m.c; k++ {
		m.data[base+k] /= divisor
	}

	return nil
}

// AddScaledRow adds alpha times row src to row dst, in place:
//
//	row[dst] ← row[dst] + alpha·row[src]
//
// Determinism: fixed left-to-right column order.
// Errors: ErrOutOfRange when either index is invalid.
// Complexity: O(c).
func (m *Dense) AddScaledRow(dst, src int, alpha float64) error {
	if dst < 0 || dst >= m.r {
		return denseErrorf("AddScaledRow", dst, 0, ErrOutOfRange)
	}
	if src < 0 || src >= m.r {
		return denseErrorf("AddScaledRow", src, 0, ErrOutOfRange)
	}
	baseDst, baseSrc := dst*m.c, src*m.c
	for k := 0; k < m.c; k++ {
		m.data[baseDst+k] += alpha * m.data[baseSrc+k]
	}

	return nil
}
