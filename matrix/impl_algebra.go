// SPDX-License-Identifier: MIT

// Package matrix: shape-changing and compositional algebra.
// These operations need knowledge of the two-dimensional structure and are
// defined for float element types only (constraints.Float), mirroring the
// arithmetic they perform. All functions validate fail-fast through the
// central validators, never mutate their inputs, and return fresh values.
package matrix

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Operation tags for the algebra surface (unified error wrapping).
const (
	opReshape   = "Reshape"
	opTranspose = "Transpose"
	opMultiply  = "Multiply"
	opMatVec    = "MatVec"
	opAllClose  = "AllClose"
)

// zeroSum is the additive identity seeding every accumulation below.
const zeroSum = 0.0

// Reshape reinterprets m's row-major element sequence under a new shape.
// No arithmetic is performed and element order is preserved: the result's
// AtFlat(k) equals m's AtFlat(k) for every k. The element type never changes;
// cross-type reinterpretation is deliberately not offered.
//
// Inputs:
//   - m          : non-nil source matrix (r×c).
//   - rows, cols : target shape with rows*cols == r*c.
//
// Returns:
//   - *Matrix[T]: a fresh rows×cols matrix over a copied element sequence.
//
// Errors:
//   - ErrNilMatrix         (nil input).
//   - ErrBadShape          (non-positive target dimensions).
//   - ErrDimensionMismatch (total element count differs).
//
// Complexity: O(r*c) time and space (one flat copy).
func Reshape[T constraints.Float](m *Matrix[T], rows, cols int) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opReshape, err)
	}
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf(opReshape, err)
	}
	// The relabeling is only defined over an identical total element count.
	if rows*cols != m.rows*m.cols {
		return nil, matrixErrorf(opReshape, ErrDimensionMismatch)
	}

	out := newUnchecked[T](rows, cols)
	copy(out.data, m.data) // pure relabeling: same linear sequence, new shape

	return out, nil
}

// Transpose returns a new cols×rows matrix with out(j, i) = m(i, j) for all
// valid (i, j). Always succeeds on a non-nil input; the original is never
// mutated.
//
// Determinism: fixed i→j traversal with flat indexing on both sides.
// Errors: ErrNilMatrix.
// Complexity: O(r*c) time and space.
func Transpose[T constraints.Float](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.rows, m.cols
	out := newUnchecked[T](cols, rows) // dims flipped
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols // row base offset in the source
		for j = 0; j < cols; j++ {
			// data[i*cols + j] → out.data[j*rows + i]
			out.data[j*rows+i] = m.data[baseSrc+j]
		}
	}

	return out, nil
}

// Multiply performs the standard matrix product C = A × B.
// Output cell (i, j) is the sum over k of A(i,k)*B(k,j), accumulated in T's
// arithmetic from T's additive identity. Non-square operands are fully
// supported; the only requirement is the inner dimension A.Cols() == B.Rows().
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); allocate C (aRows × bCols).
//   - Stage 2: i→k→j loop with row-major strides; zero A[i,k] entries are
//     skipped to avoid useless multiplies.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (inner mismatch).
// Determinism: fixed i→k→j order; results stable across runs.
// IEEE note: the zero-skip means a zero A[i,k] contributes exactly 0 even
// when B[k,j] is NaN or ±Inf — 0×NaN terms are dropped, not propagated.
// Complexity: O(r*n*c) time, O(r*c) space.
func Multiply[T constraints.Float](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}

	aRows, aCols, bCols := a.rows, a.cols, b.cols
	res := newUnchecked[T](aRows, bCols) // zero-initialized accumulator
	var (
		i, j, k                            int
		av                                 T
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	// a.data layout: i*aCols + k; b.data layout: k*bCols + j.
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			if av == zeroSum {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// MatVec computes y = m · x for a column vector x given as a plain slice.
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order; zero x[j] entries are skipped.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c) time, O(r) space for y.
func MatVec[T constraints.Float](m *Matrix[T], x []T) ([]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.cols); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]T, m.rows) // allocate exactly rows outputs
	var (
		i, j, base int
		acc, xv    T
	)
	for i = 0; i < m.rows; i++ { // iterate rows deterministically
		acc = zeroSum             // reset accumulator per row
		base = i * m.cols         // flat base offset for row i
		for j = 0; j < m.cols; j++ {
			xv = x[j]
			if xv != zeroSum { // skip zero multiplications
				acc += m.data[base+j] * xv
			}
		}
		y[i] = acc
	}

	return y, nil
}

// AllClose checks elementwise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true, nil) if every element satisfies the relation, (false, nil)
// otherwise. Negative tolerances are normalized to their absolute values;
// NaN/±Inf tolerances are rejected.
//
// Errors: ErrNaNInf (invalid tolerance), ErrNilMatrix, ErrDimensionMismatch.
// Determinism: flat 0..n-1 scan with early exit on the first violation.
// Complexity: O(r*c) time, O(1) space.
func AllClose[T constraints.Float](a, b *Matrix[T], rtol, atol float64) (bool, error) {
	// Validate tolerances first: a NaN threshold makes every comparison false.
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	if rtol < 0 {
		rtol = -rtol
	}
	if atol < 0 {
		atol = -atol
	}
	// Validate presence and shape equality using the central validator.
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	var diff, absb float64
	for idx := range a.data {
		diff = math.Abs(float64(a.data[idx]) - float64(b.data[idx])) // |a-b|
		absb = math.Abs(float64(b.data[idx]))                        // |b|
		if diff > atol+rtol*absb {
			return false, nil // early-exit on first violation
		}
	}

	return true, nil
}
