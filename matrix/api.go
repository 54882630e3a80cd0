// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the
//     package.
//   - Avoid any logic duplication — each facade delegates to the canonical
//     implementation.
//   - Keep function names explicit and intention-revealing to improve
//     discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying
//     kernels; validation is performed in the kernels, facades only forward.

package matrix

import "golang.org/x/exp/constraints"

// ---------- Constructors & Utilities ----------

// Zeros returns a new zero-initialized rows×cols matrix.
// It is a thin alias of New with an intention-revealing name.
// Complexity: O(rows*cols) zeroing by the runtime.
func Zeros[T Number](rows, cols int) (*Matrix[T], error) {
	// Delegate directly to the strict constructor (single allocation).
	return New[T](rows, cols)
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Handy to preallocate staging buffers or accumulate into fresh containers.
// Errors: ErrNilMatrix. Complexity: O(rows*cols).
func ZerosLike[T Number](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	// Read the shape once and call New with the same dimensions.
	return New[T](m.rows, m.cols)
}

// IdentityLike returns I with dimension = Rows(m); requires a square input.
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square).
// Complexity: O(n^2).
func IdentityLike[T Number](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}
	// Ensure the input is square using the centralized validator.
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	// Construct the identity of matching dimension.
	return NewIdentity[T](m.rows)
}

// FilledLike returns a matrix with the same shape as m and every cell set
// to v.
// Errors: ErrNilMatrix. Complexity: O(rows*cols).
func FilledLike[T Number](m *Matrix[T], v T) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("FilledLike", err)
	}

	return NewFilled(m.rows, m.cols, v)
}

// ---------- Operator aliases (facades map 1:1 to kernels) ----------

// Sum is an alias for Add: elementwise a + b.
// Complexity: O(r*c).
func Sum[T Number](a, b *Matrix[T]) (*Matrix[T], error) { return Add(a, b) }

// Diff is an alias for Sub: elementwise a − b.
// Complexity: O(r*c).
func Diff[T Number](a, b *Matrix[T]) (*Matrix[T], error) { return Sub(a, b) }

// Product is an alias for Multiply: the matrix product a × b.
// Complexity: O(r*n*c).
func Product[T constraints.Float](a, b *Matrix[T]) (*Matrix[T], error) { return Multiply(a, b) }

// HadamardProd is an alias for Hadamard: elementwise product a ⊙ b.
// Complexity: O(r*c).
func HadamardProd[T Number](a, b *Matrix[T]) (*Matrix[T], error) { return Hadamard(a, b) }

// ScaleBy is an alias for Scale: elementwise s * m.
// Complexity: O(r*c).
func ScaleBy[T Number](m *Matrix[T], s T) (*Matrix[T], error) { return Scale(m, s) }
