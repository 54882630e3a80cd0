// SPDX-License-Identifier: MIT

// Package matrix: the bitwise operator family.
// Meaningful only for integer element types, which the constraints.Integer
// type parameter enforces at compile time — there is no runtime "is this a
// float" check anywhere in this file. Like the arithmetic family, every
// operator is a thin forwarding call into the generic apply* kernels.
//
// Shift semantics follow Go's own operators: shift counts are taken per
// element (or from the scalar), and a negative count panics exactly as the
// built-in << and >> do (programmer error, not a sentinel).
package matrix

import "golang.org/x/exp/constraints"

// Operation tags for the bitwise family (unified error wrapping).
const (
	opAnd = "And"
	opOr  = "Or"
	opXor = "Xor"
	opShl = "ShiftLeft"
	opShr = "ShiftRight"
	opNot = "Not"
)

// ---------- matrix ⊗ matrix (pointwise, identical shapes) ----------

// And computes C[i,j] = A[i,j] & B[i,j].
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func And[T constraints.Integer](a, b *Matrix[T]) (*Matrix[T], error) {
	return apply2(a, b, func(x, y T) T { return x & y }, opAnd)
}

// Or computes C[i,j] = A[i,j] | B[i,j].
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Or[T constraints.Integer](a, b *Matrix[T]) (*Matrix[T], error) {
	return apply2(a, b, func(x, y T) T { return x | y }, opOr)
}

// Xor computes C[i,j] = A[i,j] ^ B[i,j].
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Xor[T constraints.Integer](a, b *Matrix[T]) (*Matrix[T], error) {
	return apply2(a, b, func(x, y T) T { return x ^ y }, opXor)
}

// ShiftLeft computes C[i,j] = A[i,j] << B[i,j].
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func ShiftLeft[T constraints.Integer](a, b *Matrix[T]) (*Matrix[T], error) {
	return apply2(a, b, func(x, y T) T { return x << y }, opShl)
}

// ShiftRight computes C[i,j] = A[i,j] >> B[i,j].
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func ShiftRight[T constraints.Integer](a, b *Matrix[T]) (*Matrix[T], error) {
	return apply2(a, b, func(x, y T) T { return x >> y }, opShr)
}

// ---------- matrix ⊗ scalar (broadcast) ----------

// AndScalar computes C[i,j] = A[i,j] & s.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func AndScalar[T constraints.Integer](m *Matrix[T], s T) (*Matrix[T], error) {
	return apply2Scalar(m, s, func(x, y T) T { return x & y }, opAnd)
}

// OrScalar computes C[i,j] = A[i,j] | s.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func OrScalar[T constraints.Integer](m *Matrix[T], s T) (*Matrix[T], error) {
	return apply2Scalar(m, s, func(x, y T) T { return x | y }, opOr)
}

// XorScalar computes C[i,j] = A[i,j] ^ s.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func XorScalar[T constraints.Integer](m *Matrix[T], s T) (*Matrix[T], error) {
	return apply2Scalar(m, s, func(x, y T) T { return x ^ y }, opXor)
}

// ShiftLeftScalar computes C[i,j] = A[i,j] << s.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func ShiftLeftScalar[T constraints.Integer](m *Matrix[T], s T) (*Matrix[T], error) {
	return apply2Scalar(m, s, func(x, y T) T { return x << y }, opShl)
}

// ShiftRightScalar computes C[i,j] = A[i,j] >> s.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func ShiftRightScalar[T constraints.Integer](m *Matrix[T], s T) (*Matrix[T], error) {
	return apply2Scalar(m, s, func(x, y T) T { return x >> y }, opShr)
}

// ---------- in-place (dst mutated; rhs never touched) ----------

// AndInPlace computes dst[i,j] &= rhs[i,j].
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c), no alloc.
func AndInPlace[T constraints.Integer](dst, rhs *Matrix[T]) error {
	return apply2InPlace(dst, rhs, func(x, y T) T { return x & y }, opAnd)
}

// OrInPlace computes dst[i,j] |= rhs[i,j].
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c), no alloc.
func OrInPlace[T constraints.Integer](dst, rhs *Matrix[T]) error {
	return apply2InPlace(dst, rhs, func(x, y T) T { return x | y }, opOr)
}

// XorInPlace computes dst[i,j] ^= rhs[i,j].
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c), no alloc.
func XorInPlace[T constraints.Integer](dst, rhs *Matrix[T]) error {
	return apply2InPlace(dst, rhs, func(x, y T) T { return x ^ y }, opXor)
}

// ShiftLeftInPlace computes dst[i,j] <<= rhs[i,j].
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c), no alloc.
func ShiftLeftInPlace[T constraints.Integer](dst, rhs *Matrix[T]) error {
	return apply2InPlace(dst, rhs, func(x, y T) T { return x << y }, opShl)
}

// ShiftRightInPlace computes dst[i,j] >>= rhs[i,j].
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c), no alloc.
func ShiftRightInPlace[T constraints.Integer](dst, rhs *Matrix[T]) error {
	return apply2InPlace(dst, rhs, func(x, y T) T { return x >> y }, opShr)
}

// AndScalarInPlace computes dst[i,j] &= s.
// Errors: ErrNilMatrix. Complexity: O(r*c), no alloc.
func AndScalarInPlace[T constraints.Integer](dst *Matrix[T], s T) error {
	return apply2ScalarInPlace(dst, s, func(x, y T) T { return x & y }, opAnd)
}

// OrScalarInPlace computes dst[i,j] |= s.
// Errors: ErrNilMatrix. Complexity: O(r*c), no alloc.
func OrScalarInPlace[T constraints.Integer](dst *Matrix[T], s T) error {
	return apply2ScalarInPlace(dst, s, func(x, y T) T { return x | y }, opOr)
}

// XorScalarInPlace computes dst[i,j] ^= s.
// Errors: ErrNilMatrix. Complexity: O(r*c), no alloc.
func XorScalarInPlace[T constraints.Integer](dst *Matrix[T], s T) error {
	return apply2ScalarInPlace(dst, s, func(x, y T) T { return x ^ y }, opXor)
}

// ShiftLeftScalarInPlace computes dst[i,j] <<= s.
// Errors: ErrNilMatrix. Complexity: O(r*c), no alloc.
func ShiftLeftScalarInPlace[T constraints.Integer](dst *Matrix[T], s T) error {
	return apply2ScalarInPlace(dst, s, func(x, y T) T { return x << y }, opShl)
}

// ShiftRightScalarInPlace computes dst[i,j] >>= s.
// Errors: ErrNilMatrix. Complexity: O(r*c), no alloc.
func ShiftRightScalarInPlace[T constraints.Integer](dst *Matrix[T], s T) error {
	return apply2ScalarInPlace(dst, s, func(x, y T) T { return x >> y }, opShr)
}

// ---------- unary ----------

// Not computes the bitwise complement C[i,j] = ^A[i,j].
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Not[T constraints.Integer](m *Matrix[T]) (*Matrix[T], error) {
	return apply1(m, func(x T) T { return ^x }, opNot)
}
