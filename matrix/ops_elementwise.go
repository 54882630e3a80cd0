// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* elementwise kernels (apply*) so the public
//     operator family never duplicates tight loops: one generic "apply a
//     binary elementwise operation" primitive, parameterized by the operator
//     function, drives every arithmetic and bitwise operator in the package.
//   - Keep all loops deterministic and cache-friendly over the flat store.
//
// Design:
//   - All apply* are UNEXPORTED (internal micro-kernels). Public operators
//     (ops_arithmetic.go, ops_bitwise.go) are thin forwarding calls.
//   - Validation happens here exactly once per call via central validators;
//     facades contribute only their operation tag.
//
// Determinism & Performance:
//   - Fixed flat loop order 0..n-1 over row-major storage.
//   - No hidden allocations beyond the output matrix; O(r*c) time and space.

package matrix

// apply2 computes out[k] = op(a[k], b[k]) over two same-shape matrices,
// returning a fresh result. Operands are never mutated.
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped with tag).
// Complexity: O(r*c) time and space.
func apply2[T Number](a, b *Matrix[T], op func(T, T) T, tag string) (*Matrix[T], error) {
	// Validate both operands are non-nil and have identical shapes.
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	out := newUnchecked[T](a.rows, a.cols)
	for idx := range a.data { // deterministic flat order 0..n-1
		out.data[idx] = op(a.data[idx], b.data[idx])
	}

	return out, nil
}

// apply2Scalar computes out[k] = op(m[k], s), broadcasting the scalar s to
// every cell. The scalar case is the only broadcast this package performs.
// Errors: ErrNilMatrix (wrapped with tag).
// Complexity: O(r*c) time and space.
func apply2Scalar[T Number](m *Matrix[T], s T, op func(T, T) T, tag string) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	out := newUnchecked[T](m.rows, m.cols)
	for idx := range m.data {
		out.data[idx] = op(m.data[idx], s)
	}

	return out, nil
}

// apply1 computes out[k] = op(m[k]) for a unary operator.
// Errors: ErrNilMatrix (wrapped with tag).
// Complexity: O(r*c) time and space.
func apply1[T Number](m *Matrix[T], op func(T) T, tag string) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	out := newUnchecked[T](m.rows, m.cols)
	for idx := range m.data {
		out.data[idx] = op(m.data[idx])
	}

	return out, nil
}

// apply2InPlace computes dst[k] = op(dst[k], rhs[k]), mutating only dst.
// Both element reads happen before the write, so dst may alias rhs (the same
// value on both sides) without corrupting the right-hand operand.
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped with tag).
// Complexity: O(r*c) time, O(1) space.
func apply2InPlace[T Number](dst, rhs *Matrix[T], op func(T, T) T, tag string) error {
	if err := ValidateBinarySameShape(dst, rhs); err != nil {
		return matrixErrorf(tag, err)
	}

	for idx := range dst.data {
		dst.data[idx] = op(dst.data[idx], rhs.data[idx])
	}

	return nil
}

// apply2ScalarInPlace computes dst[k] = op(dst[k], s), mutating only dst.
// Errors: ErrNilMatrix (wrapped with tag).
// Complexity: O(r*c) time, O(1) space.
func apply2ScalarInPlace[T Number](dst *Matrix[T], s T, op func(T, T) T, tag string) error {
	if err := ValidateNotNil(dst); err != nil {
		return matrixErrorf(tag, err)
	}

	for idx := range dst.data {
		dst.data[idx] = op(dst.data[idx], s)
	}

	return nil
}
