// SPDX-License-Identifier: MIT

// Package matrix: the arithmetic operator family.
// Every operator comes in three flavors — matrix⊗matrix (identical shapes
// required), matrix⊗scalar (scalar broadcast to every cell) and in-place
// (dst mutated, rhs untouched). All of them are thin forwarding calls into
// the generic apply* kernels (ops_elementwise.go); no loop is duplicated.
//
// Numeric semantics follow Go's own operators for the element type:
//   - integer Div/Rem truncate toward zero; a zero divisor element panics
//     exactly as the built-in operators do (programmer error, not a sentinel);
//   - float Div yields ±Inf/NaN per IEEE-754; float Rem is math.Mod.
package matrix

import "math"

// Operation tags for the arithmetic family (unified error wrapping).
const (
	opAdd      = "Add"
	opSub      = "Sub"
	opHadamard = "Hadamard"
	opDiv      = "Div"
	opRem      = "Rem"
	opScale    = "Scale"
	opNeg      = "Neg"
)

// remOf is the elementwise remainder: Go's % for integer kinds, math.Mod for
// float kinds (x - trunc(x/y)*y, sign of x). Kind detection must not rely on
// the dynamic type: Number admits named types (~float64 etc.), so the float
// path is chosen by whether T's division truncates: 1/2 is 0 for every
// integer kind and nonzero for every float kind.
func remOf[T Number](x, y T) T {
	var one, two T = 1, 2
	if one/two != 0 { // float kind: division does not truncate
		// math.Mod over the float64 embedding is exact for both float widths.
		return T(math.Mod(float64(x), float64(y)))
	}
	// Integer kinds only from here: x/y truncates toward zero, so
	// x - (x/y)*y is exactly the built-in % result.
	q := x / y

	return x - q*y
}

// ---------- matrix ⊗ matrix (pointwise, identical shapes) ----------

// Add computes the elementwise sum C[i,j] = A[i,j] + B[i,j].
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Add[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	return apply2(a, b, func(x, y T) T { return x + y }, opAdd)
}

// Sub computes the elementwise difference C[i,j] = A[i,j] - B[i,j].
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Sub[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	return apply2(a, b, func(x, y T) T { return x - y }, opSub)
}

// Hadamard computes the elementwise product C[i,j] = A[i,j] * B[i,j].
// This is NOT the matrix product; use Multiply for A × B.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Hadamard[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	return apply2(a, b, func(x, y T) T { return x * y }, opHadamard)
}

// Div computes the elementwise quotient C[i,j] = A[i,j] / B[i,j].
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Div[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	return apply2(a, b, func(x, y T) T { return x / y }, opDiv)
}

// Rem computes the elementwise remainder C[i,j] = A[i,j] rem B[i,j]
// (see remOf for the per-kind semantics).
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Rem[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	return apply2(a, b, remOf[T], opRem)
}

// ---------- matrix ⊗ scalar (broadcast) ----------

// AddScalar computes C[i,j] = A[i,j] + s.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func AddScalar[T Number](m *Matrix[T], s T) (*Matrix[T], error) {
	return apply2Scalar(m, s, func(x, y T) T { return x + y }, opAdd)
}

// SubScalar computes C[i,j] = A[i,j] - s.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func SubScalar[T Number](m *Matrix[T], s T) (*Matrix[T], error) {
	return apply2Scalar(m, s, func(x, y T) T { return x - y }, opSub)
}

// Scale computes C[i,j] = A[i,j] * s (scalar multiplication).
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Scale[T Number](m *Matrix[T], s T) (*Matrix[T], error) {
	return apply2Scalar(m, s, func(x, y T) T { return x * y }, opScale)
}

// DivScalar computes C[i,j] = A[i,j] / s.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func DivScalar[T Number](m *Matrix[T], s T) (*Matrix[T], error) {
	return apply2Scalar(m, s, func(x, y T) T { return x / y }, opDiv)
}

// RemScalar computes C[i,j] = A[i,j] rem s.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func RemScalar[T Number](m *Matrix[T], s T) (*Matrix[T], error) {
	return apply2Scalar(m, s, remOf[T], opRem)
}

// ---------- in-place (dst mutated; rhs never touched) ----------

// AddInPlace computes dst[i,j] += rhs[i,j].
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c), no alloc.
func AddInPlace[T Number](dst, rhs *Matrix[T]) error {
	return apply2InPlace(dst, rhs, func(x, y T) T { return x + y }, opAdd)
}

// SubInPlace computes dst[i,j] -= rhs[i,j].
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c), no alloc.
func SubInPlace[T Number](dst, rhs *Matrix[T]) error {
	return apply2InPlace(dst, rhs, func(x, y T) T { return x - y }, opSub)
}

// HadamardInPlace computes dst[i,j] *= rhs[i,j].
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c), no alloc.
func HadamardInPlace[T Number](dst, rhs *Matrix[T]) error {
	return apply2InPlace(dst, rhs, func(x, y T) T { return x * y }, opHadamard)
}

// DivInPlace computes dst[i,j] /= rhs[i,j].
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c), no alloc.
func DivInPlace[T Number](dst, rhs *Matrix[T]) error {
	return apply2InPlace(dst, rhs, func(x, y T) T { return x / y }, opDiv)
}

// RemInPlace computes dst[i,j] = dst[i,j] rem rhs[i,j].
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c), no alloc.
func RemInPlace[T Number](dst, rhs *Matrix[T]) error {
	return apply2InPlace(dst, rhs, remOf[T], opRem)
}

// AddScalarInPlace computes dst[i,j] += s.
// Errors: ErrNilMatrix. Complexity: O(r*c), no alloc.
func AddScalarInPlace[T Number](dst *Matrix[T], s T) error {
	return apply2ScalarInPlace(dst, s, func(x, y T) T { return x + y }, opAdd)
}

// SubScalarInPlace computes dst[i,j] -= s.
// Errors: ErrNilMatrix. Complexity: O(r*c), no alloc.
func SubScalarInPlace[T Number](dst *Matrix[T], s T) error {
	return apply2ScalarInPlace(dst, s, func(x, y T) T { return x - y }, opSub)
}

// ScaleInPlace computes dst[i,j] *= s.
// Errors: ErrNilMatrix. Complexity: O(r*c), no alloc.
func ScaleInPlace[T Number](dst *Matrix[T], s T) error {
	return apply2ScalarInPlace(dst, s, func(x, y T) T { return x * y }, opScale)
}

// DivScalarInPlace computes dst[i,j] /= s.
// Errors: ErrNilMatrix. Complexity: O(r*c), no alloc.
func DivScalarInPlace[T Number](dst *Matrix[T], s T) error {
	return apply2ScalarInPlace(dst, s, func(x, y T) T { return x / y }, opDiv)
}

// RemScalarInPlace computes dst[i,j] = dst[i,j] rem s.
// Errors: ErrNilMatrix. Complexity: O(r*c), no alloc.
func RemScalarInPlace[T Number](dst *Matrix[T], s T) error {
	return apply2ScalarInPlace(dst, s, remOf[T], opRem)
}

// ---------- unary ----------

// Neg computes C[i,j] = -A[i,j]. The SignedNumber constraint rejects
// unsigned element types at compile time.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Neg[T SignedNumber](m *Matrix[T]) (*Matrix[T], error) {
	return apply1(m, func(x T) T { return -x }, opNeg)
}
