// Package matrix_test contains unit tests for the arithmetic operator family.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/mx/matrix"
	"github.com/stretchr/testify/require"
)

// mustFromRows builds a matrix from a nested literal or fails the test.
func mustFromRows[T matrix.Number](t *testing.T, rows [][]T) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// TestAdd_Pointwise verifies elementwise addition over matching shapes.
func TestAdd_Pointwise(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustFromRows(t, [][]float64{{10, 20}, {30, 40}})

	c, err := matrix.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, []float64{11, 22, 33, 44}, c.Flat())

	// Inputs are untouched: results are always fresh values.
	require.Equal(t, []float64{1, 2, 3, 4}, a.Flat())
	require.Equal(t, []float64{10, 20, 30, 40}, b.Flat())
}

// TestSub_Pointwise verifies elementwise subtraction.
func TestSub_Pointwise(t *testing.T) {
	a := mustFromRows(t, [][]int{{10, 20}, {30, 40}})
	b := mustFromRows(t, [][]int{{1, 2}, {3, 4}})

	c, err := matrix.Sub(a, b)
	require.NoError(t, err)
	require.Equal(t, []int{9, 18, 27, 36}, c.Flat())
}

// TestHadamard_Pointwise verifies the elementwise product (not the matrix
// product).
func TestHadamard_Pointwise(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustFromRows(t, [][]float64{{2, 2}, {2, 2}})

	c, err := matrix.Hadamard(a, b)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 4, 6, 8}, c.Flat())
}

// TestDivRem_IntegerSemantics verifies truncating integer division and the
// built-in remainder semantics, including negative operands.
func TestDivRem_IntegerSemantics(t *testing.T) {
	a := mustFromRows(t, [][]int{{7, -7}, {9, -9}})
	b := mustFromRows(t, [][]int{{2, 2}, {-4, -4}})

	q, err := matrix.Div(a, b)
	require.NoError(t, err)
	require.Equal(t, []int{3, -3, -2, 2}, q.Flat()) // trunc toward zero

	r, err := matrix.Rem(a, b)
	require.NoError(t, err)
	require.Equal(t, []int{1, -1, 1, -1}, r.Flat()) // sign follows dividend
}

// TestRem_FloatSemantics verifies float remainder matches math.Mod.
func TestRem_FloatSemantics(t *testing.T) {
	a := mustFromRows(t, [][]float64{{5.5, -5.5}})
	b := mustFromRows(t, [][]float64{{2.0, 2.0}})

	r, err := matrix.Rem(a, b)
	require.NoError(t, err)
	require.Equal(t, []float64{1.5, -1.5}, r.Flat()) // math.Mod semantics
}

// TestBinaryOps_ShapeGuard ensures every matrix⊗matrix operator rejects
// differing shapes — never a silent result.
func TestBinaryOps_ShapeGuard(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2, 3}})     // 1×3
	b := mustFromRows(t, [][]float64{{1}, {2}, {3}}) // 3×1

	_, err := matrix.Add(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Sub(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Hadamard(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Div(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Rem(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	err = matrix.AddInPlace(a, b) // the in-place family shares the guard
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestScalarOps_Broadcast verifies the scalar broadcast family.
func TestScalarOps_Broadcast(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	add, err := matrix.AddScalar(m, 10)
	require.NoError(t, err)
	require.Equal(t, []float64{11, 12, 13, 14}, add.Flat())

	sub, err := matrix.SubScalar(m, 1)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 2, 3}, sub.Flat())

	mul, err := matrix.Scale(m, 2)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 4, 6, 8}, mul.Flat())

	div, err := matrix.DivScalar(m, 2)
	require.NoError(t, err)
	require.Equal(t, []float64{0.5, 1, 1.5, 2}, div.Flat())

	rem, err := matrix.RemScalar(m, 2)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 0, 1, 0}, rem.Flat())
}

// TestInPlace_MutatesOnlyDst verifies in-place operators mutate the receiver
// and never the right-hand operand.
func TestInPlace_MutatesOnlyDst(t *testing.T) {
	dst := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	rhs := mustFromRows(t, [][]float64{{10, 10}, {10, 10}})

	require.NoError(t, matrix.AddInPlace(dst, rhs))
	require.Equal(t, []float64{11, 12, 13, 14}, dst.Flat()) // dst mutated
	require.Equal(t, []float64{10, 10, 10, 10}, rhs.Flat()) // rhs untouched

	require.NoError(t, matrix.ScaleInPlace(dst, 0.5))
	require.Equal(t, []float64{5.5, 6, 6.5, 7}, dst.Flat())

	require.NoError(t, matrix.SubScalarInPlace(dst, 5.5))
	require.Equal(t, []float64{0, 0.5, 1, 1.5}, dst.Flat())
}

// TestInPlace_SelfAliasing verifies dst may appear on both sides without
// corrupting the operation.
func TestInPlace_SelfAliasing(t *testing.T) {
	m := mustFromRows(t, [][]int{{1, 2}, {3, 4}})

	require.NoError(t, matrix.AddInPlace(m, m)) // m += m
	require.Equal(t, []int{2, 4, 6, 8}, m.Flat())

	require.NoError(t, matrix.SubInPlace(m, m)) // m -= m
	require.Equal(t, []int{0, 0, 0, 0}, m.Flat())
}

// TestNeg_Unary verifies elementwise negation for signed element types.
func TestNeg_Unary(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, -2}, {0, 4}})

	n, err := matrix.Neg(m)
	require.NoError(t, err)
	require.Equal(t, []float64{-1, 2, 0, -4}, n.Flat())
	require.Equal(t, []float64{1, -2, 0, 4}, m.Flat()) // input untouched
}

// TestOps_NilOperand ensures the whole family fails fast on nil inputs.
func TestOps_NilOperand(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1}})

	_, err := matrix.Add(nil, m)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.AddScalar[float64](nil, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Neg[float64](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	err = matrix.AddScalarInPlace[float64](nil, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestRem_NamedFloatTypes verifies the remainder keeps math.Mod semantics for
// defined float element types, not just the builtin float kinds.
func TestRem_NamedFloatTypes(t *testing.T) {
	type celsius float64
	type volt float32

	a := mustFromRows(t, [][]celsius{{5.5, -5.5}})
	b := mustFromRows(t, [][]celsius{{2, 2}})

	c, err := matrix.Rem(a, b)
	require.NoError(t, err)
	require.Equal(t, []celsius{1.5, -1.5}, c.Flat())

	// Same contract through the scalar and in-place paths.
	s, err := matrix.RemScalar(a, 2)
	require.NoError(t, err)
	require.Equal(t, []celsius{1.5, -1.5}, s.Flat())

	v := mustFromRows(t, [][]volt{{7.5, -7.5}})
	require.NoError(t, matrix.RemScalarInPlace(v, 2))
	require.Equal(t, []volt{1.5, -1.5}, v.Flat())
}
