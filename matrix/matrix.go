// SPDX-License-Identifier: MIT

// Package matrix: core accessors for the Matrix[T] container.
// Matrix is a row-major flat store; element (i, j) lives at linear offset
// i*cols + j. All indexers are bounds-checked and return sentinels, never
// panic.
package matrix

import (
	"fmt"
	"strings"
)

// Operation tags for the core surface (unified error wrapping).
const (
	opEqual = "Equal"
)

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Matrix[T]) Rows() int {
	return m.rows // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Matrix[T]) Cols() int {
	return m.cols // return stored column count
}

// Shape returns the static dimensions (rows, cols) in one call.
// Complexity: O(1).
func (m *Matrix[T]) Shape() (rows, cols int) {
	return m.rows, m.cols
}

// Size returns the total element count rows*cols.
// Complexity: O(1).
func (m *Matrix[T]) Size() int {
	return m.rows * m.cols
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Stage 1 (Validate): check 0 ≤ row < rows and 0 ≤ col < cols.
// Stage 2 (Execute): compute and return the linear offset row*cols + col.
// Complexity: O(1).
func (m *Matrix[T]) indexOf(row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.rows {
		return 0, fmt.Errorf("At(%d,%d): %w", row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= m.cols {
		return 0, fmt.Errorf("At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	// Compute flat offset
	return row*m.cols + col, nil
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from the flat store.
// Complexity: O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): write into the flat store.
// Complexity: O(1).
func (m *Matrix[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// AtFlat retrieves the element at linear offset k in row-major order.
// The invariant At(i, j) == AtFlat(i*Cols()+j) holds for every valid (i, j).
// Errors: ErrOutOfRange unless 0 ≤ k < rows*cols.
// Complexity: O(1).
func (m *Matrix[T]) AtFlat(k int) (T, error) {
	if k < 0 || k >= len(m.data) {
		var zero T
		return zero, fmt.Errorf("AtFlat(%d): %w", k, ErrOutOfRange)
	}

	return m.data[k], nil
}

// SetFlat assigns value v at linear offset k in row-major order.
// Errors: ErrOutOfRange unless 0 ≤ k < rows*cols.
// Complexity: O(1).
func (m *Matrix[T]) SetFlat(k int, v T) error {
	if k < 0 || k >= len(m.data) {
		return fmt.Errorf("SetFlat(%d): %w", k, ErrOutOfRange)
	}
	m.data[k] = v

	return nil
}

// Clone returns a deep copy of the matrix. The returned value is fully
// independent of the original: no backing storage is shared.
// Complexity: O(rows*cols) time and memory.
func (m *Matrix[T]) Clone() *Matrix[T] {
	// Allocate a fresh slice and copy all elements into it.
	copyData := make([]T, len(m.data))
	copy(copyData, m.data)

	return &Matrix[T]{rows: m.rows, cols: m.cols, data: copyData}
}

// String implements fmt.Stringer for easy debugging.
// Rows render as bracketed, comma-separated lists, one per line.
// Complexity: O(rows*cols) for string construction.
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.rows; i++ { // iterate over rows
		sb.WriteByte('[')            // open row
		for j = 0; j < m.cols; j++ { // iterate over columns
			// compute flat index directly for performance
			fmt.Fprintf(&sb, "%v", m.data[i*m.cols+j])
			if j < m.cols-1 {
				sb.WriteString(", ") // separate values with comma
			}
		}
		sb.WriteString("]\n") // close row
	}

	return sb.String()
}

// Equal reports whether a and b have identical shape and pairwise-equal
// elements. Shape disagreement is a dimension error, not a false result:
// matrices of different shape are not comparable.
//
// Inputs:
//   - a, b: non-nil matrices of the same element type.
//
// Returns:
//   - bool : true iff every element pairwise-equals.
//   - error: ErrNilMatrix or ErrDimensionMismatch from validation.
//
// Determinism:
//   - Flat 0..n-1 scan with early exit on first difference.
//
// Complexity: O(rows*cols) time, O(1) space.
func Equal[T Number](a, b *Matrix[T]) (bool, error) {
	// Validate both operands are non-nil and share a shape.
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}

	// Single flat pass; early-exit on the first differing element.
	for idx := range a.data {
		if a.data[idx] != b.data[idx] {
			return false, nil
		}
	}

	return true, nil
}
