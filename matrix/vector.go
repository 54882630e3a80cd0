// SPDX-License-Identifier: MIT

// Package matrix: row/column vector shorthands.
// A vector is not a separate type — it is a Matrix specialized to one
// dimension equal to 1, so the whole operator and algebra surface applies
// unchanged. The dimension D is derived from the literal's length.
package matrix

// Operation tags for the vector surface.
const (
	opNewRow = "NewRow"
	opNewCol = "NewCol"
)

// NewRow builds a 1×D row vector from the given values, D = len(vals).
// Values are copied, never aliased.
// Errors: ErrBadShape on an empty literal (no shape to derive).
// Complexity: O(D) time and memory.
func NewRow[T Number](vals ...T) (*Matrix[T], error) {
	if len(vals) == 0 {
		return nil, matrixErrorf(opNewRow, ErrBadShape)
	}

	out := newUnchecked[T](1, len(vals))
	copy(out.data, vals)

	return out, nil
}

// NewCol builds a D×1 column vector from the given values, D = len(vals).
// Values are copied, never aliased.
// Errors: ErrBadShape on an empty literal (no shape to derive).
// Complexity: O(D) time and memory.
func NewCol[T Number](vals ...T) (*Matrix[T], error) {
	if len(vals) == 0 {
		return nil, matrixErrorf(opNewCol, ErrBadShape)
	}

	out := newUnchecked[T](len(vals), 1)
	copy(out.data, vals)

	return out, nil
}

// VR is the row-vector literal shorthand: VR(0.0, 1.0, 2.0) is a 1×3 matrix.
// Thin alias of NewRow with the traditional name.
func VR[T Number](vals ...T) (*Matrix[T], error) { return NewRow(vals...) }

// VC is the column-vector literal shorthand: VC(0.0, 1.0, 2.0) is a 3×1 matrix.
// Thin alias of NewCol with the traditional name.
func VC[T Number](vals ...T) (*Matrix[T], error) { return NewCol(vals...) }
