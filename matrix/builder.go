// SPDX-License-Identifier: MIT

// Package matrix: the construction surface.
// Shape comes first, data second: every constructor validates (or derives)
// the shape before touching element data, so dimension mistakes surface at
// build time rather than inside later algebra calls. All constructors copy
// their input — a built Matrix never aliases caller memory.
//
// There is intentionally NO uninitialized-allocation escape hatch: Go's
// allocator zero-fills, so New is both the zero constructor and the fast
// path, and no construction form can leak undefined element values.
package matrix

import "fmt"

// Operation tags for the construction surface (unified error wrapping).
const (
	opNew         = "New"
	opNewFilled   = "NewFilled"
	opNewFromFlat = "NewFromFlat"
	opNewFromRows = "NewFromRows"
)

// newUnchecked allocates a rows×cols matrix without re-validating the shape.
// Internal helper for constructors and kernels that already validated.
// Complexity: O(rows*cols) zeroing by the runtime.
func newUnchecked[T Number](rows, cols int) *Matrix[T] {
	return &Matrix[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}
}

// New creates a rows×cols matrix with every element set to the zero value
// of T.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate the flat backing slice (runtime zero-fills).
// Errors: ErrBadShape on non-positive dimensions.
// Complexity: O(rows*cols) time and memory.
func New[T Number](rows, cols int) (*Matrix[T], error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	return newUnchecked[T](rows, cols), nil
}

// NewFilled creates a rows×cols matrix with the scalar v replicated into all
// rows*cols cells.
// Errors: ErrBadShape on non-positive dimensions.
// Complexity: O(rows*cols) time and memory.
func NewFilled[T Number](rows, cols int, v T) (*Matrix[T], error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf(opNewFilled, err)
	}

	out := newUnchecked[T](rows, cols)
	for idx := range out.data { // deterministic flat fill 0..n-1
		out.data[idx] = v
	}

	return out, nil
}

// NewFromFlat creates a rows×cols matrix from a flat row-major literal of
// exactly rows*cols values. The literal is copied, never aliased.
//
// Inputs:
//   - rows, cols: target shape (> 0).
//   - data      : exactly rows*cols elements in row-major order.
//   - opts      : optional ingestion policy (WithFiniteOnly).
//
// Errors:
//   - ErrBadShape   (non-positive dimensions).
//   - ErrNilMatrix  (nil data slice).
//   - ErrDataLength (len(data) != rows*cols; never truncated or padded).
//   - ErrNaNInf     (non-finite element under WithFiniteOnly).
//
// Complexity: O(rows*cols) time and memory.
func NewFromFlat[T Number](rows, cols int, data []T, opts ...Option[T]) (*Matrix[T], error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf(opNewFromFlat, err)
	}
	if data == nil {
		return nil, matrixErrorf(opNewFromFlat, ErrNilMatrix)
	}
	// Exact-length contract: a wrong-length literal is a construction error.
	if len(data) != rows*cols {
		return nil, matrixErrorf(opNewFromFlat, ErrDataLength)
	}
	cfg, err := gatherOptions(opts...)
	if err != nil {
		return nil, matrixErrorf(opNewFromFlat, err)
	}

	out := newUnchecked[T](rows, cols)
	for idx, v := range data { // single deterministic pass: validate + copy
		if cfg.finiteOnly && !isFinite(v) {
			return nil, matrixErrorf(opNewFromFlat, fmt.Errorf("element %d: %w", idx, ErrNaNInf))
		}
		out.data[idx] = v
	}

	return out, nil
}

// NewFromRows creates a matrix from a nested-row literal. The shape is
// derived from the literal itself: rows = len(rows slice), cols = len(first
// row); every row must have the same length.
//
// Errors:
//   - ErrBadShape   (empty literal or an empty first row).
//   - ErrRaggedRows (rows of unequal length).
//
// Complexity: O(rows*cols) time and memory.
func NewFromRows[T Number](rows [][]T) (*Matrix[T], error) {
	// Derive shape from the literal; an empty literal carries no shape.
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opNewFromRows, ErrBadShape)
	}
	r, c := len(rows), len(rows[0])

	out := newUnchecked[T](r, c)
	for i, row := range rows {
		// All rows must match the width derived from the first row.
		if len(row) != c {
			return nil, matrixErrorf(opNewFromRows, fmt.Errorf("row %d: %w", i, ErrRaggedRows))
		}
		copy(out.data[i*c:(i+1)*c], row) // row-major placement
	}

	return out, nil
}

// NewIdentity returns I_n: the n×n matrix with ones on the diagonal and
// zeros elsewhere. It is the neutral element of Multiply.
// Errors: ErrBadShape on n <= 0.
// Complexity: O(n^2) zeroing (constructor) + O(n) diagonal writes.
func NewIdentity[T Number](n int) (*Matrix[T], error) {
	I, err := New[T](n, n)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	var one T = 1
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		I.data[i*n+i] = one
	}

	return I, nil
}
