// SPDX-License-Identifier: MIT

// Package matrix: sequence ingestion and flat export.
// These two functions are the bridge between a Matrix value and the outside
// world: NewFromSeq turns any ordered element stream into a matrix of a
// declared shape, Flat copies the row-major elements out for device-facing
// buffers. Neither direction ever shares backing storage with the caller.
package matrix

import (
	"fmt"
	"iter"
)

// Operation tag for the ingestion surface.
const opNewFromSeq = "NewFromSeq"

// NewFromSeq builds a rows×cols matrix by consuming seq in row-major order.
//
// Length policy (deliberate, and worth reading twice):
//   - a sequence LONGER than rows*cols is silently truncated — surplus
//     elements are never pulled from seq;
//   - a sequence SHORTER than rows*cols is padded with the fill value
//     (zero of T by default, WithFill to override).
//
// Callers ingesting untrusted input (user data, files) who need an exact
// length should pre-count and use NewFromFlat instead.
//
// Inputs:
//   - rows, cols: declared target shape (> 0).
//   - seq       : element source, consumed at most rows*cols times.
//   - opts      : WithFiniteOnly, WithFill.
//
// Errors:
//   - ErrBadShape  (non-positive dimensions).
//   - ErrNilMatrix (nil seq).
//   - ErrNaNInf    (non-finite element or fill under WithFiniteOnly).
//
// Determinism: single pass, fixed row-major placement 0..n-1.
// Complexity: O(rows*cols) time and memory.
func NewFromSeq[T Number](rows, cols int, seq iter.Seq[T], opts ...Option[T]) (*Matrix[T], error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf(opNewFromSeq, err)
	}
	if seq == nil {
		return nil, matrixErrorf(opNewFromSeq, ErrNilMatrix)
	}
	cfg, err := gatherOptions(opts...)
	if err != nil {
		return nil, matrixErrorf(opNewFromSeq, err)
	}

	out := newUnchecked[T](rows, cols)
	n := rows * cols
	idx := 0
	for v := range seq {
		if idx >= n {
			break // declared shape is full: truncate the remainder
		}
		if cfg.finiteOnly && !isFinite(v) {
			return nil, matrixErrorf(opNewFromSeq, fmt.Errorf("element %d: %w", idx, ErrNaNInf))
		}
		out.data[idx] = v
		idx++
	}
	// Pad the unfilled tail, if any, with the configured fill value.
	for ; idx < n; idx++ {
		out.data[idx] = cfg.fill
	}

	return out, nil
}

// Flat returns the rows*cols elements as a fresh row-major slice, suitable
// for copying into a device/GPU-facing byte buffer. The result is always a
// copy: mutating it never affects the matrix, and vice versa.
// Complexity: O(rows*cols) time and memory.
func (m *Matrix[T]) Flat() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// Values returns a one-pass iterator over the elements in row-major order.
// The iterator reads the matrix live; it is not restartable mid-flight —
// range over Values() again (or Clone first) to re-derive the sequence.
// Complexity: O(1) to build, O(rows*cols) to drain.
func (m *Matrix[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range m.data {
			if !yield(v) {
				return
			}
		}
	}
}
