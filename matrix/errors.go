// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions;
// panics are reserved for programmer errors in private helpers (if any).

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Do not %w wrap these sentinels when returning
// directly; if context is essential, wrap with matrixErrorf at the outer
// boundary — callers will still use errors.Is to match.

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0),
	// or when a shape-deriving literal is empty. Constructors must validate
	// shape before allocation.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (linear, row or column) is outside
	// valid bounds. Public indexers (At/Set/AtFlat/SetFlat) MUST return this,
	// not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands:
	// elementwise operators over different shapes, Multiply where a.Cols() !=
	// b.Rows(), Reshape into a different total size, or Equal across shapes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrDataLength signals that a flat literal's length differs from rows*cols.
	// NewFromFlat never truncates or pads; the exact length is required.
	ErrDataLength = errors.New("matrix: data length does not match shape")

	// ErrRaggedRows signals that a nested-row literal has rows of unequal
	// length; shape derivation requires a rectangular literal.
	ErrRaggedRows = errors.New("matrix: ragged row literal")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument), nil
	// sequence, or nil vector was used where a value is required.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required by the numeric policy (strict ingestion, AllClose
	// tolerances).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w so errors.Is/As still match the sentinel. Use only when err != nil.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
