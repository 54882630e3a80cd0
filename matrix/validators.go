// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels/facades minimal by delegating shape/nil checks here.
//   - Return plain sentinel errors (tagged with the validator name) so call
//     sites can wrap uniformly with their operation tag.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing on success.
//   - Every validator here is O(1).

package matrix

import "fmt"

// validatorErrorf wraps an underlying sentinel with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Use as the first step in composites.
// Complexity: O(1).
func ValidateNotNil[T Number](m *Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix) // single source of truth for "nil argument"
	}

	return nil
}

// ValidateShape ensures requested dimensions are strictly positive.
// Returns ErrBadShape on r<=0 or c<=0. Constructors call this before any
// allocation.
// Complexity: O(1).
func ValidateShape(rows, cols int) error {
	if rows <= 0 {
		return validatorErrorf("ValidateShape: Rows", ErrBadShape)
	}
	if cols <= 0 {
		return validatorErrorf("ValidateShape: Columns", ErrBadShape)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are non-nil (caller must ensure).
// Returns nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape[T Number](a, b *Matrix[T]) error {
	if a.rows != b.rows {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.cols != b.cols {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape — composite: NotNil(a) → NotNil(b) → SameShape.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBinarySameShape[T Number](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is non-nil (caller must ensure).
// Errors: ErrDimensionMismatch if not square.
// Complexity: O(1).
func ValidateSquare[T Number](m *Matrix[T]) error {
	if m.rows != m.cols {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible[T Number](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.cols != b.rows {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector is non-nil and its length matches n.
// Errors: ErrNilMatrix (nil vector), ErrDimensionMismatch (length mismatch).
// Complexity: O(1).
func ValidateVecLen[T Number](x []T, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix) // reuse the "nil argument" sentinel
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}
