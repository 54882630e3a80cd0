// SPDX-License-Identifier: MIT

// Package matrix: domain types and element-type constraints.
// This file intentionally contains ONLY the element constraints and the
// Matrix container declaration. Errors and options live in dedicated files
// (errors.go, options.go) per the package conventions.
package matrix

import "golang.org/x/exp/constraints"

// Number is the element-type constraint for the general container and the
// arithmetic operator family: every built-in integer and float kind.
// All Number types support +, -, *, /, == and conversion to float64.
type Number interface {
	constraints.Integer | constraints.Float
}

// SignedNumber is the constraint for operations that require an additive
// inverse (Neg). Unsigned element types are rejected at compile time.
type SignedNumber interface {
	constraints.Signed | constraints.Float
}

// Matrix is a fixed-shape, row-major container of Number elements.
//
// rows and cols are set once at construction and never change; data holds
// exactly rows*cols elements where element (i, j) lives at linear offset
// i*cols + j. Go has no compile-time dimension parameters, so the shape is
// carried as immutable fields and every shape-dependent operation performs
// an explicit runtime check returning a sentinel error.
//
// Matrix values never share backing storage: constructors copy their input,
// operators allocate fresh results, and Flat copies out. Use Clone for an
// explicit deep copy. The zero Matrix (or a nil *Matrix) is not usable;
// always build through a constructor.
type Matrix[T Number] struct {
	rows, cols int // immutable shape, validated at construction
	data       []T // flat backing storage, length == rows*cols
}
