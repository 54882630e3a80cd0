// Package mx is a fixed-shape matrix and vector algebra toolkit for Go —
// a generic numeric container with compile-checked element types, strict
// shape validation and pure value semantics.
//
// 🚀 What is mx?
//
//	A small, deterministic linear-container library that brings together:
//		• Generic Matrix[T]: one row-major container for every numeric type
//		• Construction surface: shape-first literals, vectors, iterables
//		• Elementwise operators: arithmetic & bitwise, scalar & in-place
//		• Algebra: reshape, transpose, matrix multiply for float types
//		• Export: row-major flat copies ready for device/GPU buffers
//
// ✨ Why choose mx?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Fail-fast guarantees – every shape error is a sentinel, never a late panic
//   - Pure values – results never alias operand storage
//   - Deterministic – fixed loop orders, stable output across runs
//
// Everything lives in a single subpackage:
//
//	matrix/ — the Matrix[T] container, constructors, operators & algebra
//
// Quick ASCII example:
//
//	    ⎡0 1 2 3⎤      ⎡0 1⎤
//	    ⎣4 5 6 7⎦  ×   ⎢2 3⎥   =  ⎡28 34⎤
//	                   ⎢4 5⎥      ⎣76 98⎦
//	                   ⎣6 7⎦
//
//	a 2×4 by 4×2 product yielding a 2×2 matrix.
//
// Dive into README.md and the examples/ directory for full usage patterns.
//
//	go get github.com/katalvlaran/mx/matrix
package mx
