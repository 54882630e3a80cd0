// SPDX-License-Identifier: MIT

// Package matrix provides a generic, fixed-shape, row-major matrix container
// with strict fail-fast validation and pure value semantics.
//
// The matrix package provides:
//
//   - Matrix[T] — one container for every integer and float element type,
//     with rows/cols fixed at construction and a flat row-major backing store.
//   - A construction surface (New, NewFilled, NewFromFlat, NewFromRows,
//     NewRow/NewCol, NewIdentity, NewFromSeq) deriving shape from the
//     literal wherever possible, so dimension mistakes surface at build time.
//   - An elementwise operator suite (Add/Sub/Hadamard/Div/Rem, And/Or/Xor/
//     ShiftLeft/ShiftRight, Neg/Not) in matrix⊗matrix, matrix⊗scalar and
//     in-place flavors — all driven by a single generic kernel family.
//   - Algebra for float element types: Reshape, Transpose, Multiply, MatVec.
//   - Export helpers (Flat, Values) producing row-major copies suitable for
//     device-facing byte buffers; backing storage is never exposed.
//
// Every shape violation is reported through a package sentinel (errors.go)
// matched via errors.Is; no operation panics on user-triggered conditions.
// All results are newly allocated values — only the *InPlace family mutates,
// and then only its destination operand.
//
// Matrices are plain values with no shared state: distinct values may be
// read from any number of goroutines concurrently; mutating one value from
// several goroutines requires caller-side synchronization.
package matrix
