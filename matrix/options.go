// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the ingestion surface and
// numeric policy. This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Reusability: options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - Numeric policy is opt-in: by default NaN/±Inf float elements are
//     accepted and propagate through arithmetic per IEEE-754. WithFiniteOnly
//     turns ingestion strict, rejecting non-finite input with ErrNaNInf.
//   - WithFill only affects NewFromSeq (the sole constructor that may need
//     padding); exact-length constructors ignore it.
package matrix

import "math"

// DefaultFiniteOnly toggles strict finite-value validation on ingestion.
// false ⇒ non-finite float elements are accepted and stored verbatim.
const DefaultFiniteOnly = false

// The default pad value for NewFromSeq is the zero value of the element type;
// there is no constant for it because it depends on the type parameter.

// Option configures ingestion-time behavior for constructors that accept it
// (NewFromFlat, NewFromSeq). Options never become part of the Matrix value.
type Option[T Number] func(*options[T])

// options carries the resolved ingestion policy. Fields are unexported; the
// struct exists only for the duration of a constructor call.
type options[T Number] struct {
	finiteOnly bool // reject NaN/±Inf elements at ingestion
	fill       T    // pad value for short sequences (NewFromSeq only)
}

// WithFiniteOnly makes ingestion reject NaN and ±Inf elements with ErrNaNInf.
// Integer element types are always finite, so the flag is a no-op for them.
func WithFiniteOnly[T Number]() Option[T] {
	return func(o *options[T]) {
		o.finiteOnly = true
	}
}

// WithFill sets the pad value used by NewFromSeq when the sequence yields
// fewer than rows*cols elements. The default pad is the zero value of T.
func WithFill[T Number](v T) Option[T] {
	return func(o *options[T]) {
		o.fill = v
	}
}

// gatherOptions resolves opts over the documented defaults and enforces
// cross-option invariants. Returns ErrNaNInf when a strict-finite policy is
// combined with a non-finite fill value.
// Complexity: O(len(opts)).
func gatherOptions[T Number](opts ...Option[T]) (options[T], error) {
	var cfg options[T] // zero value: finiteOnly=DefaultFiniteOnly, fill=zero of T
	for _, opt := range opts {
		opt(&cfg)
	}
	// A strict-finite ingestion cannot pad with a non-finite value.
	if cfg.finiteOnly && !isFinite(cfg.fill) {
		return cfg, validatorErrorf("gatherOptions", ErrNaNInf)
	}

	return cfg, nil
}

// isFinite reports whether v is neither NaN nor ±Inf. Integer values are
// always finite; the float64 conversion is exact for every float input.
// Complexity: O(1).
func isFinite[T Number](v T) bool {
	f := float64(v)

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
