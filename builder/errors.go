// SPDX-License-Identifier: MIT
// Package: schoolnet/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w ("Star: n=1 < min=2: ...").
//   • Constructors never panic; option constructors (WithX) may.
//
// Priority when several validations fail:
//   ErrTooFewTowns → ErrInvalidProbability → ErrNeedRandSource → ErrConstructFailed.

package builder

import "errors"

// ErrTooFewTowns indicates that a size parameter (n, rows, cols) is below the
// minimum of the requested constructor.
var ErrTooFewTowns = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor needs an RNG
// (WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that a plan could not be assembled or
// materialized: a nil constructor, a road to an unplanned town, or a core
// rejection while building the network.
var ErrConstructFailed = errors.New("builder: construction failed")
