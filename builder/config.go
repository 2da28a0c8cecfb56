// SPDX-License-Identifier: MIT
// Package: schoolnet/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic; no globals.
//   • newBuilderConfig applies options in order (later overrides earlier).
//
// Defaults:
//   • idFn   = DefaultIDFn  ("0","1","2",...)
//   • prefix = ""           (no namespacing)
//   • rng    = nil          (pure/deterministic unless seeded)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Town ID strategy: index -> name.
	idFn IDFn
	// Prepended to every town name, including fixed ones like "Center".
	prefix string
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn: DefaultIDFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// name renders the town name for index i under the current scheme.
func (c builderConfig) name(i int) string {
	return c.prefix + c.idFn(i)
}

// fixed namespaces a fixed town name such as CenterTownID.
func (c builderConfig) fixed(id string) string {
	return c.prefix + id
}
