// SPDX-License-Identifier: MIT
// Package: schoolnet/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes constructors by mutating a builderConfig before
// the plan is assembled.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the town ID generator: idx -> string.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithPrefix prepends prefix to every generated town name. Use distinct
// prefixes to keep composed constructors apart.
func WithPrefix(prefix string) BuilderOption {
	return func(c *builderConfig) {
		c.prefix = prefix
	}
}

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithPrefixed wraps con so that every town it plans is namespaced by
// prefix, on top of any prefix already configured. The RNG and ID scheme are
// shared with the other constructors.
func WithPrefixed(prefix string, con Constructor) Constructor {
	return func(p *Plan, cfg builderConfig) error {
		if con == nil {
			return ErrConstructFailed
		}
		cfg.prefix += prefix
		return con(p, cfg)
	}
}
