// SPDX-License-Identifier: MIT
// Package: schoolnet/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildNetwork(bopts, cons...). Resolves cfg, runs cons
//     in order against one Plan, then materializes a sealed core.Network.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical networks.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/schoolnet/core"
)

// Constructor records a deterministic set of towns and roads into p using
// the resolved builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Plan every town before any road touching it.
//   - Preserve determinism for the same config and call order.
type Constructor func(p *Plan, cfg builderConfig) error

// BuildPlan resolves bopts and applies all constructors to a fresh Plan.
// Any constructor error is wrapped with "BuildNetwork: %w".
func BuildPlan(bopts []BuilderOption, cons ...Constructor) (*Plan, error) {
	cfg := newBuilderConfig(bopts...)
	p := newPlan()

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", methodBuild, i, ErrConstructFailed)
		}
		if err := fn(p, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuild, err)
		}
	}

	return p, nil
}

// BuildNetwork assembles a Plan from cons and materializes it as a sealed
// core.Network: every town in planning order, then every road, then Seal.
// No facility is assigned.
//
// Complexity: Σ cost of constructors + O(V + E log Δ) to materialize.
//
// Errors:
//   - Wraps constructor errors via %w; branch with errors.Is against builder
//     sentinels (ErrTooFewTowns, ErrInvalidProbability, ...).
//   - Core rejections are wrapped together with ErrConstructFailed.
func BuildNetwork(bopts []BuilderOption, cons ...Constructor) (*core.Network, error) {
	p, err := BuildPlan(bopts, cons...)
	if err != nil {
		return nil, err
	}

	return p.Network()
}

// Network materializes p as a sealed core.Network.
func (p *Plan) Network() (*core.Network, error) {
	n := core.NewNetwork()
	for _, name := range p.towns {
		if err := n.AddTown(name); err != nil {
			return nil, fmt.Errorf("%s: %w: %w", methodBuild, ErrConstructFailed, err)
		}
	}
	for _, r := range p.roads {
		a, b := p.towns[r[0]], p.towns[r[1]]
		if err := n.AddRoad(a, b); err != nil {
			return nil, fmt.Errorf("%s: %w: %w", methodBuild, ErrConstructFailed, err)
		}
	}
	n.Seal()

	return n, nil
}
