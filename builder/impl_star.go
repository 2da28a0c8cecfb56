// SPDX-License-Identifier: MIT
// Package: schoolnet/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewTowns).
//   - Plans the hub with fixed ID "Center" first, then leaves via cfg.idFn
//     for i = 1..n-1.
//   - Emits spokes in stable order Center-leaf[i].
//
// Complexity:
//   - Time: O(n) towns + O(n-1) roads.
//   - Space: O(1) extra.

package builder

import "fmt"

// Star returns a Constructor that builds a star with n towns: one hub
// "Center" and n-1 leaves.
func Star(n int) Constructor {
	return func(p *Plan, cfg builderConfig) error {
		if n < MinStarTowns {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, MinStarTowns, ErrTooFewTowns)
		}

		hub := cfg.fixed(CenterTownID)
		if err := p.AddTown(hub); err != nil {
			return fmt.Errorf("%s: %w", methodStar, err)
		}

		var leaf string
		for i := 1; i < n; i++ {
			leaf = cfg.name(i)
			if err := p.AddTown(leaf); err != nil {
				return fmt.Errorf("%s: %w", methodStar, err)
			}
			if err := p.AddRoad(hub, leaf); err != nil {
				return fmt.Errorf("%s: %w", methodStar, err)
			}
		}

		return nil
	}
}
