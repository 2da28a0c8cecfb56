// SPDX-License-Identifier: MIT
// Package: schoolnet/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewTowns).
//   • Plans towns via cfg.idFn in ascending index order (0..n-1).
//   • Emits roads in stable order i-(i+1)%n for i=0..n-1.
//
// Complexity:
//   • Time: O(n) towns + O(n) roads.
//   • Space: O(1) extra.

package builder

import "fmt"

// Cycle returns a Constructor that builds an n-town ring C_n.
func Cycle(n int) Constructor {
	return func(p *Plan, cfg builderConfig) error {
		if n < MinCycleTowns {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, MinCycleTowns, ErrTooFewTowns)
		}
		if err := planTowns(p, cfg, methodCycle, n); err != nil {
			return err
		}
		if err := planRing(p, cfg, methodCycle, n); err != nil {
			return err
		}

		return nil
	}
}

// planRing closes towns 0..n-1 into a ring; the towns must be planned.
func planRing(p *Plan, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		u, v := cfg.name(i), cfg.name((i+1)%n)
		if err := p.AddRoad(u, v); err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
	}
	return nil
}
