// SPDX-License-Identifier: MIT
// Package: schoolnet/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewTowns): a ring of n-1 towns plus the hub.
//   • Plans ring towns 0..n-2 via cfg.idFn, then the hub "Center".
//   • Emits ring roads i-(i+1)%(n-1) first, then spokes Center-i.
//
// Complexity:
//   • Time: O(n) towns + O(2n-2) roads.

package builder

import "fmt"

// Wheel returns a Constructor that builds W_n = C_{n-1} + hub "Center".
func Wheel(n int) Constructor {
	return func(p *Plan, cfg builderConfig) error {
		if n < MinWheelTowns {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, MinWheelTowns, ErrTooFewTowns)
		}

		ring := n - 1
		if err := planTowns(p, cfg, methodWheel, ring); err != nil {
			return err
		}
		if err := planRing(p, cfg, methodWheel, ring); err != nil {
			return err
		}

		hub := cfg.fixed(CenterTownID)
		if err := p.AddTown(hub); err != nil {
			return fmt.Errorf("%s: %w", methodWheel, err)
		}
		for i := 0; i < ring; i++ {
			if err := p.AddRoad(hub, cfg.name(i)); err != nil {
				return fmt.Errorf("%s: %w", methodWheel, err)
			}
		}

		return nil
	}
}
