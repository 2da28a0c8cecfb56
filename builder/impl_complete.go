// SPDX-License-Identifier: MIT
// Package: schoolnet/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewTowns).
//   • Emits roads for every pair i<j in lexicographic (i, j) order.
//
// Complexity:
//   • Time: O(n) towns + O(n²) roads.

package builder

import "fmt"

// Complete returns a Constructor that builds the complete network K_n.
func Complete(n int) Constructor {
	return func(p *Plan, cfg builderConfig) error {
		if n < MinCompleteTowns {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, MinCompleteTowns, ErrTooFewTowns)
		}
		if err := planTowns(p, cfg, methodComplete, n); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := p.AddRoad(cfg.name(i), cfg.name(j)); err != nil {
					return fmt.Errorf("%s: %w", methodComplete, err)
				}
			}
		}

		return nil
	}
}
