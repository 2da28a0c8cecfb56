// SPDX-License-Identifier: MIT
// Package: schoolnet/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewTowns).
//   - Plans towns via cfg.idFn in ascending index order (0..n-1).
//   - Emits roads (i-1)-i for i=1..n-1 in stable increasing order.
//
// Complexity:
//   - Time: O(n) towns + O(n-1) roads.
//   - Space: O(1) extra.

package builder

import "fmt"

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(p *Plan, cfg builderConfig) error {
		if n < MinPathTowns {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, MinPathTowns, ErrTooFewTowns)
		}
		if err := planTowns(p, cfg, methodPath, n); err != nil {
			return err
		}

		var u, v string
		for i := 1; i < n; i++ {
			u, v = cfg.name(i-1), cfg.name(i)
			if err := p.AddRoad(u, v); err != nil {
				return fmt.Errorf("%s: %w", methodPath, err)
			}
		}

		return nil
	}
}

// planTowns plans towns 0..n-1 under cfg's naming scheme.
func planTowns(p *Plan, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.name(i)
		if err := p.AddTown(id); err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
	}
	return nil
}
