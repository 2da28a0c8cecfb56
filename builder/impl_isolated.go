// SPDX-License-Identifier: MIT

package builder

import "fmt"

// Isolated returns a Constructor that plans n towns and no roads.
// Every such town needs its own facility once solved.
func Isolated(n int) Constructor {
	return func(p *Plan, cfg builderConfig) error {
		if n < MinIsolatedTowns {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodIsolated, n, MinIsolatedTowns, ErrTooFewTowns)
		}
		return planTowns(p, cfg, methodIsolated, n)
	}
}
