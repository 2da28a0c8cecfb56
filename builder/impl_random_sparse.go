// SPDX-License-Identifier: MIT
// Package: schoolnet/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model:
//   - Erdős–Rényi-like generator: each unordered pair {i,j}, i<j, becomes a
//     road independently with probability prob.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewTowns).
//   - 0 ≤ prob ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < prob < 1 (else ErrNeedRandSource);
//     prob ∈ {0,1} is deterministic and needs no RNG.
//
// Complexity:
//   - Time: O(n) towns + O(n²) Bernoulli trials.
//
// Determinism:
//   - Trial order is i asc, then j asc; fixed seed ⇒ fixed network.

package builder

import "fmt"

// RandomSparse returns a Constructor that samples a random network over n
// towns with independent road probability prob.
func RandomSparse(n int, prob float64) Constructor {
	return func(p *Plan, cfg builderConfig) error {
		if n < MinRandomSparseTowns {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, MinRandomSparseTowns, ErrTooFewTowns)
		}
		if prob < MinProbability || prob > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, prob, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		rng := cfg.rng
		if rng == nil && prob > MinProbability && prob < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		if err := planTowns(p, cfg, methodRandomSparse, n); err != nil {
			return err
		}

		var include bool
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				switch {
				case prob == MaxProbability:
					include = true
				case prob == MinProbability:
					include = false
				default:
					include = rng.Float64() < prob
				}
				if !include {
					continue
				}
				if err := p.AddRoad(cfg.name(i), cfg.name(j)); err != nil {
					return fmt.Errorf("%s: %w", methodRandomSparse, err)
				}
			}
		}

		return nil
	}
}
