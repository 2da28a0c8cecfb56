// SPDX-License-Identifier: MIT
// Package: schoolnet/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Model:
//   • 2D orthogonal grid with 4-neighbourhood.
//   • Town IDs use the fixed scheme "r_c" (row-major); cfg.idFn is not
//     consulted, the prefix still applies.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewTowns).
//   • For each (r,c) emits Right then Bottom roads where they exist.
//
// Complexity:
//   • Time: O(rows*cols) towns + O(rows*cols) roads.
//   • Space: O(1) extra.

package builder

import "fmt"

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(p *Plan, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, MinGridDim, ErrTooFewTowns)
		}

		cell := func(r, c int) string {
			return cfg.fixed(fmt.Sprintf(gridIDFmt, r, c))
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := p.AddTown(cell(r, c)); err != nil {
					return fmt.Errorf("%s: %w", methodGrid, err)
				}
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := cell(r, c)
				if c+1 < cols {
					if err := p.AddRoad(u, cell(r, c+1)); err != nil {
						return fmt.Errorf("%s: %w", methodGrid, err)
					}
				}
				if r+1 < rows {
					if err := p.AddRoad(u, cell(r+1, c)); err != nil {
						return fmt.Errorf("%s: %w", methodGrid, err)
					}
				}
			}
		}

		return nil
	}
}
