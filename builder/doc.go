// SPDX-License-Identifier: MIT

// Package builder assembles deterministic town networks from small,
// composable topology constructors.
//
// A Constructor records towns and roads into a Plan. BuildNetwork resolves
// the functional options once, runs every constructor against the same Plan
// and only then materializes the result as a sealed core.Network: all towns
// first, then all roads. This ordering matches the construction phases of
// core.Network, so constructors may be freely combined.
//
//	n, err := builder.BuildNetwork(
//	    []builder.BuilderOption{builder.WithSeed(7)},
//	    builder.WithPrefixed("north-", builder.Star(5)),
//	    builder.WithPrefixed("south-", builder.RandomSparse(8, 0.3)),
//	)
//
// Available constructors:
//
//	Path(n)             P_n, n ≥ 2
//	Cycle(n)            C_n, n ≥ 3
//	Star(n)             hub "Center" plus n-1 leaves, n ≥ 2
//	Wheel(n)            C_{n-1} plus hub "Center", n ≥ 4
//	Complete(n)         K_n, n ≥ 1
//	Grid(rows, cols)    4-neighbourhood grid, IDs "r_c"
//	Isolated(n)         n towns without roads, n ≥ 1
//	RandomSparse(n, p)  each pair joined with probability p
//
// Errors are sentinels (ErrTooFewTowns, ErrInvalidProbability,
// ErrNeedRandSource, ErrConstructFailed) wrapped with the constructor name;
// branch on them with errors.Is. Option constructors panic on meaningless
// input, constructors never do.
//
// Determinism: equal options, seed and constructor order yield equal
// networks.
package builder
