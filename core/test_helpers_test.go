// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/schoolnet/core"
)

// Common town names used across core tests.
const (
	TownA = "A"
	TownB = "B"
	TownC = "C"
	TownD = "D"

	TownX = "X"
	TownY = "Y"
	TownZ = "Z"

	TownMissing = "Nowhere"
)

// road is an undirected pair of town names.
type road struct{ a, b string }

// mustNetwork builds and seals a Network with the given towns and roads,
// then seeds the given facilities. Any error fails the test.
func mustNetwork(t *testing.T, towns []string, roads []road, facilities ...string) *core.Network {
	t.Helper()

	n := core.NewNetwork()
	for _, name := range towns {
		require.NoError(t, n.AddTown(name), "AddTown(%s)", name)
	}
	for _, r := range roads {
		require.NoError(t, n.AddRoad(r.a, r.b), "AddRoad(%s,%s)", r.a, r.b)
	}
	n.Seal()
	for _, name := range facilities {
		require.NoError(t, n.SetFacility(name), "SetFacility(%s)", name)
	}

	return n
}

// pathXYZ is the X–Y–Z path used by several scenarios.
func pathXYZ(t *testing.T, facilities ...string) *core.Network {
	t.Helper()
	return mustNetwork(t,
		[]string{TownX, TownY, TownZ},
		[]road{{TownX, TownY}, {TownY, TownZ}},
		facilities...)
}

// requireAccessible fails the test if any town is uncovered.
func requireAccessible(t *testing.T, n *core.Network) {
	t.Helper()
	require.Empty(t, n.Uncovered(), "accessibility invariant violated")
	require.True(t, n.Accessible())
}
