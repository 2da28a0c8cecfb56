// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNetwork_Components(t *testing.T) {
	n := mustNetwork(t,
		[]string{TownA, TownB, TownC, TownD, TownX, TownY},
		[]road{{TownA, TownC}, {TownC, TownY}, {TownB, TownX}})

	assert.Equal(t, [][]string{
		{TownA, TownC, TownY},
		{TownB, TownX},
		{TownD},
	}, n.Components())
	assert.Equal(t, 3, n.ComponentCount())
}

func TestNetwork_Components_BFSOrder(t *testing.T) {
	// A-B, A-C, B-D: D is two hops away and comes last.
	n := mustNetwork(t,
		[]string{TownD, TownA, TownB, TownC},
		[]road{{TownA, TownB}, {TownA, TownC}, {TownB, TownD}})

	assert.Equal(t, [][]string{{TownD, TownB, TownA, TownC}}, n.Components())
}
