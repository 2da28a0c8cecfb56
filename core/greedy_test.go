// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/schoolnet/core"
)

// A three-town path X-Y-Z gets a single facility on its middle town Y.
func TestSolveGreedy_Path(t *testing.T) {
	n := pathXYZ(t, TownX, TownZ)

	res := n.SolveGreedy()

	assert.Equal(t, []string{TownY}, n.CoverageReport())
	assert.Equal(t, 1, res.Rounds)
	require.Len(t, res.Picks, 1)
	assert.Equal(t, core.Pick{Town: TownY, Degree: 2, Score: 2}, res.Picks[0])
	requireAccessible(t, n)
}

// Towns without roads each get their own facility.
func TestSolveGreedy_Isolated(t *testing.T) {
	n := mustNetwork(t, []string{TownA, TownB}, nil)

	res := n.SolveGreedy()

	assert.Equal(t, []string{TownA, TownB}, n.CoverageReport())
	assert.Equal(t, 0, res.Rounds)
	assert.Equal(t, []string{TownA, TownB}, res.Facilities())
	for _, p := range res.Picks {
		assert.True(t, p.Isolated)
	}
}

// A hub joined to four leaves gets a single facility on the hub.
func TestSolveGreedy_Star(t *testing.T) {
	towns := []string{"C", "L1", "L2", "L3", "L4"}
	var roads []road
	for _, leaf := range towns[1:] {
		roads = append(roads, road{"C", leaf})
	}
	n := mustNetwork(t, towns, roads)

	n.SolveGreedy()

	assert.Equal(t, []string{"C"}, n.CoverageReport())
}

// The star centre is found even when it is not the first town.
func TestSolveGreedy_StarCentreLast(t *testing.T) {
	towns := []string{"L1", "L2", "L3", "C"}
	n := mustNetwork(t, towns, []road{{"C", "L1"}, {"C", "L2"}, {"C", "L3"}})

	n.SolveGreedy()

	assert.Equal(t, []string{"C"}, n.CoverageReport())
}

func TestSolveGreedy_DegreeZeroAlwaysPlaced(t *testing.T) {
	n := mustNetwork(t,
		[]string{TownX, TownA, TownY, TownZ},
		[]road{{TownX, TownY}, {TownY, TownZ}})

	n.SolveGreedy()

	town, err := n.Town(TownA)
	require.NoError(t, err)
	assert.True(t, town.HasFacility())
	assert.Equal(t, []string{TownA, TownY}, n.CoverageReport())
	requireAccessible(t, n)
}

// Complete graph: all degrees tie, the first town wins.
func TestSolveGreedy_CompleteTieBreak(t *testing.T) {
	towns := []string{TownA, TownB, TownC, TownD}
	var roads []road
	for i := range towns {
		for j := i + 1; j < len(towns); j++ {
			roads = append(roads, road{towns[i], towns[j]})
		}
	}
	n := mustNetwork(t, towns, roads)

	n.SolveGreedy()

	assert.Equal(t, []string{TownA}, n.CoverageReport())
}

// Two disjoint stars sharing the maximum degree: the second centre still gets
// picked once the first star is covered, because assigned towns never rejoin
// the candidate set.
func TestSolveGreedy_TwoComponents(t *testing.T) {
	towns := []string{"H1", "a1", "a2", "a3", "H2", "b1", "b2", "b3", "P", "Q"}
	roads := []road{
		{"H1", "a1"}, {"H1", "a2"}, {"H1", "a3"},
		{"H2", "b1"}, {"H2", "b2"}, {"H2", "b3"},
		{"P", "Q"},
	}
	n := mustNetwork(t, towns, roads)

	res := n.SolveGreedy()

	assert.Equal(t, []string{"H1", "H2", "P"}, res.Facilities())
	assert.Equal(t, 3, res.Rounds)
	requireAccessible(t, n)
}

// The already-facility penalty steers the choice between equal-degree candidates.
func TestSolveGreedy_ScorePenalty(t *testing.T) {
	// Path A-B-C-D-E: B, C, D have degree 2.
	// Round 1: B(score 2), C(2), D(2) → B. Covered {A,B,C}.
	// Round 2: C(1 uncovered - 1 assigned = 0), D(1 - 0 = 1) → D.
	towns := []string{"A", "B", "C", "D", "E"}
	n := mustNetwork(t, towns, []road{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "E"}})

	var seen []core.Pick
	res := n.SolveGreedy(core.WithOnPick(func(p core.Pick) { seen = append(seen, p) }))

	assert.Equal(t, []string{"B", "D"}, n.CoverageReport())
	assert.Equal(t, res.Picks, seen)
	assert.Equal(t, 2, seen[0].Score)
	assert.Equal(t, 1, seen[1].Score)
}

func TestSolveGreedy_ReplacesPreviousConfiguration(t *testing.T) {
	n := pathXYZ(t)
	n.ApplyFullCoverage()

	n.SolveGreedy()
	first := n.CoverageReport()
	n.SolveGreedy(core.WithOnPick(nil))

	assert.Equal(t, []string{TownY}, first)
	assert.Equal(t, first, n.CoverageReport(), "greedy is deterministic")
}

func TestSolveGreedy_Empty(t *testing.T) {
	n := core.NewNetwork()
	res := n.SolveGreedy()
	assert.Empty(t, res.Picks)
	assert.True(t, n.Accessible())
}

func BenchmarkSolveGreedy_Grid(b *testing.B) {
	const side = 30
	n := core.NewNetwork()
	id := func(r, c int) string { return fmt.Sprintf("%d,%d", r, c) }
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			_ = n.AddTown(id(r, c))
		}
	}
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			if c+1 < side {
				_ = n.AddRoad(id(r, c), id(r, c+1))
			}
			if r+1 < side {
				_ = n.AddRoad(id(r, c), id(r+1, c))
			}
		}
	}
	n.Seal()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n.SolveGreedy()
	}
}
