// SPDX-License-Identifier: MIT
//
// File: greedy.go
// Role: Greedy facility placement (heuristic minimum dominating set).
//
// Algorithm:
//  1. Clear all facilities.
//  2. Compute degrees once. Every degree-0 town gets a facility (assigned+covered).
//  3. While some town is uncovered:
//     a. candidates = unassigned towns of maximum degree (insertion order).
//     b. score(c) = |uncovered N(c)| − |assigned N(c)|; pick the first strict maximum.
//     c. assign the pick (facility, assigned, covered).
//     d. cover every neighbour of the pick.
//
// Termination: every round assigns one previously unassigned town, so there are
// at most T rounds. Each assigned town covers itself and its neighbours, so the
// loop only stops once the accessibility invariant holds.
//
// Determinism: ties are broken by first-encountered insertion order, both when
// collecting max-degree candidates and when comparing scores.

package core

import "math"

// Pick describes one facility placement made by SolveGreedy.
type Pick struct {
	// Town is the chosen town.
	Town string
	// Degree is the town's neighbour count.
	Degree int
	// Score is the candidate score at pick time (0 for isolated towns).
	Score int
	// Isolated is true for degree-0 towns placed before the main loop.
	Isolated bool
}

// GreedyResult summarizes one SolveGreedy run.
type GreedyResult struct {
	// Picks lists placements in the order they were made.
	Picks []Pick
	// Rounds is the number of iterations of the main loop.
	Rounds int
}

// Facilities returns the picked town names in pick order.
func (r GreedyResult) Facilities() []string {
	out := make([]string, len(r.Picks))
	for i, p := range r.Picks {
		out[i] = p.Town
	}
	return out
}

// GreedyOption configures SolveGreedy via functional arguments.
type GreedyOption func(*greedyOptions)

type greedyOptions struct {
	onPick func(Pick)
}

// WithOnPick registers a callback invoked after every placement.
// A nil fn is ignored.
func WithOnPick(fn func(Pick)) GreedyOption {
	return func(o *greedyOptions) {
		if fn != nil {
			o.onPick = fn
		}
	}
}

// greedyTable is the per-town bookkeeping of the greedy pass, indexed in
// parallel with the town sequence.
type greedyTable struct {
	degree   []int
	covered  []bool
	assigned []bool
}

func newGreedyTable(size int) *greedyTable {
	return &greedyTable{
		degree:   make([]int, size),
		covered:  make([]bool, size),
		assigned: make([]bool, size),
	}
}

// SolveGreedy replaces the current facility configuration with the one
// computed by the greedy covering algorithm (see file header).
//
// Returns:
//   - GreedyResult: placements in pick order and the number of main-loop rounds.
//
// Guarantees:
//   - Always terminates; always leaves the accessibility invariant satisfied.
//   - Not guaranteed minimum.
//
// Complexity:
//   - Time O(T·(T + R)) worst case, Space O(T).
func (n *Network) SolveGreedy(opts ...GreedyOption) GreedyResult {
	cfg := greedyOptions{onPick: func(Pick) {}}
	for _, opt := range opts {
		opt(&cfg)
	}

	n.clearFacilities()

	size := len(n.towns)
	tab := newGreedyTable(size)
	var res GreedyResult

	uncovered := size
	for i := 0; i < size; i++ {
		tab.degree[i] = len(n.adj[i])
		if tab.degree[i] == 0 {
			n.towns[i].setFacility(true)
			tab.assigned[i] = true
			tab.covered[i] = true
			uncovered--
			p := Pick{Town: n.towns[i].name, Isolated: true}
			res.Picks = append(res.Picks, p)
			cfg.onPick(p)
		}
	}

	candidates := make([]int, 0, size)
	for uncovered > 0 {
		// a) unassigned towns of maximum degree, insertion order.
		candidates = candidates[:0]
		maxDegree := -1
		for i := 0; i < size; i++ {
			if tab.assigned[i] {
				continue
			}
			switch d := tab.degree[i]; {
			case d > maxDegree:
				maxDegree = d
				candidates = append(candidates[:0], i)
			case d == maxDegree:
				candidates = append(candidates, i)
			}
		}
		if len(candidates) == 0 {
			// Unreachable: an uncovered town is never assigned.
			break
		}

		// b) best score, first strict maximum wins.
		best, bestScore := -1, math.MinInt
		for _, c := range candidates {
			score := 0
			for _, j := range n.adj[c] {
				if !tab.covered[j] {
					score++
				}
				if tab.assigned[j] {
					score--
				}
			}
			if score > bestScore {
				best, bestScore = c, score
			}
		}

		// c) assign.
		n.towns[best].setFacility(true)
		tab.assigned[best] = true
		if !tab.covered[best] {
			tab.covered[best] = true
			uncovered--
		}

		// d) cover neighbours.
		for _, j := range n.adj[best] {
			if !tab.covered[j] {
				tab.covered[j] = true
				uncovered--
			}
		}

		res.Rounds++
		p := Pick{Town: n.towns[best].name, Degree: tab.degree[best], Score: bestScore}
		res.Picks = append(res.Picks, p)
		cfg.onPick(p)
	}

	return res
}
