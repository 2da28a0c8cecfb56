// SPDX-License-Identifier: MIT
//
// File: methods_roads.go
// Role: Road lifecycle & neighbourhood queries.
//
// Determinism:
//   - Neighbors() and Roads() enumerate in town insertion order.
//
// Invariants:
//   - adj[i] is sorted ascending and never contains i.
//   - j ∈ adj[i] ⇔ i ∈ adj[j].

package core

import (
	"fmt"
	"sort"
)

// Road is an undirected road between the towns at indices A < B.
type Road struct {
	A, B int
}

// AddRoad connects towns a and b with a symmetric road.
//
// Implementation:
//   - Stage 1: Reject once sealed (ErrTopologyFrozen).
//   - Stage 2: Resolve both names (ErrUnknownTown).
//   - Stage 3: Reject a == b (ErrSelfLoop) and existing roads (ErrDuplicateRoad).
//   - Stage 4: Insert each index into the other's sorted adjacency row.
//   - Stage 5: Freeze the town set (PhaseRoads) on the first successful road.
//
// Errors:
//   - ErrTopologyFrozen, ErrUnknownTown, ErrSelfLoop, ErrDuplicateRoad.
//
// Complexity:
//   - Time O(deg(a)+deg(b)), Space O(1) amortized.
func (n *Network) AddRoad(a, b string) error {
	if n.phase == PhaseReady {
		return fmt.Errorf("%w: cannot add road %s-%s after construction", ErrTopologyFrozen, a, b)
	}
	ia, ok := n.index[a]
	if !ok {
		return unknownTown(a)
	}
	ib, ok := n.index[b]
	if !ok {
		return unknownTown(b)
	}
	if ia == ib {
		return fmt.Errorf("%w: %q", ErrSelfLoop, a)
	}
	if n.hasRoad(ia, ib) {
		return fmt.Errorf("%w: %s-%s", ErrDuplicateRoad, a, b)
	}

	n.adj[ia] = insertSorted(n.adj[ia], ib)
	n.adj[ib] = insertSorted(n.adj[ib], ia)
	n.roads++
	n.phase = PhaseRoads

	return nil
}

// HasRoad reports whether a road joins a and b. Unknown names yield false.
func (n *Network) HasRoad(a, b string) bool {
	ia, okA := n.index[a]
	ib, okB := n.index[b]
	if !okA || !okB {
		return false
	}
	return n.hasRoad(ia, ib)
}

// RoadCount returns the number of undirected roads.
func (n *Network) RoadCount() int { return n.roads }

// Degree returns the number of neighbours of name.
func (n *Network) Degree(name string) (int, error) {
	i, err := n.Index(name)
	if err != nil {
		return 0, err
	}
	return len(n.adj[i]), nil
}

// Neighbors returns the neighbour names of name in insertion order.
func (n *Network) Neighbors(name string) ([]string, error) {
	i, err := n.Index(name)
	if err != nil {
		return nil, err
	}
	return n.names(n.adj[i]), nil
}

// Roads returns every road once, as index pairs with A < B, ordered by (A, B).
// This is the order the saver emits roads in.
// Complexity: O(T + R).
func (n *Network) Roads() []Road {
	out := make([]Road, 0, n.roads)
	for i, row := range n.adj {
		for _, j := range row {
			if j > i {
				out = append(out, Road{A: i, B: j})
			}
		}
	}
	return out
}

// hasRoad is the index-level membership test (binary search on the sorted row).
func (n *Network) hasRoad(i, j int) bool {
	row := n.adj[i]
	k := sort.SearchInts(row, j)
	return k < len(row) && row[k] == j
}

// names maps indices to town names.
func (n *Network) names(idx []int) []string {
	out := make([]string, len(idx))
	for k, i := range idx {
		out[k] = n.towns[i].name
	}
	return out
}

// insertSorted inserts v into the ascending slice row (v must be absent).
func insertSorted(row []int, v int) []int {
	k := sort.SearchInts(row, v)
	row = append(row, 0)
	copy(row[k+1:], row[k:])
	row[k] = v
	return row
}
