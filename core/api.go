// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only reports over a Network (coverage, neighbourhoods, debug dump).
// Policy:
//   - No mutation here; every function returns a fresh snapshot.
//   - Enumeration order is town insertion order.

package core

import (
	"bufio"
	"fmt"
	"io"
)

// CoverageReport returns the names of towns that host a facility.
//
// Returns:
//   - []string: a set by contract, listed in insertion order for stable rendering.
//
// Complexity:
//   - Time O(T), Space O(F).
func (n *Network) CoverageReport() []string {
	return n.Facilities()
}

// NeighborsReport returns, for every town in insertion order, the names of its
// neighbours in insertion order.
//
// Behavior highlights:
//   - Towns without roads appear with an empty (non-nil) neighbour list.
//   - Returned slices are independent of the Network's internal storage.
//
// Complexity:
//   - Time O(T + R), Space O(T + R).
func (n *Network) NeighborsReport() []NeighborEntry {
	out := make([]NeighborEntry, len(n.towns))
	for i, t := range n.towns {
		out[i] = NeighborEntry{Town: t.name, Neighbors: n.names(n.adj[i])}
	}
	return out
}

// Dump writes a human-readable debug view: towns with their indices, the
// adjacency matrix (1 = road) and the towns hosting a facility.
func (n *Network) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "Towns:")
	for i, t := range n.towns {
		fmt.Fprintf(bw, "  %d: %s\n", i, t.name)
	}

	fmt.Fprintln(bw, "Adjacency:")
	for i := range n.towns {
		bw.WriteString(" ")
		for j := range n.towns {
			if n.hasRoad(i, j) {
				bw.WriteString(" 1")
			} else {
				bw.WriteString(" 0")
			}
		}
		bw.WriteString("\n")
	}

	fmt.Fprintf(bw, "Facilities: %v\n", n.Facilities())

	return bw.Flush()
}
