// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Deep copy of a Network.

package core

// Clone returns a deep copy of the Network: towns (with facility flags),
// adjacency, road count and phase. Mutating the clone never affects n.
//
// Complexity: O(T + R).
func (n *Network) Clone() *Network {
	c := &Network{
		towns: make([]*Town, len(n.towns)),
		index: make(map[string]int, len(n.index)),
		adj:   make([][]int, len(n.adj)),
		roads: n.roads,
		phase: n.phase,
	}
	for i, t := range n.towns {
		c.towns[i] = &Town{name: t.name, hasFacility: t.hasFacility}
		c.index[t.name] = i
	}
	for i, row := range n.adj {
		if len(row) > 0 {
			c.adj[i] = append([]int(nil), row...)
		}
	}

	return c
}
