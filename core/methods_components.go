// SPDX-License-Identifier: MIT
//
// File: methods_components.go
// Role: Connected components by breadth-first traversal.
//
// Determinism:
//   - Components are ordered by their first town in insertion order; towns
//     inside a component appear in BFS visit order from that first town.

package core

// Components partitions the towns into groups connected by roads.
// An isolated town forms its own component.
//
// Complexity:
//   - Time O(T + R), Space O(T).
func (n *Network) Components() [][]string {
	visited := make([]bool, len(n.towns))
	var out [][]string

	for start := range n.towns {
		if visited[start] {
			continue
		}
		out = append(out, n.walk(start, visited))
	}
	return out
}

// ComponentCount returns len(Components()) without building name lists.
func (n *Network) ComponentCount() int {
	visited := make([]bool, len(n.towns))
	c := 0
	for start := range n.towns {
		if visited[start] {
			continue
		}
		n.walk(start, visited)
		c++
	}
	return c
}

// walk visits every town reachable from start, marking visited, and returns
// their names in visit order.
func (n *Network) walk(start int, visited []bool) []string {
	queue := []int{start}
	visited[start] = true
	var order []string

	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		order = append(order, n.towns[i].name)

		for _, j := range n.adj[i] {
			if visited[j] {
				continue
			}
			visited[j] = true
			queue = append(queue, j)
		}
	}
	return order
}
