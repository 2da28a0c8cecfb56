// SPDX-License-Identifier: MIT
//
// File: methods_towns.go
// Role: Town lifecycle & queries, construction phase transitions.
//
// Determinism:
//   - Towns() returns names in insertion order.

package core

import "fmt"

// AddTown appends a new town named name.
//
// Implementation:
//   - Stage 1: Validate non-empty name (ErrEmptyTownName).
//   - Stage 2: Reject once the town set is frozen (ErrTopologyFrozen).
//   - Stage 3: Reject duplicates (ErrDuplicateTown).
//   - Stage 4: Append the record, register its index, allocate an empty adjacency row.
//
// Errors:
//   - ErrEmptyTownName, ErrTopologyFrozen, ErrDuplicateTown.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (n *Network) AddTown(name string) error {
	if name == "" {
		return ErrEmptyTownName
	}
	if n.phase >= PhaseRoads {
		return fmt.Errorf("%w: cannot add town %q in phase %s", ErrTopologyFrozen, name, n.phase)
	}
	if _, exists := n.index[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateTown, name)
	}

	n.index[name] = len(n.towns)
	n.towns = append(n.towns, &Town{name: name})
	n.adj = append(n.adj, nil)
	n.phase = PhaseTowns

	return nil
}

// Seal ends the construction phase. Afterwards AddTown and AddRoad return
// ErrTopologyFrozen. Sealing twice is a no-op.
func (n *Network) Seal() { n.phase = PhaseReady }

// Phase reports the current construction phase.
func (n *Network) Phase() Phase { return n.phase }

// TownCount returns the number of towns.
func (n *Network) TownCount() int { return len(n.towns) }

// HasTown reports whether a town named name exists.
func (n *Network) HasTown(name string) bool {
	_, ok := n.index[name]
	return ok
}

// Index returns the insertion index of name, or ErrUnknownTown.
func (n *Network) Index(name string) (int, error) {
	i, ok := n.index[name]
	if !ok {
		return -1, unknownTown(name)
	}
	return i, nil
}

// Town returns the town record for name. The record is read-only for callers:
// its facility flag can only change through Network methods.
func (n *Network) Town(name string) (*Town, error) {
	i, err := n.Index(name)
	if err != nil {
		return nil, err
	}
	return n.towns[i], nil
}

// Towns returns all town names in insertion order.
// Complexity: O(T).
func (n *Network) Towns() []string {
	out := make([]string, len(n.towns))
	for i, t := range n.towns {
		out[i] = t.name
	}
	return out
}
