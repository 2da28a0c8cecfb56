// SPDX-License-Identifier: MIT
//
// File: methods_facilities.go
// Role: Facility mutation (set/remove/full coverage) and accessibility checks.
//
// Contract:
//   - SetFacility never needs an invariant check: adding a facility only helps.
//   - RemoveFacility is all-or-nothing: on any failure the state is unchanged.
//   - ApplyFullCoverage always satisfies the accessibility invariant.

package core

import "fmt"

// SetFacility marks name as hosting a facility.
//
// Errors:
//   - ErrUnknownTown: name is not registered.
//   - ErrAlreadyPresent: the town already hosts a facility (state unchanged).
//
// Complexity: O(1).
func (n *Network) SetFacility(name string) error {
	t, err := n.Town(name)
	if err != nil {
		return err
	}
	if t.hasFacility {
		return fmt.Errorf("%w: %q", ErrAlreadyPresent, name)
	}
	t.setFacility(true)

	return nil
}

// RemoveFacility clears the facility of name if, and only if, every town keeps
// access to a facility afterwards.
//
// Implementation:
//   - Stage 1: Resolve the town (ErrUnknownTown) and require a facility (ErrNotPresent).
//   - Stage 2: Require a neighbour with a facility, or the town itself would be
//     uncovered (ErrNoCoveringNeighbor).
//   - Stage 3: Clear the flag tentatively; for every neighbour without its own
//     facility, require some facility among its neighbours.
//   - Stage 4: If any neighbour lost coverage, restore the flag and return an
//     *AccessibilityError naming all of them; otherwise commit.
//
// Errors:
//   - ErrUnknownTown, ErrNotPresent, ErrNoCoveringNeighbor,
//     *AccessibilityError (errors.Is(err, ErrWouldViolateAccessibility)).
//
// Complexity:
//   - Time O(Σ deg(v) for v ∈ N(name)), Space O(affected).
func (n *Network) RemoveFacility(name string) error {
	i, err := n.Index(name)
	if err != nil {
		return err
	}
	t := n.towns[i]
	if !t.hasFacility {
		return fmt.Errorf("%w: %q", ErrNotPresent, name)
	}
	if !n.hasFacilityNeighbor(i) {
		return fmt.Errorf("%w: %q", ErrNoCoveringNeighbor, name)
	}

	t.setFacility(false)

	var affected []string
	for _, j := range n.adj[i] {
		if n.towns[j].hasFacility {
			continue
		}
		if !n.hasFacilityNeighbor(j) {
			affected = append(affected, n.towns[j].name)
		}
	}
	if len(affected) > 0 {
		t.setFacility(true)
		return &AccessibilityError{Town: name, Affected: affected}
	}

	return nil
}

// ApplyFullCoverage gives every town a facility (the naive solution).
// Idempotent. Complexity: O(T).
func (n *Network) ApplyFullCoverage() {
	for _, t := range n.towns {
		t.setFacility(true)
	}
}

// clearFacilities removes every facility flag.
func (n *Network) clearFacilities() {
	for _, t := range n.towns {
		t.setFacility(false)
	}
}

// Facilities returns the names of towns hosting a facility, in insertion order.
func (n *Network) Facilities() []string {
	var out []string
	for _, t := range n.towns {
		if t.hasFacility {
			out = append(out, t.name)
		}
	}
	return out
}

// FacilityCount returns the number of towns hosting a facility.
func (n *Network) FacilityCount() int {
	c := 0
	for _, t := range n.towns {
		if t.hasFacility {
			c++
		}
	}
	return c
}

// IsCovered reports whether name satisfies the accessibility invariant.
func (n *Network) IsCovered(name string) (bool, error) {
	i, err := n.Index(name)
	if err != nil {
		return false, err
	}
	return n.covered(i), nil
}

// Uncovered returns the towns that currently violate the accessibility
// invariant, in insertion order. Empty when the invariant holds.
// Complexity: O(T + R).
func (n *Network) Uncovered() []string {
	var out []string
	for i, t := range n.towns {
		if !n.covered(i) {
			out = append(out, t.name)
		}
	}
	return out
}

// Accessible reports whether every town satisfies the accessibility invariant.
func (n *Network) Accessible() bool {
	for i := range n.towns {
		if !n.covered(i) {
			return false
		}
	}
	return true
}

// EnsureAccessible applies full coverage when any town is uncovered and
// reports whether it had to. This is the loader's fallback rule.
func (n *Network) EnsureAccessible() bool {
	if n.Accessible() {
		return false
	}
	n.ApplyFullCoverage()
	return true
}

// covered is the index-level accessibility test.
func (n *Network) covered(i int) bool {
	return n.towns[i].hasFacility || n.hasFacilityNeighbor(i)
}

// hasFacilityNeighbor reports whether some neighbour of i hosts a facility.
func (n *Network) hasFacilityNeighbor(i int) bool {
	for _, j := range n.adj[i] {
		if n.towns[j].hasFacility {
			return true
		}
	}
	return false
}
