// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Town, Network, Phase, sentinel errors and the NewNetwork constructor.
// Policy:
//   - Town flags are mutated only through Network methods.
//   - Adjacency is stored as per-town sorted index lists (insertion-order space).

package core

import "errors"

// Sentinel errors for network construction and facility mutation.
var (
	// ErrEmptyTownName indicates that a town name is the empty string.
	ErrEmptyTownName = errors.New("core: town name is empty")

	// ErrDuplicateTown indicates that a town with the same name already exists.
	ErrDuplicateTown = errors.New("core: duplicate town")

	// ErrTopologyFrozen indicates a town or road was added after the construction phase ended.
	ErrTopologyFrozen = errors.New("core: topology is frozen")

	// ErrUnknownTown indicates an operation referenced a town that does not exist.
	ErrUnknownTown = errors.New("core: unknown town")

	// ErrSelfLoop indicates a road from a town to itself.
	ErrSelfLoop = errors.New("core: road from a town to itself")

	// ErrDuplicateRoad indicates the road already exists.
	ErrDuplicateRoad = errors.New("core: duplicate road")

	// ErrAlreadyPresent indicates the town already hosts a facility.
	ErrAlreadyPresent = errors.New("core: facility already present")

	// ErrNotPresent indicates the town has no facility to remove.
	ErrNotPresent = errors.New("core: facility not present")

	// ErrNoCoveringNeighbor indicates the town has no neighbour with a facility,
	// so removing its own facility would leave it uncovered.
	ErrNoCoveringNeighbor = errors.New("core: no neighbouring town hosts a facility")

	// ErrWouldViolateAccessibility indicates that removing a facility would leave
	// at least one neighbouring town without access. See AccessibilityError.
	ErrWouldViolateAccessibility = errors.New("core: removal would violate accessibility")
)

// Phase is the construction state of a Network.
type Phase uint8

const (
	// PhaseEmpty: no towns yet.
	PhaseEmpty Phase = iota
	// PhaseTowns: towns are being added; no road yet.
	PhaseTowns
	// PhaseRoads: at least one road exists; the town set is frozen.
	PhaseRoads
	// PhaseReady: construction sealed; only facility flags change.
	PhaseReady
)

// String returns a short lower-case label for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseEmpty:
		return "empty"
	case PhaseTowns:
		return "towns"
	case PhaseRoads:
		return "roads"
	case PhaseReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Town is a vertex of the Network.
//
// Name is unique within its Network and never changes. The facility flag is
// owned by the Network; callers read it through HasFacility.
type Town struct {
	name        string
	hasFacility bool
}

// Name returns the town's unique name.
func (t *Town) Name() string { return t.name }

// HasFacility reports whether the town currently hosts a facility.
func (t *Town) HasFacility() bool { return t.hasFacility }

// setFacility toggles the facility flag. Unexported: only Network mutates towns.
func (t *Town) setFacility(v bool) { t.hasFacility = v }

// Network is the in-memory town/road graph together with facility placement.
//
// towns holds records in insertion order; index maps names to positions;
// adj[i] lists neighbour indices of town i in ascending order.
type Network struct {
	towns []*Town
	index map[string]int
	adj   [][]int
	roads int
	phase Phase
}

// NeighborEntry is one row of NeighborsReport.
type NeighborEntry struct {
	Town      string
	Neighbors []string
}

// NewNetwork creates an empty Network in PhaseEmpty.
// Complexity: O(1)
func NewNetwork() *Network {
	return &Network{
		index: make(map[string]int),
		phase: PhaseEmpty,
	}
}
