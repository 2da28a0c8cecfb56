// Package core models a set of towns joined by roads and decides which towns
// host a school so that every town can reach one.
//
// The Network N = (T,R) is a simple undirected graph:
//
//   - Towns are kept in insertion order; that order is the index space used by
//     every query, report and algorithm (deterministic output by construction).
//   - Roads are symmetric and irreflexive; duplicates and self-loops are rejected.
//   - Each town carries a single facility flag ("has a school").
//
// Accessibility invariant:
//
//	for every town t: t has a facility, or some neighbour of t has one.
//
// Lifecycle (Phase):
//
//	PhaseEmpty ──AddTown──▶ PhaseTowns ──AddRoad──▶ PhaseRoads ──Seal──▶ PhaseReady
//	                              └──────────────────Seal──────────────────▲
//
// Once the first road is added no further towns may be added; once sealed the
// topology never changes again and only facility flags move.
//
// Core Methods:
//
//	// Construction
//	AddTown(name string) error                // O(1)
//	AddRoad(a, b string) error                // O(deg)
//	Seal()                                    // O(1)
//
//	// Facilities
//	SetFacility(name string) error            // O(1)
//	RemoveFacility(name string) error         // O(Σ deg of neighbours)
//	ApplyFullCoverage()                       // O(T)
//	SolveGreedy(opts ...GreedyOption) GreedyResult
//
//	// Queries
//	CoverageReport() []string                 // towns with a facility
//	NeighborsReport() []NeighborEntry         // town → neighbours, insertion order
//	Uncovered() []string                      // towns breaking the invariant
//
// Errors:
//
//	ErrEmptyTownName             – zero-length town name
//	ErrDuplicateTown             – name already registered
//	ErrTopologyFrozen            – town/road added after the construction phase ended
//	ErrUnknownTown               – name not registered
//	ErrSelfLoop                  – road from a town to itself
//	ErrDuplicateRoad             – road already present
//	ErrAlreadyPresent            – town already hosts a facility
//	ErrNotPresent                – town has no facility to remove
//	ErrNoCoveringNeighbor        – removal would leave the town itself uncovered
//	ErrWouldViolateAccessibility – removal would leave a neighbour uncovered
//	                               (returned as *AccessibilityError)
//
// Concurrency: a Network is not safe for concurrent mutation. Hosts that share
// one across goroutines must serialize access themselves.
package core
