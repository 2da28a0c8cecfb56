// SPDX-License-Identifier: MIT

package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/schoolnet/core"
)

// ExampleNetwork builds a small path, solves it and inspects the result.
func ExampleNetwork() {
	// 1) Towns first, then roads (the town set freezes on the first road):
	n := core.NewNetwork()
	for _, name := range []string{"X", "Y", "Z"} {
		_ = n.AddTown(name)
	}
	_ = n.AddRoad("X", "Y")
	_ = n.AddRoad("Y", "Z")
	n.Seal()

	// 2) Greedy placement:
	n.SolveGreedy()
	fmt.Println("Facilities:", n.CoverageReport())

	// 3) Y is the only facility; removing it would strand X and Z:
	err := n.RemoveFacility("Y")
	fmt.Println("rejected:", errors.Is(err, core.ErrNoCoveringNeighbor))

	// Output:
	// Facilities: [Y]
	// rejected: true
}

// ExampleNetwork_RemoveFacility shows the affected towns of a rejected removal.
func ExampleNetwork_RemoveFacility() {
	n := core.NewNetwork()
	for _, name := range []string{"X", "Y", "Z", "W"} {
		_ = n.AddTown(name)
	}
	_ = n.AddRoad("X", "Y")
	_ = n.AddRoad("Y", "Z")
	_ = n.AddRoad("Y", "W")
	n.Seal()
	_ = n.SetFacility("Y")
	_ = n.SetFacility("W")

	var aerr *core.AccessibilityError
	if errors.As(n.RemoveFacility("Y"), &aerr) {
		fmt.Println("would strand:", aerr.Affected)
	}
	fmt.Println("still:", n.CoverageReport())

	// Output:
	// would strand: [X Z]
	// still: [Y W]
}
