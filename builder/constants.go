// SPDX-License-Identifier: MIT

// Package builder defines shared constants used by the network constructors.
package builder

//-----------------------------------------------------------------------------
// Constructor names, used to prefix errors with context.
//-----------------------------------------------------------------------------

const (
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodStar         = "Star"
	methodWheel        = "Wheel"
	methodComplete     = "Complete"
	methodGrid         = "Grid"
	methodIsolated     = "Isolated"
	methodRandomSparse = "RandomSparse"
	methodBuild        = "BuildNetwork"
)

//-----------------------------------------------------------------------------
// Town ID defaults
//-----------------------------------------------------------------------------

// CenterTownID is the fixed name of the hub town in Star and Wheel.
const CenterTownID = "Center"

// gridIDFmt renders grid coordinates. Commas are reserved by the network file
// format, so rows and columns are joined with an underscore.
const gridIDFmt = "%d_%d"

//-----------------------------------------------------------------------------
// Minimum town counts
//-----------------------------------------------------------------------------

const (
	// MinPathTowns is the smallest path with at least one road.
	MinPathTowns = 2
	// MinCycleTowns is the smallest ring without loops or parallel roads.
	MinCycleTowns = 3
	// MinStarTowns is one hub plus one leaf.
	MinStarTowns = 2
	// MinWheelTowns is a three-town ring plus its hub.
	MinWheelTowns = 4
	// MinCompleteTowns allows the trivial K_1.
	MinCompleteTowns = 1
	// MinGridDim applies to rows and cols separately.
	MinGridDim = 1
	// MinIsolatedTowns is a single town.
	MinIsolatedTowns = 1
	// MinRandomSparseTowns is a single town.
	MinRandomSparseTowns = 1
)

// Probability bounds for RandomSparse, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
