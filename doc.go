// Package schoolnet places schools (facilities) in a network of towns joined
// by roads so that every town either hosts a facility or is one road away
// from a town that does.
//
// The module is organized as:
//
//	core/      Network, Town and Road types, the accessibility invariant,
//	           guarded facility removal and the greedy solver
//	builder/   deterministic generators for test and demo networks
//	codec/     the ville/route/ecole line format (load and save)
//	storage/   filesystem, in-memory and S3 backends for network files
//	internal/  configuration, logging, metrics, the editing session,
//	           the interactive menu and the command line
//	cmd/       the schoolnet binary
//
// Quick example:
//
//	    A───B───C
//
//	n := core.NewNetwork()
//	_ = n.AddTown("A")
//	_ = n.AddTown("B")
//	_ = n.AddTown("C")
//	_ = n.AddRoad("A", "B")
//	_ = n.AddRoad("B", "C")
//	n.Seal()
//	n.SolveGreedy()
//	fmt.Println(n.Facilities()) // [B]
//
// The file format, one record per line:
//
//	ville(A).
//	route(A,B).
//	ecole(B).
//
// Towns come first, then roads, then facilities. A file whose facilities
// leave some town without access is loaded with a facility in every town.
package schoolnet
