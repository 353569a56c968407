// Package meshmodel defines the capacity-mesh arena: CapacityMeshNode
// (cell) and CapacityMeshEdge types, stored as flat slices indexed by a
// small integer ID with adjacency looked up by ID rather than pointer
// (spec.md §9: "represent it as a flat arena of cells plus an adjacency
// list keyed by cell ID; never by reference").
//
// Mesh is thread-safe the way lvlath/core.Graph is: separate RWMutexes
// guard the node catalog and the edge/adjacency tables, so a HighDensity
// solver fan-out (spec.md §5) can read node/edge data from worker
// goroutines while later stages extend the arena.
package meshmodel
