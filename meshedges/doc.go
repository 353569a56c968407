// Package meshedges implements CapacityMeshEdges (spec.md §4.4): connect
// adjacent cells of a built mesh into a graph, one edge per touching cell
// pair plus an additional off-board bridge edge for every pair of cells
// sharing an off-board union.
//
// Grounded on lvlath/core's AddEdge shape (endpoint validation, then store
// and link adjacency) generalized from string vertex IDs to meshmodel's
// NodeID arena indices.
package meshedges
