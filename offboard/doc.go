// Package offboard implements OffBoardNodeRelator (spec.md §4.3): for
// every obstacle declaring an off-board electrical equivalence, locate the
// mesh cells collocated with it and union their off-board identity so A*
// can later treat crossing between them as a free teleportation hop.
//
// Grounded on lvlath/prim_kruskal.Kruskal's union-find (path compression +
// union by rank), generalized from vertex-ID strings to meshmodel.NodeID,
// and on lvlath/gridgraph's connected-component labelling API shape for
// exposing the resulting groups.
package offboard
