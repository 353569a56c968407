// Package netsplit implements NetToPointPairs (spec.md §4.1): reducing a
// multi-point Connection to a minimum spanning tree of two-point
// sub-connections, with an optional off-board substitution pass that
// re-targets sub-connection endpoints onto the closest pair of an
// off-board-equivalent pad group.
//
// The MST step is grounded on lvlath/tsp's dense-matrix Prim
// (tsp/mst.go), adapted from a distance matrix to raw point coordinates.
// The off-board equivalence classes use the same union-find shape as
// lvlath/prim_kruskal's Kruskal (path compression + union by rank).
package netsplit
