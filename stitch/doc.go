// Package stitch implements RouteStitch (spec.md §4.8): for each
// rootConnectionName, build a connectivity graph of per-cell route
// islands keyed by shared endpoints (quantized to 0.01mm), walk each
// connected component to find its two unique endpoints, and concatenate
// islands into one long polyline, emitting a via at every layer
// transition.
//
// Grounded on lvlath/gridgraph's BFS-based ConnectedComponents: the same
// visited-set-plus-queue shape, generalized from grid-cell adjacency to
// quantized-point identity.
package stitch
