// Package segments implements SegmentPoints (spec.md §4.5): for every
// shared cell boundary, place ⌊L / (traceWidth·2)⌋ port-point candidates,
// spaced uniformly, each recording distToCentermostPortOnZ. These port
// points are the atoms PortPointPathing (package astar) chooses between.
//
// Grounded on lvlath/gridgraph's pattern of precomputing per-cell geometry
// once at construction and exposing it by index rather than recomputing on
// every query.
package segments
