// Package highdensity implements per-cell local routing (spec.md §4.7):
// for each mesh cell with assigned port points, classify by intra-node
// crossings and produce either a curvy intra-node polyline set (no
// same-layer crossings) or a jumper-routed solution chosen by a supervisor
// between a force-directed and a prepattern-grid strategy.
//
// Grounded on lvlath/builder's strategy-selection-via-functional-options
// shape for the supervisor. The curve and force-relaxation math is new
// domain code in plain float arithmetic over geom's scalar helpers, in the tangent/offset
// idiom of other_examples' stroke-generation reference file (adapted from
// path-stroking to wall-clearance curve fitting).
package highdensity
