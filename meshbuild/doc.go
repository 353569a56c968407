// Package meshbuild implements CapacityMeshBuilder (spec.md §4.2): tiling
// the board rectangle into axis-aligned cells via rect-difference against
// every obstacle, then recursively halving any cell whose minimum
// dimension still exceeds the depth-derived threshold.
//
// Builder follows the cooperative "construct, then Step()" contract every
// pipeline stage shares (spec.md §5): construction enqueues one unit of
// work per obstacle and one per candidate cell; Step() drains one item at
// a time so a caller can render the mesh mid-build.
package meshbuild
