// Package geom provides the immutable 2D/layered geometry primitives shared
// by every stage of the autorouting pipeline: points on a copper layer,
// axis-aligned rectangles (pads, keep-outs, cells), and the segment/rect
// math (distance, intersection, clearance, rect-difference) the mesh
// builder, A* pathing, and refinement passes all depend on.
//
// Every type here is a small value type with pure methods — no shared
// mutable state, no locking. Downstream packages hold these by value or by
// read-only reference; nothing in geom mutates its receiver.
package geom
