package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a location on a specific copper layer. Z is a zero-based layer
// index: 0 is the top layer, layerCount-1 is the bottom layer.
type Point struct {
	X, Y float64
	Z    int
}

// Vec projects Point onto the XY plane, discarding the layer, for use with
// gonum's r2 vector math (distance, dot/cross products).
func (p Point) Vec() r2.Vec { return r2.Vec{X: p.X, Y: p.Y} }

// SameXY reports whether two points share the same (x, y) regardless of
// layer. A via is exactly a pair of consecutive route points with SameXY
// true and differing Z (spec.md §3 invariant).
func (p Point) SameXY(o Point) bool {
	return p.X == o.X && p.Y == o.Y
}

// Dist2D returns the planar Euclidean distance between p and o, ignoring layer.
func Dist2D(p, o Point) float64 {
	return r2.Norm(r2.Sub(p.Vec(), o.Vec()))
}

// Dist2DXY is Dist2D for raw coordinate pairs, used where no Point exists yet
// (e.g. candidate port-point placement before a layer is assigned).
func Dist2DXY(ax, ay, bx, by float64) float64 {
	return math.Hypot(bx-ax, by-ay)
}

// Lerp returns the point a fraction t ∈ [0,1] of the way from a to b on the
// plane, keeping a's layer (callers reassign Z when crossing a via).
func Lerp(a, b Point, t float64) Point {
	return Point{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		Z: a.Z,
	}
}

// Quantize rounds a coordinate to the nearest multiple of step, used to key
// route-island endpoints for stitching (spec.md §4.8: "quantized to 0.01mm").
func Quantize(v, step float64) float64 {
	return math.Round(v/step) * step
}
