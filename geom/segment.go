package geom

import "math"

// Segment is a straight line between two planar points (layer ignored; a
// segment never crosses a via by definition — spec.md §3 invariant).
type Segment struct {
	AX, AY, BX, BY float64
}

// NewSegment builds a Segment from two Points, dropping their layers.
func NewSegment(a, b Point) Segment {
	return Segment{AX: a.X, AY: a.Y, BX: b.X, BY: b.Y}
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return Dist2DXY(s.AX, s.AY, s.BX, s.BY)
}

// Cross returns the 2D cross product of (B-A) and (p-A); its sign indicates
// which side of the segment's line p falls on, and it is zero iff p is
// collinear with A and B.
func (s Segment) Cross(px, py float64) float64 {
	return (s.BX-s.AX)*(py-s.AY) - (s.BY-s.AY)*(px-s.AX)
}

// DistanceToPoint returns the shortest distance from (px, py) to the closest
// point on the (finite) segment.
func (s Segment) DistanceToPoint(px, py float64) float64 {
	dx := s.BX - s.AX
	dy := s.BY - s.AY
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return Dist2DXY(s.AX, s.AY, px, py)
	}
	t := ((px-s.AX)*dx + (py-s.AY)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	cx := s.AX + t*dx
	cy := s.AY + t*dy
	return Dist2DXY(cx, cy, px, py)
}

// Intersects reports whether two finite segments cross (including touching
// at an endpoint), using the standard orientation test.
func (s Segment) Intersects(o Segment) bool {
	d1 := o.Cross(s.AX, s.AY)
	d2 := o.Cross(s.BX, s.BY)
	d3 := s.Cross(o.AX, o.AY)
	d4 := s.Cross(o.BX, o.BY)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	const eps = 1e-9
	if math.Abs(d1) < eps && s.onSegment(s.AX, s.AY, o) {
		return true
	}
	if math.Abs(d2) < eps && s.onSegment(s.BX, s.BY, o) {
		return true
	}
	if math.Abs(d3) < eps && o.onSegment(o.AX, o.AY, s) {
		return true
	}
	if math.Abs(d4) < eps && o.onSegment(o.BX, o.BY, s) {
		return true
	}
	return false
}

// onSegment checks a collinear point lies within ref's bounding box.
func (s Segment) onSegment(px, py float64, ref Segment) bool {
	return px >= math_min(ref.AX, ref.BX)-1e-9 && px <= math_max(ref.AX, ref.BX)+1e-9 &&
		py >= math_min(ref.AY, ref.BY)-1e-9 && py <= math_max(ref.AY, ref.BY)+1e-9
}

// ClearanceBetween returns the minimum distance between two finite segments:
// zero if they intersect, otherwise the smallest of the four endpoint-to-
// segment distances. Used by the keepout invariant (spec.md §3/§8 invariant
// 2): two same-layer traces from different root connections must keep at
// least halfWidthA + halfWidthB + obstacleMargin apart.
func ClearanceBetween(a, b Segment) float64 {
	if a.Intersects(b) {
		return 0
	}
	d1 := a.DistanceToPoint(b.AX, b.AY)
	d2 := a.DistanceToPoint(b.BX, b.BY)
	d3 := b.DistanceToPoint(a.AX, a.AY)
	d4 := b.DistanceToPoint(a.BX, a.BY)
	return math.Min(math.Min(d1, d2), math.Min(d3, d4))
}

// Collinear reports whether three points are collinear within tolerance
// tol, using the cross-product test spec.md §4.9c specifies
// ("cross-product < 1e-6").
func Collinear(ax, ay, bx, by, cx, cy, tol float64) bool {
	cross := (bx-ax)*(cy-ay) - (by-ay)*(cx-ax)
	return math.Abs(cross) < tol
}

// PerpendicularOffset returns the point obtained by moving p a distance d
// perpendicular to direction vector (dirX, dirY) (which need not be
// normalized), choosing the side given by sign(sideSign). Used by the trace
// keepout pass (spec.md §4.9d) to compute a draw position off the cursor's
// line of travel.
func PerpendicularOffset(px, py, dirX, dirY, d, sideSign float64) (float64, float64) {
	n := math.Hypot(dirX, dirY)
	if n == 0 {
		return px, py
	}
	// Rotate direction by +90 degrees: (dx,dy) -> (-dy,dx).
	nx := -dirY / n
	ny := dirX / n
	if sideSign < 0 {
		nx, ny = -nx, -ny
	}
	return px + nx*d, py + ny*d
}
