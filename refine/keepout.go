package refine

import (
	"math"

	"github.com/pcbroute/router/geom"
	"github.com/pcbroute/router/srj"
)

// rectSegments returns a rectangle's four boundary edges.
func rectSegments(r geom.Rect) []geom.Segment {
	return []geom.Segment{
		{AX: r.MinX(), AY: r.MinY(), BX: r.MaxX(), BY: r.MinY()},
		{AX: r.MaxX(), AY: r.MinY(), BX: r.MaxX(), BY: r.MaxY()},
		{AX: r.MaxX(), AY: r.MaxY(), BX: r.MinX(), BY: r.MaxY()},
		{AX: r.MinX(), AY: r.MaxY(), BX: r.MinX(), BY: r.MinY()},
	}
}

func minDistanceToSegs(x, y float64, segs []geom.Segment) float64 {
	if len(segs) == 0 {
		return math.Inf(1)
	}
	best := math.Inf(1)
	for _, s := range segs {
		if d := s.DistanceToPoint(x, y); d < best {
			best = d
		}
	}
	return best
}

// collidingSegments returns the edges of unrelated obstacles and foreign
// same-layer traces within threshold of the cursor (spec.md §4.9d: "within
// 2·keepoutRadius").
func collidingSegments(cursor geom.Point, route Route, obstacles []srj.Obstacle, foreign []Route, threshold float64) []geom.Segment {
	var segs []geom.Segment
	for _, o := range obstacles {
		if obstacleConnectedToRoute(o, route) || !layerContains(o.Layers, cursor.Z) {
			continue
		}
		rect := obstacleRect(o)
		if rect.DistanceToPoint(cursor.X, cursor.Y) > threshold {
			continue
		}
		segs = append(segs, rectSegments(rect)...)
	}
	for _, f := range foreign {
		if f.RootConnectionName == route.RootConnectionName {
			continue
		}
		for j := 1; j < len(f.Points); j++ {
			if f.Points[j-1].Z != cursor.Z || f.Points[j].Z != cursor.Z {
				continue
			}
			seg := geom.NewSegment(f.Points[j-1], f.Points[j])
			if seg.DistanceToPoint(cursor.X, cursor.Y) <= threshold {
				segs = append(segs, seg)
			}
		}
	}
	return segs
}

// drawPosition finds the point on the line perpendicular to (dirX, dirY)
// through cursor, within radius of cursor, that maximizes clearance to
// collSegs (spec.md §4.9d).
func drawPosition(cursor geom.Point, dirX, dirY float64, collSegs []geom.Segment, radius float64) geom.Point {
	best := cursor
	bestClearance := minDistanceToSegs(cursor.X, cursor.Y, collSegs)

	for _, sign := range []float64{1, -1} {
		for _, frac := range []float64{0.25, 0.5, 0.75, 1.0} {
			px, py := geom.PerpendicularOffset(cursor.X, cursor.Y, dirX, dirY, radius*frac, sign)
			if clearance := minDistanceToSegs(px, py, collSegs); clearance > bestClearance {
				bestClearance = clearance
				best = geom.Point{X: px, Y: py, Z: cursor.Z}
			}
		}
	}
	return best
}

// walkRun samples a same-layer run at keepoutStepMM intervals, emitting a
// cursor position (or its re-drawn replacement) at each step.
func walkRun(points []geom.Point, radius float64, route Route, obstacles []srj.Obstacle, foreign []Route) []geom.Point {
	if len(points) < 2 {
		return points
	}

	out := []geom.Point{points[0]}
	segIdx := 0
	segPos := 0.0 // distance already walked into points[segIdx]->points[segIdx+1]

	for segIdx < len(points)-1 {
		a, b := points[segIdx], points[segIdx+1]
		segLen := geom.Dist2DXY(a.X, a.Y, b.X, b.Y)
		if segLen == 0 {
			segIdx++
			segPos = 0
			continue
		}

		segPos += keepoutStepMM
		if segPos >= segLen {
			out = append(out, b)
			segIdx++
			segPos = 0
			continue
		}

		t := segPos / segLen
		cursor := geom.Lerp(a, b, t)
		dirX, dirY := b.X-a.X, b.Y-a.Y

		collSegs := collidingSegments(cursor, route, obstacles, foreign, 2*radius)
		if len(collSegs) == 0 {
			out = append(out, cursor)
			continue
		}
		out = append(out, drawPosition(cursor, dirX, dirY, collSegs, radius))
	}

	return out
}

// RedrawKeepouts applies one pass of spec.md §4.9d's trace-keepout re-draw
// at the given radius, per same-layer run.
func RedrawKeepouts(route Route, obstacles []srj.Obstacle, foreign []Route, radius float64) Route {
	runs := layerRuns(route.Points)
	var out []geom.Point
	for _, r := range runs {
		redrawn := walkRun(route.Points[r.start:r.end+1], radius, route, obstacles, foreign)
		if len(out) > 0 && len(redrawn) > 0 {
			redrawn = redrawn[1:] // drop duplicate of the previous run's last point
		}
		out = append(out, redrawn...)
	}
	route.Points = out
	route.Vias = recomputeVias(out)
	return route
}
