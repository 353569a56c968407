package refine

import (
	"math"

	"github.com/pcbroute/router/geom"
	"github.com/pcbroute/router/srj"
)

// sampleCursors walks a same-layer run at step intervals, returning the
// cursor position (with its run's Z) at each step, including both ends.
func sampleCursors(points []geom.Point, step float64) []geom.Point {
	if len(points) < 2 {
		return points
	}
	var out []geom.Point
	for i := 0; i < len(points)-1; i++ {
		a, b := points[i], points[i+1]
		segLen := geom.Dist2DXY(a.X, a.Y, b.X, b.Y)
		out = append(out, a)
		if segLen == 0 {
			continue
		}
		for d := step; d < segLen; d += step {
			out = append(out, geom.Lerp(a, b, d/segLen))
		}
	}
	out = append(out, points[len(points)-1])
	return out
}

// minClearanceAlongRoute returns the smallest distance from the route's
// polyline to any unrelated obstacle or foreign same-layer trace, sampled
// every widthStepMM (spec.md §4.9e).
func minClearanceAlongRoute(route Route, obstacles []srj.Obstacle, foreign []Route) float64 {
	minC := math.Inf(1)
	for _, r := range layerRuns(route.Points) {
		for _, cursor := range sampleCursors(route.Points[r.start:r.end+1], widthStepMM) {
			for _, o := range obstacles {
				if obstacleConnectedToRoute(o, route) || !layerContains(o.Layers, cursor.Z) {
					continue
				}
				if d := obstacleRect(o).DistanceToPoint(cursor.X, cursor.Y); d < minC {
					minC = d
				}
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
					if d := seg.DistanceToPoint(cursor.X, cursor.Y); d < minC {
						minC = d
					}
				}
			}
		}
	}
	return minC
}

// AssignTraceWidth picks the widest width from opts' schedule whose
// half-width plus ObstacleMargin never exceeds the route's minimum
// clearance, falling back to MinTraceWidth (spec.md §4.9e).
func AssignTraceWidth(route Route, obstacles []srj.Obstacle, foreign []Route, opts Options) Route {
	minClearance := minClearanceAlongRoute(route, obstacles, foreign)

	for _, w := range opts.widthSchedule() {
		if w/2+opts.ObstacleMargin <= minClearance {
			route.TraceWidth = w
			return route
		}
	}
	route.TraceWidth = opts.MinTraceWidth
	return route
}
