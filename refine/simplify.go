package refine

import (
	"github.com/pcbroute/router/geom"
	"github.com/pcbroute/router/srj"
)

// SimplifyPath removes collinear interior points from each same-layer run
// of a route's polyline (spec.md §4.9c), skipping any removal whose
// straight-line shortcut would cross an obstacle this route isn't
// connected to.
func SimplifyPath(route Route, obstacles []srj.Obstacle, margin float64) Route {
	points := route.Points
	if len(points) < 3 {
		return route
	}

	out := []geom.Point{points[0]}
	for i := 1; i < len(points)-1; i++ {
		prev := out[len(out)-1]
		cur := points[i]
		next := points[i+1]

		if cur.Z != prev.Z || cur.Z != next.Z {
			out = append(out, cur)
			continue
		}

		if geom.Collinear(prev.X, prev.Y, cur.X, cur.Y, next.X, next.Y, collinearCrossTol) &&
			!shortcutObstructed(prev, next, cur.Z, route, obstacles, margin) {
			continue // drop cur: prev-next stands in for prev-cur-next
		}
		out = append(out, cur)
	}
	out = append(out, points[len(points)-1])

	route.Points = out
	route.Vias = recomputeVias(out)
	return route
}

// shortcutObstructed samples along the candidate shortcut segment and
// rejects it if any sample comes closer to an unrelated obstacle than the
// route's half-width plus margin.
func shortcutObstructed(a, b geom.Point, z int, route Route, obstacles []srj.Obstacle, margin float64) bool {
	const samples = 5
	clearanceNeeded := route.TraceWidth/2 + margin

	for _, o := range obstacles {
		if obstacleConnectedToRoute(o, route) || !layerContains(o.Layers, z) {
			continue
		}
		rect := obstacleRect(o)
		for s := 0; s <= samples; s++ {
			t := float64(s) / samples
			p := geom.Lerp(a, b, t)
			if rect.DistanceToPoint(p.X, p.Y) < clearanceNeeded {
				return true
			}
		}
	}
	return false
}
