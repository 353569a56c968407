package refine

import (
	"github.com/pcbroute/router/geom"
	"github.com/pcbroute/router/srj"
)

// run is a maximal same-layer span of a Route's Points.
type run struct {
	start, end int
	z          int
}

// layerRuns segments points into maximal same-layer runs (spec.md §4.9a).
func layerRuns(points []geom.Point) []run {
	if len(points) == 0 {
		return nil
	}
	var runs []run
	start := 0
	for i := 1; i <= len(points); i++ {
		if i == len(points) || points[i].Z != points[start].Z {
			runs = append(runs, run{start: start, end: i - 1, z: points[start].Z})
			start = i
		}
	}
	return runs
}

// recomputeVias derives the via list implied by a points sequence: a via
// sits at every index where the layer changes, recorded at that point's
// (x, y) with the pre-transition Z, matching RouteStitch's convention.
func recomputeVias(points []geom.Point) []geom.Point {
	var vias []geom.Point
	for i := 1; i < len(points); i++ {
		if points[i].Z != points[i-1].Z {
			vias = append(vias, geom.Point{X: points[i].X, Y: points[i].Y, Z: points[i-1].Z})
		}
	}
	return vias
}

// RemoveUselessVias attempts to flatten every interior run that is
// sandwiched between two runs on the same layer, eliminating both
// bounding vias, accepting the change only when the run's segments would
// not then collide with an obstacle this route isn't connected to, nor
// pass closer than traceThickness+obstacleMargin to a foreign trace
// (spec.md §4.9a).
func RemoveUselessVias(route Route, obstacles []srj.Obstacle, foreign []Route, margin float64) Route {
	points := append([]geom.Point(nil), route.Points...)
	runs := layerRuns(points)

	for i := 1; i < len(runs)-1; i++ {
		before, cur, after := runs[i-1], runs[i], runs[i+1]
		if before.z != after.z || before.z == cur.z {
			continue
		}

		candidate := append([]geom.Point(nil), points...)
		for j := cur.start; j <= cur.end; j++ {
			candidate[j].Z = before.z
		}

		if runCollides(candidate, cur.start, cur.end, before.z, route, obstacles, foreign, margin) {
			continue
		}
		points = candidate
		runs = layerRuns(points)
	}

	route.Points = points
	route.Vias = recomputeVias(points)
	return route
}

// runCollides reports whether the segments spanning [startIdx, endIdx] on
// layer z would, after a via-removal flatten, hit an unrelated obstacle or
// come too close to a foreign trace on the same layer.
func runCollides(points []geom.Point, startIdx, endIdx, z int, route Route, obstacles []srj.Obstacle, foreign []Route, margin float64) bool {
	if endIdx <= startIdx {
		return false
	}
	clearanceNeeded := route.TraceWidth/2 + margin

	for i := startIdx; i < endIdx; i++ {
		seg := geom.NewSegment(points[i], points[i+1])

		for _, o := range obstacles {
			if obstacleConnectedToRoute(o, route) || !layerContains(o.Layers, z) {
				continue
			}
			rect := obstacleRect(o)
			if rect.DistanceToPoint(seg.AX, seg.AY) < clearanceNeeded ||
				rect.DistanceToPoint(seg.BX, seg.BY) < clearanceNeeded {
				return true
			}
			for _, edge := range rectSegments(rect) {
				if geom.ClearanceBetween(seg, edge) < clearanceNeeded {
					return true
				}
			}
		}

		for _, f := range foreign {
			if f.RootConnectionName == route.RootConnectionName {
				continue
			}
			need := route.TraceWidth/2 + f.TraceWidth/2 + margin
			for j := 1; j < len(f.Points); j++ {
				if f.Points[j-1].Z != z || f.Points[j].Z != z {
					continue
				}
				fseg := geom.NewSegment(f.Points[j-1], f.Points[j])
				if geom.ClearanceBetween(seg, fseg) < need {
					return true
				}
			}
		}
	}
	return false
}

func layerContains(layers []int, z int) bool {
	for _, l := range layers {
		if l == z {
			return true
		}
	}
	return false
}

// MergeSameNetVias deduplicates co-located vias on a single route (spec.md
// §4.9b): once per-root routes are stitched into one polyline, "same-net
// merging" reduces to collapsing any via pair RouteStitch or an earlier
// refinement pass placed at (nearly) the same (x, y).
func MergeSameNetVias(route Route) Route {
	route.Vias = recomputeVias(route.Points)

	var merged []geom.Point
	for _, v := range route.Vias {
		dup := false
		for _, m := range merged {
			if geom.Dist2DXY(v.X, v.Y, m.X, m.Y) < viaQuantizeMM {
				dup = true
				break
			}
		}
		if !dup {
			merged = append(merged, v)
		}
	}
	route.Vias = merged
	return route
}
