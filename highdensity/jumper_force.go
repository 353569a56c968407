package highdensity

import "github.com/pcbroute/router/geom"

// borderMarginMM keeps a control point clear of the cell wall during
// force-directed relaxation.
const borderMarginMM = 0.3

// pointRepulsionStrength scales how strongly two different-root control
// points push each other apart.
const pointRepulsionStrength = 0.05

// solveForceDirected places two movable control points per net and relaxes
// them under border repulsion and point repulsion between differently
// rooted nets, vetoing any move that would newly cross another net's
// current polyline (spec.md §4.7 force-directed strategy).
func solveForceDirected(cell Cell, opts Options) Solution {
	n := len(cell.Nets)
	controls := make([][2]geom.Point, n)
	for i, net := range cell.Nets {
		controls[i][0] = geom.Lerp(net.A, net.B, 1.0/3)
		controls[i][1] = geom.Lerp(net.A, net.B, 2.0/3)
	}

	iterations := opts.MaxForceIterations
	if iterations <= 0 {
		iterations = 1
	}

	for iter := 0; iter < iterations; iter++ {
		for i := range cell.Nets {
			for k := 0; k < 2; k++ {
				proposed := relax(cell, controls, i, k)
				if !wouldCross(cell, controls, i, k, proposed) {
					controls[i][k] = proposed
				}
			}
		}
	}

	polylines := make([]Polyline, n)
	for i, net := range cell.Nets {
		polylines[i] = Polyline{
			RootConnectionName: net.RootConnectionName,
			Z:                  net.Z,
			Points:             []geom.Point{net.A, controls[i][0], controls[i][1], net.B},
		}
	}

	return Solution{
		Polylines:  polylines,
		Unrouted:   countRemainingCrossings(cell, polylines),
		Iterations: iterations,
	}
}

// relax computes one candidate next position for net i's k-th control
// point: pulled toward the straight chord, pushed inward off the cell
// border, and pushed away from other nets' control points.
func relax(cell Cell, controls [][2]geom.Point, i, k int) geom.Point {
	net := cell.Nets[i]
	p := controls[i][k]
	straight := geom.Lerp(net.A, net.B, float64(k+1)/3)

	fx := (straight.X - p.X) * 0.3
	fy := (straight.Y - p.Y) * 0.3

	if d := p.X - cell.MinX; d < borderMarginMM {
		fx += borderMarginMM - d
	}
	if d := cell.MaxX - p.X; d < borderMarginMM {
		fx -= borderMarginMM - d
	}
	if d := p.Y - cell.MinY; d < borderMarginMM {
		fy += borderMarginMM - d
	}
	if d := cell.MaxY - p.Y; d < borderMarginMM {
		fy -= borderMarginMM - d
	}

	for j := range cell.Nets {
		if j == i || cell.Nets[j].RootConnectionName == net.RootConnectionName {
			continue
		}
		for _, q := range controls[j] {
			dx := p.X - q.X
			dy := p.Y - q.Y
			dist2 := dx*dx + dy*dy
			if dist2 < 1e-6 {
				continue
			}
			scale := pointRepulsionStrength / dist2
			fx += dx * scale
			fy += dy * scale
		}
	}

	return geom.Point{X: p.X + fx, Y: p.Y + fy, Z: p.Z}
}

// wouldCross reports whether replacing controls[i][k] with proposed would
// make net i's polyline cross another net's current polyline on the same
// layer.
func wouldCross(cell Cell, controls [][2]geom.Point, i, k int, proposed geom.Point) bool {
	trial := controls[i]
	trial[k] = proposed
	segs := polySegments(cell.Nets[i], trial)

	for j := range cell.Nets {
		if j == i || cell.Nets[j].Z != cell.Nets[i].Z {
			continue
		}
		otherSegs := polySegments(cell.Nets[j], controls[j])
		for _, a := range segs {
			for _, b := range otherSegs {
				if a.Intersects(b) {
					return true
				}
			}
		}
	}
	return false
}

func polySegments(net NetCrossing, ctrl [2]geom.Point) []geom.Segment {
	return []geom.Segment{
		geom.NewSegment(net.A, ctrl[0]),
		geom.NewSegment(ctrl[0], ctrl[1]),
		geom.NewSegment(ctrl[1], net.B),
	}
}

func countRemainingCrossings(cell Cell, polylines []Polyline) int {
	bad := make(map[int]bool)
	for i := 0; i < len(polylines); i++ {
		for j := i + 1; j < len(polylines); j++ {
			if polylines[i].Z != polylines[j].Z {
				continue
			}
			if polylineCross(polylines[i], polylines[j]) {
				bad[i] = true
				bad[j] = true
			}
		}
	}
	return len(bad)
}

func polylineCross(a, b Polyline) bool {
	for i := 0; i+1 < len(a.Points); i++ {
		sa := geom.NewSegment(a.Points[i], a.Points[i+1])
		for j := 0; j+1 < len(b.Points); j++ {
			sb := geom.NewSegment(b.Points[j], b.Points[j+1])
			if sa.Intersects(sb) {
				return true
			}
		}
	}
	return false
}
