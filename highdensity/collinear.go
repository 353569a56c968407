package highdensity

import "github.com/pcbroute/router/geom"

const collinearTolerance = 1e-6

// resolveCollinearOverlaps is the prepattern collinear-overlap post-process
// (spec.md §4.7): when two polylines (or two segments of one polyline) are
// collinear and overlap, it inserts a perpendicular offset of
// collinearOffsetMM into the outer (containing) segment so RouteStitch does
// not fuse them.
func resolveCollinearOverlaps(polylines []Polyline) []Polyline {
	out := make([]Polyline, len(polylines))
	copy(out, polylines)

	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[i].Z != out[j].Z {
				continue
			}
			offsetOverlap(&out[i], &out[j])
		}
	}
	return out
}

// offsetOverlap scans each pair of segments once; an offset it inserts
// lengthens the outer polyline, which can shift later segment indices
// within this same call. Acceptable here since one cell's overlaps are
// rarely more than a couple of segments deep.
func offsetOverlap(a, b *Polyline) {
	for si := 0; si+1 < len(a.Points); si++ {
		for sj := 0; sj+1 < len(b.Points); sj++ {
			p1, p2 := a.Points[si], a.Points[si+1]
			q1, q2 := b.Points[sj], b.Points[sj+1]
			if !collinearOverlap(p1, p2, q1, q2) {
				continue
			}
			// The segment spanning the wider extent is the "outer"
			// (containing) one; nudge its midpoint off the shared line.
			outer, seg := pickOuter(a, si, b, sj)
			dirX := seg.BX - seg.AX
			dirY := seg.BY - seg.AY
			mx := (seg.AX + seg.BX) / 2
			my := (seg.AY + seg.BY) / 2
			ox, oy := geom.PerpendicularOffset(mx, my, dirX, dirY, collinearOffsetMM, 1)
			insertMidpoint(outer, ox, oy, seg)
		}
	}
}

func collinearOverlap(p1, p2, q1, q2 geom.Point) bool {
	if !geom.Collinear(p1.X, p1.Y, p2.X, p2.Y, q1.X, q1.Y, collinearTolerance) {
		return false
	}
	if !geom.Collinear(p1.X, p1.Y, p2.X, p2.Y, q2.X, q2.Y, collinearTolerance) {
		return false
	}
	pSeg := geom.NewSegment(p1, p2)
	qSeg := geom.NewSegment(q1, q2)
	return pSeg.DistanceToPoint(q1.X, q1.Y) < collinearTolerance*1e3 || pSeg.Intersects(qSeg)
}

// pickOuter returns whichever of the two collinear segments is longer
// (the one containing the other), along with its endpoints as a Segment.
func pickOuter(a *Polyline, si int, b *Polyline, sj int) (*Polyline, geom.Segment) {
	segA := geom.NewSegment(a.Points[si], a.Points[si+1])
	segB := geom.NewSegment(b.Points[sj], b.Points[sj+1])
	if segA.Length() >= segB.Length() {
		return a, segA
	}
	return b, segB
}

// insertMidpoint splices (ox, oy) into p between the endpoints of seg,
// bowing the outer polyline off the shared collinear line.
func insertMidpoint(p *Polyline, ox, oy float64, seg geom.Segment) {
	for k := 0; k+1 < len(p.Points); k++ {
		a, b := p.Points[k], p.Points[k+1]
		if a.X == seg.AX && a.Y == seg.AY && b.X == seg.BX && b.Y == seg.BY {
			mid := geom.Point{X: ox, Y: oy, Z: a.Z}
			p.Points = append(p.Points[:k+1], append([]geom.Point{mid}, p.Points[k+1:]...)...)
			return
		}
	}
}
