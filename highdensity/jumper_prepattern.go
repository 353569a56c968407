package highdensity

import (
	"fmt"
	"math"

	"github.com/pcbroute/router/geom"
)

// footprintLengthFor picks the jumper footprint whose body fits the
// smaller dimension of the cell with room for the border padding. When
// neither 1206 variant fits it returns the 0603 length, whether or not that
// fits either.
func footprintLengthFor(cell Cell) float64 {
	avail := math.Min(cell.MaxX-cell.MinX, cell.MaxY-cell.MinY) - 2*prepatternBorderPaddingMM
	switch {
	case avail >= jumper1206x4PairLength:
		return jumper1206x4PairLength
	case avail >= jumper1206Length:
		return jumper1206Length
	default:
		return jumper0603Length
	}
}

func prepatternGrid(cell Cell, spacing float64) []geom.Point {
	var grid []geom.Point
	minX := cell.MinX + prepatternBorderPaddingMM
	maxX := cell.MaxX - prepatternBorderPaddingMM
	minY := cell.MinY + prepatternBorderPaddingMM
	maxY := cell.MaxY - prepatternBorderPaddingMM
	if spacing <= 0 || minX >= maxX || minY >= maxY {
		return grid
	}
	for y := minY; y <= maxY; y += spacing {
		for x := minX; x <= maxX; x += spacing {
			grid = append(grid, geom.Point{X: x, Y: y})
		}
	}
	return grid
}

func nearestUnused(grid []geom.Point, used []bool, target geom.Point) (int, bool) {
	best := -1
	bestDist := math.Inf(1)
	for i, p := range grid {
		if used[i] {
			continue
		}
		d := geom.Dist2D(p, target)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best, best >= 0
}

// solvePrepattern overlays a regular grid of zero-ohm jumpers and assigns
// one to every crossing net pair, routing each half of the pair into one of
// the jumper's pads. Nets with no crossing are routed as a straight chord
// from A to B (spec.md §4.7 prepattern strategy).
func solvePrepattern(cell Cell, opts Options) Solution {
	footprint := footprintLengthFor(cell)
	grid := prepatternGrid(cell, opts.PrepatternSpacing)
	used := make([]bool, len(grid))

	polylines := make([]Polyline, len(cell.Nets))
	resolved := make([]bool, len(cell.Nets))
	var jumpers []Jumper

	for _, pr := range crossingPairs(cell.Nets) {
		i, j := pr[0], pr[1]
		if resolved[i] || resolved[j] {
			continue
		}
		a, b := cell.Nets[i], cell.Nets[j]
		mid := geom.Point{
			X: (a.A.X + a.B.X + b.A.X + b.B.X) / 4,
			Y: (a.A.Y + a.B.Y + b.A.Y + b.B.Y) / 4,
		}
		idx, ok := nearestUnused(grid, used, mid)
		if !ok {
			continue
		}
		used[idx] = true
		pos := grid[idx]
		half := footprint / 2
		padA := geom.Point{X: pos.X - half, Y: pos.Y, Z: a.Z}
		padB := geom.Point{X: pos.X + half, Y: pos.Y, Z: b.Z}

		jumpers = append(jumpers, Jumper{
			ID:          fmt.Sprintf("JMP%d", len(jumpers)),
			PadA:        padA,
			PadB:        padB,
			ConnectedTo: []string{a.RootConnectionName, b.RootConnectionName},
		})

		polylines[i] = Polyline{RootConnectionName: a.RootConnectionName, Z: a.Z, Points: []geom.Point{a.A, padA, a.B}}
		polylines[j] = Polyline{RootConnectionName: b.RootConnectionName, Z: b.Z, Points: []geom.Point{b.A, padB, b.B}}
		resolved[i] = true
		resolved[j] = true
	}

	unrouted := 0
	for i, net := range cell.Nets {
		if resolved[i] {
			continue
		}
		if hasCrossingWithUnresolved(cell.Nets, i, resolved) {
			unrouted++
		}
		polylines[i] = Polyline{RootConnectionName: net.RootConnectionName, Z: net.Z, Points: []geom.Point{net.A, net.B}}
	}

	return Solution{Polylines: polylines, Jumpers: jumpers, Unrouted: unrouted, Iterations: 1}
}

func hasCrossingWithUnresolved(nets []NetCrossing, i int, resolved []bool) bool {
	for j := range nets {
		if j == i || resolved[j] || nets[j].Z != nets[i].Z {
			continue
		}
		a := geom.NewSegment(nets[i].A, nets[i].B)
		b := geom.NewSegment(nets[j].A, nets[j].B)
		if a.Intersects(b) {
			return true
		}
	}
	return false
}
