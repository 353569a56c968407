package highdensity

import "github.com/pcbroute/router/geom"

// curvyBulgeFraction sets how far a curvy polyline's midpoint control
// point bows away from the straight chord, as a fraction of chord length.
const curvyBulgeFraction = 0.15

// solveCurvy produces one smooth three-point polyline per net, bulging the
// midpoint toward the cell's interior so adjacent same-layer traces (which,
// by construction here, do not cross) keep clearance from the cell walls
// and from each other.
func solveCurvy(cell Cell) []Polyline {
	cx := (cell.MinX + cell.MaxX) / 2
	cy := (cell.MinY + cell.MaxY) / 2

	out := make([]Polyline, 0, len(cell.Nets))
	for _, net := range cell.Nets {
		seg := geom.NewSegment(net.A, net.B)
		chord := seg.Length()
		if chord == 0 {
			out = append(out, Polyline{RootConnectionName: net.RootConnectionName, Points: []geom.Point{net.A, net.B}, Z: net.Z})
			continue
		}

		// Bulge toward whichever side of the chord the cell center falls
		// on, so the curve sweeps through open interior rather than
		// toward the nearest wall.
		side := seg.Cross(cx, cy)
		sideSign := 1.0
		if side < 0 {
			sideSign = -1.0
		}

		mx := (net.A.X + net.B.X) / 2
		my := (net.A.Y + net.B.Y) / 2
		dirX := net.B.X - net.A.X
		dirY := net.B.Y - net.A.Y
		bulge := chord * curvyBulgeFraction
		ox, oy := geom.PerpendicularOffset(mx, my, dirX, dirY, bulge, sideSign)

		out = append(out, Polyline{
			RootConnectionName: net.RootConnectionName,
			Z:                  net.Z,
			Points: []geom.Point{
				net.A,
				{X: ox, Y: oy, Z: net.Z},
				net.B,
			},
		})
	}
	return out
}
