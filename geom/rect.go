package geom

// Rect is an axis-aligned rectangle described by center and full
// width/height, matching the Obstacle encoding in spec.md §3.
type Rect struct {
	CX, CY float64
	W, H   float64
}

// NewRect builds a Rect from center and size. Negative width/height are
// clamped to zero; callers constructing obstacles from malformed input get a
// degenerate (zero-area) rectangle rather than a panic (spec.md §7: invalid
// input is silently accepted, never fatal).
func NewRect(cx, cy, w, h float64) Rect {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{CX: cx, CY: cy, W: w, H: h}
}

func (r Rect) MinX() float64 { return r.CX - r.W/2 }
func (r Rect) MaxX() float64 { return r.CX + r.W/2 }
func (r Rect) MinY() float64 { return r.CY - r.H/2 }
func (r Rect) MaxY() float64 { return r.CY + r.H/2 }
func (r Rect) Area() float64 { return r.W * r.H }

// Contains reports whether (x, y) lies within the closed rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.MinX() && x <= r.MaxX() && y >= r.MinY() && y <= r.MaxY()
}

// Overlaps reports whether r and o share positive-area intersection.
func (r Rect) Overlaps(o Rect) bool {
	return r.MinX() < o.MaxX() && o.MinX() < r.MaxX() &&
		r.MinY() < o.MaxY() && o.MinY() < r.MaxY()
}

// Intersection returns the overlapping rectangle of r and o, and false if
// they do not overlap (or only touch along an edge, which has zero area).
func (r Rect) Intersection(o Rect) (Rect, bool) {
	minX := math_max(r.MinX(), o.MinX())
	minY := math_max(r.MinY(), o.MinY())
	maxX := math_min(r.MaxX(), o.MaxX())
	maxY := math_min(r.MaxY(), o.MaxY())
	if maxX <= minX || maxY <= minY {
		return Rect{}, false
	}
	return rectFromBounds(minX, minY, maxX, maxY), true
}

// DistanceToPoint returns the shortest distance from (x, y) to the boundary
// of r when outside, or 0 when (x, y) is inside or on the boundary.
func (r Rect) DistanceToPoint(x, y float64) float64 {
	dx := math_max(r.MinX()-x, math_max(0, x-r.MaxX()))
	dy := math_max(r.MinY()-y, math_max(0, y-r.MaxY()))
	return Dist2DXY(0, 0, dx, dy)
}

func rectFromBounds(minX, minY, maxX, maxY float64) Rect {
	return Rect{
		CX: (minX + maxX) / 2,
		CY: (minY + maxY) / 2,
		W:  maxX - minX,
		H:  maxY - minY,
	}
}

func math_max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func math_min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// RectDifference subtracts obstacle from board and returns the (up to four)
// axis-aligned rectangles that tile what remains. This is the core
// decomposition step of CapacityMeshBuilder (spec.md §4.2): board minus
// every obstacle, recursively. When obstacle does not overlap board at all,
// RectDifference returns []Rect{board} unchanged. When obstacle fully
// covers board, it returns nil.
//
// The four candidate strips are: above, below, left-of, right-of the
// intersection, each clipped to board's bounds. This is the classic
// "guillotine cut" rectangle-minus-rectangle decomposition; it never
// produces overlapping output rectangles.
func RectDifference(board, obstacle Rect) []Rect {
	inter, ok := board.Intersection(obstacle)
	if !ok {
		return []Rect{board}
	}

	var out []Rect

	// Top strip: board.MinY .. inter.MinY
	if inter.MinY() > board.MinY() {
		out = append(out, rectFromBounds(board.MinX(), board.MinY(), board.MaxX(), inter.MinY()))
	}
	// Bottom strip: inter.MaxY .. board.MaxY
	if inter.MaxY() < board.MaxY() {
		out = append(out, rectFromBounds(board.MinX(), inter.MaxY(), board.MaxX(), board.MaxY()))
	}
	// Left strip: board.MinX .. inter.MinX, restricted to the inter's Y band
	// so it does not re-cover the top/bottom strips above.
	if inter.MinX() > board.MinX() {
		out = append(out, rectFromBounds(board.MinX(), inter.MinY(), inter.MinX(), inter.MaxY()))
	}
	// Right strip: inter.MaxX .. board.MaxX, same Y band restriction.
	if inter.MaxX() < board.MaxX() {
		out = append(out, rectFromBounds(inter.MaxX(), inter.MinY(), board.MaxX(), inter.MaxY()))
	}

	return out
}

// MinDimension returns the smaller of width and height, used to drive the
// subdivision-depth stopping rule in CapacityMeshBuilder.
func (r Rect) MinDimension() float64 {
	return math_min(r.W, r.H)
}

// SharedBoundary returns the segment r and o have in common when they
// touch edge-to-edge (one's MaxX equals the other's MinX, or likewise for
// Y), and false if they don't touch or only meet at a corner. This is
// CapacityMeshEdges' (spec.md §4.4) adjacency test: two cells are adjacent
// when this returns true, and the port-point placement boundary SegmentPoints
// (spec.md §4.5) subdivides.
func (r Rect) SharedBoundary(o Rect) (Segment, bool) {
	const tol = 1e-9
	if samef(r.MaxX(), o.MinX(), tol) || samef(o.MaxX(), r.MinX(), tol) {
		x := r.MaxX()
		if !samef(x, o.MinX(), tol) {
			x = o.MaxX()
		}
		lo := math_max(r.MinY(), o.MinY())
		hi := math_min(r.MaxY(), o.MaxY())
		if hi > lo {
			return Segment{AX: x, AY: lo, BX: x, BY: hi}, true
		}
		return Segment{}, false
	}
	if samef(r.MaxY(), o.MinY(), tol) || samef(o.MaxY(), r.MinY(), tol) {
		y := r.MaxY()
		if !samef(y, o.MinY(), tol) {
			y = o.MaxY()
		}
		lo := math_max(r.MinX(), o.MinX())
		hi := math_min(r.MaxX(), o.MaxX())
		if hi > lo {
			return Segment{AX: lo, AY: y, BX: hi, BY: y}, true
		}
		return Segment{}, false
	}
	return Segment{}, false
}

// SharedBoundaryLength returns the length of SharedBoundary, or 0 if r and
// o do not touch.
func (r Rect) SharedBoundaryLength(o Rect) float64 {
	seg, ok := r.SharedBoundary(o)
	if !ok {
		return 0
	}
	return seg.Length()
}

func samef(a, b, tol float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}
