package segments

import (
	"math"

	"github.com/pcbroute/router/meshmodel"
)

// Options configures port-point density.
type Options struct {
	// TraceWidth is the nominal trace width used to space port-point
	// candidates at 2·TraceWidth intervals.
	TraceWidth float64
}

// DefaultOptions returns TraceWidth=0.15 (millimeters), a common nominal
// trace width for the boards spec.md's scenarios describe.
func DefaultOptions() Options {
	return Options{TraceWidth: 0.15}
}

// PortPoint is one candidate crossing point on a shared cell boundary: a
// location PortPointPathing may claim to cross from EdgeID's A side to its
// B side.
type PortPoint struct {
	EdgeID meshmodel.EdgeID
	Index  int // 0-based position along the boundary, A-to-B order
	X, Y   float64

	// DistToCentermostPortOnZ is the number of port-point slots between
	// this point and the boundary's centermost slot, used by the A* cost
	// model to prefer central crossings over ones hugging a cell corner.
	DistToCentermostPortOnZ int
}

// Placer holds the precomputed port points for every physical edge in a
// mesh, indexed by EdgeID.
type Placer struct {
	byEdge map[meshmodel.EdgeID][]PortPoint
}

// Place runs SegmentPoints to completion, precomputing port-point
// candidates for every physical (non-off-board) edge in mesh.
func Place(mesh *meshmodel.Mesh, opts Options) *Placer {
	p := &Placer{byEdge: make(map[meshmodel.EdgeID][]PortPoint)}
	for i := 0; i < mesh.NumEdges(); i++ {
		e := mesh.Edge(meshmodel.EdgeID(i))
		if e == nil || e.IsOffboardEdge {
			continue
		}
		p.byEdge[e.ID] = placeOnEdge(mesh, e, opts)
	}
	return p
}

func placeOnEdge(mesh *meshmodel.Mesh, e *meshmodel.Edge, opts Options) []PortPoint {
	a, b := mesh.Node(e.A), mesh.Node(e.B)
	seg, ok := a.Rect.SharedBoundary(b.Rect)
	if !ok {
		return nil
	}
	spacing := opts.TraceWidth * 2
	if spacing <= 0 {
		return nil
	}
	count := int(math.Floor(seg.Length() / spacing))
	if count < 1 {
		return nil
	}

	out := make([]PortPoint, count)
	centerIdx := float64(count-1) / 2
	for i := 0; i < count; i++ {
		t := float64(i+1) / float64(count+1)
		x := seg.AX + t*(seg.BX-seg.AX)
		y := seg.AY + t*(seg.BY-seg.AY)
		dist := math.Abs(float64(i) - centerIdx)
		out[i] = PortPoint{
			EdgeID:                  e.ID,
			Index:                   i,
			X:                       x,
			Y:                       y,
			DistToCentermostPortOnZ: int(math.Round(dist)),
		}
	}
	return out
}

// PortPoints returns the precomputed candidates for edge id, in A-to-B
// order. The returned slice is owned by the Placer; callers must not
// mutate it.
func (p *Placer) PortPoints(id meshmodel.EdgeID) []PortPoint {
	return p.byEdge[id]
}

// NumPortPoints returns the total count of placed port points across every
// edge, used for capacity/statistics reporting.
func (p *Placer) NumPortPoints() int {
	n := 0
	for _, pts := range p.byEdge {
		n += len(pts)
	}
	return n
}
