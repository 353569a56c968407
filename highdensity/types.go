package highdensity

import (
	"github.com/pcbroute/router/geom"
	"github.com/pcbroute/router/meshmodel"
)

// Jumper footprints, in millimeters, bit-exact to the pad/body geometry
// this package overlays during the prepattern strategy.
const (
	jumper0603Length   = 1.65
	jumper0603Width    = 0.95
	jumper0603PadLen   = 0.8
	jumper0603PadWidth = 0.95

	// 1206 scales 0603's footprint proportionally (2x in both axes,
	// matching the real-world package size ratio).
	jumper1206Length   = jumper0603Length * 2
	jumper1206Width    = jumper0603Width * 2
	jumper1206PadLen   = jumper0603PadLen * 2
	jumper1206PadWidth = jumper0603PadWidth * 2

	// 1206x4_pair places two 1206 footprints end-to-end, doubling the
	// span to bridge a wider channel with a single zero-ohm chain.
	jumper1206x4PairLength = jumper1206Length * 2
)

// collinearOffsetMM is the perpendicular midpoint offset inserted when two
// prepattern polylines are found collinear and overlapping (spec.md §4.7).
// Tunable; no published derivation beyond "enough to separate two 0.x mm
// traces without visibly kinking them".
const collinearOffsetMM = 0.5

// prepatternBorderPaddingMM keeps jumper footprints off a cell's walls.
// Tunable; chosen as a round value comfortably larger than typical
// clearance requirements, not derived from a specific design rule.
const prepatternBorderPaddingMM = 0.8

// NetCrossing is one net's traversal of a cell: it enters at A and exits at
// B, both on layer Z, under RootConnectionName.
type NetCrossing struct {
	RootConnectionName string
	A, B               geom.Point
	Z                  int
}

// Cell is the per-node input to the local router: the cell's rectangle,
// the nets crossing it, and the obstacle rectangles already placed by
// previously solved neighboring cells.
type Cell struct {
	ID                     meshmodel.NodeID
	MinX, MinY, MaxX, MaxY float64
	Nets                   []NetCrossing
	Obstacles              []geom.Rect
}

// Polyline is one net's emitted intra-cell path.
type Polyline struct {
	RootConnectionName string
	Points             []geom.Point
	Z                  int
}

// Jumper is an emitted zero-ohm bridge: its two pads become obstacles for
// later stages, annotated with which traces use it.
type Jumper struct {
	ID          string
	PadA, PadB  geom.Point
	ConnectedTo []string
}

// Solution is SolveCell's output: every net maps to exactly one polyline
// (spec.md §4.7 guarantee), plus any jumpers the jumper strategies placed.
type Solution struct {
	Polylines  []Polyline
	Jumpers    []Jumper
	Unrouted   int // nets the winning strategy could not complete
	Iterations int
}

// Options configures the local router.
type Options struct {
	// MaxForceIterations bounds the force-directed relaxation's step count.
	MaxForceIterations int
	// PrepatternSpacing is the pitch between adjacent jumpers in the grid.
	PrepatternSpacing float64
}

// DefaultOptions returns the local router's default tunables.
func DefaultOptions() Options {
	return Options{MaxForceIterations: 40, PrepatternSpacing: jumper0603Length + 0.3}
}
