package refine

import (
	"github.com/pcbroute/router/geom"
	"github.com/pcbroute/router/srj"
)

// collinearCrossTol is the cross-product tolerance spec.md §4.9c specifies
// for dropping a point from a polyline ("collinear points are removed,
// cross-product < 1e-6").
const collinearCrossTol = 1e-6

// keepoutStepMM and widthStepMM are the cursor step sizes spec.md §4.9d/e
// specify for the keepout re-draw and trace-width passes.
const (
	keepoutStepMM = 0.2
	widthStepMM   = 0.1
)

// viaQuantizeMM is the tolerance within which two vias on the same route
// are considered co-located for same-net merging (spec.md §4.9b).
const viaQuantizeMM = 0.01

// Route is one rootConnectionName's stitched polyline, ready for
// refinement: the path RouteStitch produced plus the physical parameters
// this package may still adjust.
type Route struct {
	RootConnectionName string
	Points             []geom.Point
	Vias               []geom.Point
	TraceWidth         float64
	ViaDiameter        float64
}

// Options configures the refinement passes.
type Options struct {
	// Iterations is how many times the 9a/9b/9c trio runs before the
	// keepout pass runs once per KeepoutRadii entry and the width pass runs
	// once (spec.md §4.9: "twice" by default).
	Iterations int

	// ObstacleMargin is the minimum extra clearance (beyond half trace
	// width) every pass must preserve around obstacles and foreign traces.
	ObstacleMargin float64

	// KeepoutRadii is the schedule of decreasing re-draw radii applied in
	// order during the keepout pass (spec.md §4.9d default: four 0.5mm
	// passes).
	KeepoutRadii []float64

	NominalTraceWidth float64
	MinTraceWidth     float64
}

// Option mutates an Options value built from DefaultOptions.
type Option func(*Options)

// DefaultOptions returns spec.md §4.9's published defaults.
func DefaultOptions(nominalTraceWidth, minTraceWidth float64) Options {
	return Options{
		Iterations:        2,
		ObstacleMargin:    0.2,
		KeepoutRadii:      []float64{0.5, 0.5, 0.5, 0.5},
		NominalTraceWidth: nominalTraceWidth,
		MinTraceWidth:     minTraceWidth,
	}
}

func WithIterations(n int) Option {
	return func(o *Options) { o.Iterations = n }
}

func WithObstacleMargin(m float64) Option {
	return func(o *Options) { o.ObstacleMargin = m }
}

func WithKeepoutRadii(radii []float64) Option {
	return func(o *Options) { o.KeepoutRadii = radii }
}

// widthSchedule returns spec.md §4.9e's widest-first candidate list:
// nominal width, then the nominal/minimum midpoint.
func (o Options) widthSchedule() []float64 {
	return []float64{o.NominalTraceWidth, (o.NominalTraceWidth + o.MinTraceWidth) / 2}
}

func obstacleRect(o srj.Obstacle) geom.Rect {
	return geom.NewRect(o.CX, o.CY, o.Width, o.Height)
}

// obstacleConnectedToRoute reports whether an obstacle is electrically
// part of this route (directly, or via its root connection grouping),
// exempting it from keepout checks against its own traces.
func obstacleConnectedToRoute(o srj.Obstacle, route Route) bool {
	for _, tag := range o.ConnectedTo {
		if tag == route.RootConnectionName {
			return true
		}
	}
	return false
}
