package stitch

import "github.com/pcbroute/router/geom"

// quantizeStepMM is the grid RouteStitch snaps island endpoints to when
// deciding whether two islands touch (spec.md §4.8: "quantized to 0.01mm").
const quantizeStepMM = 0.01

// Island is one routed sub-connection's polyline, as emitted by the
// per-cell local router or a direct off-board bridge.
type Island struct {
	RootConnectionName string
	Points             []geom.Point
}

// Route is the final stitched output for one rootConnectionName.
type Route struct {
	RootConnectionName string
	Points             []geom.Point
	Vias               []geom.Point
}

func quantizeXY(p geom.Point) (float64, float64) {
	return geom.Quantize(p.X, quantizeStepMM), geom.Quantize(p.Y, quantizeStepMM)
}

type nodeKey struct {
	x, y float64
}

func keyOf(p geom.Point) nodeKey {
	x, y := quantizeXY(p)
	return nodeKey{x: x, y: y}
}
