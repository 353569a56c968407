package pipeline

import (
	"errors"
	"fmt"

	"github.com/pcbroute/router/highdensity"
	"github.com/pcbroute/router/refine"
	"github.com/pcbroute/router/srj"
)

// errNotSolved is returned by GetOutputSimpleRouteJson before Solved().
var errNotSolved = errors.New("pipeline: output requested before the solver finished")

// jumperPadMM is the footprint pipeline assigns a zero-ohm jumper's pads in
// the output obstacle list. highdensity's real 0603/1206 footprint
// constants are package-private; this is a conservative stand-in rather
// than a derived value.
const jumperPadMM = 1.0

// jumperObstacles converts every solved cell's placed jumpers into
// Obstacle entries, so later consumers (and this pipeline's own refine
// stage) see jumper pads as keepout geometry (highdensity.Jumper's doc:
// "its two pads become obstacles for later stages").
func jumperObstacles(solutions []highdensity.Solution) []srj.Obstacle {
	var out []srj.Obstacle
	for _, sol := range solutions {
		for _, j := range sol.Jumpers {
			out = append(out,
				srj.Obstacle{ID: j.ID + "_a", CX: j.PadA.X, CY: j.PadA.Y, Width: jumperPadMM, Height: jumperPadMM, Layers: []int{j.PadA.Z}, ConnectedTo: j.ConnectedTo},
				srj.Obstacle{ID: j.ID + "_b", CX: j.PadB.X, CY: j.PadB.Y, Width: jumperPadMM, Height: jumperPadMM, Layers: []int{j.PadB.Z}, ConnectedTo: j.ConnectedTo},
			)
		}
	}
	return out
}

// buildOutput assembles the final Output: the input echoed back with the
// jumper pads folded into Obstacles, plus one SimplifiedPcbTrace per
// refined route.
func buildOutput(input srj.SimpleRouteJson, routes []refine.Route, jumpers []srj.Obstacle) srj.Output {
	out := input
	out.Obstacles = append(append([]srj.Obstacle(nil), input.Obstacles...), jumpers...)

	traces := make([]srj.SimplifiedPcbTrace, 0, len(routes))
	for i, r := range routes {
		traces = append(traces, srj.SimplifiedPcbTrace{
			Type:               "pcb_trace",
			PcbTraceID:         fmt.Sprintf("trace_%d", i),
			ConnectionName:     r.RootConnectionName,
			RootConnectionName: r.RootConnectionName,
			Route:              routePoints(r),
		})
	}

	return srj.Output{SimpleRouteJson: out, Traces: traces}
}

// routePoints flattens a refined route's polyline into the wire/via
// sequence the SimplifiedPcbTrace JSON contract expects: a via is inserted
// whenever consecutive points change layer (RouteStitch and refine both
// guarantee the layer-change point shares its (x, y) with the point before
// it), wrapped around a wire point per vertex.
func routePoints(r refine.Route) []srj.RoutePoint {
	out := make([]srj.RoutePoint, 0, len(r.Points)*2)
	for i, p := range r.Points {
		if i > 0 && p.Z != r.Points[i-1].Z {
			out = append(out, srj.ViaPoint(p.X, p.Y, r.Points[i-1].Z, p.Z, r.ViaDiameter))
		}
		out = append(out, srj.WirePoint(p.X, p.Y, r.TraceWidth, p.Z))
	}
	return out
}
