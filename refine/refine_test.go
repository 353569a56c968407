package refine

import (
	"testing"

	"github.com/pcbroute/router/geom"
	"github.com/pcbroute/router/srj"
	"github.com/stretchr/testify/require"
)

func TestLayerRuns_SegmentsByLayer(t *testing.T) {
	points := []geom.Point{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 1}, {X: 2, Y: 0, Z: 1},
		{X: 2, Y: 0, Z: 0}, {X: 3, Y: 0, Z: 0},
	}
	runs := layerRuns(points)
	require.Equal(t, []run{{0, 1, 0}, {2, 3, 1}, {4, 5, 0}}, runs)
}

func TestRemoveUselessVias_FlattensSandwichedRun(t *testing.T) {
	route := Route{
		RootConnectionName: "NET1",
		TraceWidth:         0.15,
		Points: []geom.Point{
			{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 1}, {X: 2, Y: 0, Z: 1},
			{X: 2, Y: 0, Z: 0}, {X: 3, Y: 0, Z: 0},
		},
	}

	out := RemoveUselessVias(route, nil, nil, 0.2)

	for _, p := range out.Points {
		require.Equal(t, 0, p.Z)
	}
	require.Empty(t, out.Vias)
}

func TestRemoveUselessVias_BlockedByObstacle(t *testing.T) {
	route := Route{
		RootConnectionName: "NET1",
		TraceWidth:         0.15,
		Points: []geom.Point{
			{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 1}, {X: 2, Y: 0, Z: 1},
			{X: 2, Y: 0, Z: 0}, {X: 3, Y: 0, Z: 0},
		},
	}
	obstacles := []srj.Obstacle{
		{ID: "P1", CX: 1.5, CY: 0, Width: 1, Height: 1, Layers: []int{0}},
	}

	out := RemoveUselessVias(route, obstacles, nil, 0.2)

	require.Equal(t, route.Points, out.Points)
	require.Len(t, out.Vias, 2)
}

func TestMergeSameNetVias_DedupesCoincidentVias(t *testing.T) {
	route := Route{
		RootConnectionName: "NET1",
		Points: []geom.Point{
			{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 0},
			{X: 2, Y: 0, Z: 0},
		},
	}

	out := MergeSameNetVias(route)
	require.Len(t, out.Vias, 1)
	require.Equal(t, 1.0, out.Vias[0].X)
}

func TestSimplifyPath_RemovesCollinearPoint(t *testing.T) {
	route := Route{
		RootConnectionName: "NET1",
		TraceWidth:         0.15,
		Points: []geom.Point{
			{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0},
		},
	}

	out := SimplifyPath(route, nil, 0.2)
	require.Equal(t, []geom.Point{{X: 0, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0}}, out.Points)
}

func TestSimplifyPath_KeepsPointNearObstacle(t *testing.T) {
	route := Route{
		RootConnectionName: "NET1",
		TraceWidth:         0.15,
		Points: []geom.Point{
			{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0},
		},
	}
	obstacles := []srj.Obstacle{
		{ID: "P1", CX: 1, CY: 0, Width: 0.5, Height: 0.5, Layers: []int{0}},
	}

	out := SimplifyPath(route, obstacles, 0.2)
	require.Len(t, out.Points, 3)
}

func TestAssignTraceWidth_PicksNominalWhenClear(t *testing.T) {
	route := Route{
		RootConnectionName: "NET1",
		Points:             []geom.Point{{X: 0, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0}},
	}
	opts := DefaultOptions(0.2, 0.1)

	out := AssignTraceWidth(route, nil, nil, opts)
	require.Equal(t, 0.2, out.TraceWidth)
}

func TestAssignTraceWidth_FallsBackToMinWhenTight(t *testing.T) {
	route := Route{
		RootConnectionName: "NET1",
		Points:             []geom.Point{{X: 0, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0}},
	}
	obstacles := []srj.Obstacle{
		{ID: "P1", CX: 1, CY: 0.1, Width: 0.02, Height: 0.02, Layers: []int{0}},
	}
	opts := DefaultOptions(0.2, 0.1)

	out := AssignTraceWidth(route, obstacles, nil, opts)
	require.Equal(t, opts.MinTraceWidth, out.TraceWidth)
}

func TestRefine_PreservesEndpointsWhenClear(t *testing.T) {
	routes := []Route{
		{
			RootConnectionName: "NET1",
			TraceWidth:         0.15,
			Points:             []geom.Point{{X: 0, Y: 0, Z: 0}, {X: 5, Y: 0, Z: 0}},
		},
	}

	out := Refine(routes, nil, 0.2, 0.1)
	require.Len(t, out, 1)
	require.Equal(t, geom.Point{X: 0, Y: 0, Z: 0}, out[0].Points[0])
	require.Equal(t, geom.Point{X: 5, Y: 0, Z: 0}, out[0].Points[len(out[0].Points)-1])
	require.Equal(t, 0.2, out[0].TraceWidth)
}
