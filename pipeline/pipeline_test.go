package pipeline

import (
	"testing"

	"github.com/pcbroute/router/geom"
	"github.com/pcbroute/router/highdensity"
	"github.com/pcbroute/router/meshmodel"
	"github.com/pcbroute/router/netsplit"
	"github.com/pcbroute/router/refine"
	"github.com/pcbroute/router/srj"
	"github.com/stretchr/testify/require"
)

func netsplitSub(ax, ay, bx, by float64) []netsplit.SubConnection {
	return []netsplit.SubConnection{{
		Name:               "net1",
		RootConnectionName: "net1",
		A:                  srj.ConnectionPoint{X: ax, Y: ay},
		B:                  srj.ConnectionPoint{X: bx, Y: by},
	}}
}

func twoNodeMesh() *meshmodel.Mesh {
	mesh := meshmodel.New()
	left := mesh.AddNode(geom.NewRect(-0.5, 0, 1, 2), 1)
	right := mesh.AddNode(geom.NewRect(0.5, 0, 1, 2), 1)
	mesh.Node(left).SetAvailableZ(0, true)
	mesh.Node(right).SetAvailableZ(0, true)
	return mesh
}

func TestFindNode_LocatesContainingCellAndRejectsOutside(t *testing.T) {
	mesh := twoNodeMesh()

	id, ok := findNode(mesh, -0.9, 0)
	require.True(t, ok)
	require.Equal(t, meshmodel.NodeID(0), id)

	id, ok = findNode(mesh, 0.9, 0)
	require.True(t, ok)
	require.Equal(t, meshmodel.NodeID(1), id)

	_, ok = findNode(mesh, 5, 5)
	require.False(t, ok)
}

func TestPickLayer_PrefersNodeServedLayerThenFallsBack(t *testing.T) {
	mesh := meshmodel.New()
	id := mesh.AddNode(geom.NewRect(0, 0, 1, 1), 2)
	n := mesh.Node(id)
	n.SetAvailableZ(0, false)
	n.SetAvailableZ(1, true)

	got := pickLayer(mesh, id, srj.ConnectionPoint{Layers: []int{0, 1}})
	require.Equal(t, 1, got)

	// Neither allowed layer is served: falls back to the point's first choice.
	n.SetAvailableZ(1, false)
	got = pickLayer(mesh, id, srj.ConnectionPoint{Layers: []int{0, 1}})
	require.Equal(t, 0, got)
}

func TestBuildRequests_PointOutsideMeshReturnsError(t *testing.T) {
	mesh := twoNodeMesh()

	_, err := buildRequests(mesh, netsplitSub(-0.9, 0, 50, 50))
	require.Error(t, err)
	require.Contains(t, err.Error(), "falls outside every mesh cell")
}

func TestBuildRequests_BothPointsInsideSucceeds(t *testing.T) {
	mesh := twoNodeMesh()
	reqs, err := buildRequests(mesh, netsplitSub(-0.9, 0, 0.9, 0))
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	require.Equal(t, meshmodel.NodeID(0), reqs[0].StartNode)
	require.Equal(t, meshmodel.NodeID(1), reqs[0].EndNode)
}

func TestMemoryCache_TracksHitsAndMisses(t *testing.T) {
	c := NewMemoryCache()
	key := CacheKey{NodeID: 1, Fingerprint: "a"}

	_, ok := c.Get(key)
	require.False(t, ok)

	c.Put(key, highdensity.Solution{Unrouted: 0})
	sol, ok := c.Get(key)
	require.True(t, ok)
	require.Equal(t, 0, sol.Unrouted)

	require.Equal(t, CacheStats{Hits: 1, Misses: 1}, c.Stats())
}

func TestRoutePoints_EmitsViaOnLayerChange(t *testing.T) {
	r := refine.Route{
		RootConnectionName: "net1",
		TraceWidth:         0.2,
		ViaDiameter:        0.6,
		Points: []geom.Point{
			{X: 0, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 1},
			{X: 2, Y: 0, Z: 1},
		},
	}

	pts := routePoints(r)
	require.Len(t, pts, 5) // 4 wire points + 1 via

	require.NotNil(t, pts[0].Wire)
	require.NotNil(t, pts[1].Wire)
	require.NotNil(t, pts[2].Via)
	require.Equal(t, 0, pts[2].Via.FromLayer)
	require.Equal(t, 1, pts[2].Via.ToLayer)
	require.Equal(t, 1.0, pts[2].Via.X)
	require.Equal(t, 0.6, pts[2].Via.ViaDiameter)
	require.NotNil(t, pts[3].Wire)
	require.Equal(t, 1, pts[3].Wire.Layer)
	require.NotNil(t, pts[4].Wire)
}

func TestJumperObstacles_ConvertsBothPadsWithConnectedTo(t *testing.T) {
	solutions := []highdensity.Solution{
		{
			Jumpers: []highdensity.Jumper{
				{ID: "J1", PadA: geom.Point{X: 1, Y: 2, Z: 0}, PadB: geom.Point{X: 3, Y: 2, Z: 0}, ConnectedTo: []string{"net1"}},
			},
		},
	}

	obs := jumperObstacles(solutions)
	require.Len(t, obs, 2)
	require.Equal(t, "J1_a", obs[0].ID)
	require.Equal(t, 1.0, obs[0].CX)
	require.Equal(t, []string{"net1"}, obs[0].ConnectedTo)
	require.Equal(t, "J1_b", obs[1].ID)
	require.Equal(t, 3.0, obs[1].CX)
}

func TestSortedCellNodes_Deterministic(t *testing.T) {
	crossings := map[meshmodel.NodeID][]highdensity.NetCrossing{
		5: nil, 1: nil, 3: nil,
	}
	require.Equal(t, []meshmodel.NodeID{1, 3, 5}, sortedCellNodes(crossings))
}

func TestSolver_SolvesSimpleTwoPadBoard(t *testing.T) {
	input := srj.SimpleRouteJson{
		LayerCount:    1,
		MinTraceWidth: 0.2,
		Bounds:        srj.Bounds{MinX: -1, MaxX: 1, MinY: -1, MaxY: 1},
		Connections: []srj.Connection{
			{
				Name: "net1",
				Points: []srj.ConnectionPoint{
					{X: -0.9, Y: 0, Layer: 0},
					{X: 0.9, Y: 0, Layer: 0},
				},
			},
		},
	}

	opts := DefaultOptionsForEffort("fast")
	opts.TargetMinCapacity = 1.0
	s := New(input, opts)
	s.Solve()

	require.False(t, s.Failed(), s.Err())
	require.True(t, s.Solved())

	out, err := s.GetOutputSimpleRouteJson()
	require.NoError(t, err)
	require.Len(t, out.Traces, 1)

	trace := out.Traces[0]
	require.Equal(t, "net1", trace.RootConnectionName)
	require.NotEmpty(t, trace.Route)
	require.NotNil(t, trace.Route[0].Wire)

	first := trace.Route[0].Wire
	require.InDelta(t, -0.9, first.X, 1e-6)
	require.InDelta(t, 0, first.Y, 1e-6)

	last := trace.Route[len(trace.Route)-1].Wire
	require.NotNil(t, last)
	require.InDelta(t, 0.9, last.X, 1e-6)
}
