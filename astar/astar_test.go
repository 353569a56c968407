package astar

import (
	"testing"

	"github.com/pcbroute/router/geom"
	"github.com/pcbroute/router/meshedges"
	"github.com/pcbroute/router/meshmodel"
	"github.com/pcbroute/router/segments"
	"github.com/stretchr/testify/require"
)

func buildTwoCellMesh(t *testing.T) (*meshmodel.Mesh, *segments.Placer, meshmodel.NodeID, meshmodel.NodeID) {
	t.Helper()
	mesh := meshmodel.New()
	a := mesh.AddNode(geom.NewRect(0, 0, 2, 0.4), 1)
	b := mesh.AddNode(geom.NewRect(2, 0, 2, 0.4), 1)
	require.NoError(t, meshedges.Build(mesh))
	placer := segments.Place(mesh, segments.Options{TraceWidth: 0.15})
	return mesh, placer, a, b
}

func TestSolver_SingleConnectionRoutes(t *testing.T) {
	mesh, placer, a, b := buildTwoCellMesh(t)
	reqs := []Request{{Name: "n1_sub0", RootConnectionName: "n1", StartNode: a, EndNode: b}}

	s := New(mesh, placer, reqs, WithSeed(1), WithNumShuffleSeeds(2))
	s.Run()

	require.True(t, s.Solved())
	require.False(t, s.Failed())
	results := s.Results()
	require.Len(t, results, 1)
	require.False(t, results[0].Failed)
	require.Len(t, results[0].Path, 1)
	require.Equal(t, 0, results[0].Path[0].Index)
}

func TestSolver_ContendedPortPointFailsWithoutRipping(t *testing.T) {
	mesh, placer, a, b := buildTwoCellMesh(t)
	reqs := []Request{
		{Name: "n1_sub0", RootConnectionName: "n1", StartNode: a, EndNode: b},
		{Name: "n2_sub0", RootConnectionName: "n2", StartNode: a, EndNode: b},
	}

	s := New(mesh, placer, reqs, WithSeed(2), WithNumShuffleSeeds(1), WithRipping(false))
	s.Run()

	require.True(t, s.Solved())
	require.True(t, s.Failed())
	require.ErrorIs(t, s.Err(), ErrAllSeedsFailed)
}

func TestSolver_NoRequestsSolvesTrivially(t *testing.T) {
	mesh, placer, _, _ := buildTwoCellMesh(t)
	s := New(mesh, placer, nil)
	s.Run()
	require.True(t, s.Solved())
	require.False(t, s.Failed())
	require.Empty(t, s.Results())
}

func TestShouldPruneRemaining(t *testing.T) {
	require.False(t, shouldPruneRemaining(10, 10, 1.5)) // equal to best, well under the 1.5x threshold
	require.False(t, shouldPruneRemaining(14, 10, 1.5)) // within 1.5x of best
	require.True(t, shouldPruneRemaining(16, 10, 1.5))  // past 1.5x of best
	require.False(t, shouldPruneRemaining(100, 10, 0))  // disabled when multiplier is 0
}

func TestSolver_ConvergesAcrossManySeedsWithGreedyPruningEnabled(t *testing.T) {
	mesh, placer, a, b := buildTwoCellMesh(t)
	reqs := []Request{{Name: "n1_sub0", RootConnectionName: "n1", StartNode: a, EndNode: b}}

	// Default GreedyMultiplier is active here; a single connection's cost is
	// identical across every shuffle order, so no seed ever exceeds
	// bestCost*GreedyMultiplier and pruning never fires, but the solve must
	// still run every seed to completion and converge correctly.
	s := New(mesh, placer, reqs, WithSeed(1), WithNumShuffleSeeds(8))
	s.Run()
	require.True(t, s.Solved())
	require.False(t, s.Failed())
	require.Len(t, s.Results(), 1)
	require.False(t, s.Results()[0].Failed)
}
