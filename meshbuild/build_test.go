package meshbuild

import (
	"testing"

	"github.com/pcbroute/router/geom"
	"github.com/pcbroute/router/srj"
	"github.com/stretchr/testify/require"
)

func TestBuilder_EmptyBoardNoObstacles(t *testing.T) {
	board := geom.NewRect(5, 5, 10, 10)
	b := New(board, 1, nil, Options{TargetMinCapacity: 20}) // threshold bigger than board => one cell
	b.Run()
	require.True(t, b.Solved())
	require.Equal(t, 1, b.Mesh().NumNodes())
	n := b.Mesh().Node(0)
	require.False(t, n.ContainsObstacle)
	require.True(t, n.AvailableZ(0))
}

func TestBuilder_ObstacleBlocksLayer(t *testing.T) {
	board := geom.NewRect(5, 5, 10, 10)
	obstacles := []srj.Obstacle{
		{ID: "pad1", CX: 5, CY: 5, Width: 2, Height: 2, Layers: []int{0}, ConnectedTo: []string{"n1"}},
	}
	b := New(board, 2, obstacles, Options{TargetMinCapacity: 20})
	b.Run()
	require.True(t, b.Solved())

	var foundObstacleCell bool
	for _, n := range b.Mesh().Nodes() {
		if n.ContainsObstacle {
			foundObstacleCell = true
			require.True(t, n.ContainsTarget)
			require.False(t, n.AvailableZ(0))
			require.True(t, n.AvailableZ(1))
		}
	}
	require.True(t, foundObstacleCell)
}

func TestBuilder_SubdivisionRespectsThreshold(t *testing.T) {
	board := geom.NewRect(0, 0, 10, 10)
	b := New(board, 1, nil, Options{TargetMinCapacity: 3})
	b.Run()
	require.True(t, b.Solved())
	for _, n := range b.Mesh().Nodes() {
		require.LessOrEqual(t, n.Rect.MinDimension(), 3.0+1e-9)
	}
}

func TestCalculateOptimalCapacityDepth(t *testing.T) {
	depth, threshold := CalculateOptimalCapacityDepth(100, 0.5)
	require.Greater(t, depth, 0)
	require.LessOrEqual(t, threshold, 0.5)
}
