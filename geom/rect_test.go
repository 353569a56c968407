package geom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRectDifference_NoOverlap(t *testing.T) {
	board := NewRect(0, 0, 10, 10)
	obstacle := NewRect(100, 100, 1, 1)
	got := RectDifference(board, obstacle)
	require.Len(t, got, 1)
	require.Equal(t, board, got[0])
}

func TestRectDifference_FullyCovers(t *testing.T) {
	board := NewRect(0, 0, 10, 10)
	obstacle := NewRect(0, 0, 20, 20)
	got := RectDifference(board, obstacle)
	require.Empty(t, got)
}

func TestRectDifference_CenterPunch(t *testing.T) {
	board := NewRect(0, 0, 10, 10) // [-5,5]x[-5,5]
	obstacle := NewRect(0, 0, 2, 2)
	got := RectDifference(board, obstacle)
	require.Len(t, got, 4)

	var total float64
	for _, r := range got {
		total += r.Area()
		require.False(t, r.Overlaps(obstacle), "remaining piece must not overlap the obstacle")
	}
	require.InDelta(t, board.Area()-obstacle.Area(), total, 1e-9)
}

func TestRect_SharedBoundaryLength(t *testing.T) {
	left := NewRect(0, 0, 4, 4)  // [-2,2]x[-2,2]
	right := NewRect(4, 0, 4, 4) // [2,6]x[-2,2], touches left at x=2
	require.InDelta(t, 4.0, left.SharedBoundaryLength(right), 1e-9)
	require.InDelta(t, 4.0, right.SharedBoundaryLength(left), 1e-9)

	offset := NewRect(4, 10, 4, 4) // touches x=2 band but no Y overlap
	require.Equal(t, 0.0, left.SharedBoundaryLength(offset))

	corner := NewRect(4, 4, 4, 4) // shares only the corner (2,2)
	require.Equal(t, 0.0, left.SharedBoundaryLength(corner))

	disjoint := NewRect(100, 100, 1, 1)
	require.Equal(t, 0.0, left.SharedBoundaryLength(disjoint))
}

func TestRect_DistanceToPoint(t *testing.T) {
	r := NewRect(0, 0, 4, 4) // [-2,2]x[-2,2]
	require.Equal(t, 0.0, r.DistanceToPoint(0, 0))
	require.Equal(t, 0.0, r.DistanceToPoint(2, 2))
	require.InDelta(t, 1.0, r.DistanceToPoint(3, 0), 1e-9)
	require.InDelta(t, 5.0, r.DistanceToPoint(2+3, 2+4), 1e-9)
}
