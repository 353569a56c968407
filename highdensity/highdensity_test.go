package highdensity

import (
	"testing"

	"github.com/pcbroute/router/geom"
	"github.com/stretchr/testify/require"
)

func TestSolveCell_NoCrossingsUsesCurvy(t *testing.T) {
	cell := Cell{
		MinX: 0, MinY: 0, MaxX: 4, MaxY: 4,
		Nets: []NetCrossing{
			{RootConnectionName: "n1", A: geom.Point{X: 0, Y: 1}, B: geom.Point{X: 4, Y: 1}},
			{RootConnectionName: "n2", A: geom.Point{X: 0, Y: 3}, B: geom.Point{X: 4, Y: 3}},
		},
	}
	sol := SolveCell(cell, DefaultOptions())
	require.Len(t, sol.Polylines, 2)
	require.Empty(t, sol.Jumpers)
	require.Equal(t, 0, sol.Unrouted)
	for _, p := range sol.Polylines {
		require.Equal(t, p.Points[0], mustFindNet(cell, p.RootConnectionName).A)
		require.Equal(t, p.Points[len(p.Points)-1], mustFindNet(cell, p.RootConnectionName).B)
	}
}

func mustFindNet(cell Cell, root string) NetCrossing {
	for _, n := range cell.Nets {
		if n.RootConnectionName == root {
			return n
		}
	}
	panic("not found")
}

func TestSolveCell_CrossingNetsInvokeSupervisor(t *testing.T) {
	cell := Cell{
		MinX: 0, MinY: 0, MaxX: 6, MaxY: 6,
		Nets: []NetCrossing{
			{RootConnectionName: "n1", A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 6, Y: 6}},
			{RootConnectionName: "n2", A: geom.Point{X: 0, Y: 6}, B: geom.Point{X: 6, Y: 0}},
		},
	}
	sol := SolveCell(cell, DefaultOptions())
	require.Len(t, sol.Polylines, 2)
	require.LessOrEqual(t, sol.Unrouted, 2)
}

func TestIsSolvable_EnoughGridCapacity(t *testing.T) {
	cell := Cell{
		MinX: 0, MinY: 0, MaxX: 20, MaxY: 20,
		Nets: []NetCrossing{
			{RootConnectionName: "n1", A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 20, Y: 20}},
			{RootConnectionName: "n2", A: geom.Point{X: 0, Y: 20}, B: geom.Point{X: 20, Y: 0}},
		},
	}
	require.True(t, isSolvable(cell, DefaultOptions()))
}

func TestResolveCollinearOverlaps_InsertsOffset(t *testing.T) {
	a := Polyline{RootConnectionName: "n1", Points: []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}}
	b := Polyline{RootConnectionName: "n2", Points: []geom.Point{{X: 2, Y: 0}, {X: 4, Y: 0}}}
	out := resolveCollinearOverlaps([]Polyline{a, b})
	require.Greater(t, len(out[0].Points), 2, "the outer (longer) segment should gain an offset midpoint")
}
