package netsplit

import (
	"testing"

	"github.com/pcbroute/router/srj"
	"github.com/stretchr/testify/require"
)

func pt(x, y float64) srj.ConnectionPoint { return srj.ConnectionPoint{X: x, Y: y} }

func TestDecompose_TwoPointPassthrough(t *testing.T) {
	conns := []srj.Connection{
		{Name: "n1", Points: []srj.ConnectionPoint{pt(1, 1), pt(9, 9)}},
	}
	out := Decompose(conns, nil, DefaultOptions())
	require.Len(t, out, 1)
	require.Equal(t, "n1", out[0].Name)
	require.Equal(t, "n1", out[0].RootConnectionName)
}

func TestDecompose_CollinearMST(t *testing.T) {
	// S5 from spec.md: four collinear points, three sub-connections,
	// total length ~30.
	conns := []srj.Connection{
		{Name: "chain", Points: []srj.ConnectionPoint{pt(0, 0), pt(10, 0), pt(20, 0), pt(30, 0)}},
	}
	out := Decompose(conns, nil, DefaultOptions())
	require.Len(t, out, 3)

	var total float64
	for _, sc := range out {
		require.Equal(t, "chain", sc.RootConnectionName)
		total += dist(sc.A, sc.B)
	}
	require.InDelta(t, 30.0, total, 1e-9)
}

func TestDecompose_DegenerateSinglePoint(t *testing.T) {
	conns := []srj.Connection{{Name: "solo", Points: []srj.ConnectionPoint{pt(0, 0)}}}
	out := Decompose(conns, nil, DefaultOptions())
	require.Empty(t, out)
}

func TestDecompose_SkipRuleSameExternalGroup(t *testing.T) {
	conns := []srj.Connection{
		{
			Name:   "n1",
			Points: []srj.ConnectionPoint{pt(0, 0), pt(1, 1)},
			ExternallyConnectedPointIds: map[string][]int{
				"g1": {0, 1},
			},
		},
	}
	out := Decompose(conns, nil, DefaultOptions())
	require.Empty(t, out)
}

func TestDecompose_OffBoardSubstitution(t *testing.T) {
	// S4 from spec.md: two off-board-tagged obstacles P1/P2; a connection
	// endpoint sitting at P1's center should be retargeted toward the
	// closest member of P1's group when one exists.
	obstacles := []srj.Obstacle{
		{ID: "P1", CX: 0, CY: 0, OffBoardConnectsTo: []string{"CBL"}},
		{ID: "P2", CX: 100, CY: 0, OffBoardConnectsTo: []string{"CBL"}},
	}
	conns := []srj.Connection{
		{Name: "n", Points: []srj.ConnectionPoint{pt(0, 0), pt(5, 5)}},
	}
	out := Decompose(conns, obstacles, DefaultOptions())
	require.Len(t, out, 1)
	// The P1-coincident endpoint may be substituted with P2's center if
	// that reduces sub-connection length; here it does not (P2 is farther
	// from (5,5) than P1), so the endpoint should remain at P1.
	require.InDelta(t, 0, out[0].A.X, 1e-9)
	require.InDelta(t, 0, out[0].A.Y, 1e-9)
}
