package stitch

import (
	"testing"

	"github.com/pcbroute/router/geom"
	"github.com/stretchr/testify/require"
)

func TestStitch_TwoIslandsSameLayerConcatenate(t *testing.T) {
	islands := []Island{
		{
			RootConnectionName: "NET1",
			Points: []geom.Point{
				{X: 0, Y: 0, Z: 0},
				{X: 1, Y: 0, Z: 0},
			},
		},
		{
			RootConnectionName: "NET1",
			Points: []geom.Point{
				{X: 1, Y: 0, Z: 0},
				{X: 2, Y: 0, Z: 0},
			},
		},
	}

	routes := Stitch(islands)
	require.Len(t, routes, 1)
	r := routes[0]
	require.Equal(t, "NET1", r.RootConnectionName)
	require.Equal(t, []geom.Point{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 2, Y: 0, Z: 0},
	}, r.Points)
	require.Empty(t, r.Vias)
}

func TestStitch_LayerChangeEmitsVia(t *testing.T) {
	islands := []Island{
		{
			RootConnectionName: "NET1",
			Points: []geom.Point{
				{X: 0, Y: 0, Z: 0},
				{X: 1, Y: 0, Z: 0},
			},
		},
		{
			RootConnectionName: "NET1",
			Points: []geom.Point{
				{X: 1, Y: 0, Z: 1},
				{X: 2, Y: 0, Z: 1},
			},
		},
	}

	routes := Stitch(islands)
	require.Len(t, routes, 1)
	r := routes[0]
	require.Len(t, r.Vias, 1)
	require.Equal(t, geom.Point{X: 1, Y: 0, Z: 0}, r.Vias[0])
	require.Equal(t, []geom.Point{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 1},
		{X: 2, Y: 0, Z: 1},
	}, r.Points)
}

func TestStitch_SeparateRootsStayIndependent(t *testing.T) {
	islands := []Island{
		{RootConnectionName: "A", Points: []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}},
		{RootConnectionName: "B", Points: []geom.Point{{X: 5, Y: 5}, {X: 6, Y: 5}}},
	}

	routes := Stitch(islands)
	require.Len(t, routes, 2)

	names := map[string]bool{}
	for _, r := range routes {
		names[r.RootConnectionName] = true
	}
	require.True(t, names["A"])
	require.True(t, names["B"])
}

func TestStitch_DisjointIslandsSameRootYieldTwoComponents(t *testing.T) {
	islands := []Island{
		{RootConnectionName: "NET1", Points: []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}},
		{RootConnectionName: "NET1", Points: []geom.Point{{X: 50, Y: 50}, {X: 51, Y: 50}}},
	}

	routes := Stitch(islands)
	require.Len(t, routes, 2)
	for _, r := range routes {
		require.Equal(t, "NET1", r.RootConnectionName)
		require.Len(t, r.Points, 2)
	}
}

func TestStitch_ThreeIslandChainWithReversedIslandWalksLinearly(t *testing.T) {
	// A three-island chain joined at (1,0) and (2,0); the middle island runs reversed.
	islands := []Island{
		{RootConnectionName: "NET1", Points: []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}},
		{RootConnectionName: "NET1", Points: []geom.Point{{X: 2, Y: 0}, {X: 1, Y: 0}}}, // reversed orientation
		{RootConnectionName: "NET1", Points: []geom.Point{{X: 2, Y: 0}, {X: 3, Y: 0}}},
	}

	routes := Stitch(islands)
	require.Len(t, routes, 1)
	r := routes[0]
	require.Len(t, r.Points, 4)
	require.Equal(t, 0.0, r.Points[0].X)
	require.Equal(t, 3.0, r.Points[len(r.Points)-1].X)
}
