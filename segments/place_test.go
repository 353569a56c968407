package segments

import (
	"testing"

	"github.com/pcbroute/router/geom"
	"github.com/pcbroute/router/meshedges"
	"github.com/pcbroute/router/meshmodel"
	"github.com/stretchr/testify/require"
)

func TestPlace_UniformSpacingAndCenter(t *testing.T) {
	mesh := meshmodel.New()
	mesh.AddNode(geom.NewRect(0, 0, 2, 2), 1)
	mesh.AddNode(geom.NewRect(2, 0, 2, 2), 1) // shares a 2-long boundary at x=1
	require.NoError(t, meshedges.Build(mesh))
	require.Equal(t, 1, mesh.NumEdges())

	p := Place(mesh, Options{TraceWidth: 0.2}) // spacing=0.4, boundary len=2 => 5 points
	pts := p.PortPoints(0)
	require.Len(t, pts, 5)
	for i := 1; i < len(pts); i++ {
		require.Greater(t, pts[i].Y, pts[i-1].Y)
	}
	// Middle point (index 2) is the centermost.
	require.Equal(t, 0, pts[2].DistToCentermostPortOnZ)
	require.Equal(t, 2, pts[0].DistToCentermostPortOnZ)
}

func TestPlace_ShortBoundaryYieldsNoPoints(t *testing.T) {
	mesh := meshmodel.New()
	mesh.AddNode(geom.NewRect(0, 0, 0.1, 0.05), 1)
	mesh.AddNode(geom.NewRect(0.1, 0, 0.1, 0.05), 1)
	require.NoError(t, meshedges.Build(mesh))

	p := Place(mesh, DefaultOptions())
	require.Empty(t, p.PortPoints(0))
}
