package meshmodel

import (
	"testing"

	"github.com/pcbroute/router/geom"
	"github.com/stretchr/testify/require"
)

func TestMesh_AddNodeAddEdge(t *testing.T) {
	m := New()
	a := m.AddNode(geom.NewRect(0, 0, 1, 1), 2)
	b := m.AddNode(geom.NewRect(1, 0, 1, 1), 2)

	require.Equal(t, 2, m.NumNodes())

	eid, err := m.AddEdge(a, b, []int{0, 1}, false, 1.0)
	require.NoError(t, err)
	require.Equal(t, 1, m.NumEdges())

	neighbors := m.Neighbors(a)
	require.Equal(t, []NodeID{b}, neighbors)

	e := m.Edge(eid)
	require.Equal(t, []int{0, 1}, e.Layers)
	require.False(t, e.IsOffboardEdge)
}

func TestMesh_AddEdge_Errors(t *testing.T) {
	m := New()
	a := m.AddNode(geom.NewRect(0, 0, 1, 1), 1)

	_, err := m.AddEdge(a, a, nil, false, 0)
	require.ErrorIs(t, err, ErrSelfEdge)

	_, err = m.AddEdge(a, NodeID(99), nil, false, 0)
	require.ErrorIs(t, err, ErrNodeNotFound)
}

func TestNode_AvailableLayers(t *testing.T) {
	n := &Node{LayerN: 4}
	require.Equal(t, []int{0, 1, 2, 3}, n.AvailableLayers())

	n.SetAvailableZ(2, false)
	require.Equal(t, []int{0, 1, 3}, n.AvailableLayers())
}
