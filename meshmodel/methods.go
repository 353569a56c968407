package meshmodel

import "github.com/pcbroute/router/geom"

// AddNode appends a new node with the given rectangle and layer count to
// the arena and returns its ID. All layers start available; callers clear
// individual layers via SetAvailableZ as obstacles are discovered.
// Complexity: O(1) amortized.
func (m *Mesh) AddNode(rect geom.Rect, layerCount int) NodeID {
	m.muNode.Lock()
	defer m.muNode.Unlock()

	id := NodeID(len(m.nodes))
	n := &Node{
		ID:                       id,
		Rect:                     rect,
		LayerN:                   layerCount,
		OffBoardConnectionID:     -1,
		OffBoardConnectedNodeIDs: nil,
	}
	m.nodes = append(m.nodes, n)
	return id
}

// Node returns the node for id, or nil if it does not exist.
// Complexity: O(1).
func (m *Mesh) Node(id NodeID) *Node {
	m.muNode.RLock()
	defer m.muNode.RUnlock()
	if int(id) < 0 || int(id) >= len(m.nodes) {
		return nil
	}
	return m.nodes[id]
}

// NumNodes returns the number of nodes in the arena.
func (m *Mesh) NumNodes() int {
	m.muNode.RLock()
	defer m.muNode.RUnlock()
	return len(m.nodes)
}

// Nodes returns every node in the arena, in ID order. The slice is owned by
// the caller; mutating it does not affect the mesh.
func (m *Mesh) Nodes() []*Node {
	m.muNode.RLock()
	defer m.muNode.RUnlock()
	out := make([]*Node, len(m.nodes))
	copy(out, m.nodes)
	return out
}

// AddEdge appends a new edge between a and b and records it in both
// endpoints' adjacency lists. Returns ErrNodeNotFound if either endpoint
// does not exist, ErrSelfEdge if a == b.
// Complexity: O(1) amortized.
func (m *Mesh) AddEdge(a, b NodeID, layers []int, offboard bool, overlapLength float64) (EdgeID, error) {
	if a == b {
		return 0, ErrSelfEdge
	}
	if m.Node(a) == nil || m.Node(b) == nil {
		return 0, ErrNodeNotFound
	}

	m.muEdge.Lock()
	defer m.muEdge.Unlock()

	id := EdgeID(len(m.edges))
	e := &Edge{
		ID:             id,
		A:              a,
		B:              b,
		Layers:         append([]int(nil), layers...),
		OverlapLength:  overlapLength,
		IsOffboardEdge: offboard,
	}
	m.edges = append(m.edges, e)
	m.adjacency[a] = append(m.adjacency[a], id)
	m.adjacency[b] = append(m.adjacency[b], id)
	return id, nil
}

// Edge returns the edge for id, or nil if it does not exist.
func (m *Mesh) Edge(id EdgeID) *Edge {
	m.muEdge.RLock()
	defer m.muEdge.RUnlock()
	if int(id) < 0 || int(id) >= len(m.edges) {
		return nil
	}
	return m.edges[id]
}

// NumEdges returns the number of edges in the arena.
func (m *Mesh) NumEdges() int {
	m.muEdge.RLock()
	defer m.muEdge.RUnlock()
	return len(m.edges)
}

// IncidentEdges returns the IDs of every edge touching node id, in
// insertion order. Complexity: O(degree(id)).
func (m *Mesh) IncidentEdges(id NodeID) []EdgeID {
	m.muEdge.RLock()
	defer m.muEdge.RUnlock()
	out := make([]EdgeID, len(m.adjacency[id]))
	copy(out, m.adjacency[id])
	return out
}

// Neighbors returns the IDs of every node adjacent to id via a physical or
// off-board edge. Complexity: O(degree(id)).
func (m *Mesh) Neighbors(id NodeID) []NodeID {
	edges := m.IncidentEdges(id)
	out := make([]NodeID, 0, len(edges))
	m.muEdge.RLock()
	defer m.muEdge.RUnlock()
	for _, eid := range edges {
		e := m.edges[eid]
		out = append(out, e.Other(id))
	}
	return out
}
