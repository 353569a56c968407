package meshmodel

import (
	"errors"
	"sync"

	"github.com/pcbroute/router/geom"
)

// Sentinel errors for mesh arena operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node ID.
	ErrNodeNotFound = errors.New("meshmodel: node not found")
	// ErrEdgeNotFound indicates an operation referenced a non-existent edge ID.
	ErrEdgeNotFound = errors.New("meshmodel: edge not found")
	// ErrSelfEdge indicates an edge was requested between a node and itself.
	ErrSelfEdge = errors.New("meshmodel: edge endpoints must differ")
)

// NodeID identifies a CapacityMeshNode within a Mesh's arena.
type NodeID int32

// EdgeID identifies a CapacityMeshEdge within a Mesh's arena.
type EdgeID int32

// Node is a CapacityMeshNode (spec.md §3): an axis-aligned cell with a
// layer-availability set and the obstacle/target/off-board annotations the
// pipeline attaches as it runs. AvailableZ, ContainsObstacle and
// ContainsTarget are set once by CapacityMeshBuilder; the OffBoard* fields
// are the pipeline's one documented exception to "earlier outputs are
// never mutated" (spec.md §3 Lifecycle).
type Node struct {
	ID     NodeID
	Rect   geom.Rect
	LayerN int // total layer count of the board, for AvailableZ bounds

	availableZ map[int]bool // layer index -> available

	ContainsObstacle bool
	ContainsTarget   bool

	OffBoardConnectionID      int // -1 when this node has no off-board binding
	OffBoardConnectedNodeIDs  map[NodeID]bool
}

// AvailableZ reports whether layer z is routable within this node.
func (n *Node) AvailableZ(z int) bool {
	if n.availableZ == nil {
		return true
	}
	return n.availableZ[z]
}

// SetAvailableZ marks layer z as routable (present=true) or blocked.
func (n *Node) SetAvailableZ(z int, present bool) {
	if n.availableZ == nil {
		n.availableZ = make(map[int]bool, n.LayerN)
		for l := 0; l < n.LayerN; l++ {
			n.availableZ[l] = true
		}
	}
	n.availableZ[z] = present
}

// AvailableLayers returns the sorted list of layers this node serves.
func (n *Node) AvailableLayers() []int {
	out := make([]int, 0, n.LayerN)
	for z := 0; z < n.LayerN; z++ {
		if n.AvailableZ(z) {
			out = append(out, z)
		}
	}
	return out
}

// Edge is a CapacityMeshEdge (spec.md §3): an unordered pair of cell IDs,
// the layers jointly available across both endpoints, and whether this
// edge represents a physical adjacency or an off-board electrical bridge.
type Edge struct {
	ID             EdgeID
	A, B           NodeID
	Layers         []int
	OverlapLength  float64 // shared boundary length; 0 for off-board edges
	IsOffboardEdge bool
}

// Other returns the endpoint of e that is not from.
func (e *Edge) Other(from NodeID) NodeID {
	if e.A == from {
		return e.B
	}
	return e.A
}

// Mesh is the flat arena of nodes and edges backing the capacity mesh.
// Node/Edge storage is a slice indexed by ID; adjacency is a map from
// NodeID to the list of incident EdgeIDs, never a pointer graph.
type Mesh struct {
	muNode sync.RWMutex
	muEdge sync.RWMutex

	nodes []*Node
	edges []*Edge

	adjacency map[NodeID][]EdgeID
}

// New creates an empty Mesh.
func New() *Mesh {
	return &Mesh{adjacency: make(map[NodeID][]EdgeID)}
}
