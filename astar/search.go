package astar

import (
	"container/heap"

	"github.com/pcbroute/router/geom"
	"github.com/pcbroute/router/meshmodel"
	"github.com/pcbroute/router/segments"
)

// memoryPenaltyFactor scales how strongly a cell that has already dead-ended
// this search discourages revisiting it, per spec.md §4.6's "memory-penalty
// term that accumulates recently-failed cells".
const memoryPenaltyFactor = 0.5

// portKey identifies one port-point candidate globally across the mesh.
type portKey struct {
	Edge meshmodel.EdgeID
	Idx  int
}

// ownerInfo records which sub-connection currently holds a port point, and
// at what cost, so a rip-up can pick the least-invested holder to evict.
type ownerInfo struct {
	root      string
	name      string
	investedG float64
}

// search runs a single-connection A* over mesh, claiming one port point per
// traversed shared edge. owner is shared mutable state across the whole
// shuffle-seed attempt: port points already claimed by a different
// rootConnectionName block traversal unless rip-up evicts them.
type search struct {
	mesh   *meshmodel.Mesh
	placer *segments.Placer
	pf     *pfModel
	owner  map[portKey]ownerInfo
	roots  map[meshmodel.NodeID]map[string]bool
	opts   Options

	avgHopLength float64
	failedCells  map[meshmodel.NodeID]int

	ripsUsed *int
	ripped   []string // names of connections evicted during this search
}

func newSearch(mesh *meshmodel.Mesh, placer *segments.Placer, pf *pfModel, owner map[portKey]ownerInfo, roots map[meshmodel.NodeID]map[string]bool, ripsUsed *int, opts Options) *search {
	return &search{
		mesh:         mesh,
		placer:       placer,
		pf:           pf,
		owner:        owner,
		roots:        roots,
		opts:         opts,
		avgHopLength: estimateAvgHopLength(mesh),
		failedCells:  map[meshmodel.NodeID]int{},
	}
}

func estimateAvgHopLength(mesh *meshmodel.Mesh) float64 {
	var total float64
	var n int
	for i := 0; i < mesh.NumEdges(); i++ {
		e := mesh.Edge(meshmodel.EdgeID(i))
		if e == nil {
			continue
		}
		a, b := mesh.Node(e.A), mesh.Node(e.B)
		if a == nil || b == nil {
			continue
		}
		total += geom.Dist2DXY(a.Rect.CX, a.Rect.CY, b.Rect.CX, b.Rect.CY)
		n++
	}
	if n == 0 {
		return 1
	}
	return total / float64(n)
}

func (s *search) heuristic(from, to meshmodel.NodeID) float64 {
	a, b := s.mesh.Node(from), s.mesh.Node(to)
	if a == nil || b == nil {
		return 0
	}
	d := geom.Dist2DXY(a.Rect.CX, a.Rect.CY, b.Rect.CX, b.Rect.CY)
	base := d / s.avgHopLength * s.opts.BaseCandidateCost
	return base + float64(s.failedCells[from])*memoryPenaltyFactor
}

// run finds one path for req. On success it commits every crossed port
// point to owner/pf and returns the Result. On failure (heap exhausted) it
// returns a failed Result. The returned error is always nil; a missing node
// also ends in a failed Result.
func (s *search) run(req Request) (*Result, error) {
	start := &candidate{node: req.StartNode, z: req.StartZ, viaEdge: -1}
	start.g = 0
	start.h = s.heuristic(req.StartNode, req.EndNode)
	start.f = start.g + start.h

	pq := make(candidatePQ, 0, 64)
	heap.Push(&pq, start)

	visited := map[meshmodel.NodeID]bool{}

	for pq.Len() > 0 {
		cur := heap.Pop(&pq).(*candidate)
		if visited[cur.node] {
			continue
		}

		if cur.node == req.EndNode {
			return s.finalize(req, cur), nil
		}
		visited[cur.node] = true

		expanded := s.expand(req, cur, &pq, visited)
		if !expanded {
			s.failedCells[cur.node]++
		}
	}

	return &Result{Request: req, Failed: true}, nil
}

func (s *search) expand(req Request, cur *candidate, pq *candidatePQ, visited map[meshmodel.NodeID]bool) bool {
	var any bool
	for _, eid := range s.mesh.IncidentEdges(cur.node) {
		e := s.mesh.Edge(eid)
		if e == nil {
			continue
		}
		neighbor := e.Other(cur.node)
		if visited[neighbor] {
			continue
		}
		nn := s.mesh.Node(neighbor)
		if nn == nil {
			continue
		}

		if e.IsOffboardEdge {
			if s.tryPush(req, cur, neighbor, cur.z, e.ID, -1, 0, pq) {
				any = true
			}
			continue
		}

		for _, pp := range s.placer.PortPoints(e.ID) {
			for _, z := range e.Layers {
				if !nn.AvailableZ(z) {
					continue
				}
				if s.tryPush(req, cur, neighbor, z, e.ID, pp.Index, s.opts.BaseCandidateCost, pq) {
					any = true
				}
			}
		}
	}
	return any
}

func (s *search) tryPush(req Request, cur *candidate, neighbor meshmodel.NodeID, z int, edge meshmodel.EdgeID, portIdx int, hopCost float64, pq *candidatePQ) bool {
	pfVal := s.pf.Pf(neighbor)

	if portIdx >= 0 {
		key := portKey{Edge: edge, Idx: portIdx}
		if owner, claimed := s.owner[key]; claimed && owner.root != req.RootConnectionName {
			if !s.attemptRip(key, owner, cur.g, pfVal) {
				return false
			}
		}
	}

	g := cur.g + hopCost + pfVal*pfVal*s.opts.NodePfFactor
	h := s.heuristic(neighbor, req.EndNode)
	next := &candidate{
		node: neighbor, z: z, viaEdge: edge, viaIdx: portIdx,
		parent: cur, g: g, h: h, f: g + h,
	}
	heap.Push(pq, next)
	return true
}

// attemptRip evicts a lower-priority port-point holder when the contended
// cell is congested enough (spec.md §4.6 cancellation/recovery). It only
// rips holders with less invested cost than the requesting path has
// already spent, and only while under MaxRips.
func (s *search) attemptRip(key portKey, owner ownerInfo, requestingG, cellPf float64) bool {
	if !s.opts.RippingEnabled || s.ripsUsed == nil || *s.ripsUsed >= s.opts.MaxRips {
		return false
	}
	if cellPf <= s.opts.RippingPfThreshold {
		return false
	}
	if owner.investedG >= requestingG {
		return false
	}
	delete(s.owner, key)
	*s.ripsUsed++
	s.ripped = append(s.ripped, owner.name)
	return true
}

// finalize walks cur back to the start candidate, committing every crossed
// port point to owner/pf, and returns the assembled Result.
func (s *search) finalize(req Request, cur *candidate) *Result {
	var chain []*candidate
	for c := cur; c != nil; c = c.parent {
		chain = append(chain, c)
	}
	// chain is end->start; reverse while emitting commits.
	path := make([]ChosenPortPoint, 0, len(chain))
	for i := len(chain) - 1; i >= 1; i-- {
		c := chain[i]
		child := chain[i-1]
		if child.viaIdx >= 0 {
			key := portKey{Edge: child.viaEdge, Idx: child.viaIdx}
			s.owner[key] = ownerInfo{root: req.RootConnectionName, name: req.Name, investedG: child.g}
			path = append(path, ChosenPortPoint{EdgeID: child.viaEdge, Index: child.viaIdx, Z: child.z})
		}
		s.pf.commit(child.node, c.z, child.z, req.RootConnectionName, s.roots)
	}
	return &Result{Request: req, Path: path, Cost: cur.f}
}
