package astar

import "github.com/pcbroute/router/meshmodel"

// candidate is one partial path during a single A* search: the cell/layer
// reached, the port point used to cross into it, cost-so-far g, heuristic
// h, and the parent candidate to walk back for path reconstruction.
type candidate struct {
	node    meshmodel.NodeID
	z       int
	viaEdge meshmodel.EdgeID // sentinel -1 for the start candidate
	viaIdx  int
	parent  *candidate
	g, h, f float64
}

// candidatePQ is a min-heap of *candidate ordered by f ascending, ties
// broken by h ascending — the same lazy-decrease-key pattern as
// lvlath/dijkstra's nodePQ, generalized to a two-key comparator since A*
// orders candidates by f=g+h rather than Dijkstra's plain g.
type candidatePQ []*candidate

func (pq candidatePQ) Len() int { return len(pq) }

func (pq candidatePQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].h < pq[j].h
}

func (pq candidatePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *candidatePQ) Push(x interface{}) { *pq = append(*pq, x.(*candidate)) }

func (pq *candidatePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
