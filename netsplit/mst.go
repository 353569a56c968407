package netsplit

import (
	"math"

	"github.com/pcbroute/router/srj"
)

// mstEdge is one edge of the minimum spanning tree over a connection's
// points, indexing into the original Points slice.
type mstEdge struct {
	I, J int
}

// pointsMST runs Prim's algorithm in O(n²) over the complete Euclidean
// graph of pts, exactly as lvlath/tsp.mstDense runs Prim over a dense
// distance matrix — here the matrix is computed on the fly from raw
// coordinates instead of being supplied.
//
// Complexity: O(n²) time, O(n) space.
func pointsMST(pts []srj.ConnectionPoint) []mstEdge {
	n := len(pts)
	if n < 2 {
		return nil
	}

	inMST := make([]bool, n)
	bestCost := make([]float64, n)
	parent := make([]int, n)
	for i := range bestCost {
		bestCost[i] = math.Inf(1)
		parent[i] = -1
	}
	bestCost[0] = 0

	edges := make([]mstEdge, 0, n-1)

	for iter := 0; iter < n; iter++ {
		u := -1
		minW := math.Inf(1)
		for v := 0; v < n; v++ {
			if !inMST[v] && bestCost[v] < minW {
				minW = bestCost[v]
				u = v
			}
		}
		if u == -1 {
			break // unreachable only if n==0, already guarded above
		}
		inMST[u] = true
		if parent[u] != -1 {
			edges = append(edges, mstEdge{I: parent[u], J: u})
		}
		for v := 0; v < n; v++ {
			if inMST[v] {
				continue
			}
			w := dist(pts[u], pts[v])
			if w < bestCost[v] {
				bestCost[v] = w
				parent[v] = u
			}
		}
	}

	return edges
}

func dist(a, b srj.ConnectionPoint) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}
