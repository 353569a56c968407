package stitch

// graph treats every island as one edge between its two endpoint keys.
type graph struct {
	adjacency map[nodeKey][]int // node -> indices into islands touching it
}

func buildGraph(islands []Island) *graph {
	g := &graph{adjacency: make(map[nodeKey][]int)}
	for i, isl := range islands {
		if len(isl.Points) == 0 {
			continue
		}
		a := keyOf(isl.Points[0])
		b := keyOf(isl.Points[len(isl.Points)-1])
		g.adjacency[a] = append(g.adjacency[a], i)
		if b != a {
			g.adjacency[b] = append(g.adjacency[b], i)
		}
	}
	return g
}

// component is one connected group of islands: its member island indices
// and the keys of every node with degree 1 (the group's open ends).
type component struct {
	islands   []int
	endpoints []nodeKey
}

// connectedComponents walks islands' shared-endpoint graph with the same
// visited-set-plus-queue BFS shape as lvlath/gridgraph's
// ConnectedComponents, grouped per rootConnectionName island subset.
func connectedComponents(islands []Island) []component {
	g := buildGraph(islands)
	visitedIsland := make([]bool, len(islands))
	var comps []component

	for start := range islands {
		if visitedIsland[start] || len(islands[start].Points) == 0 {
			continue
		}

		queue := []int{start}
		visitedIsland[start] = true
		visitedNode := map[nodeKey]bool{}
		var members []int

		for qi := 0; qi < len(queue); qi++ {
			idx := queue[qi]
			members = append(members, idx)
			isl := islands[idx]
			a := keyOf(isl.Points[0])
			b := keyOf(isl.Points[len(isl.Points)-1])
			for _, k := range []nodeKey{a, b} {
				if visitedNode[k] {
					continue
				}
				visitedNode[k] = true
				for _, nbrIdx := range g.adjacency[k] {
					if !visitedIsland[nbrIdx] {
						visitedIsland[nbrIdx] = true
						queue = append(queue, nbrIdx)
					}
				}
			}
		}

		var endpoints []nodeKey
		for k := range visitedNode {
			if len(g.adjacency[k]) == 1 {
				endpoints = append(endpoints, k)
			}
		}
		comps = append(comps, component{islands: members, endpoints: endpoints})
	}
	return comps
}
