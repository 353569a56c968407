package meshedges

import "github.com/pcbroute/router/meshmodel"

// Build runs CapacityMeshEdges to completion over mesh: it emits one edge
// per pair of cells that physically touch (SharedBoundaryLength > 0), and
// one off-board bridge edge per pair of cells sharing a non-trivial
// OffBoardConnectionID. Build is idempotent only when called once per mesh;
// calling it twice duplicates edges.
func Build(mesh *meshmodel.Mesh) error {
	nodes := mesh.Nodes()

	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			a, b := nodes[i], nodes[j]
			overlap := a.Rect.SharedBoundaryLength(b.Rect)
			if overlap <= 0 {
				continue
			}
			layers := jointLayers(a, b)
			if _, err := mesh.AddEdge(a.ID, b.ID, layers, false, overlap); err != nil {
				return err
			}
		}
	}

	groups := map[int][]*meshmodel.Node{}
	for _, n := range nodes {
		if n.OffBoardConnectionID < 0 {
			continue
		}
		groups[n.OffBoardConnectionID] = append(groups[n.OffBoardConnectionID], n)
	}
	for _, members := range groups {
		for i := 0; i < len(members); i++ {
			for j := i + 1; j < len(members); j++ {
				a, b := members[i], members[j]
				// An off-board bridge is a free teleportation hop (spec.md
				// §4.3), so it carries whichever layers either side serves
				// rather than only the intersection a physical cut would.
				layers := unionLayers(a, b)
				if _, err := mesh.AddEdge(a.ID, b.ID, layers, true, 0); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func jointLayers(a, b *meshmodel.Node) []int {
	var out []int
	for _, z := range a.AvailableLayers() {
		if b.AvailableZ(z) {
			out = append(out, z)
		}
	}
	return out
}

func unionLayers(a, b *meshmodel.Node) []int {
	seen := map[int]bool{}
	var out []int
	for _, z := range a.AvailableLayers() {
		if !seen[z] {
			seen[z] = true
			out = append(out, z)
		}
	}
	for _, z := range b.AvailableLayers() {
		if !seen[z] {
			seen[z] = true
			out = append(out, z)
		}
	}
	return out
}
