package stitch

import "github.com/pcbroute/router/geom"

// Stitch runs RouteStitch to completion: islands are grouped by
// RootConnectionName, each group's connected components are walked from
// one open end to the other, and every component becomes one Route.
func Stitch(islands []Island) []Route {
	byRoot := map[string][]Island{}
	order := []string{}
	for _, isl := range islands {
		if _, ok := byRoot[isl.RootConnectionName]; !ok {
			order = append(order, isl.RootConnectionName)
		}
		byRoot[isl.RootConnectionName] = append(byRoot[isl.RootConnectionName], isl)
	}

	var out []Route
	for _, root := range order {
		group := byRoot[root]
		for _, comp := range connectedComponents(group) {
			out = append(out, walkComponent(root, group, comp))
		}
	}
	return out
}

func walkComponent(root string, islands []Island, comp component) Route {
	g := buildGraph(islands)
	memberSet := map[int]bool{}
	for _, i := range comp.islands {
		memberSet[i] = true
	}

	start := lowestEndpoint(comp, islands)

	visited := map[int]bool{}
	var points []geom.Point
	var vias []geom.Point
	current := start
	var lastZ int
	haveLast := false

	for {
		nextIdx, reversed := pickUnvisitedEdge(g, islands, current, memberSet, visited)
		if nextIdx < 0 {
			break
		}
		visited[nextIdx] = true

		seq := islands[nextIdx].Points
		if reversed {
			seq = reversePoints(seq)
		}

		for i, p := range seq {
			if i == 0 && haveLast {
				if p.Z == lastZ {
					continue // coincident with the previous segment's last point, same layer
				}
				vias = append(vias, geom.Point{X: p.X, Y: p.Y, Z: lastZ})
				// fall through: append p so the layer transition survives in
				// Points at its own (x, y), matching refine's via invariant.
			}
			points = append(points, p)
			lastZ = p.Z
			haveLast = true
		}

		if len(seq) > 0 {
			end := seq[len(seq)-1]
			current = keyOf(end)
		}
	}

	return Route{RootConnectionName: root, Points: points, Vias: vias}
}

// pickUnvisitedEdge returns an island index among members incident to
// current that has not yet been walked, and whether its Points run the
// opposite way (its last point, not its first, touches current).
func pickUnvisitedEdge(g *graph, islands []Island, current nodeKey, members map[int]bool, visited map[int]bool) (int, bool) {
	for _, idx := range g.adjacency[current] {
		if !members[idx] || visited[idx] {
			continue
		}
		pts := islands[idx].Points
		reversed := keyOf(pts[0]) != current
		return idx, reversed
	}
	return -1, false
}

// lowestEndpoint picks a deterministic walk start: the component's
// endpoint with the smallest (x, y), independent of map iteration order.
func lowestEndpoint(comp component, islands []Island) nodeKey {
	if len(comp.endpoints) == 0 {
		if len(comp.islands) == 0 {
			return nodeKey{}
		}
		return keyOf(islands[comp.islands[0]].Points[0])
	}
	best := comp.endpoints[0]
	for _, k := range comp.endpoints[1:] {
		if k.x < best.x || (k.x == best.x && k.y < best.y) {
			best = k
		}
	}
	return best
}

func reversePoints(pts []geom.Point) []geom.Point {
	out := make([]geom.Point, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}
