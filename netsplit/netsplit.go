package netsplit

import (
	"fmt"
	"math"

	"github.com/pcbroute/router/srj"
)

// offBoardGroup is one equivalence class of obstacles declared electrically
// joined off-board, together with the connection-point-shaped centers a
// sub-connection endpoint may be substituted with.
type offBoardGroup struct {
	centers []srj.ConnectionPoint
}

// buildOffBoardGroups unions every pair of obstacles that share an entry in
// OffBoardConnectsTo, then returns, for each obstacle ID in a non-trivial
// group, the group's member centers (spec.md §4.3/§4.1).
func buildOffBoardGroups(obstacles []srj.Obstacle) map[string]*offBoardGroup {
	d := newDSU()
	for _, o := range obstacles {
		if len(o.OffBoardConnectsTo) > 0 {
			d.add(obstacleKey(o.ID))
		}
		for _, tag := range o.OffBoardConnectsTo {
			d.add(tagKey(tag))
			d.union(obstacleKey(o.ID), tagKey(tag))
		}
	}

	byRoot := make(map[string][]srj.Obstacle)
	for _, o := range obstacles {
		if len(o.OffBoardConnectsTo) == 0 {
			continue
		}
		root := d.find(obstacleKey(o.ID))
		byRoot[root] = append(byRoot[root], o)
	}

	out := make(map[string]*offBoardGroup)
	for _, members := range byRoot {
		if len(members) < 2 {
			continue // a "group" of one has nothing to substitute with
		}
		g := &offBoardGroup{}
		for _, o := range members {
			g.centers = append(g.centers, srj.ConnectionPoint{X: o.CX, Y: o.CY, Layers: o.Layers})
		}
		for _, o := range members {
			out[o.ID] = g
		}
	}
	return out
}

func obstacleKey(id string) string { return "obs:" + id }
func tagKey(tag string) string     { return "tag:" + tag }

// findGroupFor returns the off-board group a connection point belongs to,
// by proximity to an obstacle's center, or nil if none matches.
func findGroupFor(p srj.ConnectionPoint, obstacles []srj.Obstacle, groups map[string]*offBoardGroup, tol float64) *offBoardGroup {
	for _, o := range obstacles {
		g, ok := groups[o.ID]
		if !ok {
			continue
		}
		if math.Hypot(p.X-o.CX, p.Y-o.CY) <= tol {
			return g
		}
	}
	return nil
}

// substituteClosestPair replaces (a, b) with the closest pair drawn from
// a's and b's off-board groups (falling back to the original point when a
// side has no group), per spec.md §4.1's off-board optimization.
func substituteClosestPair(a, b srj.ConnectionPoint, obstacles []srj.Obstacle, groups map[string]*offBoardGroup, tol float64) (srj.ConnectionPoint, srj.ConnectionPoint) {
	ga := findGroupFor(a, obstacles, groups, tol)
	gb := findGroupFor(b, obstacles, groups, tol)
	if ga == nil && gb == nil {
		return a, b
	}

	candA := []srj.ConnectionPoint{a}
	if ga != nil {
		candA = ga.centers
	}
	candB := []srj.ConnectionPoint{b}
	if gb != nil {
		candB = gb.centers
	}

	bestA, bestB := a, b
	bestDist := math.Inf(1)
	for _, ca := range candA {
		for _, cb := range candB {
			d := math.Hypot(ca.X-cb.X, ca.Y-cb.Y)
			if d < bestDist {
				bestDist = d
				bestA, bestB = ca, cb
			}
		}
	}
	return bestA, bestB
}

// sameGroup reports whether indices i and j of conn's points were declared
// already joined off-board via ExternallyConnectedPointIds, triggering the
// sub-connection skip rule (spec.md §4.1).
func sameGroup(conn srj.Connection, i, j int) bool {
	for _, ids := range conn.ExternallyConnectedPointIds {
		foundI, foundJ := false, false
		for _, idx := range ids {
			if idx == i {
				foundI = true
			}
			if idx == j {
				foundJ = true
			}
		}
		if foundI && foundJ {
			return true
		}
	}
	return false
}

// Decompose reduces every multi-point connection in conns to two-point
// SubConnections (spec.md §4.1). It never fails: degenerate connections
// (fewer than two points) simply emit nothing.
func Decompose(conns []srj.Connection, obstacles []srj.Obstacle, opts Options) []SubConnection {
	groups := buildOffBoardGroups(obstacles)

	var out []SubConnection
	for _, conn := range conns {
		if len(conn.Points) < 2 {
			continue
		}
		edges := pointsMST(conn.Points)
		for k, e := range edges {
			if sameGroup(conn, e.I, e.J) {
				continue
			}
			a, b := conn.Points[e.I], conn.Points[e.J]
			if opts.OffBoardOptimization {
				a, b = substituteClosestPair(a, b, obstacles, groups, opts.CoincidenceTolerance)
			}
			name := conn.Name
			if len(edges) > 1 {
				name = fmt.Sprintf("%s_mst%d", conn.Name, k)
			}
			out = append(out, SubConnection{
				Name:               name,
				RootConnectionName: conn.Name,
				A:                  a,
				B:                  b,
			})
		}
	}
	return out
}
