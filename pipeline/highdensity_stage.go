package pipeline

import (
	"github.com/pcbroute/router/astar"
	"github.com/pcbroute/router/geom"
	"github.com/pcbroute/router/highdensity"
	"github.com/pcbroute/router/meshmodel"
	"github.com/pcbroute/router/netsplit"
	"github.com/pcbroute/router/segments"
)

// portCoord resolves a ChosenPortPoint to its physical (x, y), carrying
// the layer the route is on as it crosses.
func portCoord(placer *segments.Placer, cp astar.ChosenPortPoint) (geom.Point, bool) {
	for _, pp := range placer.PortPoints(cp.EdgeID) {
		if pp.Index == cp.Index {
			return geom.Point{X: pp.X, Y: pp.Y, Z: cp.Z}, true
		}
	}
	return geom.Point{}, false
}

// nodeSequence walks a routed result's chosen port points into the mesh
// node sequence it actually traverses, StartNode..EndNode inclusive.
func nodeSequence(mesh *meshmodel.Mesh, res astar.Result) []meshmodel.NodeID {
	seq := []meshmodel.NodeID{res.Request.StartNode}
	cur := res.Request.StartNode
	for _, cp := range res.Path {
		e := mesh.Edge(cp.EdgeID)
		if e == nil {
			break
		}
		cur = e.Other(cur)
		seq = append(seq, cur)
	}
	return seq
}

// collectCrossings turns every routed result's path into per-node
// NetCrossing entries, keyed by the mesh node the crossing happens in. The
// sequence of crossing points for one result is: its start pad, every
// chosen port point in path order, then its end pad — one more entry than
// the node sequence, so consecutive pairs give each node's (entry, exit).
func collectCrossings(mesh *meshmodel.Mesh, placer *segments.Placer, results []astar.Result, byName map[string]netsplit.SubConnection) map[meshmodel.NodeID][]highdensity.NetCrossing {
	out := map[meshmodel.NodeID][]highdensity.NetCrossing{}
	for _, res := range results {
		if res.Failed {
			continue
		}
		sub, ok := byName[res.Request.Name]
		if !ok {
			continue
		}
		seq := nodeSequence(mesh, res)

		crossingPoints := make([]geom.Point, 0, len(seq)+1)
		crossingPoints = append(crossingPoints, geom.Point{X: sub.A.X, Y: sub.A.Y, Z: res.Request.StartZ})
		for _, cp := range res.Path {
			p, ok := portCoord(placer, cp)
			if !ok {
				continue
			}
			crossingPoints = append(crossingPoints, p)
		}
		crossingPoints = append(crossingPoints, geom.Point{X: sub.B.X, Y: sub.B.Y, Z: res.Request.EndZ})

		if len(crossingPoints) != len(seq)+1 {
			continue // a port-point lookup failed; skip this result's cells rather than emit a mismatched pairing
		}

		for i, node := range seq {
			entry, exit := crossingPoints[i], crossingPoints[i+1]
			out[node] = append(out[node], highdensity.NetCrossing{
				RootConnectionName: res.Request.RootConnectionName,
				A:                  entry,
				B:                  exit,
				Z:                  entry.Z,
			})
		}
	}
	return out
}
