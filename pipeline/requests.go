package pipeline

import (
	"fmt"

	"github.com/pcbroute/router/astar"
	"github.com/pcbroute/router/meshmodel"
	"github.com/pcbroute/router/netsplit"
)

// buildRequests turns NetToPointPairs' sub-connections into
// PortPointPathing requests. spec.md §4.1 guarantees NetToPointPairs
// itself never fails; a sub-connection endpoint that falls outside every
// mesh cell is a pipeline-level input error (the point lies off the board
// bounds CapacityMeshBuilder tiled), reported rather than silently dropped.
func buildRequests(mesh *meshmodel.Mesh, subs []netsplit.SubConnection) ([]astar.Request, error) {
	out := make([]astar.Request, 0, len(subs))
	for _, sc := range subs {
		startNode, ok := findNode(mesh, sc.A.X, sc.A.Y)
		if !ok {
			return nil, fmt.Errorf("pipeline: connection %q: point (%g, %g) falls outside every mesh cell", sc.Name, sc.A.X, sc.A.Y)
		}
		endNode, ok := findNode(mesh, sc.B.X, sc.B.Y)
		if !ok {
			return nil, fmt.Errorf("pipeline: connection %q: point (%g, %g) falls outside every mesh cell", sc.Name, sc.B.X, sc.B.Y)
		}
		out = append(out, astar.Request{
			Name:               sc.Name,
			RootConnectionName: sc.RootConnectionName,
			StartNode:          startNode,
			EndNode:            endNode,
			StartZ:             pickLayer(mesh, startNode, sc.A),
			EndZ:               pickLayer(mesh, endNode, sc.B),
		})
	}
	return out, nil
}
