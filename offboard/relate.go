package offboard

import (
	"math"

	"github.com/pcbroute/router/meshmodel"
	"github.com/pcbroute/router/srj"
)

// Options configures the collocation check.
type Options struct {
	// CenterTolerance is how close a cell's center must be to an
	// obstacle's center to count as "at" that obstacle.
	CenterTolerance float64
}

// DefaultOptions returns CenterTolerance=1e-3.
func DefaultOptions() Options {
	return Options{CenterTolerance: 1e-3}
}

func sharesLayer(n *meshmodel.Node, layers []int) bool {
	if len(layers) == 0 {
		return true
	}
	for _, z := range layers {
		if n.AvailableZ(z) || n.ContainsObstacle {
			// A node containing the obstacle itself may have that exact
			// layer marked unavailable (it's the obstacle's own keep-out);
			// it still "serves" that layer in the off-board-equivalence
			// sense since the pad physically sits there.
			return true
		}
	}
	return false
}

// Relate runs OffBoardNodeRelator to completion over mesh, given the
// original obstacle list. It never fails (spec.md §7): obstacles with no
// collocated cell simply contribute no union.
func Relate(mesh *meshmodel.Mesh, obstacles []srj.Obstacle, opts Options) {
	tagGroups := groupObstaclesByTag(obstacles)
	d := newDSU()
	nodes := mesh.Nodes()
	for _, n := range nodes {
		d.add(n.ID)
	}

	for _, members := range tagGroups {
		var matched []meshmodel.NodeID
		for _, o := range members {
			for _, n := range nodes {
				if math.Hypot(n.Rect.CX-o.CX, n.Rect.CY-o.CY) <= opts.CenterTolerance && sharesLayer(n, o.Layers) {
					matched = append(matched, n.ID)
				}
			}
		}
		for i := 1; i < len(matched); i++ {
			d.union(matched[0], matched[i])
		}
	}

	// Assign a dense connection ID per root, and populate each node's
	// OffBoardConnectedNodeIDs set.
	rootToGroup := map[meshmodel.NodeID][]meshmodel.NodeID{}
	for _, n := range nodes {
		root := d.find(n.ID)
		rootToGroup[root] = append(rootToGroup[root], n.ID)
	}

	connID := 0
	for root, members := range rootToGroup {
		if len(members) < 2 {
			continue // a trivial singleton group carries no off-board bridge
		}
		set := make(map[meshmodel.NodeID]bool, len(members))
		for _, id := range members {
			set[id] = true
		}
		for _, id := range members {
			n := mesh.Node(id)
			n.OffBoardConnectionID = connID
			n.OffBoardConnectedNodeIDs = set
		}
		_ = root
		connID++
	}
}

func groupObstaclesByTag(obstacles []srj.Obstacle) map[string][]srj.Obstacle {
	// Grouped by tag rather than by obstacle-DSU-root: an obstacle with
	// multiple distinct tags is filed under each, over-unioning
	// conservatively (spec.md §4.3's "union their ... sets" treats tag
	// membership as transitive).
	out := map[string][]srj.Obstacle{}
	for _, o := range obstacles {
		for _, tag := range o.OffBoardConnectsTo {
			out[tag] = append(out[tag], o)
		}
	}
	return out
}
