package astar

import (
	"math"

	"github.com/pcbroute/router/meshmodel"
)

// nodeStat accumulates the congestion signals Pf needs but that only exist
// once connections start committing port points through a cell: the real
// same-layer-crossing count is HighDensity's job (package highdensity,
// which runs after this stage), so Pf approximates it from what is already
// committed — the cheapest signal available at pathing time.
type nodeStat struct {
	claims            int // port points committed through this node so far
	layerChanges      int // commits that entered on a different Z than they left
	distinctRootPairs int // pairs of committed claims from different rootConnectionNames
}

// pfModel tracks per-node congestion state across one shuffle-seed attempt.
type pfModel struct {
	mesh  *meshmodel.Mesh
	stats map[meshmodel.NodeID]*nodeStat
	opts  Options
}

func newPfModel(mesh *meshmodel.Mesh, opts Options) *pfModel {
	return &pfModel{mesh: mesh, stats: make(map[meshmodel.NodeID]*nodeStat), opts: opts}
}

func (p *pfModel) stat(id meshmodel.NodeID) *nodeStat {
	s, ok := p.stats[id]
	if !ok {
		s = &nodeStat{}
		p.stats[id] = s
	}
	return s
}

// Pf returns the probability-of-failure estimate for traversing node id
// (spec.md §4.6): 0 if it holds a target pad, 1 if it is single-layer and
// already carries a crossing or layer change, otherwise a capacity-scaled
// estimate of congestion.
func (p *pfModel) Pf(id meshmodel.NodeID) float64 {
	n := p.mesh.Node(id)
	if n == nil {
		return 1
	}
	if n.ContainsTarget {
		return 0
	}

	s := p.stat(id)
	singleLayer := len(n.AvailableLayers()) <= 1
	if singleLayer && (s.distinctRootPairs > 0 || s.layerChanges > 0) {
		return 1
	}

	sameLayerCrossings := float64(s.distinctRootPairs)
	entryExitLayerChanges := float64(s.layerChanges)
	transitionPairCrossings := float64(s.distinctRootPairs) * float64(s.layerChanges)

	estNumVias := 0.82*sameLayerCrossings + 0.41*entryExitLayerChanges + 0.2*transitionPairCrossings
	cap := totalCapacity(n, p.opts.TraceWidth)
	if cap <= 0 {
		return 1
	}
	pf := math.Pow(estNumVias/2, 1.1) / cap
	if pf > 1 {
		pf = 1
	}
	return pf
}

// totalCapacity estimates how many simultaneous crossings a node can
// tolerate before congestion failure, derived from the cell perimeter, the
// number of available layers, and nominal trace pitch (2·traceWidth); the
// cell area does not enter it. This is a deliberately simple proxy (documented
// as an implementer's judgment call): the true capacity depends on the
// jumper/curvy solution HighDensity eventually produces, which does not
// exist yet at pathing time.
func totalCapacity(n *meshmodel.Node, traceWidth float64) float64 {
	if traceWidth <= 0 {
		return 0
	}
	perimeter := 2*n.Rect.W + 2*n.Rect.H
	layers := float64(len(n.AvailableLayers()))
	return perimeter / (traceWidth * 2) * layers
}

// commit records that a connection claimed a port point through node id,
// entering on enterZ and leaving on exitZ, under rootConnectionName. It
// updates the congestion signals Pf reads for subsequent candidates.
func (p *pfModel) commit(id meshmodel.NodeID, enterZ, exitZ int, rootConnectionName string, priorRoots map[meshmodel.NodeID]map[string]bool) {
	s := p.stat(id)
	s.claims++
	if enterZ != exitZ {
		s.layerChanges++
	}
	roots := priorRoots[id]
	if roots == nil {
		roots = map[string]bool{}
		priorRoots[id] = roots
	}
	for existing := range roots {
		if existing != rootConnectionName {
			s.distinctRootPairs++
		}
	}
	roots[rootConnectionName] = true
}
