package meshbuild

import (
	"github.com/pcbroute/router/geom"
	"github.com/pcbroute/router/meshmodel"
	"github.com/pcbroute/router/srj"
)

// Options configures CapacityMeshBuilder. Zero value is not valid; use
// DefaultOptions.
type Options struct {
	// TargetMinCapacity is the leaf-cell minimum-dimension stopping
	// threshold (spec.md §4.2 default 0.5).
	TargetMinCapacity float64
	// CapacityDepth, when non-zero, overrides the depth computed from
	// TargetMinCapacity (spec.md §6 `capacityDepth` config option).
	CapacityDepth int
}

// DefaultOptions returns TargetMinCapacity=0.5, auto-computed depth.
func DefaultOptions() Options {
	return Options{TargetMinCapacity: 0.5}
}

// obstacleCell is a pending obstacle awaiting its cell-carve step.
type obstacleCell struct {
	rect          geom.Rect
	layers        []int
	containsTarget bool
}

// Builder is the stepping CapacityMeshBuilder solver.
type Builder struct {
	layerCount int
	threshold  float64

	pendingObstacles []obstacleCell
	freeQueue        []geom.Rect

	mesh   *meshmodel.Mesh
	solved bool
	failed bool
	err    error
}

// New constructs a Builder for the given board rectangle, layer count, and
// obstacle list. Construction never fails (spec.md §7: malformed bounds are
// silently accepted).
func New(board geom.Rect, layerCount int, obstacles []srj.Obstacle, opts Options) *Builder {
	depth := opts.CapacityDepth
	var threshold float64
	maxDim := board.W
	if board.H > maxDim {
		maxDim = board.H
	}
	if depth > 0 {
		threshold = maxDim
		for i := 0; i < depth; i++ {
			threshold /= 2
		}
	} else {
		depth, threshold = CalculateOptimalCapacityDepth(maxDim, opts.TargetMinCapacity)
	}

	b := &Builder{
		layerCount: layerCount,
		threshold:  threshold,
		mesh:       meshmodel.New(),
	}

	for _, o := range obstacles {
		r, ok := board.Intersection(geom.NewRect(o.CX, o.CY, o.Width, o.Height))
		if !ok {
			continue
		}
		b.pendingObstacles = append(b.pendingObstacles, obstacleCell{
			rect:           r,
			layers:         o.Layers,
			containsTarget: len(o.ConnectedTo) > 0,
		})
	}
	b.freeQueue = []geom.Rect{board}

	return b
}

// Solved reports whether the mesh is fully built.
func (b *Builder) Solved() bool { return b.solved }

// Failed reports whether the builder gave up (never happens for this
// stage today, but the uniform contract requires the accessor).
func (b *Builder) Failed() bool { return b.failed }

// Err returns the terminal error, if any.
func (b *Builder) Err() error { return b.err }

// Mesh returns the arena built so far — usable mid-build for preview
// rendering (spec.md §5).
func (b *Builder) Mesh() *meshmodel.Mesh { return b.mesh }

// Step advances the builder by one unit of work: carving one obstacle out
// of the free-rect queue, or subdividing/finalizing one candidate free
// rect. Returns true once Solved().
func (b *Builder) Step() bool {
	if b.solved || b.failed {
		return true
	}

	if len(b.pendingObstacles) > 0 {
		b.carveOneObstacle()
		return false
	}

	if len(b.freeQueue) == 0 {
		b.solved = true
		return true
	}

	r := b.freeQueue[0]
	b.freeQueue = b.freeQueue[1:]
	b.subdivideOrFinalize(r)
	return false
}

// Run drives Step to completion (bounded by the subdivision depth guard).
func (b *Builder) Run() {
	for !b.Step() {
	}
}

func (b *Builder) carveOneObstacle() {
	oc := b.pendingObstacles[0]
	b.pendingObstacles = b.pendingObstacles[1:]

	next := make([]geom.Rect, 0, len(b.freeQueue))
	carved := false
	for _, r := range b.freeQueue {
		if !r.Overlaps(oc.rect) {
			next = append(next, r)
			continue
		}
		carved = true
		next = append(next, geom.RectDifference(r, oc.rect)...)
	}
	b.freeQueue = next

	if carved || len(b.freeQueue) == 0 {
		id := b.mesh.AddNode(oc.rect, b.layerCount)
		n := b.mesh.Node(id)
		n.ContainsObstacle = true
		n.ContainsTarget = oc.containsTarget
		blocked := make(map[int]bool, len(oc.layers))
		for _, z := range oc.layers {
			blocked[z] = true
		}
		for z := 0; z < b.layerCount; z++ {
			n.SetAvailableZ(z, !blocked[z])
		}
	}
}

func (b *Builder) subdivideOrFinalize(r geom.Rect) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	if r.MinDimension() <= b.threshold {
		id := b.mesh.AddNode(r, b.layerCount)
		n := b.mesh.Node(id)
		for z := 0; z < b.layerCount; z++ {
			n.SetAvailableZ(z, true)
		}
		return
	}

	// Split along the longer axis, as the recursive halving scheme
	// described in spec.md §4.2 implies.
	if r.W >= r.H {
		half := r.W / 2
		left := geom.NewRect(r.MinX()+half/2, r.CY, half, r.H)
		right := geom.NewRect(r.MaxX()-half/2, r.CY, half, r.H)
		b.freeQueue = append(b.freeQueue, left, right)
	} else {
		half := r.H / 2
		top := geom.NewRect(r.CX, r.MinY()+half/2, r.W, half)
		bottom := geom.NewRect(r.CX, r.MaxY()-half/2, r.W, half)
		b.freeQueue = append(b.freeQueue, top, bottom)
	}
}
