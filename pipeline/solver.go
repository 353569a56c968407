package pipeline

import (
	"sort"

	"github.com/pcbroute/router/astar"
	"github.com/pcbroute/router/geom"
	"github.com/pcbroute/router/highdensity"
	"github.com/pcbroute/router/meshbuild"
	"github.com/pcbroute/router/meshedges"
	"github.com/pcbroute/router/meshmodel"
	"github.com/pcbroute/router/netsplit"
	"github.com/pcbroute/router/offboard"
	"github.com/pcbroute/router/refine"
	"github.com/pcbroute/router/segments"
	"github.com/pcbroute/router/srj"
	"github.com/pcbroute/router/stitch"
)

// stage is one state in AutoroutingPipelineSolver's step machine.
type stage int

const (
	stagePrepare stage = iota
	stageMesh
	stageWire
	stageAstar
	stageCollect
	stageHighDensity
	stageStitch
	stageRefine
	stageOutput
	stageDone
)

func (s stage) String() string {
	switch s {
	case stagePrepare:
		return "prepare"
	case stageMesh:
		return "mesh"
	case stageWire:
		return "wire"
	case stageAstar:
		return "astar"
	case stageCollect:
		return "collect"
	case stageHighDensity:
		return "highDensity"
	case stageStitch:
		return "stitch"
	case stageRefine:
		return "refine"
	case stageOutput:
		return "output"
	default:
		return "done"
	}
}

// AutoroutingPipelineSolver runs the nine pipeline stages behind one
// cooperative Step(), mirroring every sub-stage's own Step()/Solved()/
// Failed() contract so a caller drives one outer loop regardless of which
// stage is currently running.
type AutoroutingPipelineSolver struct {
	input srj.SimpleRouteJson
	opts  Options
	hdOpts highdensity.Options

	stage  stage
	solved bool
	failed bool
	err    error

	subs      []netsplit.SubConnection
	subByName map[string]netsplit.SubConnection

	builder *meshbuild.Builder
	mesh    *meshmodel.Mesh
	placer  *segments.Placer

	astarSolver  *astar.Solver
	astarResults []astar.Result

	crossings map[meshmodel.NodeID][]highdensity.NetCrossing
	cellNodes []meshmodel.NodeID
	cellIdx   int

	cellSolutions []highdensity.Solution

	stitched []stitch.Route
	refined  []refine.Route
	jumpers  []srj.Obstacle

	output srj.Output
}

// New constructs a solver for input. Construction never fails; malformed
// input surfaces as a Failed() state once Step reaches the stage it trips.
func New(input srj.SimpleRouteJson, opts Options) *AutoroutingPipelineSolver {
	if opts.CacheProvider == nil {
		opts.CacheProvider = NewMemoryCache()
	}
	if opts.NominalTraceWidth <= 0 {
		opts.NominalTraceWidth = 2 * input.MinTraceWidth
	}
	if opts.TargetMinCapacity <= 0 && opts.CapacityDepth <= 0 {
		opts.TargetMinCapacity = 0.5
	}
	return &AutoroutingPipelineSolver{
		input:  input,
		opts:   opts,
		hdOpts: highdensity.DefaultOptions(),
	}
}

func (s *AutoroutingPipelineSolver) Solved() bool { return s.solved }
func (s *AutoroutingPipelineSolver) Failed() bool { return s.failed }
func (s *AutoroutingPipelineSolver) Err() error   { return s.err }

func (s *AutoroutingPipelineSolver) fail(err error) {
	s.failed = true
	s.err = err
}

// Solve drives Step to completion.
func (s *AutoroutingPipelineSolver) Solve() {
	for !s.Step() {
	}
}

// Step advances the pipeline by one unit of work, returning true once
// Solved() or Failed().
func (s *AutoroutingPipelineSolver) Step() bool {
	if s.solved || s.failed {
		return true
	}

	switch s.stage {
	case stagePrepare:
		s.subs = netsplit.Decompose(s.input.Connections, s.input.Obstacles, netsplit.DefaultOptions())
		s.subByName = make(map[string]netsplit.SubConnection, len(s.subs))
		for _, sc := range s.subs {
			s.subByName[sc.Name] = sc
		}
		s.builder = meshbuild.New(boundsToRect(s.input.Bounds), s.input.LayerCount, s.input.Obstacles, meshbuild.Options{
			TargetMinCapacity: s.opts.TargetMinCapacity,
			CapacityDepth:     s.opts.CapacityDepth,
		})
		s.stage = stageMesh
		return false

	case stageMesh:
		done := s.builder.Step()
		if s.builder.Failed() {
			s.fail(s.builder.Err())
			return true
		}
		if done {
			s.mesh = s.builder.Mesh()
			s.stage = stageWire
		}
		return false

	case stageWire:
		offboard.Relate(s.mesh, s.input.Obstacles, offboard.DefaultOptions())
		if err := meshedges.Build(s.mesh); err != nil {
			s.fail(err)
			return true
		}
		s.placer = segments.Place(s.mesh, segments.Options{TraceWidth: s.opts.NominalTraceWidth})
		reqs, err := buildRequests(s.mesh, s.subs)
		if err != nil {
			s.fail(err)
			return true
		}
		astarOpts := []astar.Option{astar.WithTraceWidth(s.opts.NominalTraceWidth)}
		if s.opts.NumShuffleSeeds > 0 {
			astarOpts = append(astarOpts, astar.WithNumShuffleSeeds(s.opts.NumShuffleSeeds))
		}
		s.astarSolver = astar.New(s.mesh, s.placer, reqs, astarOpts...)
		s.stage = stageAstar
		return false

	case stageAstar:
		done := s.astarSolver.Step()
		if done {
			if s.astarSolver.Failed() {
				s.fail(s.astarSolver.Err())
				return true
			}
			s.astarResults = s.astarSolver.Results()
			s.stage = stageCollect
		}
		return false

	case stageCollect:
		s.crossings = collectCrossings(s.mesh, s.placer, s.astarResults, s.subByName)
		s.cellNodes = sortedCellNodes(s.crossings)
		s.cellIdx = 0
		s.stage = stageHighDensity
		return false

	case stageHighDensity:
		if s.cellIdx >= len(s.cellNodes) {
			s.stage = stageStitch
			return false
		}
		s.solveCell(s.cellNodes[s.cellIdx])
		s.cellIdx++
		return false

	case stageStitch:
		s.stitched = stitch.Stitch(collectIslands(s.cellSolutions))
		s.stage = stageRefine
		return false

	case stageRefine:
		s.jumpers = jumperObstacles(s.cellSolutions)
		s.refined = refine.Refine(
			refineRoutes(s.stitched, s.input.MinViaDiameter),
			append(append([]srj.Obstacle(nil), s.input.Obstacles...), s.jumpers...),
			s.opts.NominalTraceWidth, s.input.MinTraceWidth,
			refine.WithIterations(s.opts.RefineIterations),
			refine.WithObstacleMargin(s.opts.ObstacleMargin),
		)
		s.stage = stageOutput
		return false

	case stageOutput:
		s.output = buildOutput(s.input, s.refined, s.jumpers)
		s.solved = true
		s.stage = stageDone
		return true
	}
	return false
}

// solveCell runs (or reuses a cached) HighDensity solve for one mesh node.
func (s *AutoroutingPipelineSolver) solveCell(id meshmodel.NodeID) {
	cell := s.buildCell(id)
	key := CacheKey{NodeID: id, Fingerprint: cellFingerprint(cell, s.hdOpts)}
	if sol, ok := s.opts.CacheProvider.Get(key); ok {
		s.cellSolutions = append(s.cellSolutions, sol)
		return
	}
	sol := highdensity.SolveCell(cell, s.hdOpts)
	s.opts.CacheProvider.Put(key, sol)
	s.cellSolutions = append(s.cellSolutions, sol)
}

func (s *AutoroutingPipelineSolver) buildCell(id meshmodel.NodeID) highdensity.Cell {
	n := s.mesh.Node(id)
	var obstacles []geom.Rect
	for _, o := range s.input.Obstacles {
		r := obstacleRect(o)
		if r.Overlaps(n.Rect) {
			obstacles = append(obstacles, r)
		}
	}
	return highdensity.Cell{
		ID:        id,
		MinX:      n.Rect.MinX(),
		MinY:      n.Rect.MinY(),
		MaxX:      n.Rect.MaxX(),
		MaxY:      n.Rect.MaxY(),
		Nets:      s.crossings[id],
		Obstacles: obstacles,
	}
}

// GetOutputSimpleRouteJson returns the produced Output. Valid only once
// Solved().
func (s *AutoroutingPipelineSolver) GetOutputSimpleRouteJson() (srj.Output, error) {
	if !s.solved {
		return srj.Output{}, errNotSolved
	}
	return s.output, nil
}

// Preview returns the mesh built so far, usable while Step is still
// mid-flight (spec.md §5's incremental-preview allowance).
func (s *AutoroutingPipelineSolver) Preview() *meshmodel.Mesh {
	return s.mesh
}

// Snapshot is Visualize's tiny progress summary; it never exposes internal
// solver state, only coarse counters a caller can render.
type Snapshot struct {
	Stage          string
	NodesBuilt     int
	EdgesBuilt     int
	CellsSolved    int
	CellsTotal     int
	RoutesStitched int
}

// Visualize returns a point-in-time snapshot of pipeline progress.
func (s *AutoroutingPipelineSolver) Visualize() Snapshot {
	snap := Snapshot{Stage: s.stage.String(), CellsSolved: s.cellIdx, CellsTotal: len(s.cellNodes), RoutesStitched: len(s.stitched)}
	if s.mesh != nil {
		snap.NodesBuilt = s.mesh.NumNodes()
		snap.EdgesBuilt = s.mesh.NumEdges()
	}
	return snap
}

func sortedCellNodes(crossings map[meshmodel.NodeID][]highdensity.NetCrossing) []meshmodel.NodeID {
	out := make([]meshmodel.NodeID, 0, len(crossings))
	for id := range crossings {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func collectIslands(solutions []highdensity.Solution) []stitch.Island {
	var out []stitch.Island
	for _, sol := range solutions {
		for _, pl := range sol.Polylines {
			out = append(out, stitch.Island{RootConnectionName: pl.RootConnectionName, Points: pl.Points})
		}
	}
	return out
}

func refineRoutes(routes []stitch.Route, viaDiameter float64) []refine.Route {
	out := make([]refine.Route, len(routes))
	for i, r := range routes {
		out[i] = refine.Route{
			RootConnectionName: r.RootConnectionName,
			Points:             r.Points,
			Vias:               r.Vias,
			ViaDiameter:        viaDiameter,
		}
	}
	return out
}
