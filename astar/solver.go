package astar

import (
	"github.com/pcbroute/router/meshmodel"
	"github.com/pcbroute/router/segments"
)

// Solver is the cooperative PortPointPathing stage: Step evaluates one
// shuffle-seed permutation per call; Run drives it to completion.
type Solver struct {
	mesh     *meshmodel.Mesh
	placer   *segments.Placer
	requests []Request
	byName   map[string]Request
	opts     Options

	seedsRemaining int
	bestCost       float64
	bestResults    []Result

	solved bool
	failed bool
	err    error
}

// New creates a Solver for requests over mesh using placer's precomputed
// port points.
func New(mesh *meshmodel.Mesh, placer *segments.Placer, requests []Request, opts ...Option) *Solver {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	byName := make(map[string]Request, len(requests))
	for _, r := range requests {
		byName[r.Name] = r
	}
	return &Solver{
		mesh:           mesh,
		placer:         placer,
		requests:       requests,
		byName:         byName,
		opts:           cfg,
		seedsRemaining: cfg.NumShuffleSeeds,
	}
}

// Solved reports whether Step has converged (success or exhausted seeds).
func (s *Solver) Solved() bool { return s.solved }

// Failed reports whether every shuffle seed left a connection unrouted.
func (s *Solver) Failed() bool { return s.failed }

// Err returns the terminal error, if any.
func (s *Solver) Err() error { return s.err }

// Results returns the best shuffle seed's per-connection outcomes. Valid
// only once Solved() is true and Failed() is false.
func (s *Solver) Results() []Result { return s.bestResults }

// Step evaluates one shuffle-seed permutation of connection-processing
// order and keeps it if it is the cheapest seen so far (spec.md §4.6
// shuffle supervisor). Returns true once every seed has been tried or the
// remaining seeds have been pruned.
func (s *Solver) Step() bool {
	if s.solved {
		return true
	}
	if len(s.requests) == 0 {
		s.solved = true
		s.bestResults = nil
		return true
	}
	if s.seedsRemaining <= 0 {
		s.solved = true
		if s.bestResults == nil {
			s.failed = true
			s.err = ErrAllSeedsFailed
		}
		return true
	}

	order := s.permute()
	results, totalCost, allOK := s.attempt(order)
	s.seedsRemaining--

	if allOK && (s.bestResults == nil || totalCost < s.bestCost) {
		s.bestCost = totalCost
		s.bestResults = results
	} else if allOK && s.bestResults != nil && shouldPruneRemaining(totalCost, s.bestCost, s.opts.GreedyMultiplier) {
		// Best-first pruning (spec.md §4.6): this permutation came in far
		// worse than the best found so far, so further random shuffles are
		// unlikely to recover — stop spending the remaining seed budget.
		s.seedsRemaining = 0
	}

	if s.seedsRemaining <= 0 {
		s.solved = true
		if s.bestResults == nil {
			s.failed = true
			s.err = ErrAllSeedsFailed
		}
	}
	return s.solved
}

// Run drives Step to completion.
func (s *Solver) Run() {
	for !s.Step() {
	}
}

// shouldPruneRemaining reports whether the supervisor should give up on
// further shuffle seeds after a successful attempt came in at totalCost,
// given the best confirmed cost so far. A permutation costing more than
// bestCost*greedyMultiplier is judged unlikely to be beaten by further
// random reorderings, so the remaining seed budget is pruned rather than
// spent (spec.md §4.6: "best-first over permutations weighted by
// GREEDY_MULTIPLIER to prune early").
func shouldPruneRemaining(totalCost, bestCost, greedyMultiplier float64) bool {
	return greedyMultiplier > 0 && totalCost > bestCost*greedyMultiplier
}

func (s *Solver) permute() []Request {
	order := make([]Request, len(s.requests))
	copy(order, s.requests)
	s.opts.rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	return order
}

// attempt runs every request in order through an independent A* pass,
// re-enqueueing any connection rip-up evicts, and reports whether every
// connection in the permutation was ultimately routed.
func (s *Solver) attempt(order []Request) ([]Result, float64, bool) {
	owner := map[portKey]ownerInfo{}
	roots := map[meshmodel.NodeID]map[string]bool{}
	pf := newPfModel(s.mesh, s.opts)
	ripsUsed := 0

	pending := append([]Request(nil), order...)
	byName := make(map[string]*Result, len(order))
	var totalCost float64
	allOK := true

	for len(pending) > 0 {
		req := pending[0]
		pending = pending[1:]

		sr := newSearch(s.mesh, s.placer, pf, owner, roots, &ripsUsed, s.opts)
		res, err := sr.run(req)
		if err != nil {
			return nil, 0, false
		}
		if res.Failed {
			allOK = false
		} else {
			totalCost += res.Cost
		}
		byName[req.Name] = res

		for _, name := range sr.ripped {
			if orig, ok := s.byName[name]; ok {
				pending = append(pending, orig)
			}
		}
	}

	out := make([]Result, 0, len(order))
	for _, req := range order {
		if r, ok := byName[req.Name]; ok {
			out = append(out, *r)
		}
	}
	return out, totalCost, allOK
}
