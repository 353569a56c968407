package astar

import (
	"errors"
	"math/rand"

	"github.com/pcbroute/router/meshmodel"
)

// Sentinel errors returned by the pathing stage.
var (
	// ErrAllSeedsFailed indicates every shuffle seed left at least one
	// non-rippable connection unrouted.
	ErrAllSeedsFailed = errors.New("astar: no shuffle seed routed all connections")
)

// Request is one sub-connection to route: a single port-point choice
// sequence from StartNode to EndNode.
type Request struct {
	Name               string
	RootConnectionName string
	StartNode          meshmodel.NodeID
	EndNode            meshmodel.NodeID
	StartZ             int
	EndZ               int
}

// ChosenPortPoint is one committed crossing: port point Index on EdgeID,
// entered on layer Z.
type ChosenPortPoint struct {
	EdgeID meshmodel.EdgeID
	Index  int
	Z      int
}

// Result is the outcome of pathing one Request.
type Result struct {
	Request Request
	Path    []ChosenPortPoint
	Cost    float64
	Failed  bool
}

// Options configures the A* cost model, rip-up, and shuffle supervisor.
type Options struct {
	TraceWidth float64

	// BaseCandidateCost is the flat per-hop cost added regardless of Pf.
	BaseCandidateCost float64
	// NodePfFactor scales the Pf² congestion penalty per hop.
	NodePfFactor float64

	// RippingEnabled allows an in-progress search to evict a
	// lower-priority committed connection from an overloaded cell.
	RippingEnabled bool
	// RippingPfThreshold is the Pf above which a cell is considered
	// congested enough to rip.
	RippingPfThreshold float64
	// MaxRips bounds total rip-ups across one shuffle seed's attempt.
	MaxRips int

	// NumShuffleSeeds is how many independent connection-processing
	// orders the supervisor tries before keeping the cheapest.
	NumShuffleSeeds int
	// GreedyMultiplier weights the supervisor's best-first pruning of
	// further shuffle seeds once a sufficiently good permutation is found.
	GreedyMultiplier float64

	rng *rand.Rand
}

// Option configures Options.
type Option func(*Options)

// WithSeed fixes the shuffle supervisor's random source for reproducible
// permutations, mirroring lvlath/builder's WithSeed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.rng = rand.New(rand.NewSource(seed)) }
}

// WithTraceWidth sets the nominal trace width used in capacity estimates.
func WithTraceWidth(w float64) Option {
	return func(o *Options) { o.TraceWidth = w }
}

// WithRipping enables or disables rip-up/recovery.
func WithRipping(enabled bool) Option {
	return func(o *Options) { o.RippingEnabled = enabled }
}

// WithMaxRips caps total rip-ups per shuffle-seed attempt.
func WithMaxRips(n int) Option {
	return func(o *Options) { o.MaxRips = n }
}

// WithNumShuffleSeeds sets how many connection-order permutations the
// supervisor evaluates.
func WithNumShuffleSeeds(n int) Option {
	return func(o *Options) { o.NumShuffleSeeds = n }
}

// DefaultOptions returns the stage's default cost-model and supervisor
// constants.
func DefaultOptions() Options {
	return Options{
		TraceWidth:         0.15,
		BaseCandidateCost:  1.0,
		NodePfFactor:       4.0,
		RippingEnabled:     true,
		RippingPfThreshold: 0.75,
		MaxRips:            1000,
		NumShuffleSeeds:    8,
		GreedyMultiplier:   1.5,
		rng:                rand.New(rand.NewSource(1)),
	}
}
