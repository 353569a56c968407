package netsplit

import "github.com/pcbroute/router/srj"

// SubConnection is one two-point output of NetToPointPairs. A is always the
// MST edge's lower-weight-ordered endpoint in insertion order (not sorted);
// RootConnectionName is the original multi-point connection's Name.
type SubConnection struct {
	Name               string
	RootConnectionName string
	A, B               srj.ConnectionPoint
}

// Options configures NetToPointPairs.
type Options struct {
	// OffBoardOptimization enables the equivalence-class endpoint
	// substitution described in spec.md §4.1.
	OffBoardOptimization bool
	// CoincidenceTolerance is how close a connection point must be to an
	// obstacle center to be considered "at" that obstacle for off-board
	// grouping purposes.
	CoincidenceTolerance float64
}

// DefaultOptions returns the NetToPointPairs defaults: off-board
// optimization enabled, 1e-3 coincidence tolerance (matching the ε used by
// the endpoint-coverage invariant, spec.md §8 invariant 1).
func DefaultOptions() Options {
	return Options{
		OffBoardOptimization: true,
		CoincidenceTolerance: 1e-3,
	}
}
