package pipeline

import (
	"fmt"
	"sync"

	"github.com/pcbroute/router/highdensity"
	"github.com/pcbroute/router/meshmodel"
)

// Options aggregates every stage's tunables behind the top-level knobs
// spec.md §6 exposes to external tooling: capacityDepth, targetMinCapacity,
// effort, and cacheProvider.
type Options struct {
	CapacityDepth     int
	TargetMinCapacity float64

	// Effort is "fast", "balanced" (default), or "thorough"; it seeds
	// NumShuffleSeeds and RefineIterations, both still overridable.
	Effort string

	// CacheProvider is the intra-node solver cache (spec.md §5). Defaults
	// to an in-process MemoryCache.
	CacheProvider CacheProvider

	// NominalTraceWidth defaults to 2x the input's MinTraceWidth when left
	// zero, matching segments.DefaultOptions' port-point spacing rule.
	NominalTraceWidth float64
	ObstacleMargin    float64
	RefineIterations  int
	NumShuffleSeeds   int
}

// DefaultOptions returns "balanced" effort defaults.
func DefaultOptions() Options {
	return DefaultOptionsForEffort("balanced")
}

// DefaultOptionsForEffort returns the tunables for a named effort preset.
// Unknown effort strings fall back to "balanced".
func DefaultOptionsForEffort(effort string) Options {
	seeds, iterations := 8, 2
	switch effort {
	case "fast":
		seeds, iterations = 2, 1
	case "thorough":
		seeds, iterations = 24, 4
	}
	return Options{
		TargetMinCapacity: 0.5,
		Effort:            effort,
		ObstacleMargin:    0.2,
		RefineIterations:  iterations,
		NumShuffleSeeds:   seeds,
		CacheProvider:     NewMemoryCache(),
	}
}

// CacheKey identifies one intra-node HighDensity solve by the cell's
// geometry, its assigned crossings, and the hyperparameters that shaped
// them (spec.md §5: "cache key (cell geometry + port points +
// hyperparameters)").
type CacheKey struct {
	NodeID      meshmodel.NodeID
	Fingerprint string
}

// CacheStats accumulates hit/miss counts (spec.md §5).
type CacheStats struct {
	Hits, Misses int
}

// CacheProvider is the intra-node solver cache's contract: read-mostly,
// writes idempotent, last-writer-wins under concurrency (spec.md §5).
type CacheProvider interface {
	Get(key CacheKey) (highdensity.Solution, bool)
	Put(key CacheKey, sol highdensity.Solution)
	Stats() CacheStats
}

// MemoryCache is the default in-process CacheProvider.
type MemoryCache struct {
	mu     sync.Mutex
	store  map[CacheKey]highdensity.Solution
	hits   int
	misses int
}

// NewMemoryCache returns an empty MemoryCache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{store: make(map[CacheKey]highdensity.Solution)}
}

func (c *MemoryCache) Get(key CacheKey) (highdensity.Solution, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	sol, ok := c.store[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return sol, ok
}

func (c *MemoryCache) Put(key CacheKey, sol highdensity.Solution) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[key] = sol // idempotent: an identical key implies a semantically-equivalent value
}

func (c *MemoryCache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CacheStats{Hits: c.hits, Misses: c.misses}
}

// cellFingerprint builds a CacheKey.Fingerprint from a cell's net
// crossings and the local-router options that would shape its solve.
func cellFingerprint(cell highdensity.Cell, opts highdensity.Options) string {
	s := fmt.Sprintf("mf=%d;sp=%.4f", opts.MaxForceIterations, opts.PrepatternSpacing)
	for _, n := range cell.Nets {
		s += fmt.Sprintf(";%s:%.4f,%.4f-%.4f,%.4f@%d", n.RootConnectionName, n.A.X, n.A.Y, n.B.X, n.B.Y, n.Z)
	}
	return s
}
