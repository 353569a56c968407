package highdensity

// isSolvable is the isHighDensityNodeSolvable pre-check spec.md describes:
// a cheap capacity estimate of whether the prepattern grid could possibly
// seat a jumper for every crossing pair before paying for the full
// force-directed/prepattern run. It is intentionally never called from
// SolveCell — both strategies already report Unrouted on genuine failure,
// and gating on this estimate would reject cells the force-directed
// strategy can still resolve without any jumper at all.
func isSolvable(cell Cell, opts Options) bool {
	needed := len(crossingPairs(cell.Nets))
	if needed == 0 {
		return true
	}
	available := len(prepatternGrid(cell, opts.PrepatternSpacing))
	return available >= needed
}
