package highdensity

// SolveCell runs the per-cell local router (spec.md §4.7): cells with no
// same-layer crossings go to the curvy solver; cells with crossings are
// handed to both jumper strategies, and the supervisor keeps whichever
// solved more nets, then used fewer jumpers, then converged in fewer
// iterations.
func SolveCell(cell Cell, opts Options) Solution {
	var sol Solution
	if !hasSameLayerCrossings(cell.Nets) {
		sol = Solution{Polylines: solveCurvy(cell)}
	} else {
		forced := solveForceDirected(cell, opts)
		prepattern := solvePrepattern(cell, opts)
		sol = pickBetter(forced, prepattern)
	}
	sol.Polylines = resolveCollinearOverlaps(sol.Polylines)
	return sol
}

// pickBetter implements the supervisor's ordering: fewest unrouted
// connections, then fewest jumpers, then lowest iteration count.
func pickBetter(a, b Solution) Solution {
	if a.Unrouted != b.Unrouted {
		if a.Unrouted < b.Unrouted {
			return a
		}
		return b
	}
	if len(a.Jumpers) != len(b.Jumpers) {
		if len(a.Jumpers) < len(b.Jumpers) {
			return a
		}
		return b
	}
	if a.Iterations <= b.Iterations {
		return a
	}
	return b
}
