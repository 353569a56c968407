package refine

import "github.com/pcbroute/router/srj"

// Refine runs the full refinement pipeline over every route: the 9a/9b/9c
// trio iterated opts.Iterations times, then one keepout re-draw pass per
// radius in the schedule, then one trace-width assignment pass (spec.md
// §4.9). Each route is checked for clearance against every other route in
// the batch, treated as foreign traces.
func Refine(routes []Route, obstacles []srj.Obstacle, nominalTraceWidth, minTraceWidth float64, optFns ...Option) []Route {
	opts := DefaultOptions(nominalTraceWidth, minTraceWidth)
	for _, fn := range optFns {
		fn(&opts)
	}

	out := append([]Route(nil), routes...)

	for iter := 0; iter < opts.Iterations; iter++ {
		for i, r := range out {
			r = RemoveUselessVias(r, obstacles, without(out, i), opts.ObstacleMargin)
			r = MergeSameNetVias(r)
			r = SimplifyPath(r, obstacles, opts.ObstacleMargin)
			out[i] = r
		}
	}

	for _, radius := range opts.KeepoutRadii {
		for i, r := range out {
			out[i] = RedrawKeepouts(r, obstacles, without(out, i), radius)
		}
	}

	for i, r := range out {
		out[i] = AssignTraceWidth(r, obstacles, without(out, i), opts)
	}

	return out
}

// without returns routes minus the element at idx, for treating every
// other route as foreign during one route's refinement.
func without(routes []Route, idx int) []Route {
	out := make([]Route, 0, len(routes)-1)
	for i, r := range routes {
		if i != idx {
			out = append(out, r)
		}
	}
	return out
}
