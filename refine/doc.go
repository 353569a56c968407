// Package refine implements the Refinement stage (spec.md §4.9): a small
// trio of passes (useless-via removal, same-net via merging, path
// simplification) iterated a configurable number of times, followed by one
// trace-keepout re-draw pass per radius in Options.KeepoutRadii (four by
// default) and a single trace-width assignment pass.
//
// Each pass is a short pure function over a Route and the board's obstacle
// set, in the style of `core/methods_edges.go`'s single-purpose mutator
// methods; the collinearity test for path simplification matches
// `dfs/cycle.go`'s one-predicate-per-helper style.
package refine
