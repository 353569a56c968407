// Package srj defines the SimpleRouteJson input/output data contract
// (spec.md §6): the board description the pipeline consumes, and the
// traces it produces. This package only carries data and its
// encoding/json tags — no schema validation layer, which spec.md §1
// explicitly places outside the core's scope.
package srj
