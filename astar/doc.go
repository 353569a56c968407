// Package astar implements PortPointPathing (spec.md §4.6): for each
// sub-connection, find a path start-cell → ... → end-cell through the
// capacity mesh, choosing exactly one port point on every traversed shared
// edge, with a probability-of-failure cost model, rip-up/recovery of
// already-assigned connections, and a shuffle supervisor that retries the
// whole stage under independent connection-processing orders.
//
// Grounded on lvlath/dijkstra's runner{init, process} split and its
// lazy-decrease-key nodePQ, generalized from Dijkstra's f=g ordering to
// A*'s f=g+h, and from a single execution to a best-of-N shuffle-seed
// supervisor modeled on lvlath/builder's seed-reproducible functional
// options (WithSeed).
package astar
