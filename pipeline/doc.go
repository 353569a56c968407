// Package pipeline implements AutoroutingPipelineSolver (spec.md §5/§6):
// the cooperative step() driver that wires all nine stages — NetToPointPairs,
// CapacityMeshBuilder, OffBoardNodeRelator, CapacityMeshEdges, SegmentPoints,
// PortPointPathing, HighDensity, RouteStitch, and Refinement — into a single
// `for !solver.Solved() && !solver.Failed() { solver.Step() }` loop.
//
// Grounded on lvlath/flow's Dinic: "loop until no more progress, checking
// cancellation/failure each iteration" (spec.md §5's suspension-points
// model), generalized from one algorithm's inner loop to a sequence of
// independently steppable stages.
package pipeline
