// Package crucible finds the cheapest route across a grid of entry costs for
// a vehicle that cannot reverse and must respect a run-length window between
// turns.
//
// Overview:
//
//   - The terrain is a gridgraph.GridGraph; entering a cell costs its value,
//     the start cell itself is free.
//   - The mover turns only by 90°. It must cover at least Variant.MinRun cells
//     before turning or stopping, and at most Variant.MaxRun cells before it is
//     forced to turn.
//   - Two vehicles are predefined: Standard {0,3} and LongHaul {4,10}.
//
// How it works:
//
//   - The search runs over (cell, heading, run) states, not bare cells.
//   - A min-heap frontier orders states by cost + Manhattan distance to the
//     target; ties keep insertion order so results and hook traces are
//     reproducible.
//   - A dominance table remembers the cheapest cost per (cell, heading, run).
//     For Standard, a cheap short run also prunes every longer run at the same
//     cell and heading; for LongHaul each run is tracked on its own.
//   - The start is seeded heading East and South with run 0; a run of 0
//     may turn under every variant, so any first move is available.
//   - Arrivals at the target with 0 < run < MinRun are not accepted and keep
//     moving like any other state.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid, ErrBadVariant, ErrPositionOutOfBounds: invalid input.
//   - ErrNoPath: the target is unreachable under the variant.
//   - ErrInvariant: the search met a state it can never produce.
//
// API reference:
//
//	func Solve(g *gridgraph.GridGraph, opts ...Option) (*Result, error)
//	func MinHeatLoss(g *gridgraph.GridGraph, v Variant) (int64, error)
//
//	  - WithVariant(Variant):           run-length window (default Standard).
//	  - WithStart / WithTarget(Position): endpoints (default opposite corners).
//	  - WithReturnPath():               fill Result.Path via back-pointers.
//	  - WithEagerStop():                stop once the frontier cannot improve.
//	  - WithOnPush / WithOnPop:          observation hooks.
//
// Thread safety:
//
//   - Each Solve call owns its frontier and dominance table; the grid is
//     read-only. Concurrent Solve calls on the same grid are safe.
package crucible
