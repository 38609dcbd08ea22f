// Package gridgraph treats a rectangular 2D grid of per-cell entry costs as
// the static terrain for grid route searches.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid and deep-copies it, so the
//     terrain is immutable for the lifetime of any search running over it.
//   - Every cell carries the cost of entering it; values are validated
//     against GridOptions.MinCost and GridOptions.MaxCost at construction.
//   - Cells are addressed by (x, y) with x the column and y the row, or by a
//     row-major index for dense per-cell tables.
//
// Why:
//
//   - Route planners (see package crucible) need O(1) cost lookups and
//     cheap bounds checks on every expansion.
//   - A lower MinCost bound of 1 keeps the Manhattan distance an admissible
//     estimate of the remaining cost.
//
// Complexity:
//
//   - NewGridGraph: O(W×H) time and memory.
//   - CostAt, InBounds, Index, Coordinate: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrCellOutOfRange: a cell value lies outside [MinCost, MaxCost].
//   - ErrOutOfBounds: CostAt was asked for a cell outside the grid.
//   - ErrBadOptions: MinCost < 1 or MaxCost < MinCost.
package gridgraph
