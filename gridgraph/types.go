// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/crucible.
package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrCellOutOfRange indicates a cell value outside the configured cost range.
	ErrCellOutOfRange = errors.New("gridgraph: cell value out of range")
	// ErrOutOfBounds indicates a lookup outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinates out of bounds")
	// ErrBadOptions indicates an unusable cost range in GridOptions.
	ErrBadOptions = errors.New("gridgraph: invalid grid options")
)

// Cell represents a single grid cell with its coordinates and entry cost.
type Cell struct {
	X, Y int // Coordinates within the grid
	Cost int // Cost paid when entering (X, Y)
}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// MinCost is the smallest accepted cell value. Must be ≥ 1.
	MinCost int
	// MaxCost is the largest accepted cell value. Must be ≥ MinCost.
	MaxCost int
}

// DefaultGridOptions returns a GridOptions with default settings:
// MinCost=1, MaxCost=9 (single-digit terrain).
func DefaultGridOptions() GridOptions {
	return GridOptions{
		MinCost: 1,
		MaxCost: 9,
	}
}

// GridGraph treats a 2D integer grid as weighted terrain. It is immutable once built.
// Width and Height define dimensions; cells[y][x] holds the cost of entering (x, y).
type GridGraph struct {
	Width, Height int
	MinCost       int
	cells         [][]int
}
