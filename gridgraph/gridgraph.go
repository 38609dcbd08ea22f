package gridgraph

import (
	"fmt"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrCellOutOfRange if any value lies outside [opts.MinCost, opts.MaxCost],
// ErrBadOptions if the cost range itself is unusable.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if opts.MinCost < 1 || opts.MaxCost < opts.MinCost {
		return nil, fmt.Errorf("%w: cost range [%d,%d]", ErrBadOptions, opts.MinCost, opts.MaxCost)
	}
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		for x, v := range values[y] {
			if v < opts.MinCost || v > opts.MaxCost {
				return nil, fmt.Errorf("%w: (%d,%d)=%d not in [%d,%d]",
					ErrCellOutOfRange, x, y, v, opts.MinCost, opts.MaxCost)
			}
			cells[y][x] = v
		}
	}

	return &GridGraph{
		Width:   w,
		Height:  h,
		MinCost: opts.MinCost,
		cells:   cells,
	}, nil
}

// From2D is NewGridGraph with DefaultGridOptions.
func From2D(values [][]int) (*GridGraph, error) {
	return NewGridGraph(values, DefaultGridOptions())
}

// Dimensions returns the grid width (columns) and height (rows).
func (gg *GridGraph) Dimensions() (width, height int) {
	return gg.Width, gg.Height
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// CostAt returns the cost of entering (x,y), or ErrOutOfBounds.
// Complexity: O(1).
func (gg *GridGraph) CostAt(x, y int) (int, error) {
	if !gg.InBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, x, y, gg.Width, gg.Height)
	}

	return gg.cells[y][x], nil
}

// Cell returns the Cell at (x,y), or ErrOutOfBounds.
func (gg *GridGraph) Cell(x, y int) (Cell, error) {
	c, err := gg.CostAt(x, y)
	if err != nil {
		return Cell{}, err
	}

	return Cell{X: x, Y: y, Cost: c}, nil
}

// Index maps (x,y) to a row‑major index: y*Width + x.
// The caller guarantees InBounds(x, y).
// Complexity: O(1).
func (gg *GridGraph) Index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// Size returns the number of cells, W×H.
func (gg *GridGraph) Size() int {
	return gg.Width * gg.Height
}
