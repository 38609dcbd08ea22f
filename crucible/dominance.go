package crucible

import (
	"math"

	"github.com/katalvlaran/crucible/gridgraph"
)

// unknown marks a run-length slot no state has reached yet.
const unknown = math.MaxInt64

// dominanceTable records, per (cell, heading), the cheapest cost seen at
// each run length. Rows are allocated on first access; the table lives for
// a single Solve call.
//
// With MinRun == 0 a shorter run has every move a longer run has, so a
// cost recorded at run r also bounds every run ≥ r (monotone rows). With a
// positive MinRun a short run lacks the turns a long one has, and slots are
// kept independent.
type dominanceTable struct {
	g        *gridgraph.GridGraph
	rows     [][]int64 // index: cell*numHeadings + heading
	slots    int       // MaxRun + 1
	monotone bool
}

func newDominanceTable(g *gridgraph.GridGraph, v Variant) *dominanceTable {
	return &dominanceTable{
		g:        g,
		rows:     make([][]int64, g.Size()*numHeadings),
		slots:    v.MaxRun + 1,
		monotone: v.MinRun == 0,
	}
}

// row returns the slot vector for (pos, h), creating it when absent.
func (d *dominanceTable) row(pos Position, h Heading) []int64 {
	i := d.g.Index(pos.X, pos.Y)*numHeadings + int(h)
	if d.rows[i] == nil {
		r := make([]int64, d.slots)
		for k := range r {
			r[k] = unknown
		}
		d.rows[i] = r
	}

	return d.rows[i]
}

// markExplored reports true when s is dominated by an earlier state and
// must be discarded; otherwise it records s and returns false.
func (d *dominanceTable) markExplored(s *State) bool {
	costs := d.row(s.Pos, s.Heading)
	if costs[s.Run] <= s.Cost {
		return true
	}

	if !d.monotone {
		costs[s.Run] = s.Cost
		return false
	}
	for k := s.Run; k < len(costs); k++ {
		if s.Cost < costs[k] {
			costs[k] = s.Cost
		}
	}

	return false
}

// lookup returns the recorded cost at (pos, h, run) and whether one exists.
func (d *dominanceTable) lookup(pos Position, h Heading, run int) (int64, bool) {
	i := d.g.Index(pos.X, pos.Y)*numHeadings + int(h)
	if d.rows[i] == nil || d.rows[i][run] == unknown {
		return 0, false
	}

	return d.rows[i][run], true
}
