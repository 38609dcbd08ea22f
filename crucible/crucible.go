// Package crucible implements a best-first search for the cheapest route
// across a gridgraph.GridGraph under turning constraints.
//
// Vertices of the search graph are (cell, heading, run) triples rather than
// bare cells. From each state the mover may continue straight while
// run < MaxRun, or turn 90° left or right once run ≥ MinRun; it never
// reverses. Entering a cell costs that cell's value.
//
// Complexity:
//
//   - Time:  O(S log S) where S = W·H·4·(MaxRun+1) distinct states.
//   - Each state is expanded at most once thanks to the dominance table.
//   - Each expansion pushes at most three successors.
//   - Space: O(S) for the dominance table and frontier.
//
// Notes on implementation choices:
//
//   - The frontier key is cost + Manhattan distance to target, scaled by the
//     grid's minimum cell cost; it is admissible and consistent.
//   - Ties are broken by insertion order, so expansion order is deterministic.
//   - Pruned duplicates are pushed and discarded on pop (lazy decrease-key).
package crucible

import (
	"fmt"

	"github.com/katalvlaran/crucible/gridgraph"
)

// Solve returns the minimum total entry cost from Options.Start to
// Options.Target on g under Options.Variant.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. The variant must be valid (ErrBadVariant).
//  3. Start and Target must be grid cells (ErrPositionOutOfBounds).
//
// When the target cannot be reached under the variant, Solve returns
// ErrNoPath and a nil Result.
func Solve(g *gridgraph.GridGraph, opts ...Option) (*Result, error) {
	// 1) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := cfg.Variant.Validate(); err != nil {
		return nil, err
	}
	start := Position{}
	if cfg.Start != nil {
		start = *cfg.Start
	}
	target := Position{X: g.Width - 1, Y: g.Height - 1}
	if cfg.Target != nil {
		target = *cfg.Target
	}
	for _, p := range []Position{start, target} {
		if !g.InBounds(p.X, p.Y) {
			return nil, fmt.Errorf("%w: %s in %dx%d grid", ErrPositionOutOfBounds, p, g.Width, g.Height)
		}
	}

	// 3) Run the search
	r := &runner{
		g:        g,
		options:  cfg,
		target:   target,
		explored: newDominanceTable(g, cfg.Variant),
		frontier: newFrontier(target, g.MinCost),
	}
	r.init(start)
	if err := r.process(); err != nil {
		return nil, err
	}
	if r.best == nil {
		return nil, ErrNoPath
	}

	res := &Result{
		Cost:     r.best.Cost,
		Expanded: r.expanded,
		Pushed:   r.pushed,
	}
	if cfg.ReturnPath {
		res.Path = r.best.path()
	}

	return res, nil
}

// MinHeatLoss is Solve from top-left to bottom-right under v, returning
// only the cost.
func MinHeatLoss(g *gridgraph.GridGraph, v Variant) (int64, error) {
	res, err := Solve(g, WithVariant(v))
	if err != nil {
		return 0, err
	}

	return res.Cost, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g        *gridgraph.GridGraph // read-only terrain
	options  Options
	target   Position
	explored *dominanceTable
	frontier *frontier
	best     *State // cheapest accepted arrival at target so far
	expanded int
	pushed   int
}

// init seeds the frontier with the two headings leading away from the
// top-left corner. A run of 0 allows an immediate turn under every
// variant, so all four first moves stay reachable from any start.
func (r *runner) init(start Position) {
	for _, h := range []Heading{East, South} {
		r.push(&State{Pos: start, Heading: h})
	}
}

// push enqueues s and fires the OnPush hook.
func (r *runner) push(s *State) {
	r.frontier.push(s)
	r.pushed++
	r.options.OnPush(*s)
}

// process drains the frontier.
//
// Per popped state:
//
//   - at target and allowed to stop: record the cost, do not expand;
//   - bound ≥ best: discard (or stop altogether with EagerStop);
//   - dominated: discard;
//   - otherwise expand.
func (r *runner) process() error {
	v := r.options.Variant
	for r.frontier.Len() > 0 {
		bound, s := r.frontier.pop()
		r.options.OnPop(bound, *s)

		if !r.g.InBounds(s.Pos.X, s.Pos.Y) || s.Heading >= numHeadings || s.Run < 0 || s.Run > v.MaxRun {
			return fmt.Errorf("%w: popped state %s heading=%s run=%d", ErrInvariant, s.Pos, s.Heading, s.Run)
		}

		if s.Pos == r.target && v.canStop(s.Run) {
			if r.best == nil || s.Cost < r.best.Cost {
				r.best = s
			}
			continue
		}

		if r.best != nil && bound >= r.best.Cost {
			if r.options.EagerStop {
				break
			}
			continue
		}

		if r.explored.markExplored(s) {
			continue
		}
		r.expanded++

		if err := r.expand(s); err != nil {
			return err
		}
	}

	return nil
}

// expand pushes the legal successors of s: straight, left, right.
func (r *runner) expand(s *State) error {
	v := r.options.Variant
	if s.Run < v.MaxRun {
		if err := r.step(s, s.Heading, s.Run+1); err != nil {
			return err
		}
	}
	if s.Run == 0 || s.Run >= v.MinRun {
		if err := r.step(s, s.Heading.Left(), 1); err != nil {
			return err
		}
		if err := r.step(s, s.Heading.Right(), 1); err != nil {
			return err
		}
	}

	return nil
}

// step pushes the successor of s along h when it stays inside the grid.
func (r *runner) step(s *State, h Heading, run int) error {
	next := s.Pos.Add(h)
	if !r.g.InBounds(next.X, next.Y) {
		return nil
	}
	c, err := r.g.CostAt(next.X, next.Y)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvariant, err)
	}

	succ := &State{
		Pos:     next,
		Heading: h,
		Run:     run,
		Cost:    s.Cost + int64(c),
	}
	if r.options.ReturnPath {
		succ.prev = s
	}
	r.push(succ)

	return nil
}
