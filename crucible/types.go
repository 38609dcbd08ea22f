// Package crucible defines core types and configuration options
// for the constrained-turn route search over a gridgraph.GridGraph.
//
// A mover enters cells one at a time and pays each cell's cost on entry.
// It never reverses, turns only by 90°, and must obey the run-length
// window of its Variant:
//
//   - MinRun: consecutive cells it must cover before it may turn (or stop).
//   - MaxRun: consecutive cells after which it must turn.
//
// Options:
//
//   - Variant:    run-length window (default Standard = {0,3}).
//   - Start:      starting cell (default top-left).
//   - Target:     destination cell (default bottom-right).
//   - ReturnPath: keep back-pointers and return the optimal route.
//   - EagerStop:  stop as soon as no queued state can beat the best cost.
//   - OnPush/OnPop: observation hooks.
//
// Errors (sentinel):
//
//   - ErrNilGrid             if the provided grid pointer is nil.
//   - ErrBadVariant          if the run-length window is unusable.
//   - ErrPositionOutOfBounds if Start or Target lies outside the grid.
//   - ErrNoPath              if no route satisfies the window.
//   - ErrInvariant           if the search observes an impossible state.
package crucible

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the search.
var (
	// ErrNilGrid indicates that a nil *gridgraph.GridGraph was passed to Solve.
	ErrNilGrid = errors.New("crucible: grid is nil")

	// ErrBadVariant indicates MinRun < 0, MaxRun < 1 or MinRun > MaxRun.
	ErrBadVariant = errors.New("crucible: invalid run-length variant")

	// ErrPositionOutOfBounds indicates that Start or Target is not a grid cell.
	ErrPositionOutOfBounds = errors.New("crucible: position out of bounds")

	// ErrNoPath indicates that the target cannot be reached under the variant.
	ErrNoPath = errors.New("crucible: no path to target")

	// ErrInvariant indicates an internal consistency failure during the search.
	ErrInvariant = errors.New("crucible: internal invariant violated")
)

// Position is a grid cell: X is the column, Y the row.
type Position struct {
	X, Y int
}

// Add returns p moved one step along h.
func (p Position) Add(h Heading) Position {
	dx, dy := h.Delta()

	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Manhattan returns |p.X-q.X| + |p.Y-q.Y|.
func (p Position) Manhattan(q Position) int64 {
	return int64(abs(p.X-q.X) + abs(p.Y-q.Y))
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// Heading is one of the four unit steps. The zero value is East.
// Values are ordered clockwise so Right is +1 and Left is +3 (mod 4).
type Heading uint8

const (
	East Heading = iota
	South
	West
	North

	numHeadings = 4
)

var headingDeltas = [numHeadings][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

// Delta returns the (dx, dy) unit vector of h.
func (h Heading) Delta() (dx, dy int) {
	d := headingDeltas[h%numHeadings]

	return d[0], d[1]
}

// Left returns h rotated 90° counter-clockwise (screen coordinates, y down).
func (h Heading) Left() Heading { return (h + 3) % numHeadings }

// Right returns h rotated 90° clockwise.
func (h Heading) Right() Heading { return (h + 1) % numHeadings }

// Opposite returns the reversal of h, which is never a legal move.
func (h Heading) Opposite() Heading { return (h + 2) % numHeadings }

// String renders h as an arrow: ">", "v", "<" or "^".
func (h Heading) String() string {
	switch h {
	case East:
		return ">"
	case South:
		return "v"
	case West:
		return "<"
	case North:
		return "^"
	}

	return fmt.Sprintf("Heading(%d)", uint8(h))
}

// Variant is the run-length window of a vehicle.
type Variant struct {
	MinRun int // cells that must be covered before a turn or a stop
	MaxRun int // cells after which a turn is mandatory
}

var (
	// Standard vehicle: turn any time, at most 3 cells straight.
	Standard = Variant{MinRun: 0, MaxRun: 3}

	// LongHaul vehicle: at least 4 cells before turning or stopping, at most 10.
	LongHaul = Variant{MinRun: 4, MaxRun: 10}
)

// Validate reports ErrBadVariant for an unusable window.
func (v Variant) Validate() error {
	if v.MinRun < 0 || v.MaxRun < 1 || v.MinRun > v.MaxRun {
		return fmt.Errorf("%w: min=%d max=%d", ErrBadVariant, v.MinRun, v.MaxRun)
	}

	return nil
}

// canStop reports whether a mover with the given run may end its route.
// A run of 0 only occurs at the start, before any move has been made.
func (v Variant) canStop(run int) bool {
	return run == 0 || run >= v.MinRun
}

// State is a vertex of the search graph: a cell, the heading the mover
// entered it with, and how many cells it has covered under that heading.
type State struct {
	Pos     Position
	Heading Heading
	Run     int
	Cost    int64 // accumulated entry cost, start cell excluded

	prev *State // back-pointer, kept only with ReturnPath
}

// Step is one cell of a reconstructed route and the heading it was entered with.
type Step struct {
	Pos     Position
	Heading Heading
}

// Result is the outcome of a successful search.
type Result struct {
	Cost     int64  // minimum total entry cost
	Path     []Step // start → target; nil unless ReturnPath was set
	Expanded int    // states accepted by the dominance table and expanded
	Pushed   int    // states pushed onto the frontier
}

// Options configures the behavior of Solve.
type Options struct {
	Variant    Variant
	Start      *Position // nil means top-left
	Target     *Position // nil means bottom-right
	ReturnPath bool
	EagerStop  bool

	// OnPush is called for every state pushed onto the frontier.
	OnPush func(s State)

	// OnPop is called for every state popped from the frontier, with its bound.
	OnPop func(bound int64, s State)
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithVariant sets the run-length window.
func WithVariant(v Variant) Option {
	return func(o *Options) {
		o.Variant = v
	}
}

// WithStart overrides the starting cell.
func WithStart(p Position) Option {
	return func(o *Options) {
		o.Start = &p
	}
}

// WithTarget overrides the destination cell.
func WithTarget(p Position) Option {
	return func(o *Options) {
		o.Target = &p
	}
}

// WithReturnPath keeps back-pointers so Result.Path can be reconstructed.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithEagerStop ends the search at the first popped bound that cannot beat
// the best cost found so far, instead of draining the frontier.
func WithEagerStop() Option {
	return func(o *Options) {
		o.EagerStop = true
	}
}

// WithOnPush registers a callback run on every frontier push.
func WithOnPush(fn func(s State)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}

// WithOnPop registers a callback run on every frontier pop.
func WithOnPop(fn func(bound int64, s State)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPop = fn
		}
	}
}

// DefaultOptions returns the Standard variant, corner-to-corner, no path,
// full frontier drain and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Variant: Standard,
		OnPush:  func(State) {},
		OnPop:   func(int64, State) {},
	}
}
