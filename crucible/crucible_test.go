// Package crucible_test contains unit tests for the constrained route search.
// These tests validate the canonical costs of both vehicles, input validation,
// the structural invariants of reconstructed routes, and the monotonicity,
// determinism and unreachability properties of the search.
package crucible_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/crucible"
	"github.com/katalvlaran/crucible/gridgraph"
)

// canonical is the 13×13 city map the puzzle class is validated on.
const canonical = `
2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533`

// unlucky punishes long-haul routes that stop early on the bottom row.
const unlucky = `
111111111111
999999999991
999999999991
999999999991
999999999991`

// digits converts a block of digit rows into a [][]int.
func digits(s string) [][]int {
	var out [][]int
	for _, line := range strings.Fields(s) {
		row := make([]int, len(line))
		for i, r := range line {
			row[i] = int(r - '0')
		}
		out = append(out, row)
	}

	return out
}

func mustGrid(t testing.TB, values [][]int) *gridgraph.GridGraph {
	t.Helper()
	g, err := gridgraph.From2D(values)
	require.NoError(t, err)

	return g
}

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestSolve_NilGrid(t *testing.T) {
	res, err := crucible.Solve(nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, crucible.ErrNilGrid)
}

func TestSolve_BadVariant(t *testing.T) {
	g := mustGrid(t, digits(canonical))
	for _, v := range []crucible.Variant{
		{MinRun: -1, MaxRun: 3},
		{MinRun: 0, MaxRun: 0},
		{MinRun: 5, MaxRun: 4},
	} {
		res, err := crucible.Solve(g, crucible.WithVariant(v))
		assert.Nil(t, res)
		assert.ErrorIs(t, err, crucible.ErrBadVariant, "variant %+v", v)
	}
}

func TestSolve_PositionOutOfBounds(t *testing.T) {
	g := mustGrid(t, digits("123\n456"))

	_, err := crucible.Solve(g, crucible.WithStart(crucible.Position{X: -1, Y: 0}))
	assert.ErrorIs(t, err, crucible.ErrPositionOutOfBounds)

	_, err = crucible.Solve(g, crucible.WithTarget(crucible.Position{X: 3, Y: 1}))
	assert.ErrorIs(t, err, crucible.ErrPositionOutOfBounds)
}

// ------------------------------------------------------------------------
// 2. Canonical costs.
// ------------------------------------------------------------------------

func TestSolve_Canonical(t *testing.T) {
	g := mustGrid(t, digits(canonical))

	cost, err := crucible.MinHeatLoss(g, crucible.Standard)
	require.NoError(t, err)
	assert.Equal(t, int64(102), cost)

	cost, err = crucible.MinHeatLoss(g, crucible.LongHaul)
	require.NoError(t, err)
	assert.Equal(t, int64(94), cost)
}

func TestSolve_LongHaulCannotStopShort(t *testing.T) {
	g := mustGrid(t, digits(unlucky))

	cost, err := crucible.MinHeatLoss(g, crucible.LongHaul)
	require.NoError(t, err)
	assert.Equal(t, int64(71), cost)
}

func TestSolve_StartIsTarget(t *testing.T) {
	g := mustGrid(t, [][]int{{7}})
	for _, v := range []crucible.Variant{crucible.Standard, crucible.LongHaul} {
		res, err := crucible.Solve(g, crucible.WithVariant(v), crucible.WithReturnPath())
		require.NoError(t, err)
		assert.Equal(t, int64(0), res.Cost)
		require.Len(t, res.Path, 1)
		assert.Empty(t, crucible.Moves(res.Path))
	}

	// Same on a larger grid with an explicit interior start and target.
	g = mustGrid(t, digits(canonical))
	p := crucible.Position{X: 6, Y: 6}
	res, err := crucible.Solve(g,
		crucible.WithVariant(crucible.LongHaul),
		crucible.WithStart(p),
		crucible.WithTarget(p),
	)
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Cost)
}

// TestSolve_CustomStartTarget runs the search towards the top-left corner,
// which needs the seeded headings to turn north and west immediately.
func TestSolve_CustomStartTarget(t *testing.T) {
	g := mustGrid(t, digits("111\n111\n111"))
	res, err := crucible.Solve(g,
		crucible.WithStart(crucible.Position{X: 2, Y: 2}),
		crucible.WithTarget(crucible.Position{X: 0, Y: 0}),
		crucible.WithReturnPath(),
	)
	require.NoError(t, err)
	assert.Equal(t, int64(4), res.Cost)
	assert.Equal(t, crucible.Position{X: 0, Y: 0}, res.Path[len(res.Path)-1].Pos)
}

// TestSolve_CustomStartTargetBothVariants drives both vehicles from the
// bottom-right corner of a 12×5 strip back to the top-left. The long-haul
// vehicle must turn off a seeded heading before its first move and split
// the 11 westward cells into two legal runs, e.g. W5 N4 W6.
func TestSolve_CustomStartTargetBothVariants(t *testing.T) {
	g := mustGrid(t, digits(strings.Repeat("111111111111\n", 5)))
	start := crucible.Position{X: 11, Y: 4}
	target := crucible.Position{}

	for _, v := range []crucible.Variant{crucible.Standard, crucible.LongHaul} {
		res, err := crucible.Solve(g,
			crucible.WithVariant(v),
			crucible.WithStart(start),
			crucible.WithTarget(target),
			crucible.WithReturnPath(),
		)
		require.NoError(t, err, "variant %+v", v)
		assert.Equal(t, int64(15), res.Cost, "variant %+v", v)
		assert.Equal(t, start, res.Path[0].Pos)
		assert.Equal(t, target, res.Path[len(res.Path)-1].Pos)

		moves := crucible.Moves(res.Path)
		for _, h := range moves {
			assert.Contains(t, []crucible.Heading{crucible.West, crucible.North}, h)
		}
		for _, run := range crucible.Runs(moves) {
			assert.GreaterOrEqual(t, run, v.MinRun)
			assert.LessOrEqual(t, run, v.MaxRun)
		}
	}
}

// ------------------------------------------------------------------------
// 3. Unreachable under the variant.
// ------------------------------------------------------------------------

func TestSolve_NoPathForLongHaul(t *testing.T) {
	for _, grid := range []string{"111", "111\n111\n111", "1\n1\n1\n1"} {
		g := mustGrid(t, digits(grid))

		cost, err := crucible.MinHeatLoss(g, crucible.Standard)
		require.NoError(t, err, grid)
		assert.Positive(t, cost)

		res, err := crucible.Solve(g, crucible.WithVariant(crucible.LongHaul))
		assert.Nil(t, res)
		assert.ErrorIs(t, err, crucible.ErrNoPath, grid)
	}
}

// ------------------------------------------------------------------------
// 4. Route invariants.
// ------------------------------------------------------------------------

func TestSolve_PathInvariants(t *testing.T) {
	cases := []struct {
		name    string
		grid    string
		variant crucible.Variant
	}{
		{"StandardCanonical", canonical, crucible.Standard},
		{"LongHaulCanonical", canonical, crucible.LongHaul},
		{"LongHaulUnlucky", unlucky, crucible.LongHaul},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			values := digits(tc.grid)
			g := mustGrid(t, values)
			res, err := crucible.Solve(g, crucible.WithVariant(tc.variant), crucible.WithReturnPath())
			require.NoError(t, err)
			require.NotEmpty(t, res.Path)

			assert.Equal(t, crucible.Position{}, res.Path[0].Pos)
			assert.Equal(t, crucible.Position{X: g.Width - 1, Y: g.Height - 1}, res.Path[len(res.Path)-1].Pos)

			// Consecutive cells are adjacent along the recorded heading and
			// the entry costs add up to the reported cost.
			var sum int64
			for i := 1; i < len(res.Path); i++ {
				prev, cur := res.Path[i-1], res.Path[i]
				assert.Equal(t, prev.Pos.Add(cur.Heading), cur.Pos)
				sum += int64(values[cur.Pos.Y][cur.Pos.X])
			}
			assert.Equal(t, res.Cost, sum)

			moves := crucible.Moves(res.Path)
			for i := 1; i < len(moves); i++ {
				assert.NotEqual(t, moves[i-1].Opposite(), moves[i], "reversal at move %d", i)
			}
			for _, run := range crucible.Runs(moves) {
				assert.LessOrEqual(t, run, tc.variant.MaxRun)
				assert.GreaterOrEqual(t, run, tc.variant.MinRun)
			}
		})
	}
}

// ------------------------------------------------------------------------
// 5. Properties: monotonicity, determinism, eager stop, hooks.
// ------------------------------------------------------------------------

func TestSolve_Monotonicity(t *testing.T) {
	base := digits(canonical)
	for _, v := range []crucible.Variant{crucible.Standard, crucible.LongHaul} {
		res, err := crucible.Solve(mustGrid(t, base), crucible.WithVariant(v), crucible.WithReturnPath())
		require.NoError(t, err)
		onPath := make(map[crucible.Position]bool, len(res.Path))
		for _, st := range res.Path[1:] {
			onPath[st.Pos] = true
		}

		for _, p := range []crucible.Position{{X: 1, Y: 0}, {X: 6, Y: 3}, {X: 0, Y: 12}, {X: 12, Y: 12}, {X: 5, Y: 0}, {X: 9, Y: 9}} {
			if base[p.Y][p.X] == 9 {
				continue
			}
			bumped := digits(canonical)
			bumped[p.Y][p.X] = min(base[p.Y][p.X]+3, 9)

			cost, err := crucible.MinHeatLoss(mustGrid(t, bumped), v)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, cost, res.Cost, "raising %s", p)
			if !onPath[p] {
				assert.Equal(t, res.Cost, cost, "raising off-route %s", p)
			}
		}
	}
}

func TestSolve_Deterministic(t *testing.T) {
	g := mustGrid(t, digits(canonical))
	for _, v := range []crucible.Variant{crucible.Standard, crucible.LongHaul} {
		first, err := crucible.Solve(g, crucible.WithVariant(v), crucible.WithReturnPath())
		require.NoError(t, err)
		for i := 0; i < 3; i++ {
			again, err := crucible.Solve(g, crucible.WithVariant(v), crucible.WithReturnPath())
			require.NoError(t, err)
			assert.Equal(t, first, again)
		}
	}
}

func TestSolve_EagerStopAgrees(t *testing.T) {
	for _, grid := range []string{canonical, unlucky} {
		g := mustGrid(t, digits(grid))
		for _, v := range []crucible.Variant{crucible.Standard, crucible.LongHaul} {
			full, err := crucible.Solve(g, crucible.WithVariant(v))
			require.NoError(t, err)
			eager, err := crucible.Solve(g, crucible.WithVariant(v), crucible.WithEagerStop())
			require.NoError(t, err)

			assert.Equal(t, full.Cost, eager.Cost)
			assert.LessOrEqual(t, eager.Expanded, full.Expanded)
		}
	}
}

func TestSolve_Hooks(t *testing.T) {
	g := mustGrid(t, digits(canonical))

	var pushes, pops int
	var lastBound int64
	monotone := true
	res, err := crucible.Solve(g,
		crucible.WithOnPush(func(crucible.State) { pushes++ }),
		crucible.WithOnPop(func(bound int64, _ crucible.State) {
			if bound < lastBound {
				monotone = false
			}
			lastBound = bound
			pops++
		}),
	)
	require.NoError(t, err)

	assert.Equal(t, res.Pushed, pushes)
	assert.Equal(t, pushes, pops, "full drain pops every pushed state")
	assert.True(t, monotone, "popped bounds never decrease")
	assert.Positive(t, res.Expanded)
	assert.Nil(t, res.Path)
}

// TestSolve_ConcurrentVariants runs both vehicles on one grid at once; each
// call owns its own frontier and dominance table.
func TestSolve_ConcurrentVariants(t *testing.T) {
	g := mustGrid(t, digits(canonical))
	want := map[crucible.Variant]int64{crucible.Standard: 102, crucible.LongHaul: 94}

	var wg sync.WaitGroup
	got := make([]int64, 8)
	errs := make([]error, 8)
	variants := make([]crucible.Variant, 8)
	for i := range got {
		variants[i] = crucible.Standard
		if i%2 == 1 {
			variants[i] = crucible.LongHaul
		}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i], errs[i] = crucible.MinHeatLoss(g, variants[i])
		}(i)
	}
	wg.Wait()

	for i := range got {
		require.NoError(t, errs[i])
		assert.Equal(t, want[variants[i]], got[i])
	}
}

func TestRuns(t *testing.T) {
	E, S, N := crucible.East, crucible.South, crucible.North
	assert.Nil(t, crucible.Runs(nil))
	assert.Equal(t, []int{3, 1, 2}, crucible.Runs([]crucible.Heading{E, E, E, S, E, E}))
	assert.Equal(t, []int{1, 1}, crucible.Runs([]crucible.Heading{N, E}))
}

func TestHeading_Turns(t *testing.T) {
	for _, h := range []crucible.Heading{crucible.East, crucible.South, crucible.West, crucible.North} {
		assert.Equal(t, h, h.Left().Right())
		assert.Equal(t, h.Opposite(), h.Left().Left())
		assert.NotEqual(t, h.Opposite(), h.Left())
		assert.NotEqual(t, h.Opposite(), h.Right())
		dx, dy := h.Delta()
		ox, oy := h.Opposite().Delta()
		assert.Equal(t, [2]int{-dx, -dy}, [2]int{ox, oy})
	}
	assert.Equal(t, crucible.North, crucible.East.Left())
	assert.Equal(t, crucible.South, crucible.East.Right())
	assert.Equal(t, "^", crucible.North.String())
}
