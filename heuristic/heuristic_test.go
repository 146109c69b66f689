package heuristic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/domino14/floodit/board"
	"github.com/domino14/floodit/color"
	"github.com/domino14/floodit/state"
)

func checkerboard(t *testing.T) *board.GameBoard {
	t.Helper()
	b, err := board.New([][]color.Color{{2, 3}, {3, 2}}, board.UpperLeft, 0)
	assert.NoError(t, err)
	return b
}

// multiEliminable is a 3x3 board whose Middle start region borders four
// disjoint regions of four distinct colors and nothing else, so all four
// colors are simultaneously eliminable in the very first round; winning it
// genuinely takes 4 moves.
func multiEliminable(t *testing.T) *board.GameBoard {
	t.Helper()
	grid := [][]color.Color{
		{2, 2, 3},
		{5, 1, 3},
		{5, 4, 4},
	}
	b, err := board.New(grid, board.Middle, 0)
	assert.NoError(t, err)
	return b
}

var allStrategies = []Strategy{Admissible, InadmissibleSlow, Inadmissible, InadmissibleFast, InadmissibleFastest}

// TestWonPositionIsZeroForEveryStrategy is property 5 of spec section 8.
func TestWonPositionIsZeroForEveryStrategy(t *testing.T) {
	b := checkerboard(t)
	s := state.NewSimple(b, state.NewPosition(b))
	for !s.Won() {
		s.MakeColorBlindMove()
	}
	won := s.Position()

	for _, strat := range allStrategies {
		scratch := state.NewSimple(b, won)
		assert.Equal(t, 0, Evaluate(strat, won, scratch), strat.String())
	}
}

// TestAdmissibleIsMonotoneLowerBound is property 6 of spec section 8:
// ADMISSIBLE(s) <= 1 + ADMISSIBLE(s.makeMove(c)) for any sensible c.
func TestAdmissibleIsMonotoneLowerBound(t *testing.T) {
	b := checkerboard(t)
	root := state.NewPosition(b)
	scratch := state.NewSimple(b, root)
	before := Evaluate(Admissible, root, scratch)

	g := state.NewGame(b)
	for _, c := range g.SensibleMoves().Colors() {
		next := g.MakeMove(c)
		after := Evaluate(Admissible, next.Position, scratch)
		assert.LessOrEqual(t, before, 1+after)
	}
}

func TestHeuristicsNeverUnderestimateNegatively(t *testing.T) {
	b := checkerboard(t)
	root := state.NewPosition(b)
	for _, strat := range allStrategies {
		scratch := state.NewSimple(b, root)
		assert.GreaterOrEqual(t, Evaluate(strat, root, scratch), 0, strat.String())
	}
}

func TestStrategyAdmissibleFlag(t *testing.T) {
	assert.True(t, Admissible.Admissible())
	assert.False(t, InadmissibleSlow.Admissible())
	assert.False(t, Inadmissible.Admissible())
	assert.False(t, InadmissibleFast.Admissible())
	assert.False(t, InadmissibleFastest.Admissible())
}

func TestStrategyString(t *testing.T) {
	assert.Equal(t, "ADMISSIBLE", Admissible.String())
	assert.Equal(t, "INADMISSIBLE_FASTEST", InadmissibleFastest.String())
}

// TestSimultaneousEliminationCountsOneMovePerColor guards spec section
// 4.4's "never underestimates" contract for INADMISSIBLE_FASTEST, which
// delegates straight to greedy.Play: a round that eliminates 4 colors at
// once still costs 4 real moves, not 1.
func TestSimultaneousEliminationCountsOneMovePerColor(t *testing.T) {
	b := multiEliminable(t)
	root := state.NewPosition(b)

	for _, strat := range allStrategies {
		scratch := state.NewSimple(b, root)
		assert.Equal(t, 4, Evaluate(strat, root, scratch), strat.String())
	}
}

// TestCrossStrategyMonotonicOrdering is SC5's per-board ordering:
// astar_iaf's heuristic <= astar_ias's heuristic <= admissible's heuristic
// is not guaranteed pointwise for every position, but every strategy must
// agree exactly once the position is one multi-color elimination move away
// from won, since that shared fast path is the only thing left to run.
func TestCrossStrategyMonotonicOrdering(t *testing.T) {
	b := multiEliminable(t)
	root := state.NewPosition(b)

	admissible := Evaluate(Admissible, root, state.NewSimple(b, root))
	slow := Evaluate(InadmissibleSlow, root, state.NewSimple(b, root))
	fast := Evaluate(InadmissibleFast, root, state.NewSimple(b, root))
	fastest := Evaluate(InadmissibleFastest, root, state.NewSimple(b, root))

	assert.Equal(t, 4, admissible)
	assert.Equal(t, 4, slow)
	assert.Equal(t, 4, fast)
	assert.Equal(t, 4, fastest)
}
