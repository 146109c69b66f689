package prune

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

func TestNoLastMoveAllowsAllSensible(t *testing.T) {
	b := checkerboard(t)
	pos := state.NewPosition(b)
	assert.Equal(t, pos.SensibleMoves(), Admissible(pos, color.NoColor))
	assert.Equal(t, pos.SensibleMoves(), Inadmissible(pos, color.NoColor, false))
}

func TestInadmissiblePrunerNeverAllowsMoreThanSensible(t *testing.T) {
	b := checkerboard(t)
	g := state.NewGame(b)
	c := g.SensibleMoves().Colors()[0]
	next := g.MakeMove(c)

	allowed := Inadmissible(next.Position, c, false)
	for _, col := range allowed.Colors() {
		assert.True(t, next.SensibleMoves().Has(col))
	}
}

func TestInadmissibleFallsBackOnEliminationNode(t *testing.T) {
	b := checkerboard(t)
	g := state.NewGame(b)
	c := g.SensibleMoves().Colors()[0]
	next := g.MakeMove(c)

	if next.Won() {
		t.Skip("board too small to exercise fallback")
	}
	// force the empty-allowed-set path by using a lastMove not present on
	// the board, guaranteeing "enabled by p" is false for everything.
	allowed := Inadmissible(next.Position, color.Color(34), true)
	assert.Equal(t, next.SensibleMoves(), allowed)
}

func TestAdmissiblePrunerNeverAllowsMoreThanSensible(t *testing.T) {
	b := checkerboard(t)
	g := state.NewGame(b)
	c := g.SensibleMoves().Colors()[0]
	next := g.MakeMove(c)

	allowed := Admissible(next.Position, c)
	for _, col := range allowed.Colors() {
		assert.True(t, next.SensibleMoves().Has(col))
	}
}
