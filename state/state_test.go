package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/domino14/floodit/board"
	"github.com/domino14/floodit/color"
)

func checkerboard(t *testing.T) *board.GameBoard {
	t.Helper()
	b, err := board.New([][]color.Color{{2, 3}, {3, 2}}, board.UpperLeft, 0)
	assert.NoError(t, err)
	return b
}

// assertPartition checks property 1 of spec section 8: filled, neighbors
// and notFilledNotNeighbors always partition the region-id universe.
func assertPartition(t *testing.T, p Position) {
	t.Helper()
	total := p.Board.AmountOfNodes()
	seen := 0
	for id := 0; id < total; id++ {
		count := 0
		if p.Filled.Get(id) {
			count++
		}
		if p.Neighbors.Get(id) {
			count++
		}
		if p.NotFilledNotNeighbors.Get(id) {
			count++
		}
		assert.Equal(t, 1, count, "region %d must be in exactly one set", id)
		if count == 1 {
			seen++
		}
	}
	assert.Equal(t, total, seen)
}

func TestNewPositionPartitionsBoard(t *testing.T) {
	b := checkerboard(t)
	assertPartition(t, NewPosition(b))
}

// TestSensibleMovesEqualsNeighborColors is property 2 of spec section 8.
func TestSensibleMovesEqualsNeighborColors(t *testing.T) {
	b := checkerboard(t)
	p := NewPosition(b)
	var expect color.Set
	p.Neighbors.Each(func(id int) { expect = expect.Add(b.Node(id).Color()) })
	assert.Equal(t, expect, p.SensibleMoves())
}

func TestGameMakeMoveIsImmutable(t *testing.T) {
	b := checkerboard(t)
	g0 := NewGame(b)
	c := g0.SensibleMoves().Colors()[0]
	g1 := g0.MakeMove(c)

	assert.NotSame(t, g0, g1)
	assert.True(t, g0.Filled.PopCount() < g1.Filled.PopCount())
	assertPartition(t, g0.Position)
	assertPartition(t, g1.Position)
}

// TestNonSensibleMoveIsNoOp is property 4 of spec section 8.
func TestNonSensibleMoveIsNoOp(t *testing.T) {
	b := checkerboard(t)
	g0 := NewGame(b)

	var nonSensible color.Color = -1
	for _, c := range b.PresentColors() {
		if !g0.SensibleMoves().Has(c) {
			nonSensible = c
			break
		}
	}
	assert.NotEqual(t, color.Color(-1), nonSensible, "test board must have a non-sensible color")

	g1 := g0.MakeMove(nonSensible)
	assert.Same(t, g0, g1)
}

func TestSimpleResetDoesNotReallocate(t *testing.T) {
	b := checkerboard(t)
	pos := NewPosition(b)
	s := NewSimple(b, pos)

	before := &s.Filled.Words()[0]
	s.MakeMove(s.SensibleMoves().Colors()[0])
	s.Reset(pos)
	assert.Same(t, before, &s.Filled.Words()[0])
	assert.True(t, s.Filled.Equal(pos.Filled))
}

func TestSimpleMultiColorMoveMatchesSequential(t *testing.T) {
	b := checkerboard(t)
	pos := NewPosition(b)

	multi := NewSimple(b, pos)
	cs := multi.SensibleMoves()
	multi.MakeMultiColorMove(cs)

	sequential := NewSimple(b, pos)
	for _, c := range cs.Colors() {
		sequential.MakeMove(c)
	}

	assert.True(t, multi.Filled.Equal(sequential.Filled))
	assert.True(t, multi.Neighbors.Equal(sequential.Neighbors))
}

func TestSimpleColorBlindMoveAbsorbsAllNeighbors(t *testing.T) {
	b := checkerboard(t)
	pos := NewPosition(b)
	s := NewSimple(b, pos)
	before := pos.Filled.PopCount()
	s.MakeColorBlindMove()
	assert.Equal(t, before+pos.Neighbors.PopCount(), s.Filled.PopCount())
}

func TestWonWhenAllFilled(t *testing.T) {
	b := checkerboard(t)
	s := NewSimple(b, NewPosition(b))
	for !s.Won() {
		s.MakeColorBlindMove()
	}
	assert.True(t, s.Neighbors.Empty())
	assert.True(t, s.Won())
}

func TestEliminableColors(t *testing.T) {
	b := checkerboard(t)
	pos := NewPosition(b)
	// on the 2x2 checkerboard, both regions of the only non-start color
	// border filled, so that color is eliminable; verify the eliminable set
	// is a subset of sensible moves.
	elim := pos.EliminableColors()
	sensible := pos.SensibleMoves()
	for _, c := range elim.Colors() {
		assert.True(t, sensible.Has(c))
	}
}
