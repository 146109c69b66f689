package state

import (
	"github.com/domino14/floodit/board"
	"github.com/domino14/floodit/color"
)

// Game is a Position plus the history of colors played to reach it, and a
// cached SensibleMoves. It is immutable: MakeMove returns a new Game,
// leaving the receiver untouched.
type Game struct {
	Position
	PlayedMoves   []color.Color
	sensibleMoves color.Set
}

// NewGame returns the starting Game for b, with no moves played.
func NewGame(b *board.GameBoard) *Game {
	pos := NewPosition(b)
	return &Game{Position: pos, sensibleMoves: pos.SensibleMoves()}
}

// SensibleMoves returns the cached set of colors playing any of which is
// not a no-op.
func (g *Game) SensibleMoves() color.Set { return g.sensibleMoves }

// MakeMove returns a new Game with c played, if c is sensible; otherwise it
// returns g unchanged (spec section 4.2: non-sensible moves are a no-op).
// The solver itself only ever constructs successors for sensible moves
// (spec section 7, "caller-misuse"); this guard exists for the benefit of
// any other caller (interactive/test surfaces).
func (g *Game) MakeMove(c color.Color) *Game {
	if !g.sensibleMoves.Has(c) {
		return g
	}

	newNodes := g.Board.NodesByColor(c).Clone()
	newNodes.IntersectWith(g.Neighbors)

	filled := g.Filled.Clone()
	neighbors := g.Neighbors.Clone()
	notFilledNotNeighbors := g.NotFilledNotNeighbors.Clone()
	applyNewNodes(g.Board, filled, neighbors, notFilledNotNeighbors, newNodes)

	next := Position{Board: g.Board, Filled: filled, Neighbors: neighbors, NotFilledNotNeighbors: notFilledNotNeighbors}
	moves := make([]color.Color, len(g.PlayedMoves)+1)
	copy(moves, g.PlayedMoves)
	moves[len(g.PlayedMoves)] = c

	return &Game{Position: next, PlayedMoves: moves, sensibleMoves: next.SensibleMoves()}
}
