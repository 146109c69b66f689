package state

import (
	"github.com/domino14/floodit/bitset"
	"github.com/domino14/floodit/board"
	"github.com/domino14/floodit/color"
)

// Simple is a mutable Position with a single scratch NodeSet, used by the
// heuristics' hot loop and by on-demand state reconstruction (replaying a
// move chain). Resetting a Simple never reallocates its node sets.
type Simple struct {
	Board                 *board.GameBoard
	Filled                bitset.NodeSet
	Neighbors             bitset.NodeSet
	NotFilledNotNeighbors bitset.NodeSet
	scratch               bitset.NodeSet
}

// NewSimple allocates a Simple sized for b, reset to p.
func NewSimple(b *board.GameBoard, p Position) *Simple {
	s := &Simple{
		Board:                 b,
		Filled:                b.NewNodeSet(),
		Neighbors:             b.NewNodeSet(),
		NotFilledNotNeighbors: b.NewNodeSet(),
		scratch:               b.NewNodeSet(),
	}
	s.Reset(p)
	return s
}

// Reset overwrites s in place with p's contents, without reallocating.
func (s *Simple) Reset(p Position) {
	s.Filled.CopyFrom(p.Filled)
	s.Neighbors.CopyFrom(p.Neighbors)
	s.NotFilledNotNeighbors.CopyFrom(p.NotFilledNotNeighbors)
}

// Position returns an independent, allocated snapshot of s's current state.
func (s *Simple) Position() Position {
	return Position{
		Board:                 s.Board,
		Filled:                s.Filled.Clone(),
		Neighbors:             s.Neighbors.Clone(),
		NotFilledNotNeighbors: s.NotFilledNotNeighbors.Clone(),
	}
}

// Won reports whether s has no remaining neighbors.
func (s *Simple) Won() bool { return s.Neighbors.Empty() }

// MakeMove absorbs the regions of color c that border Filled (spec section
// 4.2). Playing a non-sensible color is a no-op.
func (s *Simple) MakeMove(c color.Color) {
	s.scratch.CopyFrom(s.Board.NodesByColor(c))
	s.scratch.IntersectWith(s.Neighbors)
	applyNewNodes(s.Board, s.Filled, s.Neighbors, s.NotFilledNotNeighbors, s.scratch)
}

// MakeMultiColorMove absorbs the regions of every color in cs that border
// Filled, as a single step (spec section 4.2).
func (s *Simple) MakeMultiColorMove(cs color.Set) {
	s.scratch.ClearAll()
	for _, c := range cs.Colors() {
		s.scratch.UnionWith(s.Board.NodesByColor(c))
	}
	s.scratch.IntersectWith(s.Neighbors)
	applyNewNodes(s.Board, s.Filled, s.Neighbors, s.NotFilledNotNeighbors, s.scratch)
}

// MakeColorBlindMove absorbs every current neighbor regardless of color.
// This is the color-blind step used by the admissible heuristic's lower
// bound; it is not a legal move in real play.
func (s *Simple) MakeColorBlindMove() {
	s.scratch.CopyFrom(s.Neighbors)
	applyNewNodes(s.Board, s.Filled, s.Neighbors, s.NotFilledNotNeighbors, s.scratch)
}

// TakeGivenNodes absorbs exactly the regions in nodes (intersected with
// Neighbors, so it can never pull from NotFilledNotNeighbors directly).
func (s *Simple) TakeGivenNodes(nodes bitset.NodeSet) {
	s.scratch.CopyFrom(nodes)
	s.scratch.IntersectWith(s.Neighbors)
	applyNewNodes(s.Board, s.Filled, s.Neighbors, s.NotFilledNotNeighbors, s.scratch)
}

// SensibleMoves recomputes the sensible-move set from current contents.
func (s *Simple) SensibleMoves() color.Set {
	return Position{Board: s.Board, Filled: s.Filled, Neighbors: s.Neighbors, NotFilledNotNeighbors: s.NotFilledNotNeighbors}.SensibleMoves()
}

// EliminableColors returns the colors fully contained in Filled ∪
// Neighbors with at least one region in Neighbors, as in
// Position.EliminableColors.
func (s *Simple) EliminableColors() color.Set {
	return Position{Board: s.Board, Filled: s.Filled, Neighbors: s.Neighbors, NotFilledNotNeighbors: s.NotFilledNotNeighbors}.EliminableColors()
}
