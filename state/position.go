// Package state implements the three views of a Flood-It playing position:
// Position (the bare invariant-bearing triple of node sets), Game (adds
// move history and is immutable per move), and Simple (a mutable scratch
// copy used by heuristics and by on-demand state reconstruction).
package state

import (
	"github.com/domino14/floodit/bitset"
	"github.com/domino14/floodit/board"
	"github.com/domino14/floodit/color"
)

// Position is a board position: three node sets that partition every
// region id on the board.
//
// Invariants held at all times:
//   - Filled, Neighbors, NotFilledNotNeighbors are pairwise disjoint and
//     together cover every region id.
//   - Neighbors == (⋃ n.BorderingNodes() for n in Filled) \ Filled.
//   - Filled is non-empty (it always contains at least the start region).
//   - the position is won iff Neighbors is empty.
type Position struct {
	Board                 *board.GameBoard
	Filled                bitset.NodeSet
	Neighbors             bitset.NodeSet
	NotFilledNotNeighbors bitset.NodeSet
}

// NewPosition returns the starting position for b: only the start region
// filled, its borders as neighbors, everything else unreached.
func NewPosition(b *board.GameBoard) Position {
	filled := b.NewNodeSet()
	neighbors := b.NewNodeSet()
	notFilledNotNeighbors := b.NewNodeSet()

	filled.Set(b.StartNode())
	neighbors.UnionWith(b.Node(b.StartNode()).BorderingNodes())

	notFilledNotNeighbors.FlipAll()
	notFilledNotNeighbors.DifferenceWith(filled)
	notFilledNotNeighbors.DifferenceWith(neighbors)

	return Position{Board: b, Filled: filled, Neighbors: neighbors, NotFilledNotNeighbors: notFilledNotNeighbors}
}

// Won reports whether the position has no remaining neighbors.
func (p Position) Won() bool { return p.Neighbors.Empty() }

// SensibleMoves returns the set of colors that currently border Filled
// without being in it; playing any other color is a no-op (spec section
// 4.2 step 6 picks whichever side is cheaper to scan).
func (p Position) SensibleMoves() color.Set {
	var moves color.Set
	numColors := p.Board.ColorSet().Len()
	if p.Neighbors.PopCount() < numColors {
		p.Neighbors.Each(func(id int) {
			moves = moves.Add(p.Board.Node(id).Color())
		})
		return moves
	}
	for _, c := range p.Board.PresentColors() {
		if p.Neighbors.Intersects(p.Board.NodesByColor(c)) {
			moves = moves.Add(c)
		}
	}
	return moves
}

// EliminableColors returns the colors whose every region already lies in
// Neighbors ∪ Filled, i.e. none of their regions are in
// NotFilledNotNeighbors, and at least one of whose regions is in
// Neighbors: playing all of them as one multi-color move removes the color
// from the board entirely (spec's "color elimination"). Colors whose
// regions are all in Filled are not included.
func (p Position) EliminableColors() color.Set {
	var out color.Set
	for _, c := range p.Board.PresentColors() {
		if !p.Board.NodesByColor(c).Intersects(p.NotFilledNotNeighbors) && p.Neighbors.Intersects(p.Board.NodesByColor(c)) {
			out = out.Add(c)
		}
	}
	return out
}

// applyNewNodes runs the core transition (spec section 4.2) against the
// given newNodes (regions that just got absorbed), mutating filled,
// neighbors and notFilledNotNeighbors in place. newNodes is left unchanged.
func applyNewNodes(b *board.GameBoard, filled, neighbors, notFilledNotNeighbors, newNodes bitset.NodeSet) {
	filled.UnionWith(newNodes)
	newNodes.Each(func(id int) {
		neighbors.UnionWith(b.Node(id).BorderingNodes())
	})
	neighbors.DifferenceWith(filled)
	notFilledNotNeighbors.DifferenceWith(neighbors)
	notFilledNotNeighbors.DifferenceWith(filled)
}
