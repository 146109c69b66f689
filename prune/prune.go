// Package prune implements the two symmetry-breaking move pruners from spec
// section 4.5. They are deliberately kept separate rather than unified: the
// inadmissible pruner is strictly more aggressive and only sound paired with
// an already-inadmissible heuristic, while the admissible pruner has a
// stronger precondition that preserves A* optimality.
package prune

import (
	"github.com/domino14/floodit/board"
	"github.com/domino14/floodit/bitset"
	"github.com/domino14/floodit/color"
	"github.com/domino14/floodit/state"
)

// borderRegions returns the region ids of color c that currently border
// filled (i.e. c's neighbor-set contribution).
func borderRegions(pos state.Position, c color.Color) bitset.NodeSet {
	b := pos.Board.NodesByColor(c).Clone()
	b.IntersectWith(pos.Neighbors)
	return b
}

// enabledBy reports whether region borders a filled region of color p; a
// color is "enabled by" p when one of its border regions passes this test
// (see colorEnabledByP).
func enabledBy(b *board.GameBoard, filled bitset.NodeSet, region int, p color.Color) bool {
	found := false
	borders := b.Node(region).BorderingNodes()
	borders.Each(func(id int) {
		if found {
			return
		}
		if filled.Get(id) && b.Node(id).Color() == p {
			found = true
		}
	})
	return found
}

func colorEnabledByP(pos state.Position, c, p color.Color) bool {
	enabled := false
	borderRegions(pos, c).Each(func(id int) {
		if enabled {
			return
		}
		if enabledBy(pos.Board, pos.Filled, id, p) {
			enabled = true
		}
	})
	return enabled
}

// hasUnfilledPNeighbor reports whether one of c's border regions (see
// borderRegions) is adjacent to a not-yet-filled region of color p.
func hasUnfilledPNeighbor(pos state.Position, c, p color.Color) bool {
	found := false
	borderRegions(pos, c).Each(func(id int) {
		if found {
			return
		}
		borders := pos.Board.Node(id).BorderingNodes()
		borders.Each(func(nb int) {
			if found {
				return
			}
			if !pos.Filled.Get(nb) && pos.Board.Node(nb).Color() == p {
				found = true
			}
		})
	})
	return found
}

// Inadmissible computes the pruned move set for the inadmissible symmetry
// pruner. lastMove is color.NoColor at the root. wasEliminationNode marks a
// search node produced by the color-elimination-preference step (spec
// section 4.6 step 3); it enables the completeness-preserving fallback.
func Inadmissible(pos state.Position, lastMove color.Color, wasEliminationNode bool) color.Set {
	sensible := pos.SensibleMoves()
	if lastMove == color.NoColor {
		return sensible
	}
	var allowed color.Set
	for _, c := range sensible.Colors() {
		if colorEnabledByP(pos, c, lastMove) {
			allowed = allowed.Add(c)
		}
	}
	if allowed.Empty() && wasEliminationNode {
		return sensible
	}
	return allowed
}

// Admissible computes the pruned move set for the admissible symmetry
// pruner. It never prunes a move that ADMISSIBLE search needs to preserve
// optimality (spec section 4.5's stronger precondition).
func Admissible(pos state.Position, lastMove color.Color) color.Set {
	sensible := pos.SensibleMoves()
	if lastMove == color.NoColor {
		return sensible
	}
	var allowed color.Set
	for _, c := range sensible.Colors() {
		switch {
		case colorEnabledByP(pos, c, lastMove):
			allowed = allowed.Add(c)
		case c < lastMove:
			// could have been played earlier instead: disallow.
		case !hasUnfilledPNeighbor(pos, c, lastMove):
			allowed = allowed.Add(c)
		}
	}
	return allowed
}
