// Package greedy implements the greedy color-elimination-preferring policy
// (spec section 4.3): used standalone as a fast (non-optimal) solver, as
// the INADMISSIBLE_FASTEST heuristic, and as the triage score for A*'s
// queue-cutoff compaction.
package greedy

import (
	"sort"

	"github.com/domino14/floodit/bitset"
	"github.com/domino14/floodit/color"
	"github.com/domino14/floodit/state"
)

// Play runs the greedy policy against s until won, mutating s in place, and
// returns the total number of moves played. On each step: if any color can
// be eliminated outright, all such colors are absorbed together with one
// multi-color move, counted as one move per eliminated color; otherwise the
// sensible color exposing the most new occupied fields is played.
func Play(s *state.Simple) int {
	moves := 0
	exposed := bitset.New(s.Board.AmountOfNodes())
	for !s.Won() {
		if eliminable := s.EliminableColors(); !eliminable.Empty() {
			s.MakeMultiColorMove(eliminable)
			moves += eliminable.Len()
			continue
		}
		best, ok := bestExposureMove(s, exposed)
		if !ok {
			// no sensible move but not won: unreachable on a well-formed
			// board (every present color has at least one node, and an
			// unwon position always has a non-empty Neighbors set).
			break
		}
		s.MakeMove(best)
		moves++
	}
	return moves
}

// PlaySequence is Play, but also records and returns the colors played, for
// standalone-solver callers that want the actual move sequence rather than
// just its length.
func PlaySequence(s *state.Simple) []color.Color {
	var moves []color.Color
	exposed := bitset.New(s.Board.AmountOfNodes())
	for !s.Won() {
		if eliminable := s.EliminableColors(); !eliminable.Empty() {
			s.MakeMultiColorMove(eliminable)
			moves = append(moves, eliminable.Colors()...)
			continue
		}
		best, ok := bestExposureMove(s, exposed)
		if !ok {
			break
		}
		s.MakeMove(best)
		moves = append(moves, best)
	}
	return moves
}

// bestExposureMove picks the sensible color whose absorbed regions expose
// the greatest total occupied-field count of newly-bordered, untouched
// regions. exposed is caller-owned scratch, reused across calls to avoid
// reallocating on every greedy step.
func bestExposureMove(s *state.Simple, exposed bitset.NodeSet) (color.Color, bool) {
	ranked := RankByExposure(s, exposed)
	if len(ranked) == 0 {
		return color.NoColor, false
	}
	return ranked[0].Color, true
}

// ColorExposure is one sensible color's new-border-field exposure score, as
// computed by bestExposureMove: the total occupied-field count of
// not-yet-touched regions that would newly border Filled after absorbing
// that color's neighbor regions.
type ColorExposure struct {
	Color color.Color
	Score int
}

// RankByExposure scores every sensible color in s by exposure and returns
// them sorted highest-score first. Used by greedy's own single-color choice
// (top pick) and by the inadmissible-slow heuristic's two-color choice.
func RankByExposure(s *state.Simple, exposed bitset.NodeSet) []ColorExposure {
	sensible := s.SensibleMoves()
	ranked := make([]ColorExposure, 0, sensible.Len())
	for _, c := range sensible.Colors() {
		exposed.ClearAll()
		absorbed := s.Board.NodesByColor(c)
		for id, ok := absorbed.NextSet(0); ok; id, ok = absorbed.NextSet(id + 1) {
			if s.Neighbors.Get(id) {
				exposed.UnionWith(s.Board.Node(id).BorderingNodes())
			}
		}
		exposed.IntersectWith(s.NotFilledNotNeighbors)
		score := 0
		exposed.Each(func(id int) { score += s.Board.Node(id).AmountOfFields() })
		ranked = append(ranked, ColorExposure{Color: c, Score: score})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })
	return ranked
}
