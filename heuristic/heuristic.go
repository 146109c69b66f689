// Package heuristic implements the five-strategy admissible/inadmissible
// ladder from spec section 4.4. Strategy is a sum type dispatched once at
// the top of Evaluate; the inner simulation loops never dispatch again, per
// the "avoid dynamic dispatch inside the inner heuristic loops" design note.
package heuristic

import (
	"github.com/domino14/floodit/bitset"
	"github.com/domino14/floodit/color"
	"github.com/domino14/floodit/greedy"
	"github.com/domino14/floodit/state"
)

// Strategy names one of the five heuristic strategies.
type Strategy int

const (
	Admissible Strategy = iota
	InadmissibleSlow
	Inadmissible
	InadmissibleFast
	InadmissibleFastest
)

func (s Strategy) String() string {
	switch s {
	case Admissible:
		return "ADMISSIBLE"
	case InadmissibleSlow:
		return "INADMISSIBLE_SLOW"
	case Inadmissible:
		return "INADMISSIBLE"
	case InadmissibleFast:
		return "INADMISSIBLE_FAST"
	case InadmissibleFastest:
		return "INADMISSIBLE_FASTEST"
	default:
		return "UNKNOWN"
	}
}

// Admissible reports whether the strategy is admissible (never overestimates
// moves remaining). Only ADMISSIBLE is; this drives which symmetry pruner
// (see the prune package) may soundly be paired with it.
func (s Strategy) Admissible() bool { return s == Admissible }

// Evaluate returns strategy's estimate of moves remaining from pos, using
// scratch as working memory (reset in place, never reallocated). A won
// position always evaluates to 0, for every strategy.
func Evaluate(strategy Strategy, pos state.Position, scratch *state.Simple) int {
	if pos.Won() {
		return 0
	}
	switch strategy {
	case Admissible:
		scratch.Reset(pos)
		return admissiblePlayout(scratch)
	case InadmissibleSlow:
		return inadmissibleSlow(pos, scratch)
	case Inadmissible:
		slow := inadmissibleSlow(pos, scratch)
		return slow + slow/13
	case InadmissibleFast:
		admissibleH := func() int { scratch.Reset(pos); return admissiblePlayout(scratch) }()
		fastest := func() int { scratch.Reset(pos); return greedy.Play(scratch) }()
		return (admissibleH + 2*fastest) / 3
	case InadmissibleFastest:
		scratch.Reset(pos)
		return greedy.Play(scratch)
	default:
		scratch.Reset(pos)
		return admissiblePlayout(scratch)
	}
}

// admissiblePlayout runs the admissible lower-bound simulation to
// completion: eliminate every eliminable color in one step when possible,
// otherwise take a color-blind step. Never overestimates moves remaining
// (spec section 4.4, section 8 property 6).
func admissiblePlayout(s *state.Simple) int {
	moves := 0
	for !s.Won() {
		if elim := s.EliminableColors(); !elim.Empty() {
			s.MakeMultiColorMove(elim)
			moves += elim.Len()
			continue
		}
		s.MakeColorBlindMove()
		moves++
	}
	return moves
}

// halfFieldsFilled reports whether at least half of the board's fields are
// already in Filled.
func halfFieldsFilled(pos state.Position) bool {
	filledFields := 0
	pos.Filled.Each(func(id int) { filledFields += pos.Board.Node(id).AmountOfFields() })
	return 2*filledFields >= pos.Board.AmountOfFields()
}

// inadmissibleSlow is the tight inadmissible estimate: falls back to
// ADMISSIBLE once at least half the board is filled; otherwise it
// eliminates when possible, and otherwise takes the two colors with the
// greatest individual new-border exposure together as one step.
func inadmissibleSlow(pos state.Position, scratch *state.Simple) int {
	scratch.Reset(pos)
	if halfFieldsFilled(pos) {
		return admissiblePlayout(scratch)
	}

	exposed := bitset.New(pos.Board.AmountOfNodes())
	moves := 0
	for !scratch.Won() {
		if elim := scratch.EliminableColors(); !elim.Empty() {
			scratch.MakeMultiColorMove(elim)
			moves += elim.Len()
			continue
		}
		pair := topTwoColors(scratch, exposed)
		if pair.Empty() {
			break
		}
		scratch.MakeMultiColorMove(pair)
		moves++
	}
	return moves
}

// topTwoColors returns the (up to) two sensible colors with the greatest
// individual new-border exposure, to be played together as one step.
func topTwoColors(s *state.Simple, exposed bitset.NodeSet) color.Set {
	ranked := greedy.RankByExposure(s, exposed)
	var out color.Set
	for i := 0; i < len(ranked) && i < 2; i++ {
		out = out.Add(ranked[i].Color)
	}
	return out
}
