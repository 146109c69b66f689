// Package solve is the glue layer (spec section 2's "Glue" component):
// solver entry points, strategy identifier mapping, and batch dispatch. It
// is the only package outer CLI/dataset code (explicitly out of scope for
// the core, per spec section 1) needs to import.
package solve

import (
	"github.com/domino14/floodit/board"
	"github.com/domino14/floodit/color"
	"github.com/domino14/floodit/heuristic"
	"github.com/domino14/floodit/search"
	"github.com/domino14/floodit/state"
)

// StrategyID is one of the five wire identifiers named in spec section 6.
type StrategyID string

const (
	AStarA    StrategyID = "astar_a"
	AStarIAS  StrategyID = "astar_ias"
	AStarIA   StrategyID = "astar_ia"
	AStarIAF  StrategyID = "astar_iaf"
	AStarIAFF StrategyID = "astar_iaff"
)

var strategyByID = map[StrategyID]heuristic.Strategy{
	AStarA:    heuristic.Admissible,
	AStarIAS:  heuristic.InadmissibleSlow,
	AStarIA:   heuristic.Inadmissible,
	AStarIAF:  heuristic.InadmissibleFast,
	AStarIAFF: heuristic.InadmissibleFastest,
}

// StrategyByID resolves a wire identifier to its heuristic.Strategy.
func StrategyByID(id StrategyID) (heuristic.Strategy, error) {
	s, ok := strategyByID[id]
	if !ok {
		return 0, ErrUnknownStrategy
	}
	return s, nil
}

// CreateBoard re-exports board.CreateBoard: a deterministic (seed, size,
// colors) tuple produces a Board (spec section 6).
func CreateBoard(seed string, boardSize, numColors int, start board.StartPosition, maxSteps int) (*board.GameBoard, error) {
	return board.CreateBoard(seed, boardSize, numColors, start, maxSteps)
}

// Solve implements solve(board, strategy, startPos, stepCap?, queueCutoff?)
// (spec section 6). startPos is baked into board already (see
// board.New/board.FromCompactString); stepCap <= 0 means no cap. The search
// itself always runs against board.Unbounded(), per spec section 3 ("the
// solver uses an unbounded copy internally"); stepCap is applied afterward
// against the returned sequence's length.
func Solve(b *board.GameBoard, strategy heuristic.Strategy, stepCap int, queueCutoff int) ([]color.Color, error) {
	moves, err := search.Run(b.Unbounded(), search.Options{
		Strategy:    strategy,
		QueueCutoff: queueCutoff,
	})
	if err != nil {
		return nil, err
	}
	if stepCap > 0 && len(moves) > stepCap {
		return nil, ErrNotWonUnderCap
	}
	return moves, nil
}

// SolveFromPartial implements solveFromPartial(game, strategy, queueCutoff?)
// (spec section 6): resumes search from an already-played Game and returns
// the full move sequence, already-played moves included.
func SolveFromPartial(g *state.Game, strategy heuristic.Strategy, queueCutoff int) ([]color.Color, error) {
	unbounded := g.Board.Unbounded()
	partial := state.Position{
		Board:                 unbounded,
		Filled:                g.Filled,
		Neighbors:             g.Neighbors,
		NotFilledNotNeighbors: g.NotFilledNotNeighbors,
	}
	rest, err := search.RunFrom(partial, search.Options{
		Strategy:    strategy,
		QueueCutoff: queueCutoff,
	})
	if err != nil {
		return nil, err
	}
	full := make([]color.Color, 0, len(g.PlayedMoves)+len(rest))
	full = append(full, g.PlayedMoves...)
	full = append(full, rest...)
	return full, nil
}
