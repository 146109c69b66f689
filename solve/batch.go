package solve

import (
	"context"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/floodit/board"
	"github.com/domino14/floodit/color"
	"github.com/domino14/floodit/heuristic"
)

// BatchResult is one board's outcome within a SolveBatch call. Per spec
// section 7 ("a batch driver records one [error] per board and continues"),
// a failing board never aborts the rest of the batch.
type BatchResult struct {
	Moves []color.Color
	Err   error
}

// SolveBatch runs Solve over every board in boards using a worker pool of
// at most workers goroutines, mirroring the automatic package's
// channel-and-pool pattern but built on errgroup (the teacher's own choice
// for bounded concurrent work, e.g. endgame/negamax's lazy-SMP workers).
// Results are returned in the same order as boards; a per-board error never
// cancels the rest of the batch.
func SolveBatch(boards []*board.GameBoard, strategy heuristic.Strategy, stepCap, queueCutoff, workers int) []BatchResult {
	if workers <= 0 {
		workers = 1
	}

	results := make([]BatchResult, len(boards))
	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(workers)

	for i, b := range boards {
		i, b := i, b
		g.Go(func() error {
			moves, err := Solve(b, strategy, stepCap, queueCutoff)
			if err != nil {
				log.Error().Err(err).Int("board-index", i).Msg("solve failed in batch")
			}
			results[i] = BatchResult{Moves: moves, Err: err}
			return nil
		})
	}
	// g.Wait's error is always nil: every worker reports failure through
	// results[i].Err instead of returning it, so the batch itself never
	// aborts early.
	_ = g.Wait()
	return results
}
