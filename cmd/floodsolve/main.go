// Command floodsolve is the CLI glue around the solver core: it builds a
// board from a compact string or a deterministic seed, solves it with the
// chosen strategy, and prints the resulting move sequence. Command-line
// parsing and terminal output are explicitly out of scope for the core
// (spec section 1); this file is the thin external collaborator that
// consumes it.
package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/domino14/floodit/board"
	"github.com/domino14/floodit/color"
	"github.com/domino14/floodit/config"
	"github.com/domino14/floodit/solve"
)

func main() {
	compact := pflag.String("board", "", "compact board string (base-35 digits); mutually exclusive with -seed")
	seed := pflag.String("seed", "", "deterministic seed for board generation; mutually exclusive with -board")
	size := pflag.Int("size", 14, "board size, used with -seed")
	colors := pflag.Int("colors", 6, "number of colors, used with -seed")
	start := pflag.String("start", "upper-left", "start position: upper-left, upper-right, lower-left, lower-right, middle")
	strategy := pflag.String("strategy", "", "strategy identifier (astar_a, astar_ias, astar_ia, astar_iaf, astar_iaff); default from config")
	queueCutoff := pflag.Int("queue-cutoff", 0, "queue-cutoff (0 = use the config's default_queue_cutoff, itself 0 = no cutoff by default)")
	debug := pflag.Bool("debug", false, "enable debug logging")
	pflag.Parse()

	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	v := viper.New()
	if err := v.BindPFlags(pflag.CommandLine); err != nil {
		log.Fatal().Err(err).Msg("failed to bind flags")
	}
	cfg, err := config.Load(v)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	startPos, err := parseStartPosition(*start)
	if err != nil {
		log.Fatal().Err(err).Msg("bad start position")
	}

	b, err := resolveBoard(*compact, *seed, *size, *colors, startPos)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build board")
	}

	stratID := solve.StrategyID(*strategy)
	if stratID == "" {
		stratID = cfg.DefaultStrategy
	}
	strat, err := solve.StrategyByID(stratID)
	if err != nil {
		log.Fatal().Err(err).Msg("unknown strategy")
	}

	cutoff := *queueCutoff
	if cutoff == 0 {
		cutoff = cfg.DefaultQueueCutoff
	}

	moves, err := solve.Solve(b, strat, 0, cutoff)
	if err != nil {
		log.Fatal().Err(err).Msg("solve failed")
	}

	fmt.Println(renderMoves(moves))
}

func resolveBoard(compact, seed string, size, colors int, startPos board.StartPosition) (*board.GameBoard, error) {
	if compact != "" {
		return board.FromCompactString(compact, startPos, 0)
	}
	if seed != "" {
		return solve.CreateBoard(seed, size, colors, startPos, 0)
	}
	return nil, fmt.Errorf("either -board or -seed must be provided")
}

func parseStartPosition(s string) (board.StartPosition, error) {
	switch s {
	case "upper-left":
		return board.UpperLeft, nil
	case "upper-right":
		return board.UpperRight, nil
	case "lower-left":
		return board.LowerLeft, nil
	case "lower-right":
		return board.LowerRight, nil
	case "middle":
		return board.Middle, nil
	default:
		return 0, fmt.Errorf("unknown start position %q", s)
	}
}

func renderMoves(moves []color.Color) string {
	var out []byte
	for _, m := range moves {
		out = append(out, []byte(m.String())...)
	}
	return string(out)
}
