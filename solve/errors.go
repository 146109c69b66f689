package solve

import "errors"

// ErrUnknownStrategy is returned by StrategyByID for an unrecognized
// identifier.
var ErrUnknownStrategy = errors.New("solve: unknown strategy identifier")

// ErrGameNotWonSentinel is the legacy dataset-format sentinel string (spec
// section 6 "Dataset format"), exported verbatim so an external dataset
// writer can reuse it without this package needing to know about files.
const ErrGameNotWonSentinel = "game not won"

// ErrNotWonUnderCap is the legacy dataset-format outcome (spec section 6):
// a board solved by the unbounded internal search, but the resulting
// sequence is longer than the caller's stepCap.
var ErrNotWonUnderCap = errors.New("solve: " + ErrGameNotWonSentinel)
