package search

import "errors"

// ErrFrontierEmpty is the "algorithm error" of spec section 6: the frontier
// emptied without finding a win. Per spec section 6 this cannot happen on a
// well-formed board searched with an unbounded step cap, so a caller seeing
// it should treat it as an internal invariant violation, not a normal
// failure to solve.
var ErrFrontierEmpty = errors.New("search: frontier emptied without a winning state")

// ErrGCostOverflow is the invariant-violation of spec section 7: the
// fingerprint table can only record g-costs up to 65534.
var ErrGCostOverflow = errors.New("search: g-cost exceeded fingerprint table capacity")
