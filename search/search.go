// Package search implements the A* driver of spec section 4.6: the
// frontier priority queue, color-elimination preference, symmetry-pruned
// expansion, fingerprint deduplication and memory-bounded queue cutoff.
package search

import (
	"container/heap"
	"math"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/domino14/floodit/board"
	"github.com/domino14/floodit/color"
	"github.com/domino14/floodit/fingerprint"
	"github.com/domino14/floodit/greedy"
	"github.com/domino14/floodit/heuristic"
	"github.com/domino14/floodit/movelist"
	"github.com/domino14/floodit/prune"
	"github.com/domino14/floodit/ringcache"
	"github.com/domino14/floodit/state"
)

// NoQueueCutoff disables the queue-cutoff compaction (spec section 4.6's
// default of Int.MAX_VALUE).
const NoQueueCutoff = math.MaxInt

// MemoryBoundedQueueCutoff is the alternative default named in spec section
// 4.6 for memory-constrained callers.
const MemoryBoundedQueueCutoff = 1_000_000

// Options configures one Run invocation.
type Options struct {
	Strategy                heuristic.Strategy
	QueueCutoff             int // <= 0 means NoQueueCutoff
	RingCacheCapacity       int // <= 0 means ringcache.DefaultCapacity
	FingerprintInitCapacity int // <= 0 means a small default
}

func (o Options) normalize() Options {
	if o.QueueCutoff <= 0 {
		o.QueueCutoff = NoQueueCutoff
	}
	if o.RingCacheCapacity <= 0 {
		o.RingCacheCapacity = ringcache.DefaultCapacity
	}
	if o.FingerprintInitCapacity <= 0 {
		o.FingerprintInitCapacity = 1 << 16
	}
	return o
}

// searcher holds everything the driver needs for a single solve, kept
// unexported since it never outlives Run.
type searcher struct {
	board    *board.GameBoard
	opts     Options
	cache    *ringcache.Cache
	fp       *fingerprint.Map
	moves    *movelist.Collection
	scratch  *state.Simple
	hscratch *state.Simple
	root     state.Position
}

// Run solves board with the given strategy and returns the winning move
// sequence. board should already be board.Unbounded() when the caller wants
// the driver's own MaximumSteps to play no role (the driver itself never
// consults MaximumSteps; step caps are enforced by the solve package).
func Run(b *board.GameBoard, opts Options) ([]color.Color, error) {
	return RunFrom(state.NewPosition(b), opts)
}

// RunFrom solves from an arbitrary starting position (spec section 6's
// solveFromPartial), returning only the moves played from root onward.
func RunFrom(root state.Position, opts Options) ([]color.Color, error) {
	opts = opts.normalize()
	b := root.Board

	s := &searcher{
		board:    b,
		opts:     opts,
		cache:    ringcache.New(opts.RingCacheCapacity),
		fp:       fingerprint.New(len(b.NewNodeSet().Words()), opts.FingerprintInitCapacity),
		moves:    movelist.New(),
		scratch:  state.NewSimple(b, root),
		hscratch: state.NewSimple(b, root),
		root:     root,
	}
	return s.run()
}

func (s *searcher) evaluate(pos state.Position) int {
	return heuristic.Evaluate(s.opts.Strategy, pos, s.hscratch)
}

func (s *searcher) resolve(n *searchNode) state.Position {
	if pos, ok := s.cache.Get(n.cacheIndex); ok {
		return pos
	}
	s.scratch.Reset(s.root)
	for _, c := range s.moves.Read(n.moveHandle) {
		s.scratch.MakeMove(c)
	}
	return s.scratch.Position()
}

func (s *searcher) run() ([]color.Color, error) {
	if s.root.Won() {
		return nil, nil
	}

	fr := make(frontier, 0)
	heap.Init(&fr)

	allowed := s.root.SensibleMoves()
	for _, c := range allowed.Colors() {
		if err := s.pushSuccessor(&fr, s.root, movelist.Root, 0, c, false); err != nil {
			return nil, err
		}
	}

	for fr.Len() > 0 {
		n := heap.Pop(&fr).(*searchNode)
		pos := s.resolve(n)

		if pos.Won() {
			return s.moves.Read(n.moveHandle), nil
		}

		if !s.opts.Strategy.Admissible() {
			if elim := pos.EliminableColors(); !elim.Empty() {
				s.pushEliminationStep(&fr, pos, n, elim)
				s.maybeCutoff(&fr)
				continue
			}
		}

		var candidates color.Set
		if s.opts.Strategy.Admissible() {
			candidates = prune.Admissible(pos, n.lastMove)
		} else {
			candidates = prune.Inadmissible(pos, n.lastMove, n.isEliminationNode)
		}

		for _, c := range candidates.Colors() {
			if err := s.pushSuccessor(&fr, pos, n.moveHandle, n.movesPlayed, c, false); err != nil {
				return nil, err
			}
		}

		s.maybeCutoff(&fr)
	}

	log.Error().Msg("search frontier emptied without a winning state")
	return nil, ErrFrontierEmpty
}

// pushSuccessor absorbs c from parentPos, checks the fingerprint table, and
// pushes the successor node onto fr if it improves on any previously seen
// g for that fingerprint.
func (s *searcher) pushSuccessor(fr *frontier, parentPos state.Position, parentHandle movelist.Handle, parentG int, c color.Color, isElimination bool) error {
	s.scratch.Reset(parentPos)
	s.scratch.MakeMove(c)
	succ := s.scratch.Position()

	g := parentG + 1
	if fingerprint.Overflowed(g) {
		return ErrGCostOverflow
	}
	if !s.fp.PutIfLess(succ.Filled.Words(), g) {
		return nil
	}

	h := s.evaluate(succ)
	idx := s.cache.Add(succ)
	handle := s.moves.Add(parentHandle, c)
	heap.Push(fr, &searchNode{
		cacheIndex:        idx,
		moveHandle:        handle,
		lastMove:          c,
		movesPlayed:       g,
		priority:          g + h,
		isEliminationNode: isElimination,
	})
	return nil
}

// pushEliminationStep applies the color-elimination-preference step (spec
// section 4.6 step 3): every eliminable color absorbed in one successor
// node, with one move-chain entry per color so replay stays exact; g
// advances by the number of eliminated colors, keeping it equal to the
// move-chain length.
func (s *searcher) pushEliminationStep(fr *frontier, pos state.Position, n *searchNode, elim color.Set) {
	s.scratch.Reset(pos)
	s.scratch.MakeMultiColorMove(elim)
	succ := s.scratch.Position()

	handle := n.moveHandle
	colors := elim.Colors()
	var last color.Color
	for _, c := range colors {
		handle = s.moves.Add(handle, c)
		last = c
	}

	g := n.movesPlayed + len(colors)
	h := s.evaluate(succ)
	idx := s.cache.Add(succ)
	heap.Push(fr, &searchNode{
		cacheIndex:        idx,
		moveHandle:        handle,
		lastMove:          last,
		movesPlayed:       g,
		priority:          g + h,
		isEliminationNode: true,
	})
}

// maybeCutoff applies queue-cutoff compaction when the frontier has grown
// past opts.QueueCutoff (spec section 4.6 step 5). This is the only
// operation that can cause a worse-than-heuristic result.
func (s *searcher) maybeCutoff(fr *frontier) {
	if fr.Len() <= s.opts.QueueCutoff {
		return
	}

	type scored struct {
		n     *searchNode
		score int
	}
	entries := make([]scored, fr.Len())
	for i, n := range *fr {
		pos := s.resolve(n)
		s.scratch.Reset(pos)
		entries[i] = scored{n: n, score: n.movesPlayed + greedy.Play(s.scratch)}
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].score < entries[j].score })

	keep := len(entries) / 2
	log.Debug().Int("frontier-size", len(entries)).Int("kept", keep).Msg("queue cutoff triggered")

	*fr = (*fr)[:0]
	for i := 0; i < keep; i++ {
		*fr = append(*fr, entries[i].n)
	}
	heap.Init(fr)
}
