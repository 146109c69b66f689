package search

import (
	"container/heap"

	"github.com/domino14/floodit/color"
	"github.com/domino14/floodit/movelist"
)

// searchNode is one entry on the A* frontier (spec section 3, "search
// node"): a handle into the ring cache and the move chain, plus enough
// bookkeeping to order the frontier and to drive the pruners.
type searchNode struct {
	cacheIndex        int
	moveHandle        movelist.Handle
	lastMove          color.Color
	movesPlayed       int // g
	priority          int // g + h
	isEliminationNode bool
}

// frontier is a container/heap priority queue of searchNode, ordered by
// priority ascending, breaking ties by movesPlayed descending (spec section
// 4.6: "prefer deeper nodes on ties"). None of the retrieved example repos
// pull in a third-party priority-queue library; every corpus solver that
// needs one (see other_examples' A*/Dijkstra solvers) reaches for
// container/heap, so this does too.
type frontier []*searchNode

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}
	return f[i].movesPlayed > f[j].movesPlayed
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(*searchNode)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]
	return item
}

var _ heap.Interface = (*frontier)(nil)
