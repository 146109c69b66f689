// Package movelist implements MoveCollection, the shared-prefix move-chain
// store used by the A* frontier: two parallel growable arrays instead of an
// immutable linked list, so that many search nodes sharing a prefix cost
// O(1) to append to and O(L) to read, with a tiny per-node footprint.
package movelist

import "github.com/domino14/floodit/color"

// None is the sentinel "no previous entry" chain pointer.
const None = -1

// Handle identifies one move list: the index of its last entry plus its
// length, so callers never need to walk the chain just to learn how long it
// is.
type Handle struct {
	EndIndex int
	Length   int
}

// Root is the handle for the empty move list.
var Root = Handle{EndIndex: None, Length: 0}

// Collection is the shared-prefix store: entry i records the color played
// at that step and the index of the entry it followed. Invariant:
// prev[i] < i, or prev[i] == None; the chain is therefore acyclic by
// construction (Add can only ever point backwards).
type Collection struct {
	prev  []int32
	color []int8
}

// New returns an empty Collection.
func New() *Collection { return &Collection{} }

// Add appends one entry following prevHandle and returns the new handle.
func (c *Collection) Add(prevHandle Handle, mv color.Color) Handle {
	idx := len(c.prev)
	c.prev = append(c.prev, int32(prevHandle.EndIndex))
	c.color = append(c.color, int8(mv))
	return Handle{EndIndex: idx, Length: prevHandle.Length + 1}
}

// Len returns the number of entries ever appended (not any one list's
// length; use Handle.Length for that).
func (c *Collection) Len() int { return len(c.prev) }

// Read walks h's chain backward and returns the moves in play order.
func (c *Collection) Read(h Handle) []color.Color {
	moves := make([]color.Color, h.Length)
	i := h.Length - 1
	for idx := h.EndIndex; idx != None; idx = int(c.prev[idx]) {
		moves[i] = color.Color(c.color[idx])
		i--
	}
	return moves
}
