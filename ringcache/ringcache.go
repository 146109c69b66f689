// Package ringcache implements the ring cache of expanded states (spec
// section 4.8): a fixed-size circular buffer of position snapshots, keyed by
// insertion index rather than by name. Unlike the teacher's cache package
// (domino14/macondo/cache, a named-key global object cache guarded by a
// mutex), this cache is single-threaded by design — one instance per solve —
// and never locks.
package ringcache

import "github.com/domino14/floodit/state"

// DefaultCapacity is the default number of slots (spec section 4.8).
const DefaultCapacity = 10000

// Cache is a fixed-size circular buffer of state.Position snapshots.
type Cache struct {
	slots         []state.Position
	lastUsedIndex int // last index handed out by Add; -1 before any Add
}

// New returns a Cache with the given number of slots.
func New(capacity int) *Cache {
	return &Cache{slots: make([]state.Position, capacity), lastUsedIndex: -1}
}

// Add stores pos and returns its insertion index. Indices only ever
// increase; Get resolves whether a given index's slot still holds it.
func (c *Cache) Add(pos state.Position) int {
	c.lastUsedIndex++
	c.slots[c.lastUsedIndex%len(c.slots)] = pos
	return c.lastUsedIndex
}

// Get returns the position stored at index and true, or a miss (false) if
// that slot has since been overwritten by a later insertion — the caller
// must reconstruct the state by replaying its move chain instead.
func (c *Cache) Get(index int) (state.Position, bool) {
	if index <= c.lastUsedIndex-len(c.slots) || index > c.lastUsedIndex {
		return state.Position{}, false
	}
	return c.slots[index%len(c.slots)], true
}
