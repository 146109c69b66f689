// Package bitset implements NodeSet, the fixed-width bitmap over board-node
// ids that the whole solver core is built on top of. Every NodeSet derived
// from the same GameBoard has the same word count, so the arithmetic below
// never needs to reconcile mismatched shapes.
package bitset

import "math/bits"

const wordBits = 64

// NodeSet is a bitmap over node ids 0..n-1, stored as ⌈n/64⌉ 64-bit words.
// The zero value is not usable; construct with New.
type NodeSet struct {
	words []uint64
	n     int // universe size this set was built for
}

// New returns an empty NodeSet sized for node ids 0..n-1.
func New(n int) NodeSet {
	return NodeSet{words: make([]uint64, wordCount(n)), n: n}
}

func wordCount(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + wordBits - 1) / wordBits
}

// Len returns the universe size (not the population count; see PopCount).
func (s NodeSet) Len() int { return s.n }

// Clone returns an independent copy of s.
func (s NodeSet) Clone() NodeSet {
	words := make([]uint64, len(s.words))
	copy(words, s.words)
	return NodeSet{words: words, n: s.n}
}

// CopyFrom overwrites s's contents with o's, in place, without reallocating
// s.words (both must share the same universe size). This is the operation
// the mutable scratch state (state.Simple) resets itself with.
func (s NodeSet) CopyFrom(o NodeSet) {
	copy(s.words, o.words)
}

// Set adds node id to s.
func (s NodeSet) Set(id int) {
	s.words[id/wordBits] |= 1 << uint(id%wordBits)
}

// Clear removes node id from s.
func (s NodeSet) Clear(id int) {
	s.words[id/wordBits] &^= 1 << uint(id%wordBits)
}

// Get reports whether node id is a member of s.
func (s NodeSet) Get(id int) bool {
	return s.words[id/wordBits]&(1<<uint(id%wordBits)) != 0
}

// ClearAll empties s in place.
func (s NodeSet) ClearAll() {
	for i := range s.words {
		s.words[i] = 0
	}
}

// FlipAll complements the bits for ids 0..Len()-1 in place; the padding bits
// in the final word above Len()-1 stay clear.
func (s NodeSet) FlipAll() {
	for i := range s.words {
		s.words[i] = ^s.words[i]
	}
	if r := s.n % wordBits; r != 0 && len(s.words) > 0 {
		s.words[len(s.words)-1] &= (uint64(1) << uint(r)) - 1
	}
}

// PopCount returns |s|.
func (s NodeSet) PopCount() int {
	count := 0
	for _, w := range s.words {
		count += bits.OnesCount64(w)
	}
	return count
}

// Empty reports whether s has no members.
func (s NodeSet) Empty() bool {
	for _, w := range s.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// UnionWith sets s to s ∪ o, in place.
func (s NodeSet) UnionWith(o NodeSet) {
	for i := range s.words {
		s.words[i] |= o.words[i]
	}
}

// IntersectWith sets s to s ∩ o, in place.
func (s NodeSet) IntersectWith(o NodeSet) {
	for i := range s.words {
		s.words[i] &= o.words[i]
	}
}

// DifferenceWith sets s to s \ o, in place.
func (s NodeSet) DifferenceWith(o NodeSet) {
	for i := range s.words {
		s.words[i] &^= o.words[i]
	}
}

// SymmetricDifferenceWith sets s to s Δ o, in place.
func (s NodeSet) SymmetricDifferenceWith(o NodeSet) {
	for i := range s.words {
		s.words[i] ^= o.words[i]
	}
}

// Intersects reports whether s ∩ o is non-empty, without allocating.
func (s NodeSet) Intersects(o NodeSet) bool {
	for i := range s.words {
		if s.words[i]&o.words[i] != 0 {
			return true
		}
	}
	return false
}

// NextSet returns the smallest member of s that is >= from, and true; if
// there is none, it returns (0, false).
func (s NodeSet) NextSet(from int) (int, bool) {
	if from < 0 {
		from = 0
	}
	wordIdx := from / wordBits
	if wordIdx >= len(s.words) {
		return 0, false
	}
	// mask off bits below `from` in the first word we examine.
	w := s.words[wordIdx] &^ ((uint64(1) << uint(from%wordBits)) - 1)
	for {
		if w != 0 {
			return wordIdx*wordBits + bits.TrailingZeros64(w), true
		}
		wordIdx++
		if wordIdx >= len(s.words) {
			return 0, false
		}
		w = s.words[wordIdx]
	}
}

// Each calls fn for every member of s, in ascending order.
func (s NodeSet) Each(fn func(id int)) {
	for id, ok := s.NextSet(0); ok; id, ok = s.NextSet(id + 1) {
		fn(id)
	}
}

// Slice returns the members of s as a freshly allocated, ascending slice.
func (s NodeSet) Slice() []int {
	ids := make([]int, 0, s.PopCount())
	s.Each(func(id int) { ids = append(ids, id) })
	return ids
}

// Equal reports content equality: same members, regardless of any padding
// bits above Len() (those are never set by the package's own operations).
func (s NodeSet) Equal(o NodeSet) bool {
	if len(s.words) != len(o.words) {
		return false
	}
	for i := range s.words {
		if s.words[i] != o.words[i] {
			return false
		}
	}
	return true
}

// Hash folds the word array to a 64-bit digest via rotate-xor, the same
// primitive fingerprint.Map uses for its keys (spec section 4.7 / 9).
func (s NodeSet) Hash() uint64 {
	return RotateXorFold(s.words)
}

// Words exposes the backing array read-only, for callers (fingerprint.Map)
// that need to hash or store the raw key without copying through the
// higher-level NodeSet API.
func (s NodeSet) Words() []uint64 { return s.words }

// RotateXorFold folds an arbitrary-length word slice to a 64-bit digest by
// rotating the running digest before xor-ing in each word. This is the
// hashing primitive named in spec section 4.7 ("rotate-xor of the K words
// to a 64-bit digest").
func RotateXorFold(words []uint64) uint64 {
	var digest uint64
	for _, w := range words {
		digest = bits.RotateLeft64(digest, 1) ^ w
	}
	return digest
}
