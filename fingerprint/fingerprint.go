// Package fingerprint implements BoardStateHashMap (spec section 4.7): an
// open-addressed table keyed by a position's `filled` bitmap, recording the
// smallest g-cost seen at that fingerprint. It plays the same dedup role as
// the negamax package's TranspositionTable, but is grow-by-doubling rather
// than fixed-size, since the fingerprint set of a single solve is not known
// up front.
package fingerprint

import (
	"math/bits"

	"github.com/domino14/floodit/bitset"
)

// maxG is the largest g-cost the table can store; the sentinel sits above
// it in the same uint16 lane.
const maxG = 65534

// empty marks an unused slot. Legal stored g values start at 1 (a fresh
// root's own g of 0 never reaches the table; see PutIfLess).
const empty = 0

// invFi is 2^64/φ, the odd constant used for Fibonacci multiplicative
// hashing.
const invFi = 0x9e3779b97f4a7c15

// Overflowed reports whether g exceeds what the table can store (spec
// section 7's hash-map value overflow condition). Callers must check this
// before calling PutIfLess with a candidate g.
func Overflowed(g int) bool { return g > maxG }

type slot struct {
	key []uint64
	g   uint16
}

// Map is the fingerprint table. The zero value is not usable; construct
// with New.
type Map struct {
	slots    []slot
	count    int
	powerOf2 int
	keyWords int
}

// New returns an empty Map sized for keys of keyWords 64-bit words each,
// with an initial capacity of at least initialCapacity slots (rounded up to
// a power of two, minimum 16).
func New(keyWords, initialCapacity int) *Map {
	p := 4 // 16 slots
	for 1<<p < initialCapacity {
		p++
	}
	return &Map{
		slots:    make([]slot, 1<<p),
		powerOf2: p,
		keyWords: keyWords,
	}
}

// Len returns the number of distinct fingerprints stored.
func (m *Map) Len() int { return m.count }

func (m *Map) hash(words []uint64) uint64 {
	digest := bitset.RotateXorFold(words)
	return (digest * invFi) >> (64 - uint(m.powerOf2))
}

func keyEqual(a, b []uint64) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// PutIfLess records g for words's fingerprint if no entry exists yet, or if
// g is strictly less than the stored value; returns whether it wrote.
// g must satisfy 1 <= g <= maxG (see Overflowed); callers with g == 0 must
// remap it (a fresh root's g of 0 is never a useful dedup key).
func (m *Map) PutIfLess(words []uint64, g int) bool {
	if float64(m.count+1) > 0.9*float64(len(m.slots)) {
		m.grow()
	}
	idx := m.hash(words)
	mask := uint64(len(m.slots) - 1)
	for {
		s := &m.slots[idx]
		if s.g == empty {
			s.key = append([]uint64(nil), words...)
			s.g = uint16(g)
			m.count++
			return true
		}
		if keyEqual(s.key, words) {
			if uint16(g) < s.g {
				s.g = uint16(g)
				return true
			}
			return false
		}
		idx = (idx + 1) & mask
	}
}

// Get returns the stored g for words's fingerprint and whether it was
// present.
func (m *Map) Get(words []uint64) (int, bool) {
	idx := m.hash(words)
	mask := uint64(len(m.slots) - 1)
	for {
		s := &m.slots[idx]
		if s.g == empty {
			return 0, false
		}
		if keyEqual(s.key, words) {
			return int(s.g), true
		}
		idx = (idx + 1) & mask
	}
}

func (m *Map) grow() {
	old := m.slots
	m.powerOf2++
	m.slots = make([]slot, 1<<m.powerOf2)
	m.count = 0
	for _, s := range old {
		if s.g == empty {
			continue
		}
		m.insertDuringGrow(s.key, s.g)
	}
}

func (m *Map) insertDuringGrow(key []uint64, g uint16) {
	idx := m.hash(key)
	mask := uint64(len(m.slots) - 1)
	for {
		s := &m.slots[idx]
		if s.g == empty {
			s.key = key
			s.g = g
			m.count++
			return
		}
		idx = (idx + 1) & mask
	}
}

// log2Capacity returns the base-2 logarithm of the table's current slot
// count, matching the hash description in spec section 4.7 ("top
// log2(capacity) bits").
func (m *Map) log2Capacity() int { return bits.Len(uint(len(m.slots))) - 1 }
