package board

import (
	"hash/fnv"

	"lukechampine.com/frand"

	"github.com/domino14/floodit/color"
)

// CreateBoard deterministically builds a boardSize×boardSize grid from
// (seed, boardSize, numColors), per spec section 6: "the seed hash
// deterministically seeds a 32-bit pseudo-random sequence; cell c at (x, y)
// = 1 + rand() mod colors." The same triple always yields the same grid,
// regardless of process or platform (spec section 8, SC4).
func CreateBoard(seed string, boardSize, numColors int, start StartPosition, maxSteps int) (*GameBoard, error) {
	grid := make([][]color.Color, boardSize)
	rng := seededRand(seed)
	for y := 0; y < boardSize; y++ {
		grid[y] = make([]color.Color, boardSize)
		for x := 0; x < boardSize; x++ {
			grid[y][x] = color.Color(1 + rng.Intn(numColors))
		}
	}
	return New(grid, start, maxSteps)
}

// CompactSeed is the same generator as CreateBoard, but returns the
// compact-string form directly, for callers (datasets, the CLI) that want
// the wire representation without building the full region graph.
func CompactSeed(seed string, boardSize, numColors int) string {
	rng := seededRand(seed)
	buf := make([]byte, boardSize*boardSize)
	for i := range buf {
		v := rng.Intn(numColors) // 0-based wire digit
		buf[i] = byte(toBase35(v))
	}
	return string(buf)
}

func toBase35(v int) byte {
	if v < 10 {
		return byte('0' + v)
	}
	return byte('A' + v - 10)
}

// seededRand folds seed to a 64-bit value with FNV-1a and uses it to reseed
// a frand ChaCha20 stream (20 rounds), giving a deterministic-but-well-distributed PRNG
// sequence from an arbitrary string seed. frand.NewCustom(seed []byte, ...)
// accepts exactly this shape of keyed seed.
func seededRand(seed string) *frand.RNG {
	h := fnv.New64a()
	_, _ = h.Write([]byte(seed))
	key := make([]byte, 32)
	digest := h.Sum64()
	for i := 0; i < 32; i += 8 {
		for b := 0; b < 8; b++ {
			key[i+b] = byte(digest >> uint(8*b))
		}
		// vary subsequent 8-byte blocks so a 32-byte key isn't just four
		// repeats of the same 8 bytes.
		digest = digest*1099511628211 + uint64(i) + 1
	}
	return frand.NewCustom(key, 1024, 20)
}
