package board

import (
	"math"

	"github.com/domino14/floodit/color"
)

// Compact renders b's original grid as the base-35 compact string described
// in spec section 6: one line of boardSize² characters, row-major, no
// whitespace.
func (b *GameBoard) Compact() string {
	buf := make([]byte, len(b.grid))
	for i, c := range b.grid {
		buf[i] = byte(c.String()[0])
	}
	return string(buf)
}

// FromCompactString parses a compact board string plus a start position
// into a GameBoard. maxSteps <= 0 selects the spec default.
func FromCompactString(s string, start StartPosition, maxSteps int) (*GameBoard, error) {
	n := len(s)
	if n == 0 {
		return nil, ErrEmptyGrid
	}
	size := int(math.Sqrt(float64(n)))
	if size*size != n {
		return nil, ErrNotSquare
	}

	grid := make([][]color.Color, size)
	for y := 0; y < size; y++ {
		grid[y] = make([]color.Color, size)
		for x := 0; x < size; x++ {
			v, ok := color.FromBase35Digit(s[y*size+x])
			if !ok {
				return nil, ErrBadDigit
			}
			// cell values are 0-based in the wire format; colors are
			// 1-based internally (0 is reserved for "no color").
			grid[y][x] = color.Color(v + 1)
		}
	}
	return New(grid, start, maxSteps)
}
