// Package board builds the region graph (GameBoard) that the rest of the
// solver operates on, plus the compact-string wire format and deterministic
// board generation described in spec section 6.
package board

import (
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/floodit/bitset"
	"github.com/domino14/floodit/color"
)

// StartPosition names the five fixed starting corners/center spec section 6
// allows.
type StartPosition int

const (
	UpperLeft StartPosition = iota
	UpperRight
	LowerLeft
	LowerRight
	Middle
)

func (p StartPosition) point(size int) (Point, error) {
	switch p {
	case UpperLeft:
		return Point{X: 0, Y: 0}, nil
	case UpperRight:
		return Point{X: size - 1, Y: 0}, nil
	case LowerLeft:
		return Point{X: 0, Y: size - 1}, nil
	case LowerRight:
		return Point{X: size - 1, Y: size - 1}, nil
	case Middle:
		return Point{X: size / 2, Y: size / 2}, nil
	default:
		return Point{}, ErrBadStartPos
	}
}

// GameBoard is the whole puzzle: the reduced region graph plus its lookup
// indices. It is immutable after New returns.
type GameBoard struct {
	boardNodes        []*Node
	boardNodesByColor map[color.Color]bitset.NodeSet
	boardSize         int
	colorSet          color.Set
	startPos          Point
	startNode         int
	maximumSteps      int
	grid              []color.Color // row-major, len == boardSize*boardSize; debug/round-trip only
}

// AmountOfNodes returns the number of regions.
func (b *GameBoard) AmountOfNodes() int { return len(b.boardNodes) }

// AmountOfFields returns boardSize².
func (b *GameBoard) AmountOfFields() int { return b.boardSize * b.boardSize }

// BoardSize returns the grid's side length.
func (b *GameBoard) BoardSize() int { return b.boardSize }

// Node returns the region with the given id.
func (b *GameBoard) Node(id int) *Node { return b.boardNodes[id] }

// Nodes returns every region, indexed by id. Callers must not mutate it.
func (b *GameBoard) Nodes() []*Node { return b.boardNodes }

// NodesByColor returns the ids of every region with the given color.
func (b *GameBoard) NodesByColor(c color.Color) bitset.NodeSet { return b.boardNodesByColor[c] }

// ColorSet returns the set of colors actually present on the board.
func (b *GameBoard) ColorSet() color.Set { return b.colorSet }

// StartPoint returns the configured starting grid cell.
func (b *GameBoard) StartPoint() Point { return b.startPos }

// StartNode returns the id of the region containing the starting cell.
func (b *GameBoard) StartNode() int { return b.startNode }

// MaximumSteps returns the configured step cap (spec default: ⌊0.30 *
// boardSize * |colors|⌋). The solver works against an Unbounded copy
// internally; this value is informational / for legacy-compatible replay.
func (b *GameBoard) MaximumSteps() int { return b.maximumSteps }

// Unbounded returns a shallow copy of b with maximumSteps raised to
// effectively unlimited. Per spec section 3 "the solver uses an unbounded
// copy internally."
func (b *GameBoard) Unbounded() *GameBoard {
	cp := *b
	cp.maximumSteps = int(^uint(0) >> 1)
	return &cp
}

// NewNodeSet returns an empty NodeSet sized for this board's region ids.
func (b *GameBoard) NewNodeSet() bitset.NodeSet { return bitset.New(len(b.boardNodes)) }

func defaultMaxSteps(boardSize, numColors int) int {
	steps := int(0.30 * float64(boardSize) * float64(numColors))
	if steps < 1 {
		steps = 1
	}
	return steps
}

// New builds a GameBoard from a color grid (grid[y][x], row-major) and a
// starting position. maxSteps <= 0 selects the spec default
// (⌊0.30·boardSize·|colors|⌋).
func New(grid [][]color.Color, start StartPosition, maxSteps int) (*GameBoard, error) {
	size := len(grid)
	if size == 0 {
		return nil, ErrEmptyGrid
	}
	for _, row := range grid {
		if len(row) != size {
			return nil, ErrEmptyGrid
		}
	}

	regionID := make([][]int, size)
	for y := range regionID {
		regionID[y] = make([]int, size)
		for x := range regionID[y] {
			regionID[y][x] = -1
		}
	}

	var nodes []*Node
	flat := make([]color.Color, 0, size*size)
	for y := 0; y < size; y++ {
		flat = append(flat, grid[y]...)
	}

	// flood fill in row-major scan order, so ids are reproducible (spec
	// section 4.1).
	var queue []Point
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if regionID[y][x] != -1 {
				continue
			}
			id := len(nodes)
			c := grid[y][x]
			queue = queue[:0]
			queue = append(queue, Point{X: x, Y: y})
			regionID[y][x] = id
			var cells []Point
			for len(queue) > 0 {
				p := queue[len(queue)-1]
				queue = queue[:len(queue)-1]
				cells = append(cells, p)
				for _, d := range neighborDeltas {
					nx, ny := p.X+d.X, p.Y+d.Y
					if nx < 0 || ny < 0 || nx >= size || ny >= size {
						continue
					}
					if regionID[ny][nx] != -1 || grid[ny][nx] != c {
						continue
					}
					regionID[ny][nx] = id
					queue = append(queue, Point{X: nx, Y: ny})
				}
			}
			nodes = append(nodes, &Node{id: id, color: c, occupiedFields: cells})
		}
	}

	// second pass: wire up borderingNodes now that every node has an id.
	for i := range nodes {
		nodes[i].borderingNodes = bitset.New(len(nodes))
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			id := regionID[y][x]
			for _, d := range neighborDeltas {
				nx, ny := x+d.X, y+d.Y
				if nx < 0 || ny < 0 || nx >= size || ny >= size {
					continue
				}
				otherID := regionID[ny][nx]
				if otherID != id {
					nodes[id].borderingNodes.Set(otherID)
				}
			}
		}
	}

	// partition regions by color with samber/lo rather than a hand-rolled
	// accumulator loop.
	byColorNodes := lo.GroupBy(nodes, func(n *Node) color.Color { return n.color })
	var colorSet color.Set
	byColor := make(map[color.Color]bitset.NodeSet, len(byColorNodes))
	for c, group := range byColorNodes {
		colorSet = colorSet.Add(c)
		set := bitset.New(len(nodes))
		for _, n := range group {
			set.Set(n.id)
		}
		byColor[c] = set
	}

	numColors := colorSet.Len()
	if numColors < 2 {
		return nil, ErrTooFewColors
	}
	if numColors >= color.MaxColors {
		return nil, ErrTooManyColors
	}

	if maxSteps <= 0 {
		maxSteps = defaultMaxSteps(size, numColors)
	}
	if maxSteps < 1 {
		return nil, ErrInvalidMaxSteps
	}

	startPt, err := start.point(size)
	if err != nil {
		return nil, err
	}
	startNode := regionID[startPt.Y][startPt.X]

	b := &GameBoard{
		boardNodes:        nodes,
		boardNodesByColor: byColor,
		boardSize:         size,
		colorSet:          colorSet,
		startPos:          startPt,
		startNode:         startNode,
		maximumSteps:      maxSteps,
		grid:              flat,
	}

	log.Debug().
		Int("board-size", size).
		Int("num-colors", numColors).
		Int("num-nodes", len(nodes)).
		Int("max-steps", maxSteps).
		Msg("built game board")

	return b, nil
}

// PresentColors returns the board's colors as a sorted slice.
func (b *GameBoard) PresentColors() []color.Color {
	return b.colorSet.Colors()
}
