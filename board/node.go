package board

import "github.com/domino14/floodit/bitset"
import "github.com/domino14/floodit/color"

// Node is a maximal 4-connected region of same-colored grid cells, i.e. a
// BoardNode in spec terms. It is built once by New and never mutated
// afterwards.
type Node struct {
	id             int
	color          color.Color
	occupiedFields []Point
	borderingNodes bitset.NodeSet
}

// ID returns the node's dense id, unique within its GameBoard.
func (n *Node) ID() int { return n.id }

// Color returns the node's color.
func (n *Node) Color() color.Color { return n.color }

// OccupiedFields returns the immutable list of grid cells this region
// covers. Callers must not mutate the returned slice.
func (n *Node) OccupiedFields() []Point { return n.occupiedFields }

// AmountOfFields returns |OccupiedFields()|.
func (n *Node) AmountOfFields() int { return len(n.occupiedFields) }

// BorderingNodes returns the set of node ids 4-adjacent to this region. A
// node never borders itself.
func (n *Node) BorderingNodes() bitset.NodeSet { return n.borderingNodes }
