package board

// Point is a grid coordinate, 0 <= X, Y < boardSize.
type Point struct {
	X, Y int
}

// less orders points lexicographically on (Y, X), the order in which New's
// row-major scan visits cells. Neither New nor the search calls it.
func (p Point) less(o Point) bool {
	if p.Y != o.Y {
		return p.Y < o.Y
	}
	return p.X < o.X
}

var neighborDeltas = [4]Point{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}
