package engine

import "fmt"

// Coord is a board position. X is the column, Y the row; Y grows
// downward and row 0 is the top of the board.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns the sum of two coordinates.
func (c Coord) Add(other Coord) Coord {
	return Coord{X: c.X + other.X, Y: c.Y + other.Y}
}

// rotate turns an offset a quarter turn about the anchor: (x,y) -> (y,-x).
func (c Coord) rotate() Coord {
	return Coord{X: c.Y, Y: -c.X}
}
