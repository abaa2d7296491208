package engine

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
)

// ShapeID identifies one of the seven tetrominoes.
type ShapeID uint8

const (
	ShapeI ShapeID = iota
	ShapeO
	ShapeT
	ShapeS
	ShapeZ
	ShapeJ
	ShapeL
)

// ShapeCount is the number of shapes in the catalog.
const ShapeCount = 7

// RandomSource picks shape indices. *math/rand.Rand satisfies it; tests
// supply scripted sequences.
type RandomSource interface {
	Intn(n int) int
}

// Shape is a catalog entry: a name, a display color and the cell offsets
// relative to the piece anchor.
type Shape struct {
	ID      ShapeID
	Name    string
	Color   core.Color
	offsets []Coord
}

// Offsets returns a copy of the shape's cell offsets.
func (s Shape) Offsets() []Coord {
	out := make([]Coord, len(s.offsets))
	copy(out, s.offsets)
	return out
}

// Offsets are laid out around (0,0) so the fixed rotation keeps the
// piece roughly in place.
var catalog = [ShapeCount]Shape{
	{ID: ShapeI, Name: "I", Color: core.ColorBrightCyan, offsets: []Coord{{-1, 0}, {0, 0}, {1, 0}, {2, 0}}},
	{ID: ShapeO, Name: "O", Color: core.ColorBrightYellow, offsets: []Coord{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
	{ID: ShapeT, Name: "T", Color: core.ColorBrightMagenta, offsets: []Coord{{-1, 0}, {0, 0}, {1, 0}, {0, 1}}},
	{ID: ShapeS, Name: "S", Color: core.ColorBrightGreen, offsets: []Coord{{0, 0}, {1, 0}, {-1, 1}, {0, 1}}},
	{ID: ShapeZ, Name: "Z", Color: core.ColorBrightRed, offsets: []Coord{{-1, 0}, {0, 0}, {0, 1}, {1, 1}}},
	{ID: ShapeJ, Name: "J", Color: core.ColorBrightBlue, offsets: []Coord{{-1, 0}, {0, 0}, {1, 0}, {1, 1}}},
	{ID: ShapeL, Name: "L", Color: core.ColorOrange, offsets: []Coord{{-1, 0}, {0, 0}, {1, 0}, {-1, 1}}},
}

// String returns the shape letter.
func (id ShapeID) String() string {
	if int(id) < ShapeCount {
		return catalog[id].Name
	}
	return "?"
}

// ShapeAt returns the catalog entry at index i.
// An index outside [0, ShapeCount) is a broken random source and panics.
func ShapeAt(i int) Shape {
	if i < 0 || i >= ShapeCount {
		panic(fmt.Sprintf("engine: shape index %d out of range [0,%d)", i, ShapeCount))
	}
	return catalog[i]
}

// SpawnShape selects a shape uniformly using src.
func SpawnShape(src RandomSource) Shape {
	return ShapeAt(src.Intn(ShapeCount))
}

// Shapes returns every catalog entry in ID order.
func Shapes() []Shape {
	out := make([]Shape, ShapeCount)
	copy(out, catalog[:])
	return out
}

// RotateOffsets returns a new slice with every offset turned a quarter turn.
// The input is left untouched.
func RotateOffsets(offsets []Coord) []Coord {
	out := make([]Coord, len(offsets))
	for i, o := range offsets {
		out[i] = o.rotate()
	}
	return out
}
