package engine

// Fits reports whether a piece with the given offsets can sit at anchor.
// Every cell must be inside the board and must not overlap a settled or
// clearing cell. Dropping cells never block.
func Fits(offsets []Coord, anchor Coord, b *Board) bool {
	for _, o := range offsets {
		c := anchor.Add(o)
		if !b.InBounds(c) || b.Occupied(c) {
			return false
		}
	}
	return true
}
