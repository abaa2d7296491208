package engine

import "time"

// ActivePiece is the falling piece under player control.
type ActivePiece struct {
	shape   Shape
	offsets []Coord // current, possibly rotated, offsets
	anchor  Coord
	elapsed time.Duration // time since the last gravity drop
}

// Cells returns the board coordinates covered by the piece.
func (p *ActivePiece) Cells() []Coord {
	out := make([]Coord, len(p.offsets))
	for i, o := range p.offsets {
		out[i] = p.anchor.Add(o)
	}
	return out
}

// Anchor returns the piece anchor.
func (p *ActivePiece) Anchor() Coord {
	return p.anchor
}

// spawnAnchor centres the shape horizontally and lifts it so its top
// cell sits on row 0.
func spawnAnchor(offsets []Coord, width int) Coord {
	minY := 0
	for _, o := range offsets {
		minY = min(minY, o.Y)
	}
	return C(width/2-1, -minY)
}

// spawn replaces the active piece with the queued shape and draws the
// next one. It returns false when the new piece does not fit.
func (e *Engine) spawn() bool {
	shape := e.next
	e.next = SpawnShape(e.rng)

	offsets := shape.Offsets()
	e.piece = &ActivePiece{
		shape:   shape,
		offsets: offsets,
		anchor:  spawnAnchor(offsets, e.board.Width()),
	}
	return Fits(e.piece.offsets, e.piece.anchor, e.board)
}

// Move shifts the piece dx columns. It reports whether the move happened.
func (e *Engine) Move(dx int) bool {
	if e.state != StatePlaying || e.piece == nil {
		return false
	}
	target := e.piece.anchor.Add(C(dx, 0))
	if !Fits(e.piece.offsets, target, e.board) {
		return false
	}
	e.piece.anchor = target
	return true
}

// Rotate turns the piece a quarter turn about its anchor. The rotation is
// all-or-nothing: if the result does not fit, the piece is untouched.
func (e *Engine) Rotate() bool {
	if e.state != StatePlaying || e.piece == nil {
		return false
	}
	rotated := RotateOffsets(e.piece.offsets)
	if !Fits(rotated, e.piece.anchor, e.board) {
		return false
	}
	e.piece.offsets = rotated
	return true
}

// SetSoftDrop toggles the faster fall threshold. It never moves the piece.
func (e *Engine) SetSoftDrop(on bool) {
	e.softDrop = on
}
