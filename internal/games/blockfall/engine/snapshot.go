package engine

// Snapshot captures the complete engine state for determinism testing
// and headless runs.
type Snapshot struct {
	Step     uint64
	State    GameState
	Score    int
	Lines    int
	Pieces   int
	SoftDrop bool
	Piece    []Coord
	Next     ShapeID
	Cells    []CellView
}

// Snapshot returns the current engine snapshot.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Step:     e.step,
		State:    e.state,
		Score:    e.score.Value(),
		Lines:    e.lines,
		Pieces:   e.pieces,
		SoftDrop: e.softDrop,
		Piece:    e.PieceCells(),
		Next:     e.next.ID,
		Cells:    e.Cells(),
	}
}

// Grid renders the settled board, the falling piece and animated cells as
// rows of runes: '#' settled, '*' clearing, '~' dropping, '@' piece,
// '.' empty. It is used by the headless simulator and by tests.
func (e *Engine) Grid() []string {
	w, h := e.board.Width(), e.board.Height()
	rows := make([][]rune, h)
	for y := range rows {
		rows[y] = make([]rune, w)
		for x := range rows[y] {
			rows[y][x] = '.'
		}
	}
	for _, c := range e.board.Cells() {
		if !e.board.InBounds(c.Pos) {
			continue
		}
		switch c.State {
		case CellSettled:
			rows[c.Pos.Y][c.Pos.X] = '#'
		case CellClearing:
			rows[c.Pos.Y][c.Pos.X] = '*'
		case CellDropping:
			rows[c.Pos.Y][c.Pos.X] = '~'
		}
	}
	for _, c := range e.PieceCells() {
		if e.board.InBounds(c) {
			rows[c.Y][c.X] = '@'
		}
	}

	out := make([]string, h)
	for y, r := range rows {
		out[y] = string(r)
	}
	return out
}
