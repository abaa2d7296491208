package engine

import "time"

// threshold is the current fall interval, shortened while soft drop is held.
func (e *Engine) threshold() time.Duration {
	if e.softDrop {
		return e.fallInterval / time.Duration(e.cfg.SoftDropFactor)
	}
	return e.fallInterval
}

// applyGravity accumulates delta on the piece timer and, once it exceeds
// the threshold, either drops the piece one row or locks it.
func (e *Engine) applyGravity(delta time.Duration, report *StepReport) {
	p := e.piece
	p.elapsed += delta
	if p.elapsed <= e.threshold() {
		return
	}

	below := p.anchor.Add(C(0, 1))
	if Fits(p.offsets, below, e.board) {
		p.anchor = below
		p.elapsed = 0
		e.score.Add(pointsPerShift)
		report.Moved = true
		return
	}

	report.Locked = true
	report.RowsDetected = e.lock()
}

// lock converts the piece into settled cells, spawns the next piece,
// runs line detection and applies the game-over rules. It returns the
// number of full rows found.
func (e *Engine) lock() int {
	p := e.piece
	for _, c := range p.Cells() {
		e.board.place(c, p.shape.Color, e.step)
	}
	e.score.Add(pointsPerCell * len(p.offsets))
	e.pieces++

	fits := e.spawn()
	rows := e.detectFullRows()

	if e.settledInTopRow() || !fits {
		e.state = StateGameOver
		e.piece = nil
		e.softDrop = false
	}
	return rows
}

// settledInTopRow reports whether any settled cell occupies row 0.
func (e *Engine) settledInTopRow() bool {
	for x := 0; x < e.board.Width(); x++ {
		if cell, ok := e.board.At(C(x, 0)); ok && cell.State == CellSettled {
			return true
		}
	}
	return false
}
