package engine

import (
	"sort"
	"time"
)

// detectFullRows scans bottom-up for rows made entirely of settled cells
// and starts their clear timers. The k-th row found in this pass scores
// width*10*k. It returns the number of rows found.
func (e *Engine) detectFullRows() int {
	found := 0
	for y := e.board.Height() - 1; y >= 0; y-- {
		if !e.board.rowFull(y) {
			continue
		}
		found++
		for _, cell := range e.board.Row(y) {
			if cell.State == CellSettled {
				e.board.transition(cell, CellClearing, e.step)
			}
		}
		e.score.Add(rowClearPoints(e.board.Width(), found))
	}
	e.lines += found
	return found
}

// advanceClearing runs the clear timers and removes every cell whose
// timer completed. It returns the rows those cells occupied, bottom first.
// Cells that started clearing in this step do not advance yet.
func (e *Engine) advanceClearing(delta time.Duration) []int {
	doomed := make(map[CellID]bool)
	rows := make(map[int]bool)

	for _, cell := range e.board.Cells() {
		if cell.State != CellClearing || cell.since == e.step {
			continue
		}
		cell.Progress += delta
		if cell.Progress >= e.cfg.ClearDuration {
			doomed[cell.ID] = true
			rows[cell.Pos.Y] = true
		}
	}
	e.board.removeCells(doomed)

	cleared := make([]int, 0, len(rows))
	for y := range rows {
		cleared = append(cleared, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(cleared)))
	return cleared
}

// triggerCascade starts a drop for every settled cell strictly above a
// freshly cleared row.
func (e *Engine) triggerCascade(rows []int) {
	if len(rows) == 0 {
		return
	}
	lowest := rows[0]
	for _, y := range rows[1:] {
		lowest = max(lowest, y)
	}
	e.dropAbove(lowest)
}

// dropAbove marks every settled cell with Pos.Y < y as dropping. Cells
// that are already dropping keep their timer.
func (e *Engine) dropAbove(y int) {
	for _, cell := range e.board.Cells() {
		if cell.State == CellSettled && cell.Pos.Y < y {
			e.board.transition(cell, CellDropping, e.step)
		}
	}
}

// advanceDropping runs the drop timers. Completed drops are collected
// first and committed afterwards, then the board is rescanned for empty
// rows so cascades chain. It returns the number of cells that landed.
func (e *Engine) advanceDropping(delta time.Duration) int {
	var done []*LockedCell
	for _, cell := range e.board.Cells() {
		if cell.State != CellDropping || cell.since == e.step {
			continue
		}
		cell.Progress += delta
		if cell.Progress >= e.cfg.DropDuration {
			done = append(done, cell)
		}
	}
	if len(done) == 0 {
		return 0
	}

	// Lower cells land first so a column keeps its order.
	sort.SliceStable(done, func(i, j int) bool {
		return done[i].Pos.Y > done[j].Pos.Y
	})

	reserved := e.PieceCells()
	landed := 0
	lost := make(map[CellID]bool)
	for _, cell := range done {
		if e.board.land(cell, e.step, reserved) {
			landed++
		} else {
			lost[cell.ID] = true
		}
	}
	e.board.removeCells(lost)

	e.rescanEmptyRows()
	return landed
}

// rescanEmptyRows finds rows with no locked cell at all and starts a drop
// for every settled cell above each of them.
func (e *Engine) rescanEmptyRows() {
	populated := make([]bool, e.board.Height())
	for _, cell := range e.board.Cells() {
		if cell.Pos.Y >= 0 && cell.Pos.Y < len(populated) {
			populated[cell.Pos.Y] = true
		}
	}
	for y := len(populated) - 1; y >= 0; y-- {
		if !populated[y] {
			e.dropAbove(y)
		}
	}
}
