package engine

import (
	"slices"
	"time"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/blockfall/internal/core"
)

// CellState is the animation state of a locked cell.
type CellState uint8

const (
	CellSettled  CellState = iota // static, blocks pieces
	CellClearing                  // part of a full row, removed when its timer completes
	CellDropping                  // sliding down one row, does not block pieces
)

// String returns the state name.
func (s CellState) String() string {
	switch s {
	case CellSettled:
		return "settled"
	case CellClearing:
		return "clearing"
	case CellDropping:
		return "dropping"
	default:
		return "unknown"
	}
}

// CellID identifies a locked cell for its whole lifetime.
type CellID uint32

// LockedCell is a piece cell that joined the board.
// While dropping, Pos is the row the cell is leaving; the +1 shift is
// applied when the drop timer completes.
type LockedCell struct {
	ID       CellID
	Pos      Coord
	Color    core.Color
	State    CellState
	Progress time.Duration

	// step in which the cell last changed state; timers skip that step
	since uint64
}

// blocks reports whether the cell counts for collision.
func (c *LockedCell) blocks() bool {
	return c.State == CellSettled || c.State == CellClearing
}

// Board is a fixed-size grid owning the set of locked cells.
// Settled and clearing cells are indexed by position for O(1) occupancy
// checks; dropping cells live only in the cell list.
type Board struct {
	width  int
	height int
	cells  []*LockedCell
	index  *intmap.Map[int, *LockedCell]
	nextID CellID
}

// NewBoard creates an empty board.
func NewBoard(width, height int) *Board {
	return &Board{
		width:  width,
		height: height,
		index:  intmap.New[int, *LockedCell](width * height),
	}
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// InBounds returns true if the coordinate lies inside [0,width)x[0,height).
func (b *Board) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < b.width && c.Y >= 0 && c.Y < b.height
}

func (b *Board) key(c Coord) int {
	return c.Y*b.width + c.X
}

// Occupied returns true if a settled or clearing cell sits at c.
func (b *Board) Occupied(c Coord) bool {
	if !b.InBounds(c) {
		return false
	}
	_, ok := b.index.Get(b.key(c))
	return ok
}

// At returns the settled or clearing cell at c.
func (b *Board) At(c Coord) (*LockedCell, bool) {
	if !b.InBounds(c) {
		return nil, false
	}
	return b.index.Get(b.key(c))
}

// Row returns every locked cell whose Pos.Y is y, in any state.
func (b *Board) Row(y int) []*LockedCell {
	var row []*LockedCell
	for _, c := range b.cells {
		if c.Pos.Y == y {
			row = append(row, c)
		}
	}
	return row
}

// Cells returns the live cell list. Callers must not modify it.
func (b *Board) Cells() []*LockedCell {
	return b.cells
}

// Len returns the number of locked cells.
func (b *Board) Len() int {
	return len(b.cells)
}

// place adds a settled cell. The caller guarantees pos is in bounds and free.
func (b *Board) place(pos Coord, color core.Color, step uint64) *LockedCell {
	b.nextID++
	cell := &LockedCell{
		ID:    b.nextID,
		Pos:   pos,
		Color: color,
		State: CellSettled,
		since: step,
	}
	b.cells = append(b.cells, cell)
	b.index.Put(b.key(pos), cell)
	return cell
}

// transition moves a cell into a new state with a fresh timer and keeps
// the position index in sync.
func (b *Board) transition(cell *LockedCell, state CellState, step uint64) {
	wasIndexed := cell.blocks()
	cell.State = state
	cell.Progress = 0
	cell.since = step

	switch {
	case wasIndexed && !cell.blocks():
		b.unindex(cell)
	case !wasIndexed && cell.blocks():
		b.index.Put(b.key(cell.Pos), cell)
	}
}

// unindex drops the index entry for cell if it still owns its position.
func (b *Board) unindex(cell *LockedCell) {
	k := b.key(cell.Pos)
	if owner, ok := b.index.Get(k); ok && owner == cell {
		b.index.Del(k)
	}
}

// land commits a finished drop. The cell moves one row down when that
// spot is inside the board and free; otherwise it settles where it is.
// Reserved coordinates (the falling piece) count as taken. If both spots
// were taken while the cell was in flight it is discarded and land
// returns false.
func (b *Board) land(cell *LockedCell, step uint64, reserved []Coord) bool {
	taken := func(c Coord) bool {
		return b.Occupied(c) || slices.Contains(reserved, c)
	}
	target := cell.Pos.Add(C(0, 1))
	switch {
	case b.InBounds(target) && !taken(target):
		cell.Pos = target
	case taken(cell.Pos):
		return false
	}
	b.transition(cell, CellSettled, step)
	return true
}

// removeCells drops the given cells from the board in one compaction pass.
func (b *Board) removeCells(doomed map[CellID]bool) {
	if len(doomed) == 0 {
		return
	}
	kept := b.cells[:0]
	for _, c := range b.cells {
		if doomed[c.ID] {
			if c.blocks() {
				b.unindex(c)
			}
			continue
		}
		kept = append(kept, c)
	}
	for i := len(kept); i < len(b.cells); i++ {
		b.cells[i] = nil
	}
	b.cells = kept
}

// rowFull reports whether every column of row y holds a settled cell.
func (b *Board) rowFull(y int) bool {
	for x := 0; x < b.width; x++ {
		cell, ok := b.index.Get(b.key(C(x, y)))
		if !ok || cell.State != CellSettled {
			return false
		}
	}
	return true
}
