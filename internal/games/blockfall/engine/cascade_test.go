package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/core"
)

func TestDetectFullRowsScoresByOrdinal(t *testing.T) {
	tests := []struct {
		name  string
		full  []int
		gaps  []int
		rows  int
		score int
	}{
		{name: "single bottom row", full: []int{7}, rows: 1, score: 80},
		{name: "two adjacent rows", full: []int{7, 6}, rows: 2, score: 80 + 160},
		{name: "rows split by a gap", full: []int{7, 5}, gaps: []int{6}, rows: 2, score: 80 + 160},
		{name: "three rows", full: []int{7, 6, 5}, rows: 3, score: 80 + 160 + 240},
		{name: "no full row", gaps: []int{7}, rows: 0, score: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newStillEngine(t, 8, 8)
			for _, y := range tt.full {
				fillRow(e, y)
			}
			for _, y := range tt.gaps {
				fillRow(e, y, 0)
			}

			assert.Equal(t, tt.rows, e.detectFullRows())
			assert.Equal(t, tt.score, e.Score())
			assert.Equal(t, tt.rows, e.Lines())
		})
	}
}

func TestClearingRowsAreNotDetectedTwice(t *testing.T) {
	e := newStillEngine(t, 8, 8)
	fillRow(e, 7)

	require.Equal(t, 1, e.detectFullRows())
	assert.Equal(t, 0, e.detectFullRows())
	assert.Equal(t, 80, e.Score())
}

func TestClearTimerCompletesExactly(t *testing.T) {
	e := newStillEngine(t, 8, 8)
	fillRow(e, 7)
	e.detectFullRows()

	e.Advance(20 * time.Millisecond)
	views := e.Cells()
	require.Len(t, views, 8)
	assert.InDelta(t, 0.4, views[0].Progress, 1e-9)

	r := e.Advance(20 * time.Millisecond)
	assert.Zero(t, r.RowsCleared)
	assert.Equal(t, 8, e.board.Len())

	r = e.Advance(10 * time.Millisecond)
	assert.Equal(t, 1, r.RowsCleared)
	assert.Zero(t, e.board.Len())
	assert.False(t, e.Occupied(C(0, 7)))
}

func TestClearingCellsBlockPiecesDroppingCellsDoNot(t *testing.T) {
	e := newStillEngine(t, 8, 8)
	fillRow(e, 7)
	e.detectFullRows()
	assert.True(t, e.Occupied(C(3, 7)))

	cell := e.board.place(C(0, 3), core.ColorGray, e.step)
	e.board.transition(cell, CellDropping, e.step)
	assert.False(t, e.Occupied(C(0, 3)))
	assert.True(t, Fits([]Coord{{0, 0}}, C(0, 3), e.board))
}

func TestCascadeDropsOnlyCellsAboveClearedRow(t *testing.T) {
	e := newStillEngine(t, 8, 8)
	fillRow(e, 5)
	for _, c := range []Coord{{0, 4}, {1, 4}, {0, 6}, {2, 7}} {
		e.board.place(c, core.ColorGray, e.step)
	}
	e.detectFullRows()

	r := e.Advance(50 * time.Millisecond)
	require.Equal(t, 1, r.RowsCleared)
	assert.Equal(t, []CellState{CellDropping, CellDropping}, statesAt(e, 4))
	assert.Equal(t, []CellState{CellSettled}, statesAt(e, 6))
	assert.Equal(t, []CellState{CellSettled}, statesAt(e, 7))

	r = e.Advance(19 * time.Millisecond)
	assert.Zero(t, r.CellsLanded)

	r = e.Advance(time.Millisecond)
	assert.Equal(t, 2, r.CellsLanded)
	assert.Equal(t, []string{
		"...@@...",
		"...@@...",
		"........",
		"........",
		"........",
		"##......",
		"#.......",
		"..#.....",
	}, e.Grid())
}

func TestCascadeChainsThroughEmptyRows(t *testing.T) {
	e := newStillEngine(t, 8, 8)
	fillRow(e, 6)
	fillRow(e, 7)
	e.board.place(C(2, 4), core.ColorGray, e.step)
	e.board.place(C(2, 5), core.ColorGray, e.step)
	require.Equal(t, 2, e.detectFullRows())

	r := e.Advance(50 * time.Millisecond)
	require.Equal(t, 2, r.RowsCleared)

	r = e.Advance(20 * time.Millisecond)
	assert.Equal(t, 2, r.CellsLanded)
	// Row 7 is still empty, so both cells keep falling.
	assert.Equal(t, []CellState{CellDropping}, statesAt(e, 6))
	assert.Equal(t, []CellState{CellDropping}, statesAt(e, 5))

	r = e.Advance(20 * time.Millisecond)
	assert.Equal(t, 2, r.CellsLanded)
	assert.Equal(t, []CellState{CellSettled}, statesAt(e, 6))
	assert.Equal(t, []CellState{CellSettled}, statesAt(e, 7))

	r = e.Advance(time.Second)
	assert.Zero(t, r.CellsLanded)
}

func TestRescanDropsCellsAboveEmptyRow(t *testing.T) {
	e := newStillEngine(t, 8, 8)
	e.board.place(C(5, 7), core.ColorGray, e.step)
	// Row 6 is empty while (5,7) exists; settled cells above it drop.
	e.board.place(C(5, 5), core.ColorGray, e.step)
	e.rescanEmptyRows()

	assert.Equal(t, []CellState{CellDropping}, statesAt(e, 5))
	assert.Equal(t, []CellState{CellSettled}, statesAt(e, 7))
}

func TestLandResolvesConflicts(t *testing.T) {
	dropping := func(b *Board, pos Coord) *LockedCell {
		c := b.place(pos, core.ColorGray, 0)
		b.transition(c, CellDropping, 0)
		return c
	}

	t.Run("free target", func(t *testing.T) {
		b := NewBoard(4, 4)
		c := dropping(b, C(0, 1))
		require.True(t, b.land(c, 1, nil))
		assert.Equal(t, C(0, 2), c.Pos)
		assert.Equal(t, CellSettled, c.State)
		got, ok := b.At(C(0, 2))
		require.True(t, ok)
		assert.Same(t, c, got)
	})

	t.Run("target taken settles in place", func(t *testing.T) {
		b := NewBoard(4, 4)
		b.place(C(0, 2), core.ColorGray, 0)
		c := dropping(b, C(0, 1))
		require.True(t, b.land(c, 1, nil))
		assert.Equal(t, C(0, 1), c.Pos)
		assert.True(t, b.Occupied(C(0, 1)))
	})

	t.Run("bottom row settles in place", func(t *testing.T) {
		b := NewBoard(4, 4)
		c := dropping(b, C(1, 3))
		require.True(t, b.land(c, 1, nil))
		assert.Equal(t, C(1, 3), c.Pos)
	})

	t.Run("falling piece counts as taken", func(t *testing.T) {
		b := NewBoard(4, 4)
		c := dropping(b, C(0, 1))
		require.True(t, b.land(c, 1, []Coord{{0, 2}}))
		assert.Equal(t, C(0, 1), c.Pos)
		assert.False(t, b.land(dropping(b, C(2, 0)), 1, []Coord{{2, 0}, {2, 1}}))
	})

	t.Run("both spots taken discards", func(t *testing.T) {
		b := NewBoard(4, 4)
		c := dropping(b, C(0, 1))
		b.place(C(0, 2), core.ColorGray, 0)
		b.place(C(0, 1), core.ColorGray, 0)
		assert.False(t, b.land(c, 1, nil))

		b.removeCells(map[CellID]bool{c.ID: true})
		assert.Equal(t, 2, b.Len())
		got, ok := b.At(C(0, 1))
		require.True(t, ok)
		assert.NotSame(t, c, got, "removal must not evict the owner of the spot")
	})
}
