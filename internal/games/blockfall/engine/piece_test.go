package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/core"
)

func TestSpawnPosition(t *testing.T) {
	e := newTestEngine(t, testConfig(8, 14), ShapeT)

	assert.Equal(t, []Coord{{2, 0}, {3, 0}, {4, 0}, {3, 1}}, e.PieceCells())
	assert.Equal(t, ShapeT, e.NextShape().ID)
}

func TestMoveAgainstWalls(t *testing.T) {
	e := newTestEngine(t, testConfig(8, 14), ShapeO)

	// O starts on columns 3-4; it can go three left and three right.
	for i := 0; i < 3; i++ {
		require.True(t, e.Move(-1))
	}
	before := e.PieceCells()
	assert.False(t, e.Move(-1), "wall must reject the move")
	assert.Equal(t, before, e.PieceCells())

	for i := 0; i < 6; i++ {
		require.True(t, e.Move(1))
	}
	assert.False(t, e.Move(1))
	assert.Equal(t, 6, e.piece.anchor.X)
}

func TestMoveBlockedByLockedCell(t *testing.T) {
	e := newTestEngine(t, testConfig(8, 14), ShapeO)
	e.board.place(C(2, 1), core.ColorGray, 0)

	before := e.PieceCells()
	assert.False(t, e.Move(-1))
	assert.Equal(t, before, e.PieceCells())
	assert.True(t, e.Move(1))
}

func TestRotateAllOrNothing(t *testing.T) {
	e := newTestEngine(t, testConfig(8, 14), ShapeT)

	// At spawn the rotated T would poke above row 0.
	before := append([]Coord(nil), e.piece.offsets...)
	assert.False(t, e.Rotate())
	assert.Equal(t, before, e.piece.offsets)

	// One row lower it fits.
	e.Advance(101 * time.Millisecond)
	require.Equal(t, 1, e.piece.anchor.Y)
	assert.True(t, e.Rotate())
	assert.ElementsMatch(t, []Coord{{3, 2}, {3, 1}, {3, 0}, {4, 1}}, e.PieceCells())
}

func TestRotateBlockedByLockedCell(t *testing.T) {
	e := newTestEngine(t, testConfig(8, 14), ShapeI)
	e.Advance(101 * time.Millisecond)
	e.Advance(101 * time.Millisecond)
	require.Equal(t, C(3, 2), e.piece.anchor)

	// Upright the I would cover (3,0)..(3,3).
	e.board.place(C(3, 3), core.ColorGray, 0)

	before := e.PieceCells()
	offsets := append([]Coord(nil), e.piece.offsets...)
	assert.False(t, e.Rotate())
	assert.Equal(t, before, e.PieceCells())
	assert.Equal(t, offsets, e.piece.offsets)
}

func TestRotateNeverTouchesCatalog(t *testing.T) {
	e := newTestEngine(t, testConfig(8, 14), ShapeL)
	e.Advance(101 * time.Millisecond)
	require.True(t, e.Rotate())

	assert.Equal(t, []Coord{{-1, 0}, {0, 0}, {1, 0}, {-1, 1}}, ShapeAt(int(ShapeL)).Offsets())
}

func TestSoftDropDoesNotMovePiece(t *testing.T) {
	e := newTestEngine(t, testConfig(8, 14))
	before := e.PieceCells()

	e.ApplyCommand(CommandSoftDropOn)
	assert.True(t, e.SoftDrop())
	assert.Equal(t, before, e.PieceCells())
	assert.Equal(t, 25*time.Millisecond, e.threshold())

	e.ApplyCommand(CommandSoftDropOff)
	assert.Equal(t, 100*time.Millisecond, e.threshold())
}

func TestApplyCommandMoves(t *testing.T) {
	e := newTestEngine(t, testConfig(8, 14), ShapeO)

	e.ApplyCommand(CommandMoveLeft)
	assert.Equal(t, 2, e.piece.anchor.X)
	e.ApplyCommand(CommandMoveRight)
	e.ApplyCommand(CommandMoveRight)
	assert.Equal(t, 4, e.piece.anchor.X)
	e.ApplyCommand(CommandNone)
	assert.Equal(t, 4, e.piece.anchor.X)
}
