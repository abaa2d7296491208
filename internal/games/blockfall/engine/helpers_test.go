package engine

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/core"
)

// scriptedSource replays a fixed index sequence, wrapping around.
type scriptedSource struct {
	seq []int
	pos int
}

func (s *scriptedSource) Intn(n int) int {
	v := s.seq[s.pos%len(s.seq)]
	s.pos++
	return v
}

func testConfig(w, h int) Config {
	return Config{
		Width:          w,
		Height:         h,
		FallInterval:   100 * time.Millisecond,
		SoftDropFactor: 4,
		ClearDuration:  50 * time.Millisecond,
		DropDuration:   20 * time.Millisecond,
	}
}

// newTestEngine builds an engine whose pieces follow the given shapes
// (O pieces forever when none are given).
func newTestEngine(t *testing.T, cfg Config, shapes ...ShapeID) *Engine {
	t.Helper()
	if len(shapes) == 0 {
		shapes = []ShapeID{ShapeO}
	}
	seq := make([]int, len(shapes))
	for i, s := range shapes {
		seq[i] = int(s)
	}
	return New(cfg, &scriptedSource{seq: seq})
}

// newStillEngine builds an engine whose piece never falls on its own,
// for tests that drive the board directly.
func newStillEngine(t *testing.T, w, h int) *Engine {
	t.Helper()
	cfg := testConfig(w, h)
	cfg.FallInterval = time.Hour
	return newTestEngine(t, cfg)
}

// fillRow places settled cells across row y, leaving the skipped columns empty.
func fillRow(e *Engine, y int, skip ...int) {
	for x := 0; x < e.board.Width(); x++ {
		if slices.Contains(skip, x) {
			continue
		}
		e.board.place(C(x, y), core.ColorGray, e.step)
	}
}

// dropUntilLocked advances past the gravity threshold until the piece locks.
func dropUntilLocked(t *testing.T, e *Engine) StepReport {
	t.Helper()
	for i := 0; i < 1000; i++ {
		r := e.Advance(e.threshold() + time.Millisecond)
		if r.Locked {
			return r
		}
	}
	require.FailNow(t, "piece never locked")
	return StepReport{}
}

// statesAt returns the states of the cells whose Pos.Y equals y.
func statesAt(e *Engine, y int) []CellState {
	var out []CellState
	for _, c := range e.board.Row(y) {
		out = append(out, c.State)
	}
	return out
}
