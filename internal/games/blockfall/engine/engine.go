// Package engine implements the blockfall simulation: board, falling
// piece, gravity, line clears and the clear -> cascade-drop animation.
// It is UI-agnostic and deterministic given a RandomSource and the
// sequence of commands and time deltas fed to it.
package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/blockfall/internal/core"
)

// GameState is the session state. The only transition is
// StatePlaying -> StateGameOver.
type GameState uint8

const (
	StatePlaying GameState = iota
	StateGameOver
)

// String returns the state name.
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Command is a decoded player intent.
type Command uint8

const (
	CommandNone Command = iota
	CommandMoveLeft
	CommandMoveRight
	CommandRotate
	CommandSoftDropOn
	CommandSoftDropOff
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "none"
	case CommandMoveLeft:
		return "move_left"
	case CommandMoveRight:
		return "move_right"
	case CommandRotate:
		return "rotate"
	case CommandSoftDropOn:
		return "soft_drop_on"
	case CommandSoftDropOff:
		return "soft_drop_off"
	default:
		return "unknown"
	}
}

// Config holds the injected tunables.
type Config struct {
	Width          int
	Height         int
	FallInterval   time.Duration // gravity threshold without soft drop
	SoftDropFactor int           // threshold divisor while soft drop is held
	ClearDuration  time.Duration
	DropDuration   time.Duration
}

// DefaultConfig returns the classic 8x14 setup.
func DefaultConfig() Config {
	return Config{
		Width:          8,
		Height:         14,
		FallInterval:   500 * time.Millisecond,
		SoftDropFactor: 10,
		ClearDuration:  300 * time.Millisecond,
		DropDuration:   120 * time.Millisecond,
	}
}

// Validate checks the config for values the engine cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Width < 4 {
		errs = append(errs, fmt.Errorf("width %d is below 4", c.Width))
	}
	if c.Height < 4 {
		errs = append(errs, fmt.Errorf("height %d is below 4", c.Height))
	}
	if c.FallInterval <= 0 {
		errs = append(errs, fmt.Errorf("fall interval %v must be positive", c.FallInterval))
	}
	if c.SoftDropFactor < 1 {
		errs = append(errs, fmt.Errorf("soft drop factor %d is below 1", c.SoftDropFactor))
	}
	if c.ClearDuration <= 0 {
		errs = append(errs, fmt.Errorf("clear duration %v must be positive", c.ClearDuration))
	}
	if c.DropDuration <= 0 {
		errs = append(errs, fmt.Errorf("drop duration %v must be positive", c.DropDuration))
	}
	return errors.Join(errs...)
}

// StepReport summarises what one Advance call did.
type StepReport struct {
	Moved        bool // piece shifted down one row
	Locked       bool // piece joined the board
	RowsDetected int  // full rows found by the lock
	RowsCleared  int  // rows whose clearing cells were removed
	CellsLanded  int  // dropping cells that committed their shift
}

// Engine owns the whole simulation context.
type Engine struct {
	cfg          Config
	rng          RandomSource
	board        *Board
	piece        *ActivePiece
	next         Shape
	softDrop     bool
	fallInterval time.Duration
	state        GameState
	score        Score
	lines        int
	pieces       int
	step         uint64
}

// New creates an engine and spawns the first piece.
// An invalid config is a programming error and panics.
func New(cfg Config, rng RandomSource) *Engine {
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("engine: invalid config: %v", err))
	}
	e := &Engine{
		cfg:          cfg,
		rng:          rng,
		board:        NewBoard(cfg.Width, cfg.Height),
		fallInterval: cfg.FallInterval,
		state:        StatePlaying,
	}
	e.next = SpawnShape(rng)
	e.spawn()
	return e
}

// ApplyCommand applies a decoded intent. Rejected moves and rotations
// leave the state unchanged. Nothing is accepted after game over.
func (e *Engine) ApplyCommand(cmd Command) {
	if e.state != StatePlaying {
		return
	}
	switch cmd {
	case CommandMoveLeft:
		e.Move(-1)
	case CommandMoveRight:
		e.Move(1)
	case CommandRotate:
		e.Rotate()
	case CommandSoftDropOn:
		e.SetSoftDrop(true)
	case CommandSoftDropOff:
		e.SetSoftDrop(false)
	}
}

// Advance runs one simulation step. The order is fixed: gravity, clear
// timers, cascade trigger for freshly cleared rows, drop timers with
// the empty-row rescan. A zero or negative delta is a no-op.
func (e *Engine) Advance(delta time.Duration) StepReport {
	var report StepReport
	if delta <= 0 {
		return report
	}
	e.step++

	if e.state == StatePlaying && e.piece != nil {
		e.applyGravity(delta, &report)
	}

	cleared := e.advanceClearing(delta)
	report.RowsCleared = len(cleared)
	e.triggerCascade(cleared)
	report.CellsLanded = e.advanceDropping(delta)

	return report
}

// SetFallInterval replaces the base gravity interval, e.g. when the
// difficulty level rises. Non-positive values are ignored.
func (e *Engine) SetFallInterval(d time.Duration) {
	if d > 0 {
		e.fallInterval = d
	}
}

// FallInterval returns the current base gravity interval.
func (e *Engine) FallInterval() time.Duration {
	return e.fallInterval
}

// Width returns the board width.
func (e *Engine) Width() int {
	return e.board.Width()
}

// Height returns the board height.
func (e *Engine) Height() int {
	return e.board.Height()
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score.Value()
}

// State returns the session state.
func (e *Engine) State() GameState {
	return e.state
}

// Lines returns the number of full rows detected so far.
func (e *Engine) Lines() int {
	return e.lines
}

// Pieces returns the number of pieces locked so far.
func (e *Engine) Pieces() int {
	return e.pieces
}

// NextShape returns the shape that spawns after the current piece locks.
func (e *Engine) NextShape() Shape {
	return e.next
}

// SoftDrop reports whether soft drop is held.
func (e *Engine) SoftDrop() bool {
	return e.softDrop
}

// CellView is the read-only rendering view of a locked cell.
// Progress is the fraction of the clear or drop timer elapsed, in [0,1];
// it is 0 for settled cells.
type CellView struct {
	Pos      Coord
	Color    core.Color
	State    CellState
	Progress float64
}

// Cells returns a view of every locked cell.
func (e *Engine) Cells() []CellView {
	out := make([]CellView, 0, e.board.Len())
	for _, c := range e.board.Cells() {
		out = append(out, CellView{
			Pos:      c.Pos,
			Color:    c.Color,
			State:    c.State,
			Progress: e.fraction(c),
		})
	}
	return out
}

func (e *Engine) fraction(c *LockedCell) float64 {
	var total time.Duration
	switch c.State {
	case CellClearing:
		total = e.cfg.ClearDuration
	case CellDropping:
		total = e.cfg.DropDuration
	default:
		return 0
	}
	f := float64(c.Progress) / float64(total)
	return max(0, min(1, f))
}

// PieceCells returns the board coordinates of the falling piece, or nil
// when there is none (after game over).
func (e *Engine) PieceCells() []Coord {
	if e.piece == nil {
		return nil
	}
	return e.piece.Cells()
}

// PieceShape returns the falling piece's shape. ok is false when there is none.
func (e *Engine) PieceShape() (shape Shape, ok bool) {
	if e.piece == nil {
		return Shape{}, false
	}
	return e.piece.shape, true
}

// Occupied reports whether a settled or clearing cell sits at c.
func (e *Engine) Occupied(c Coord) bool {
	return e.board.Occupied(c)
}
