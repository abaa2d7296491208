// Package blockfall adapts the falling-block engine to the registry.Game
// contract: fixed ticks become engine time deltas, platform actions become
// engine commands, and the session is drawn into a core.Screen.
package blockfall

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// Mode selects the session rules.
type Mode string

const (
	ModeClassic Mode = "classic" // gravity speeds up with progress
	ModeZen     Mode = "zen"     // gravity stays at the configured interval
)

// stages is the number of levels shown in the HUD.
const stages = 10

// Game implements registry.Game for blockfall.
type Game struct {
	mode       Mode
	cfg        config.BlockfallConfig
	engine     *engine.Engine
	difficulty *config.DifficultyManager

	tick         uint64
	delta        time.Duration // simulated time per tick
	softDropLeft time.Duration // remaining soft drop hold window

	screenW  int
	screenH  int
	tooSmall bool
	paused   bool
}

// Package-level options set from the CLI before a game is created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset ("" keeps the config value).
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// New creates a classic blockfall game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewZen creates a blockfall game without difficulty progression.
func NewZen() *Game {
	return &Game{mode: ModeZen}
}

func init() {
	registry.Register("blockfall", func() registry.Game {
		return New()
	})
	registry.Register("blockfall_zen", func() registry.Game {
		return NewZen()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeZen {
		return "blockfall_zen"
	}
	return "blockfall"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeZen {
		return "Blockfall (Zen)"
	}
	return "Blockfall"
}

// Reset loads the config and starts a fresh session.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadBlockfall(configPath)
	if err != nil {
		cfg = config.DefaultBlockfallConfig()
	}
	g.ResetWith(rc, cfg)
}

// ResetWith starts a fresh session with an explicit config.
// The config must be valid.
func (g *Game) ResetWith(rc core.RuntimeConfig, cfg config.BlockfallConfig) {
	if difficultyPreset != "" {
		config.ApplyBlockfallPreset(&cfg, difficultyPreset)
	}
	if g.mode == ModeZen {
		cfg.Difficulty.Enabled = false
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	tickRate := rc.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.delta = time.Second / time.Duration(tickRate)

	g.engine = engine.New(EngineConfig(cfg), rand.New(rand.NewSource(rc.Seed)))
	g.tick = 0
	g.softDropLeft = 0
	g.paused = false
	g.Resize(rc.ScreenW, rc.ScreenH)
	g.updateGravity()
}

// EngineConfig converts the file config into engine tunables.
func EngineConfig(cfg config.BlockfallConfig) engine.Config {
	return engine.Config{
		Width:          cfg.Board.Width,
		Height:         cfg.Board.Height,
		FallInterval:   cfg.Timing.FallInterval(),
		SoftDropFactor: cfg.Timing.SoftDropFactor,
		ClearDuration:  cfg.Timing.ClearDuration(),
		DropDuration:   cfg.Timing.DropDuration(),
	}
}

// Resize updates the layout for a new screen size without touching the
// session.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	minW, minH := g.minScreenSize()
	g.tooSmall = w < minW || h < minH
}

// Step advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.engine == nil {
		return core.StepResult{}
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	gameOver := g.engine.State() == engine.StateGameOver
	if in.Has(core.ActionPause) && !gameOver {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++

	pressedDown := false
	for _, a := range in.Actions {
		switch a {
		case core.ActionLeft:
			g.engine.ApplyCommand(engine.CommandMoveLeft)
		case core.ActionRight:
			g.engine.ApplyCommand(engine.CommandMoveRight)
		case core.ActionRotate:
			g.engine.ApplyCommand(engine.CommandRotate)
		case core.ActionDown:
			pressedDown = true
		}
	}
	g.updateSoftDrop(pressedDown)

	report := g.engine.Advance(g.delta)
	g.updateGravity()

	return core.StepResult{
		State:        g.State(),
		Locked:       report.Locked,
		RowsDetected: report.RowsDetected,
	}
}

// updateSoftDrop emulates key release: each Down press holds soft drop
// for the configured window, and repeats from the terminal extend it.
func (g *Game) updateSoftDrop(pressed bool) {
	if pressed {
		g.softDropLeft = g.cfg.Timing.SoftDropHold()
		if !g.engine.SoftDrop() {
			g.engine.ApplyCommand(engine.CommandSoftDropOn)
		}
		return
	}
	if !g.engine.SoftDrop() {
		return
	}
	g.softDropLeft -= g.delta
	if g.softDropLeft <= 0 {
		g.softDropLeft = 0
		g.engine.ApplyCommand(engine.CommandSoftDropOff)
	}
}

// updateGravity applies the difficulty curve to the fall interval.
func (g *Game) updateGravity() {
	g.engine.SetFallInterval(g.difficulty.FallInterval(g.cfg.Timing.FallInterval(), g.progress()))
}

func (g *Game) progress() config.Progress {
	return config.Progress{
		Score: g.engine.Score(),
		Lines: g.engine.Lines(),
		Ticks: int(g.tick),
	}
}

// Level returns the 1-based difficulty stage shown in the HUD.
func (g *Game) Level() int {
	if g.engine == nil {
		return 1
	}
	return g.difficulty.Stage(g.progress(), stages)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.engine.Score(),
		Lines:    g.engine.Lines(),
		Level:    g.Level(),
		GameOver: g.engine.State() == engine.StateGameOver,
		Paused:   g.paused || g.tooSmall,
	}
}

// Engine exposes the underlying simulation, e.g. for the headless runner.
func (g *Game) Engine() *engine.Engine {
	return g.engine
}
