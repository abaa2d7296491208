package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// Resizer is implemented by games that can adapt their layout to a new
// screen size without restarting the session.
type Resizer interface {
	Resize(w, h int)
}

// helpHeight is the number of rows reserved under the game screen.
const helpHeight = 1

// Options carries the optional collaborators of a game session.
type Options struct {
	Logger  *log.Logger // nil discards log output
	History *History    // nil disables result tracking
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	logger     *log.Logger
	history    *History
	inputFrame core.InputFrame
	gameState  core.GameState
	started    time.Time
	recorded   bool // Whether the current game over has been recorded
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH)),
		config:     cfg,
		keys:       NewKeyMapper(),
		help:       h,
		logger:     logger,
		history:    opts.History,
		inputFrame: core.NewInputFrame(),
	}
}

// gameHeight is the screen height left for the game after the help line.
func gameHeight(h int) int {
	return max(0, h-helpHeight)
}

// gameConfig returns the runtime config the game sees.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = gameHeight(cfg.ScreenH)
	return cfg
}

// Init starts the first tick. The game itself is reset by NewModel's
// caller through Start, since Init has a value receiver.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Start resets the game and returns the model ready to run.
func (m Model) Start() Model {
	m.game.Reset(m.gameConfig())
	m.gameState = m.game.State()
	m.started = time.Now()
	m.recorded = false
	m.logger.Info("session started", "game", m.game.ID(), "seed", m.config.Seed)
	return m
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the key's action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.logger.Info("session quit", "game", m.game.ID(), "score", m.gameState.Score)
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameHeight(msg.Height))
	m.help.Width = msg.Width

	if r, ok := m.game.(Resizer); ok {
		r.Resize(msg.Width, gameHeight(msg.Height))
	} else if !m.gameState.GameOver {
		// Games without a resizable layout restart at the new size
		m.game.Reset(m.gameConfig())
	}
	m.logger.Debug("resized", "width", msg.Width, "height", msg.Height)

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.inputFrame.Clear()
		return m.Start(), tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.RowsDetected > 0 {
		m.logger.Debug("rows detected", "rows", result.RowsDetected, "score", result.State.Score)
	}

	// Record the session once per game over
	if m.gameState.GameOver && !m.recorded {
		m.recordResult()
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// recordResult logs the finished session and adds it to the history.
func (m *Model) recordResult() {
	m.recorded = true
	elapsed := time.Since(m.started).Round(time.Second)
	m.logger.Info("game over",
		"game", m.game.ID(),
		"score", m.gameState.Score,
		"lines", m.gameState.Lines,
		"level", m.gameState.Level,
		"duration", elapsed,
	)
	if m.history == nil {
		return
	}
	m.history.Add(Result{
		GameID:   m.game.ID(),
		Title:    m.game.Title(),
		Score:    m.gameState.Score,
		Lines:    m.gameState.Lines,
		Level:    m.gameState.Level,
		Duration: elapsed,
		EndedAt:  time.Now(),
	})
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Game))
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts).Start()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
