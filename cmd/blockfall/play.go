package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode",
	Long: `Start playing the specified mode.

Controls:
  Left/Right, A/D   - Move the piece
  Up, W, X          - Rotate
  Down, S           - Soft drop (hold)
  P/Esc             - Pause
  R                 - Restart (after game over)
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Start at the slowest gravity, speeds up with cleared lines
  normal - Start at 30% difficulty
  hard   - Start at 70% difficulty
  fixed  - No progression, stays at the config's initial level

Examples:
  blockfall play blockfall
  blockfall play blockfall --difficulty hard
  blockfall play blockfall_zen --config ./my-blockfall.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

// terminalConfig builds the runtime config from the terminal size and flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     resolveSeed(),
	}
}

// resolveSeed returns --seed, or the current time when it is 0.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// checkConfig fails early on a broken --config file instead of letting
// the game fall back to defaults silently.
func checkConfig() error {
	if flagConfig == "" {
		return nil
	}
	_, err := config.LoadBlockfall(flagConfig)
	return err
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'blockfall list' to see available modes", gameID)
	}
	if err := checkConfig(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	if err := tui.Run(game, terminalConfig(), tui.Options{Logger: logger}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
