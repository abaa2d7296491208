package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// runMenu is the root command: pick a mode, play it, come back to the
// menu. Finished games are listed on the results screen until exit.
func runMenu(_ *cobra.Command, _ []string) error {
	if err := checkConfig(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	history := tui.NewHistory()
	cfg := terminalConfig()

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsResults {
			goBack, err := tui.RunResults(history, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			return fmt.Errorf("creating game: %w", err)
		}

		// Fresh seed for each game unless --seed pins it
		cfg.Seed = resolveSeed()

		if err := tui.Run(game, cfg, tui.Options{Logger: logger, History: history}); err != nil {
			logger.Error("game ended with error", "game", menuResult.GameID, "error", err)
			return err
		}
	}
}
