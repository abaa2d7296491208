package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
)

var (
	flagSimTicks int
	flagSimZen   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless bot session",
	Long: `Runs a session without a terminal UI. A random bot, seeded from
--seed, presses keys while the simulation advances one tick at --fps.
The final board is printed as text:

  # settled   * clearing   ~ dropping   @ falling piece   . empty

The same seed, fps and config always print the same board.

Examples:
  blockfall sim --seed 42
  blockfall sim --seed 7 --ticks 20000 --zen
  blockfall sim --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 10000, "Maximum number of ticks to run")
	simCmd.Flags().BoolVar(&flagSimZen, "zen", false, "Disable difficulty progression")
}

func runSim(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.LoadBlockfall(flagConfig)
	if err != nil {
		return err
	}

	game := blockfall.New()
	if flagSimZen {
		game = blockfall.NewZen()
	}

	// Headless: the screen is large enough that layout never pauses play.
	seed := resolveSeed()
	rc := core.RuntimeConfig{ScreenW: 200, ScreenH: 200, TickRate: flagFPS, Seed: seed}
	game.ResetWith(rc, cfg)

	logger.Info("sim started",
		"mode", game.ID(),
		"seed", seed,
		"board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height),
		"ticks", flagSimTicks,
	)

	played := blockfall.RunHeadless(game, blockfall.NewBot(seed), flagSimTicks, func(res core.StepResult) {
		if res.Locked {
			logger.Debug("piece locked", "score", res.State.Score, "rows", res.RowsDetected)
		}
	})

	e := game.Engine()
	state := game.State()
	logger.Info("sim finished", "ticks", played, "score", state.Score, "state", e.State())

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, strings.Join(e.Grid(), "\n"))
	fmt.Fprintf(out, "seed=%d state=%s score=%d lines=%d pieces=%d level=%d ticks=%d\n",
		seed, e.State(), state.Score, state.Lines, e.Pieces(), state.Level, played)
	return nil
}
