// blockfall is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	blockfall                 - Start menu to pick a mode interactively
//	blockfall list            - List available modes
//	blockfall play <mode>     - Play a mode directly
//	blockfall sim             - Run a headless bot session and print the board
//	blockfall config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Use a custom config YAML
//	--difficulty <name> - Difficulty preset: easy, normal, hard, fixed
//	--log-level <lvl>   - debug, info, warn, error (default: info)
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/games/blockfall"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - a falling-block puzzle in your terminal",
	Long: `Blockfall drops pieces onto a small board. Fill a row to clear it;
blocks above a cleared row slide down one step at a time.

Available commands:
  list     - Show all available modes
  play     - Play a specific mode directly
  sim      - Headless bot run, prints the final board
  config   - Print the effective configuration

Examples:
  blockfall
  blockfall play blockfall
  blockfall play blockfall_zen --difficulty fixed
  blockfall sim --seed 42 --ticks 5000`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		// Set config path and difficulty before any game is created
		blockfall.SetConfigPath(flagConfig)
		blockfall.SetDifficultyPreset(flagDifficulty)
	},
	RunE: runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
