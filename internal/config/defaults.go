package config

import (
	_ "embed"
)

//go:embed defaults/blockfall.yaml
var defaultBlockfallYAML []byte

// DefaultBlockfallConfig returns the hardcoded blockfall configuration.
// It matches defaults/blockfall.yaml.
func DefaultBlockfallConfig() BlockfallConfig {
	return BlockfallConfig{
		Board: BoardConfig{
			Width:  8,
			Height: 14,
		},
		Timing: TimingConfig{
			FallIntervalMs: 500,
			SoftDropFactor: 10,
			ClearMs:        300,
			DropMs:         120,
			SoftDropHoldMs: 150,
		},
		Spawn: SpawnConfig{
			Preview: true,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "lines",
				MaxAt: 60,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   4.0,
				MinFallIntervalMs: 80,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "blockfall", "blockfall_zen":
		return defaultBlockfallYAML
	default:
		return nil
	}
}
