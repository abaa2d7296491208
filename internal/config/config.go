// Package config provides YAML-based game configuration loading and
// difficulty management for blockfall.
package config

import (
	"errors"
	"fmt"
	"time"
)

// BlockfallConfig contains all configuration for a blockfall session.
type BlockfallConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Timing     TimingConfig     `yaml:"timing"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the playfield size in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines the gravity and animation timings.
type TimingConfig struct {
	FallIntervalMs int `yaml:"fall_interval_ms"` // gravity threshold without soft drop
	SoftDropFactor int `yaml:"soft_drop_factor"` // threshold divisor while soft drop is held
	ClearMs        int `yaml:"clear_ms"`         // clear animation length
	DropMs         int `yaml:"drop_ms"`          // one-row cascade drop length
	SoftDropHoldMs int `yaml:"soft_drop_hold_ms"`
}

// FallInterval returns the base gravity interval.
func (t TimingConfig) FallInterval() time.Duration {
	return time.Duration(t.FallIntervalMs) * time.Millisecond
}

// ClearDuration returns the clear animation length.
func (t TimingConfig) ClearDuration() time.Duration {
	return time.Duration(t.ClearMs) * time.Millisecond
}

// DropDuration returns the cascade drop length.
func (t TimingConfig) DropDuration() time.Duration {
	return time.Duration(t.DropMs) * time.Millisecond
}

// SoftDropHold returns how long a single soft drop key press stays held.
// Terminals report presses only, so release is emulated after this window.
func (t TimingConfig) SoftDropHold() time.Duration {
	return time.Duration(t.SoftDropHoldMs) * time.Millisecond
}

// SpawnConfig defines piece spawning options.
type SpawnConfig struct {
	Preview bool `yaml:"preview"` // show the next piece
}

// Validate reports every value the engine cannot run with.
func (c BlockfallConfig) Validate() error {
	var errs []error
	if c.Board.Width < 4 {
		errs = append(errs, fmt.Errorf("board.width %d is below 4", c.Board.Width))
	}
	if c.Board.Height < 4 {
		errs = append(errs, fmt.Errorf("board.height %d is below 4", c.Board.Height))
	}
	if c.Timing.FallIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("timing.fall_interval_ms %d must be positive", c.Timing.FallIntervalMs))
	}
	if c.Timing.SoftDropFactor < 1 {
		errs = append(errs, fmt.Errorf("timing.soft_drop_factor %d is below 1", c.Timing.SoftDropFactor))
	}
	if c.Timing.ClearMs <= 0 {
		errs = append(errs, fmt.Errorf("timing.clear_ms %d must be positive", c.Timing.ClearMs))
	}
	if c.Timing.DropMs <= 0 {
		errs = append(errs, fmt.Errorf("timing.drop_ms %d must be positive", c.Timing.DropMs))
	}
	if c.Timing.SoftDropHoldMs < 0 {
		errs = append(errs, fmt.Errorf("timing.soft_drop_hold_ms %d is negative", c.Timing.SoftDropHoldMs))
	}
	return errors.Join(errs...)
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a session.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "lines", "time", or "none"
	MaxAt int    `yaml:"max_at"` // score/lines/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"` // gravity speed-up at max difficulty
	MinFallIntervalMs int     `yaml:"min_fall_interval_ms"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Empty or unknown values
// return "" which keeps the config file's difficulty.
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
