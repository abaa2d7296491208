package config

import (
	"math"
	"time"
)

// Progress is the session progress that drives difficulty.
type Progress struct {
	Score int
	Lines int
	Ticks int
}

// DifficultyManager calculates dynamic game parameters from session progress.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0).
func (d *DifficultyManager) Level(p Progress) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(p.Score) / maxAt
	case "lines":
		progress = float64(p.Lines) / maxAt
	case "time":
		progress = float64(p.Ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Stage maps the level onto a 1-based display stage out of stages.
func (d *DifficultyManager) Stage(p Progress, stages int) int {
	if stages <= 1 {
		return 1
	}
	return 1 + int(d.Level(p)*float64(stages-1))
}

// FallInterval returns the gravity interval for the current level.
// Speed grows from 1x at level 0 to (1+speed_multiplier)x at level 1,
// never going below min_fall_interval_ms.
func (d *DifficultyManager) FallInterval(base time.Duration, p Progress) time.Duration {
	speed := 1.0 + d.Level(p)*d.cfg.Scaling.SpeedMultiplier
	if speed <= 0 {
		speed = 1
	}
	interval := time.Duration(float64(base) / speed)

	floor := time.Duration(d.cfg.Scaling.MinFallIntervalMs) * time.Millisecond
	if floor > 0 && interval < floor {
		interval = min(floor, base)
	}
	return interval
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
