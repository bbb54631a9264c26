package config

import "math"

// Progression types.
const (
	ProgressNone  = "none"
	ProgressScore = "score"
	ProgressTime  = "time"
)

// DifficultyManager maps score or elapsed ticks to a difficulty level in
// [0, 1] and scales game speed by it.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	cfg.InitialLevel = min(max(cfg.InitialLevel, 0), 1)
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	switch d.cfg.Progression.Type {
	case ProgressScore, ProgressTime:
		return d.cfg.Enabled
	}
	return false
}

// Level rises linearly from the initial level to 1 as score (or ticks, for
// time progression) approaches MaxAt.
func (d *DifficultyManager) Level(score, ticks int) float64 {
	start := d.cfg.InitialLevel
	if !d.IsEnabled() {
		return start
	}

	progress := float64(score)
	if d.cfg.Progression.Type == ProgressTime {
		progress = float64(ticks)
	}
	progress /= float64(max(d.cfg.Progression.MaxAt, 1))

	return start + min(max(progress, 0), 1)*(1-start)
}

// Speed scales baseSpeed from 1x at level 0 to (1+SpeedMultiplier)x at level 1.
func (d *DifficultyManager) Speed(baseSpeed float64, score, ticks int) float64 {
	return baseSpeed * (1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

// Interval shrinks a timer period in milliseconds as the level rises,
// never going below minMs.
func (d *DifficultyManager) Interval(baseMs, minMs, score, ticks int) int {
	if baseMs <= 0 {
		return minMs
	}
	ms := int(math.Round(float64(baseMs) / d.Speed(1, score, ticks)))
	return max(ms, minMs)
}
