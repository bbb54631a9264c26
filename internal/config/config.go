// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// TetrisConfig contains all configuration for the Tetris game.
type TetrisConfig struct {
	Gravity    TetrisGravity    `yaml:"gravity"`
	Display    TetrisDisplay    `yaml:"display"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TetrisGravity defines how fast pieces fall.
type TetrisGravity struct {
	DropIntervalMs int `yaml:"drop_interval_ms"` // Time between automatic soft drops
	MinIntervalMs  int `yaml:"min_interval_ms"`  // Floor for difficulty scaling
}

// TetrisDisplay toggles optional render aids.
type TetrisDisplay struct {
	Ghost bool `yaml:"ghost"`
	Grid  bool `yaml:"grid"`
}

// BreakoutConfig contains all configuration for the Breakout game.
type BreakoutConfig struct {
	Physics    BreakoutPhysics  `yaml:"physics"`
	Paddle     BreakoutPaddle   `yaml:"paddle"`
	Bricks     BreakoutBricks   `yaml:"bricks"`
	Gameplay   BreakoutGameplay `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BreakoutPhysics defines physics parameters in fixed-point units
// (1000 = one cell per tick).
type BreakoutPhysics struct {
	BallSpeed    int `yaml:"ball_speed"`
	PaddleSpeed  int `yaml:"paddle_speed"`
	MaxBallSpeed int `yaml:"max_ball_speed"`
}

// BreakoutPaddle defines paddle parameters.
type BreakoutPaddle struct {
	Width int `yaml:"width"`
}

// BreakoutBricks defines the brick wall.
type BreakoutBricks struct {
	Rows   int `yaml:"rows"`
	Cols   int `yaml:"cols"`
	Points int `yaml:"points"`
}

// BreakoutGameplay defines rules.
type BreakoutGameplay struct {
	Lives int `yaml:"lives"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI flag value to a preset. Unknown names yield "".
func ParsePreset(name string) DifficultyPreset {
	switch p := DifficultyPreset(name); p {
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

// applyPreset updates the shared difficulty block for a preset.
func applyPreset(d *DifficultyConfig, preset DifficultyPreset, defaultType string, defaultMaxAt int) {
	if IsFixedPreset(preset) {
		d.Enabled = false
		return
	}
	d.Enabled = true
	d.InitialLevel = InitialLevelForPreset(preset)
	if d.Progression.Type == "" || d.Progression.Type == ProgressNone {
		d.Progression.Type = defaultType
		d.Progression.MaxAt = defaultMaxAt
	}
	if d.Scaling.SpeedMultiplier == 0 {
		d.Scaling.SpeedMultiplier = 1.0
	}
}
