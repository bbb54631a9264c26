package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultTetrisConfig returns the default Tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Gravity: TetrisGravity{
			DropIntervalMs: 500,
			MinIntervalMs:  80,
		},
		Display: TetrisDisplay{
			Ghost: true,
			Grid:  true,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressNone,
				MaxAt: 0,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 3.0,
			},
		},
	}
}

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Physics: BreakoutPhysics{
			BallSpeed:    300,  // 0.3 cells per tick
			PaddleSpeed:  1000, // 1 cell per tick
			MaxBallSpeed: 800,
		},
		Paddle: BreakoutPaddle{
			Width: 8,
		},
		Bricks: BreakoutBricks{
			Rows:   5,
			Cols:   7,
			Points: 10,
		},
		Gameplay: BreakoutGameplay{
			Lives: 1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressScore,
				MaxAt: 350,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tetris":
		return defaultTetrisYAML
	case "breakout":
		return defaultBreakoutYAML
	default:
		return nil
	}
}
