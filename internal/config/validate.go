package config

import (
	"errors"
	"fmt"
)

// Validate reports settings the Tetris game cannot run with.
func (c TetrisConfig) Validate() error {
	var errs []error
	if c.Gravity.MinIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("gravity.min_interval_ms must be positive, got %d", c.Gravity.MinIntervalMs))
	}
	if c.Gravity.DropIntervalMs < c.Gravity.MinIntervalMs {
		errs = append(errs, fmt.Errorf("gravity.drop_interval_ms (%d) must not be below min_interval_ms (%d)",
			c.Gravity.DropIntervalMs, c.Gravity.MinIntervalMs))
	}
	errs = append(errs, c.Difficulty.validate())
	return errors.Join(errs...)
}

// Validate reports settings the Breakout game cannot run with.
func (c BreakoutConfig) Validate() error {
	errs := []error{
		positive("bricks.rows", c.Bricks.Rows),
		positive("bricks.cols", c.Bricks.Cols),
		positive("bricks.points", c.Bricks.Points),
		positive("paddle.width", c.Paddle.Width),
		positive("physics.ball_speed", c.Physics.BallSpeed),
		positive("physics.paddle_speed", c.Physics.PaddleSpeed),
		positive("gameplay.lives", c.Gameplay.Lives),
	}
	if c.Physics.MaxBallSpeed < c.Physics.BallSpeed {
		errs = append(errs, fmt.Errorf("physics.max_ball_speed (%d) must not be below ball_speed (%d)",
			c.Physics.MaxBallSpeed, c.Physics.BallSpeed))
	}
	errs = append(errs, c.Difficulty.validate())
	return errors.Join(errs...)
}

func (d DifficultyConfig) validate() error {
	var errs []error
	switch d.Progression.Type {
	case "", ProgressNone, ProgressScore, ProgressTime:
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type %q is not one of score, time, none", d.Progression.Type))
	}
	if d.Progression.MaxAt < 0 {
		errs = append(errs, fmt.Errorf("difficulty.progression.max_at must not be negative, got %d", d.Progression.MaxAt))
	}
	if d.Scaling.SpeedMultiplier < 0 {
		errs = append(errs, fmt.Errorf("difficulty.scaling.speed_multiplier must not be negative, got %g", d.Scaling.SpeedMultiplier))
	}
	return errors.Join(errs...)
}

func positive(name string, v int) error {
	if v <= 0 {
		return fmt.Errorf("%s must be positive, got %d", name, v)
	}
	return nil
}
