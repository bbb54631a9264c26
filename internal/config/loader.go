package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// localConfigDir is searched relative to the working directory.
const localConfigDir = "configs"

// LoadTetris loads Tetris configuration.
// Search order: customPath -> ~/.arcade/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default
func LoadTetris(customPath string) (TetrisConfig, error) {
	return load("tetris", customPath, defaultTetrisYAML, DefaultTetrisConfig)
}

// LoadBreakout loads Breakout configuration.
// Search order: customPath -> ~/.arcade/configs/breakout.yaml -> ./configs/breakout.yaml -> embedded default
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	return load("breakout", customPath, defaultBreakoutYAML, DefaultBreakoutConfig)
}

// gameConfig is a per-game config that can check its own values.
type gameConfig interface {
	Validate() error
}

// load walks the search order for one game. Files are decoded on top of the
// hardcoded defaults, so a partial YAML only overrides the keys it names.
// Only an explicit customPath can fail, in which case the defaults come back
// with the error; the other locations are skipped when unreadable or invalid.
func load[T gameConfig](gameID, customPath string, embedded []byte, defaults func() T) (T, error) {
	filename := gameID + ".yaml"

	// Try custom path first
	if customPath != "" {
		cfg := defaults()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return defaults(), fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return defaults(), fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return defaults(), fmt.Errorf("config: invalid %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(filename), filepath.Join(localConfigDir, filename)} {
		if path == "" {
			continue
		}
		if cfg, ok := tryFile(path, defaults); ok {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := defaults()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func tryFile[T gameConfig](path string, defaults func() T) (T, bool) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if cfg.Validate() != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyTetrisPreset modifies the config based on a difficulty preset.
// Any preset other than fixed turns on score-based gravity scaling.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset, ProgressScore, 20000)

	switch preset {
	case DifficultyEasy:
		cfg.Gravity.DropIntervalMs = 700
	case DifficultyHard:
		cfg.Gravity.DropIntervalMs = 350
	}
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset, ProgressScore, cfg.Bricks.Rows*cfg.Bricks.Cols*cfg.Bricks.Points)

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 3
		cfg.Paddle.Width = 10
		cfg.Physics.BallSpeed = 250
	case DifficultyHard:
		cfg.Paddle.Width = 6
		cfg.Physics.BallSpeed = 400
	}
}
