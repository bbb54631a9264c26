package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/block-arcade/internal/config"
	"github.com/vovakirdan/block-arcade/internal/core"
	"github.com/vovakirdan/block-arcade/internal/games/breakout"
	"github.com/vovakirdan/block-arcade/internal/games/tetris"
	"github.com/vovakirdan/block-arcade/internal/platform/tui"
	"github.com/vovakirdan/block-arcade/internal/platform/window"
	"github.com/vovakirdan/block-arcade/internal/registry"
	"github.com/vovakirdan/block-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWindow     bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Left/Right  - Move
  Up          - Rotate clockwise (Tetris)
  Z           - Rotate counter-clockwise (Tetris)
  Down        - Soft drop (Tetris)
  X           - Hard drop (Tetris)
  Space       - Launch ball (Breakout)
  P/Esc       - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play tetris
  arcade play tetris --difficulty hard
  arcade play breakout --window --sound
  arcade play tetris --config ./my-tetris.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Play in a desktop window instead of the terminal")
}

// configureGame hands --config and --difficulty to the game package before
// the game is created. The returned error names settings the game will
// ignore; the game itself still runs on its defaults.
func configureGame(gameID string) error {
	var errs []error
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		errs = append(errs, fmt.Errorf("unknown difficulty %q, using the config's own", flagDifficulty))
	}

	switch gameID {
	case "tetris":
		tetris.SetConfigPath(flagConfig)
		tetris.SetDifficultyPreset(flagDifficulty)
		if flagConfig != "" {
			_, err := config.LoadTetris(flagConfig)
			errs = append(errs, err)
		}
	case "breakout":
		breakout.SetConfigPath(flagConfig)
		breakout.SetDifficultyPreset(flagDifficulty)
		if flagConfig != "" {
			_, err := config.LoadBreakout(flagConfig)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// terminalConfig builds a runtime config sized to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the score database. Failure is a warning: the game still
// works without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	// The terminal belongs to the TUI, so logs only go to --log-file there
	var fallback io.Writer = io.Discard
	if flagWindow {
		fallback = os.Stderr
	}
	logger, closeLog, err := newLogger(fallback)
	if err != nil {
		return err
	}
	defer closeLog()
	tui.SetLogger(logger)

	if err := configureGame(gameID); err != nil {
		logger.Warn("game settings ignored", "game", gameID, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: %v\nUsing default settings.\n", err)
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	sink, closeSink := openSink(logger)
	defer closeSink()

	logger.Info("starting game", "game", gameID, "window", flagWindow, "sound", sink != nil)

	if flagWindow {
		cfg := core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed}
		if err := window.Run(game, store, sink, logger, cfg); err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		return nil
	}

	if err := tui.Run(game, store, sink, terminalConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
