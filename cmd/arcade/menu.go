package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/block-arcade/internal/platform/tui"
	"github.com/vovakirdan/block-arcade/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Scoreboard
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30 --sound
  arcade menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()
	tui.SetLogger(logger)

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	sink, closeSink := openSink(logger)
	defer closeSink()

	cfg := terminalConfig()
	seeded := flagSeed != 0

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return nil
		}

		gameID := menuResult.GameID
		if gameID == "" {
			return nil
		}

		if err := configureGame(gameID); err != nil {
			logger.Warn("game settings ignored", "game", gameID, "error", err)
		}
		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// A fixed --seed replays the same sequence every round
		if !seeded {
			cfg.Seed = time.Now().UnixNano()
		}

		logger.Info("starting game", "game", gameID, "seed", cfg.Seed)
		if err := tui.Run(game, store, sink, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
