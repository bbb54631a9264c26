// arcade is a block game arcade for the terminal, a desktop window, or SSH.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH and HTTP leaderboard servers
//	arcade scores <game>     - Show high scores for a game
//	arcade config <game>     - Print the default config for a game
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.arcade/scores.db)
//	--log-file <path>  - Write logs to a file
//	--sound            - Play sound cues
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/block-arcade/internal/audio"
	"github.com/vovakirdan/block-arcade/internal/core"

	// Import games to register them
	_ "github.com/vovakirdan/block-arcade/internal/games/breakout"
	_ "github.com/vovakirdan/block-arcade/internal/games/tetris"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogFile string
	flagSound   bool
	flagVolume  float64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Block Arcade - Tetris and Breakout in your terminal",
	Long: `Block Arcade plays falling-block and brick-breaking games in the
terminal, in a desktop window, or over SSH.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server and HTTP leaderboard
  scores   - View high scores
  config   - Print a game's default config

Examples:
  arcade list
  arcade play tetris
  arcade play tetris --window --sound
  arcade menu
  arcade serve --ssh :2222 --http :8080
  arcade scores breakout`,
	SilenceUsage:      true,
	PersistentPreRunE: checkGlobalFlags,
}

// checkGlobalFlags rejects flag values no host can run with.
func checkGlobalFlags(*cobra.Command, []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if flagVolume < 0 || flagVolume > 1 {
		return fmt.Errorf("--volume must be between 0 and 1, got %g", flagVolume)
	}
	return nil
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Play sound cues for game events")
	rootCmd.PersistentFlags().Float64Var(&flagVolume, "volume", 0.6, "Sound volume from 0 to 1")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger returns a logger writing to --log-file, or to fallback when no
// file is set. The returned func closes the file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	out := fallback
	closeFn := func() {}

	if flagLogFile != "" {
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
	})
	return logger, closeFn, nil
}

// openSink starts the audio player when --sound is set. A nil sink is
// silent.
func openSink(logger *log.Logger) (core.EventSink, func()) {
	if !flagSound {
		return nil, func() {}
	}

	player, err := audio.NewPlayer(flagVolume)
	if err != nil {
		logger.Warn("sound disabled", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return nil, func() {}
	}
	return player, player.Close
}
