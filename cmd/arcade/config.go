package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/block-arcade/internal/config"
	"github.com/vovakirdan/block-arcade/internal/registry"
)

var configCmd = &cobra.Command{
	Use:   "config <game>",
	Short: "Print the default config for a game",
	Long: `Print the built-in YAML config for a game. Save it to
~/.arcade/configs/<game>.yaml or pass it with --config to customize play.

Examples:
  arcade config tetris > ~/.arcade/configs/tetris.yaml
  arcade config breakout > ./slow-breakout.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	data := config.GetDefaultYAML(gameID)
	if data == nil {
		return fmt.Errorf("game %q has no config", gameID)
	}
	_, err := os.Stdout.Write(data)
	return err
}
