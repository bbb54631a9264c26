package main

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vovakirdan/block-arcade/internal/registry"
	"github.com/vovakirdan/block-arcade/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top high scores and score statistics for the specified game.

Examples:
  arcade scores tetris
  arcade scores breakout --limit 20`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	info, ok := registry.Info(gameID)
	if !ok {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	p := message.NewPrinter(language.English)

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	// Score column is as wide as the largest grouped number
	scoreW := runewidth.StringWidth("Score")
	for _, e := range scores {
		scoreW = max(scoreW, runewidth.StringWidth(p.Sprintf("%d", e.Score)))
	}

	fmt.Printf("  %-4s  %s  %s\n", "Rank", runewidth.FillLeft("Score", scoreW), "Date")
	fmt.Printf("  %-4s  %s  %s\n", "----", runewidth.FillLeft("-----", scoreW), "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Local().Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %s  %s\n", i+1, runewidth.FillLeft(p.Sprintf("%d", entry.Score), scoreW), dateStr)
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return fmt.Errorf("computing stats: %w", err)
	}
	fmt.Println()
	printStats(p, stats)
	return nil
}

func printStats(p *message.Printer, s *storage.GameStats) {
	p.Printf("Games: %d   Best: %d   Total: %d\n", s.GamesCount, s.HighScore, s.TotalScore)
	p.Printf("Mean: %.1f   Median: %.1f   Std dev: %.1f\n", s.AvgScore, s.Median, s.StdDev)
}
