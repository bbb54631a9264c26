package main

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/block-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all games registered in the arcade.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	idW, titleW := 2, 5
	for _, g := range games {
		idW = max(idW, runewidth.StringWidth(g.ID))
		titleW = max(titleW, runewidth.StringWidth(g.Title))
	}

	fmt.Printf("  %s  %s  %s\n", runewidth.FillRight("ID", idW), runewidth.FillRight("Title", titleW), "Description")
	fmt.Printf("  %s  %s  %s\n", runewidth.FillRight("--", idW), runewidth.FillRight("-----", titleW), "-----------")

	for _, g := range games {
		fmt.Printf("  %s  %s  %s\n", runewidth.FillRight(g.ID, idW), runewidth.FillRight(g.Title, titleW), g.Description)
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game.")
}
