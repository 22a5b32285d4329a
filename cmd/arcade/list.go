package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/goblin-arcade/internal/registry"
	"github.com/vovakirdan/goblin-arcade/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every game registered in the arcade with its best score so far.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	// Best scores are a bonus; the list works without a database.
	var stats map[string]*storage.GameStats
	if store, err := storage.Open(flagDBPath); err == nil {
		stats, _ = store.GetAllGamesStats()
		store.Close()
	}

	idW, titleW := len("ID"), len("Title")
	for _, g := range games {
		idW = max(idW, len(g.ID))
		titleW = max(titleW, len(g.Title))
	}

	fmt.Println("Available games:")
	fmt.Println()
	fmt.Printf("  %-*s  %-*s  %s\n", idW, "ID", titleW, "Title", "Best")
	fmt.Printf("  %-*s  %-*s  %s\n", idW, "--", titleW, "-----", "----")
	for _, g := range games {
		best := "-"
		if s, ok := stats[g.ID]; ok && s.GamesCount > 0 {
			best = fmt.Sprintf("%d (%d played)", s.HighScore, s.GamesCount)
		}
		fmt.Printf("  %-*s  %-*s  %s\n", idW, g.ID, titleW, g.Title, best)
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game, or 'arcade-window <id>' for a window.")
}
