package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pocket-arcade/internal/registry"
	"github.com/vovakirdan/pocket-arcade/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show finished results for a game",
	Long: `Display the top finished results for the specified game, best first.
For memory and reaction lower is better.

Examples:
  arcade scores hangman
  arcade scores reaction --limit 5
  arcade scores memory --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of results to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every recorded result of the game (the best result is kept)")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	info, ok := registry.Info(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}

	if flagScoresClear {
		defer store.Close()
		if err := clearScores(store, info, newLogger("arcade")); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	scores, err := store.TopScores(gameID, info.Order, flagScoresLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	fmt.Printf("Results - %s (%s is better)\n", info.Title, info.Order)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first one!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Result", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "------", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID, info.Order); err == nil {
		fmt.Printf("Finished: %d  Average: %.1f\n", stats.GamesCount, stats.AvgScore)
	}
	if best, ok, err := store.LoadBest(info.BestKey); err == nil && ok {
		fmt.Printf("Best: %d\n", best)
	}
}

// clearScores drops the result log of one game. The best result lives in
// its own table and is cleared with 'arcade best --clear'.
func clearScores(store *storage.Store, info registry.GameInfo, logger *log.Logger) error {
	if err := store.ClearScores(info.ID); err != nil {
		return err
	}
	logger.Info("results cleared", "game", info.ID)
	return nil
}
