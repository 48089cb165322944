package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/pocket-arcade/internal/registry"
	"github.com/vovakirdan/pocket-arcade/internal/storage"
)

var (
	flagBestYAML  bool
	flagBestClear string
)

var bestCmd = &cobra.Command{
	Use:   "best",
	Short: "Show the best result of every game",
	Long: `Display the persisted best result of every game.

Examples:
  arcade best
  arcade best --yaml
  arcade best --clear hangman`,
	Args: cobra.NoArgs,
	Run:  runBest,
}

func init() {
	bestCmd.Flags().BoolVar(&flagBestYAML, "yaml", false, "Print as YAML")
	bestCmd.Flags().StringVar(&flagBestClear, "clear", "", "Forget the best result of a game")
}

func runBest(cmd *cobra.Command, args []string) {
	logger := newLogger("arcade")

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagBestClear != "" {
		info, ok := registry.Info(flagBestClear)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", flagBestClear)
			os.Exit(1)
		}
		if err := store.ClearBest(info.BestKey); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger.Info("best result cleared", "game", info.ID, "key", info.BestKey)
		return
	}

	entries, err := store.AllBest()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving best results: %v\n", err)
		os.Exit(1)
	}

	if flagBestYAML {
		out, err := yaml.Marshal(entries)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(out)
		return
	}

	byKey := make(map[string]storage.BestEntry, len(entries))
	for _, e := range entries {
		byKey[e.Key] = e
	}

	fmt.Printf("  %-14s  %-8s  %s\n", "Game", "Best", "Set")
	fmt.Printf("  %-14s  %-8s  %s\n", "----", "----", "---")
	for _, g := range registry.List() {
		e, ok := byKey[g.BestKey]
		if !ok {
			fmt.Printf("  %-14s  %-8s\n", g.Title, "-")
			continue
		}
		fmt.Printf("  %-14s  %-8d  %s\n", g.Title, e.Value, e.UpdatedAt.Format("2006-01-02 15:04"))
	}
}
