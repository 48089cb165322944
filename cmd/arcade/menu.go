package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pocket-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Esc leaves a game and returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Scoreboard
  Q            - Quit

Examples:
  arcade menu
  arcade menu --difficulty easy
  arcade menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&flagDebug, "debug", false, "Write debug logs to ~/.arcade/debug.log")
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := newTUILogger()
	defer closeLog()

	store := openStore()

	width, height := terminalSize()
	err := tui.RunSession(tui.NewEnv(store, logger, flagSeed), width, height)

	if store != nil {
		store.Close()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
