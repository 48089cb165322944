package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pocket-arcade/internal/platform/tui"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Enter      - New round (new word, new board, new colours)
  Ctrl+R     - Reset counters (best result is kept)
  ?          - Toggle help
  Esc/Ctrl+C - Quit

Game keys:
  coinflip   - h/t or 1/2 to call the coin
  colorguess - 1-6 to pick a colour
  hangman    - a-z to guess a letter
  memory     - a-p to flip a card
  reaction   - space to arm, space again when the panel turns green

Difficulty options:
  easy   - More lives and misses, slower mismatch reveal
  normal - Default tunables
  hard   - One life, fewer misses, faster mismatch reveal

Examples:
  arcade play coinflip
  arcade play hangman --difficulty hard
  arcade play colorguess --seed 42
  arcade play memory --config ./my-games.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Write debug logs to ~/.arcade/debug.log")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	logger, closeLog := newTUILogger()
	defer closeLog()

	// Continue without storage if the database is unavailable
	store := openStore()

	width, height := terminalSize()
	runErr := tui.Run(gameID, tui.NewEnv(store, logger, flagSeed), width, height)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
