// arcade is a collection of small round-based games for the terminal.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show finished results for a game
//	arcade best              - Show the best result of every game
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible rounds
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--config <path>       - Game tunables YAML
//	--difficulty <name>   - easy, normal or hard
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/pocket-arcade/internal/games/coinflip"
	_ "github.com/vovakirdan/pocket-arcade/internal/games/colorguess"
	_ "github.com/vovakirdan/pocket-arcade/internal/games/hangman"
	_ "github.com/vovakirdan/pocket-arcade/internal/games/memory"
	_ "github.com/vovakirdan/pocket-arcade/internal/games/reaction"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Pocket Arcade - quick round-based games in your terminal",
	Long: `Pocket Arcade is a set of small round-based games for the terminal:
Coin Flip, Color Guess, Hangman, Memory Match and Reaction Time.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View finished results
  best     - View the best result of every game

Examples:
  arcade list
  arcade play hangman
  arcade play memory --difficulty easy
  arcade menu
  arcade serve --ssh :2222
  arcade scores reaction
  arcade best --yaml`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(bestCmd)
}

// setup loads the game tunables shared by every command.
func setup(_ *cobra.Command, _ []string) error {
	games, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	config.ApplyPreset(&games, preset)

	config.SetCurrent(games)
	return nil
}

// newLogger builds the stderr logger used by the non-interactive commands
// and the SSH server.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := logLevel(flagLogLevel, logLevelSet(), log.InfoLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
	}
	logger.SetLevel(level)
	return logger
}

// logLevel resolves --log-level. When the flag was not given, def applies.
// An unknown name yields def and an error.
func logLevel(name string, set bool, def log.Level) (log.Level, error) {
	if !set {
		return def, nil
	}
	level, err := log.ParseLevel(name)
	if err != nil {
		return def, err
	}
	return level, nil
}

func logLevelSet() bool {
	f := rootCmd.PersistentFlags().Lookup("log-level")
	return f != nil && f.Changed
}

// newTUILogger returns a logger that never writes to the alternate screen.
// With --debug, logs go to ~/.arcade/debug.log instead, at debug level
// unless --log-level says otherwise.
func newTUILogger() (*log.Logger, func()) {
	if !flagDebug {
		return log.New(io.Discard), func() {}
	}

	f, err := openDebugLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open debug log: %v\n", err)
		return log.New(io.Discard), func() {}
	}
	logger := log.NewWithOptions(f, log.Options{ReportTimestamp: true, Prefix: "arcade"})
	level, err := logLevel(flagLogLevel, logLevelSet(), log.DebugLevel)
	if err != nil {
		logger.Warn("unknown log level, using debug", "level", flagLogLevel)
	}
	logger.SetLevel(level)
	return logger, func() { f.Close() }
}

func openDebugLog() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".arcade")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "debug.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

// openStore opens the scores database. Failure is reported and the arcade
// keeps running without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// terminalSize returns the terminal size, defaulting to 80x24.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
