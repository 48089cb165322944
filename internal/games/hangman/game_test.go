package hangman

import (
	"io"
	"reflect"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/session"
	"github.com/vovakirdan/pocket-arcade/internal/storage"
)

func newGame(t *testing.T, store *storage.Memory, words ...string) *Game {
	t.Helper()
	cfg := config.DefaultGames().Hangman
	if len(words) > 0 {
		cfg.Words = words
	}
	g := NewWithConfig(cfg, session.Deps{
		Rand:   core.NewSequenceRand(0),
		Clock:  core.NewManualClock(time.Unix(0, 0)),
		Store:  store,
		Logger: log.New(io.Discard),
	})
	t.Cleanup(g.Close)
	return g
}

func guess(g *Game, letters string) {
	for _, r := range letters {
		g.Submit(core.Letter(r))
	}
}

func TestStartPicksWordUniformly(t *testing.T) {
	words := []string{"alpha", "bravo", "charlie", "delta"}
	tests := []struct {
		roll float64
		want string
	}{
		{0.0, "alpha"},
		{0.26, "bravo"},
		{0.5, "charlie"},
		{0.99, "delta"},
	}

	for _, tc := range tests {
		cfg := config.DefaultGames().Hangman
		cfg.Words = words
		g := NewWithConfig(cfg, session.Deps{
			Rand:   core.NewSequenceRand(tc.roll),
			Logger: log.New(io.Discard),
		})
		g.Start()
		if g.word != tc.want {
			t.Errorf("roll %v picked %q, want %q", tc.roll, g.word, tc.want)
		}
		g.Close()
	}
}

func TestGuessingAllLettersWins(t *testing.T) {
	g := newGame(t, storage.NewMemory(), "Gopher")
	g.Start()

	if got := g.Masked(); got != "______" {
		t.Fatalf("masked = %q", got)
	}

	// Any order, some misses along the way
	guess(g, "rzphxoeg")

	snap := g.Snapshot()
	if snap.State != string(StateWon) || !snap.Terminal {
		t.Fatalf("state = %s, want won", snap.State)
	}
	round := snap.Round.(Round)
	if round.Wrong != 2 {
		t.Errorf("wrong = %d, want 2", round.Wrong)
	}
	if round.Word != "gopher" || round.Masked != "gopher" {
		t.Errorf("round = %+v", round)
	}
	if snap.Stats[StatWins] != 1 || snap.Stats[StatStreak] != 1 {
		t.Errorf("stats = %v", snap.Stats)
	}
	if snap.Best == nil || *snap.Best != 1 {
		t.Errorf("best = %v, want 1", snap.Best)
	}
}

func TestSixMissesLose(t *testing.T) {
	g := newGame(t, storage.NewMemory(), "go")
	g.Start()

	guess(g, "abcde")
	if g.State() != StatePlaying {
		t.Fatalf("state after 5 misses = %s, want playing", g.State())
	}
	guess(g, "f")

	snap := g.Snapshot()
	if snap.State != string(StateLost) {
		t.Fatalf("state = %s, want lost", snap.State)
	}
	if snap.Stats[StatLosses] != 1 || snap.Stats[StatStreak] != 0 {
		t.Errorf("stats = %v", snap.Stats)
	}
	if got := snap.Round.(Round).Word; got != "go" {
		t.Errorf("word should be revealed after a loss, got %q", got)
	}
	if !reflect.DeepEqual(snap.History, []int{6}) {
		t.Errorf("history = %v, want [6]", snap.History)
	}
}

func TestRepeatedGuessIsFree(t *testing.T) {
	g := newGame(t, storage.NewMemory(), "go")
	g.Start()

	g.Submit(core.Letter('x'))
	before := g.Snapshot()
	for i := 0; i < 10; i++ {
		g.Submit(core.Letter('x'))
		g.Submit(core.Letter('X'))
	}
	if !reflect.DeepEqual(before, g.Snapshot()) {
		t.Error("repeated guess changed the session")
	}

	g.Submit(core.Letter('g'))
	g.Submit(core.Letter('g'))
	if round := g.Snapshot().Round.(Round); round.Wrong != 1 || len(round.Guessed) != 2 {
		t.Errorf("round = %+v, want 1 wrong and 2 guesses", round)
	}
}

func TestNonLettersIgnored(t *testing.T) {
	g := newGame(t, storage.NewMemory(), "go")
	g.Start()

	before := g.Snapshot()
	g.Submit(core.Letter('1'))
	g.Submit(core.Letter('?'))
	g.Submit(core.Choose(3))
	g.Submit(core.Tap())
	if !reflect.DeepEqual(before, g.Snapshot()) {
		t.Error("non-letter input changed the session")
	}
}

func TestTerminalIgnoresInputUntilStart(t *testing.T) {
	store := storage.NewMemory()
	g := newGame(t, store, "go")
	g.Start()
	guess(g, "go")

	won := g.Snapshot()
	guess(g, "abcdef")
	if !reflect.DeepEqual(won, g.Snapshot()) {
		t.Error("input after win changed the session")
	}

	g.Start()
	guess(g, "og")
	snap := g.Snapshot()
	if snap.Stats[StatWins] != 2 || snap.Stats[StatStreak] != 2 {
		t.Errorf("stats = %v, want 2 wins in a row", snap.Stats)
	}
	if v, ok, _ := store.LoadBest(BestKey); !ok || v != 2 {
		t.Errorf("persisted best = %d, %v; want 2", v, ok)
	}
	if got := store.Results(GameID); !reflect.DeepEqual(got, []int{6, 6}) {
		t.Errorf("recorded = %v, want [6 6]", got)
	}
}

func TestResetKeepsBest(t *testing.T) {
	g := newGame(t, storage.NewMemory(), "go")
	g.Start()
	guess(g, "go")

	g.Reset()
	if snap := g.Snapshot(); snap.State != string(StateIdle) || snap.Round != nil {
		t.Errorf("reset snapshot = %+v", snap)
	}
	g.Start()

	snap := g.Snapshot()
	for name, v := range snap.Stats {
		if v != 0 {
			t.Errorf("stat %s = %d after reset", name, v)
		}
	}
	if snap.Best == nil || *snap.Best != 1 {
		t.Errorf("best = %v, want 1", snap.Best)
	}
}

func TestNonLetterCharactersShown(t *testing.T) {
	g := newGame(t, storage.NewMemory(), "go-lang")
	g.Start()

	if got := g.Masked(); got != "__-____" {
		t.Errorf("masked = %q, want __-____", got)
	}
	guess(g, "golan")
	if g.State() != StateWon {
		t.Errorf("state = %s, want won", g.State())
	}
}

func TestWordWithoutLettersWinsOnStart(t *testing.T) {
	for _, word := range []string{"", "123", "ñú"} {
		t.Run(word, func(t *testing.T) {
			g := newGame(t, storage.NewMemory(), word)
			g.Start()

			if g.State() != StateWon {
				t.Fatalf("state = %s, want won", g.State())
			}
			if got := g.engine.Stat(StatWins); got != 1 {
				t.Errorf("wins = %d, want 1", got)
			}

			// Letters after the win change nothing
			guess(g, "abcdefghijklmnopqrstuvwxyz")
			if g.State() != StateWon || g.wrong != 0 {
				t.Errorf("state = %s wrong = %d, want won with no misses", g.State(), g.wrong)
			}
		})
	}
}
