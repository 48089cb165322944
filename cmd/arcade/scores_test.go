package main

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
	"github.com/vovakirdan/pocket-arcade/internal/storage"
)

func TestClearScoresDropsOneGame(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, r := range []struct {
		game  string
		value int
	}{
		{"memory", 14}, {"memory", 10}, {"hangman", 3},
	} {
		if err := store.RecordResult(r.game, r.value); err != nil {
			t.Fatal(err)
		}
	}
	if err := store.SaveBest("memory.fewest_moves", 10); err != nil {
		t.Fatal(err)
	}

	info, ok := registry.Info("memory")
	if !ok {
		t.Fatal("memory not registered")
	}
	if err := clearScores(store, info, log.New(io.Discard)); err != nil {
		t.Fatalf("clearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("memory", core.LowerIsBetter, 10); len(scores) != 0 {
		t.Errorf("memory results = %v, want none", scores)
	}
	if scores, _ := store.TopScores("hangman", core.HigherIsBetter, 10); len(scores) != 1 {
		t.Errorf("hangman results = %d, want 1", len(scores))
	}
	if best, ok, _ := store.LoadBest(info.BestKey); !ok || best != 10 {
		t.Errorf("best = %d, %v, want 10 kept", best, ok)
	}
}
