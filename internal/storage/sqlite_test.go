package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/pocket-arcade/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreBestAbsentThenSaved(t *testing.T) {
	store := openTestStore(t)

	_, ok, err := store.LoadBest("reaction.best_ms")
	if err != nil {
		t.Fatalf("LoadBest() failed: %v", err)
	}
	if ok {
		t.Error("LoadBest() on empty store should report absent")
	}

	if err := store.SaveBest("reaction.best_ms", 312); err != nil {
		t.Fatalf("SaveBest() failed: %v", err)
	}
	// Last write wins
	if err := store.SaveBest("reaction.best_ms", 287); err != nil {
		t.Fatalf("SaveBest() failed: %v", err)
	}

	v, ok, err := store.LoadBest("reaction.best_ms")
	if err != nil {
		t.Fatalf("LoadBest() failed: %v", err)
	}
	if !ok || v != 287 {
		t.Errorf("LoadBest() = %d, %v; want 287, true", v, ok)
	}
}

func TestStoreBestPersistsAcrossOpen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SaveBest("coinflip.best_streak", 7); err != nil {
		t.Fatalf("SaveBest() failed: %v", err)
	}
	store.Close()

	reopened, err := Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	v, ok, err := reopened.LoadBest("coinflip.best_streak")
	if err != nil || !ok || v != 7 {
		t.Errorf("LoadBest() after reopen = %d, %v, %v; want 7, true, nil", v, ok, err)
	}
}

func TestStoreAllAndClearBest(t *testing.T) {
	store := openTestStore(t)

	store.SaveBest("memory.fewest_moves", 14)
	store.SaveBest("colorguess.high_score", 120)

	entries, err := store.AllBest()
	if err != nil {
		t.Fatalf("AllBest() failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("AllBest() returned %d entries, want 2", len(entries))
	}
	if entries[0].Key != "colorguess.high_score" || entries[1].Key != "memory.fewest_moves" {
		t.Errorf("AllBest() not ordered by key: %+v", entries)
	}

	if err := store.ClearBest("memory.fewest_moves"); err != nil {
		t.Fatalf("ClearBest() failed: %v", err)
	}
	if _, ok, _ := store.LoadBest("memory.fewest_moves"); ok {
		t.Error("cleared best should be absent")
	}
}

func TestStoreTopScoresOrder(t *testing.T) {
	store := openTestStore(t)

	for _, v := range []int{300, 150, 420} {
		if err := store.RecordResult("reaction", v); err != nil {
			t.Fatalf("RecordResult() failed: %v", err)
		}
	}
	for _, v := range []int{40, 120, 80} {
		store.RecordResult("colorguess", v)
	}

	lower, err := store.TopScores("reaction", core.LowerIsBetter, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(lower) != 3 || lower[0].Score != 150 || lower[2].Score != 420 {
		t.Errorf("lower-is-better order wrong: %+v", lower)
	}

	higher, err := store.TopScores("colorguess", core.HigherIsBetter, 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(higher) != 2 || higher[0].Score != 120 || higher[1].Score != 80 {
		t.Errorf("higher-is-better order wrong: %+v", higher)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("hangman", 4)
	store.SaveScore("hangman", 2)
	store.SaveScore("memory", 12)

	if err := store.ClearScores("hangman"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	hangman, _ := store.TopScores("hangman", core.HigherIsBetter, 10)
	if len(hangman) != 0 {
		t.Errorf("Expected 0 hangman scores after clear, got %d", len(hangman))
	}

	memory, _ := store.TopScores("memory", core.LowerIsBetter, 10)
	if len(memory) != 1 {
		t.Errorf("memory scores should not be affected by clearing hangman")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("memory", core.LowerIsBetter)
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.Best != 0 {
		t.Errorf("empty stats = %+v", empty)
	}

	for _, v := range []int{12, 9, 15} {
		store.SaveScore("memory", v)
	}

	stats, err := store.GetGameStats("memory", core.LowerIsBetter)
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 {
		t.Errorf("GamesCount = %d, want 3", stats.GamesCount)
	}
	if stats.Best != 9 {
		t.Errorf("Best = %d, want 9", stats.Best)
	}
	if stats.AvgScore != 12 {
		t.Errorf("AvgScore = %v, want 12", stats.AvgScore)
	}
}

func TestMemoryStore(t *testing.T) {
	m := NewMemory()

	if _, ok, _ := m.LoadBest("k"); ok {
		t.Error("empty memory store should report absent")
	}
	m.SaveBest("k", 3)
	if v, ok, _ := m.LoadBest("k"); !ok || v != 3 {
		t.Errorf("LoadBest() = %d, %v", v, ok)
	}

	m.RecordResult("g", 1)
	m.RecordResult("g", 2)
	if got := m.Results("g"); len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("Results() = %v", got)
	}
}
