package memory

import (
	"io"
	"reflect"
	"sort"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/session"
	"github.com/vovakirdan/pocket-arcade/internal/storage"
)

const mismatchDelay = 1000 * time.Millisecond

type fixture struct {
	game  *Game
	clock *core.ManualClock
	store *storage.Memory
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	clock := core.NewManualClock(time.Unix(0, 0))
	store := storage.NewMemory()
	g := NewWithConfig(config.DefaultGames().Memory, session.Deps{
		Rand:   core.NewSequenceRand(0.13, 0.71, 0.42, 0.95, 0.07, 0.58),
		Clock:  clock,
		Store:  store,
		Logger: log.New(io.Discard),
	})
	t.Cleanup(g.Close)
	return fixture{game: g, clock: clock, store: store}
}

// pairs returns card index pairs grouped by symbol, in deck order.
func (f fixture) pairs() [][2]int {
	seen := map[string]int{}
	var out [][2]int
	for i, c := range f.game.deck {
		if j, ok := seen[c.symbol]; ok {
			out = append(out, [2]int{j, i})
			continue
		}
		seen[c.symbol] = i
	}
	return out
}

// mismatch returns two indices of unmatched cards with different symbols.
func (f fixture) mismatch(t *testing.T) (int, int) {
	t.Helper()
	for i, a := range f.game.deck {
		for j, b := range f.game.deck {
			if !a.matched && !b.matched && a.symbol != b.symbol {
				return i, j
			}
		}
	}
	t.Fatal("no mismatched pair left")
	return 0, 0
}

func TestDeckHoldsEachSymbolTwice(t *testing.T) {
	f := newFixture(t)
	f.game.Start()

	if len(f.game.deck) != 16 {
		t.Fatalf("deck size = %d, want 16", len(f.game.deck))
	}
	counts := map[string]int{}
	for _, c := range f.game.deck {
		counts[c.symbol]++
	}
	for _, s := range config.DefaultGames().Memory.Symbols {
		if counts[s] != 2 {
			t.Errorf("symbol %s appears %d times, want 2", s, counts[s])
		}
	}
}

func TestShuffleIsDeterministicForSameSource(t *testing.T) {
	a := newFixture(t)
	b := newFixture(t)
	a.game.Start()
	b.game.Start()
	if !reflect.DeepEqual(a.game.deck, b.game.deck) {
		t.Error("same random sequence dealt different decks")
	}
}

func TestAllPairsWin(t *testing.T) {
	f := newFixture(t)
	f.game.Start()

	for n, p := range f.pairs() {
		f.game.Submit(core.Choose(p[0]))
		f.game.Submit(core.Choose(p[1]))
		if got := f.game.Snapshot().Stats[StatMatchedPairs]; got != n+1 {
			t.Fatalf("matched_pairs = %d after %d pairs", got, n+1)
		}
	}

	snap := f.game.Snapshot()
	if snap.State != string(StateWon) {
		t.Fatalf("state = %s, want won", snap.State)
	}
	if snap.Terminal {
		t.Error("won board reported as terminal")
	}
	round := snap.Round.(Round)
	if len(round.Matched) != 8 {
		t.Errorf("matched = %v, want 8 symbols", round.Matched)
	}
	if snap.Stats[StatMoves] != 8 || snap.Stats[StatGamesWon] != 1 {
		t.Errorf("stats = %v, want moves=8 games_won=1", snap.Stats)
	}
	if snap.Best == nil || *snap.Best != 8 {
		t.Errorf("best = %v, want 8", snap.Best)
	}
	if v, ok, _ := f.store.LoadBest(BestKey); !ok || v != 8 {
		t.Errorf("stored best = %d,%v, want 8", v, ok)
	}
	if got := f.store.Results(GameID); !reflect.DeepEqual(got, []int{8}) {
		t.Errorf("recorded = %v, want [8]", got)
	}
	if !reflect.DeepEqual(snap.History, []int{8}) {
		t.Errorf("history = %v, want [8]", snap.History)
	}
}

func TestMismatchRevertsAfterDelay(t *testing.T) {
	f := newFixture(t)
	f.game.Start()

	i, j := f.mismatch(t)
	f.game.Submit(core.Choose(i))
	f.game.Submit(core.Choose(j))

	snap := f.game.Snapshot()
	if snap.State != string(StateChecking) || !snap.Locked {
		t.Fatalf("state = %s locked = %v, want locked checking", snap.State, snap.Locked)
	}
	cards := snap.Round.(Round).Cards
	if !cards[i].FaceUp || !cards[j].FaceUp || cards[i].Symbol == "" {
		t.Error("mismatched cards should be shown face up")
	}

	f.clock.Advance(mismatchDelay - time.Millisecond)
	if f.game.State() != StateChecking {
		t.Fatalf("reverted early, state = %s", f.game.State())
	}
	f.clock.Advance(time.Millisecond)

	snap = f.game.Snapshot()
	if snap.State != string(StatePlaying) {
		t.Fatalf("state = %s, want playing", snap.State)
	}
	cards = snap.Round.(Round).Cards
	if cards[i].FaceUp || cards[j].FaceUp || cards[i].Symbol != "" {
		t.Error("mismatched cards should be face down again")
	}
	if snap.Stats[StatMoves] != 1 || snap.Stats[StatMatchedPairs] != 0 {
		t.Errorf("stats = %v, want moves=1 matched_pairs=0", snap.Stats)
	}
}

func TestInputIgnoredWhileChecking(t *testing.T) {
	f := newFixture(t)
	f.game.Start()

	i, j := f.mismatch(t)
	f.game.Submit(core.Choose(i))
	f.game.Submit(core.Choose(j))

	for k := range f.game.deck {
		if k != i && k != j {
			f.game.Submit(core.Choose(k))
			break
		}
	}
	if f.game.Snapshot().Stats[StatMoves] != 1 {
		t.Error("input accepted while checking")
	}
	for k, c := range f.game.deck {
		if k != i && k != j && c.faceUp {
			t.Errorf("card %d flipped while locked", k)
		}
	}
}

func TestMatchedAndFaceUpCardsAreNoOps(t *testing.T) {
	f := newFixture(t)
	f.game.Start()
	p := f.pairs()[0]

	f.game.Submit(core.Choose(p[0]))
	f.game.Submit(core.Choose(p[0]))
	if len(f.game.flipped) != 1 || f.game.Snapshot().Stats[StatMoves] != 0 {
		t.Fatal("clicking the same face-up card counted as a flip")
	}

	f.game.Submit(core.Choose(p[1]))
	f.game.Submit(core.Choose(p[0]))
	f.game.Submit(core.Choose(p[1]))
	if len(f.game.flipped) != 0 {
		t.Error("matched cards were flipped again")
	}
	if f.game.Snapshot().Stats[StatMoves] != 1 {
		t.Errorf("moves = %d, want 1", f.game.Snapshot().Stats[StatMoves])
	}
}

func TestOutOfRangeAndWrongActionIgnored(t *testing.T) {
	f := newFixture(t)
	f.game.Start()

	for _, in := range []core.Input{core.Choose(-1), core.Choose(16), core.Tap(), core.Letter('a')} {
		f.game.Submit(in)
	}
	if len(f.game.flipped) != 0 {
		t.Errorf("flipped = %v, want none", f.game.flipped)
	}
}

func TestWonIgnoresCardsUntilStart(t *testing.T) {
	f := newFixture(t)
	f.game.Start()
	for _, p := range f.pairs() {
		f.game.Submit(core.Choose(p[0]))
		f.game.Submit(core.Choose(p[1]))
	}

	f.game.Submit(core.Choose(0))
	if f.game.State() != StateWon {
		t.Fatalf("state = %s, want won", f.game.State())
	}

	f.game.Start()
	snap := f.game.Snapshot()
	if snap.State != string(StatePlaying) {
		t.Fatalf("state = %s, want playing", snap.State)
	}
	if snap.Stats[StatMoves] != 0 || snap.Stats[StatMatchedPairs] != 0 {
		t.Errorf("per-board counters not restarted: %v", snap.Stats)
	}
	if snap.Stats[StatGamesWon] != 1 {
		t.Errorf("games_won = %d, want 1", snap.Stats[StatGamesWon])
	}
	for _, c := range snap.Round.(Round).Cards {
		if c.FaceUp || c.Matched {
			t.Fatal("new board has revealed cards")
		}
	}
}

func TestBestKeepsFewestMoves(t *testing.T) {
	f := newFixture(t)

	play := func(misses int) {
		f.game.Start()
		for n := 0; n < misses; n++ {
			i, j := f.mismatch(t)
			f.game.Submit(core.Choose(i))
			f.game.Submit(core.Choose(j))
			f.clock.Advance(mismatchDelay)
		}
		for _, p := range f.pairs() {
			f.game.Submit(core.Choose(p[0]))
			f.game.Submit(core.Choose(p[1]))
		}
	}

	play(3)
	play(1)
	play(4)

	snap := f.game.Snapshot()
	if snap.Best == nil || *snap.Best != 9 {
		t.Errorf("best = %v, want 9", snap.Best)
	}
	if !reflect.DeepEqual(snap.History, []int{11, 9, 12}) {
		t.Errorf("history = %v, want [11 9 12]", snap.History)
	}
	recorded := f.store.Results(GameID)
	sort.Ints(recorded)
	if !reflect.DeepEqual(recorded, []int{9, 11, 12}) {
		t.Errorf("recorded = %v", recorded)
	}
}

func TestResetCancelsPendingRevert(t *testing.T) {
	f := newFixture(t)
	f.game.Start()

	i, j := f.mismatch(t)
	f.game.Submit(core.Choose(i))
	f.game.Submit(core.Choose(j))
	f.game.Reset()
	f.clock.Advance(mismatchDelay)

	snap := f.game.Snapshot()
	if snap.State != string(StateIdle) {
		t.Errorf("state = %s, want idle", snap.State)
	}
	if snap.Round != nil {
		t.Errorf("round = %v, want nil", snap.Round)
	}
	if f.clock.Pending() != 0 {
		t.Errorf("pending timers = %d, want 0", f.clock.Pending())
	}
}
