package registry

import (
	"testing"

	"github.com/vovakirdan/pocket-arcade/internal/core"
)

func TestMetadataDepsUseVirtualClock(t *testing.T) {
	deps := metadataDeps()

	clock, ok := deps.Clock.(*core.ManualClock)
	if !ok {
		t.Fatalf("clock = %T, want *core.ManualClock", deps.Clock)
	}
	if _, ok := deps.Clock.(core.Scheduler); !ok {
		t.Fatal("metadata clock should also schedule")
	}

	fired := false
	clock.AfterFunc(0, func() { fired = true })
	if fired {
		t.Error("callback ran before the clock advanced")
	}
	clock.Advance(0)
	if !fired {
		t.Error("callback did not run on Advance")
	}
	if deps.Logger == nil {
		t.Error("metadata deps need a logger")
	}
}
