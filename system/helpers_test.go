package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/kataster/core"
	"github.com/lixenwraith/kataster/engine"
	"github.com/lixenwraith/kataster/event"
	"github.com/lixenwraith/kataster/vmath"
)

const (
	testWidth  = 80
	testHeight = 30
)

// newPlayingWorld returns a headless world in Game/Running with a fresh run
func newPlayingWorld(t *testing.T) *engine.World {
	t.Helper()
	w, _ := engine.NewTestWorld(testWidth, testHeight)
	w.Resources.State.Set(engine.RegionApp, engine.AppGame)
	w.Resources.State.Set(engine.RegionGame, engine.GameRunning)
	w.Resources.Run.Reset("test-run", 3, w.Resources.Time.RealTime)
	return w
}

func drain(w *engine.World) []event.GameEvent {
	return w.Resources.Event.Queue.Consume()
}

func ofType(events []event.GameEvent, et event.EventType) []event.GameEvent {
	var out []event.GameEvent
	for _, ev := range events {
		if ev.Type == et {
			out = append(out, ev)
		}
	}
	return out
}

func at(x, y float64) core.Kinetic {
	return core.Kinetic{PreciseX: vmath.FromFloat(x), PreciseY: vmath.FromFloat(y)}
}

// step advances time then runs one system update
func step(w *engine.World, s engine.System, dt time.Duration) {
	w.Advance(dt)
	s.Update()
}

type recordingAudio struct {
	played []core.SoundType
	muted  bool
}

func (a *recordingAudio) Play(s core.SoundType) bool {
	a.played = append(a.played, s)
	return !a.muted
}

func (a *recordingAudio) ToggleMute() bool {
	a.muted = !a.muted
	return a.muted
}

func (a *recordingAudio) IsMuted() bool { return a.muted }

type recordingKeeper struct {
	runs []string
	best int
	top  []engine.ScoreEntry
}

func (k *recordingKeeper) Submit(runID string, score, level int, startedAt time.Time) {
	k.runs = append(k.runs, runID)
	if score > k.best {
		k.best = score
	}
}

func (k *recordingKeeper) Best() int { return k.best }

func (k *recordingKeeper) Top(n int) []engine.ScoreEntry {
	return k.top[:min(n, len(k.top))]
}
