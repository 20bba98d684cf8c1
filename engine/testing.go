package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/kataster/event"
	"github.com/lixenwraith/kataster/parameter"
	"github.com/lixenwraith/kataster/status"
)

// NewTestWorld creates a headless World with every core resource registered at defaults
// The returned clock drives game time; it is not started
func NewTestWorld(width, height int) (*World, *PausableClock) {
	w := NewWorld()
	clock := NewPausableClock()

	AddResource(w.ResourceStore, &TimeResource{GameTime: clock.Now(), RealTime: clock.RealTime(), DeltaTime: parameter.TimeStep})
	AddResource(w.ResourceStore, &ArenaResource{Width: width, Height: height})
	AddResource(w.ResourceStore, DefaultConfigResource())
	AddResource(w.ResourceStore, NewStateResource())
	AddResource(w.ResourceStore, NewInputResource(parameter.KeyHoldWindow))
	AddResource(w.ResourceStore, &RunStateResource{})
	AddResource(w.ResourceStore, &PlayerStateResource{})
	AddResource(w.ResourceStore, &ActiveEnemiesResource{})
	queue := event.NewEventQueue()
	AddResource(w.ResourceStore, &EventQueueResource{Queue: queue})
	AddResource(w.ResourceStore, status.NewRegistry())

	BindResources(w)
	w.SetEventMetadata(queue, new(atomic.Int64))
	return w, clock
}

// DefaultConfigResource returns gameplay tunables at their built-in values
func DefaultConfigResource() *ConfigResource {
	return &ConfigResource{
		StartLives:          parameter.StartLife,
		RespawnDelay:        parameter.PlayerRespawnDelay,
		MaxEnemies:          parameter.MaxEnemies,
		MaxFormationMembers: parameter.MaxFormationMembers,
		MaxAsteroids:        parameter.MaxAsteroids,
	}
}

// Advance moves the test world's TimeResource forward by dt without a scheduler
func (w *World) Advance(dt time.Duration) {
	t := w.Resources.Time
	t.Update(t.GameTime.Add(dt), t.RealTime.Add(dt), dt, t.FrameNumber+1)
}
