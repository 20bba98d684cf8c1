package system

import (
	"github.com/lixenwraith/kataster/core"
	"github.com/lixenwraith/kataster/engine"
	"github.com/lixenwraith/kataster/event"
	"github.com/lixenwraith/kataster/parameter"
)

// PlayerSystem respawns the ship after the respawn delay while lives remain
type PlayerSystem struct {
	world *engine.World
}

func NewPlayerSystem(world *engine.World) engine.System {
	return &PlayerSystem{world: world}
}

func (s *PlayerSystem) Priority() int {
	return parameter.PriorityPlayer
}

func (s *PlayerSystem) Update() {
	if !s.world.Resources.State.Playing() {
		return
	}

	ps := s.world.Resources.Player
	if ps.On || s.world.Resources.Run.Lives <= 0 {
		return
	}
	now := s.world.Resources.Time.GameTime
	if now.Before(ps.LastShot.Add(s.world.Resources.Config.RespawnDelay)) {
		return
	}

	SpawnShip(s.world, true)
	s.world.PushEvent(event.EventPlayerSpawned, nil)
	s.world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundBlip})
}
