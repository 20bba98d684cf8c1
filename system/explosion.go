package system

import (
	"sync/atomic"

	"github.com/lixenwraith/kataster/component"
	"github.com/lixenwraith/kataster/core"
	"github.com/lixenwraith/kataster/engine"
	"github.com/lixenwraith/kataster/event"
	"github.com/lixenwraith/kataster/parameter"
)

// ExplosionSystem creates explosion markers from events and steps their sheet animation in real time
type ExplosionSystem struct {
	world *engine.World

	statSpawned *atomic.Int64
}

func NewExplosionSystem(world *engine.World) engine.System {
	return &ExplosionSystem{
		world:       world,
		statSpawned: world.Resources.Status.Ints.Get("explosion.spawned"),
	}
}

func (s *ExplosionSystem) Priority() int {
	return parameter.PriorityExplosion
}

func (s *ExplosionSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventExplosionSpawn}
}

func (s *ExplosionSystem) HandleEvent(ev event.GameEvent) {
	p, ok := ev.Payload.(*event.ExplosionSpawnPayload)
	if !ok || !s.world.Resources.State.InArena() {
		return
	}
	e := s.world.CreateEntity()
	s.world.Components.ExplosionToSpawn.SetComponent(e, component.ExplosionToSpawnComponent{Kind: p.Kind, X: p.X, Y: p.Y})
	s.world.Components.ForState.SetComponent(e, gameplayTag())

	sound := core.SoundExplosion
	if p.Kind == core.ExplosionShipContact || p.Kind == core.ExplosionShipDead {
		sound = core.SoundShipExplosion
	}
	s.world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: sound})
	s.statSpawned.Add(1)
}

// Update runs in every state so explosions finish behind menus
func (s *ExplosionSystem) Update() {
	now := s.world.Resources.Time.RealTime
	c := &s.world.Components

	for _, e := range c.ExplosionToSpawn.GetAllEntities() {
		spawn, ok := c.ExplosionToSpawn.GetComponent(e)
		if !ok {
			continue
		}
		c.ExplosionToSpawn.RemoveEntity(e)
		c.Explosion.SetComponent(e, component.ExplosionComponent{
			Kind:      spawn.Kind,
			X:         spawn.X,
			Y:         spawn.Y,
			NextFrame: now.Add(parameter.ExplosionFrameTime),
		})
	}

	for _, e := range c.Explosion.GetAllEntities() {
		ex, ok := c.Explosion.GetComponent(e)
		if !ok || now.Before(ex.NextFrame) {
			continue
		}
		ex.Frame++
		if ex.Frame >= parameter.ExplosionFrameCount {
			s.world.DestroyEntity(e)
			continue
		}
		ex.NextFrame = ex.NextFrame.Add(parameter.ExplosionFrameTime)
		c.Explosion.SetComponent(e, ex)
	}
}
