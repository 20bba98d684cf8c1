package system

import (
	"github.com/lixenwraith/kataster/engine"
	"github.com/lixenwraith/kataster/parameter"
)

// LifetimeSystem destroys entities whose lifetime has expired
type LifetimeSystem struct {
	world *engine.World
}

func NewLifetimeSystem(world *engine.World) engine.System {
	return &LifetimeSystem{world: world}
}

func (s *LifetimeSystem) Priority() int {
	return parameter.PriorityLifetime
}

func (s *LifetimeSystem) Update() {
	if !s.world.Resources.State.Playing() {
		return
	}

	now := s.world.Resources.Time.GameTime
	for _, e := range s.world.Components.Lifetime.GetAllEntities() {
		lt, ok := s.world.Components.Lifetime.GetComponent(e)
		if ok && !now.Before(lt.Expires) {
			s.world.DestroyEntity(e)
		}
	}
}
