package system

import (
	"github.com/lixenwraith/kataster/engine"
	"github.com/lixenwraith/kataster/parameter"
	"github.com/lixenwraith/kataster/physics"
)

// PositionSystem integrates every kinetic body, wraps ship and asteroids, culls stray lasers
type PositionSystem struct {
	world *engine.World
}

func NewPositionSystem(world *engine.World) engine.System {
	return &PositionSystem{world: world}
}

func (s *PositionSystem) Priority() int {
	return parameter.PriorityPosition
}

func (s *PositionSystem) Update() {
	if !s.world.Resources.State.Playing() {
		return
	}

	dt := dtFixed(s.world.Resources.Time.DeltaTime)
	arena := s.world.Resources.Arena
	c := &s.world.Components

	for _, e := range c.Kinetic.GetAllEntities() {
		kin, ok := c.Kinetic.GetComponent(e)
		if !ok {
			continue
		}
		physics.Integrate(&kin.Kinetic, dt)

		switch {
		case c.Player.HasEntity(e), c.Asteroid.HasEntity(e):
			physics.WrapArena(&kin.Kinetic, arena.Width, arena.Height)
		case c.Laser.HasEntity(e):
			if physics.OutOfArena(&kin.Kinetic, arena.Width, arena.Height, 1) {
				s.world.DestroyEntity(e)
				continue
			}
		}
		c.Kinetic.SetComponent(e, kin)
	}
}
