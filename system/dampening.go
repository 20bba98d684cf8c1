package system

import (
	"math"

	"github.com/lixenwraith/kataster/engine"
	"github.com/lixenwraith/kataster/parameter"
	"github.com/lixenwraith/kataster/physics"
	"github.com/lixenwraith/kataster/vmath"
)

// DampeningSystem bleeds ship velocity at a frame-rate independent rate
type DampeningSystem struct {
	world *engine.World
}

func NewDampeningSystem(world *engine.World) engine.System {
	return &DampeningSystem{world: world}
}

func (s *DampeningSystem) Priority() int {
	return parameter.PriorityDampening
}

func (s *DampeningSystem) Update() {
	if !s.world.Resources.State.Playing() {
		return
	}

	// 0.98 per 1/60 s tick
	ticks := s.world.Resources.Time.DeltaTime.Seconds() / parameter.TimeStep.Seconds()
	factor := vmath.FromFloat(math.Pow(parameter.PlayerDampening, ticks))

	for _, e := range s.world.Components.Player.GetAllEntities() {
		kin, ok := s.world.Components.Kinetic.GetComponent(e)
		if !ok {
			continue
		}
		physics.Damp(&kin.Kinetic, factor)
		s.world.Components.Kinetic.SetComponent(e, kin)
	}
}
