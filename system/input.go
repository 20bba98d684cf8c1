package system

import (
	"github.com/lixenwraith/kataster/engine"
	"github.com/lixenwraith/kataster/parameter"
	"github.com/lixenwraith/kataster/physics"
	"github.com/lixenwraith/kataster/vmath"
)

// InputSystem turns held intents into ship rotation and thrust
type InputSystem struct {
	world *engine.World

	rotation int64 // Turns per second, Q32.32
	thrust   int64 // Cells per second squared, Q32.32
}

func NewInputSystem(world *engine.World) engine.System {
	return &InputSystem{
		world:    world,
		rotation: vmath.FromFloat(parameter.PlayerRotationSpeed),
		thrust:   vmath.FromFloat(parameter.PlayerThrust),
	}
}

func (s *InputSystem) Priority() int {
	return parameter.PriorityInput
}

func (s *InputSystem) Update() {
	playing := s.world.Resources.State.Playing()
	input := s.world.Resources.Input
	now := s.world.Resources.Time.RealTime
	dt := dtFixed(s.world.Resources.Time.DeltaTime)

	for _, e := range s.world.Components.Player.GetAllEntities() {
		player, _ := s.world.Components.Player.GetComponent(e)
		if !playing {
			if player.Thrusting {
				player.Thrusting = false
				s.world.Components.Player.SetComponent(e, player)
			}
			continue
		}

		heading, ok := s.world.Components.Heading.GetComponent(e)
		if !ok {
			continue
		}
		step := vmath.Mul(s.rotation, dt)
		if input.Held(engine.IntentRotateLeft, now) {
			heading.Angle = vmath.WrapAngle(heading.Angle - step)
		}
		if input.Held(engine.IntentRotateRight, now) {
			heading.Angle = vmath.WrapAngle(heading.Angle + step)
		}
		s.world.Components.Heading.SetComponent(e, heading)

		player.Thrusting = input.Held(engine.IntentThrust, now)
		s.world.Components.Player.SetComponent(e, player)

		if player.Thrusting {
			kin, ok := s.world.Components.Kinetic.GetComponent(e)
			if !ok {
				continue
			}
			physics.Thrust(&kin.Kinetic, heading.Angle, s.thrust, aspect, dt)
			physics.CapSpeed(&kin.VelX, &kin.VelY, vmath.FromFloat(parameter.PlayerMaxSpeed))
			s.world.Components.Kinetic.SetComponent(e, kin)
		}
	}
}
