package system

import (
	"time"

	"github.com/lixenwraith/kataster/core"
	"github.com/lixenwraith/kataster/engine"
	"github.com/lixenwraith/kataster/event"
	"github.com/lixenwraith/kataster/parameter"
	"github.com/lixenwraith/kataster/physics"
	"github.com/lixenwraith/kataster/vmath"
)

// CannonSystem fires player lasers while the fire intent is held
type CannonSystem struct {
	world *engine.World

	nextShot time.Time // Game time
}

func NewCannonSystem(world *engine.World) engine.System {
	return &CannonSystem{world: world}
}

func (s *CannonSystem) Priority() int {
	return parameter.PriorityCannon
}

func (s *CannonSystem) Update() {
	if !s.world.Resources.State.Playing() {
		return
	}

	now := s.world.Resources.Time.GameTime
	fire := s.world.Resources.Input.Held(engine.IntentFire, s.world.Resources.Time.RealTime)

	for _, e := range s.world.Components.Player.GetAllEntities() {
		ready, ok := s.world.Components.PlayerReadyFire.GetComponent(e)
		if !ok {
			continue
		}
		if !ready.Ready && !now.Before(s.nextShot) {
			ready.Ready = true
			s.world.Components.PlayerReadyFire.SetComponent(e, ready)
		}
		if !fire || !ready.Ready {
			continue
		}

		kin, ok := s.world.Components.Kinetic.GetComponent(e)
		if !ok {
			continue
		}
		heading, _ := s.world.Components.Heading.GetComponent(e)
		speed := vmath.FromFloat(parameter.LaserSpeed)
		if sp, ok := s.world.Components.Speed.GetComponent(e); ok && sp.Value > 0 {
			speed = sp.Value
		}

		// Laser leaves from the nose, inheriting ship velocity
		laser := core.Kinetic{PreciseX: kin.PreciseX, PreciseY: kin.PreciseY}
		hx, hy := vmath.Heading(heading.Angle)
		laser.PreciseX += hx
		laser.PreciseY += vmath.Mul(hy, aspect)
		physics.Launch(&laser, heading.Angle, speed, aspect, kin.VelX, kin.VelY)
		spawnLaser(s.world, laser, true)

		ready.Ready = false
		s.world.Components.PlayerReadyFire.SetComponent(e, ready)
		s.nextShot = now.Add(parameter.CannonCooldown)

		s.world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundLaser})
	}
}
