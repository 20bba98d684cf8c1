package system

import (
	"github.com/lixenwraith/kataster/core"
	"github.com/lixenwraith/kataster/engine"
	"github.com/lixenwraith/kataster/event"
	"github.com/lixenwraith/kataster/parameter"
)

// AudioSystem consumes sound requests and mute toggles and forwards them to the audio bridge
// Decouples game systems from direct audio engine access
type AudioSystem struct {
	world *engine.World

	thrusting bool
}

func NewAudioSystem(world *engine.World) engine.System {
	return &AudioSystem{world: world}
}

func (s *AudioSystem) Priority() int {
	return parameter.PriorityAudio
}

func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSoundRequest,
		event.EventMuteToggle,
		event.EventPlayerHit,
		event.EventLevelUp,
		event.EventMenuConfirm,
	}
}

func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	audio := s.world.Resources.Audio
	switch ev.Type {
	case event.EventSoundRequest:
		if p, ok := ev.Payload.(*event.SoundRequestPayload); ok {
			audio.Play(p.Sound)
		}
	case event.EventMuteToggle:
		audio.ToggleMute()
	case event.EventPlayerHit:
		audio.Play(core.SoundLifeLost)
	case event.EventLevelUp, event.EventMenuConfirm:
		audio.Play(core.SoundBlip)
	}
}

// Update starts the thrust rumble on the rising edge of the thrust flag
func (s *AudioSystem) Update() {
	thrusting := false
	for _, e := range s.world.Components.Player.GetAllEntities() {
		if p, ok := s.world.Components.Player.GetComponent(e); ok && p.Thrusting {
			thrusting = true
			break
		}
	}
	if thrusting && !s.thrusting {
		s.world.Resources.Audio.Play(core.SoundThrust)
	}
	s.thrusting = thrusting
}
