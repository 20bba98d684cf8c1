package system

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/kataster/component"
	"github.com/lixenwraith/kataster/engine"
	"github.com/lixenwraith/kataster/event"
	"github.com/lixenwraith/kataster/parameter"
)

// HUDSystem applies score events to the run and refreshes HUD text fields
type HUDSystem struct {
	world *engine.World
}

func NewHUDSystem(world *engine.World) engine.System {
	return &HUDSystem{world: world}
}

func (s *HUDSystem) Priority() int {
	return parameter.PriorityHUD
}

func (s *HUDSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventScore}
}

func (s *HUDSystem) HandleEvent(ev event.GameEvent) {
	if p, ok := ev.Payload.(*event.ScorePayload); ok && s.world.Resources.State.InArena() {
		s.world.Resources.Run.AddScore(p.Points)
	}
}

func (s *HUDSystem) Update() {
	run := s.world.Resources.Run
	for _, e := range s.world.Components.UIText.GetAllEntities() {
		text, ok := s.world.Components.UIText.GetComponent(e)
		if !ok || text.Field == component.UIFieldStatic {
			continue
		}
		next := FieldText(text.Field, run)
		if next != text.Text {
			text.Text = next
			s.world.Components.UIText.SetComponent(e, text)
		}
	}
}

// FieldText formats a HUD field from run state
func FieldText(field component.UIField, run *engine.RunStateResource) string {
	switch field {
	case component.UIFieldScore:
		return fmt.Sprintf("SCORE %06d", run.Score)
	case component.UIFieldLives:
		lives := run.Lives
		if lives < 0 {
			lives = 0
		}
		return "LIVES " + strings.TrimSpace(strings.Repeat("A ", lives))
	case component.UIFieldLevel:
		return fmt.Sprintf("LEVEL %d", run.Level)
	case component.UIFieldBest:
		return fmt.Sprintf("BEST %06d", run.Best)
	}
	return ""
}
