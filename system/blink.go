package system

import (
	"github.com/lixenwraith/kataster/engine"
	"github.com/lixenwraith/kataster/parameter"
)

// BlinkSystem toggles sprite visibility until the blink window ends
type BlinkSystem struct {
	world *engine.World
}

func NewBlinkSystem(world *engine.World) engine.System {
	return &BlinkSystem{world: world}
}

func (s *BlinkSystem) Priority() int {
	return parameter.PriorityBlink
}

func (s *BlinkSystem) Update() {
	now := s.world.Resources.Time.GameTime
	c := &s.world.Components

	for _, e := range c.Blink.GetAllEntities() {
		blink, ok := c.Blink.GetComponent(e)
		if !ok {
			continue
		}
		sprite, ok := c.Sprite.GetComponent(e)
		if !ok {
			c.Blink.RemoveEntity(e)
			continue
		}

		if !now.Before(blink.Until) {
			c.Blink.RemoveEntity(e)
			sprite.Hidden = false
			c.Sprite.SetComponent(e, sprite)
			continue
		}
		if !now.Before(blink.NextToggle) {
			sprite.Hidden = !sprite.Hidden
			blink.NextToggle = blink.NextToggle.Add(parameter.PlayerBlinkPeriod)
			c.Sprite.SetComponent(e, sprite)
			c.Blink.SetComponent(e, blink)
		}
	}
}
