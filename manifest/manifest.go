package manifest

import (
	"github.com/lixenwraith/kataster/engine"
	"github.com/lixenwraith/kataster/system"
)

// Systems exposes systems other layers read from
type Systems struct {
	Background *system.BackgroundSystem
}

// RegisterSystems creates every per-frame system and adds it to the world
// Event handlers are picked up afterwards by ClockScheduler.RegisterSystemHandlers
func RegisterSystems(w *engine.World) *Systems {
	background := system.NewBackgroundSystem(w)

	for _, s := range []engine.System{
		system.NewInputSystem(w),
		system.NewPlayerSystem(w),
		system.NewEnemySystem(w),
		system.NewCannonSystem(w),
		system.NewDampeningSystem(w),
		system.NewPositionSystem(w),
		system.NewLifetimeSystem(w),
		system.NewContactSystem(w),
		system.NewArenaSystem(w),
		system.NewExplosionSystem(w),
		system.NewBlinkSystem(w),
		system.NewHUDSystem(w),
		background,
		system.NewAudioSystem(w),
		system.NewStatusSystem(w),
	} {
		w.AddSystem(s)
	}

	return &Systems{Background: background}
}
