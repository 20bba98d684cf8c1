package manifest

import (
	"github.com/lixenwraith/kataster/engine"
	"github.com/lixenwraith/kataster/engine/fsm"
	"github.com/lixenwraith/kataster/system"
)

// RegisterFSMComponents returns the registration hook binding state graph action and guard names
// The clock is paused and resumed by the Pause state's actions
func RegisterFSMComponents(clock *engine.PausableClock) func(*fsm.Machine[*engine.World]) {
	return func(m *fsm.Machine[*engine.World]) {
		registerCoreActions(m)
		registerStateActions(m)
		registerClockActions(m, clock)
		registerGuards(m)
	}
}

// === Core Actions ===

func registerCoreActions(m *fsm.Machine[*engine.World]) {
	// EmitEvent takes a pre-compiled payload and pushes it to the world
	m.RegisterAction("EmitEvent", func(world *engine.World, args any) {
		emitArgs, ok := args.(*fsm.EmitEventArgs)
		if !ok {
			return
		}
		world.PushEvent(emitArgs.Type, emitArgs.Payload)
	})
}

// === State Entry Actions ===

func registerStateActions(m *fsm.Machine[*engine.World]) {
	m.RegisterAction("StartMenu", func(world *engine.World, _ any) { system.StartMenu(world) })
	m.RegisterAction("PauseMenu", func(world *engine.World, _ any) { system.PauseMenu(world) })
	m.RegisterAction("GameOverMenu", func(world *engine.World, _ any) { system.GameOverMenu(world) })
	m.RegisterAction("GameUISpawn", func(world *engine.World, _ any) { system.GameUISpawn(world) })
	m.RegisterAction("SetupArena", func(world *engine.World, _ any) { system.SetupArena(world) })
	m.RegisterAction("RecordScore", func(world *engine.World, _ any) { system.RecordScore(world) })

	m.RegisterAction("AppStateDespawn", func(world *engine.World, _ any) {
		system.DespawnForState(world, engine.RegionApp)
	})
	m.RegisterAction("AppGameStateDespawn", func(world *engine.World, _ any) {
		system.DespawnForState(world, engine.RegionGame)
	})
}

// === Clock Actions ===

func registerClockActions(m *fsm.Machine[*engine.World], clock *engine.PausableClock) {
	m.RegisterAction("PauseClock", func(world *engine.World, _ any) {
		clock.Pause()
		world.Resources.Input.ReleaseAll()
	})
	m.RegisterAction("ResumeClock", func(world *engine.World, _ any) {
		clock.Resume()
	})
}

// === Guards ===

func registerGuards(m *fsm.Machine[*engine.World]) {
	m.RegisterGuard("AlwaysTrue", func(*engine.World, *fsm.RegionState) bool {
		return true
	})

	// StateTimeExceeds: guard_args.ms is the minimum time in the current state
	m.RegisterGuardFactory("StateTimeExceeds", func(_ *fsm.Machine[*engine.World], args map[string]any) fsm.GuardFunc[*engine.World] {
		d := fsm.DurationArg(args, "ms")
		return func(_ *engine.World, region *fsm.RegionState) bool {
			return region.TimeInState >= d
		}
	})
}
