package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/kataster/engine"
	"github.com/lixenwraith/kataster/event"
)

// Router translates key events into held intents and game events
// Safe to call from the input goroutine: it touches only mutex-guarded resources and the event queue
type Router struct {
	world *engine.World
	keys  *KeyTable
	now   func() time.Time // Must match the scheduler's real time source
}

// NewRouter creates a router over a compiled key table
func NewRouter(world *engine.World, keys *KeyTable, now func() time.Time) *Router {
	return &Router{world: world, keys: keys, now: now}
}

// HandleKey processes one key press or repeat, returns the resolved action
func (r *Router) HandleKey(ev *tcell.EventKey) Action {
	action := r.keys.Lookup(ev)
	state := r.world.Resources.State
	input := r.world.Resources.Input

	switch action {
	case ActionRotateLeft:
		input.Press(engine.IntentRotateLeft, r.now())
	case ActionRotateRight:
		input.Press(engine.IntentRotateRight, r.now())
	case ActionThrust:
		input.Press(engine.IntentThrust, r.now())

	case ActionFire:
		// Fire doubles as confirm on the title and game over screens, not on pause where it would end the run
		switch {
		case state.Playing():
			input.Press(engine.IntentFire, r.now())
		case state.App() == engine.AppStartMenu, state.Game() == engine.GameGameOver:
			r.world.PushEvent(event.EventMenuConfirm, nil)
		}

	case ActionPause:
		if state.InArena() {
			r.world.PushEvent(event.EventPauseToggle, nil)
		}
	case ActionConfirm:
		r.world.PushEvent(event.EventMenuConfirm, nil)
	case ActionMute:
		r.world.PushEvent(event.EventMuteToggle, nil)
	case ActionQuit:
		r.world.PushEvent(event.EventQuitRequest, nil)
	}
	return action
}
