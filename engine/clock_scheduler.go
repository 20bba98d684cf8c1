package engine

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/kataster/core"
	"github.com/lixenwraith/kataster/engine/fsm"
	"github.com/lixenwraith/kataster/event"
	"github.com/lixenwraith/kataster/status"
)

// ClockScheduler runs game logic on a fixed tick
// Each tick: update TimeResource, dispatch events (FSM first, then handlers), FSM tick, systems
// Ticks continue while the game is paused; only game time stops
type ClockScheduler struct {
	world   *World
	timeRes *TimeResource
	eqRes   *EventQueueResource

	clock *PausableClock

	// Tick configuration
	tickInterval     time.Duration
	nextTickDeadline time.Time // Real time, drift corrected

	// frame is the authoritative tick index, shared with World.PushEvent
	frame     atomic.Int64
	tickCount atomic.Uint64

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	// Frame synchronization channels
	frameReady <-chan struct{} // Receive signal that frame is ready
	updateDone chan struct{}   // Send signal that update is complete

	router *Router
	fsm    *fsm.Machine[*World]

	statTicks  *atomic.Int64
	statEvents *atomic.Int64
}

// NewClockScheduler creates a new clock scheduler with specified tick interval
// Receives frameReady sync channel and returns the updateDone channel
func NewClockScheduler(
	world *World,
	clock *PausableClock,
	tickInterval time.Duration,
	frameReady <-chan struct{},
) (*ClockScheduler, <-chan struct{}) {
	updateDone := make(chan struct{}, 1)

	statusReg := MustGetResource[*status.Registry](world.ResourceStore)

	cs := &ClockScheduler{
		world:        world,
		timeRes:      MustGetResource[*TimeResource](world.ResourceStore),
		eqRes:        MustGetResource[*EventQueueResource](world.ResourceStore),
		clock:        clock,
		tickInterval: tickInterval,
		frameReady:   frameReady,
		updateDone:   updateDone,
		stopChan:     make(chan struct{}),
		router:       NewRouter(),
		fsm:          fsm.NewMachine[*World](),
		statTicks:    statusReg.Ints.Get("engine.ticks"),
		statEvents:   statusReg.Ints.Get("engine.events"),
	}

	world.SetEventMetadata(cs.eqRes.Queue, &cs.frame)

	return cs, updateDone
}

// RegisterEventHandler adds an event handler to router, must be called before Start()
func (cs *ClockScheduler) RegisterEventHandler(handler EventHandler) {
	cs.router.Register(handler)
}

// RegisterSystemHandlers registers every world system that implements EventHandler
func (cs *ClockScheduler) RegisterSystemHandlers() {
	for _, sys := range cs.world.Systems() {
		if h, ok := sys.(EventHandler); ok {
			cs.router.Register(h)
		}
	}
}

// FSM exposes the state machine for inspection
func (cs *ClockScheduler) FSM() *fsm.Machine[*World] {
	return cs.fsm
}

// LoadFSM registers actions and guards, loads the state graph and enters the initial states
// customPath overrides the embedded config when non-empty; must be called before Start()
func (cs *ClockScheduler) LoadFSM(config, customPath string, registerComponents func(*fsm.Machine[*World])) error {
	registerComponents(cs.fsm)

	if err := fsm.LoadConfigAuto(cs.fsm, customPath, config); err != nil {
		return fmt.Errorf("failed to load FSM config: %w", err)
	}

	stateRes := MustGetResource[*StateResource](cs.world.ResourceStore)
	cs.fsm.SetObserver(stateRes.Set)

	var err error
	cs.world.RunSafe(func() {
		cs.timeRes.Update(cs.clock.Now(), cs.clock.RealTime(), 0, cs.frame.Load())
		err = cs.fsm.Init(cs.world)
	})
	if err != nil {
		return fmt.Errorf("failed to init FSM: %w", err)
	}

	return nil
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		if cs.running.CompareAndSwap(true, false) {
			close(cs.stopChan)
			cs.wg.Wait()
		}
	})
}

// TickCount returns the number of processed ticks
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// schedulerLoop runs the main scheduling loop
func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	cs.nextTickDeadline = cs.clock.RealTime().Add(cs.tickInterval)

	timer := time.NewTimer(cs.tickInterval)
	defer timer.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		case <-timer.C:
		}

		// Wait for the renderer to finish the previous frame, bounded so a stalled screen never stalls logic
		select {
		case <-cs.frameReady:
		case <-time.After(cs.tickInterval * 2):
		case <-cs.stopChan:
			return
		}

		cs.Step()

		select {
		case cs.updateDone <- struct{}{}:
		default:
		}

		now := cs.clock.RealTime()
		cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)
		if now.Sub(cs.nextTickDeadline) > cs.tickInterval*2 {
			cs.nextTickDeadline = now.Add(cs.tickInterval)
		}

		sleep := cs.nextTickDeadline.Sub(now)
		if sleep < 0 {
			sleep = 0
		}
		timer.Reset(sleep)
	}
}

// Step executes one clock cycle synchronously
func (cs *ClockScheduler) Step() {
	cs.world.RunSafe(func() {
		frame := cs.frame.Add(1)
		cs.timeRes.Update(cs.clock.Now(), cs.clock.RealTime(), cs.tickInterval, frame)

		// Process Events (Input -> FSM -> Systems)
		cs.dispatchAndProcessEvents()

		// Update FSM Logic (Tick transitions)
		cs.fsm.Update(cs.world, cs.tickInterval)

		// Run Systems
		cs.world.UpdateLocked()
	})

	ticks := cs.tickCount.Add(1)
	cs.statTicks.Store(int64(ticks))
}

// dispatchAndProcessEvents processes pending events through FSM and Router
func (cs *ClockScheduler) dispatchAndProcessEvents() {
	eventsList := cs.eqRes.Queue.Consume()
	cs.statEvents.Add(int64(len(eventsList)))
	for _, ev := range eventsList {
		cs.dispatch(ev)
	}
}

func (cs *ClockScheduler) dispatch(ev event.GameEvent) {
	cs.fsm.HandleEvent(cs.world, ev.Type)

	if handlers, ok := cs.router.GetHandlers(ev.Type); ok {
		for _, h := range handlers {
			h.HandleEvent(ev)
		}
	}
}
