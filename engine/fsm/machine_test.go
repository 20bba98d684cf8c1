package fsm

import (
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/kataster/event"
)

type recorder struct {
	log     []string
	emitted []*EmitEventArgs
	allow   bool
}

const testConfig = `
regions:
  app:
    initial: Menu
  game:
    initial: Idle
states:
  Menu:
    on_enter:
      - action: Log
    transitions:
      - trigger: EventMenuConfirm
        target: Playing
  Playing:
    on_enter:
      - action: Log
      - action: EmitEvent
        event: EventGameStart
    on_exit:
      - action: Log
    transitions:
      - trigger: EventReturnToMenu
        target: Menu
  Idle:
    on_enter:
      - action: Log
    transitions:
      - trigger: EventGameStart
        target: Running
  Active:
    on_exit:
      - action: Log
  Running:
    parent: Active
    on_enter:
      - action: Log
    transitions:
      - trigger: EventPauseToggle
        target: Paused
      - trigger: Tick
        target: Over
        guard: Allowed
  Paused:
    parent: Active
    on_enter:
      - action: Log
    transitions:
      - trigger: EventPauseToggle
        target: Running
      - trigger: EventMenuConfirm
        target: Idle
        guard: StateTimeExceeds
        guard_args:
          ms: 100
        actions:
          - action: EmitEvent
            event: EventReturnToMenu
  Over:
    on_enter:
      - action: Log
      - action: EmitEvent
        event: EventScore
        payload:
          points: 42
`

func newTestMachine(t *testing.T) (*Machine[*recorder], *recorder, map[string]string) {
	t.Helper()
	m := NewMachine[*recorder]()
	current := make(map[string]string)

	m.SetObserver(func(region, state string) {
		current[region] = state
	})
	m.RegisterAction("Log", func(ctx *recorder, args any) {
		ctx.log = append(ctx.log, current["app"]+"/"+current["game"])
	})
	m.RegisterAction("EmitEvent", func(ctx *recorder, args any) {
		ctx.emitted = append(ctx.emitted, args.(*EmitEventArgs))
	})
	m.RegisterGuard("Allowed", func(ctx *recorder, region *RegionState) bool {
		return ctx.allow
	})
	m.RegisterGuardFactory("StateTimeExceeds", func(_ *Machine[*recorder], args map[string]any) GuardFunc[*recorder] {
		d := DurationArg(args, "ms")
		return func(_ *recorder, region *RegionState) bool {
			return region.TimeInState >= d
		}
	})

	if err := m.LoadConfig([]byte(testConfig)); err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	return m, &recorder{}, current
}

func TestInitEntersAllRegions(t *testing.T) {
	m, ctx, _ := newTestMachine(t)
	if err := m.Init(ctx); err != nil {
		t.Fatalf("Init: %v", err)
	}

	if got := m.GetRegionState("app"); got != "Menu" {
		t.Errorf("app = %q, want Menu", got)
	}
	if got := m.GetRegionState("game"); got != "Idle" {
		t.Errorf("game = %q, want Idle", got)
	}
	if got := m.Regions(); strings.Join(got, ",") != "app,game" {
		t.Errorf("region order = %v", got)
	}
	if len(ctx.log) != 2 {
		t.Errorf("expected 2 enter actions, got %v", ctx.log)
	}
}

func TestEventTransitionsAndEmit(t *testing.T) {
	m, ctx, _ := newTestMachine(t)
	if err := m.Init(ctx); err != nil {
		t.Fatal(err)
	}

	if !m.HandleEvent(ctx, event.EventMenuConfirm) {
		t.Fatal("MenuConfirm should be handled by app region")
	}
	if got := m.GetRegionState("app"); got != "Playing" {
		t.Fatalf("app = %q, want Playing", got)
	}
	if len(ctx.emitted) != 1 || ctx.emitted[0].Type != event.EventGameStart {
		t.Fatalf("expected GameStart emission, got %+v", ctx.emitted)
	}

	m.HandleEvent(ctx, event.EventGameStart)
	if !m.InState("game", "Active") || m.GetRegionState("game") != "Running" {
		t.Fatalf("game should be Running under Active, got %q", m.GetRegionState("game"))
	}

	if m.HandleEvent(ctx, event.EventQuitRequest) {
		t.Error("unbound event should not be handled")
	}
}

func TestObserverRunsBeforeEnterActions(t *testing.T) {
	m, ctx, _ := newTestMachine(t)
	if err := m.Init(ctx); err != nil {
		t.Fatal(err)
	}
	m.HandleEvent(ctx, event.EventMenuConfirm)

	last := ctx.log[len(ctx.log)-1]
	if last != "Playing/Idle" {
		t.Errorf("enter action saw %q, want Playing/Idle", last)
	}
}

func TestSiblingTransitionKeepsParent(t *testing.T) {
	m, ctx, _ := newTestMachine(t)
	if err := m.Init(ctx); err != nil {
		t.Fatal(err)
	}
	m.HandleEvent(ctx, event.EventGameStart)
	before := len(ctx.log)

	m.HandleEvent(ctx, event.EventPauseToggle)
	if got := m.GetRegionState("game"); got != "Paused" {
		t.Fatalf("game = %q, want Paused", got)
	}
	// Only Paused.on_enter runs; Active is the LCA and is not exited
	if len(ctx.log)-before != 1 {
		t.Errorf("expected a single action, got %v", ctx.log[before:])
	}
}

func TestGuardFactoryAndTransitionActions(t *testing.T) {
	m, ctx, _ := newTestMachine(t)
	if err := m.Init(ctx); err != nil {
		t.Fatal(err)
	}
	m.HandleEvent(ctx, event.EventGameStart)
	m.HandleEvent(ctx, event.EventPauseToggle)

	if m.HandleEvent(ctx, event.EventMenuConfirm) && m.GetRegionState("game") != "Paused" {
		t.Fatal("guard should block the transition before 100ms")
	}

	m.Update(ctx, 150*time.Millisecond)
	m.HandleEvent(ctx, event.EventMenuConfirm)
	if got := m.GetRegionState("game"); got != "Idle" {
		t.Fatalf("game = %q, want Idle", got)
	}

	last := ctx.emitted[len(ctx.emitted)-1]
	if last.Type != event.EventReturnToMenu {
		t.Errorf("transition action emitted %v", last.Type)
	}
}

func TestTickTransitionDecodesPayload(t *testing.T) {
	m, ctx, _ := newTestMachine(t)
	if err := m.Init(ctx); err != nil {
		t.Fatal(err)
	}
	m.HandleEvent(ctx, event.EventGameStart)

	m.Update(ctx, time.Millisecond)
	if m.GetRegionState("game") != "Running" {
		t.Fatal("guarded tick transition fired without permission")
	}

	ctx.allow = true
	m.Update(ctx, time.Millisecond)
	if got := m.GetRegionState("game"); got != "Over" {
		t.Fatalf("game = %q, want Over", got)
	}

	last := ctx.emitted[len(ctx.emitted)-1]
	p, ok := last.Payload.(*event.ScorePayload)
	if !ok || p.Points != 42 {
		t.Errorf("payload = %#v", last.Payload)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name   string
		config string
		want   string
	}{
		{"no regions", "states:\n  A: {}\n", "no regions"},
		{"unknown initial", "regions:\n  r:\n    initial: X\nstates:\n  A: {}\n", "unknown initial"},
		{"unknown parent", "regions:\n  r:\n    initial: A\nstates:\n  A:\n    parent: Z\n", "unknown parent"},
		{"unknown action", "regions:\n  r:\n    initial: A\nstates:\n  A:\n    on_enter:\n      - action: Nope\n", "unknown action"},
		{"unknown event", "regions:\n  r:\n    initial: A\nstates:\n  A:\n    transitions:\n      - trigger: EventNope\n        target: A\n", "unknown event"},
		{"unknown target", "regions:\n  r:\n    initial: A\nstates:\n  A:\n    transitions:\n      - trigger: Tick\n        target: B\n", "unknown target"},
		{"parent cycle", "regions:\n  r:\n    initial: A\nstates:\n  A:\n    parent: B\n  B:\n    parent: A\n", "parent cycle"},
		{"unknown guard", "regions:\n  r:\n    initial: A\nstates:\n  A:\n    transitions:\n      - trigger: Tick\n        target: A\n        guard: Nope\n", "unknown guard"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine[*recorder]()
			err := m.LoadConfig([]byte(tt.config))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want containing %q", err, tt.want)
			}
		})
	}
}
