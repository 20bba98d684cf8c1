package event

import (
	"sync"
	"testing"

	"github.com/lixenwraith/kataster/parameter"
)

func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	for i := 0; i < 5; i++ {
		q.Push(GameEvent{Type: EventScore, Frame: int64(i)})
	}
	if q.Len() != 5 {
		t.Fatalf("Len = %d, want 5", q.Len())
	}

	events := q.Consume()
	if len(events) != 5 {
		t.Fatalf("Consume returned %d events", len(events))
	}
	for i, ev := range events {
		if ev.Frame != int64(i) {
			t.Errorf("event %d has frame %d", i, ev.Frame)
		}
	}
	if q.Consume() != nil {
		t.Error("second Consume should be empty")
	}
}

func TestQueueOverflowKeepsNewest(t *testing.T) {
	q := NewEventQueue()
	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Type: EventScore, Frame: int64(i)})
	}

	events := q.Consume()
	if len(events) != parameter.EventQueueSize {
		t.Fatalf("got %d events, want %d", len(events), parameter.EventQueueSize)
	}
	if events[0].Frame != 10 {
		t.Errorf("oldest surviving frame = %d, want 10", events[0].Frame)
	}
	if q.Dropped() != 10 {
		t.Errorf("Dropped = %d, want 10", q.Dropped())
	}
	if q.Len() != 0 {
		t.Errorf("Len after Consume = %d", q.Len())
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewEventQueue()
	var wg sync.WaitGroup
	for p := 0; p < 4; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				q.Push(GameEvent{Type: EventSoundRequest})
			}
		}()
	}
	wg.Wait()

	if got := len(q.Consume()); got != 400 {
		t.Errorf("consumed %d events, want 400", got)
	}
}

func TestRegistryLookup(t *testing.T) {
	et, ok := GetEventType("EventAsteroidSpawn")
	if !ok || et != EventAsteroidSpawn {
		t.Fatalf("GetEventType = %v, %v", et, ok)
	}
	if name := GetEventName(EventGameOver); name != "EventGameOver" {
		t.Errorf("GetEventName = %q", name)
	}
	if et, ok := GetEventType("tick"); !ok || et != 0 {
		t.Error("Tick should resolve to 0")
	}
	if _, ok := NewPayloadStruct(EventAsteroidSpawn).(*AsteroidSpawnPayload); !ok {
		t.Error("expected *AsteroidSpawnPayload")
	}
	if NewPayloadStruct(EventMenuConfirm) != nil {
		t.Error("expected nil payload for EventMenuConfirm")
	}
}
