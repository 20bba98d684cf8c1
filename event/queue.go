package event

import (
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/kataster/parameter"
)

// EventQueue is a bounded ring of pending events
// Producers are the input goroutine and systems; the scheduler is the single consumer
// When full, Push overwrites the oldest pending event and counts it as dropped
type EventQueue struct {
	mu     sync.Mutex
	ring   [parameter.EventQueueSize]GameEvent
	head   uint64 // Next slot to consume
	tail   uint64 // Next slot to fill
	drops  atomic.Int64
	length atomic.Int64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event
func (eq *EventQueue) Push(ev GameEvent) {
	eq.mu.Lock()
	eq.ring[eq.tail&parameter.EventBufferMask] = ev
	eq.tail++
	if eq.tail-eq.head > parameter.EventQueueSize {
		eq.head = eq.tail - parameter.EventQueueSize
		eq.drops.Add(1)
	}
	eq.length.Store(int64(eq.tail - eq.head))
	eq.mu.Unlock()
}

// Consume returns all pending events in FIFO order, nil when empty
func (eq *EventQueue) Consume() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	n := eq.tail - eq.head
	if n == 0 {
		return nil
	}
	out := make([]GameEvent, 0, n)
	for i := eq.head; i < eq.tail; i++ {
		slot := &eq.ring[i&parameter.EventBufferMask]
		out = append(out, *slot)
		*slot = GameEvent{} // Release payload
	}
	eq.head = eq.tail
	eq.length.Store(0)
	return out
}

// Len returns the pending event count without locking
func (eq *EventQueue) Len() int {
	return int(eq.length.Load())
}

// Dropped returns how many events were overwritten before being consumed
func (eq *EventQueue) Dropped() int64 {
	return eq.drops.Load()
}
