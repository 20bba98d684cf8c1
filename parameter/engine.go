package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// TimeStep is the fixed simulation tick
	TimeStep = time.Second / 60
)

// ECS & Resources Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = 1023
)

// Arena Defaults, in terminal cells
const (
	DefaultArenaWidth  = 100
	DefaultArenaHeight = 36

	// CellAspect is cell width over cell height, vertical motion is scaled by it
	CellAspect = 0.5
)

// Input
const (
	// KeyHoldWindow is how long a held intent stays active after the last key press or repeat
	KeyHoldWindow = 120 * time.Millisecond
)

// Arena limits accepted by configuration validation
const (
	MinArenaWidth  = 40
	MinArenaHeight = 20
)
