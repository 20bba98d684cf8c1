package render

import (
	"time"

	"github.com/lixenwraith/kataster/engine"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	// Time state
	GameTime    time.Time
	RealTime    time.Time
	FrameNumber int64
	Paused      bool

	// Arena origin on screen, the border sits one cell outside
	ArenaX int
	ArenaY int

	// Arena dimensions (simulation bounds)
	ArenaWidth  int
	ArenaHeight int

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int
}

// NewRenderContext snapshots world time and centres the arena on a screen of the given size
// Caller holds the world lock
func NewRenderContext(world *engine.World, screenWidth, screenHeight int) RenderContext {
	res := world.Resources
	arena := res.Arena

	return RenderContext{
		GameTime:    res.Time.GameTime,
		RealTime:    res.Time.RealTime,
		FrameNumber: res.Time.FrameNumber,
		Paused:      res.State.Game() == engine.GamePause,

		ArenaX: (screenWidth - arena.Width) / 2,
		ArenaY: (screenHeight - arena.Height) / 2,

		ArenaWidth:  arena.Width,
		ArenaHeight: arena.Height,

		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

// TooSmall reports whether the screen cannot hold the arena and its border
func (rc *RenderContext) TooSmall() bool {
	return rc.ScreenWidth < rc.ArenaWidth+2 || rc.ScreenHeight < rc.ArenaHeight+2
}

// ArenaToScreen converts arena cell coordinates to screen coordinates
// Returns (sx, sy, visible) where visible=false if outside the arena
func (rc *RenderContext) ArenaToScreen(x, y int) (int, int, bool) {
	if x < 0 || x >= rc.ArenaWidth || y < 0 || y >= rc.ArenaHeight {
		return 0, 0, false
	}
	return x + rc.ArenaX, y + rc.ArenaY, true
}
