package parameter

import "time"

// Explosion sheet animation, a 4x4 grid of frames
const (
	ExplosionSheetColumns = 4
	ExplosionSheetRows    = 4
	ExplosionFrameCount   = ExplosionSheetColumns * ExplosionSheetRows
	ExplosionFrameTime    = 50 * time.Millisecond
)

// Starfield background
const (
	StarDensity      = 0.035
	StarScrollSpeed  = 0.8
	StarTwinkleScale = 0.12
)
