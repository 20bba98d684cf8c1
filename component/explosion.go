package component

import (
	"time"

	"github.com/lixenwraith/kataster/core"
)

// ExplosionToSpawnComponent is a pending explosion, converted to an animated one on the next tick
type ExplosionToSpawnComponent struct {
	Kind core.ExplosionKind
	X, Y int64 // Q32.32
}

// ExplosionComponent animates one sprite-sheet explosion
// Frame indexes the sheet row-major; the entity despawns after the last frame
type ExplosionComponent struct {
	Kind      core.ExplosionKind
	X, Y      int64 // Q32.32
	Frame     int
	NextFrame time.Time // Real time, animations continue while paused
}
