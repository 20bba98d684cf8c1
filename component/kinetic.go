package component

import (
	"time"

	"github.com/lixenwraith/kataster/core"
)

// KineticComponent provides a reusable kinematic container for entities requiring sub-cell motion
// Uses Q32.32 fixed-point arithmetic for deterministic integration
type KineticComponent struct {
	core.Kinetic // PreciseX/Y, VelX/Y, AccelX/Y (int64 Q32.32)
}

// ColliderComponent is a circular contact area centred on the entity's kinetic position
type ColliderComponent struct {
	Radius int64 // Q32.32, in horizontal cells
}

// LifetimeComponent despawns the entity once game time passes Expires
type LifetimeComponent struct {
	Expires time.Time
}
