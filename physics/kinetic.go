package physics

import (
	"github.com/lixenwraith/kataster/core"
	"github.com/lixenwraith/kataster/vmath"
)

// Integrate performs physics integration: v = v + a*dt; p = p + v*dt
func Integrate(k *core.Kinetic, dt int64) (x, y int) {
	k.VelX += vmath.Mul(k.AccelX, dt)
	k.VelY += vmath.Mul(k.AccelY, dt)
	k.PreciseX += vmath.Mul(k.VelX, dt)
	k.PreciseY += vmath.Mul(k.VelY, dt)
	return vmath.ToInt(k.PreciseX), vmath.ToInt(k.PreciseY)
}

// Damp scales velocity by factor (Q32.32, Scale = no damping)
func Damp(k *core.Kinetic, factor int64) {
	k.VelX = vmath.Mul(k.VelX, factor)
	k.VelY = vmath.Mul(k.VelY, factor)
}

// WrapArena folds position back into [0, width) x [0, height), returns true if it wrapped
func WrapArena(k *core.Kinetic, width, height int) bool {
	w := vmath.FromInt(width)
	h := vmath.FromInt(height)
	wrapped := false

	if k.PreciseX < 0 {
		k.PreciseX += w
		wrapped = true
	} else if k.PreciseX >= w {
		k.PreciseX -= w
		wrapped = true
	}
	if k.PreciseY < 0 {
		k.PreciseY += h
		wrapped = true
	} else if k.PreciseY >= h {
		k.PreciseY -= h
		wrapped = true
	}
	return wrapped
}

// OutOfArena reports whether position lies more than margin cells outside the arena
func OutOfArena(k *core.Kinetic, width, height, margin int) bool {
	x, y := GridPos(k)
	return x < -margin || y < -margin || x >= width+margin || y >= height+margin
}

// GridPos returns current integer grid position
func GridPos(k *core.Kinetic) (x, y int) {
	return vmath.ToInt(k.PreciseX), vmath.ToInt(k.PreciseY)
}
