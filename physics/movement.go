package physics

import (
	"github.com/lixenwraith/kataster/core"
	"github.com/lixenwraith/kataster/vmath"
)

// CapSpeed limits the velocity vector magnitude to maxSpeed
// Returns true if velocity was clamped
func CapSpeed(velX, velY *int64, maxSpeed int64) bool {
	magSq := vmath.MagnitudeSq(*velX, *velY)
	maxSq := vmath.Mul(maxSpeed, maxSpeed)

	if magSq > maxSq {
		mag := vmath.Sqrt(magSq)
		if mag == 0 {
			return false
		}
		scale := vmath.Div(maxSpeed, mag)
		*velX = vmath.Mul(*velX, scale)
		*velY = vmath.Mul(*velY, scale)
		return true
	}
	return false
}

// Thrust accelerates along heading angle for dt seconds
// aspect compresses the vertical component so motion looks uniform on non-square cells
func Thrust(k *core.Kinetic, angle, accel, aspect, dt int64) {
	hx, hy := vmath.Heading(angle)
	k.VelX += vmath.Mul(vmath.Mul(hx, accel), dt)
	k.VelY += vmath.Mul(vmath.Mul(vmath.Mul(hy, aspect), accel), dt)
}

// Launch sets velocity to speed along heading angle, optionally inheriting a base velocity
func Launch(k *core.Kinetic, angle, speed, aspect int64, baseX, baseY int64) {
	hx, hy := vmath.Heading(angle)
	k.VelX = vmath.Mul(hx, speed) + baseX
	k.VelY = vmath.Mul(vmath.Mul(hy, aspect), speed) + baseY
}
