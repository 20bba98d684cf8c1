package physics

import (
	"github.com/lixenwraith/kataster/core"
	"github.com/lixenwraith/kataster/vmath"
)

// Overlap reports circle contact between two bodies
// Vertical distance is divided by aspect so radii are expressed in columns
func Overlap(a, b *core.Kinetic, radiusA, radiusB, aspect int64) bool {
	dx := b.PreciseX - a.PreciseX
	dy := b.PreciseY - a.PreciseY
	if aspect != 0 && aspect != vmath.Scale {
		dy = vmath.Div(dy, aspect)
	}
	r := radiusA + radiusB
	return vmath.MagnitudeSq(dx, dy) <= vmath.Mul(r, r)
}
