package physics

import (
	"testing"

	"github.com/lixenwraith/kataster/core"
	"github.com/lixenwraith/kataster/vmath"
)

func TestIntegrate(t *testing.T) {
	k := core.Kinetic{VelX: vmath.FromInt(10), VelY: vmath.FromInt(-4)}
	x, y := Integrate(&k, vmath.FromFloat(0.5))
	if x != 5 || y != -2 {
		t.Errorf("Integrate = (%d, %d), want (5, -2)", x, y)
	}
}

func TestWrapArena(t *testing.T) {
	tests := []struct {
		name     string
		x, y     int
		wantX    int
		wantY    int
		wantWrap bool
	}{
		{"inside", 10, 5, 10, 5, false},
		{"left", -1, 5, 79, 5, true},
		{"right", 80, 5, 0, 5, true},
		{"top", 10, -1, 10, 23, true},
		{"bottom", 10, 24, 10, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := core.Kinetic{PreciseX: vmath.FromInt(tt.x), PreciseY: vmath.FromInt(tt.y)}
			wrapped := WrapArena(&k, 80, 24)
			x, y := GridPos(&k)
			if wrapped != tt.wantWrap || x != tt.wantX || y != tt.wantY {
				t.Errorf("got (%d, %d, %v), want (%d, %d, %v)", x, y, wrapped, tt.wantX, tt.wantY, tt.wantWrap)
			}
		})
	}
}

func TestOutOfArena(t *testing.T) {
	k := cellCenter(-3, 4)
	if !OutOfArena(&k, 80, 24, 2) {
		t.Error("expected out of arena beyond margin")
	}
	if OutOfArena(&k, 80, 24, 3) {
		t.Error("expected inside margin")
	}
}

func TestDamp(t *testing.T) {
	k := core.Kinetic{VelX: vmath.FromInt(10), VelY: vmath.FromInt(-10)}
	Damp(&k, vmath.Half)
	if k.VelX != vmath.FromInt(5) || k.VelY != vmath.FromInt(-5) {
		t.Errorf("Damp = (%v, %v)", vmath.ToFloat(k.VelX), vmath.ToFloat(k.VelY))
	}
}

func TestCapSpeed(t *testing.T) {
	vx, vy := vmath.FromInt(30), vmath.FromInt(40)
	if !CapSpeed(&vx, &vy, vmath.FromInt(10)) {
		t.Fatal("expected clamp")
	}
	if got := vmath.ToFloat(vmath.Magnitude(vx, vy)); got < 9.99 || got > 10.01 {
		t.Errorf("capped magnitude = %v", got)
	}
}

func TestOverlapAspect(t *testing.T) {
	a := cellCenter(10, 10)
	b := cellCenter(10, 11)

	// One row apart is two columns once aspect is undone
	if Overlap(&a, &b, vmath.FromFloat(0.9), vmath.FromFloat(0.9), vmath.Half) {
		t.Error("expected no contact at 1.8 columns radius sum")
	}
	if !Overlap(&a, &b, vmath.FromInt(1), vmath.FromInt(1), vmath.Half) {
		t.Error("expected contact at 2 columns radius sum")
	}
}

func TestLaunch(t *testing.T) {
	k := core.Kinetic{}
	Launch(&k, vmath.Scale/4, vmath.FromInt(20), vmath.Half, vmath.FromInt(1), 0)
	if got := vmath.ToFloat(k.VelX); got < 20.9 || got > 21.1 {
		t.Errorf("VelX = %v, want ~21", got)
	}
}

func cellCenter(x, y int) core.Kinetic {
	return core.Kinetic{
		PreciseX: vmath.FromInt(x) + vmath.Half,
		PreciseY: vmath.FromInt(y) + vmath.Half,
	}
}
