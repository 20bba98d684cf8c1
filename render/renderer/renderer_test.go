package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/kataster/component"
	"github.com/lixenwraith/kataster/core"
	"github.com/lixenwraith/kataster/engine"
	"github.com/lixenwraith/kataster/parameter"
	"github.com/lixenwraith/kataster/render"
	"github.com/lixenwraith/kataster/system"
	"github.com/lixenwraith/kataster/vmath"
)

const (
	arenaW  = 40
	arenaH  = 20
	screenW = 50
	screenH = 26
)

// frame returns a world, a buffer sized to the screen and a context with the arena at (5, 3)
func frame(t *testing.T) (*engine.World, *render.RenderBuffer, render.RenderContext) {
	t.Helper()
	w, _ := engine.NewTestWorld(arenaW, arenaH)
	ctx := render.NewRenderContext(w, screenW, screenH)
	require.Equal(t, 5, ctx.ArenaX)
	require.Equal(t, 3, ctx.ArenaY)
	return w, render.NewRenderBuffer(screenW, screenH), ctx
}

func runeAt(buf *render.RenderBuffer, ctx render.RenderContext, x, y int) rune {
	c, _ := buf.Get(ctx.ArenaX+x, ctx.ArenaY+y)
	return c.Rune
}

func TestShipOctant(t *testing.T) {
	tests := []struct {
		turn float64
		want int
	}{
		{0, 0},
		{0.05, 0},
		{0.125, 1},
		{0.25, 2},
		{0.5, 4},
		{0.75, 6},
		{0.96, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ShipOctant(vmath.FromFloat(tt.turn)), "turn %v", tt.turn)
	}
}

func TestSpriteShipAndThrust(t *testing.T) {
	w, buf, ctx := frame(t)
	e := system.SpawnShip(w, false)
	heading, _ := w.Components.Heading.GetComponent(e)
	heading.Angle = vmath.FromFloat(0.25)
	w.Components.Heading.SetComponent(e, heading)
	w.Components.Player.SetComponent(e, component.PlayerComponent{Thrusting: true})

	NewSpriteRenderer(w).Render(ctx, buf)

	assert.Equal(t, '▶', runeAt(buf, ctx, arenaW/2, arenaH/2))
	flame := runeAt(buf, ctx, arenaW/2-1, arenaH/2)
	assert.Contains(t, []rune{'~', '^'}, flame, "exhaust trails opposite the heading")
}

func TestSpriteHiddenSkipped(t *testing.T) {
	w, buf, ctx := frame(t)
	e := system.SpawnShip(w, true)
	sprite, _ := w.Components.Sprite.GetComponent(e)
	sprite.Hidden = true
	w.Components.Sprite.SetComponent(e, sprite)

	NewSpriteRenderer(w).Render(ctx, buf)
	assert.Equal(t, rune(0), runeAt(buf, ctx, arenaW/2, arenaH/2))
}

func TestAsteroidArtWraps(t *testing.T) {
	w, buf, ctx := frame(t)
	system.SpawnAsteroid(w, parameter.AsteroidBig, 0, vmath.FromInt(10), 0, 0)

	NewSpriteRenderer(w).Render(ctx, buf)

	assert.Equal(t, '(', runeAt(buf, ctx, arenaW-3, 10), "left edge of the big art wraps to the right side")
	assert.Equal(t, ')', runeAt(buf, ctx, 3, 10))
	assert.Equal(t, '.', runeAt(buf, ctx, 0, 10))
}

func TestExplosionGrowsAndFades(t *testing.T) {
	w, buf, ctx := frame(t)
	e := w.CreateEntity()
	x, y := vmath.FromInt(20), vmath.FromInt(10)
	w.Components.Explosion.SetComponent(e, component.ExplosionComponent{Kind: core.ExplosionShipDead, X: x, Y: y, Frame: 0})

	r := NewExplosionRenderer(w)
	r.Render(ctx, buf)
	early, _ := buf.Get(ctx.ArenaX+20, ctx.ArenaY+10)
	assert.Equal(t, '█', early.Rune)

	buf.Clear()
	w.Components.Explosion.SetComponent(e, component.ExplosionComponent{Kind: core.ExplosionShipDead, X: x, Y: y, Frame: 15})
	r.Render(ctx, buf)
	edge, _ := buf.Get(ctx.ArenaX+26, ctx.ArenaY+10)
	assert.Equal(t, '░', edge.Rune, "late frames reach the full radius")
	centre, _ := buf.Get(ctx.ArenaX+20, ctx.ArenaY+10)
	assert.Equal(t, rune(0), centre.Rune, "late frames are hollow")
	assert.Less(t, int(edge.Fg.R), int(early.Fg.R))
}

func TestTextOrigin(t *testing.T) {
	tests := []struct {
		name  string
		text  component.UITextComponent
		wantX int
		wantY int
	}{
		{"left", component.UITextComponent{Text: "SCORE", Row: 0, Col: 1}, 1, 0},
		{"right", component.UITextComponent{Text: "LIVES", Row: 0, Col: -1}, arenaW - 6, 0},
		{"centred", component.UITextComponent{Text: "PAUSED", Row: 5, Centered: true}, (arenaW - 6) / 2, 5},
		{"bottom", component.UITextComponent{Text: "x", Row: -2, Centered: true}, (arenaW - 1) / 2, arenaH - 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := TextOrigin(tt.text, arenaW, arenaH)
			assert.Equal(t, tt.wantX, x)
			assert.Equal(t, tt.wantY, y)
		})
	}
}

func TestTextRenderer(t *testing.T) {
	w, buf, ctx := frame(t)
	system.GameOverMenu(w)
	NewTextRenderer(w).Render(ctx, buf)

	x, y := TextOrigin(component.UITextComponent{Text: "GAME OVER", Row: arenaH / 2, Centered: true}, arenaW, arenaH)
	assert.Equal(t, 'G', runeAt(buf, ctx, x, y))
	c, _ := buf.Get(ctx.ArenaX+x, ctx.ArenaY+y)
	assert.Equal(t, render.RgbTitle, c.Fg)
}

type fixedStars []system.Star

func (f fixedStars) Stars() []system.Star { return f }

func TestBackgroundRenderer(t *testing.T) {
	_, buf, ctx := frame(t)
	stars := fixedStars{{X: 1, Y: 1, Brightness: 1}, {X: 2, Y: 1, Brightness: 0.05}, {X: 3, Y: 1, Brightness: 0.7}}
	NewBackgroundRenderer(stars).Render(ctx, buf)

	assert.Equal(t, '*', runeAt(buf, ctx, 1, 1))
	assert.Equal(t, rune(0), runeAt(buf, ctx, 2, 1), "faint stars are not drawn")
	assert.Equal(t, '+', runeAt(buf, ctx, 3, 1))
}

func TestBorderAndNotice(t *testing.T) {
	_, buf, ctx := frame(t)
	NewBorderRenderer().Render(ctx, buf)
	NewNoticeRenderer().Render(ctx, buf)

	corner, _ := buf.Get(ctx.ArenaX-1, ctx.ArenaY-1)
	assert.Equal(t, '┌', corner.Rune)
	corner, _ = buf.Get(ctx.ArenaX+arenaW, ctx.ArenaY+arenaH)
	assert.Equal(t, '┘', corner.Rune)

	w, _ := engine.NewTestWorld(arenaW, arenaH)
	small := render.NewRenderContext(w, 30, 10)
	sbuf := render.NewRenderBuffer(30, 10)
	NewNoticeRenderer().Render(small, sbuf)
	found := false
	for x := 0; x < 30; x++ {
		if c, _ := sbuf.Get(x, 4); c.Rune == 't' {
			found = true
			break
		}
	}
	assert.True(t, found, "notice drawn on the middle rows")
}
