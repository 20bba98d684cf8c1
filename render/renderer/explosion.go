package renderer

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/kataster/core"
	"github.com/lixenwraith/kataster/engine"
	"github.com/lixenwraith/kataster/parameter"
	"github.com/lixenwraith/kataster/physics"
	"github.com/lixenwraith/kataster/render"
)

// Density glyphs per sheet row, the burst thins out as it ages
var explosionGlyphs = [parameter.ExplosionSheetRows]rune{'█', '▓', '▒', '░'}

// ExplosionRenderer draws sprite-sheet explosions as expanding, fading rings
// Sheet row selects glyph density, the last two rows leave the centre hollow
type ExplosionRenderer struct {
	world *engine.World
}

func NewExplosionRenderer(world *engine.World) *ExplosionRenderer {
	return &ExplosionRenderer{world: world}
}

func (r *ExplosionRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	store := r.world.Components.Explosion
	for _, e := range store.GetAllEntities() {
		ex, ok := store.GetComponent(e)
		if !ok {
			continue
		}
		k := core.Kinetic{PreciseX: ex.X, PreciseY: ex.Y}
		x, y := physics.GridPos(&k)
		r.draw(ctx, buf, ex.Kind, ex.Frame, x, y)
	}
}

func (r *ExplosionRenderer) draw(ctx render.RenderContext, buf *render.RenderBuffer, kind core.ExplosionKind, frame, x, y int) {
	if frame < 0 || frame >= parameter.ExplosionFrameCount {
		return
	}
	palette := render.ExplosionPalettes[0]
	if int(kind) >= 0 && int(kind) < len(render.ExplosionPalettes) {
		palette = render.ExplosionPalettes[kind]
	}

	progress := float64(frame+1) / parameter.ExplosionFrameCount
	radius := ExplosionRadius(kind) * progress
	inner := 0.0
	if frame/parameter.ExplosionSheetColumns >= 2 {
		inner = radius * 0.5
	}
	fade := 1 - float64(frame)/parameter.ExplosionFrameCount
	glyph := explosionGlyphs[frame/parameter.ExplosionSheetColumns]

	rx := int(math.Ceil(radius))
	ry := int(math.Ceil(radius * parameter.CellAspect))
	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			d := math.Hypot(float64(dx), float64(dy)/parameter.CellAspect)
			if d > radius || d < inner {
				continue
			}
			sx, sy, ok := ctx.ArenaToScreen(x+dx, y+dy)
			if !ok {
				continue
			}
			t := 0.0
			if radius > 0 {
				t = d / radius
			}
			var fg render.RGB
			if t < 0.5 {
				fg = palette.Core.Lerp(palette.Mid, t*2)
			} else {
				fg = palette.Mid.Lerp(palette.Edge, (t-0.5)*2)
			}
			fg = fg.Scale(fade)
			buf.Set(sx, sy, glyph, fg, fg.Scale(0.25), render.BlendMax, 1, tcell.AttrNone)
		}
	}
}

// ExplosionRadius is the final burst radius in columns for a kind
func ExplosionRadius(kind core.ExplosionKind) float64 {
	switch kind {
	case core.ExplosionShipDead:
		return 6
	case core.ExplosionShipContact, core.ExplosionEnemy:
		return 4
	default:
		return 3
	}
}
