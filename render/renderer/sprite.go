package renderer

import (
	"cmp"
	"slices"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/kataster/component"
	"github.com/lixenwraith/kataster/core"
	"github.com/lixenwraith/kataster/engine"
	"github.com/lixenwraith/kataster/physics"
	"github.com/lixenwraith/kataster/render"
	"github.com/lixenwraith/kataster/vmath"
)

// glyphArt is multi-cell sprite art anchored at the entity's cell, spaces are transparent
type glyphArt struct {
	rows   []string
	cx, cy int // Anchor within rows
	fg     render.RGB
	wraps  bool // Cells past an edge reappear on the opposite side
}

var spriteArt = map[component.SpriteKind]glyphArt{
	component.SpritePlayerLaser: {rows: []string{"*"}, fg: render.RgbPlayerLaser},
	component.SpriteEnemyLaser:  {rows: []string{"|"}, fg: render.RgbEnemyLaser},
	component.SpriteEnemy:       {rows: []string{"<=O=>"}, cx: 2, fg: render.RgbEnemy},
	component.SpriteAsteroidSmall: {
		rows: []string{"@"},
		fg:   render.RgbAsteroid, wraps: true,
	},
	component.SpriteAsteroidMedium: {
		rows: []string{
			" .-. ",
			"(   )",
			" '-' ",
		},
		cx: 2, cy: 1, fg: render.RgbAsteroid, wraps: true,
	},
	component.SpriteAsteroidBig: {
		rows: []string{
			" _.-._ ",
			"(  .  )",
			" `-.-' ",
		},
		cx: 3, cy: 1, fg: render.RgbAsteroid, wraps: true,
	},
}

// Ship glyphs clockwise from up, one per eighth of a turn
var shipGlyphs = [8]rune{'▲', '◥', '▶', '◢', '▼', '◣', '◀', '◤'}

// Cell steps matching shipGlyphs directions
var octantSteps = [8][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}

// Draw order, later kinds overdraw earlier ones
var spriteLayer = map[component.SpriteKind]int{
	component.SpriteAsteroidBig:    0,
	component.SpriteAsteroidMedium: 1,
	component.SpriteAsteroidSmall:  2,
	component.SpriteEnemy:          3,
	component.SpriteEnemyLaser:     4,
	component.SpritePlayerLaser:    5,
	component.SpriteShip:           6,
}

type spriteEntry struct {
	entity core.Entity
	kind   component.SpriteKind
	x, y   int
}

// SpriteRenderer draws every visible sprite at its kinetic cell
type SpriteRenderer struct {
	world   *engine.World
	entries []spriteEntry
}

func NewSpriteRenderer(world *engine.World) *SpriteRenderer {
	return &SpriteRenderer{
		world:   world,
		entries: make([]spriteEntry, 0, 64),
	}
}

func (r *SpriteRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	c := &r.world.Components
	r.entries = r.entries[:0]
	for _, e := range r.world.Query().With(c.Sprite).With(c.Kinetic).Execute() {
		sprite, _ := c.Sprite.GetComponent(e)
		if sprite.Hidden || sprite.Kind == component.SpriteNone {
			continue
		}
		kin, _ := c.Kinetic.GetComponent(e)
		x, y := physics.GridPos(&kin.Kinetic)
		r.entries = append(r.entries, spriteEntry{entity: e, kind: sprite.Kind, x: x, y: y})
	}
	slices.SortFunc(r.entries, func(a, b spriteEntry) int {
		if d := spriteLayer[a.kind] - spriteLayer[b.kind]; d != 0 {
			return d
		}
		return cmp.Compare(a.entity, b.entity)
	})

	for _, s := range r.entries {
		if s.kind == component.SpriteShip {
			r.drawShip(ctx, buf, s)
			continue
		}
		art, ok := spriteArt[s.kind]
		if !ok {
			continue
		}
		drawArt(ctx, buf, art, s.x, s.y)
	}
}

func (r *SpriteRenderer) drawShip(ctx render.RenderContext, buf *render.RenderBuffer, s spriteEntry) {
	heading, _ := r.world.Components.Heading.GetComponent(s.entity)
	octant := ShipOctant(heading.Angle)

	if player, ok := r.world.Components.Player.GetComponent(s.entity); ok && player.Thrusting {
		step := octantSteps[octant]
		ex, ey := wrapCell(s.x-step[0], s.y-step[1], ctx.ArenaWidth, ctx.ArenaHeight)
		flame := '~'
		if ctx.FrameNumber%4 < 2 {
			flame = '^'
		}
		if sx, sy, ok := ctx.ArenaToScreen(ex, ey); ok {
			buf.SetFgOnly(sx, sy, flame, render.RgbThrust, tcell.AttrNone)
		}
	}

	if sx, sy, ok := ctx.ArenaToScreen(s.x, s.y); ok {
		buf.SetFgOnly(sx, sy, shipGlyphs[octant], render.RgbShip, tcell.AttrBold)
	}
}

// ShipOctant rounds a heading to the nearest of eight directions, 0 is up, clockwise
func ShipOctant(angle int64) int {
	a := vmath.WrapAngle(angle + vmath.Scale/16)
	return int(a/(vmath.Scale/8)) & 7
}

func drawArt(ctx render.RenderContext, buf *render.RenderBuffer, art glyphArt, x, y int) {
	for row, line := range art.rows {
		col := 0
		for _, ch := range line {
			if ch != ' ' {
				cx, cy := x+col-art.cx, y+row-art.cy
				if art.wraps {
					cx, cy = wrapCell(cx, cy, ctx.ArenaWidth, ctx.ArenaHeight)
				}
				if sx, sy, ok := ctx.ArenaToScreen(cx, cy); ok {
					buf.SetFgOnly(sx, sy, ch, art.fg, tcell.AttrNone)
				}
			}
			col++
		}
	}
}

func wrapCell(x, y, width, height int) (int, int) {
	if width > 0 {
		x = ((x % width) + width) % width
	}
	if height > 0 {
		y = ((y % height) + height) % height
	}
	return x, y
}
