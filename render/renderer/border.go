package renderer

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/kataster/render"
)

// BorderRenderer frames the arena
type BorderRenderer struct{}

func NewBorderRenderer() *BorderRenderer {
	return &BorderRenderer{}
}

func (r *BorderRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	left, top := ctx.ArenaX-1, ctx.ArenaY-1
	right, bottom := ctx.ArenaX+ctx.ArenaWidth, ctx.ArenaY+ctx.ArenaHeight
	fg := render.RgbBorder
	if ctx.Paused {
		fg = fg.Scale(0.6)
	}

	for x := left + 1; x < right; x++ {
		buf.SetFgOnly(x, top, '─', fg, tcell.AttrNone)
		buf.SetFgOnly(x, bottom, '─', fg, tcell.AttrNone)
	}
	for y := top + 1; y < bottom; y++ {
		buf.SetFgOnly(left, y, '│', fg, tcell.AttrNone)
		buf.SetFgOnly(right, y, '│', fg, tcell.AttrNone)
	}
	buf.SetFgOnly(left, top, '┌', fg, tcell.AttrNone)
	buf.SetFgOnly(right, top, '┐', fg, tcell.AttrNone)
	buf.SetFgOnly(left, bottom, '└', fg, tcell.AttrNone)
	buf.SetFgOnly(right, bottom, '┘', fg, tcell.AttrNone)
}
