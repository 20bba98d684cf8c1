package renderer

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/kataster/component"
	"github.com/lixenwraith/kataster/engine"
	"github.com/lixenwraith/kataster/render"
)

// TextRenderer draws menu lines and HUD fields
type TextRenderer struct {
	world *engine.World
}

func NewTextRenderer(world *engine.World) *TextRenderer {
	return &TextRenderer{world: world}
}

func (r *TextRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	store := r.world.Components.UIText
	for _, e := range store.GetAllEntities() {
		text, ok := store.GetComponent(e)
		if !ok || text.Text == "" {
			continue
		}
		x, y := TextOrigin(text, ctx.ArenaWidth, ctx.ArenaHeight)
		fg, attrs := textStyle(text.Style)
		buf.SetText(ctx.ArenaX+x, ctx.ArenaY+y, text.Text, fg, attrs)
	}
}

// TextOrigin resolves a text's arena cell from its row, column and alignment
func TextOrigin(text component.UITextComponent, width, height int) (x, y int) {
	y = text.Row
	if y < 0 {
		y += height
	}
	n := runewidth.StringWidth(text.Text)
	switch {
	case text.Centered:
		x = (width - n) / 2
	case text.Col < 0:
		x = width + text.Col - n
	default:
		x = text.Col
	}
	if x < 0 {
		x = 0
	}
	return x, y
}

func textStyle(style component.UIStyle) (render.RGB, tcell.AttrMask) {
	switch style {
	case component.UIStyleTitle:
		return render.RgbTitle, tcell.AttrBold
	case component.UIStylePrompt:
		return render.RgbPrompt, tcell.AttrBold
	case component.UIStyleHUD:
		return render.RgbHUD, tcell.AttrNone
	default:
		return render.RgbInfo, tcell.AttrNone
	}
}
