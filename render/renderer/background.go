package renderer

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/kataster/render"
	"github.com/lixenwraith/kataster/system"
)

// StarSource provides the current starfield
type StarSource interface {
	Stars() []system.Star
}

// BackgroundRenderer draws the starfield, glyph and color by brightness
type BackgroundRenderer struct {
	stars StarSource
}

func NewBackgroundRenderer(stars StarSource) *BackgroundRenderer {
	return &BackgroundRenderer{stars: stars}
}

func (r *BackgroundRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for _, star := range r.stars.Stars() {
		if star.Brightness < 0.15 {
			continue
		}
		sx, sy, ok := ctx.ArenaToScreen(star.X, star.Y)
		if !ok {
			continue
		}
		buf.SetFgOnly(sx, sy, StarGlyph(star.Brightness), render.RgbStar.Scale(star.Brightness), tcell.AttrNone)
	}
}

// StarGlyph picks a glyph for a star brightness in [0, 1]
func StarGlyph(b float64) rune {
	switch {
	case b >= 0.85:
		return '*'
	case b >= 0.6:
		return '+'
	default:
		return '.'
	}
}
