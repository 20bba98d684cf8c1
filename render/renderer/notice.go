package renderer

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/kataster/render"
)

// NoticeRenderer replaces the frame with a resize hint when the screen cannot hold the arena
type NoticeRenderer struct{}

func NewNoticeRenderer() *NoticeRenderer {
	return &NoticeRenderer{}
}

func (r *NoticeRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if !ctx.TooSmall() {
		return
	}
	lines := []string{
		"terminal too small",
		fmt.Sprintf("need %dx%d, have %dx%d", ctx.ArenaWidth+2, ctx.ArenaHeight+2, ctx.ScreenWidth, ctx.ScreenHeight),
	}
	y := ctx.ScreenHeight/2 - len(lines)/2
	for i, line := range lines {
		x := (ctx.ScreenWidth - runewidth.StringWidth(line)) / 2
		if x < 0 {
			x = 0
		}
		buf.SetText(x, y+i, line, render.RgbNotice, tcell.AttrBold)
	}
}
