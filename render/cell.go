package render

import "github.com/gdamore/tcell/v2"

// Cell is one composited screen cell
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs tcell.AttrMask
}

// tcellColor converts a compositor color for output
func tcellColor(c RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Style builds the tcell style of a cell
func (c Cell) Style() tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcellColor(c.Fg)).
		Background(tcellColor(c.Bg)).
		Attributes(c.Attrs)
}
