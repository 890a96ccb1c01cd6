package preview

import (
	"github.com/grindlemire/layerkit/internal/layout"
	"github.com/mattn/go-runewidth"
)

// Item is one placed widget.
type Item struct {
	Rect   layout.Rect // pixels inside the container
	Label  string
	Button bool
}

// Render scales items from a container measured in pixels down to a grid of
// cols by rows cells and draws each as a labelled box. The first item is
// drawn last, so it ends up on top.
func Render(items []Item, container layout.Size, cols, rows int) *Grid {
	g := NewGrid(cols, rows)
	if container.Width <= 0 || container.Height <= 0 {
		return g
	}
	for i := len(items) - 1; i >= 0; i-- {
		it := items[i]
		r := scale(it.Rect, container, cols, rows)
		border := NormalBorder
		if it.Button {
			border = RoundedBorder
		}
		g.DrawBox(r, border)
		label(g, r, it.Label)
	}
	return g
}

// scale maps a pixel rect to cells. Every rect keeps at least one cell.
func scale(r layout.Rect, container layout.Size, cols, rows int) layout.Rect {
	x0 := r.X * cols / container.Width
	x1 := r.Right() * cols / container.Width
	y0 := r.Y * rows / container.Height
	y1 := r.Bottom() * rows / container.Height
	return layout.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// label centers s on the middle row inside the border of r.
func label(g *Grid, r layout.Rect, s string) {
	if s == "" || r.Width < 3 || r.Height < 3 {
		return
	}
	inner := layout.NewRect(r.X+1, r.Y+1, r.Width-2, r.Height-2)
	s = runewidth.Truncate(s, inner.Width, "")
	x := inner.X + (inner.Width-runewidth.StringWidth(s))/2
	g.SetString(x, r.Y+r.Height/2, s, inner)
}
