package preview

import (
	"strings"

	"github.com/grindlemire/layerkit/internal/layout"
	"github.com/mattn/go-runewidth"
)

// Cell is one character cell. Wide runes occupy two cells; the second is a
// continuation with Width 0.
type Cell struct {
	Rune  rune
	Width uint8
}

var blank = Cell{Rune: ' ', Width: 1}

// IsContinuation reports whether c is the right half of a wide rune.
func (c Cell) IsContinuation() bool { return c.Width == 0 }

// Grid is a fixed-size 2D grid of cells.
type Grid struct {
	cells  []Cell
	width  int
	height int
}

// NewGrid returns a grid filled with spaces. Negative sizes are treated as
// zero.
func NewGrid(width, height int) *Grid {
	width, height = max(width, 0), max(height, 0)
	g := &Grid{cells: make([]Cell, width*height), width: width, height: height}
	for i := range g.cells {
		g.cells[i] = blank
	}
	return g
}

// Rect returns the bounds of the grid.
func (g *Grid) Rect() layout.Rect { return layout.NewRect(0, 0, g.width, g.height) }

func (g *Grid) idx(x, y int) int {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return -1
	}
	return y*g.width + x
}

// Cell returns the cell at (x, y), or the zero Cell out of bounds.
func (g *Grid) Cell(x, y int) Cell {
	i := g.idx(x, y)
	if i < 0 {
		return Cell{}
	}
	return g.cells[i]
}

func (g *Grid) set(x, y int, c Cell) {
	if i := g.idx(x, y); i >= 0 {
		g.cells[i] = c
	}
}

// clearWide blanks the wide rune covering (x, y), if any.
func (g *Grid) clearWide(x, y int) {
	switch c := g.Cell(x, y); {
	case c.IsContinuation():
		g.set(x-1, y, blank)
		g.set(x, y, blank)
	case c.Width == 2:
		g.set(x, y, blank)
		g.set(x+1, y, blank)
	}
}

// SetRune writes r at (x, y). A wide rune that would cross the right edge
// is written as a space. Wide runes it overlaps are cleared.
func (g *Grid) SetRune(x, y int, r rune) {
	if g.idx(x, y) < 0 {
		return
	}
	w := runewidth.RuneWidth(r)
	if w < 1 {
		w = 1
	}
	g.clearWide(x, y)
	if w == 2 {
		if x+1 >= g.width {
			g.set(x, y, blank)
			return
		}
		g.clearWide(x+1, y)
		g.set(x, y, Cell{Rune: r, Width: 2})
		g.set(x+1, y, Cell{})
		return
	}
	g.set(x, y, Cell{Rune: r, Width: 1})
}

// SetString writes s from (x, y) without wrapping, clipped to clip. It
// returns the width written.
func (g *Grid) SetString(x, y int, s string, clip layout.Rect) int {
	clip = clip.Intersect(g.Rect())
	if y < clip.Y || y >= clip.Bottom() {
		return 0
	}
	written := 0
	for _, r := range s {
		w := max(runewidth.RuneWidth(r), 1)
		if x >= clip.Right() {
			break
		}
		if x >= clip.X && x+w <= clip.Right() {
			g.SetRune(x, y, r)
			written += w
		}
		x += w
	}
	return written
}

// Fill sets every cell of r to ch.
func (g *Grid) Fill(r layout.Rect, ch rune) {
	r = r.Intersect(g.Rect())
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			g.SetRune(x, y, ch)
		}
	}
}

// Border is the set of runes used to draw a box.
type Border struct {
	TopLeft, Top, TopRight          rune
	Left, Right                     rune
	BottomLeft, Bottom, BottomRight rune
}

// Box-drawing borders.
var (
	RoundedBorder = Border{'╭', '─', '╮', '│', '│', '╰', '─', '╯'}
	NormalBorder  = Border{'┌', '─', '┐', '│', '│', '└', '─', '┘'}
	ThickBorder   = Border{'┏', '━', '┓', '┃', '┃', '┗', '━', '┛'}
)

// DrawBox clears r and draws b around its edge. Rects narrower or shorter
// than two cells are filled with the top rune instead.
func (g *Grid) DrawBox(r layout.Rect, b Border) {
	if r.IsEmpty() {
		return
	}
	if r.Width < 2 || r.Height < 2 {
		g.Fill(r, b.Top)
		return
	}
	g.Fill(r, ' ')
	right, bottom := r.Right()-1, r.Bottom()-1
	for x := r.X + 1; x < right; x++ {
		g.SetRune(x, r.Y, b.Top)
		g.SetRune(x, bottom, b.Bottom)
	}
	for y := r.Y + 1; y < bottom; y++ {
		g.SetRune(r.X, y, b.Left)
		g.SetRune(right, y, b.Right)
	}
	g.SetRune(r.X, r.Y, b.TopLeft)
	g.SetRune(right, r.Y, b.TopRight)
	g.SetRune(r.X, bottom, b.BottomLeft)
	g.SetRune(right, bottom, b.BottomRight)
}

// String returns the grid as lines joined by newlines, with trailing spaces
// trimmed.
func (g *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		var line strings.Builder
		for x := 0; x < g.width; x++ {
			c := g.cells[y*g.width+x]
			if c.IsContinuation() {
				continue
			}
			line.WriteRune(c.Rune)
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		if y < g.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
