package layerkit

import (
	"strings"

	"github.com/grindlemire/layerkit/internal/layout"
	"github.com/mattn/go-runewidth"
)

// TextMeasurer sizes the label of a wrap-content widget.
type TextMeasurer interface {
	MeasureText(text string, bold bool) layout.Size
}

// CellMeasurer measures text on a fixed grid of character cells. East Asian
// wide characters take two cells.
type CellMeasurer struct {
	CellWidth  int // pixels per cell
	CellHeight int // pixels per line
	Padding    int // pixels added on every side
}

// DefaultMeasurer is used when Options.Measurer is nil.
var DefaultMeasurer = CellMeasurer{CellWidth: 8, CellHeight: 16, Padding: 4}

// MeasureText returns the size of the widest line by the number of lines.
// Bold text is one pixel wider per line.
func (m CellMeasurer) MeasureText(text string, bold bool) layout.Size {
	lines := strings.Split(text, "\n")
	widest := 0
	for _, line := range lines {
		widest = max(widest, runewidth.StringWidth(line))
	}
	w := widest * m.CellWidth
	if bold && widest > 0 {
		w++
	}
	return layout.Size{
		Width:  w + 2*m.Padding,
		Height: len(lines)*m.CellHeight + 2*m.Padding,
	}
}
