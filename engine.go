package layerkit

import (
	"sync"

	"github.com/grindlemire/layerkit/control"
	"github.com/grindlemire/layerkit/internal/debug"
	"github.com/grindlemire/layerkit/internal/layout"
	"golang.org/x/text/language"
)

// Geometry types used in the public API.
type (
	Size  = layout.Size
	Point = layout.Point
	Rect  = layout.Rect
)

// Options configures an Engine.
type Options struct {
	// Density converts dp to pixels. Zero means 1.
	Density float64
	// Measurer sizes wrap-content widgets. Nil means DefaultMeasurer.
	Measurer TextMeasurer
	// Locale picks the label text measured for wrap-content widgets.
	Locale language.Tag
	// BottomUp walks layers from the last to the first, for painters that
	// draw the bottom layer first.
	BottomUp bool
}

// Placement is where a widget ends up inside the container.
type Placement struct {
	Widget ObservableWidget
	Layer  *ObservableLayer
	Rect   layout.Rect
}

// Engine measures and places the widgets of a layout. It remembers the last
// measured size of every widget for hit testing and dragging. An Engine is
// safe for concurrent use.
type Engine struct {
	opts Options

	mu    sync.RWMutex
	sizes map[ObservableWidget]layout.Size
}

// NewEngine creates an engine.
func NewEngine(opts Options) *Engine {
	if opts.Density <= 0 {
		opts.Density = 1
	}
	if opts.Measurer == nil {
		opts.Measurer = DefaultMeasurer
	}
	return &Engine{opts: opts, sizes: make(map[ObservableWidget]layout.Size)}
}

// Density returns the dp to pixel factor.
func (e *Engine) Density() float64 { return e.opts.Density }

type entry struct {
	widget ObservableWidget
	layer  *ObservableLayer
}

// collect walks the layers that are not hidden, buttons before labels.
// Visibility rules are left to the caller.
func (e *Engine) collect(l *ObservableLayout) []entry {
	layers := l.Layers.Items()
	var out []entry
	for i := range layers {
		layer := layers[i]
		if e.opts.BottomUp {
			layer = layers[len(layers)-1-i]
		}
		if layer.Hide.Get() {
			continue
		}
		for _, w := range layer.Widgets() {
			out = append(out, entry{widget: w, layer: layer})
		}
	}
	return out
}

// Collect returns the widgets of every layer that is not hidden, in
// traversal order.
func (e *Engine) Collect(l *ObservableLayout) []ObservableWidget {
	entries := e.collect(l)
	out := make([]ObservableWidget, len(entries))
	for i, en := range entries {
		out[i] = en.widget
	}
	return out
}

// Measure sizes every widget in order and caches the results, replacing
// the previous cache.
func (e *Engine) Measure(widgets []ObservableWidget, container layout.Size) []layout.Size {
	sizes := make([]layout.Size, len(widgets))
	cache := make(map[ObservableWidget]layout.Size, len(widgets))
	for i, w := range widgets {
		s := e.MeasureWidget(w, container)
		sizes[i] = s
		cache[w] = s
	}
	e.mu.Lock()
	e.sizes = cache
	e.mu.Unlock()
	return sizes
}

// MeasureWidget resolves the pixel size of w without caching it. The
// result never exceeds the container.
func (e *Engine) MeasureWidget(w ObservableWidget, container layout.Size) layout.Size {
	d := w.Common()
	bs := d.ButtonSize.Get()

	var s layout.Size
	switch bs.Type {
	case control.SizeDp:
		s = layout.Size{
			Width:  layout.Dp(bs.WidthDp).Resolve(0, e.opts.Density, 0),
			Height: layout.Dp(bs.HeightDp).Resolve(0, e.opts.Density, 0),
		}
	case control.SizePercentage:
		s = layout.Size{
			Width:  layout.PerMille(bs.WidthPercentage).Resolve(reference(bs.WidthReference, container), e.opts.Density, 0),
			Height: layout.PerMille(bs.HeightPercentage).Resolve(reference(bs.HeightReference, container), e.opts.Density, 0),
		}
	default:
		s = e.opts.Measurer.MeasureText(d.Text.Translate(e.opts.Locale), d.TextBold.Get())
	}
	return s.ClampTo(container)
}

func reference(r control.Reference, container layout.Size) int {
	if r == control.ReferenceScreenWidth {
		return container.Width
	}
	return container.Height
}

// Place positions widgets using sizes from Measure. It walks the layout
// again in the same order and stops early if fewer sizes than widgets are
// given, for example when widgets were removed after measuring.
func (e *Engine) Place(l *ObservableLayout, sizes []layout.Size, container layout.Size) []Placement {
	entries := e.collect(l)
	out := make([]Placement, 0, len(entries))
	for i, en := range entries {
		if i >= len(sizes) {
			debug.Log("Engine.Place: %d sizes for %d widgets, stopping", len(sizes), len(entries))
			break
		}
		pos := WidgetOffset(en.widget, sizes[i], container)
		out = append(out, Placement{
			Widget: en.widget,
			Layer:  en.layer,
			Rect:   layout.RectAt(pos, sizes[i]),
		})
	}
	return out
}

// Arrange collects, measures and places the widgets of l.
func (e *Engine) Arrange(l *ObservableLayout, container layout.Size) []Placement {
	sizes := e.Measure(e.Collect(l), container)
	return e.Place(l, sizes, container)
}

// Size returns the cached size of w from the last Measure.
func (e *Engine) Size(w ObservableWidget) (layout.Size, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	s, ok := e.sizes[w]
	return s, ok
}

// Bounds returns the rect of w from its cached size, or an empty rect at
// its position when w has not been measured.
func (e *Engine) Bounds(w ObservableWidget, container layout.Size) layout.Rect {
	s, _ := e.Size(w)
	return layout.RectAt(WidgetOffset(w, s, container), s)
}

// WidgetOffset returns the top-left corner of a widget of the given size.
// A widget being dragged sits at its moving offset.
func WidgetOffset(w ObservableWidget, size, container layout.Size) layout.Point {
	d := w.Common()
	if d.EditingPos.Get() {
		return d.MovingOffset.Get()
	}
	return PositionOffset(d.Position.Get(), size, container)
}

// PositionOffset converts a basis-point position to pixels.
func PositionOffset(p control.Position, size, container layout.Size) layout.Point {
	return layout.Point{
		X: layout.Offset(container.Width, size.Width, p.XPercentage()),
		Y: layout.Offset(container.Height, size.Height, p.YPercentage()),
	}
}

// OffsetPosition converts a pixel offset back to a basis-point position.
func OffsetPosition(p layout.Point, size, container layout.Size) control.Position {
	return control.Position{
		X: layout.Fraction(p.X, container.Width, size.Width),
		Y: layout.Fraction(p.Y, container.Height, size.Height),
	}
}
