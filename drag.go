package layerkit

import (
	"github.com/grindlemire/layerkit/control"
	"github.com/grindlemire/layerkit/internal/layout"
)

// BeginDrag pins w at its current pixel offset so that it follows the
// pointer instead of its stored position.
func (e *Engine) BeginDrag(w ObservableWidget, container layout.Size) {
	d := w.Common()
	d.EditingPos.Set(false)
	size, _ := e.Size(w)
	d.MovingOffset.Set(WidgetOffset(w, size, container))
	d.EditingPos.Set(true)
}

// Drag moves w by delta pixels, keeping it inside the container, and stores
// the matching position. It returns the new position.
func (e *Engine) Drag(w ObservableWidget, delta layout.Point, container layout.Size) control.Position {
	d := w.Common()
	size, _ := e.Size(w)
	cur := WidgetOffset(w, size, container)
	next := layout.Point{
		X: layout.Clamp(cur.X+delta.X, 0, max(container.Width-size.Width, 0)),
		Y: layout.Clamp(cur.Y+delta.Y, 0, max(container.Height-size.Height, 0)),
	}
	pos := OffsetPosition(next, size, container)
	Batch(func() {
		d.MovingOffset.Set(next)
		d.Position.Set(pos)
	})
	return pos
}

// EndDrag returns w to its stored position.
func (e *Engine) EndDrag(w ObservableWidget) {
	d := w.Common()
	Batch(func() {
		d.EditingPos.Set(false)
		d.MovingOffset.Set(layout.Point{})
	})
}
