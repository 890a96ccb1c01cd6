package layerkit

import "github.com/grindlemire/layerkit/internal/layout"

// HitTest returns the buttons under p, topmost first. Layers are walked in
// list order and each layer's buttons from last to first; hidden layers and
// layers or buttons whose visibility rule hides them are skipped. Sizes come
// from the last Measure.
//
// Unless every hit button is both swipeable and penetrable, the result is
// cut after the first button that is not, and swipeable penetrable buttons
// are dropped from it.
func (e *Engine) HitTest(l *ObservableLayout, p layout.Point, container layout.Size, grabbing bool) []*ObservableNormalData {
	var hits []*ObservableNormalData
	for _, layer := range l.Layers.Items() {
		if !layer.Shown(grabbing) {
			continue
		}
		buttons := layer.NormalButtons.Items()
		for i := len(buttons) - 1; i >= 0; i-- {
			b := buttons[i]
			if !b.Visible(grabbing) {
				continue
			}
			if within(e.Bounds(b, container), p) {
				hits = append(hits, b)
			}
		}
	}

	stop := -1
	for i, b := range hits {
		if !passThrough(b) {
			stop = i
			break
		}
	}
	if stop < 0 {
		return hits
	}
	out := make([]*ObservableNormalData, 0, stop+1)
	for _, b := range hits[:stop+1] {
		if !passThrough(b) {
			out = append(out, b)
		}
	}
	return out
}

// passThrough reports whether b is both swipeable and penetrable.
func passThrough(b *ObservableNormalData) bool {
	return b.IsSwipple.Get() && b.IsPenetrable.Get()
}

// within is an edge-inclusive containment test.
func within(r layout.Rect, p layout.Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}
