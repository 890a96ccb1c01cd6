package layerkit

import (
	"slices"
	"sync"

	"github.com/grindlemire/layerkit/control"
	"github.com/grindlemire/layerkit/internal/layout"
)

// ClickHandler receives every click event of a button whose press state
// changed, together with the new state.
type ClickHandler func(ev control.ClickEvent, pressed bool)

// PointerID identifies one touch pointer for the length of its gesture.
type PointerID int64

// PointerEvent is one pointer sample.
type PointerEvent struct {
	ID       PointerID
	Position layout.Point
	Pressed  bool // false when the pointer is lifted
}

// Presser drives the press state of buttons and fires their click events.
// Switch-layer events are applied to the layout before the handler runs.
type Presser struct {
	Layout  *ObservableLayout
	OnClick ClickHandler
}

// PressStart presses d, or flips it when it is a toggle button. A held
// button that is pressed again does nothing.
func (p Presser) PressStart(d *ObservableNormalData) {
	toggle := d.IsToggleable.Get()
	if d.IsPressed.Get() && !toggle {
		return
	}
	if toggle {
		d.IsPressed.Set(!d.IsPressed.Get())
	} else {
		d.IsPressed.Set(true)
	}
	pressed := d.IsPressed.Get()
	for _, ev := range d.ClickEvents.Items() {
		if ev.Type == control.EventSwitchLayer && p.Layout != nil {
			if layer, ok := p.Layout.Layer(ev.Key); ok {
				if toggle {
					layer.Hide.Set(pressed)
				} else {
					layer.Hide.Set(!layer.Hide.Get())
				}
			}
		}
		p.emit(ev, pressed)
	}
}

// PressEnd releases d. Toggle buttons keep their state but still report
// their events.
func (p Presser) PressEnd(d *ObservableNormalData) {
	toggle := d.IsToggleable.Get()
	if !d.IsPressed.Get() && !toggle {
		return
	}
	if !toggle {
		d.IsPressed.Set(false)
	}
	pressed := d.IsPressed.Get()
	for _, ev := range d.ClickEvents.Items() {
		p.emit(ev, pressed)
	}
}

func (p Presser) emit(ev control.ClickEvent, pressed bool) {
	if p.OnClick != nil {
		p.OnClick(ev, pressed)
	}
}

// Pointers tracks the buttons held by each touch pointer.
type Pointers struct {
	Presser
	Engine    *Engine
	Container layout.Size
	Grabbing  func() bool

	// Occupied reports pointers already claimed by something below the
	// overlay. Such pointers only reach swipeable penetrable buttons.
	Occupied func(PointerID) bool
	// MarkMoveOnly is told about pointers that pressed a penetrable
	// button, so whatever is below only treats them as movement.
	MarkMoveOnly func(PointerID)

	mu     sync.Mutex
	active map[PointerID][]*ObservableNormalData
}

// NewPointers returns a tracker for l using sizes measured by e.
func NewPointers(l *ObservableLayout, e *Engine, container layout.Size, onClick ClickHandler) *Pointers {
	return &Pointers{
		Presser:   Presser{Layout: l, OnClick: onClick},
		Engine:    e,
		Container: container,
		active:    make(map[PointerID][]*ObservableNormalData),
	}
}

// Active returns the buttons currently held by pointer id.
func (p *Pointers) Active(id PointerID) []*ObservableNormalData {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.active[id])
}

// press is a deferred PressStart (start) or PressEnd.
type press struct {
	b     *ObservableNormalData
	start bool
}

// Handle processes one pointer sample and reports whether it was consumed
// by a button that does not let touches through. Callbacks run after the
// tracker's bookkeeping is done, so they may call back into it.
func (p *Pointers) Handle(ev PointerEvent) bool {
	var presses []press
	consumed, moveOnly := false, false
	if !ev.Pressed {
		p.mu.Lock()
		presses = releaseAll(p.active[ev.ID])
		delete(p.active, ev.ID)
		p.mu.Unlock()
	} else {
		grabbing := p.Grabbing != nil && p.Grabbing()
		occupied := p.Occupied != nil && p.Occupied(ev.ID)
		targets := p.Engine.HitTest(p.Layout, ev.Position, p.Container, grabbing)

		p.mu.Lock()
		presses, consumed, moveOnly = p.track(ev, targets, occupied)
		p.mu.Unlock()
	}

	if moveOnly && p.MarkMoveOnly != nil {
		p.MarkMoveOnly(ev.ID)
	}
	p.apply(presses)
	return consumed
}

// track updates the held buttons of ev.ID and returns the presses to apply.
// The caller holds p.mu.
func (p *Pointers) track(ev PointerEvent, targets []*ObservableNormalData, occupied bool) (presses []press, consumed, moveOnly bool) {
	if occupied && slices.ContainsFunc(targets, func(b *ObservableNormalData) bool { return !passThrough(b) }) {
		return nil, false, false
	}
	held := p.active[ev.ID]
	fresh := len(held) == 0

	for _, b := range targets {
		switch {
		case fresh:
			p.active[ev.ID] = append(p.active[ev.ID], b)
			if !b.IsPenetrable.Get() {
				consumed = true
			} else {
				moveOnly = true
			}
			presses = append(presses, press{b: b, start: true})
		case !slices.Contains(p.active[ev.ID], b) && b.IsSwipple.Get() && allSwipeable(p.active[ev.ID]):
			p.active[ev.ID] = append(p.active[ev.ID], b)
			presses = append(presses, press{b: b, start: true})
		}
		if consumed {
			break
		}
	}

	// Swipeable buttons held before this sample follow the pointer: leaving
	// one releases it and coming back presses it again.
	for _, b := range held {
		if !b.IsSwipple.Get() || b.IsToggleable.Get() {
			continue
		}
		presses = append(presses, press{b: b, start: within(p.Engine.Bounds(b, p.Container), ev.Position)})
	}
	return presses, consumed, moveOnly
}

func (p *Pointers) apply(presses []press) {
	for _, pr := range presses {
		if pr.start {
			p.PressStart(pr.b)
		} else {
			p.PressEnd(pr.b)
		}
	}
}

func releaseAll(held []*ObservableNormalData) []press {
	out := make([]press, len(held))
	for i, b := range held {
		out[i] = press{b: b}
	}
	return out
}

// Reset releases every held button.
func (p *Pointers) Reset() {
	p.mu.Lock()
	var presses []press
	for id, held := range p.active {
		presses = append(presses, releaseAll(held)...)
		delete(p.active, id)
	}
	p.mu.Unlock()
	p.apply(presses)
}

func allSwipeable(bs []*ObservableNormalData) bool {
	for _, b := range bs {
		if !b.IsSwipple.Get() {
			return false
		}
	}
	return true
}
