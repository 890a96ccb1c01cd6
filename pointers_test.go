package layerkit

import (
	"testing"
	"time"

	"github.com/grindlemire/layerkit/control"
	"github.com/grindlemire/layerkit/internal/layout"
)

type click struct {
	key     string
	pressed bool
}

// touchLayout has square 100dp buttons "left" at the top-left corner and
// "right" at the top-right corner of a 1000x1000 container, on layer "main".
// Layer "extra" is hidden.
func touchLayout(configure func(left, right *control.NormalData)) *ObservableLayout {
	left := control.NewNormalData(control.NewTranslatable("L"))
	left.UUID = "left"
	left.ButtonSize = control.ButtonSize{Type: control.SizeDp, WidthDp: 100, HeightDp: 100}
	left.ClickEvents = []control.ClickEvent{{Type: control.EventKey, Key: "L"}}
	right := left
	right.UUID = "right"
	right.Position = control.Position{X: 10000, Y: 0}
	right.ClickEvents = []control.ClickEvent{{Type: control.EventKey, Key: "R"}}
	if configure != nil {
		configure(&left, &right)
	}

	main := control.NewLayer("main")
	main.UUID = "main"
	main.NormalButtons = []control.NormalData{left, right}
	extra := control.NewLayer("extra")
	extra.UUID = "extra"
	extra.Hide = true

	doc := control.EmptyLayout()
	doc.Layers = []control.Layer{main, extra}
	return Wrap(doc)
}

func newTracker(l *ObservableLayout, clicks *[]click) *Pointers {
	container := layout.Size{Width: 1000, Height: 1000}
	e := NewEngine(Options{})
	e.Arrange(l, container)
	return NewPointers(l, e, container, func(ev control.ClickEvent, pressed bool) {
		*clicks = append(*clicks, click{key: ev.Key, pressed: pressed})
	})
}

func button(t *testing.T, l *ObservableLayout, id string) *ObservableNormalData {
	t.Helper()
	w, _, ok := l.FindWidget(id)
	if !ok {
		t.Fatalf("widget %q not found", id)
	}
	return w.(*ObservableNormalData)
}

func TestPointers_PressRelease(t *testing.T) {
	var clicks []click
	l := touchLayout(nil)
	p := newTracker(l, &clicks)
	left := button(t, l, "left")

	if !p.Handle(PointerEvent{ID: 1, Position: layout.Point{X: 50, Y: 50}, Pressed: true}) {
		t.Error("press on an opaque button was not consumed")
	}
	if !left.IsPressed.Get() {
		t.Fatal("left not pressed")
	}
	// Holding still does not fire again.
	p.Handle(PointerEvent{ID: 1, Position: layout.Point{X: 60, Y: 60}, Pressed: true})
	p.Handle(PointerEvent{ID: 1, Position: layout.Point{X: 60, Y: 60}, Pressed: false})

	if left.IsPressed.Get() {
		t.Error("left still pressed after release")
	}
	want := []click{{"L", true}, {"L", false}}
	if len(clicks) != len(want) || clicks[0] != want[0] || clicks[1] != want[1] {
		t.Errorf("clicks = %v, want %v", clicks, want)
	}
	if len(p.Active(1)) != 0 {
		t.Errorf("Active(1) = %d buttons after release", len(p.Active(1)))
	}
}

func TestPointers_MissAndEdges(t *testing.T) {
	var clicks []click
	l := touchLayout(nil)
	p := newTracker(l, &clicks)

	if p.Handle(PointerEvent{ID: 1, Position: layout.Point{X: 500, Y: 500}, Pressed: true}) {
		t.Error("press on empty space was consumed")
	}
	// Bounds are inclusive of the far edge.
	p.Handle(PointerEvent{ID: 2, Position: layout.Point{X: 100, Y: 100}, Pressed: true})
	if !button(t, l, "left").IsPressed.Get() {
		t.Error("press on the far edge missed")
	}
	if len(clicks) != 1 {
		t.Errorf("clicks = %v", clicks)
	}
}

func TestPointers_Swipe(t *testing.T) {
	var clicks []click
	l := touchLayout(func(left, right *control.NormalData) {
		left.IsSwipple = true
		right.IsSwipple = true
	})
	p := newTracker(l, &clicks)
	left, right := button(t, l, "left"), button(t, l, "right")

	p.Handle(PointerEvent{ID: 7, Position: layout.Point{X: 50, Y: 50}, Pressed: true})
	p.Handle(PointerEvent{ID: 7, Position: layout.Point{X: 950, Y: 50}, Pressed: true})

	if !right.IsPressed.Get() {
		t.Error("sliding onto right did not press it")
	}
	if left.IsPressed.Get() {
		t.Error("sliding off left did not release it")
	}
	if got := len(p.Active(7)); got != 2 {
		t.Errorf("Active(7) = %d, want 2", got)
	}

	p.Handle(PointerEvent{ID: 7, Position: layout.Point{X: 50, Y: 50}, Pressed: true})
	if !left.IsPressed.Get() || right.IsPressed.Get() {
		t.Errorf("sliding back: left=%v right=%v", left.IsPressed.Get(), right.IsPressed.Get())
	}

	p.Handle(PointerEvent{ID: 7, Pressed: false})
	if left.IsPressed.Get() || right.IsPressed.Get() {
		t.Error("buttons still pressed after release")
	}
	want := []click{{"L", true}, {"R", true}, {"L", false}, {"L", true}, {"R", false}, {"L", false}}
	if len(clicks) != len(want) {
		t.Fatalf("clicks = %v, want %v", clicks, want)
	}
	for i := range want {
		if clicks[i] != want[i] {
			t.Errorf("clicks[%d] = %v, want %v", i, clicks[i], want[i])
		}
	}
}

func TestPointers_NoSwipeFromPlainButton(t *testing.T) {
	var clicks []click
	l := touchLayout(func(left, right *control.NormalData) {
		right.IsSwipple = true
	})
	p := newTracker(l, &clicks)

	p.Handle(PointerEvent{ID: 1, Position: layout.Point{X: 50, Y: 50}, Pressed: true})
	p.Handle(PointerEvent{ID: 1, Position: layout.Point{X: 950, Y: 50}, Pressed: true})
	if button(t, l, "right").IsPressed.Get() {
		t.Error("swipe started on a plain button pressed a swipeable one")
	}
	if !button(t, l, "left").IsPressed.Get() {
		t.Error("plain button released while the pointer is still down")
	}
}

func TestPointers_ToggleSwitchLayer(t *testing.T) {
	var clicks []click
	l := touchLayout(func(left, right *control.NormalData) {
		left.IsToggleable = true
		left.ClickEvents = []control.ClickEvent{{Type: control.EventSwitchLayer, Key: "extra"}}
		right.ClickEvents = []control.ClickEvent{{Type: control.EventSwitchLayer, Key: "extra"}}
	})
	p := newTracker(l, &clicks)
	extra, _ := l.Layer("extra")
	left := button(t, l, "left")

	p.Handle(PointerEvent{ID: 1, Position: layout.Point{X: 50, Y: 50}, Pressed: true})
	p.Handle(PointerEvent{ID: 1, Pressed: false})
	if !left.IsPressed.Get() {
		t.Error("toggle button released on pointer up")
	}
	if !extra.Hide.Get() {
		t.Error("toggle on should set hide to the pressed state")
	}

	p.Handle(PointerEvent{ID: 1, Position: layout.Point{X: 50, Y: 50}, Pressed: true})
	p.Handle(PointerEvent{ID: 1, Pressed: false})
	if left.IsPressed.Get() || extra.Hide.Get() {
		t.Errorf("toggle off: pressed=%v hide=%v", left.IsPressed.Get(), extra.Hide.Get())
	}

	// A plain button flips the layer on every press.
	p.Handle(PointerEvent{ID: 2, Position: layout.Point{X: 950, Y: 50}, Pressed: true})
	if !extra.Hide.Get() {
		t.Error("plain switch did not flip hide")
	}
	p.Handle(PointerEvent{ID: 2, Pressed: false})
	if !extra.Hide.Get() {
		t.Error("release should not switch the layer")
	}
	p.Handle(PointerEvent{ID: 2, Position: layout.Point{X: 950, Y: 50}, Pressed: true})
	if extra.Hide.Get() {
		t.Error("second press did not flip hide back")
	}

	want := []click{{"extra", true}, {"extra", true}, {"extra", false}, {"extra", false}, {"extra", true}, {"extra", false}, {"extra", true}}
	if len(clicks) != len(want) {
		t.Fatalf("clicks = %v, want %v", clicks, want)
	}
}

func TestPointers_Penetrable(t *testing.T) {
	var clicks []click
	var moveOnly []PointerID
	l := touchLayout(func(left, right *control.NormalData) {
		left.IsPenetrable = true
	})
	p := newTracker(l, &clicks)
	p.MarkMoveOnly = func(id PointerID) { moveOnly = append(moveOnly, id) }

	if p.Handle(PointerEvent{ID: 3, Position: layout.Point{X: 50, Y: 50}, Pressed: true}) {
		t.Error("press on a penetrable button was consumed")
	}
	if len(moveOnly) != 1 || moveOnly[0] != 3 {
		t.Errorf("MarkMoveOnly calls = %v", moveOnly)
	}
	if !button(t, l, "left").IsPressed.Get() {
		t.Error("penetrable button not pressed")
	}
}

func TestPointers_Occupied(t *testing.T) {
	var clicks []click
	l := touchLayout(nil)
	p := newTracker(l, &clicks)
	p.Occupied = func(id PointerID) bool { return id == 9 }

	p.Handle(PointerEvent{ID: 9, Position: layout.Point{X: 50, Y: 50}, Pressed: true})
	if button(t, l, "left").IsPressed.Get() || len(clicks) != 0 {
		t.Error("occupied pointer pressed a button")
	}
	p.Handle(PointerEvent{ID: 1, Position: layout.Point{X: 50, Y: 50}, Pressed: true})
	if !button(t, l, "left").IsPressed.Get() {
		t.Error("free pointer did not press")
	}
	p.Reset()
	if button(t, l, "left").IsPressed.Get() {
		t.Error("Reset did not release")
	}
}

func TestPointers_Visibility(t *testing.T) {
	var clicks []click
	l := touchLayout(func(left, right *control.NormalData) {
		left.VisibilityType = control.VisibilityInGame
	})
	p := newTracker(l, &clicks)

	p.Handle(PointerEvent{ID: 1, Position: layout.Point{X: 50, Y: 50}, Pressed: true})
	if button(t, l, "left").IsPressed.Get() {
		t.Error("in-game button pressed while the pointer is released")
	}
	p.Handle(PointerEvent{ID: 1, Pressed: false})

	p.Grabbing = func() bool { return true }
	p.Handle(PointerEvent{ID: 1, Position: layout.Point{X: 50, Y: 50}, Pressed: true})
	if !button(t, l, "left").IsPressed.Get() {
		t.Error("in-game button not pressed while grabbing")
	}
}

func TestEngine_HitTestFiltering(t *testing.T) {
	mk := func(id string, swipe, penetrable bool) control.NormalData {
		d := control.NewNormalData(control.EmptyTranslatable)
		d.UUID = id
		d.ButtonSize = control.ButtonSize{Type: control.SizeDp, WidthDp: 100, HeightDp: 100}
		d.IsSwipple = swipe
		d.IsPenetrable = penetrable
		return d
	}

	type tc struct {
		upper []control.NormalData
		lower []control.NormalData
		want  string
	}

	tests := map[string]tc{
		"topmost opaque button wins": {
			upper: []control.NormalData{mk("n1", false, false), mk("n2", false, false)},
			lower: []control.NormalData{mk("m", false, false)},
			want:  "n2",
		},
		"pass-through buttons above are dropped": {
			upper: []control.NormalData{mk("n", false, false), mk("p", true, true)},
			lower: []control.NormalData{mk("m", false, false)},
			want:  "n",
		},
		"penetrable without swipe stops the walk": {
			upper: []control.NormalData{mk("q", false, true)},
			lower: []control.NormalData{mk("m", false, false)},
			want:  "q",
		},
		"all pass-through are kept": {
			upper: []control.NormalData{mk("p1", true, true)},
			lower: []control.NormalData{mk("p2", true, true)},
			want:  "p1,p2",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			upper := control.NewLayer("upper")
			upper.NormalButtons = tt.upper
			lower := control.NewLayer("lower")
			lower.NormalButtons = tt.lower
			doc := control.EmptyLayout()
			doc.Layers = []control.Layer{upper, lower}

			l := Wrap(doc)
			container := layout.Size{Width: 1000, Height: 1000}
			e := NewEngine(Options{})
			e.Arrange(l, container)

			hits := e.HitTest(l, layout.Point{X: 10, Y: 10}, container, false)
			ids := make([]string, len(hits))
			for i, h := range hits {
				ids[i] = h.ID()
			}
			if got := joinIDs(ids); got != tt.want {
				t.Errorf("HitTest = %s, want %s", got, tt.want)
			}
		})
	}
}

func joinIDs(ids []string) string {
	out := ""
	for i, id := range ids {
		if i > 0 {
			out += ","
		}
		out += id
	}
	return out
}

func TestPointers_ReentrantHandler(t *testing.T) {
	l := touchLayout(nil)
	container := layout.Size{Width: 1000, Height: 1000}
	e := NewEngine(Options{})
	e.Arrange(l, container)

	var p *Pointers
	var seen []int
	p = NewPointers(l, e, container, func(ev control.ClickEvent, pressed bool) {
		seen = append(seen, len(p.Active(1)))
		if pressed {
			// Another pointer pressing from inside the handler.
			p.Handle(PointerEvent{ID: 2, Position: layout.Point{X: 950, Y: 50}, Pressed: true})
		}
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		p.Handle(PointerEvent{ID: 1, Position: layout.Point{X: 50, Y: 50}, Pressed: true})
		p.Handle(PointerEvent{ID: 1, Pressed: false})
		p.Reset()
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Handle blocked when the click handler called back into the tracker")
	}

	// Press of left (1 held), nested press of right (still 1 held by
	// pointer 1), release of left (0), Reset releasing right (0).
	want := []int{1, 1, 0, 0}
	if len(seen) != len(want) {
		t.Fatalf("handler saw %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("seen[%d] = %d, want %d", i, seen[i], want[i])
		}
	}
	if button(t, l, "right").IsPressed.Get() {
		t.Error("Reset left right pressed")
	}
}
