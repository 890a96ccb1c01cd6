package layerkit

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/grindlemire/layerkit/control"
	"golang.org/x/text/language"
)

func mustJSON(t *testing.T, l control.Layout) string {
	t.Helper()
	b, err := control.Marshal(l)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	return string(b)
}

func TestWrap_PackRoundTrip(t *testing.T) {
	type tc struct {
		layout control.Layout
	}

	tests := map[string]tc{
		"empty layout": {
			layout: control.EmptyLayout(),
		},
		"sample layout": {
			layout: sampleLayout(),
		},
		"legacy flags and text styling": {
			layout: func() control.Layout {
				l := sampleLayout()
				l.Layers[0].HideWhenMouse = false
				l.Layers[0].Hide = true
				l.Layers[0].TextBoxes[0].TextAlignment = control.AlignRight
				l.Layers[0].TextBoxes[0].TextItalic = true
				l.Layers[1].NormalButtons[0].IsToggleable = true
				l.EditorVersion = 3
				return l
			}(),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			want := mustJSON(t, tt.layout)
			got := mustJSON(t, Wrap(tt.layout).Pack())
			if got != want {
				t.Errorf("Pack(Wrap(l)) changed the document\ngot:\n%s\nwant:\n%s", got, want)
			}
		})
	}
}

func TestWrap_DoesNotAliasSource(t *testing.T) {
	src := sampleLayout()
	l := Wrap(src)

	b1, _, _ := l.FindWidget("b1")
	b1.(*ObservableNormalData).AddEvent(control.ClickEvent{Type: control.EventKey, Key: "GLFW_KEY_SPACE"})
	b1.Common().Position.Set(control.CenterPosition)

	if n := len(src.Layers[0].NormalButtons[0].ClickEvents); n != 1 {
		t.Errorf("source events = %d, want 1", n)
	}
	if src.Layers[0].NormalButtons[0].Position != control.ZeroPosition {
		t.Errorf("source position changed to %+v", src.Layers[0].NormalButtons[0].Position)
	}
}

func TestObservableLayout_AddRemoveLayer(t *testing.T) {
	l := Wrap(sampleLayout())

	added := l.AddLayer(control.NewLayer("new"))
	layers := l.Layers.Items()
	if len(layers) != 3 || layers[0] != added {
		t.Fatalf("AddLayer did not insert at the front: %v", layerNames(layers))
	}

	l.RemoveLayer("nope")
	if l.Layers.Len() != 3 {
		t.Errorf("RemoveLayer of unknown id changed the list")
	}
	l.RemoveLayer("top")
	if got := layerNames(l.Layers.Items()); strings.Join(got, ",") != "new,bottom" {
		t.Errorf("layers = %v, want [new bottom]", got)
	}
}

func layerNames(ls []*ObservableLayer) []string {
	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = l.Name.Get()
	}
	return out
}

func TestObservableLayout_MergeDownward(t *testing.T) {
	type tc struct {
		target     string
		wantLayers string
		wantBottom int
	}

	tests := map[string]tc{
		"merges into the next layer": {
			target:     "top",
			wantLayers: "bottom",
			wantBottom: 4,
		},
		"last layer is a no-op": {
			target:     "bottom",
			wantLayers: "top,bottom",
			wantBottom: 1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			l := Wrap(sampleLayout())
			layer, ok := l.Layer(tt.target)
			if !ok {
				t.Fatalf("Layer(%q) not found", tt.target)
			}
			l.MergeDownward(layer)

			if got := strings.Join(layerNames(l.Layers.Items()), ","); got != tt.wantLayers {
				t.Errorf("layers = %s, want %s", got, tt.wantLayers)
			}
			bottom, _ := l.Layer("bottom")
			if got := len(bottom.Widgets()); got != tt.wantBottom {
				t.Errorf("bottom widgets = %d, want %d", got, tt.wantBottom)
			}
		})
	}

	t.Run("unknown layer is a no-op", func(t *testing.T) {
		l := Wrap(sampleLayout())
		l.MergeDownward(NewObservableLayer(control.NewLayer("stray")))
		if l.Layers.Len() != 2 {
			t.Errorf("layers = %d, want 2", l.Layers.Len())
		}
	})
}

func TestObservableLayout_Reorder(t *testing.T) {
	l := Wrap(sampleLayout())
	l.AddLayer(control.NewLayer("new"))

	if !l.Reorder(0, 2) {
		t.Fatal("Reorder(0, 2) = false")
	}
	if got := strings.Join(layerNames(l.Layers.Items()), ","); got != "top,bottom,new" {
		t.Errorf("layers = %s", got)
	}
	if l.Reorder(0, 5) {
		t.Error("Reorder out of range = true")
	}
}

func TestObservableLayout_Styles(t *testing.T) {
	l := Wrap(sampleLayout())
	b1, _, _ := l.FindWidget("b1")

	if got := l.ResolveStyle(b1).ID(); got != "s1" {
		t.Fatalf("ResolveStyle(b1) = %q, want s1", got)
	}
	if got := l.Appearance(b1, true).BackgroundColor; got != 0xFF112233 {
		t.Errorf("dark background = %v", got)
	}

	s1, _ := l.Style("s1")
	clone := l.CloneStyle(s1, func(n int) string { return "s2" })
	if clone.ID() != "s2" || clone.Name.Get() != "accent" || l.Styles.Len() != 2 {
		t.Errorf("CloneStyle = %q %q, palette %d", clone.ID(), clone.Name.Get(), l.Styles.Len())
	}
	clone.Name.Set("changed")
	if s1.Name.Get() != "accent" {
		t.Error("clone shares state with the original")
	}

	l.RemoveStyle("s1")
	if got := l.ResolveStyle(b1); got != DefaultObservableStyle {
		t.Errorf("ResolveStyle after removal = %q, want default", got.ID())
	}
	if got := b1.Common().ButtonStyle.Get(); got != "s1" {
		t.Errorf("RemoveStyle rewrote the widget reference to %q", got)
	}
	if got := l.Appearance(b1, false); got != control.DefaultStyleConfig.Appearance(false) {
		t.Errorf("Appearance = %+v", got)
	}

	added := l.AddStyle(control.NewButtonStyle("third"))
	if got, ok := l.Style(added.ID()); !ok || got != added {
		t.Error("AddStyle result not found in the palette")
	}
}

func TestObservableNormalData_Events(t *testing.T) {
	jump := control.ClickEvent{Type: control.EventKey, Key: "GLFW_KEY_SPACE"}
	menu := control.ClickEvent{Type: control.EventLauncher, Key: "menu"}
	layer := control.ClickEvent{Type: control.EventSwitchLayer, Key: "top"}

	d := NewObservableNormalData(control.NewNormalData(control.EmptyTranslatable))
	d.AddEvent(jump)
	d.AddEvent(jump)
	d.AddEvent(menu)
	d.AddEvent(layer)

	if got := d.ClickEvents.Items(); len(got) != 3 {
		t.Fatalf("events = %v, want 3 entries", got)
	}

	d.RemoveEvent(menu)
	if got := d.ClickEvents.Items(); len(got) != 2 || got[0] != jump || got[1] != layer {
		t.Errorf("after RemoveEvent = %v", got)
	}

	d.AddEvent(menu)
	d.RemoveAllEvents([]control.ClickEvent{jump, layer, {Type: control.EventKey, Key: "other"}})
	if got := d.ClickEvents.Items(); len(got) != 1 || got[0] != menu {
		t.Errorf("after RemoveAllEvents = %v", got)
	}

	d.RemoveEventKey(control.EventLauncher, "menu")
	if d.ClickEvents.Len() != 0 {
		t.Errorf("after RemoveEventKey = %v", d.ClickEvents.Items())
	}
}

func TestObservableNormalData_Clone(t *testing.T) {
	l := Wrap(sampleLayout())
	w, _, _ := l.FindWidget("b1")
	b1 := w.(*ObservableNormalData)
	b1.IsSwipple.Set(true)
	b1.IsPressed.Set(true)

	clone := b1.CloneNormal(nil)
	if clone.ID() == b1.ID() || len(clone.ID()) != control.WidgetIDLength {
		t.Errorf("clone id = %q", clone.ID())
	}
	if clone.Position.Get() != control.CenterPosition {
		t.Errorf("clone position = %+v", clone.Position.Get())
	}
	if !clone.IsSwipple.Get() || clone.IsPressed.Get() {
		t.Errorf("clone flags: swipple=%v pressed=%v", clone.IsSwipple.Get(), clone.IsPressed.Get())
	}
	if got := clone.ClickEvents.Items(); len(got) != 1 || got[0].Key != "GLFW_KEY_W" {
		t.Errorf("clone events = %v", got)
	}

	t1, layer, _ := l.FindWidget("t1")
	textClone := t1.(*ObservableTextData).CloneText(nil)
	layer.AddTextBoxes(textClone)
	if layer.TextBoxes.Len() != 2 || textClone.Text.Default.Get() != "t1" {
		t.Errorf("text clone not added: %d", layer.TextBoxes.Len())
	}
}

func TestObservableLayer_Widgets(t *testing.T) {
	l := Wrap(sampleLayout())
	top, _ := l.Layer("top")

	added := top.AddNormalButton(percentButton("b4", control.ZeroPosition, 10))
	top.AddTextBox(dpText("t2", control.ZeroPosition, 1, 1))

	ids := []string{}
	for _, w := range top.Widgets() {
		ids = append(ids, w.ID())
	}
	if got := strings.Join(ids, ","); got != "b1,b2,b4,t1,t2" {
		t.Errorf("Widgets() = %s", got)
	}

	top.RemoveWidget("b4")
	top.RemoveTextBox("t2")
	top.RemoveNormalButton("missing")
	if len(top.Widgets()) != 3 {
		t.Errorf("Widgets() after removal = %d", len(top.Widgets()))
	}

	top.AddWidget(added)
	if _, _, ok := l.FindWidget("b4"); !ok {
		t.Error("AddWidget did not add the button back")
	}
}

func TestObservableTranslatableString(t *testing.T) {
	zh := control.LocalizedString{LanguageTag: "zh-CN", Value: "跳"}
	s := NewObservableTranslatableString(control.NewTranslatable("Jump", zh))

	if got := s.Translate(language.MustParse("zh-CN")); got != "跳" {
		t.Errorf("Translate(zh-CN) = %q", got)
	}
	if got := s.Translate(language.AmericanEnglish); got != "Jump" {
		t.Errorf("Translate(en-US) = %q", got)
	}

	s.AddLocalizedString(zh)
	if s.MatchQueue.Len() != 1 {
		t.Errorf("duplicate override added: %d", s.MatchQueue.Len())
	}
	s.AddLocalizedString(control.LocalizedString{LanguageTag: "zh-CN", Value: "跳跃"})
	if s.MatchQueue.Len() != 2 {
		t.Errorf("override with a new value not added")
	}
	if got := s.Translate(language.MustParse("zh-CN")); got != "跳" {
		t.Errorf("first override should win, got %q", got)
	}

	s.DeleteLocalizedString(zh)
	if got := s.Translate(language.MustParse("zh-CN")); got != "跳跃" {
		t.Errorf("Translate after delete = %q", got)
	}

	s.Default.Set("Leap")
	s.Reset()
	if s.Default.Get() != "Jump" || s.MatchQueue.Len() != 1 || s.Pack().MatchQueue[0] != zh {
		t.Errorf("Reset = %+v", s.Pack())
	}
}

func TestObservableInfo(t *testing.T) {
	l := Wrap(sampleLayout())
	l.Info.VersionName.Set("2.0")
	l.Info.VersionCode.Set(4)
	if got := l.Pack().Info; got.VersionName != "2.0" || got.VersionCode != 4 {
		t.Errorf("Pack().Info = %+v", got)
	}
	l.Info.ResetVersionName()
	if got := l.Info.VersionName.Get(); got != "1.2" {
		t.Errorf("ResetVersionName = %q", got)
	}
}

func TestWrapWidget(t *testing.T) {
	if _, ok := WrapWidget(control.NewNormalData(control.EmptyTranslatable)).(*ObservableNormalData); !ok {
		t.Error("WrapWidget(NormalData) is not *ObservableNormalData")
	}
	w := WrapWidget(control.NewTextData(control.EmptyTranslatable))
	if _, ok := w.(*ObservableTextData); !ok {
		t.Error("WrapWidget(TextData) is not *ObservableTextData")
	}
	if _, ok := w.PackWidget().(control.TextData); !ok {
		t.Error("PackWidget of a label is not control.TextData")
	}
	b, err := json.Marshal(w.PackWidget())
	if err != nil || !strings.Contains(string(b), `"uuid"`) {
		t.Errorf("Marshal(PackWidget()) = %s, %v", b, err)
	}
}

func TestWrap_PackNilLists(t *testing.T) {
	l := control.Layout{EditorVersion: control.EditorVersion}
	l.Layers = []control.Layer{{Name: "bare", UUID: "bare"}}
	l.Layers[0].NormalButtons = []control.NormalData{{TextData: control.TextData{UUID: "b"}}}

	got := Wrap(l).Pack()
	if got.Styles == nil || got.Info.Name.MatchQueue == nil {
		t.Error("Pack returned nil lists")
	}
	if got.Layers[0].TextBoxes == nil || got.Layers[0].NormalButtons[0].ClickEvents == nil {
		t.Error("Pack returned nil widget lists")
	}
	if mustJSON(t, got) != mustJSON(t, l) {
		t.Errorf("nil and empty lists encode differently:\n%s\n%s", mustJSON(t, got), mustJSON(t, l))
	}

	if got := Wrap(control.Layout{EditorVersion: control.EditorVersion}).Pack(); !reflect.DeepEqual(got, control.EmptyLayout()) {
		t.Errorf("Pack of a zero layout = %+v, want EmptyLayout()", got)
	}
}
