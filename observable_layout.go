package layerkit

import (
	"slices"

	"github.com/grindlemire/layerkit/control"
	"github.com/grindlemire/layerkit/internal/debug"
)

// ObservableInfo is an editable Info block.
type ObservableInfo struct {
	src         control.Info
	Name        *ObservableTranslatableString
	Author      *ObservableTranslatableString
	Description *ObservableTranslatableString
	VersionCode *State[int]
	VersionName *State[string]
}

// NewObservableInfo wraps i.
func NewObservableInfo(i control.Info) *ObservableInfo {
	return &ObservableInfo{
		src:         i,
		Name:        NewObservableTranslatableString(i.Name),
		Author:      NewObservableTranslatableString(i.Author),
		Description: NewObservableTranslatableString(i.Description),
		VersionCode: NewState(i.VersionCode),
		VersionName: NewState(i.VersionName),
	}
}

// ResetVersionName restores the version name the layout was loaded with.
func (i *ObservableInfo) ResetVersionName() {
	i.VersionName.Set(i.src.VersionName)
}

// Pack returns the current info.
func (i *ObservableInfo) Pack() control.Info {
	return control.Info{
		Name:        i.Name.Pack(),
		Author:      i.Author.Pack(),
		Description: i.Description.Pack(),
		VersionCode: i.VersionCode.Get(),
		VersionName: i.VersionName.Get(),
	}
}

// ObservableLayout is the editable graph of a whole layout. It holds no
// reference to the document it was built from beyond its editor version;
// build a new one with Wrap for every loaded document.
type ObservableLayout struct {
	editorVersion int
	Info          *ObservableInfo
	Layers        *List[*ObservableLayer]
	Styles        *List[*ObservableButtonStyle]
}

// Wrap builds the observable graph of l.
func Wrap(l control.Layout) *ObservableLayout {
	layers := make([]*ObservableLayer, len(l.Layers))
	for i, layer := range l.Layers {
		layers[i] = NewObservableLayer(layer)
	}
	styles := make([]*ObservableButtonStyle, len(l.Styles))
	for i, s := range l.Styles {
		styles[i] = NewObservableButtonStyle(s)
	}
	debug.Log("Wrap: %d layers, %d styles", len(layers), len(styles))
	return &ObservableLayout{
		editorVersion: l.EditorVersion,
		Info:          NewObservableInfo(l.Info),
		Layers:        NewList(layers),
		Styles:        NewList(styles),
	}
}

// AddLayer wraps layer and inserts it on top, at the front of the list.
func (l *ObservableLayout) AddLayer(layer control.Layer) *ObservableLayer {
	o := NewObservableLayer(layer)
	l.Layers.Prepend(o)
	return o
}

// RemoveLayer removes the layer with the given id.
func (l *ObservableLayout) RemoveLayer(id string) {
	l.Layers.RemoveFunc(func(o *ObservableLayer) bool { return o.ID() == id })
}

// Layer returns the layer with the given id.
func (l *ObservableLayout) Layer(id string) (*ObservableLayer, bool) {
	for _, o := range l.Layers.Items() {
		if o.ID() == id {
			return o, true
		}
	}
	return nil, false
}

// MergeDownward moves every widget of layer into the layer after it and
// removes layer. It does nothing for the last layer or a layer that is not
// in the list.
func (l *ObservableLayout) MergeDownward(layer *ObservableLayer) {
	layers := l.Layers.Items()
	i := slices.Index(layers, layer)
	if i < 0 || i+1 >= len(layers) {
		return
	}
	below := layers[i+1]
	below.AddNormalButtons(layer.NormalButtons.Items()...)
	below.AddTextBoxes(layer.TextBoxes.Items()...)
	l.Layers.RemoveFunc(func(o *ObservableLayer) bool { return o == layer })
}

// Reorder moves the layer at from to index to.
func (l *ObservableLayout) Reorder(from, to int) bool {
	return l.Layers.Move(from, to)
}

// AddStyle wraps s and appends it to the palette.
func (l *ObservableLayout) AddStyle(s control.ButtonStyle) *ObservableButtonStyle {
	o := NewObservableButtonStyle(s)
	l.Styles.Append(o)
	return o
}

// CloneStyle appends a copy of s under a fresh id.
func (l *ObservableLayout) CloneStyle(s *ObservableButtonStyle, gen control.IDGenerator) *ObservableButtonStyle {
	o := s.CloneNew(gen)
	l.Styles.Append(o)
	return o
}

// RemoveStyle removes the style with the given id from the palette. Widgets
// still referring to it resolve to DefaultObservableStyle.
func (l *ObservableLayout) RemoveStyle(id string) {
	l.Styles.RemoveFunc(func(o *ObservableButtonStyle) bool { return o.ID() == id })
}

// Style returns the palette entry with the given id.
func (l *ObservableLayout) Style(id string) (*ObservableButtonStyle, bool) {
	if id == "" {
		return nil, false
	}
	for _, s := range l.Styles.Items() {
		if s.ID() == id {
			return s, true
		}
	}
	return nil, false
}

// ResolveStyle returns the style of w, or DefaultObservableStyle when w has
// none or refers to a style no longer in the palette.
func (l *ObservableLayout) ResolveStyle(w ObservableWidget) *ObservableButtonStyle {
	if s, ok := l.Style(w.Common().ButtonStyle.Get()); ok {
		return s
	}
	return DefaultObservableStyle
}

// Appearance resolves the look of w for a theme. Labels are never pressed.
func (l *ObservableLayout) Appearance(w ObservableWidget, dark bool) control.Appearance {
	pressed := false
	if n, ok := w.(*ObservableNormalData); ok {
		pressed = n.IsPressed.Get()
	}
	return l.ResolveStyle(w).Appearance(dark, pressed)
}

// FindWidget returns the widget with the given id and the layer holding it.
func (l *ObservableLayout) FindWidget(id string) (ObservableWidget, *ObservableLayer, bool) {
	for _, layer := range l.Layers.Items() {
		for _, w := range layer.Widgets() {
			if w.ID() == id {
				return w, layer, true
			}
		}
	}
	return nil, nil, false
}

// Pack returns the current layout. Lists in the result are never nil, so a
// document built with nil lists packs to one with empty lists; both encode
// to the same JSON.
func (l *ObservableLayout) Pack() control.Layout {
	layers := l.Layers.Items()
	styles := l.Styles.Items()
	out := control.Layout{
		Info:          l.Info.Pack(),
		Layers:        make([]control.Layer, len(layers)),
		Styles:        make([]control.ButtonStyle, len(styles)),
		EditorVersion: l.editorVersion,
	}
	for i, layer := range layers {
		out.Layers[i] = layer.Pack()
	}
	for i, s := range styles {
		out.Styles[i] = s.Pack()
	}
	return out
}
