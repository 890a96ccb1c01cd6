package layerkit

import "github.com/grindlemire/layerkit/control"

// ObservableLayer is an editable Layer.
type ObservableLayer struct {
	uuid            string
	Name            *State[string]
	Hide            *State[bool]
	HideWhenMouse   *State[bool]
	HideWhenGamepad *State[bool]
	VisibilityType  *State[control.VisibilityType]
	NormalButtons   *List[*ObservableNormalData]
	TextBoxes       *List[*ObservableTextData]
}

// NewObservableLayer wraps l and all of its widgets.
func NewObservableLayer(l control.Layer) *ObservableLayer {
	buttons := make([]*ObservableNormalData, len(l.NormalButtons))
	for i, d := range l.NormalButtons {
		buttons[i] = NewObservableNormalData(d)
	}
	texts := make([]*ObservableTextData, len(l.TextBoxes))
	for i, d := range l.TextBoxes {
		texts[i] = NewObservableTextData(d)
	}
	return &ObservableLayer{
		uuid:            l.UUID,
		Name:            NewState(l.Name),
		Hide:            NewState(l.Hide),
		HideWhenMouse:   NewState(l.HideWhenMouse),
		HideWhenGamepad: NewState(l.HideWhenGamepad),
		VisibilityType:  NewState(l.VisibilityType),
		NormalButtons:   NewList(buttons),
		TextBoxes:       NewList(texts),
	}
}

// ID returns the layer's stable id.
func (l *ObservableLayer) ID() string { return l.uuid }

// Shown reports whether the layer is not hidden and its rule shows it.
func (l *ObservableLayer) Shown(grabbing bool) bool {
	return !l.Hide.Get() && l.VisibilityType.Get().Visible(grabbing)
}

// AddNormalButton wraps d and appends it.
func (l *ObservableLayer) AddNormalButton(d control.NormalData) *ObservableNormalData {
	o := NewObservableNormalData(d)
	l.NormalButtons.Append(o)
	return o
}

// AddNormalButtons appends already wrapped buttons.
func (l *ObservableLayer) AddNormalButtons(ds ...*ObservableNormalData) {
	l.NormalButtons.Append(ds...)
}

// RemoveNormalButton removes the button with the given id.
func (l *ObservableLayer) RemoveNormalButton(id string) {
	l.NormalButtons.RemoveFunc(func(d *ObservableNormalData) bool { return d.ID() == id })
}

// AddTextBox wraps d and appends it.
func (l *ObservableLayer) AddTextBox(d control.TextData) *ObservableTextData {
	o := NewObservableTextData(d)
	l.TextBoxes.Append(o)
	return o
}

// AddTextBoxes appends already wrapped labels.
func (l *ObservableLayer) AddTextBoxes(ds ...*ObservableTextData) {
	l.TextBoxes.Append(ds...)
}

// RemoveTextBox removes the label with the given id.
func (l *ObservableLayer) RemoveTextBox(id string) {
	l.TextBoxes.RemoveFunc(func(d *ObservableTextData) bool { return d.ID() == id })
}

// AddWidget appends w to the list matching its kind.
func (l *ObservableLayer) AddWidget(w ObservableWidget) {
	switch v := w.(type) {
	case *ObservableNormalData:
		l.AddNormalButtons(v)
	case *ObservableTextData:
		l.AddTextBoxes(v)
	}
}

// RemoveWidget removes the widget with the given id from either list.
func (l *ObservableLayer) RemoveWidget(id string) {
	l.RemoveNormalButton(id)
	l.RemoveTextBox(id)
}

// Widgets returns a snapshot of the buttons followed by the labels.
func (l *ObservableLayer) Widgets() []ObservableWidget {
	buttons := l.NormalButtons.Items()
	texts := l.TextBoxes.Items()
	out := make([]ObservableWidget, 0, len(buttons)+len(texts))
	for _, d := range buttons {
		out = append(out, d)
	}
	for _, d := range texts {
		out = append(out, d)
	}
	return out
}

// Pack returns the current layer.
func (l *ObservableLayer) Pack() control.Layer {
	buttons := l.NormalButtons.Items()
	texts := l.TextBoxes.Items()
	out := control.Layer{
		Name:            l.Name.Get(),
		UUID:            l.uuid,
		Hide:            l.Hide.Get(),
		HideWhenMouse:   l.HideWhenMouse.Get(),
		HideWhenGamepad: l.HideWhenGamepad.Get(),
		VisibilityType:  l.VisibilityType.Get(),
		NormalButtons:   make([]control.NormalData, len(buttons)),
		TextBoxes:       make([]control.TextData, len(texts)),
	}
	for i, d := range buttons {
		out.NormalButtons[i] = d.PackNormal()
	}
	for i, d := range texts {
		out.TextBoxes[i] = d.PackText()
	}
	return out
}
