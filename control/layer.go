package control

import "encoding/json"

// Layer is an ordered, independently hideable group of widgets.
type Layer struct {
	Name            string         `json:"name"`
	UUID            string         `json:"uuid"`
	Hide            bool           `json:"hide"`
	HideWhenMouse   bool           `json:"hideWhenMouse"`
	HideWhenGamepad bool           `json:"hideWhenGamepad"`
	VisibilityType  VisibilityType `json:"visibilityType"`
	NormalButtons   []NormalData   `json:"normalButtons"`
	TextBoxes       []TextData     `json:"textBoxes"`
}

// NewLayer returns an empty, visible layer with a fresh id.
func NewLayer(name string) Layer {
	return Layer{
		Name:            name,
		UUID:            RandomID(DefaultIDLength),
		HideWhenMouse:   true,
		HideWhenGamepad: true,
		NormalButtons:   []NormalData{},
		TextBoxes:       []TextData{},
	}
}

// HiddenFor reports whether the legacy per-device flags hide the layer
// while the given input device is in use.
func (l Layer) HiddenFor(when HideLayerWhen) bool {
	switch when {
	case HideWhenMouse:
		return l.HideWhenMouse
	case HideWhenGamepad:
		return l.HideWhenGamepad
	default:
		return false
	}
}

// Widgets returns the layer's buttons followed by its text boxes.
func (l Layer) Widgets() []Widget {
	out := make([]Widget, 0, len(l.NormalButtons)+len(l.TextBoxes))
	for _, d := range l.NormalButtons {
		out = append(out, d)
	}
	for _, d := range l.TextBoxes {
		out = append(out, d)
	}
	return out
}

// UnmarshalJSON applies the defaults of keys absent from older documents.
func (l *Layer) UnmarshalJSON(b []byte) error {
	type plain Layer
	v := plain{
		UUID:            RandomID(DefaultIDLength),
		HideWhenMouse:   true,
		HideWhenGamepad: true,
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*l = Layer(v)
	return nil
}

// MarshalJSON always writes the widget lists as arrays.
func (l Layer) MarshalJSON() ([]byte, error) {
	type plain Layer
	v := plain(l)
	if v.NormalButtons == nil {
		v.NormalButtons = []NormalData{}
	}
	if v.TextBoxes == nil {
		v.TextBoxes = []TextData{}
	}
	return json.Marshal(v)
}
