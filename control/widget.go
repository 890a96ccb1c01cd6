package control

import "encoding/json"

// Widget is either a NormalData button or a TextData label. The set
// of implementations is closed; switch on the concrete type.
type Widget interface {
	// Common returns the fields shared by every widget kind.
	Common() TextData
	widget()
}

// TextData is a static label.
type TextData struct {
	Text           TranslatableString `json:"text"`
	UUID           string             `json:"uuid"`
	Position       Position           `json:"position"`
	ButtonSize     ButtonSize         `json:"buttonSize"`
	ButtonStyle    string             `json:"buttonStyle,omitempty"` // style UUID, empty for the default style
	TextAlignment  TextAlignment      `json:"textAlignment"`
	TextBold       bool               `json:"textBold"`
	TextItalic     bool               `json:"textItalic"`
	TextUnderline  bool               `json:"textUnderline"`
	VisibilityType VisibilityType     `json:"visibilityType"`
}

func (d TextData) Common() TextData { return d }
func (TextData) widget()            {}

// NewTextData returns a label with a fresh id at the origin.
func NewTextData(text TranslatableString) TextData {
	return TextData{
		Text:       text,
		UUID:       NewWidgetID(),
		ButtonSize: DefaultButtonSize,
	}
}

// CloneNew copies d with a new id, centered. A nil gen uses RandomID.
func (d TextData) CloneNew(gen IDGenerator) TextData {
	if gen == nil {
		gen = RandomID
	}
	out := d
	out.Text = NewTranslatable(d.Text.Default, d.Text.MatchQueue...)
	out.UUID = gen(WidgetIDLength)
	out.Position = CenterPosition
	return out
}

// NormalData is an interactive button.
type NormalData struct {
	TextData
	ClickEvents  []ClickEvent `json:"clickEvents"`
	IsSwipple    bool         `json:"isSwipple"`    // swiping links it with neighbouring buttons
	IsPenetrable bool         `json:"isPenetrable"` // touches pass through to what is below
	IsToggleable bool         `json:"isToggleable"` // press toggles instead of holding
}

func (d NormalData) Common() TextData { return d.TextData }
func (NormalData) widget()            {}

// NewNormalData returns a button with a fresh id at the origin.
func NewNormalData(text TranslatableString) NormalData {
	return NormalData{TextData: NewTextData(text), ClickEvents: []ClickEvent{}}
}

// CloneNew copies d with a new id, centered, keeping events and flags.
func (d NormalData) CloneNew(gen IDGenerator) NormalData {
	out := d
	out.TextData = d.TextData.CloneNew(gen)
	out.ClickEvents = append([]ClickEvent{}, d.ClickEvents...)
	return out
}

// MarshalJSON always writes clickEvents as an array.
func (d NormalData) MarshalJSON() ([]byte, error) {
	type plain NormalData
	v := plain(d)
	if v.ClickEvents == nil {
		v.ClickEvents = []ClickEvent{}
	}
	return json.Marshal(v)
}
