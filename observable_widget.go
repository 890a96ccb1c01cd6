package layerkit

import (
	"slices"

	"github.com/grindlemire/layerkit/control"
	"github.com/grindlemire/layerkit/internal/layout"
)

// ObservableWidget is an editable widget: *ObservableNormalData or
// *ObservableTextData. Engines key measured sizes by this value, so the
// same widget must always be passed as the same pointer.
type ObservableWidget interface {
	// ID returns the widget's stable id.
	ID() string
	// Common returns the fields shared by both widget kinds.
	Common() *ObservableTextData
	// PackWidget returns the current widget as a control.NormalData or
	// control.TextData.
	PackWidget() control.Widget
	observable()
}

// ObservableTextData is an editable label. Its fields are shared by
// ObservableNormalData.
type ObservableTextData struct {
	uuid           string
	Text           *ObservableTranslatableString
	Position       *State[control.Position]
	ButtonSize     *State[control.ButtonSize]
	ButtonStyle    *State[string]
	TextAlignment  *State[control.TextAlignment]
	TextBold       *State[bool]
	TextItalic     *State[bool]
	TextUnderline  *State[bool]
	VisibilityType *State[control.VisibilityType]

	// EditingPos is set while the widget is dragged in the editor; the
	// engine then places it at MovingOffset instead of Position.
	EditingPos   *State[bool]
	MovingOffset *State[layout.Point]
}

// NewObservableTextData wraps d.
func NewObservableTextData(d control.TextData) *ObservableTextData {
	return &ObservableTextData{
		uuid:           d.UUID,
		Text:           NewObservableTranslatableString(d.Text),
		Position:       NewState(d.Position),
		ButtonSize:     NewState(d.ButtonSize),
		ButtonStyle:    NewState(d.ButtonStyle),
		TextAlignment:  NewState(d.TextAlignment),
		TextBold:       NewState(d.TextBold),
		TextItalic:     NewState(d.TextItalic),
		TextUnderline:  NewState(d.TextUnderline),
		VisibilityType: NewState(d.VisibilityType),
		EditingPos:     NewState(false),
		MovingOffset:   NewState(layout.Point{}),
	}
}

func (d *ObservableTextData) ID() string                  { return d.uuid }
func (d *ObservableTextData) Common() *ObservableTextData { return d }
func (d *ObservableTextData) PackWidget() control.Widget  { return d.PackText() }
func (*ObservableTextData) observable()                   {}

// Visible reports whether the widget's own rule shows it.
func (d *ObservableTextData) Visible(grabbing bool) bool {
	return d.VisibilityType.Get().Visible(grabbing)
}

// PackText returns the current label.
func (d *ObservableTextData) PackText() control.TextData {
	return control.TextData{
		Text:           d.Text.Pack(),
		UUID:           d.uuid,
		Position:       d.Position.Get(),
		ButtonSize:     d.ButtonSize.Get(),
		ButtonStyle:    d.ButtonStyle.Get(),
		TextAlignment:  d.TextAlignment.Get(),
		TextBold:       d.TextBold.Get(),
		TextItalic:     d.TextItalic.Get(),
		TextUnderline:  d.TextUnderline.Get(),
		VisibilityType: d.VisibilityType.Get(),
	}
}

// CloneText returns a new label with a fresh id at the center.
func (d *ObservableTextData) CloneText(gen control.IDGenerator) *ObservableTextData {
	return NewObservableTextData(d.PackText().CloneNew(gen))
}

// ObservableNormalData is an editable button.
type ObservableNormalData struct {
	*ObservableTextData
	ClickEvents  *List[control.ClickEvent]
	IsSwipple    *State[bool]
	IsPenetrable *State[bool]
	IsToggleable *State[bool]

	// IsPressed is runtime state and is never packed.
	IsPressed *State[bool]
}

// NewObservableNormalData wraps d.
func NewObservableNormalData(d control.NormalData) *ObservableNormalData {
	return &ObservableNormalData{
		ObservableTextData: NewObservableTextData(d.TextData),
		ClickEvents:        NewList(d.ClickEvents),
		IsSwipple:          NewState(d.IsSwipple),
		IsPenetrable:       NewState(d.IsPenetrable),
		IsToggleable:       NewState(d.IsToggleable),
		IsPressed:          NewState(false),
	}
}

func (d *ObservableNormalData) PackWidget() control.Widget { return d.PackNormal() }
func (*ObservableNormalData) observable()                  {}

// AddEvent appends ev unless an event with the same type and key exists.
func (d *ObservableNormalData) AddEvent(ev control.ClickEvent) {
	if slices.Contains(d.ClickEvents.Items(), ev) {
		return
	}
	d.ClickEvents.Append(ev)
}

// RemoveEvent removes the event with ev's type and key.
func (d *ObservableNormalData) RemoveEvent(ev control.ClickEvent) {
	d.RemoveEventKey(ev.Type, ev.Key)
}

// RemoveEventKey removes every event with the given type and key.
func (d *ObservableNormalData) RemoveEventKey(typ control.EventType, key string) {
	d.ClickEvents.RemoveFunc(func(e control.ClickEvent) bool {
		return e.Type == typ && e.Key == key
	})
}

// RemoveAllEvents removes every event matching one of events by type and key.
func (d *ObservableNormalData) RemoveAllEvents(events []control.ClickEvent) {
	drop := make(map[control.ClickEvent]struct{}, len(events))
	for _, e := range events {
		drop[e] = struct{}{}
	}
	d.ClickEvents.RemoveFunc(func(e control.ClickEvent) bool {
		_, ok := drop[e]
		return ok
	})
}

// PackNormal returns the current button. ClickEvents is never nil.
func (d *ObservableNormalData) PackNormal() control.NormalData {
	return control.NormalData{
		TextData:     d.PackText(),
		ClickEvents:  slices.Clone(d.ClickEvents.Items()),
		IsSwipple:    d.IsSwipple.Get(),
		IsPenetrable: d.IsPenetrable.Get(),
		IsToggleable: d.IsToggleable.Get(),
	}
}

// CloneNormal returns a new button with a fresh id at the center.
func (d *ObservableNormalData) CloneNormal(gen control.IDGenerator) *ObservableNormalData {
	return NewObservableNormalData(d.PackNormal().CloneNew(gen))
}

// WrapWidget wraps a control widget in its observable counterpart.
func WrapWidget(w control.Widget) ObservableWidget {
	switch v := w.(type) {
	case control.NormalData:
		return NewObservableNormalData(v)
	case control.TextData:
		return NewObservableTextData(v)
	default:
		panic("layerkit: unknown widget type")
	}
}
