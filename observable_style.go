package layerkit

import "github.com/grindlemire/layerkit/control"

// ObservableStyleConfig is an editable StyleConfig.
type ObservableStyleConfig struct {
	Alpha                  *State[float64]
	PressedAlpha           *State[float64]
	BackgroundColor        *State[control.Color]
	PressedBackgroundColor *State[control.Color]
	ContentColor           *State[control.Color]
	PressedContentColor    *State[control.Color]
	BorderWidth            *State[int]
	PressedBorderWidth     *State[int]
	BorderColor            *State[control.Color]
	PressedBorderColor     *State[control.Color]
	BorderRadius           *State[control.Shape]
	PressedBorderRadius    *State[control.Shape]
}

// NewObservableStyleConfig wraps c.
func NewObservableStyleConfig(c control.StyleConfig) *ObservableStyleConfig {
	return &ObservableStyleConfig{
		Alpha:                  NewState(c.Alpha),
		PressedAlpha:           NewState(c.PressedAlpha),
		BackgroundColor:        NewState(c.BackgroundColor),
		PressedBackgroundColor: NewState(c.PressedBackgroundColor),
		ContentColor:           NewState(c.ContentColor),
		PressedContentColor:    NewState(c.PressedContentColor),
		BorderWidth:            NewState(c.BorderWidth),
		PressedBorderWidth:     NewState(c.PressedBorderWidth),
		BorderColor:            NewState(c.BorderColor),
		PressedBorderColor:     NewState(c.PressedBorderColor),
		BorderRadius:           NewState(c.BorderRadius),
		PressedBorderRadius:    NewState(c.PressedBorderRadius),
	}
}

// Pack returns the current config.
func (c *ObservableStyleConfig) Pack() control.StyleConfig {
	return control.StyleConfig{
		Alpha:                  c.Alpha.Get(),
		PressedAlpha:           c.PressedAlpha.Get(),
		BackgroundColor:        c.BackgroundColor.Get(),
		PressedBackgroundColor: c.PressedBackgroundColor.Get(),
		ContentColor:           c.ContentColor.Get(),
		PressedContentColor:    c.PressedContentColor.Get(),
		BorderWidth:            c.BorderWidth.Get(),
		PressedBorderWidth:     c.PressedBorderWidth.Get(),
		BorderColor:            c.BorderColor.Get(),
		PressedBorderColor:     c.PressedBorderColor.Get(),
		BorderRadius:           c.BorderRadius.Get(),
		PressedBorderRadius:    c.PressedBorderRadius.Get(),
	}
}

// ObservableButtonStyle is an editable ButtonStyle.
type ObservableButtonStyle struct {
	uuid        string
	Name        *State[string]
	AnimateSwap *State[bool]
	LightStyle  *ObservableStyleConfig
	DarkStyle   *ObservableStyleConfig
}

// DefaultObservableStyle wraps control.DefaultStyle. Widgets whose style id
// is unset or unknown resolve to it.
var DefaultObservableStyle = NewObservableButtonStyle(control.DefaultStyle)

// NewObservableButtonStyle wraps s.
func NewObservableButtonStyle(s control.ButtonStyle) *ObservableButtonStyle {
	return &ObservableButtonStyle{
		uuid:        s.UUID,
		Name:        NewState(s.Name),
		AnimateSwap: NewState(s.AnimateSwap),
		LightStyle:  NewObservableStyleConfig(s.LightStyle),
		DarkStyle:   NewObservableStyleConfig(s.DarkStyle),
	}
}

// ID returns the style's stable id.
func (s *ObservableButtonStyle) ID() string { return s.uuid }

// Theme returns the dark or light config.
func (s *ObservableButtonStyle) Theme(dark bool) *ObservableStyleConfig {
	if dark {
		return s.DarkStyle
	}
	return s.LightStyle
}

// Appearance resolves the look for a theme and press state.
func (s *ObservableButtonStyle) Appearance(dark, pressed bool) control.Appearance {
	return s.Theme(dark).Pack().Appearance(pressed)
}

// CloneNew returns a copy of the current style under a fresh id.
func (s *ObservableButtonStyle) CloneNew(gen control.IDGenerator) *ObservableButtonStyle {
	if gen == nil {
		gen = control.RandomID
	}
	packed := s.Pack()
	packed.UUID = gen(control.DefaultIDLength)
	return NewObservableButtonStyle(packed)
}

// Pack returns the current style.
func (s *ObservableButtonStyle) Pack() control.ButtonStyle {
	return control.ButtonStyle{
		Name:        s.Name.Get(),
		UUID:        s.uuid,
		AnimateSwap: s.AnimateSwap.Get(),
		LightStyle:  s.LightStyle.Pack(),
		DarkStyle:   s.DarkStyle.Pack(),
	}
}
