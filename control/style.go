package control

// StyleConfig is the look of a widget in one theme, for the resting and the
// pressed state.
type StyleConfig struct {
	Alpha                  float64 `json:"alpha"`
	PressedAlpha           float64 `json:"pressedAlpha"`
	BackgroundColor        Color   `json:"backgroundColor"`
	PressedBackgroundColor Color   `json:"pressedBackgroundColor"`
	ContentColor           Color   `json:"contentColor"`
	PressedContentColor    Color   `json:"pressedContentColor"`
	BorderWidth            int     `json:"borderWidth"`
	PressedBorderWidth     int     `json:"pressedBorderWidth"`
	BorderColor            Color   `json:"borderColor"`
	PressedBorderColor     Color   `json:"pressedBorderColor"`
	BorderRadius           Shape   `json:"borderRadius"`
	PressedBorderRadius    Shape   `json:"pressedBorderRadius"`
}

// Appearance is the resolved look of a widget for a single state.
type Appearance struct {
	Alpha           float64
	BackgroundColor Color
	ContentColor    Color
	BorderWidth     int
	BorderColor     Color
	BorderRadius    Shape
}

// Appearance picks the resting or pressed values.
func (c StyleConfig) Appearance(pressed bool) Appearance {
	if pressed {
		return Appearance{
			Alpha:           c.PressedAlpha,
			BackgroundColor: c.PressedBackgroundColor,
			ContentColor:    c.PressedContentColor,
			BorderWidth:     c.PressedBorderWidth,
			BorderColor:     c.PressedBorderColor,
			BorderRadius:    c.PressedBorderRadius,
		}
	}
	return Appearance{
		Alpha:           c.Alpha,
		BackgroundColor: c.BackgroundColor,
		ContentColor:    c.ContentColor,
		BorderWidth:     c.BorderWidth,
		BorderColor:     c.BorderColor,
		BorderRadius:    c.BorderRadius,
	}
}

// DefaultStyleConfig is used by both themes of DefaultStyle.
var DefaultStyleConfig = StyleConfig{
	Alpha:                  1,
	PressedAlpha:           1,
	BackgroundColor:        ColorBlack.WithAlpha(0.5),
	PressedBackgroundColor: ColorGray.WithAlpha(0.7),
	ContentColor:           ColorWhite,
	PressedContentColor:    ColorWhite,
	BorderWidth:            -1,
	PressedBorderWidth:     -1,
	BorderColor:            ColorWhite,
	PressedBorderColor:     ColorWhite,
	BorderRadius:           UniformShape(0),
	PressedBorderRadius:    UniformShape(0),
}

// ButtonStyle is a named style shared by widgets through its UUID.
type ButtonStyle struct {
	Name        string      `json:"name"`
	UUID        string      `json:"uuid"`
	AnimateSwap bool        `json:"animateSwap"`
	LightStyle  StyleConfig `json:"lightStyle"`
	DarkStyle   StyleConfig `json:"darkStyle"`
}

// DefaultStyleID identifies DefaultStyle. It never appears in a palette.
const DefaultStyleID = "default"

// DefaultStyle is what a widget uses when it has no style or its style id
// is not in the palette.
var DefaultStyle = ButtonStyle{
	Name:       "Default",
	UUID:       DefaultStyleID,
	LightStyle: DefaultStyleConfig,
	DarkStyle:  DefaultStyleConfig,
}

// NewButtonStyle returns a style with a fresh id and the default configs.
func NewButtonStyle(name string) ButtonStyle {
	return ButtonStyle{
		Name:       name,
		UUID:       RandomID(DefaultIDLength),
		LightStyle: DefaultStyleConfig,
		DarkStyle:  DefaultStyleConfig,
	}
}

// Theme returns the config for the dark or light theme.
func (s ButtonStyle) Theme(dark bool) StyleConfig {
	if dark {
		return s.DarkStyle
	}
	return s.LightStyle
}

// UnmarshalJSON fills a random UUID when the document has none.
func (s *ButtonStyle) UnmarshalJSON(b []byte) error {
	type plain ButtonStyle
	v := plain{UUID: RandomID(DefaultIDLength)}
	if err := unmarshalObject(b, &v); err != nil {
		return err
	}
	*s = ButtonStyle(v)
	return nil
}
