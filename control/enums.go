package control

import (
	"encoding/json"
	"fmt"
)

// VisibilityType decides when a layer or widget is shown, based on whether
// the virtual pointer is captured by the game.
type VisibilityType uint8

const (
	VisibilityAlways VisibilityType = iota
	VisibilityInGame                // only while the pointer is captured
	VisibilityInMenu                // only while the pointer is released
)

var visibilityNames = [...]string{"always", "in_game", "in_menu"}

func (v VisibilityType) String() string {
	if int(v) < len(visibilityNames) {
		return visibilityNames[v]
	}
	return fmt.Sprintf("VisibilityType(%d)", v)
}

func (v VisibilityType) MarshalText() ([]byte, error) {
	if int(v) >= len(visibilityNames) {
		return nil, fmt.Errorf("control: invalid visibility type %d", v)
	}
	return []byte(visibilityNames[v]), nil
}

func (v *VisibilityType) UnmarshalText(b []byte) error {
	return unmarshalEnum(b, visibilityNames[:], (*uint8)(v), "visibility type")
}

// Visible reports whether something with this rule is shown given the
// pointer capture state.
func (v VisibilityType) Visible(grabbing bool) bool {
	switch v {
	case VisibilityInGame:
		return grabbing
	case VisibilityInMenu:
		return !grabbing
	default:
		return true
	}
}

// TextAlignment aligns a widget's label horizontally.
type TextAlignment uint8

const (
	AlignLeft TextAlignment = iota
	AlignCenter
	AlignRight
)

var alignmentNames = [...]string{"Left", "Center", "Right"}

func (a TextAlignment) String() string {
	if int(a) < len(alignmentNames) {
		return alignmentNames[a]
	}
	return fmt.Sprintf("TextAlignment(%d)", a)
}

func (a TextAlignment) MarshalText() ([]byte, error) {
	if int(a) >= len(alignmentNames) {
		return nil, fmt.Errorf("control: invalid text alignment %d", a)
	}
	return []byte(alignmentNames[a]), nil
}

func (a *TextAlignment) UnmarshalText(b []byte) error {
	return unmarshalEnum(b, alignmentNames[:], (*uint8)(a), "text alignment")
}

// HideLayerWhen names the input device whose use hides a layer. Superseded
// by VisibilityType; kept for the legacy per-device layer flags.
type HideLayerWhen uint8

const (
	HideWhenMouse HideLayerWhen = iota
	HideWhenGamepad
	HideWhenNone
)

func unmarshalEnum(b []byte, names []string, dst *uint8, what string) error {
	s := string(b)
	for i, name := range names {
		if name == s {
			*dst = uint8(i)
			return nil
		}
	}
	return fmt.Errorf("control: unknown %s %q", what, s)
}

func unmarshalObject(b []byte, v any) error {
	return json.Unmarshal(b, v)
}
