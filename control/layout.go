package control

import (
	"fmt"
	"unicode/utf8"
)

// Length limits of the info fields, counted in runes.
const (
	MaxNameLength        = 64
	MaxAuthorLength      = 128
	MaxVersionNameLength = 32
)

// Info is the metadata block of a layout.
type Info struct {
	Name        TranslatableString `json:"name"`
	Author      TranslatableString `json:"author"`
	Description TranslatableString `json:"description"`
	VersionCode int                `json:"versionCode"`
	VersionName string             `json:"versionName"`
}

// EmptyInfo has blank strings and version 0.
var EmptyInfo = Info{
	Name:        EmptyTranslatable,
	Author:      EmptyTranslatable,
	Description: EmptyTranslatable,
}

// LimitError reports an info field over its length limit.
type LimitError struct {
	Field  string
	Length int
	Max    int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("control: %s is %d characters, limit is %d", e.Field, e.Length, e.Max)
}

// Validate checks the default name, the default author and the version
// name against their length limits.
func (i Info) Validate() error {
	checks := []struct {
		field string
		value string
		max   int
	}{
		{"name", i.Name.Default, MaxNameLength},
		{"author", i.Author.Default, MaxAuthorLength},
		{"versionName", i.VersionName, MaxVersionNameLength},
	}
	for _, c := range checks {
		if n := utf8.RuneCountInString(c.value); n > c.max {
			return &LimitError{Field: c.field, Length: n, Max: c.max}
		}
	}
	for _, s := range i.Name.MatchQueue {
		if n := utf8.RuneCountInString(s.Value); n > MaxNameLength {
			return &LimitError{Field: "name[" + s.LanguageTag + "]", Length: n, Max: MaxNameLength}
		}
	}
	return nil
}

// Layout is a complete control layout document.
type Layout struct {
	Info          Info          `json:"info"`
	Layers        []Layer       `json:"layers"`
	Styles        []ButtonStyle `json:"styles"`
	EditorVersion int           `json:"editorVersion"`
}

// EmptyLayout returns a layout with no layers or styles at the current
// editor version.
func EmptyLayout() Layout {
	return Layout{
		Info:          EmptyInfo,
		Layers:        []Layer{},
		Styles:        []ButtonStyle{},
		EditorVersion: EditorVersion,
	}
}

// Style returns the palette entry with the given id.
func (l Layout) Style(id string) (ButtonStyle, bool) {
	for _, s := range l.Styles {
		if s.UUID == id {
			return s, true
		}
	}
	return ButtonStyle{}, false
}

// ResolveStyle returns the palette entry with the given id, or DefaultStyle
// when the id is empty or not in the palette.
func (l Layout) ResolveStyle(id string) ButtonStyle {
	if id == "" {
		return DefaultStyle
	}
	if s, ok := l.Style(id); ok {
		return s
	}
	return DefaultStyle
}

// Layer returns the layer with the given id.
func (l Layout) Layer(id string) (Layer, bool) {
	for _, layer := range l.Layers {
		if layer.UUID == id {
			return layer, true
		}
	}
	return Layer{}, false
}

// WidgetCount returns the number of widgets across all layers.
func (l Layout) WidgetCount() int {
	n := 0
	for _, layer := range l.Layers {
		n += len(layer.NormalButtons) + len(layer.TextBoxes)
	}
	return n
}
