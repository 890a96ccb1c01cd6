package control

import (
	"encoding/json"

	"golang.org/x/text/language"
)

// LocalizedString is one language override of a TranslatableString.
type LocalizedString struct {
	LanguageTag string `json:"language_tag"`
	Value       string `json:"value"`
}

// Matches reports whether the override applies to locale. Tags are
// compared as canonical BCP 47 strings, e.g. "zh-CN".
func (s LocalizedString) Matches(locale language.Tag) bool {
	return s.LanguageTag == locale.String()
}

// TranslatableString is a default string plus ordered per-language
// overrides.
type TranslatableString struct {
	Default    string            `json:"default"`
	MatchQueue []LocalizedString `json:"matchQueue"`
}

// EmptyTranslatable has no text and no overrides.
var EmptyTranslatable = TranslatableString{MatchQueue: []LocalizedString{}}

// NewTranslatable builds a TranslatableString from a default and overrides.
func NewTranslatable(def string, overrides ...LocalizedString) TranslatableString {
	queue := make([]LocalizedString, len(overrides))
	copy(queue, overrides)
	return TranslatableString{Default: def, MatchQueue: queue}
}

// Translate returns the first override matching locale, or the default.
func (t TranslatableString) Translate(locale language.Tag) string {
	for _, s := range t.MatchQueue {
		if s.Matches(locale) {
			return s.Value
		}
	}
	return t.Default
}

// MarshalJSON always writes matchQueue as an array.
func (t TranslatableString) MarshalJSON() ([]byte, error) {
	type plain TranslatableString
	v := plain(t)
	if v.MatchQueue == nil {
		v.MatchQueue = []LocalizedString{}
	}
	return json.Marshal(v)
}
