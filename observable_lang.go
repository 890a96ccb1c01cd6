package layerkit

import (
	"github.com/grindlemire/layerkit/control"
	"golang.org/x/text/language"
)

// ObservableLocalizedString is an editable language override.
type ObservableLocalizedString struct {
	LanguageTag *State[string]
	Value       *State[string]
}

// NewObservableLocalizedString wraps s.
func NewObservableLocalizedString(s control.LocalizedString) *ObservableLocalizedString {
	return &ObservableLocalizedString{
		LanguageTag: NewState(s.LanguageTag),
		Value:       NewState(s.Value),
	}
}

// Check returns the value when the override applies to locale.
func (s *ObservableLocalizedString) Check(locale language.Tag) (string, bool) {
	if s.LanguageTag.Get() != locale.String() {
		return "", false
	}
	return s.Value.Get(), true
}

// Pack returns the current override.
func (s *ObservableLocalizedString) Pack() control.LocalizedString {
	return control.LocalizedString{LanguageTag: s.LanguageTag.Get(), Value: s.Value.Get()}
}

// ObservableTranslatableString is an editable TranslatableString. It keeps
// the wrapped value so edits can be discarded with Reset.
type ObservableTranslatableString struct {
	src        control.TranslatableString
	Default    *State[string]
	MatchQueue *List[*ObservableLocalizedString]
}

// NewObservableTranslatableString wraps s.
func NewObservableTranslatableString(s control.TranslatableString) *ObservableTranslatableString {
	t := &ObservableTranslatableString{src: s, Default: NewState(s.Default)}
	t.MatchQueue = NewList(t.wrapQueue())
	return t
}

func (t *ObservableTranslatableString) wrapQueue() []*ObservableLocalizedString {
	queue := make([]*ObservableLocalizedString, len(t.src.MatchQueue))
	for i, s := range t.src.MatchQueue {
		queue[i] = NewObservableLocalizedString(s)
	}
	return queue
}

// Translate returns the first override matching locale, or the default.
func (t *ObservableTranslatableString) Translate(locale language.Tag) string {
	for _, s := range t.MatchQueue.Items() {
		if v, ok := s.Check(locale); ok {
			return v
		}
	}
	return t.Default.Get()
}

// AddLocalizedString appends an override unless one with the same tag and
// value is already queued.
func (t *ObservableTranslatableString) AddLocalizedString(s control.LocalizedString) {
	for _, o := range t.MatchQueue.Items() {
		if o.Pack() == s {
			return
		}
	}
	t.MatchQueue.Append(NewObservableLocalizedString(s))
}

// DeleteLocalizedString removes every override with the same tag and value
// as s.
func (t *ObservableTranslatableString) DeleteLocalizedString(s control.LocalizedString) {
	t.MatchQueue.RemoveFunc(func(o *ObservableLocalizedString) bool {
		return o.Pack() == s
	})
}

// Reset discards all edits.
func (t *ObservableTranslatableString) Reset() {
	t.Default.Set(t.src.Default)
	t.MatchQueue.Replace(t.wrapQueue())
}

// Pack returns the current string. MatchQueue is never nil.
func (t *ObservableTranslatableString) Pack() control.TranslatableString {
	items := t.MatchQueue.Items()
	queue := make([]control.LocalizedString, len(items))
	for i, s := range items {
		queue[i] = s.Pack()
	}
	return control.TranslatableString{Default: t.Default.Get(), MatchQueue: queue}
}
