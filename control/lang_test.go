package control

import (
	"encoding/json"
	"testing"

	"golang.org/x/text/language"
)

func TestTranslatableString_Translate(t *testing.T) {
	jump := NewTranslatable("Jump", LocalizedString{LanguageTag: "zh-CN", Value: "跳"})

	type tc struct {
		str    TranslatableString
		locale language.Tag
		want   string
	}

	tests := map[string]tc{
		"matching override": {
			str:    jump,
			locale: language.MustParse("zh-CN"),
			want:   "跳",
		},
		"falls back to default": {
			str:    jump,
			locale: language.AmericanEnglish,
			want:   "Jump",
		},
		"canonicalises the locale": {
			str:    jump,
			locale: language.MustParse("zh-cn"),
			want:   "跳",
		},
		"first match wins": {
			str: NewTranslatable("x",
				LocalizedString{LanguageTag: "fr", Value: "first"},
				LocalizedString{LanguageTag: "fr", Value: "second"},
			),
			locale: language.French,
			want:   "first",
		},
		"no overrides": {
			str:    EmptyTranslatable,
			locale: language.French,
			want:   "",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.str.Translate(tt.locale); got != tt.want {
				t.Errorf("Translate(%s) = %q, want %q", tt.locale, got, tt.want)
			}
		})
	}
}

func TestTranslatableString_JSON(t *testing.T) {
	b, err := json.Marshal(TranslatableString{Default: "a"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if want := `{"default":"a","matchQueue":[]}`; string(b) != want {
		t.Errorf("Marshal = %s, want %s", b, want)
	}

	var got TranslatableString
	in := `{"default":"Jump","matchQueue":[{"language_tag":"zh-CN","value":"跳"}]}`
	if err := json.Unmarshal([]byte(in), &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Default != "Jump" || len(got.MatchQueue) != 1 || got.MatchQueue[0].Value != "跳" {
		t.Errorf("Unmarshal = %+v", got)
	}
}

func TestNewTranslatable_CopiesOverrides(t *testing.T) {
	overrides := []LocalizedString{{LanguageTag: "de", Value: "Springen"}}
	s := NewTranslatable("Jump", overrides...)
	overrides[0].Value = "changed"
	if s.MatchQueue[0].Value != "Springen" {
		t.Errorf("NewTranslatable shares the caller's slice")
	}
}
