package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnsupportedLanguage = errors.New("unsupported language")

type Language string

const (
	LangFR Language = "fr"
	LangAR Language = "ar"
)

// Languages is the closed set of supported languages in display order.
var Languages = []Language{LangFR, LangAR}

func ParseLanguage(s string) (Language, error) {
	l := Language(strings.ToLower(strings.TrimSpace(s)))
	switch l {
	case LangFR, LangAR:
		return l, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, s)
}

// Dir returns the text direction attribute for the language.
func (l Language) Dir() string {
	if l == LangAR {
		return "rtl"
	}
	return "ltr"
}

// Toggle returns the other supported language.
func (l Language) Toggle() Language {
	if l == LangAR {
		return LangFR
	}
	return LangAR
}

// LocalizedText maps every supported language to a display string.
type LocalizedText map[Language]string

// Get returns the text for the language. Blank entries count as missing.
func (t LocalizedText) Get(l Language) (string, bool) {
	s, ok := t[l]
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}

// Missing lists the supported languages without a usable entry.
func (t LocalizedText) Missing() []Language {
	var missing []Language
	for _, l := range Languages {
		if _, ok := t.Get(l); !ok {
			missing = append(missing, l)
		}
	}
	return missing
}
