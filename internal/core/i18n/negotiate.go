package i18n

import (
	"github.com/niksmo/storefront/internal/core/domain"
	"golang.org/x/text/language"
)

var (
	supportedTags = []language.Tag{language.French, language.Arabic}
	matcher       = language.NewMatcher(supportedTags)
)

// Tag returns the BCP 47 tag used for the lang attribute.
func Tag(l domain.Language) language.Tag {
	if l == domain.LangAR {
		return language.Arabic
	}
	return language.French
}

// Negotiate picks the supported language best matching an Accept-Language
// header, reporting false when nothing matches.
func Negotiate(acceptLanguage string) (domain.Language, bool) {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return "", false
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return "", false
	}
	return domain.Languages[idx], true
}
