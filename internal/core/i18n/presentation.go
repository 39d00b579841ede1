package i18n

import "github.com/niksmo/storefront/internal/core/domain"

// Presentation carries the document attributes derived from the language.
type Presentation struct {
	Language domain.Language `json:"language"`
	Lang     string          `json:"lang"`
	Dir      string          `json:"dir"`
}

func PresentationOf(l domain.Language) Presentation {
	return Presentation{Language: l, Lang: Tag(l).String(), Dir: l.Dir()}
}
