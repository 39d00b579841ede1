package httphandler

import (
	"log/slog"
	"net/http"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

// GET v1/i18n/{lang} (200 OK, 400 Bad request)
// GET v1/language, PUT v1/language JSON {"language" string}, POST v1/language/toggle (200 OK)
// GET v1/contact-link?lang= (200 OK)
// GET v1/regions (200 OK)

type LocalizationHandler struct {
	localizer port.Localizer
	languages port.LanguageSwitcher
	orders    port.OrderComposer
}

func RegisterLocalization(
	mux *http.ServeMux,
	localizer port.Localizer,
	languages port.LanguageSwitcher,
	orders port.OrderComposer,
) {
	h := LocalizationHandler{localizer, languages, orders}
	mux.HandleFunc("GET /v1/i18n/{lang}", h.GetDictionary)
	mux.HandleFunc("GET /v1/language", h.GetLanguage)
	mux.HandleFunc("PUT /v1/language", h.PutLanguage)
	mux.HandleFunc("POST /v1/language/toggle", h.PostToggleLanguage)
	mux.HandleFunc("GET /v1/contact-link", h.GetContactLink)
	mux.HandleFunc("GET /v1/regions", h.GetRegions)
}

func (h LocalizationHandler) GetDictionary(w http.ResponseWriter, r *http.Request) {
	const op = "LocalizationHandler.GetDictionary"
	log := slog.With("op", op)

	lang, err := domain.ParseLanguage(r.PathValue("lang"))
	if err != nil {
		writeError(w, log, err)
		return
	}

	d, err := h.localizer.Dictionary(lang)
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, DictionaryResponse{
		Dictionary: d,
		Templates:  d.Templates(),
	})
}

func (h LocalizationHandler) GetLanguage(w http.ResponseWriter, r *http.Request) {
	const op = "LocalizationHandler.GetLanguage"
	writeJSON(w, slog.With("op", op), http.StatusOK, h.languages.CurrentLanguage())
}

func (h LocalizationHandler) PutLanguage(w http.ResponseWriter, r *http.Request) {
	const op = "LocalizationHandler.PutLanguage"
	log := slog.With("op", op)

	var req LanguageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, log, err)
		return
	}

	lang, err := domain.ParseLanguage(req.Language)
	if err != nil {
		writeError(w, log, err)
		return
	}

	p, err := h.languages.SetLanguage(r.Context(), lang)
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, p)
}

func (h LocalizationHandler) PostToggleLanguage(w http.ResponseWriter, r *http.Request) {
	const op = "LocalizationHandler.PostToggleLanguage"
	log := slog.With("op", op)

	p, err := h.languages.ToggleLanguage(r.Context())
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, p)
}

func (h LocalizationHandler) GetContactLink(w http.ResponseWriter, r *http.Request) {
	const op = "LocalizationHandler.GetContactLink"
	log := slog.With("op", op)

	lang, err := requestLanguage(r, r.URL.Query().Get("lang"), h.languages)
	if err != nil {
		writeError(w, log, err)
		return
	}

	handoff, err := h.orders.ContactLink(lang)
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, toHandoffResponse(handoff))
}

func (h LocalizationHandler) GetRegions(w http.ResponseWriter, r *http.Request) {
	const op = "LocalizationHandler.GetRegions"
	writeJSON(w, slog.With("op", op), http.StatusOK, RegionsResponse{
		Regions: h.localizer.Regions(),
	})
}
