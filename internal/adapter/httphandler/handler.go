package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/i18n"
	"github.com/niksmo/storefront/internal/core/port"
)

const maxBodyBytes = 1 << 16

// Storefront is everything the HTTP surface needs from the core.
type Storefront interface {
	port.ProductLister
	port.Localizer
	port.LanguageSwitcher
	port.OrderComposer
}

// Register mounts every storefront route on mux.
func Register(mux *http.ServeMux, s Storefront) {
	RegisterProducts(mux, s, s, s, s)
	RegisterCheckout(mux, s, s)
	RegisterLocalization(mux, s, s, s)
}

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// writeJSON encodes v before touching the status line, so an encoding
// failure still reaches the client as a 500.
func writeJSON(w http.ResponseWriter, log *slog.Logger, code int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error("failed to encode response body", "err", err)
		code = http.StatusInternalServerError
		body = []byte(`{"error":"internal error"}`)
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if _, err := w.Write(append(body, '\n')); err != nil {
		log.Error("failed to write response body", "err", err)
	}
}

// writeError maps core errors onto status codes. Client mistakes are
// logged at warn level, everything else at error level.
func writeError(w http.ResponseWriter, log *slog.Logger, err error) {
	var validationErr *port.ValidationError
	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, log, http.StatusUnprocessableEntity, errorResponse{
			Error:  "invalid customer details",
			Fields: fieldErrors(validationErr.Fields),
		})
		log.Info("rejected customer details", "err", err)
	case errors.Is(err, domain.ErrProductNotFound):
		writeJSON(w, log, http.StatusNotFound, errorResponse{Error: "product not found"})
		log.Warn("product not found", "err", err)
	case isBadInput(err):
		writeJSON(w, log, http.StatusBadRequest, errorResponse{Error: err.Error()})
		log.Warn("bad request", "err", err)
	default:
		writeJSON(w, log, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		log.Error("failed to serve request", "err", err)
	}
}

var badInputErrs = []error{
	domain.ErrUnsupportedLanguage,
	domain.ErrInvalidQuantity,
	domain.ErrInvalidPriceRange,
	domain.ErrUnknownAvailability,
	domain.ErrUnknownSortOption,
	domain.ErrUnknownProductType,
	domain.ErrUnknownProductNeed,
	domain.ErrUnknownDeliveryType,
	errMalformedRequest,
}

var errMalformedRequest = errors.New("malformed request")

func isBadInput(err error) bool {
	for _, target := range badInputErrs {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func fieldErrors(fe port.FieldErrors) map[string]string {
	out := make(map[string]string, len(fe))
	for f, msg := range fe {
		out[string(f)] = msg
	}
	return out
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Join(errMalformedRequest, err)
	}
	return nil
}

// requestLanguage resolves the language of a request: an explicit value
// wins, then the Accept-Language header, then the stored preference.
func requestLanguage(
	r *http.Request, explicit string, current port.LanguageSwitcher,
) (domain.Language, error) {
	if strings.TrimSpace(explicit) != "" {
		return domain.ParseLanguage(explicit)
	}
	if l, ok := i18n.Negotiate(r.Header.Get("Accept-Language")); ok {
		return l, nil
	}
	return current.CurrentLanguage().Language, nil
}
