package httphandler

import (
	"log/slog"
	"net/http"

	"github.com/niksmo/storefront/internal/core/port"
)

// POST v1/checkout/validate JSON {"lang", "customer"} (200 OK, 400 Bad request)
// POST v1/checkout JSON {"product_id", "quantity", "lang", "customer"} (200 OK, 400 Bad request, 404 Not found, 422 Unprocessable entity)

type CheckoutHandler struct {
	orders    port.OrderComposer
	languages port.LanguageSwitcher
}

func RegisterCheckout(
	mux *http.ServeMux,
	orders port.OrderComposer,
	languages port.LanguageSwitcher,
) {
	h := CheckoutHandler{orders, languages}
	mux.HandleFunc("POST /v1/checkout/validate", h.PostValidate)
	mux.HandleFunc("POST /v1/checkout", h.PostCheckout)
}

func (h CheckoutHandler) PostValidate(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.PostValidate"
	log := slog.With("op", op)

	var req CheckoutValidateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, log, err)
		return
	}

	lang, err := requestLanguage(r, req.Lang, h.languages)
	if err != nil {
		writeError(w, log, err)
		return
	}

	customer, err := req.Customer.toDomain()
	if err != nil {
		writeError(w, log, err)
		return
	}

	fe, err := h.orders.ValidateCheckout(lang, customer)
	if err != nil {
		writeError(w, log, err)
		return
	}

	writeJSON(w, log, http.StatusOK, CheckoutValidateResponse{
		Valid:  len(fe) == 0,
		Errors: fieldErrors(fe),
	})
}

func (h CheckoutHandler) PostCheckout(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.PostCheckout"
	log := slog.With("op", op)

	var req CheckoutRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, log, err)
		return
	}

	lang, err := requestLanguage(r, req.Lang, h.languages)
	if err != nil {
		writeError(w, log, err)
		return
	}

	customer, err := req.Customer.toDomain()
	if err != nil {
		writeError(w, log, err)
		return
	}

	handoff, err := h.orders.Checkout(r.Context(), port.CheckoutOrder{
		CartItem: port.CartItem{
			ProductID: req.ProductID,
			Quantity:  req.Quantity,
			Lang:      lang,
		},
		Customer: customer,
	})
	if err != nil {
		writeError(w, log, err)
		return
	}

	writeJSON(w, log, http.StatusOK, toHandoffResponse(handoff))
	log.Info("order handed off", "productID", req.ProductID, "lang", lang)
}
